package ast

// AstNode is implemented by every node of a parsed expression tree.
type AstNode interface {
	AstNode()

	// String renders the subtree as a re-parenthesized expression string
	// that parses back to an equal tree.
	String() string
}

type Expr interface {
	AstNode
	ExprNode()
}

// BinaryOp is the operator of a BinaryExpr.
type BinaryOp string

const (
	Add BinaryOp = "+"
	Sub BinaryOp = "-"
	Mul BinaryOp = "*"
	Div BinaryOp = "/"
	Pow BinaryOp = "^"
)
