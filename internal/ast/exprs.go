package ast

import (
	"fmt"
	"strconv"
)

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

// UnaryNegateExpr is the negation of a numeric literal. The grammar only
// allows negating a bare number, so the operand is a NumberExpr rather than
// an arbitrary Expr.
type UnaryNegateExpr struct {
	Operand *NumberExpr
}

type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// FuncCallExpr is a call of one of the known functions with exactly one
// argument. Absolute-value bars parse into a call of "abs".
type FuncCallExpr struct {
	Name string
	Arg  Expr
}

func (NumberExpr) AstNode()      {}
func (UnaryNegateExpr) AstNode() {}
func (BinaryExpr) AstNode()      {}
func (FuncCallExpr) AstNode()    {}

func (NumberExpr) ExprNode()      {}
func (UnaryNegateExpr) ExprNode() {}
func (BinaryExpr) ExprNode()      {}
func (FuncCallExpr) ExprNode()    {}

func (e *NumberExpr) String() string {
	// Plain decimal notation only; scientific notation would not tokenize.
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

func (e *UnaryNegateExpr) String() string {
	return "-" + e.Operand.String()
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

func (e *FuncCallExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, e.Arg.String())
}
