package ast

// Functions holds the names callable in an expression. The lexer passes any
// identifier through; the parser checks names against this set.
var Functions = map[string]struct{}{
	"abs": {},
	"sin": {},
	"cos": {},
	"tan": {},
	"csc": {},
	"sec": {},
	"cot": {},
}

func KnownFunction(name string) bool {
	_, ok := Functions[name]
	return ok
}

// Root builds the base-th root of num. There is no root syntax; a root is
// just num^(1/base).
func Root(base Expr, num Expr) Expr {
	return &BinaryExpr{
		Op:   Pow,
		Left: num,
		Right: &BinaryExpr{
			Op:    Div,
			Left:  &NumberExpr{Value: 1},
			Right: base,
		},
	}
}
