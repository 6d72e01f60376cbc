package parser

import (
	"strconv"

	"github.com/kdkasad/eqnp/internal/ast"
	"github.com/kdkasad/eqnp/internal/lexer"
)

type Parser struct {
	scanner lexer.TokenScanner

	curr lexer.Token
}

var bindingPowerLookup map[lexer.TokenKind]int = map[lexer.TokenKind]int{
	lexer.PLUS:     10,
	lexer.MINUS:    10,
	lexer.ASTERISK: 20,
	lexer.SLASH:    20,
	lexer.CARET:    30,
}

var binaryOpLookup map[lexer.TokenKind]ast.BinaryOp = map[lexer.TokenKind]ast.BinaryOp{
	lexer.PLUS:     ast.Add,
	lexer.MINUS:    ast.Sub,
	lexer.ASTERISK: ast.Mul,
	lexer.SLASH:    ast.Div,
	lexer.CARET:    ast.Pow,
}

func NewParser(scanner lexer.TokenScanner) *Parser {
	return &Parser{
		scanner: scanner,
		curr:    scanner.Read(),
	}
}

// ParseExpression tokenizes input and parses it into an expression tree. The
// whole input must form a single expression. All state is local to the call,
// so concurrent calls are safe.
func ParseExpression(input string) (ast.Expr, error) {
	tokens, err := lexer.NewLexer([]byte(input)).Tokenize()
	if err != nil {
		return nil, err
	}

	return NewParser(lexer.NewTokenScanner(tokens)).Parse()
}

// Parse consumes the token sequence and returns the root of the expression
// tree. The sequence must be fully consumed; leftover tokens are an error.
func (p *Parser) Parse() (ast.Expr, error) {
	if p.curr.Kind == lexer.EOF {
		return nil, &EmptyExpressionError{}
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.curr.Kind != lexer.EOF {
		return nil, &TrailingInputError{
			Value: p.curr.Value,
			Pos:   p.curr.Pos,
		}
	}

	return expr, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	return p.parseBinaryExpr(left, 0)
}

func (p *Parser) parseBinaryExpr(left ast.Expr, bindingPower int) (ast.Expr, error) {
	for {
		op := p.curr
		currentBindingPower, ok := bindingPowerLookup[op.Kind]
		if !ok || currentBindingPower < bindingPower {
			return left, nil
		}
		p.read()

		if p.curr.Kind == lexer.EOF {
			return nil, &MissingOperandError{
				Operator: op.Value,
				Pos:      op.Pos,
			}
		}

		right, err := p.parsePrimaryExpr()
		if err != nil {
			return nil, err
		}

		nextBindingPower, ok := bindingPowerLookup[p.curr.Kind]
		if ok && currentBindingPower < nextBindingPower {
			right, err = p.parseBinaryExpr(right, currentBindingPower+10)
		} else if ok && op.Kind == lexer.CARET && nextBindingPower == currentBindingPower {
			// '^' associates to the right.
			right, err = p.parseBinaryExpr(right, currentBindingPower)
		}
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Op:    binaryOpLookup[op.Kind],
			Left:  left,
			Right: right,
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	switch p.curr.Kind {
	case lexer.NUMBER:
		return p.parseNumberExpr(), nil
	case lexer.MINUS:
		return p.parseNegationExpr()
	case lexer.IDENT:
		return p.parseFuncCallExpr()
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.PIPE:
		return p.parseAbsExpr()
	case lexer.PLUS, lexer.ASTERISK, lexer.SLASH, lexer.CARET:
		return nil, &MissingOperandError{
			Operator: p.curr.Value,
			Pos:      p.curr.Pos,
		}
	case lexer.RPAREN:
		return nil, &UnbalancedDelimiterError{
			Delimiter: ")",
			Pos:       p.curr.Pos,
		}
	default:
		return nil, &MissingOperandError{
			Pos: p.curr.Pos,
		}
	}
}

func (p *Parser) parseNumberExpr() *ast.NumberExpr {
	value, err := strconv.ParseFloat(p.curr.Value, 64)
	if err != nil {
		panic(err)
	}
	p.read()

	return &ast.NumberExpr{
		Value: value,
	}
}

func (p *Parser) parseNegationExpr() (ast.Expr, error) {
	p.read()

	// Negation binds to a directly-following number literal only, never to
	// a sub-expression.
	if p.curr.Kind != lexer.NUMBER {
		return nil, &InvalidNegationError{
			Pos: p.curr.Pos,
		}
	}

	return &ast.UnaryNegateExpr{
		Operand: p.parseNumberExpr(),
	}, nil
}

func (p *Parser) parseFuncCallExpr() (ast.Expr, error) {
	name := p.curr.Value
	namePos := p.curr.Pos
	p.read()

	if !ast.KnownFunction(name) {
		return nil, &UnknownFunctionError{
			Name: name,
			Pos:  namePos,
		}
	}

	if p.curr.Kind != lexer.LPAREN {
		return nil, &ExpectedOpenParenError{
			Name: name,
			Pos:  p.curr.Pos,
		}
	}
	openPos := p.curr.Pos
	p.read()

	if p.curr.Kind == lexer.RPAREN {
		return nil, &InvalidFunctionArityError{
			Name: name,
			Args: 0,
			Pos:  p.curr.Pos,
		}
	}

	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	switch p.curr.Kind {
	case lexer.RPAREN:
		p.read()
	case lexer.EOF:
		return nil, &UnbalancedDelimiterError{
			Delimiter: "(",
			Pos:       openPos,
		}
	default:
		// A second expression started inside the argument list.
		return nil, &InvalidFunctionArityError{
			Name: name,
			Args: 2,
			Pos:  p.curr.Pos,
		}
	}

	return &ast.FuncCallExpr{
		Name: name,
		Arg:  arg,
	}, nil
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	openPos := p.curr.Pos
	p.read()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.curr.Kind != lexer.RPAREN {
		return nil, &UnbalancedDelimiterError{
			Delimiter: "(",
			Pos:       openPos,
		}
	}
	p.read()

	return expr, nil
}

func (p *Parser) parseAbsExpr() (ast.Expr, error) {
	openPos := p.curr.Pos
	p.read()

	if p.curr.Kind == lexer.PIPE {
		return nil, &MissingOperandError{
			Pos: p.curr.Pos,
		}
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.curr.Kind != lexer.PIPE {
		return nil, &UnbalancedDelimiterError{
			Delimiter: "|",
			Pos:       openPos,
		}
	}
	p.read()

	return &ast.FuncCallExpr{
		Name: "abs",
		Arg:  expr,
	}, nil
}

func (p *Parser) read() lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}
