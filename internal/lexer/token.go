package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota

	NUMBER

	IDENT

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	CARET    // ^

	LPAREN // (
	RPAREN // )

	PIPE // |
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case IDENT:
		return "IDENT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case CARET:
		return "CARET"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case PIPE:
		return "PIPE"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// Token is a single lexical unit of an expression string. Pos is the byte
// offset of the token's first character in the input.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   int
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, IDENT:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
