package lexer

import (
	"fmt"

	"github.com/kdkasad/eqnp/internal/input_errors"
)

// LexError reports a character that cannot start any token. Pos is the byte
// offset of the character in the input.
type LexError struct {
	Char byte
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character '%s' at position %d", string(e.Char), e.Pos)
}

func (e *LexError) Position() int {
	return e.Pos
}

var _ input_errors.InputError = (*LexError)(nil)

type Lexer struct {
	buf []byte
	pos int
}

func NewLexer(buf []byte) *Lexer {
	return &Lexer{
		buf: buf,
		pos: 0,
	}
}

// Tokenize scans the whole input and returns the token sequence, terminated
// by an EOF token. The lexer holds no state between calls to NewLexer, so
// tokenizing the same input twice yields identical sequences.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for l.hasChars() {
		switch {
		case l.isCurrSkippable():
			break

		case l.isCurrDigit():
			tokens = append(tokens, l.processNumber())
			break

		case l.isCurrLetter():
			tokens = append(tokens, l.processIdentifier())
			break

		case l.isCurrPunctuation():
			tokens = append(tokens, l.processPunctuation())
			break

		default:
			return nil, &LexError{
				Char: l.read(),
				Pos:  l.pos,
			}
		}

		l.advance()
	}

	tokens = append(tokens, Token{
		Kind: EOF,
		Pos:  l.pos,
	})

	return tokens, nil
}

func (l *Lexer) isCurrLetter() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z')
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '^', '(', ')', '|':
		return true
	}
	return false
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	start := l.pos

	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() {
		if !l.isCurrLetter() {
			l.unread()
			break
		}

		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	if !l.hasChars() {
		// The loop ran off the end of the input; step back onto the last
		// consumed character so the caller's advance lands on len(input).
		l.unread()
	}

	return Token{
		Kind:  IDENT,
		Value: string(identifierBuf),
		Pos:   start,
	}
}

func (l *Lexer) processNumber() Token {
	start := l.pos

	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	var isFloat bool
	for l.hasChars() {
		if !isFloat && l.read() == '.' {
			isFloat = true
			numberBuf = append(numberBuf, l.read())

			l.advance()
			if !l.hasChars() || !l.isCurrDigit() {
				// The dot is not part of the number.
				isFloat = false
				l.unread()
				l.unread()
				numberBuf = numberBuf[:len(numberBuf)-1]
				break
			}
		}

		if !l.isCurrDigit() {
			l.unread()
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}
	if !l.hasChars() {
		l.unread()
	}

	return Token{
		Kind:  NUMBER,
		Value: string(numberBuf),
		Pos:   start,
	}
}

func (l *Lexer) processPunctuation() Token {
	pos := l.pos

	switch l.read() {
	case '+':
		return Token{Kind: PLUS, Value: "+", Pos: pos}
	case '-':
		return Token{Kind: MINUS, Value: "-", Pos: pos}
	case '*':
		return Token{Kind: ASTERISK, Value: "*", Pos: pos}
	case '/':
		return Token{Kind: SLASH, Value: "/", Pos: pos}
	case '^':
		return Token{Kind: CARET, Value: "^", Pos: pos}
	case '(':
		return Token{Kind: LPAREN, Value: "(", Pos: pos}
	case ')':
		return Token{Kind: RPAREN, Value: ")", Pos: pos}
	case '|':
		return Token{Kind: PIPE, Value: "|", Pos: pos}
	}

	panic("unreachable")
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) read() byte { return l.buf[l.pos] }
func (l *Lexer) unread()    { l.pos-- }
