package lexer

// TokenScanner feeds tokens to the parser in order. Read past the end keeps
// returning the final EOF token.
type TokenScanner interface {
	Read() Token
	Unread()
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Read() Token {
	if s.pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}

	token := s.tokens[s.pos]
	s.pos++

	return token
}

func (s *SimpleTokenScanner) Unread() {
	if s.pos > 0 {
		s.pos--
	}
}
