package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "single integer",
			input: "5",
			want: []Token{
				{Kind: NUMBER, Value: "5", Pos: 0},
				{Kind: EOF, Pos: 1},
			},
		},
		{
			name:  "decimal number",
			input: "1.25",
			want: []Token{
				{Kind: NUMBER, Value: "1.25", Pos: 0},
				{Kind: EOF, Pos: 4},
			},
		},
		{
			name:  "whitespace is skipped",
			input: " 1 +\t2\n",
			want: []Token{
				{Kind: NUMBER, Value: "1", Pos: 1},
				{Kind: PLUS, Value: "+", Pos: 3},
				{Kind: NUMBER, Value: "2", Pos: 5},
				{Kind: EOF, Pos: 7},
			},
		},
		{
			name:  "all operators",
			input: "1+2-3*4/5^6",
			want: []Token{
				{Kind: NUMBER, Value: "1", Pos: 0},
				{Kind: PLUS, Value: "+", Pos: 1},
				{Kind: NUMBER, Value: "2", Pos: 2},
				{Kind: MINUS, Value: "-", Pos: 3},
				{Kind: NUMBER, Value: "3", Pos: 4},
				{Kind: ASTERISK, Value: "*", Pos: 5},
				{Kind: NUMBER, Value: "4", Pos: 6},
				{Kind: SLASH, Value: "/", Pos: 7},
				{Kind: NUMBER, Value: "5", Pos: 8},
				{Kind: CARET, Value: "^", Pos: 9},
				{Kind: NUMBER, Value: "6", Pos: 10},
				{Kind: EOF, Pos: 11},
			},
		},
		{
			name:  "parentheses and pipes",
			input: "(|5|)",
			want: []Token{
				{Kind: LPAREN, Value: "(", Pos: 0},
				{Kind: PIPE, Value: "|", Pos: 1},
				{Kind: NUMBER, Value: "5", Pos: 2},
				{Kind: PIPE, Value: "|", Pos: 3},
				{Kind: RPAREN, Value: ")", Pos: 4},
				{Kind: EOF, Pos: 5},
			},
		},
		{
			name:  "identifier run",
			input: "sin(1)",
			want: []Token{
				{Kind: IDENT, Value: "sin", Pos: 0},
				{Kind: LPAREN, Value: "(", Pos: 3},
				{Kind: NUMBER, Value: "1", Pos: 4},
				{Kind: RPAREN, Value: ")", Pos: 5},
				{Kind: EOF, Pos: 6},
			},
		},
		{
			name:  "unknown identifiers pass through",
			input: "foo",
			want: []Token{
				{Kind: IDENT, Value: "foo", Pos: 0},
				{Kind: EOF, Pos: 3},
			},
		},
		{
			name:  "empty input",
			input: "",
			want: []Token{
				{Kind: EOF, Pos: 0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := NewLexer([]byte(tc.input)).Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tc.want, tokens)
		})
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantChar byte
		wantPos  int
	}{
		{name: "hash", input: "1 # 2", wantChar: '#', wantPos: 2},
		{name: "comma", input: "sin(1,2)", wantChar: ',', wantPos: 5},
		{name: "equals", input: "1=2", wantChar: '=', wantPos: 1},
		{name: "dot without digits", input: "1 . 2", wantChar: '.', wantPos: 2},
		{name: "trailing dot", input: "1.", wantChar: '.', wantPos: 1},
		{name: "second decimal point", input: "1.5.2", wantChar: '.', wantPos: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := NewLexer([]byte(tc.input)).Tokenize()
			require.Nil(t, tokens)

			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tc.wantChar, lexErr.Char)
			assert.Equal(t, tc.wantPos, lexErr.Pos)
			assert.Equal(t, tc.wantPos, lexErr.Position())
		})
	}
}

func TestTokenizeEOFPosition(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{input: "5", want: 1},
		{input: "1.25", want: 4},
		{input: "foo", want: 3},
		{input: "sin", want: 3},
		{input: "1+2", want: 3},
		{input: "(1)", want: 3},
		{input: "5 ", want: 2},
		{input: "", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			tokens, err := NewLexer([]byte(tc.input)).Tokenize()
			require.NoError(t, err)
			require.NotEmpty(t, tokens)

			eof := tokens[len(tokens)-1]
			assert.Equal(t, EOF, eof.Kind)
			assert.Equal(t, tc.want, eof.Pos)
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	input := "1.5 + sin(2) * |3 - 4| ^ 2"

	first, err := NewLexer([]byte(input)).Tokenize()
	require.NoError(t, err)

	second, err := NewLexer([]byte(input)).Tokenize()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenString(t *testing.T) {
	number := Token{Kind: NUMBER, Value: "1.5"}
	assert.Equal(t, "NUMBER(1.5)", number.String())

	ident := Token{Kind: IDENT, Value: "sin"}
	assert.Equal(t, "IDENT(sin)", ident.String())

	plus := Token{Kind: PLUS, Value: "+"}
	assert.Equal(t, "PLUS()", plus.String())
}

func TestTokenScanner(t *testing.T) {
	tokens, err := NewLexer([]byte("1 + 2")).Tokenize()
	require.NoError(t, err)

	scanner := NewTokenScanner(tokens)
	assert.Equal(t, NUMBER, scanner.Read().Kind)
	assert.Equal(t, PLUS, scanner.Read().Kind)

	scanner.Unread()
	assert.Equal(t, PLUS, scanner.Read().Kind)
	assert.Equal(t, NUMBER, scanner.Read().Kind)
	assert.Equal(t, EOF, scanner.Read().Kind)

	// Reading past the end keeps returning EOF.
	assert.Equal(t, EOF, scanner.Read().Kind)
}
