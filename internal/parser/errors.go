package parser

import (
	"fmt"

	"github.com/kdkasad/eqnp/internal/input_errors"
)

// MissingOperandError reports a binary operator with a missing left or right
// operand. Operator is empty when the expression simply ends where an operand
// was expected.
type MissingOperandError struct {
	Operator string
	Pos      int
}

func (e *MissingOperandError) Error() string {
	if e.Operator == "" {
		return fmt.Sprintf("missing operand at position %d", e.Pos)
	}
	return fmt.Sprintf("missing operand for operator '%s' at position %d", e.Operator, e.Pos)
}

func (e *MissingOperandError) Position() int {
	return e.Pos
}

// UnbalancedDelimiterError reports a parenthesis or absolute-value bar with no
// counterpart. For an unclosed delimiter Pos is the position of the opener;
// for a stray closer it is the position of the closer.
type UnbalancedDelimiterError struct {
	Delimiter string
	Pos       int
}

func (e *UnbalancedDelimiterError) Error() string {
	return fmt.Sprintf("unbalanced '%s' delimiter at position %d", e.Delimiter, e.Pos)
}

func (e *UnbalancedDelimiterError) Position() int {
	return e.Pos
}

// ExpectedOpenParenError reports a function name not followed by '('.
type ExpectedOpenParenError struct {
	Name string
	Pos  int
}

func (e *ExpectedOpenParenError) Error() string {
	return fmt.Sprintf("expected '(' after function name '%s' at position %d", e.Name, e.Pos)
}

func (e *ExpectedOpenParenError) Position() int {
	return e.Pos
}

// InvalidFunctionArityError reports a call with zero argument expressions or
// with a second top-level argument expression.
type InvalidFunctionArityError struct {
	Name string
	Args int
	Pos  int
}

func (e *InvalidFunctionArityError) Error() string {
	return fmt.Sprintf("function '%s' takes exactly one argument, got %d", e.Name, e.Args)
}

func (e *InvalidFunctionArityError) Position() int {
	return e.Pos
}

// InvalidNegationError reports a unary '-' followed by anything other than a
// number literal.
type InvalidNegationError struct {
	Pos int
}

func (e *InvalidNegationError) Error() string {
	return fmt.Sprintf("invalid negation at position %d: '-' may only negate a number literal", e.Pos)
}

func (e *InvalidNegationError) Position() int {
	return e.Pos
}

// UnknownFunctionError reports an identifier that is not a known function
// name.
type UnknownFunctionError struct {
	Name string
	Pos  int
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function: '%s'", e.Name)
}

func (e *UnknownFunctionError) Position() int {
	return e.Pos
}

// EmptyExpressionError reports empty (or all-whitespace) input.
type EmptyExpressionError struct{}

func (e *EmptyExpressionError) Error() string {
	return "empty expression"
}

func (e *EmptyExpressionError) Position() int {
	return 0
}

// TrailingInputError reports tokens left over after a complete expression.
type TrailingInputError struct {
	Value string
	Pos   int
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("trailing input after expression: '%s' at position %d", e.Value, e.Pos)
}

func (e *TrailingInputError) Position() int {
	return e.Pos
}

var (
	_ input_errors.InputError = (*MissingOperandError)(nil)
	_ input_errors.InputError = (*UnbalancedDelimiterError)(nil)
	_ input_errors.InputError = (*ExpectedOpenParenError)(nil)
	_ input_errors.InputError = (*InvalidFunctionArityError)(nil)
	_ input_errors.InputError = (*InvalidNegationError)(nil)
	_ input_errors.InputError = (*UnknownFunctionError)(nil)
	_ input_errors.InputError = (*EmptyExpressionError)(nil)
	_ input_errors.InputError = (*TrailingInputError)(nil)
)
