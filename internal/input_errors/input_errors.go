package input_errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// InputError is implemented by every error produced for invalid input, from
// both the lexer and the parser. Position reports the byte offset of the
// offending character or token in the input string.
type InputError interface {
	error
	Position() int
}

// Print writes err to w the way the compiler front end reports failures: an
// ERROR line, and, when the error carries a position, the input with a caret
// marking the offending spot.
func Print(w io.Writer, input string, err error) {
	fmt.Fprintf(w, "ERROR: %s\n", err)

	var inputErr InputError
	if !errors.As(err, &inputErr) {
		return
	}

	pos := inputErr.Position()
	if pos < 0 || pos > len(input) {
		return
	}

	fmt.Fprintf(w, "  %s\n", input)
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", pos))
}
