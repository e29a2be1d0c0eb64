package parse

import (
	"errors"
	"fmt"

	"github.com/lsonfmt/go-lson/token"
)

var ErrParse = errors.New("parse error")

// ParseError is the error type for malformed input. It carries the
// byte offset of the failure; line, column and snippet are derived on
// demand from the offset index.
type ParseError struct {
	Err error
	Pos *token.Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %s", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Offset returns the byte offset of the failure.
func (e *ParseError) Offset() int {
	return e.Pos.I
}

// Line returns the 1-based line of the failure.
func (e *ParseError) Line() int {
	return e.Pos.Line()
}

// Col returns the 1-based column of the failure.
func (e *ParseError) Col() int {
	return e.Pos.Col()
}

// Snippet returns the document text around the failure point.
func (e *ParseError) Snippet() string {
	return e.Pos.Snippet()
}
