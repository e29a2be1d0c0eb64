package conv

import (
	"errors"
	"fmt"

	"github.com/lsonfmt/go-lson/ir"
)

var ErrConversion = errors.New("conversion error")

// ConversionError reports a value whose kind is incompatible with the
// requested target under the given policy.
type ConversionError struct {
	// Kind is the source value's kind.
	Kind ir.Type
	// Target names the requested primitive type.
	Target string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: cannot convert %s to %s", ErrConversion, e.Kind, e.Target)
}

func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

func convErr(n *ir.Node, target string) error {
	kind := ir.NullType
	if n != nil {
		kind = n.Type
	}
	return &ConversionError{Kind: kind, Target: target}
}
