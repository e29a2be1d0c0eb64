package encode

import (
	"fmt"
	"io"

	"github.com/lsonfmt/go-lson/format"
	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/token"
)

// FormatVars writes an object node as an LSON variable list, one
// `name = value` binding per entry in entry order. Keys must be
// identifier-shaped strings.
func FormatVars(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		return nil
	}
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: variable list needs an object, have %s",
			ErrEncoding, node.Type)
	}
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	es.format = format.LSONFormat
	for i, yField := range node.Fields {
		if yField.Type != ir.StringType || token.Ident([]byte(yField.String)) != len(yField.String) {
			return fmt.Errorf("%w: %s is not a variable name",
				ErrEncoding, ir.KeyString(yField))
		}
		name := applyColor(es, ir.ObjectType, FieldColor, yField.String)
		if err := writeString(w, name+applyColor(es, ir.ObjectType, SepColor, " = ")); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 || !es.wire {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
