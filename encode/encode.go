package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lsonfmt/go-lson/format"
	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth int
	wire  bool

	format format.Format

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. A nil node renders as the format's null
// keyword. Indented output ends with a newline, wire output does not.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if !es.wire {
		return writeString(w, "\n")
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return encodeNull(w, es)
	}
	es.colorType = node.Type
	switch node.Type {
	case ir.NullType:
		return encodeNull(w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		if es.format.IsLSON() {
			return encodeTable(node, w, es)
		}
		return encodeObject(node, w, es)
	default:
		panic("type")
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	unit := "  "
	if es.format.IsLSON() {
		unit = "\t"
	}
	return writeString(w, "\n"+strings.Repeat(unit, es.depth))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

// Leaf encoding

func encodeNull(w io.Writer, es *EncState) error {
	v := es.format.Null()
	return writeString(w, applyValueColor(es, ir.NullType, v))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	return writeString(w, applyValueColor(es, ir.BoolType, v))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		v = FormatFloat(*node.Float64)
	default:
		return fmt.Errorf("%w: number node without value", ErrEncoding)
	}
	return writeString(w, applyValueColor(es, ir.NumberType, v))
}

// FormatFloat renders f in the shortest form that parses back to
// exactly f, forced to re-parse as a float representation: a whole
// float gains a ".0" so it never collapses into an integer.
func FormatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	if es.format.IsLSON() {
		v = token.QuoteLSON(node.String)
	} else {
		v = token.QuoteJSON(node.String)
	}
	return writeString(w, applyValueColor(es, ir.StringType, v))
}

// Array encoding (JSON variant only)

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if es.format.IsLSON() {
		return fmt.Errorf("%w: lists exist only in the json variant", ErrEncoding)
	}
	n := len(node.Values)
	if n == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if !es.wire {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if !es.wire {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, "]")
}

// Object encoding (JSON variant: string keys only)

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i, yField := range node.Fields {
		if yField.Type != ir.StringType {
			return fmt.Errorf("%w: %s keys unsupported in %s",
				ErrEncoding, yField.Type, es.format)
		}
		if !es.wire {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		f := token.QuoteJSON(yField.String)
		sep := ":"
		if !es.wire {
			sep = ": "
		}
		f = applyColor(es, ir.ObjectType, FieldColor, f)
		if err := writeString(w, f+applyColor(es, ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if !es.wire {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

// Table encoding (LSON variant). Entries whose integer key matches the
// running implicit counter are written bare, exactly inverting the
// parser's auto-numbering; all other keys are written as
// `[key] = value` with the key in wire form.
func encodeTable(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	var nextImplicit int64 = 1
	for i, yField := range node.Fields {
		implicit := yField.Type == ir.NumberType &&
			yField.Int64 != nil && *yField.Int64 == nextImplicit
		if !es.wire {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if implicit {
			nextImplicit++
		} else {
			if err := encodeTableKey(yField, w, es); err != nil {
				return err
			}
			if yField.Type == ir.NumberType && yField.Int64 != nil {
				nextImplicit = *yField.Int64 + 1
			}
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if es.wire {
			if i < n-1 {
				if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
					return err
				}
			}
			continue
		}
		// every indented entry takes a trailing comma; Lua tables
		// tolerate one before the closing brace
		if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
			return err
		}
		if implicit {
			c := fmt.Sprintf(" -- [%d]", nextImplicit-1)
			if err := writeString(w, applyColor(es, ir.ObjectType, CommentColor, c)); err != nil {
				return err
			}
		}
	}
	es.depth--
	if !es.wire {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

func encodeTableKey(yField *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "[")); err != nil {
		return err
	}
	keyState := &EncState{format: es.format, wire: true, Color: es.Color}
	if err := encode(yField, w, keyState); err != nil {
		return err
	}
	sep := "] = "
	if es.wire {
		sep = "]="
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, sep))
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}
