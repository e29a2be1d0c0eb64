package jsfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lsonfmt/go-lson/encode"
	"github.com/lsonfmt/go-lson/ir"
)

var ErrTemplate = errors.New("template error")

// Format substitutes {{name}} placeholders in src with the wire JSON
// form of vars[name]. An unknown placeholder name is an error.
func Format(src string, vars map[string]*ir.Node) (string, error) {
	f := &formatter{src: src, vars: vars}
	if err := f.run(); err != nil {
		return "", err
	}
	return f.out.String(), nil
}

// Fmt is Format over alternating name, value arguments. Values may be
// *ir.Node, nil, string, bool, int, int32, int64, float32 or float64.
func Fmt(src string, pairs ...any) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("%w: odd argument count", ErrTemplate)
	}
	vars := make(map[string]*ir.Node, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return "", fmt.Errorf("%w: placeholder name must be a string, have %T",
				ErrTemplate, pairs[i])
		}
		node, err := toNode(pairs[i+1])
		if err != nil {
			return "", err
		}
		vars[name] = node
	}
	return Format(src, vars)
}

func toNode(v any) (*ir.Node, error) {
	switch vv := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return vv, nil
	case string:
		return ir.FromString(vv), nil
	case bool:
		return ir.FromBool(vv), nil
	case int:
		return ir.FromInt(int64(vv)), nil
	case int32:
		return ir.FromInt(int64(vv)), nil
	case int64:
		return ir.FromInt(vv), nil
	case float32:
		return ir.FromFloat(float64(vv))
	case float64:
		return ir.FromFloat(vv)
	default:
		return nil, fmt.Errorf("%w: cannot template %T", ErrTemplate, v)
	}
}

type formatter struct {
	src  string
	vars map[string]*ir.Node
	i    int
	out  strings.Builder

	// emitter state
	emitted  bool
	lastChar byte
	gap      bool // whitespace, a comment, or a substitution since the
	// last emitted token

	// true when the previous significant token could end an
	// expression, which makes a following '/' division, not a regex
	endsExpr bool
}

func (f *formatter) run() error {
	for f.i < len(f.src) {
		c := f.src[f.i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			f.i++
			f.gap = true
		case c == '/' && f.peek(1) == '/':
			f.lineComment()
		case c == '/' && f.peek(1) == '*':
			if err := f.blockComment(); err != nil {
				return err
			}
		case c == '\'' || c == '"' || c == '`':
			if err := f.stringLit(c); err != nil {
				return err
			}
		case c == '/':
			if f.endsExpr {
				f.emit("/", false)
				f.i++
				f.endsExpr = false
			} else if err := f.regexLit(); err != nil {
				return err
			}
		case c == '{' && f.peek(1) == '{':
			ok, err := f.placeholder()
			if err != nil {
				return err
			}
			if !ok {
				f.emit("{", false)
				f.i++
				f.endsExpr = false
			}
		case isDigit(c) || c == '.' && isDigit(f.peek(1)):
			f.number()
		case isIdentStart(c):
			f.ident()
		default:
			f.punct(c)
		}
	}
	return nil
}

func (f *formatter) peek(k int) byte {
	if f.i+k >= len(f.src) {
		return 0
	}
	return f.src[f.i+k]
}

func (f *formatter) lineComment() {
	for f.i < len(f.src) && f.src[f.i] != '\n' {
		f.i++
	}
	f.gap = true
}

func (f *formatter) blockComment() error {
	off := f.i
	f.i += 2
	for f.i+1 < len(f.src) {
		if f.src[f.i] == '*' && f.src[f.i+1] == '/' {
			f.i += 2
			f.gap = true
			return nil
		}
		f.i++
	}
	return fmt.Errorf("%w: unterminated comment at offset %d", ErrTemplate, off)
}

func (f *formatter) stringLit(q byte) error {
	off := f.i
	f.i++
	for f.i < len(f.src) {
		c := f.src[f.i]
		if c == '\\' {
			f.i += 2
			continue
		}
		if c == q {
			f.i++
			f.emit(f.src[off:f.i], false)
			f.endsExpr = true
			return nil
		}
		if c == '\n' && q != '`' {
			break
		}
		f.i++
	}
	return fmt.Errorf("%w: unterminated string at offset %d", ErrTemplate, off)
}

// regexLit scans /pattern/flags; '/' inside a character class does not
// terminate the literal.
func (f *formatter) regexLit() error {
	off := f.i
	f.i++
	inClass := false
	for f.i < len(f.src) {
		c := f.src[f.i]
		switch {
		case c == '\\':
			f.i += 2
			continue
		case c == '\n':
			return fmt.Errorf("%w: unterminated regex at offset %d", ErrTemplate, off)
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			f.i++
			for f.i < len(f.src) && isIdentPart(f.src[f.i]) {
				f.i++
			}
			f.emit(f.src[off:f.i], false)
			f.endsExpr = true
			return nil
		}
		f.i++
	}
	return fmt.Errorf("%w: unterminated regex at offset %d", ErrTemplate, off)
}

// placeholder attempts {{name}} at the cursor and reports whether it
// matched.
func (f *formatter) placeholder() (bool, error) {
	j := f.i + 2
	start := j
	for j < len(f.src) && isIdentPart(f.src[j]) {
		j++
	}
	if j == start || j+1 >= len(f.src) || f.src[j] != '}' || f.src[j+1] != '}' {
		return false, nil
	}
	name := f.src[start:j]
	node, ok := f.vars[name]
	if !ok {
		return false, fmt.Errorf("%w: unknown placeholder %q", ErrTemplate, name)
	}
	v, err := encode.String(node, encode.EncodeJSON(), encode.EncodeWire(true))
	if err != nil {
		return false, err
	}
	f.i = j + 2
	f.emit(v, true)
	f.endsExpr = true
	return true, nil
}

func (f *formatter) number() {
	off := f.i
	f.i++
	for f.i < len(f.src) {
		c := f.src[f.i]
		if isIdentPart(c) || c == '.' {
			f.i++
			continue
		}
		// exponent signs bind to the number
		if (c == '+' || c == '-') && (f.src[f.i-1] == 'e' || f.src[f.i-1] == 'E') {
			f.i++
			continue
		}
		break
	}
	f.emit(f.src[off:f.i], false)
	f.endsExpr = true
}

func (f *formatter) ident() {
	off := f.i
	for f.i < len(f.src) && isIdentPart(f.src[f.i]) {
		f.i++
	}
	word := f.src[off:f.i]
	f.emit(word, false)
	// return yields a value position: a '/' after it starts a regex
	f.endsExpr = word != "return"
}

func (f *formatter) punct(c byte) {
	f.emit(f.src[f.i : f.i+1], false)
	f.i++
	f.endsExpr = c == ')' || c == ']'
}

// emit writes a significant token, inserting a space when the previous
// token was separated in the source (or either side was substituted)
// and the two would fuse into a different lexeme when touching.
func (f *formatter) emit(text string, substituted bool) {
	if text == "" {
		return
	}
	if f.emitted && (f.gap || substituted) && wouldFuse(f.lastChar, text[0]) {
		f.out.WriteByte(' ')
	}
	f.out.WriteString(text)
	f.emitted = true
	f.lastChar = text[len(text)-1]
	f.gap = substituted
}

func wouldFuse(a, b byte) bool {
	if isIdentPart(a) && isIdentPart(b) {
		return true
	}
	if a == '+' && b == '+' {
		return true
	}
	if a == '-' && b == '-' {
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
