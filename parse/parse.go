package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/token"
)

// Parse parses a single value and requires the rest of the input to be
// whitespace (and comments, in LSON).
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, opts)
	p.ws()
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	p.ws()
	if p.i != len(p.d) {
		return nil, p.errf(p.i, "trailing input after value")
	}
	return res, nil
}

func ParseString(v string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(v), opts...)
}

// TryParse reports parse failure as ok=false instead of an error.
func TryParse(d []byte, opts ...ParseOption) (*ir.Node, bool) {
	res, err := Parse(d, opts...)
	return res, err == nil
}

func newParser(d []byte, opts []ParseOption) *parser {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	return &parser{
		d:   d,
		doc: token.NewPosDoc(d),
		o:   pOpts,
	}
}

type parser struct {
	d     []byte
	i     int
	depth int
	doc   *token.PosDoc
	o     *parseOpts
}

func (p *parser) lson() bool {
	return p.o.format.IsLSON()
}

func (p *parser) errf(off int, msg string, args ...any) error {
	return &ParseError{
		Err: fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(msg, args...)),
		Pos: p.doc.Pos(off),
	}
}

func (p *parser) wrap(off int, err error) error {
	return &ParseError{
		Err: err,
		Pos: p.doc.Pos(off),
	}
}

func (p *parser) track(node *ir.Node, off int) *ir.Node {
	if p.o.positions != nil {
		p.o.positions[node] = p.doc.Pos(off)
	}
	return node
}

// ws consumes whitespace, and in LSON also `--` comments up to end of
// line.
func (p *parser) ws() {
	for p.i < len(p.d) {
		switch p.d[p.i] {
		case ' ', '\t', '\n', '\r':
			p.i++
		case '-':
			if !p.lson() || p.i+1 >= len(p.d) || p.d[p.i+1] != '-' {
				return
			}
			p.i += 2
			for p.i < len(p.d) && p.d[p.i] != '\n' {
				p.i++
			}
		default:
			return
		}
	}
}

func (p *parser) value() (*ir.Node, error) {
	if p.i >= len(p.d) {
		return nil, p.errf(p.i, "unexpected end of input")
	}
	c := p.d[p.i]
	switch {
	case c == '{':
		if p.lson() {
			return p.lsonDict()
		}
		return p.jsonObject()
	case c == '[':
		if p.lson() {
			return nil, p.errf(p.i, "unexpected %q: lists exist only in the json variant", c)
		}
		return p.jsonArray()
	case c == '"':
		return p.quoted('"')
	case c == '\'':
		if p.lson() || p.o.lenient {
			return p.quoted('\'')
		}
		return nil, p.errf(p.i, "unexpected %q", c)
	case c == '-' || token.AsciiDigit(c):
		return p.number()
	default:
		return p.keyword()
	}
}

func (p *parser) enter(off int) error {
	p.depth++
	if p.depth > p.o.maxDepth {
		return p.errf(off, "nesting deeper than %d", p.o.maxDepth)
	}
	return nil
}

func (p *parser) keyword() (*ir.Node, error) {
	off := p.i
	n := token.Ident(p.d[off:])
	if n == 0 {
		return nil, p.errf(off, "unexpected %q", p.d[off])
	}
	p.i += n
	switch word := string(p.d[off : off+n]); word {
	case "true":
		return p.track(ir.FromBool(true), off), nil
	case "false":
		return p.track(ir.FromBool(false), off), nil
	case "null":
		if !p.lson() {
			return p.track(ir.Null(), off), nil
		}
	case "nil":
		if p.lson() {
			return p.track(ir.Null(), off), nil
		}
	}
	return nil, p.errf(off, "unexpected identifier %q", p.d[off:off+n])
}

func (p *parser) number() (*ir.Node, error) {
	off := p.i
	n, _, err := token.Number(p.d[off:])
	if err != nil {
		return nil, p.wrap(off, fmt.Errorf("%w: %w", ErrParse, err))
	}
	text := string(p.d[off : off+n])
	p.i += n
	if i64, err := strconv.ParseInt(text, 10, 64); err == nil {
		return p.track(ir.FromInt(i64), off), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errf(off, "number out of range: %s", text)
	}
	fy, err := ir.FromFloat(f)
	if err != nil {
		return nil, p.errf(off, "number out of range: %s", text)
	}
	return p.track(fy, off), nil
}

func (p *parser) quoted(q byte) (*ir.Node, error) {
	off := p.i
	p.i++ // opening quote
	var sb strings.Builder
	for {
		if p.i >= len(p.d) {
			return nil, p.errf(p.i, "unterminated string")
		}
		c := p.d[p.i]
		switch {
		case c == q:
			p.i++
			return p.track(ir.FromString(sb.String()), off), nil
		case c == '\\':
			if err := p.escape(&sb); err != nil {
				return nil, err
			}
		case c == '\n':
			return nil, p.errf(p.i, "raw newline in string")
		case c < 0x20 && !p.lson():
			return nil, p.errf(p.i, "control character 0x%02x in string", c)
		default:
			sb.WriteByte(c)
			p.i++
		}
	}
}

func (p *parser) escape(sb *strings.Builder) error {
	off := p.i
	p.i++ // backslash
	if p.i >= len(p.d) {
		return p.errf(off, "unterminated escape")
	}
	c := p.d[p.i]
	p.i++
	switch c {
	case '"', '\'', '\\':
		sb.WriteByte(c)
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'a':
		if !p.lson() {
			return p.errf(off, "unknown escape \\%c", c)
		}
		sb.WriteByte('\a')
	case 'v':
		if !p.lson() {
			return p.errf(off, "unknown escape \\%c", c)
		}
		sb.WriteByte('\v')
	case '/':
		if p.lson() {
			return p.errf(off, "unknown escape \\%c", c)
		}
		sb.WriteByte('/')
	case 'u':
		if p.lson() {
			return p.errf(off, "unknown escape \\%c", c)
		}
		return p.unicodeEscape(off, sb)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.errf(off, "digit escapes are not implemented")
	default:
		return p.errf(off, "unknown escape \\%c", c)
	}
	return nil
}

// unicodeEscape decodes \uXXXX with exactly 4 hex digits, pairing
// UTF-16 surrogates when a second escape follows.
func (p *parser) unicodeEscape(off int, sb *strings.Builder) error {
	u, err := p.hex4(off)
	if err != nil {
		return err
	}
	r := rune(u)
	if utf16.IsSurrogate(r) && p.i+1 < len(p.d) && p.d[p.i] == '\\' && p.d[p.i+1] == 'u' {
		off2 := p.i
		p.i += 2
		u2, err := p.hex4(off2)
		if err != nil {
			return err
		}
		if dec := utf16.DecodeRune(r, rune(u2)); dec != utf8.RuneError {
			sb.WriteRune(dec)
			return nil
		}
		// not a matching low surrogate: only the first escape degrades,
		// the second stands on its own and is re-scanned
		sb.WriteRune(utf8.RuneError)
		p.i = off2
		return nil
	}
	if utf16.IsSurrogate(r) {
		r = utf8.RuneError
	}
	sb.WriteRune(r)
	return nil
}

func (p *parser) hex4(off int) (uint32, error) {
	if p.i+4 > len(p.d) {
		return 0, p.errf(off, "\\u needs exactly 4 hex digits")
	}
	var u uint32
	for k := 0; k < 4; k++ {
		c := p.d[p.i+k]
		switch {
		case c >= '0' && c <= '9':
			u = u<<4 | uint32(c-'0')
		case c >= 'a' && c <= 'f':
			u = u<<4 | uint32(c-'a'+10)
		case c >= 'A' && c <= 'F':
			u = u<<4 | uint32(c-'A'+10)
		default:
			return 0, p.errf(off, "\\u needs exactly 4 hex digits")
		}
	}
	p.i += 4
	return u, nil
}

func (p *parser) jsonArray() (*ir.Node, error) {
	off := p.i
	if err := p.enter(off); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.i++ // [
	arr := &ir.Node{Type: ir.ArrayType}
	p.track(arr, off)
	p.ws()
	if p.i < len(p.d) && p.d[p.i] == ']' {
		p.i++
		return arr, nil
	}
	for {
		elt, err := p.value()
		if err != nil {
			return nil, err
		}
		elt.Parent = arr
		elt.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, elt)
		p.ws()
		if p.i >= len(p.d) {
			return nil, p.errf(p.i, "unterminated array")
		}
		switch p.d[p.i] {
		case ',':
			p.i++
			p.ws()
			// a trailing comma is an error: the next token must be a
			// value, which p.value enforces
		case ']':
			p.i++
			return arr, nil
		default:
			return nil, p.errf(p.i, "expected ',' or ']' in array")
		}
	}
}

func (p *parser) jsonObject() (*ir.Node, error) {
	off := p.i
	if err := p.enter(off); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.i++ // {
	obj := &ir.Node{Type: ir.ObjectType}
	p.track(obj, off)
	p.ws()
	if p.i < len(p.d) && p.d[p.i] == '}' {
		p.i++
		return obj, nil
	}
	var kvs []ir.KeyVal
	for {
		keyOff := p.i
		key, err := p.jsonKey()
		if err != nil {
			return nil, err
		}
		for i := range kvs {
			if ir.Equal(kvs[i].Key, key) {
				return nil, p.wrap(keyOff,
					fmt.Errorf("%w: %s", ir.ErrKeyCollision, ir.KeyString(key)))
			}
		}
		p.ws()
		if p.i >= len(p.d) || p.d[p.i] != ':' {
			return nil, p.errf(p.i, "expected ':' after object key")
		}
		p.i++
		p.ws()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		p.ws()
		if p.i >= len(p.d) {
			return nil, p.errf(p.i, "unterminated object")
		}
		switch p.d[p.i] {
		case ',':
			p.i++
			p.ws()
		case '}':
			p.i++
			if _, err := ir.FromKeyValsAt(obj, kvs); err != nil {
				return nil, p.wrap(off, err)
			}
			return obj, nil
		default:
			return nil, p.errf(p.i, "expected ',' or '}' in object")
		}
	}
}

func (p *parser) jsonKey() (*ir.Node, error) {
	if p.i >= len(p.d) {
		return nil, p.errf(p.i, "unexpected end of input in object")
	}
	c := p.d[p.i]
	switch {
	case c == '"':
		return p.quoted('"')
	case c == '\'' && p.o.lenient:
		return p.quoted('\'')
	default:
		if !p.o.lenient {
			return nil, p.errf(p.i, "expected string key")
		}
		off := p.i
		n := token.Ident(p.d[off:])
		if n == 0 {
			return nil, p.errf(off, "expected object key")
		}
		p.i += n
		return p.track(ir.FromString(string(p.d[off:off+n])), off), nil
	}
}

// lsonDict parses a Lua-style table constructor. Entries are either
// `[keyExpr] = value` or a bare value, which takes the next implicit
// integer key. The implicit counter starts at 1 and, after an explicit
// integer key K, continues at K+1.
func (p *parser) lsonDict() (*ir.Node, error) {
	off := p.i
	if err := p.enter(off); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	p.i++ // {
	obj := &ir.Node{Type: ir.ObjectType}
	p.track(obj, off)
	var (
		kvs          []ir.KeyVal
		nextImplicit int64 = 1
	)
	for {
		p.ws()
		if p.i >= len(p.d) {
			return nil, p.errf(p.i, "unterminated table")
		}
		if p.d[p.i] == '}' {
			p.i++
			if _, err := ir.FromKeyValsAt(obj, kvs); err != nil {
				return nil, p.wrap(off, err)
			}
			return obj, nil
		}
		keyOff := p.i
		var kv ir.KeyVal
		if p.d[p.i] == '[' {
			p.i++
			p.ws()
			key, err := p.value()
			if err != nil {
				return nil, err
			}
			p.ws()
			if p.i >= len(p.d) || p.d[p.i] != ']' {
				return nil, p.errf(p.i, "expected ']' after table key")
			}
			p.i++
			p.ws()
			if p.i >= len(p.d) || p.d[p.i] != '=' {
				return nil, p.errf(p.i, "expected '=' after table key")
			}
			p.i++
			p.ws()
			val, err := p.value()
			if err != nil {
				return nil, err
			}
			if key.Type == ir.NumberType && key.Int64 != nil {
				nextImplicit = *key.Int64 + 1
			}
			kv = ir.KeyVal{Key: key, Val: val}
		} else {
			val, err := p.value()
			if err != nil {
				return nil, err
			}
			kv = ir.KeyVal{Key: ir.FromInt(nextImplicit), Val: val}
			nextImplicit++
		}
		for i := range kvs {
			if ir.Equal(kvs[i].Key, kv.Key) {
				return nil, p.wrap(keyOff,
					fmt.Errorf("%w: %s", ir.ErrKeyCollision, ir.KeyString(kv.Key)))
			}
		}
		kvs = append(kvs, kv)
		p.ws()
		if p.i >= len(p.d) {
			return nil, p.errf(p.i, "unterminated table")
		}
		switch p.d[p.i] {
		case ',':
			p.i++
			// a trailing comma before '}' is tolerated, Lua style
		case '}':
			// final entry without comma
		default:
			return nil, p.errf(p.i, "expected ',' or '}' in table")
		}
	}
}
