package parse

import (
	"fmt"

	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/token"
)

// ParseVars parses an LSON variable list: zero or more
// `name = value` bindings separated by whitespace and comments. The
// result is an ObjectType node with string keys in binding order.
func ParseVars(d []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(d, append(opts, ParseLSON()))
	var kvs []ir.KeyVal
	for {
		p.ws()
		if p.i >= len(p.d) {
			break
		}
		nameOff := p.i
		name, err := p.varName()
		if err != nil {
			return nil, err
		}
		for i := range kvs {
			if kvs[i].Key.String == name.String {
				return nil, p.wrap(nameOff,
					fmt.Errorf("%w: %s", ir.ErrKeyCollision, ir.KeyString(name)))
			}
		}
		p.ws()
		if p.i >= len(p.d) || p.d[p.i] != '=' {
			return nil, p.errf(p.i, "expected '=' after variable name %q", name.String)
		}
		p.i++
		p.ws()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: name, Val: val})
	}
	return ir.FromKeyVals(kvs)
}

func ParseVarsString(v string, opts ...ParseOption) (*ir.Node, error) {
	return ParseVars([]byte(v), opts...)
}

// TryParseVars reports parse failure as ok=false instead of an error.
func TryParseVars(d []byte, opts ...ParseOption) (*ir.Node, bool) {
	res, err := ParseVars(d, opts...)
	return res, err == nil
}

func (p *parser) varName() (*ir.Node, error) {
	off := p.i
	n := token.Ident(p.d[off:])
	if n == 0 {
		return nil, p.errf(off, "expected variable name")
	}
	word := string(p.d[off : off+n])
	switch word {
	case "true", "false", "nil":
		return nil, p.errf(off, "%q cannot name a variable", word)
	}
	p.i += n
	return p.track(ir.FromString(word), off), nil
}
