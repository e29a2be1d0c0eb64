package safe

import (
	"testing"

	"github.com/lsonfmt/go-lson/conv"
	"github.com/lsonfmt/go-lson/ir"
	"github.com/lsonfmt/go-lson/parse"
)

func mustParse(t *testing.T, v string) *ir.Node {
	t.Helper()
	res, err := parse.ParseString(v, parse.ParseJSON())
	if err != nil {
		t.Fatalf("ParseString(%q): %v", v, err)
	}
	return res
}

func TestChaining(t *testing.T) {
	cfg := mustParse(t, `{
		"server": {"port": 8080, "tls": false},
		"tags": ["a", "b"],
		"empty": null
	}`)

	if v, ok := Wrap(cfg).Key("server").Key("port").Int64(conv.Strict); !ok || v != 8080 {
		t.Errorf("server.port = %d, %v", v, ok)
	}
	if v, ok := Wrap(cfg).Key("server").Key("tls").Bool(conv.Strict); !ok || v {
		t.Errorf("server.tls = %v, %v", v, ok)
	}
	if v, ok := Wrap(cfg).Key("tags").Index(1).String(conv.Strict); !ok || v != "b" {
		t.Errorf("tags[1] = %q, %v", v, ok)
	}
}

func TestMissingChains(t *testing.T) {
	empty := mustParse(t, `{}`)
	tests := []struct {
		name string
		v    Value
	}{
		{"absent key", Wrap(empty).Key("missing")},
		{"chain through absent key", Wrap(empty).Key("missing").Key("deeper")},
		{"key on scalar", Wrap(ir.FromInt(1)).Key("x")},
		{"index on object", Wrap(empty).Index(0)},
		{"index out of bounds", Wrap(ir.FromSlice(nil)).Index(0)},
		{"negative index", Wrap(ir.FromSlice([]*ir.Node{ir.FromInt(1)})).Index(-1)},
		{"index after miss", Wrap(empty).Key("missing").Index(3)},
		{"missing sentinel", Missing()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.v.IsMissing() {
				t.Fatalf("IsMissing = false")
			}
			if s, ok := tt.v.String(conv.Strict); ok || s != "" {
				t.Errorf("String = %q, %v; want zero value", s, ok)
			}
			if i, ok := tt.v.Int64(conv.Lenient); ok || i != 0 {
				t.Errorf("Int64 = %d, %v; want zero value", i, ok)
			}
			if n, ok := tt.v.Node(); ok || n != nil {
				t.Errorf("Node = %v, %v", n, ok)
			}
		})
	}
}

func TestNullVersusMissing(t *testing.T) {
	obj := mustParse(t, `{"a": null}`)

	found := Wrap(obj).Key("a")
	if found.IsMissing() {
		t.Errorf("found null reported missing")
	}
	if !found.IsNull() || !found.IsNullOrMissing() {
		t.Errorf("found null not reported null")
	}

	miss := Wrap(obj).Key("b")
	if miss.IsNull() {
		t.Errorf("miss reported null")
	}
	if !miss.IsNullOrMissing() {
		t.Errorf("miss not covered by IsNullOrMissing")
	}

	// a wrapped nil is a found null
	root := Wrap(nil)
	if root.IsMissing() || !root.IsNull() {
		t.Errorf("Wrap(nil): IsMissing=%v IsNull=%v", root.IsMissing(), root.IsNull())
	}
}

func TestKeyNode(t *testing.T) {
	table := mustParse(t, `{"1": "one"}`)
	if v, ok := Wrap(table).KeyNode(ir.FromString("1")).String(conv.Strict); !ok || v != "one" {
		t.Errorf("KeyNode(\"1\") = %q, %v", v, ok)
	}
	// int key 1 is not string key "1"
	if !Wrap(table).KeyNode(ir.FromInt(1)).IsMissing() {
		t.Errorf("int key matched a string key")
	}
}

func TestAccessorPolicies(t *testing.T) {
	obj := mustParse(t, `{"n": "42"}`)
	if _, ok := Wrap(obj).Key("n").Int64(conv.Strict); ok {
		t.Errorf("strict policy coerced a string")
	}
	if v, ok := Wrap(obj).Key("n").Int64(conv.Lenient); !ok || v != 42 {
		t.Errorf("lenient Int64 = %d, %v", v, ok)
	}
	if v, ok := Wrap(obj).Key("n").Int32(conv.Lenient); !ok || v != 42 {
		t.Errorf("lenient Int32 = %d, %v", v, ok)
	}
	if v, ok := Wrap(obj).Key("n").Float64(conv.Lenient); !ok || v != 42 {
		t.Errorf("lenient Float64 = %g, %v", v, ok)
	}
}
