// Package safe provides never-failing navigation over ir.Node trees.
//
// A safe.Value is a tri-state view of a lookup result: found, found
// null, or missing. Keyed and indexed lookups on a missing value, a
// scalar, or an absent key all yield the missing state rather than an
// error, so long chains resolve without a check at every step:
//
//	port, ok := safe.Wrap(cfg).Key("server").Key("port").Int64(conv.Strict)
package safe

import (
	"github.com/lsonfmt/go-lson/conv"
	"github.com/lsonfmt/go-lson/ir"
)

type Value struct {
	node *ir.Node
	ok   bool
}

// Wrap starts a chain at n. A nil n is a found null, not a miss.
func Wrap(n *ir.Node) Value {
	return Value{node: n, ok: true}
}

// Missing is the miss sentinel state.
func Missing() Value {
	return Value{}
}

// Key looks up a string key. Misses on non-objects and absent keys.
func (v Value) Key(name string) Value {
	return v.KeyNode(ir.FromString(name))
}

// KeyNode looks up an arbitrary key node.
func (v Value) KeyNode(key *ir.Node) Value {
	if !v.ok || v.node == nil || v.node.Type != ir.ObjectType {
		return Missing()
	}
	res := ir.GetKey(v.node, key)
	if res == nil {
		return Missing()
	}
	return Value{node: res, ok: true}
}

// Index looks up an array element. Misses on non-arrays and out of
// bounds indices.
func (v Value) Index(i int) Value {
	if !v.ok || v.node == nil || v.node.Type != ir.ArrayType {
		return Missing()
	}
	if i < 0 || i >= len(v.node.Values) {
		return Missing()
	}
	return Value{node: v.node.Values[i], ok: true}
}

// Node returns the underlying node and whether the lookup found one.
func (v Value) Node() (*ir.Node, bool) {
	return v.node, v.ok
}

func (v Value) IsMissing() bool {
	return !v.ok
}

// IsNull reports a found null.
func (v Value) IsNull() bool {
	return v.ok && (v.node == nil || v.node.Type == ir.NullType)
}

// IsNullOrMissing treats a miss like a null, the usual convention for
// optional lookups.
func (v Value) IsNullOrMissing() bool {
	return !v.ok || v.IsNull()
}

// Conversion accessors. On a miss every accessor reports ok=false,
// never an error.

func (v Value) Int64(p conv.Policy) (int64, bool) {
	if !v.ok {
		return 0, false
	}
	return conv.Int64Safe(v.node, p)
}

func (v Value) Int32(p conv.Policy) (int32, bool) {
	if !v.ok {
		return 0, false
	}
	return conv.Int32Safe(v.node, p)
}

func (v Value) Float64(p conv.Policy) (float64, bool) {
	if !v.ok {
		return 0, false
	}
	return conv.Float64Safe(v.node, p)
}

func (v Value) Bool(p conv.Policy) (bool, bool) {
	if !v.ok {
		return false, false
	}
	return conv.BoolSafe(v.node, p)
}

func (v Value) String(p conv.Policy) (string, bool) {
	if !v.ok {
		return "", false
	}
	return conv.StringSafe(v.node, p)
}
