package ir

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromFloat builds a float-represented number. NaN and the infinities
// are rejected.
func FromFloat(f float64) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNonFinite, f)
	}
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}, nil
}

// MustFloat is FromFloat for values known to be finite.
func MustFloat(f float64) *Node {
	n, err := FromFloat(f)
	if err != nil {
		panic(err)
	}
	return n
}

// FromDecimal builds a number from an arbitrary finite decimal,
// choosing the integer representation when the value is whole and
// within the signed 64-bit range, the float representation otherwise.
// The conversion is lossy for large or highly precise decimals.
func FromDecimal(f float64) (*Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNonFinite, f)
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return FromInt(int64(f)), nil
	}
	return FromFloat(f)
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		field := node.Fields[i]
		if field.Type != StringType {
			continue
		}
		res[field.String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	res := &Node{}
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := make([]string, 0, len(yMap))
	for key := range yMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		yField := &Node{
			Parent:      res,
			ParentIndex: i,
			Type:        StringType,
			String:      key,
		}
		res.Fields[i] = yField
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object node from a pre-built entry collection,
// preserving entry order. A duplicate key (under Equal) is an
// ErrKeyCollision.
func FromKeyVals(kvs []KeyVal) (*Node, error) {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) (*Node, error) {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		for j := 0; j < i; j++ {
			if Equal(kvs[j].Key, kv.Key) {
				return nil, fmt.Errorf("%w: %s", ErrKeyCollision, KeyString(kv.Key))
			}
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		if kv.Key.Type == StringType {
			kv.Val.ParentField = kv.Key.String
		}
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res, nil
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Get returns the value under a string key, or nil when the key is
// absent or y is not an object.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	n := len(y.Fields)
	for i := 0; i < n; i++ {
		f := y.Fields[i]
		if f.Type == StringType && f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

// GetKey returns the value under an arbitrary key node, or nil when
// absent or y is not an object.
func GetKey(y *Node, key *Node) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i := range y.Fields {
		if Equal(y.Fields[i], key) {
			return y.Values[i]
		}
	}
	return nil
}

// KeyString renders a key node for diagnostics.
func KeyString(key *Node) string {
	if key == nil {
		return "<nil>"
	}
	switch key.Type {
	case StringType:
		return strconv.Quote(key.String)
	case NumberType:
		if key.Int64 != nil {
			return strconv.FormatInt(*key.Int64, 10)
		}
		if key.Float64 != nil {
			return strconv.FormatFloat(*key.Float64, 'g', -1, 64)
		}
		return "<number>"
	case BoolType:
		return strconv.FormatBool(key.Bool)
	case NullType:
		return "null"
	default:
		return "<" + key.Type.String() + ">"
	}
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
