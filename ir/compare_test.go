package ir

import (
	"testing"
)

func mustKVs(t *testing.T, kvs ...KeyVal) *Node {
	t.Helper()
	res, err := FromKeyVals(kvs)
	if err != nil {
		t.Fatalf("FromKeyVals: %v", err)
	}
	return res
}

func kv(key, val *Node) KeyVal {
	return KeyVal{Key: key, Val: val}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		eq   bool
	}{
		{"nil == nil", nil, nil, true},
		{"nil == null", nil, Null(), true},
		{"null == nil", Null(), nil, true},
		{"nil != false", nil, FromBool(false), false},
		{"null == null", Null(), Null(), true},
		{"true == true", FromBool(true), FromBool(true), true},
		{"true != false", FromBool(true), FromBool(false), false},
		{"int 5 == int 5", FromInt(5), FromInt(5), true},
		{"int 5 != int 6", FromInt(5), FromInt(6), false},
		{"float 5 == float 5", MustFloat(5), MustFloat(5), true},
		// the two number representations are never equal, even when
		// numerically identical
		{"int 5 != float 5.0", FromInt(5), MustFloat(5), false},
		{"float 5.0 != int 5", MustFloat(5), FromInt(5), false},
		{"string == string", FromString("a"), FromString("a"), true},
		{"string case sensitive", FromString("a"), FromString("A"), false},
		{"string != number", FromString("5"), FromInt(5), false},
		{
			"array order sensitive",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}),
			false,
		},
		{
			"array deep equal",
			FromSlice([]*Node{FromInt(1), FromSlice([]*Node{FromString("x")})}),
			FromSlice([]*Node{FromInt(1), FromSlice([]*Node{FromString("x")})}),
			true,
		},
		{
			"array length",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(1)}),
			false,
		},
		{
			"array null elements",
			FromSlice([]*Node{Null()}),
			FromSlice([]*Node{Null()}),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.eq {
				t.Errorf("Equal = %v, want %v", got, tt.eq)
			}
			if got := Equal(tt.b, tt.a); got != tt.eq {
				t.Errorf("Equal reversed = %v, want %v", got, tt.eq)
			}
		})
	}
}

func TestEqualObjects(t *testing.T) {
	ab := mustKVs(t,
		kv(FromString("a"), FromInt(1)),
		kv(FromString("b"), FromInt(2)),
	)
	ba := mustKVs(t,
		kv(FromString("b"), FromInt(2)),
		kv(FromString("a"), FromInt(1)),
	)
	if !Equal(ab, ba) {
		t.Errorf("object equality must ignore entry order")
	}

	other := mustKVs(t,
		kv(FromString("a"), FromInt(1)),
		kv(FromString("b"), FromInt(3)),
	)
	if Equal(ab, other) {
		t.Errorf("object equality must compare values")
	}

	intKeys := mustKVs(t,
		kv(FromInt(1), FromString("x")),
		kv(FromInt(2), FromString("y")),
	)
	intKeys2 := mustKVs(t,
		kv(FromInt(2), FromString("y")),
		kv(FromInt(1), FromString("x")),
	)
	if !Equal(intKeys, intKeys2) {
		t.Errorf("int-keyed equality must ignore entry order")
	}
	// a float key is a different key
	floatKey := mustKVs(t,
		kv(MustFloat(1), FromString("x")),
		kv(FromInt(2), FromString("y")),
	)
	if Equal(intKeys, floatKey) {
		t.Errorf("float keys must not match int keys")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), &Node{Type: ObjectType}, -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number sub-ranking: Int < Float
		{"Int < Float", FromInt(1), MustFloat(1), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", MustFloat(1), MustFloat(2), -1},

		{"String < String", FromString("a"), FromString("b"), -1},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"nil < non-nil", nil, Null(), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare reversed = %d, want %d", got, -tt.expected)
			}
		})
	}
}
