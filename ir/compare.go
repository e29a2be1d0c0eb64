package ir

import (
	"cmp"
	"strings"
)

// Equal reports deep equality between two nodes. A nil node is treated
// as absence and equals nil or a NullType node.
//
// Heterogeneous types are never equal. Numbers are equal only when both
// use the same representation: an integer-represented 5 is not equal to
// a float-represented 5.0. Arrays are order-sensitive; objects compare
// as sets of key/value pairs.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil {
		return b.Type == NullType
	}
	if b == nil {
		return a.Type == NullType
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if a.Int64 != nil {
			return b.Int64 != nil && *a.Int64 == *b.Int64
		}
		if a.Float64 != nil {
			return b.Float64 != nil && *a.Float64 == *b.Float64
		}
		return b.Int64 == nil && b.Float64 == nil
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		return equalObjects(a, b)
	}
	return false
}

func equalObjects(a, b *Node) bool {
	if len(a.Fields) != len(b.Fields) {
		return false
	}
	// Keys are unique per object, so a one-way pairing suffices once
	// sizes match.
	for i := range a.Fields {
		j := findKey(b, a.Fields[i])
		if j < 0 {
			return false
		}
		if !Equal(a.Values[i], b.Values[j]) {
			return false
		}
	}
	return true
}

func findKey(y *Node, key *Node) int {
	for i := range y.Fields {
		if Equal(y.Fields[i], key) {
			return i
		}
	}
	return -1
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Compare provides a total order for sorting and is entry-order
// sensitive for objects; the Equal contract is the equality authority.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}

	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return 0
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	return 1
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
