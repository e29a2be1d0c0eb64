package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// Hashes are stable within a process only.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal: equal
// nodes hash equal, and object hashing is entry-order insensitive.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		var b [8]byte
		if n.Int64 != nil {
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			h.WriteByte(1)
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		}
	case StringType:
		h.WriteString(n.String)
	case ArrayType:
		var b [8]byte
		for _, v := range n.Values {
			// Combining child hashes order-dependently: arrays are
			// order-sensitive under Equal.
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		// Objects compare as sets of pairs, so pair hashes are
		// XOR-combined to erase entry order.
		var acc uint64
		var b [16]byte
		for i, field := range n.Fields {
			binary.LittleEndian.PutUint64(b[:8], field.Hash())
			binary.LittleEndian.PutUint64(b[8:], n.Values[i].Hash())
			acc ^= maphash.Bytes(hashSeed, b[:])
		}
		var ab [8]byte
		binary.LittleEndian.PutUint64(ab[:], acc)
		h.Write(ab[:])
	}
	return h.Sum64()
}
