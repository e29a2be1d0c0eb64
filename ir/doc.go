// Package ir provides the value tree for the lson engine.
//
// All documents, whether parsed from JSON text, parsed from LSON
// variable-list text, or built programmatically, are represented as
// ir.Node trees.
//
// A Node is a tagged union. The Type field selects the variant and the
// value is placed in the field matching the type:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: exactly one of Int64 or Float64
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields[i] is the key for Values[i]
//
// Numbers hold either a 64-bit signed integer or a 64-bit float, never
// both. The two representations are distinct under Equal and Hash: an
// integer 5 is not equal to a float 5.0. Non-finite floats are rejected
// at construction.
//
// JSON objects have string keys, insertion ordered, with duplicate keys
// rejected at construction. LSON dicts allow any Node as a key,
// including numbers and nested containers, mirroring Lua table
// constructors.
//
// A node's discriminant never changes after construction; containers
// are mutable in content but not in kind. Containers own their
// children. Cycles are not defended against.
//
// Nodes are not safe for concurrent mutation; callers must synchronize
// access or clone per goroutine.
package ir
