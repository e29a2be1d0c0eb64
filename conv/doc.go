// Package conv converts ir.Node values to and from primitive types
// under a strictness policy.
//
// Every accessor takes a Policy bit set; Strict permits no coercion
// and Lenient permits all of it. Failures are ConversionError values
// carrying the node's kind and the requested target; the ...Safe forms
// report failure as ok=false instead.
//
// All numeric parsing and formatting uses the invariant decimal
// conventions of strconv, independent of host locale.
package conv
