package conv

import (
	"math"
	"strconv"

	"github.com/lsonfmt/go-lson/ir"
)

// Int64 extracts a 64-bit signed integer from n.
//
// An integer-represented number converts directly. A float-represented
// number must be exactly integral unless AllowTruncation is set, and
// must fit the target range either way. Strings need AllowFromString
// (plus AllowZeroFractionToInteger or AllowTruncation for decimal
// forms); bools need AllowFromBool.
func Int64(n *ir.Node, p Policy) (int64, error) {
	if n == nil {
		return 0, convErr(n, "int64")
	}
	switch n.Type {
	case ir.NumberType:
		if n.Int64 != nil {
			return *n.Int64, nil
		}
		if n.Float64 != nil {
			return floatToInt64(n, *n.Float64, p)
		}
	case ir.StringType:
		if !p.has(AllowFromString) {
			break
		}
		if i, err := strconv.ParseInt(n.String, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(n.String, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			break
		}
		if f == math.Trunc(f) {
			// anything ParseInt rejects takes this gate, so integral
			// exponent forms like "1e2" need the same flag as "3.0"
			if !p.has(AllowZeroFractionToInteger) && !p.has(AllowTruncation) {
				break
			}
			return rangedInt64(n, f)
		}
		if !p.has(AllowTruncation) {
			break
		}
		return rangedInt64(n, math.Trunc(f))
	case ir.BoolType:
		if !p.has(AllowFromBool) {
			break
		}
		if n.Bool {
			return 1, nil
		}
		return 0, nil
	}
	return 0, convErr(n, "int64")
}

func floatToInt64(n *ir.Node, f float64, p Policy) (int64, error) {
	if f != math.Trunc(f) {
		if !p.has(AllowTruncation) {
			return 0, convErr(n, "int64")
		}
		f = math.Trunc(f)
	}
	return rangedInt64(n, f)
}

func rangedInt64(n *ir.Node, f float64) (int64, error) {
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, convErr(n, "int64")
	}
	return int64(f), nil
}

// Int32 is Int64 narrowed to the 32-bit range.
func Int32(n *ir.Node, p Policy) (int32, error) {
	i, err := Int64(n, p)
	if err != nil {
		return 0, convErr(n, "int32")
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, convErr(n, "int32")
	}
	return int32(i), nil
}

// Float64 extracts a 64-bit float from n. Both number representations
// convert directly; strings need AllowFromString, bools AllowFromBool.
// NaN and the infinities never result.
func Float64(n *ir.Node, p Policy) (float64, error) {
	if n == nil {
		return 0, convErr(n, "float64")
	}
	switch n.Type {
	case ir.NumberType:
		if n.Float64 != nil {
			return *n.Float64, nil
		}
		if n.Int64 != nil {
			return float64(*n.Int64), nil
		}
	case ir.StringType:
		if !p.has(AllowFromString) {
			break
		}
		f, err := strconv.ParseFloat(n.String, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			break
		}
		return f, nil
	case ir.BoolType:
		if !p.has(AllowFromBool) {
			break
		}
		if n.Bool {
			return 1, nil
		}
		return 0, nil
	}
	return 0, convErr(n, "float64")
}

// Bool extracts a bool from n, using DefaultVocabulary for string
// coercion. Strings need AllowFromString; numbers need AllowFromNumber
// (zero is false, nonzero true).
func Bool(n *ir.Node, p Policy) (bool, error) {
	return BoolWith(n, p, DefaultVocabulary)
}

// BoolWith is Bool under a caller-provided vocabulary.
func BoolWith(n *ir.Node, p Policy, vocab *Vocabulary) (bool, error) {
	if n == nil {
		return false, convErr(n, "bool")
	}
	switch n.Type {
	case ir.BoolType:
		return n.Bool, nil
	case ir.StringType:
		if !p.has(AllowFromString) {
			break
		}
		v, ok := vocab.Lookup(n.String)
		if !ok {
			break
		}
		return v, nil
	case ir.NumberType:
		if !p.has(AllowFromNumber) {
			break
		}
		if n.Int64 != nil {
			return *n.Int64 != 0, nil
		}
		if n.Float64 != nil {
			return *n.Float64 != 0, nil
		}
	}
	return false, convErr(n, "bool")
}

// String extracts a string from n. Numbers need AllowFromNumber and
// render in base 10, floats in their shortest round-trip-exact form;
// bools need AllowFromBool.
func String(n *ir.Node, p Policy) (string, error) {
	if n == nil {
		return "", convErr(n, "string")
	}
	switch n.Type {
	case ir.StringType:
		return n.String, nil
	case ir.NumberType:
		if !p.has(AllowFromNumber) {
			break
		}
		if n.Int64 != nil {
			return strconv.FormatInt(*n.Int64, 10), nil
		}
		if n.Float64 != nil {
			return strconv.FormatFloat(*n.Float64, 'g', -1, 64), nil
		}
	case ir.BoolType:
		if !p.has(AllowFromBool) {
			break
		}
		return strconv.FormatBool(n.Bool), nil
	}
	return "", convErr(n, "string")
}

// Safe variants: failure yields an absent result instead of an error.

func Int64Safe(n *ir.Node, p Policy) (int64, bool) {
	v, err := Int64(n, p)
	return v, err == nil
}

func Int32Safe(n *ir.Node, p Policy) (int32, bool) {
	v, err := Int32(n, p)
	return v, err == nil
}

func Float64Safe(n *ir.Node, p Policy) (float64, bool) {
	v, err := Float64(n, p)
	return v, err == nil
}

func BoolSafe(n *ir.Node, p Policy) (bool, bool) {
	v, err := Bool(n, p)
	return v, err == nil
}

func StringSafe(n *ir.Node, p Policy) (string, bool) {
	v, err := String(n, p)
	return v, err == nil
}
