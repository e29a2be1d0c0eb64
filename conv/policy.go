package conv

// Policy is a bit set of coercion rules. Each flag independently gates
// one rule; flags that do not apply to a target type are ignored.
type Policy uint8

const (
	// AllowFromString parses numeric or boolean meaning out of a
	// string value.
	AllowFromString Policy = 1 << iota
	// AllowZeroFractionToInteger accepts a string like "3.0" for an
	// integer target when the fractional part is exactly zero.
	AllowZeroFractionToInteger
	// AllowFromBool maps true/false to 1/0 for numeric targets and to
	// "true"/"false" for string targets.
	AllowFromBool
	// AllowTruncation truncates a non-integral number toward zero for
	// integer targets.
	AllowTruncation
	// AllowFromNumber maps a number to bool (zero is false) or to its
	// decimal rendering for string targets.
	AllowFromNumber
)

const (
	// Strict permits no coercion.
	Strict Policy = 0
	// Lenient permits every coercion applicable to the target.
	Lenient = AllowFromString | AllowZeroFractionToInteger |
		AllowFromBool | AllowTruncation | AllowFromNumber
)

func (p Policy) has(f Policy) bool {
	return p&f != 0
}
