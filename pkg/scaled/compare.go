package scaled

import "math/big"

// Compare aligns v2 to v's scale and compares magnitudes, returning -1, 0
// or 1. Digits below v's resolution are truncated before comparing.
func (v Value) Compare(v2 Value) int {
	return v.mag().Cmp(v2.Rescale(v.scale).mag())
}

func (v Value) Eq(v2 Value) bool {
	return v.Compare(v2) == 0
}

func (v Value) Gt(v2 Value) bool {
	return v.Compare(v2) > 0
}

func (v Value) Gte(v2 Value) bool {
	return v.Compare(v2) >= 0
}

func (v Value) Lt(v2 Value) bool {
	return v.Compare(v2) < 0
}

func (v Value) Lte(v2 Value) bool {
	return v.Compare(v2) <= 0
}

// FuzzyEq reports whether v and v2 differ by strictly less than tolerance,
// with both aligned to v's scale.
func (v Value) FuzzyEq(v2, tolerance Value) bool {
	diff := new(big.Int).Sub(v.mag(), v2.Rescale(v.scale).mag())
	diff.Abs(diff)
	return diff.Cmp(tolerance.Rescale(v.scale).mag()) < 0
}
