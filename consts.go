package gm

import (
	"math"

	"github.com/chewxy/math32"
)

// Untyped constants round once at the use site, so the same declaration
// serves both precision families.
const (
	Sqrt12 = 0.7071067811865475244008443621048490
	Sqrt2  = 1.4142135623730950488016887242
	Ln2    = 0.6931471805599453094172321215
	Pi     = 3.1415926535897932384626433833
	Tau    = 6.2831853071795864769252867666
	E      = 2.7182818284590452353602874714
)

// CmpEpsilon is the absolute floor of the approximate comparisons. See
// IsEqualApprox and IsZeroApprox.
const CmpEpsilon = 0.00001

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[S Float](sign int) S {
	if is32[S]() {
		return S(math32.Inf(sign))
	}
	return S(math.Inf(sign))
}

// NaN returns an IEEE 754 not-a-number value.
func NaN[S Float]() S {
	if is32[S]() {
		return S(math32.NaN())
	}
	return S(math.NaN())
}
