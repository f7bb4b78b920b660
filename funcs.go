package gm

import (
	"math"

	"github.com/chewxy/math32"
)

// DegToRad converts a plain scalar number of degrees to radians. For
// unit-tagged values use Deg.ToRad instead.
func DegToRad[S Float](deg S) S {
	return deg * (Pi / 180)
}

// RadToDeg converts a plain scalar number of radians to degrees. For
// unit-tagged values use Rad.ToDeg instead.
func RadToDeg[S Float](rad S) S {
	return rad * (180 / Pi)
}

// Clamp limits value to the range [min, max].
func Clamp[S Scalar](value, min, max S) S {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Min returns the smaller of a and b.
func Min[S Scalar](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[S Scalar](a, b S) S {
	if a > b {
		return a
	}
	return b
}

// Sign returns 0, 1 or -1 for zero, positive and negative values, as the
// same type as the input.
func Sign[S Scalar](x S) S {
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -1
	default:
		return 1
	}
}

// Abs returns the absolute value of x.
func Abs[S Scalar](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// Round rounds half away from zero, unlike math.RoundToEven.
func Round[S Float](x S) S {
	if x >= 0 {
		return Floor(x + 0.5)
	}
	return -Floor(-x + 0.5)
}

// IsNaN reports whether x is an IEEE 754 not-a-number value.
func IsNaN[S Float](x S) bool {
	if is32[S]() {
		return math32.IsNaN(float32(x))
	}
	return math.IsNaN(float64(x))
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[S Float](x S) bool {
	if is32[S]() {
		return math32.IsInf(float32(x), 0)
	}
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[S Float](x S) bool {
	return !IsNaN(x) && !IsInf(x)
}

// IsEqualApprox reports whether a and b are approximately equal. The
// tolerance scales with the magnitude of a, floored at CmpEpsilon, making the
// comparison relative for large values and absolute near zero.
func IsEqualApprox[S Float](a, b S) bool {
	// Check for exact equality first, required to handle "infinity" values.
	if a == b {
		return true
	}
	tolerance := S(CmpEpsilon) * Abs(a)
	if tolerance < CmpEpsilon {
		tolerance = CmpEpsilon
	}
	return Abs(a-b) < tolerance
}

// IsEqualApproxTolerance reports whether a and b are within the given
// tolerance of each other. The tolerance is used as is, without scaling.
func IsEqualApproxTolerance[S Float](a, b, tolerance S) bool {
	// Check for exact equality first, required to handle "infinity" values.
	if a == b {
		return true
	}
	return Abs(a-b) < tolerance
}

// IsZeroApprox reports whether x is within CmpEpsilon of zero. The epsilon is
// absolute; zero has no meaningful relative scale.
func IsZeroApprox[S Float](x S) bool {
	return Abs(x) < CmpEpsilon
}

// Linear2DB converts a linear energy value to decibels.
func Linear2DB[S Float](linear S) S {
	// 20 / ln(10)
	return Log(linear) * 8.6858896380650365530225783783321
}

// DB2Linear converts a decibel value to linear energy.
func DB2Linear[S Float](db S) S {
	// ln(10) / 20
	return Exp(db * 0.11512925464970228420089957273422)
}

// Snapped rounds value to the nearest multiple of step. A zero step returns
// value unchanged.
func Snapped[S Float](value, step S) S {
	if step != 0 {
		value = Floor(value/step+0.5) * step
	}
	return value
}

// SnapScalar snaps target to the grid of multiples of step anchored at
// offset.
func SnapScalar[S Float](offset, step, target S) S {
	if step == 0 {
		return target
	}
	return Snapped(target-offset, step) + offset
}

// SnapScalarSeparation snaps like SnapScalar on a grid with a forbidden
// separation gap between cells, picking whichever side of the gap lies
// closer to target.
func SnapScalarSeparation[S Float](offset, step, target, separation S) S {
	if step == 0 {
		return target
	}
	a := Snapped(target-offset, step+separation) + offset
	b := a
	if target >= 0 {
		b -= separation
	} else {
		b += step
	}
	if Abs(target-a) < Abs(target-b) {
		return a
	}
	return b
}
