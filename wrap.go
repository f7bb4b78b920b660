package gm

// Fposmod returns the remainder of x/y folded into [0, |y|): whenever the raw
// remainder and the divisor have opposite signs, the divisor is added once.
func Fposmod[S Float](x, y S) S {
	value := Fmod(x, y)
	if (value < 0 && y > 0) || (value > 0 && y < 0) {
		value += y
	}
	value += 0.0
	return value
}

// Fposmodp folds the remainder of x/y toward non-negative whenever it comes
// out negative, regardless of the divisor's sign. Distinct from Fposmod on
// negative divisors; call sites rely on the difference.
func Fposmodp[S Float](x, y S) S {
	value := Fmod(x, y)
	if value < 0 {
		value += y
	}
	value += 0.0
	return value
}

// Posmod is the integer counterpart of Fposmod.
func Posmod(x, y int64) int64 {
	value := x % y
	if (value < 0 && y > 0) || (value > 0 && y < 0) {
		value += y
	}
	return value
}

// Wrapi wraps value into the range [min, max). A zero-length range returns
// min, avoiding the modulo by zero.
func Wrapi(value, min, max int64) int64 {
	rng := max - min
	if rng == 0 {
		return min
	}
	return min + ((((value-min)%rng)+rng)%rng)
}

// Wrapf wraps value into the range [min, max). An approximately zero-length
// range returns min.
func Wrapf[S Float](value, min, max S) S {
	rng := max - min
	if IsZeroApprox(rng) {
		return min
	}
	return value - rng*Floor((value-min)/rng)
}

// AngleWrap normalizes an angle into [0°, 360°). Radian inputs go through the
// degree domain and come back radian-typed, in [0, τ) up to the conversion
// rounding.
func AngleWrap[A Angle](value A) A {
	switch v := any(value).(type) {
	case Rad:
		return any(Wrapf(v.ToDeg(), 0, 360).ToRad()).(A)
	case Rad32:
		return any(Wrapf(v.ToDeg(), 0, 360).ToRad()).(A)
	case Deg:
		return any(Wrapf(v, 0, 360)).(A)
	case Deg32:
		return any(Wrapf(v, 0, 360)).(A)
	default:
		return value
	}
}

// Fract returns the fractional part of value, value - floor(value).
func Fract[S Float](value S) S {
	return value - Floor(value)
}

// Pingpong folds value into a triangle wave of period 2*length, bouncing
// between 0 and length. A zero length returns 0.
func Pingpong[S Float](value, length S) S {
	if length == 0 {
		return 0
	}
	return Abs(Fract((value-length)/(length*2))*length*2 - length)
}
