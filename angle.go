package gm

// The angle types carry their unit in the type, like time.Duration carries
// nanoseconds. Same-unit arithmetic uses the ordinary operators on the raw
// magnitude; mixing radians and degrees in one expression does not compile.
// Conversion to the raw scalar is an ordinary Go conversion.

// Rad is an angle measured in radians, backed by a float64.
type Rad float64

// Deg is an angle measured in degrees, backed by a float64.
type Deg float64

// Rad32 is an angle measured in radians, backed by a float32.
type Rad32 float32

// Deg32 is an angle measured in degrees, backed by a float32.
type Deg32 float32

// fullTurn returns one full turn in the unit of A: Tau for the radian types,
// 360 for the degree types.
func fullTurn[A Angle]() A {
	switch any(A(0)).(type) {
	case Rad, Rad32:
		return Tau
	default:
		return 360
	}
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Degrees returns the value of the angle in degrees as float64.
func (r Rad) Degrees() float64 {
	return float64(r) * (180 / Pi)
}

// ToDeg converts the angle to its degree-typed equivalent.
func (r Rad) ToDeg() Deg {
	return Deg(r.Degrees())
}

// Degrees returns the value of the angle in degrees as float64.
func (d Deg) Degrees() float64 {
	return float64(d)
}

// Radians returns the value of the angle in radians as float64.
func (d Deg) Radians() float64 {
	return float64(d) * (Pi / 180)
}

// ToRad converts the angle to its radian-typed equivalent.
func (d Deg) ToRad() Rad {
	return Rad(d.Radians())
}

// Radians returns the value of the angle in radians as float32.
func (r Rad32) Radians() float32 {
	return float32(r)
}

// Degrees returns the value of the angle in degrees as float32. The
// conversion constant is rounded at float32 precision.
func (r Rad32) Degrees() float32 {
	return float32(r) * (180 / Pi)
}

// ToDeg converts the angle to its degree-typed equivalent.
func (r Rad32) ToDeg() Deg32 {
	return Deg32(r.Degrees())
}

// Degrees returns the value of the angle in degrees as float32.
func (d Deg32) Degrees() float32 {
	return float32(d)
}

// Radians returns the value of the angle in radians as float32. The
// conversion constant is rounded at float32 precision.
func (d Deg32) Radians() float32 {
	return float32(d) * (Pi / 180)
}

// ToRad converts the angle to its radian-typed equivalent.
func (d Deg32) ToRad() Rad32 {
	return Rad32(d.Radians())
}

// normalized folds an angle into [-half turn, half turn).
func normalized[A Angle](a A) A {
	turn := fullTurn[A]()
	half := turn / 2

	x := Fmod(a+half, turn)
	if x < 0 {
		x += turn
	}

	return x - half
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	return normalized(r)
}

// Normalized returns the angle normalized to the range [-180°, 180°)
func (d Deg) Normalized() Deg {
	return normalized(d)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad32) Normalized() Rad32 {
	return normalized(r)
}

// Normalized returns the angle normalized to the range [-180°, 180°)
func (d Deg32) Normalized() Deg32 {
	return normalized(d)
}

// DifferenceTo returns the smallest difference between two angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (other - r).Normalized()
}

// DifferenceTo returns the smallest difference between two angles
// normalized to the range [-180°, 180°)
func (d Deg) DifferenceTo(other Deg) Deg {
	return (other - d).Normalized()
}

// DifferenceTo returns the smallest difference between two angles
// normalized to the range [-π, π)
func (r Rad32) DifferenceTo(other Rad32) Rad32 {
	return (other - r).Normalized()
}

// DifferenceTo returns the smallest difference between two angles
// normalized to the range [-180°, 180°)
func (d Deg32) DifferenceTo(other Deg32) Deg32 {
	return (other - d).Normalized()
}
