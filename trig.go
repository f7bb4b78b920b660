package gm

import (
	"math"

	"github.com/chewxy/math32"
)

// Forward trig consumes radian-typed angles and returns plain ratios; the
// inverse functions consume plain ratios and return radian-typed angles.

// Sin returns the sine of the angle.
func (r Rad) Sin() float64 {
	return math.Sin(float64(r))
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float64 {
	return math.Cos(float64(r))
}

// Tan returns the tangent of the angle.
func (r Rad) Tan() float64 {
	return math.Tan(float64(r))
}

// Sinh returns the hyperbolic sine of the angle.
func (r Rad) Sinh() float64 {
	return math.Sinh(float64(r))
}

// Cosh returns the hyperbolic cosine of the angle.
func (r Rad) Cosh() float64 {
	return math.Cosh(float64(r))
}

// Tanh returns the hyperbolic tangent of the angle.
func (r Rad) Tanh() float64 {
	return math.Tanh(float64(r))
}

// Sinc returns sin(x)/x, with the singularity at zero removed.
func (r Rad) Sinc() float64 {
	if r == 0 {
		return 1
	}
	return math.Sin(float64(r)) / float64(r)
}

// Sincn returns the normalized sinc, sinc(πx).
func (r Rad) Sincn() float64 {
	return (Pi * r).Sinc()
}

// Sin returns the sine of the angle.
func (r Rad32) Sin() float32 {
	return math32.Sin(float32(r))
}

// Cos returns the cosine of the angle.
func (r Rad32) Cos() float32 {
	return math32.Cos(float32(r))
}

// Tan returns the tangent of the angle.
func (r Rad32) Tan() float32 {
	return math32.Tan(float32(r))
}

// Sinh returns the hyperbolic sine of the angle.
func (r Rad32) Sinh() float32 {
	return math32.Sinh(float32(r))
}

// Cosh returns the hyperbolic cosine of the angle.
func (r Rad32) Cosh() float32 {
	return math32.Cosh(float32(r))
}

// Tanh returns the hyperbolic tangent of the angle.
func (r Rad32) Tanh() float32 {
	return math32.Tanh(float32(r))
}

// Sinc returns sin(x)/x, with the singularity at zero removed.
func (r Rad32) Sinc() float32 {
	if r == 0 {
		return 1
	}
	return math32.Sin(float32(r)) / float32(r)
}

// Sincn returns the normalized sinc, sinc(πx).
func (r Rad32) Sincn() float32 {
	return (Pi * r).Sinc()
}

// Asin returns the arc sine of x as a radian-typed angle.
func Asin(x float64) Rad {
	return Rad(math.Asin(x))
}

// Acos returns the arc cosine of x as a radian-typed angle.
func Acos(x float64) Rad {
	return Rad(math.Acos(x))
}

// Atan returns the arc tangent of x as a radian-typed angle.
func Atan(x float64) Rad {
	return Rad(math.Atan(x))
}

// Atan2 returns the arc tangent of y/x, using the signs of both to determine
// the quadrant.
func Atan2(y, x float64) Rad {
	return Rad(math.Atan2(y, x))
}

// Asinf is the float32 counterpart of Asin.
func Asinf(x float32) Rad32 {
	return Rad32(math32.Asin(x))
}

// Acosf is the float32 counterpart of Acos.
func Acosf(x float32) Rad32 {
	return Rad32(math32.Acos(x))
}

// Atanf is the float32 counterpart of Atan.
func Atanf(x float32) Rad32 {
	return Rad32(math32.Atan(x))
}

// Atan2f is the float32 counterpart of Atan2.
func Atan2f(y, x float32) Rad32 {
	return Rad32(math32.Atan2(y, x))
}
