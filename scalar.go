package gm

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Float is the constraint of the two supported precision families. The tilde
// lets the angle types in, so they inherit the whole scalar library while a
// single type parameter still keeps both operands in one unit.
type Float interface {
	~float32 | ~float64
}

// Scalar is the constraint of the ordered helpers (Clamp, Min, Max, Sign,
// Abs), which work on integers too.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Angle is the constraint of the angle-aware functions. It is an exact type
// set: those functions need to know the full-turn constant of the unit.
type Angle interface {
	Rad | Rad32 | Deg | Deg32
}

// is32 reports whether the instantiated type is from the float32 family.
// Sizeof of a type parameter is a compile time constant, so the branch on it
// folds away per instantiation.
func is32[S Float]() bool {
	var zero S
	return unsafe.Sizeof(zero) == 4
}

// Floor returns the largest integral value not greater than x.
func Floor[S Float](x S) S {
	if is32[S]() {
		return S(math32.Floor(float32(x)))
	}
	return S(math.Floor(float64(x)))
}

// Ceil returns the smallest integral value not less than x.
func Ceil[S Float](x S) S {
	if is32[S]() {
		return S(math32.Ceil(float32(x)))
	}
	return S(math.Ceil(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[S Float](x S) S {
	if is32[S]() {
		return S(math32.Sqrt(float32(x)))
	}
	return S(math.Sqrt(float64(x)))
}

// Pow returns x raised to the power of y.
func Pow[S Float](x, y S) S {
	if is32[S]() {
		return S(math32.Pow(float32(x), float32(y)))
	}
	return S(math.Pow(float64(x), float64(y)))
}

// Log returns the natural logarithm of x.
func Log[S Float](x S) S {
	if is32[S]() {
		return S(math32.Log(float32(x)))
	}
	return S(math.Log(float64(x)))
}

// Exp returns e raised to the power of x.
func Exp[S Float](x S) S {
	if is32[S]() {
		return S(math32.Exp(float32(x)))
	}
	return S(math.Exp(float64(x)))
}

// Fmod returns the floating point remainder of x/y. The sign of the result
// follows x.
func Fmod[S Float](x, y S) S {
	if is32[S]() {
		return S(math32.Mod(float32(x), float32(y)))
	}
	return S(math.Mod(float64(x), float64(y)))
}
