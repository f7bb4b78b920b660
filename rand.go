package gm

import (
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Float](min, max S) S {
	if is32[S]() {
		return S(rand.Float32())*(max-min) + min
	}
	return S(rand.Float64())*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return RandomIn[Rad](0, Tau)
}

// RandomAngle32 returns a random angle uniformly sampled from the full circle
func RandomAngle32() Rad32 {
	return RandomIn[Rad32](0, Tau)
}
