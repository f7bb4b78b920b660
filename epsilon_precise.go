//go:build precise_math

package gm

// UnitEpsilon under precise_math matches CmpEpsilon.
const UnitEpsilon = 0.00001
