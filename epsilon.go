//go:build !precise_math

package gm

// UnitEpsilon is the comparison epsilon for values sized around one unit
// (normalized scalars, vector lengths). It tolerates more floating point
// error than CmpEpsilon; build with the precise_math tag to tighten it.
const UnitEpsilon = 0.001
