// Package gm (stands for geometry math) provides scalar math helpers for
// interpolation, wrapping and approximate comparison.
//
// Every function is defined once, generically, over both float32 and float64,
// and never changes the caller's precision: a float32 call runs float32
// arithmetic end to end.
//
// There are also unit-tagged angle types. Rad and Deg carry their unit in the
// type, so radians and degrees cannot be mixed by accident, while same-unit
// arithmetic works with the ordinary operators. Rad32 and Deg32 are the
// float32 counterparts.
package gm
