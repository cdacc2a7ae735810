//go:build !puremath
// +build !puremath

// Package mathx isolates the three floating-point operations the pitch
// conversion formulas depend on. The backend is selected at build time:
// the default backend uses the standard library intrinsics, while the
// puremath tag swaps in a portable software implementation for constrained
// targets. Both produce identical results to double precision over the
// audible range.
package mathx

import "math"

// Exp2 returns 2**x.
func Exp2(x float64) float64 {
	return math.Exp2(x)
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float64) float64 {
	return math.Log2(x)
}

// Round returns the nearest integer to x, rounding half away from zero.
func Round(x float64) float64 {
	return math.Round(x)
}
