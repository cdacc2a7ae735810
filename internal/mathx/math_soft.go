//go:build puremath
// +build puremath

// Portable software backend. Implemented with float bit manipulation and
// truncated series only, so it links on targets without hardware pow/log
// support. Accuracy is well inside the tolerances the conversion formulas
// need, and Exp2(0) is exactly 1 so the 440 Hz reference stays exact.
package mathx

import "math"

const (
	ln2    = 6.93147180559945286e-01
	invLn2 = 1.44269504088896339e+00
	sqrt2  = 1.41421356237309515e+00
)

// Exp2 returns 2**x.
func Exp2(x float64) float64 {
	switch {
	case x != x: // NaN
		return x
	case x > 1024:
		return math.Inf(1)
	case x < -1075:
		return 0
	}

	k := floor(x)
	f := x - k // [0, 1)

	// exp(f*ln2) by Horner; f*ln2 < 0.694 so the tail vanishes quickly.
	y := f * ln2
	sum := 1.0
	for n := 16; n >= 1; n-- {
		sum = 1 + y*sum/float64(n)
	}

	return scale2(sum, int(k))
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float64) float64 {
	switch {
	case x != x || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	case x > math.MaxFloat64:
		return math.Inf(1)
	}

	bits := math.Float64bits(x)
	exp := int(bits>>52&0x7FF) - 1023
	if exp == -1023 { // subnormal: renormalize
		bits = math.Float64bits(x * (1 << 52))
		exp = int(bits>>52&0x7FF) - 1023 - 52
	}
	m := math.Float64frombits(bits&^(uint64(0x7FF)<<52) | uint64(1023)<<52) // [1, 2)
	if m > sqrt2 {
		m /= 2
		exp++
	}

	// ln(m) = 2*atanh(t) with t = (m-1)/(m+1); |t| <= 0.172 here.
	t := (m - 1) / (m + 1)
	t2 := t * t
	s, term := 0.0, t
	for n := 1; n <= 17; n += 2 {
		s += term / float64(n)
		term *= t2
	}

	return float64(exp) + 2*s*invLn2
}

// Round returns the nearest integer to x, rounding half away from zero.
func Round(x float64) float64 {
	if x != x || x > 1<<52 || x < -(1<<52) {
		return x
	}
	if x >= 0 {
		return floor(x + 0.5)
	}
	return -floor(-x + 0.5)
}

func floor(x float64) float64 {
	if x > 1<<52 || x < -(1<<52) {
		return x
	}
	t := float64(int64(x))
	if t > x {
		t--
	}
	return t
}

// scale2 returns f * 2**k for k within the normal exponent range.
func scale2(f float64, k int) float64 {
	for k > 1023 {
		f *= 1 << 62
		k -= 62
	}
	for k < -1022 {
		f /= 1 << 62
		k += 62
	}
	return f * math.Float64frombits(uint64(k+1023)<<52)
}
