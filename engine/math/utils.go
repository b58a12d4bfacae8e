package math

import "golang.org/x/exp/constraints"

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Fraction returns n/d clamped to [0, 1]. A zero denominator yields 0
// rather than dividing.
func Fraction(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return Clamp(n/d, 0, 1)
}
