//go:build !fastmath

package purity

import "math"

// ampTodB converts an amplitude to decibels: 20 * log10(|value|).
// Returns -Inf for zero.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}
