//go:build fastmath

package purity

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln10 is the natural logarithm of 10, used for log base conversion.
const ln10 = 2.302585092994045684017991454684

// ampTodB converts an amplitude to decibels using fast approximation.
// Uses the identity: log10(x) = ln(x) / ln(10).
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * approx.FastLog(a) / ln10
}
