// Package sin4 provides interchangeable batch evaluators for sine over
// blocks of four float64 angles, all sharing the same contract: write
// sin(x[i]) into dst[i] for equal-length slices.
//
// Four strategies are available, trading accuracy against the evaluation
// machinery they exercise:
//
//   - Reference: math.Sin per lane, the ground truth for error measurement.
//   - Taylor / TaylorFlags: scalar degree-11 polynomial per lane.
//   - Intrin: explicit SIMD lanes, degree-3 truncation only.
//   - Vector: portable generic vectors (go-highway), full degree-11.
//
// Inputs are expected to be range-reduced into [-π/4, π/4] (see
// trig.Reduce); TaylorFlags additionally recombines per-lane flags.
// Mismatched slice lengths panic.
package sin4

import (
	"math"

	"github.com/cwbudde/algo-trig/trig"
)

// Kernel is the shared contract of all batch sine evaluators.
type Kernel func(dst, x []float64)

func checkLen(dst, x []float64) {
	if len(dst) != len(x) {
		panic("sin4: slice length mismatch")
	}
}

// Reference evaluates sine per lane via math.Sin.
func Reference(dst, x []float64) {
	checkLen(dst, x)

	for i, v := range x {
		dst[i] = math.Sin(v)
	}
}

// Taylor evaluates the degree-11 sine polynomial per lane.
// Inputs must already lie in [-π/4, π/4].
func Taylor(dst, x []float64) {
	checkLen(dst, x)

	for i, v := range x {
		dst[i] = trig.SinPoly(v)
	}
}

// TaylorFlags is Taylor with per-lane recombination flags as produced by
// trig.Reduce: lanes with useSin false evaluate the cosine series instead,
// and lanes with sign false negate the result.
func TaylorFlags(dst, x []float64, sign, useSin []bool) {
	checkLen(dst, x)
	if len(sign) != len(x) || len(useSin) != len(x) {
		panic("sin4: flag length mismatch")
	}

	for i, v := range x {
		dst[i] = trig.Eval(v, sign[i], useSin[i])
	}
}
