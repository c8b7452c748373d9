// Command sinbench benchmarks four batch sine evaluation strategies over
// the same input data: the math.Sin reference, the scalar degree-11
// Taylor evaluator, the explicit-SIMD degree-3 kernel and the portable
// vector degree-11 kernel.
//
// Angles are drawn uniformly from [-π/4, π/4] and passed once through
// range reduction, so every strategy consumes identical reduced inputs.
// Each strategy runs the full dataset for the configured number of
// repetitions; the report shows wall-clock seconds and, for the
// non-reference strategies, the maximum absolute error versus the
// reference output.
//
// Usage:
//
//	sinbench [-n values] [-reps count] [-seed seed] [-cpuinfo]
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-trig/trig"
	"github.com/cwbudde/algo-trig/trig/sin4"
)

func main() {
	n := flag.Int("n", 1000000, "number of input angles (rounded down to a multiple of 4)")
	reps := flag.Int("reps", 1000, "repetitions per strategy")
	seed := flag.Int64("seed", 1, "random seed for angle generation")
	cpuInfo := flag.Bool("cpuinfo", false, "print detected SIMD capabilities before the run")
	flag.Parse()

	if err := run(*n, *reps, *seed, *cpuInfo); err != nil {
		fmt.Fprintln(os.Stderr, "sinbench:", err)
		os.Exit(1)
	}
}

func run(n, reps int, seed int64, cpuInfo bool) error {
	n &^= 3
	if n <= 0 {
		return fmt.Errorf("need at least 4 values, got n=%d", n)
	}
	if reps <= 0 {
		return fmt.Errorf("reps must be > 0, got %d", reps)
	}

	if cpuInfo {
		fmt.Printf("cpu:    %+v\n", cpu.DetectFeatures())
		fmt.Printf("simd:   %s (%d bytes, %d float64 lanes)\n",
			hwy.CurrentName(), hwy.CurrentWidth(), hwy.MaxLanes[float64]())
		fmt.Printf("intrin: accelerated=%v\n", sin4.IntrinAccelerated())
	}

	rng := rand.New(rand.NewSource(seed))

	x := make([]float64, n)
	sign := make([]bool, n)
	useSin := make([]bool, n)
	for i := range x {
		angle := (rng.Float64() - 0.5) * math.Pi / 2
		x[i], sign[i], useSin[i] = trig.Reduce(angle)
	}

	ref := make([]float64, n)
	taylor := make([]float64, n)
	intrin := make([]float64, n)
	vector := make([]float64, n)

	elapsed := timeKernel(reps, n, func(i int) {
		sin4.Reference(ref[i:i+4], x[i:i+4])
	})
	fmt.Printf("Reference time: %6.4f\n", elapsed)

	elapsed = timeKernel(reps, n, func(i int) {
		sin4.TaylorFlags(taylor[i:i+4], x[i:i+4], sign[i:i+4], useSin[i:i+4])
	})
	fmt.Printf("Taylor time:    %6.4f      Error: %e\n", elapsed, maxAbsError(ref, taylor))

	elapsed = timeKernel(reps, n, func(i int) {
		sin4.Intrin(intrin[i:i+4], x[i:i+4])
	})
	fmt.Printf("Intrin time:    %6.4f      Error: %e\n", elapsed, maxAbsError(ref, intrin))

	elapsed = timeKernel(reps, n, func(i int) {
		sin4.Vector(vector[i:i+4], x[i:i+4])
	})
	fmt.Printf("Vector time:    %6.4f      Error: %e\n", elapsed, maxAbsError(ref, vector))

	return nil
}

// timeKernel runs body over the dataset in blocks of four for the given
// number of repetitions and returns elapsed wall-clock seconds.
func timeKernel(reps, n int, body func(i int)) float64 {
	start := time.Now()

	for rep := 0; rep < reps; rep++ {
		for i := 0; i < n; i += 4 {
			body(i)
		}
	}

	return time.Since(start).Seconds()
}

func maxAbsError(want, got []float64) float64 {
	maxErr := 0.0
	for i := range want {
		if d := math.Abs(want[i] - got[i]); d > maxErr {
			maxErr = d
		}
	}

	return maxErr
}
