package sin4

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-trig/trig"
)

// reducedAngles returns n angles inside [-π/4, π/4].
func reducedAngles(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64() - 0.5) * math.Pi / 2
	}
	return out
}

func maxAbsDiff(a, b []float64) float64 {
	maxErr := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxErr {
			maxErr = d
		}
	}
	return maxErr
}

func TestTaylorMatchesReference(t *testing.T) {
	sizes := []int{4, 8, 100, 1024}

	for _, n := range sizes {
		x := reducedAngles(n, int64(n))
		ref := make([]float64, n)
		got := make([]float64, n)

		Reference(ref, x)
		Taylor(got, x)

		if err := maxAbsDiff(ref, got); err > 1e-9 {
			t.Errorf("n=%d: Taylor max error %e, want <= 1e-9", n, err)
		}
	}
}

func TestVectorMatchesReference(t *testing.T) {
	// Odd sizes exercise the masked tail path.
	sizes := []int{1, 3, 4, 5, 7, 8, 100, 1023, 1024}

	for _, n := range sizes {
		x := reducedAngles(n, int64(n))
		ref := make([]float64, n)
		got := make([]float64, n)

		Reference(ref, x)
		Vector(got, x)

		if err := maxAbsDiff(ref, got); err > 1e-9 {
			t.Errorf("n=%d: Vector max error %e, want <= 1e-9", n, err)
		}
	}
}

func TestVectorMatchesTaylor(t *testing.T) {
	x := reducedAngles(1024, 7)
	taylor := make([]float64, len(x))
	vector := make([]float64, len(x))

	Taylor(taylor, x)
	Vector(vector, x)

	// Same polynomial, same powers; only FMA contraction may differ.
	if err := maxAbsDiff(taylor, vector); err > 1e-14 {
		t.Errorf("Vector vs Taylor max error %e, want <= 1e-14", err)
	}
}

func TestCosVectorMatchesReference(t *testing.T) {
	sizes := []int{3, 4, 100, 1023}

	for _, n := range sizes {
		x := reducedAngles(n, int64(n))
		want := make([]float64, n)
		got := make([]float64, n)

		for i, v := range x {
			want[i] = math.Cos(v)
		}
		CosVector(got, x)

		if err := maxAbsDiff(want, got); err > 1e-9 {
			t.Errorf("n=%d: CosVector max error %e, want <= 1e-9", n, err)
		}
	}
}

func TestTaylorFlagsReconstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	const n = 1024
	reduced := make([]float64, n)
	sign := make([]bool, n)
	useSin := make([]bool, n)
	want := make([]float64, n)

	for i := 0; i < n; i++ {
		angle := (rng.Float64() - 0.5) * 40
		reduced[i], sign[i], useSin[i] = trig.Reduce(angle)
		want[i] = math.Sin(angle)
	}

	got := make([]float64, n)
	TaylorFlags(got, reduced, sign, useSin)

	if err := maxAbsDiff(want, got); err > 1e-9 {
		t.Errorf("TaylorFlags max error %e, want <= 1e-9", err)
	}
}

func TestIntrinTruncationError(t *testing.T) {
	x := reducedAngles(1024, 11)
	ref := make([]float64, len(x))
	intrin := make([]float64, len(x))
	vector := make([]float64, len(x))

	Reference(ref, x)
	Intrin(intrin, x)
	Vector(vector, x)

	intrinErr := maxAbsDiff(ref, intrin)
	vectorErr := maxAbsDiff(ref, vector)

	if !IntrinAccelerated() {
		// Fallback delegates to Reference, so the error must vanish.
		if intrinErr != 0 {
			t.Fatalf("fallback Intrin max error %e, want 0", intrinErr)
		}
		return
	}

	// Degree-3 truncation drops the x⁵ term, whose magnitude at π/4
	// dominates everything the degree-11 strategies omit.
	if intrinErr < vectorErr {
		t.Errorf("Intrin max error %e below Vector max error %e", intrinErr, vectorErr)
	}
	if intrinErr > 3e-3 {
		t.Errorf("Intrin max error %e, want <= 3e-3 on [-π/4, π/4]", intrinErr)
	}
}
