package trig

import (
	"math"
	"math/rand"
	"testing"
)

func TestReduceRangeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		angle := (rng.Float64() - 0.5) * 40

		reduced, _, _ := Reduce(angle)
		if reduced > math.Pi/4 || reduced < -math.Pi/4 {
			t.Fatalf("Reduce(%v) = %v, outside [-π/4, π/4]", angle, reduced)
		}
	}
}

func TestReduceIdempotentInRange(t *testing.T) {
	angles := []float64{0, 0.1, -0.1, 0.5, -0.5, math.Pi / 4, -math.Pi / 4}

	for _, angle := range angles {
		reduced, sign, useSin := Reduce(angle)
		if reduced != angle {
			t.Errorf("Reduce(%v) = %v, want unchanged", angle, reduced)
		}
		if !sign || !useSin {
			t.Errorf("Reduce(%v) flags = (%v, %v), want (true, true)", angle, sign, useSin)
		}
	}
}

func TestReduceScenarios(t *testing.T) {
	tests := []struct {
		name    string
		angle   float64
		reduced float64
		sign    bool
		useSin  bool
	}{
		{"zero", 0, 0, true, true},
		{"pi_over_2", math.Pi / 2, 0, true, false},
		{"three_pi_over_4", 3 * math.Pi / 4, math.Pi / 4, true, false},
		{"pi", math.Pi, 0, false, true},
		{"minus_pi_over_2", -math.Pi / 2, 0, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reduced, sign, useSin := Reduce(tc.angle)
			if math.Abs(reduced-tc.reduced) > 1e-15 {
				t.Errorf("reduced = %v, want %v", reduced, tc.reduced)
			}
			if sign != tc.sign || useSin != tc.useSin {
				t.Errorf("flags = (%v, %v), want (%v, %v)", sign, useSin, tc.sign, tc.useSin)
			}
		})
	}
}

func TestReduceReconstruction(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 10000; i++ {
		angle := (rng.Float64() - 0.5) * 40

		got := Eval(Reduce(angle))
		want := math.Sin(angle)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("reconstructed sin(%v) = %v, want %v (err %e)",
				angle, got, want, math.Abs(got-want))
		}
	}
}
