// Package window provides the analysis windows used ahead of spectral
// measurements: rectangular, Hann, Blackman and a 5-term flat-top.
package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackman
	TypeFlatTop
)

var errMismatchedLength = errors.New("window: samples and coefficients length mismatch")

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeBlackman:
		return "blackman"
	case TypeFlatTop:
		return "flat-top"
	default:
		return "unknown"
	}
}

// Generate returns symmetric window coefficients of the given length.
// Unknown types fall back to rectangular. Returns nil for length <= 0.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		phase := 2 * math.Pi * float64(i) / float64(length-1)

		switch t {
		case TypeHann:
			out[i] = 0.5 * (1 - math.Cos(phase))
		case TypeBlackman:
			out[i] = 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
		case TypeFlatTop:
			out[i] = 0.21557895 -
				0.41663158*math.Cos(phase) +
				0.277263158*math.Cos(2*phase) -
				0.083578947*math.Cos(3*phase) +
				0.006947368*math.Cos(4*phase)
		default:
			out[i] = 1
		}
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf))
	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients into a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// CoherentGain returns the mean of the coefficients. Spectral amplitudes
// measured through a window scale by this factor.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}
