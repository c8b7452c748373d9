// Package purity measures the spectral purity of a generated sine block:
// fundamental level, worst spurious component and spurious-free dynamic
// range (SFDR). It quantifies the harmonic distortion a sine approximation
// introduces, complementing plain max-abs-error comparisons.
package purity

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-trig/window"
)

const defaultGuardBins = 3

// Config holds spectral purity analysis parameters.
type Config struct {
	// SampleRate in Hz. Required.
	SampleRate float64

	// FFTSize in samples. Zero selects the next power of two covering the
	// signal. Values are rounded up to a power of two.
	FFTSize int

	// WindowType applied before the FFT. The rectangular default is exact
	// for tones centered on an FFT bin; pick Hann or flat-top when the
	// tone frequency is arbitrary.
	WindowType window.Type

	// GuardBins excluded on each side of the fundamental when searching
	// for the worst spur. Zero selects a small default covering the main
	// lobe of the rectangular and Hann windows.
	GuardBins int
}

// Result holds spectral purity measurements. Levels are in dB relative to
// a full-scale (amplitude 1.0) sine.
type Result struct {
	FundamentalBin   int
	FundamentalFreq  float64
	FundamentalLevel float64
	WorstSpurBin     int
	WorstSpurFreq    float64
	WorstSpurLevel   float64
	SFDR             float64
}

// AnalyzeSignal windows the signal, computes its spectrum and derives the
// purity metrics.
func AnalyzeSignal(signal []float64, cfg Config) (Result, error) {
	if len(signal) == 0 {
		return Result{}, fmt.Errorf("purity: empty signal")
	}
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("purity: sample rate must be > 0: %f", cfg.SampleRate)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = len(signal)
	}
	fftSize = nextPowerOf2(fftSize)
	if fftSize < 4 {
		return Result{}, fmt.Errorf("purity: FFT size too small: %d", fftSize)
	}

	n := len(signal)
	if n > fftSize {
		n = fftSize
	}

	coeffs := window.Generate(cfg.WindowType, n)
	windowed, err := window.ApplyCoefficients(signal[:n], coeffs)
	if err != nil {
		return Result{}, fmt.Errorf("purity: %w", err)
	}

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("purity: FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("purity: FFT: %w", err)
	}

	// Single-sided amplitude spectrum, corrected for window gain.
	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	scale := window.CoherentGain(coeffs) * float64(n) / 2
	if scale <= 0 {
		return Result{}, fmt.Errorf("purity: degenerate window gain")
	}
	for i := range mag {
		mag[i] /= scale
	}

	guard := cfg.GuardBins
	if guard <= 0 {
		guard = defaultGuardBins
	}

	return analyzeMagnitudes(mag, cfg.SampleRate, fftSize, guard), nil
}

func analyzeMagnitudes(mag []float64, sampleRate float64, fftSize, guard int) Result {
	binHz := sampleRate / float64(fftSize)

	// Fundamental: largest bin, skipping DC.
	fundBin := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[fundBin] {
			fundBin = i
		}
	}

	// Worst spur: largest bin outside the fundamental's guard band,
	// skipping DC leakage as well.
	spurBin := -1
	for i := 1 + guard; i < len(mag); i++ {
		if i >= fundBin-guard && i <= fundBin+guard {
			continue
		}
		if spurBin < 0 || mag[i] > mag[spurBin] {
			spurBin = i
		}
	}

	res := Result{
		FundamentalBin:   fundBin,
		FundamentalFreq:  float64(fundBin) * binHz,
		FundamentalLevel: ampTodB(mag[fundBin]),
	}

	if spurBin >= 0 {
		res.WorstSpurBin = spurBin
		res.WorstSpurFreq = float64(spurBin) * binHz
		res.WorstSpurLevel = ampTodB(mag[spurBin])
		res.SFDR = res.FundamentalLevel - res.WorstSpurLevel
	} else {
		res.WorstSpurBin = -1
		res.WorstSpurLevel = math.Inf(-1)
		res.SFDR = math.Inf(1)
	}

	return res
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
