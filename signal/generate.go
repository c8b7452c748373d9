// Package signal generates sine test blocks with a pluggable sine
// evaluator, so the same generator can run on math.Sin or on the
// polynomial approximation under test.
package signal

import (
	"fmt"
	"math"
)

// Evaluator computes the sine of a single angle in radians.
type Evaluator func(float64) float64

// Generator creates deterministic sine blocks at a fixed sample rate.
type Generator struct {
	sampleRate float64
	eval       Evaluator
}

// Option configures a Generator.
type Option func(*Generator)

// WithEvaluator replaces the default math.Sin evaluator.
func WithEvaluator(eval Evaluator) Option {
	return func(g *Generator) {
		if eval != nil {
			g.eval = eval
		}
	}
}

// NewGenerator creates a generator for the given sample rate.
func NewGenerator(sampleRate float64, opts ...Option) *Generator {
	g := &Generator{
		sampleRate: sampleRate,
		eval:       math.Sin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave block. The phase accumulator is wrapped into
// [-π, π) every sample, so evaluators relying on iterative range reduction
// never see an unbounded angle.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", g.sampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	phase := 0.0

	for i := range out {
		out[i] = amplitude * g.eval(phase)

		phase += step
		if phase >= math.Pi {
			phase -= 2 * math.Pi
		} else if phase < -math.Pi {
			phase += 2 * math.Pi
		}
	}

	return out, nil
}
