package sampling

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// MinResolution is the smallest number of samples per axis.
// A single sample is a valid, degenerate axis.
const MinResolution = 1

// Sampler produces the (alpha, beta) parameter grids of a mesh.
// Both slices are ordered, hold values in [0,1] and have exactly alphaRes and
// betaRes entries. Callers validate resolutions with ValidateResolution.
type Sampler interface {
	Sample(alphaRes, betaRes int) (alpha, beta []float64)
}

// ValidateResolution returns ErrBadResolution when n < MinResolution.
func ValidateResolution(axis string, n int) error {
	if n < MinResolution {
		return fmt.Errorf("%s resolution %d: %w", axis, n, ErrBadResolution)
	}

	return nil
}

// Linear samples each axis at evenly spaced points including 0 and 1.
type Linear struct{}

// Sample implements Sampler.
func (Linear) Sample(alphaRes, betaRes int) (alpha, beta []float64) {
	return LinearAxis(alphaRes), LinearAxis(betaRes)
}

// LinearAxis returns n evenly spaced values over [0,1]: [0] for n == 1 and
// nil for n < 1. For n >= 2 the endpoints are exactly 0 and 1.
// Complexity: O(n).
func LinearAxis(n int) []float64 {
	switch {
	case n < MinResolution:
		return nil
	case n == 1:
		return []float64{0}
	}

	out := floats.Span(make([]float64, n), 0, 1)
	// Span accumulates step*i, which can land one ulp short of 1.
	out[n-1] = 1

	return out
}

// Random samples each axis with sorted uniform draws from [0,1).
type Random struct {
	seed int64
}

// NewRandom returns a Random sampler bound to seed (0 ⇒ a fixed default seed).
func NewRandom(seed int64) Random {
	return Random{seed: seed}
}

// Seed returns the configured seed.
func (r Random) Seed() int64 { return r.seed }

// Sample implements Sampler. Repeated calls return identical grids.
func (r Random) Sample(alphaRes, betaRes int) (alpha, beta []float64) {
	return r.axis(alphaStream, alphaRes), r.axis(betaStream, betaRes)
}

func (r Random) axis(stream uint64, n int) []float64 {
	if n < MinResolution {
		return nil
	}
	rng := streamRNG(r.seed, stream)
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}
	slices.Sort(out)

	return out
}
