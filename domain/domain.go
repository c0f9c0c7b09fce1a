package domain

import (
	"fmt"

	"github.com/katalvlaran/holomap/grid"
)

// DefaultEpsilon is the margin kept from excluded boundaries.
const DefaultEpsilon = 1e-5

// Domain maps a parameter grid to target-space points.
// alpha and beta are ordered samples in [0,1]; the result has shape
// (len(alpha), len(beta)). Implementations must not modify their inputs.
type Domain interface {
	Points(alpha, beta []float64) *grid.Grid
}

// Func adapts an ordinary function to the Domain interface.
type Func func(alpha, beta []float64) *grid.Grid

// Points calls f(alpha, beta).
func (f Func) Points(alpha, beta []float64) *grid.Grid { return f(alpha, beta) }

// Range is a closed interval [Min, Max] targeted by linear interpolation.
// Min == Max is a valid degenerate range; Min > Max runs backwards.
type Range struct {
	Min, Max float64
}

// At interpolates t ∈ [0,1] into the range. Values outside [0,1] are clamped.
func (r Range) At(t float64) float64 {
	if t <= 0 {
		return r.Min
	}
	if t >= 1 {
		return r.Max
	}

	return r.Min + (r.Max-r.Min)*t
}

// Map returns a new slice with At applied to every element of ts.
func (r Range) Map(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = r.At(t)
	}

	return out
}

// Bounds says which ends of a parameter axis belong to the domain.
// An excluded end is approached to within ε but never sampled.
type Bounds struct {
	IncludeLower bool
	IncludeUpper bool
}

// Common bound presets: (0,1), [0,1], [0,1) and (0,1].
var (
	OpenBounds   = Bounds{}
	ClosedBounds = Bounds{IncludeLower: true, IncludeUpper: true}
	LowerClosed  = Bounds{IncludeLower: true}
	UpperClosed  = Bounds{IncludeUpper: true}
)

// span returns the effective parameter interval for the given margin.
func (b Bounds) span(epsilon float64) Range {
	r := Range{Min: epsilon, Max: 1 - epsilon}
	if b.IncludeLower {
		r.Min = 0
	}
	if b.IncludeUpper {
		r.Max = 1
	}

	return r
}

// String renders the bounds in interval notation, e.g. "[0,1)".
func (b Bounds) String() string {
	lo, hi := "(", ")"
	if b.IncludeLower {
		lo = "["
	}
	if b.IncludeUpper {
		hi = "]"
	}

	return lo + "0,1" + hi
}

// Open rescales incoming parameters away from excluded boundaries before
// delegating to the wrapped domain.
type Open struct {
	base    Domain
	alpha   Range
	beta    Range
	epsilon float64
}

// NewOpen wraps base so that alpha and beta land in the intervals described by
// the bounds and epsilon: [ε,1], [0,1-ε], [ε,1-ε] or [0,1].
// Returns ErrBadEpsilon when epsilon ∉ [0, 0.5).
func NewOpen(base Domain, alpha, beta Bounds, epsilon float64) (*Open, error) {
	if !validEpsilon(epsilon) {
		return nil, fmt.Errorf("NewOpen(ε=%g): %w", epsilon, ErrBadEpsilon)
	}

	return &Open{
		base:    base,
		alpha:   alpha.span(epsilon),
		beta:    beta.span(epsilon),
		epsilon: epsilon,
	}, nil
}

// Points rescales both axes and delegates to the wrapped domain.
func (o *Open) Points(alpha, beta []float64) *grid.Grid {
	return o.base.Points(o.alpha.Map(alpha), o.beta.Map(beta))
}

// Epsilon returns the configured margin.
func (o *Open) Epsilon() float64 { return o.epsilon }

// AlphaSpan returns the effective alpha interval after the margin.
func (o *Open) AlphaSpan() Range { return o.alpha }

// BetaSpan returns the effective beta interval after the margin.
func (o *Open) BetaSpan() Range { return o.beta }

// validEpsilon reports ε ∈ [0, 0.5); at 0.5 an open axis collapses to a point.
func validEpsilon(epsilon float64) bool {
	return epsilon >= 0 && epsilon < 0.5
}
