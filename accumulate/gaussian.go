package accumulate

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/holomap/grid"
)

// PointAccumulator displaces target-space points.
// Implementations return a new grid of the same shape and never modify the input.
type PointAccumulator interface {
	Accumulate(points *grid.Grid) *grid.Grid
}

// Norm measures the length of a target-space difference.
// It is the point-semantics capability: complex modulus by default, swappable
// for meshes whose points carry another metric.
type Norm func(complex128) float64

// Euclidean is the complex modulus |z|, which equals the 2D length of (re, im).
func Euclidean(z complex128) float64 { return cmplx.Abs(z) }

// Chebyshev is max(|re|, |im|).
func Chebyshev(z complex128) float64 {
	return math.Max(math.Abs(real(z)), math.Abs(imag(z)))
}

// GaussianOption customizes a Gaussian accumulator.
type GaussianOption func(*gaussianConfig)

type gaussianConfig struct {
	norm Norm
}

// WithNorm replaces the distance used in the decay factor.
// Panics on nil.
func WithNorm(n Norm) GaussianOption {
	if n == nil {
		panic("accumulate: WithNorm(nil)")
	}
	return func(c *gaussianConfig) {
		c.norm = n
	}
}

// Gaussian pulls points toward attractors with weight exp(-(s·d)²).
type Gaussian struct {
	attractors []complex128
	sharpness  float64
	norm       Norm
}

// NewGaussian returns a Gaussian accumulator over a private copy of attractors.
// Sharpness must be finite and non-negative; sharpness 0 pulls every point
// fully onto the attractors' centroid.
func NewGaussian(attractors []complex128, sharpness float64, opts ...GaussianOption) (*Gaussian, error) {
	if math.IsNaN(sharpness) || math.IsInf(sharpness, 0) || sharpness < 0 {
		return nil, accumulateErrorf("NewGaussian", sharpness, ErrBadSharpness)
	}
	cfg := gaussianConfig{norm: Euclidean}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Gaussian{
		attractors: append([]complex128(nil), attractors...),
		sharpness:  sharpness,
		norm:       cfg.norm,
	}, nil
}

// Attractors returns a copy of the attractor locations.
func (g *Gaussian) Attractors() []complex128 {
	return append([]complex128(nil), g.attractors...)
}

// Sharpness returns the decay coefficient.
func (g *Gaussian) Sharpness() float64 { return g.sharpness }

// Accumulate implements PointAccumulator.
// With no attractors it returns an unchanged copy.
// Complexity: O(r·c·k) for k attractors.
func (g *Gaussian) Accumulate(points *grid.Grid) *grid.Grid {
	if len(g.attractors) == 0 {
		return points.Clone()
	}

	return points.Apply(g.displace)
}

// displace returns m moved by the mean weighted difference to every attractor.
func (g *Gaussian) displace(m complex128) complex128 {
	var sum complex128
	for _, p := range g.attractors {
		d := p - m
		x := g.sharpness * g.norm(d)
		sum += d * complex(math.Exp(-x*x), 0)
	}

	return m + sum/complex(float64(len(g.attractors)), 0)
}
