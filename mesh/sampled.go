package mesh

import (
	"fmt"

	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/domain"
	"github.com/katalvlaran/holomap/grid"
	"github.com/katalvlaran/holomap/sampling"
)

// Sampled evaluates a domain on the grid produced by a sampler.
type Sampled struct {
	domain            domain.Domain
	sampler           sampling.Sampler
	alphaRes, betaRes int
}

// NewSampled binds a domain to a sampling strategy and resolutions.
// Errors: ErrNilDomain, ErrNilSampler, sampling.ErrBadResolution.
func NewSampled(d domain.Domain, s sampling.Sampler, alphaRes, betaRes int) (*Sampled, error) {
	switch {
	case d == nil:
		return nil, fmt.Errorf("NewSampled: %w", ErrNilDomain)
	case s == nil:
		return nil, fmt.Errorf("NewSampled: %w", ErrNilSampler)
	}
	if err := sampling.ValidateResolution("alpha", alphaRes); err != nil {
		return nil, fmt.Errorf("NewSampled: %w", err)
	}
	if err := sampling.ValidateResolution("beta", betaRes); err != nil {
		return nil, fmt.Errorf("NewSampled: %w", err)
	}

	return &Sampled{domain: d, sampler: s, alphaRes: alphaRes, betaRes: betaRes}, nil
}

// Resolution returns the number of samples per axis.
func (m *Sampled) Resolution() (alphaRes, betaRes int) { return m.alphaRes, m.betaRes }

// Parameters returns the sampler's (alpha, beta) grid.
func (m *Sampled) Parameters() (alpha, beta []float64) {
	return m.sampler.Sample(m.alphaRes, m.betaRes)
}

// Domain returns the evaluated domain.
func (m *Sampled) Domain() domain.Domain { return m.domain }

// Points evaluates the domain on Parameters.
func (m *Sampled) Points() *grid.Grid {
	return m.domain.Points(m.Parameters())
}

// Transform implements Mesh.
func (m *Sampled) Transform(ts ...Transformation) Mesh { return NewTransformed(m, ts...) }

// Reparameterized warps an upstream parameter grid through one quantile
// function per axis before evaluating the domain.
type Reparameterized struct {
	base          ParameterMesh
	alphaQ, betaQ accumulate.Quantiler
}

// NewReparameterized wraps base. A nil quantiler leaves its axis unchanged.
// Panics if base is nil.
func NewReparameterized(base ParameterMesh, alphaQ, betaQ accumulate.Quantiler) *Reparameterized {
	if base == nil {
		panic(nilBase)
	}

	return &Reparameterized{base: base, alphaQ: alphaQ, betaQ: betaQ}
}

// Parameters returns the warped (alpha, beta) grid.
func (m *Reparameterized) Parameters() (alpha, beta []float64) {
	alpha, beta = m.base.Parameters()

	return accumulate.Reparameterize(m.alphaQ, alpha), accumulate.Reparameterize(m.betaQ, beta)
}

// Domain returns the upstream domain.
func (m *Reparameterized) Domain() domain.Domain { return m.base.Domain() }

// Points evaluates the domain on the warped grid.
func (m *Reparameterized) Points() *grid.Grid {
	return m.Domain().Points(m.Parameters())
}

// Transform implements Mesh.
func (m *Reparameterized) Transform(ts ...Transformation) Mesh { return NewTransformed(m, ts...) }
