package domain

import (
	"math"

	"github.com/katalvlaran/holomap/grid"
)

// Radial is a disk, annulus or sector in polar coordinates.
// alpha selects the radius, beta the angle; the point is r·exp(iθ).
type Radial struct {
	radius Range
	angle  Range
	open   *Open
}

// NewRadial builds a radial domain. Without options it is the unit disk over a
// full turn, the centre included, the boundary circle excluded and the angle
// open at both ends so the 0/2π seam is not sampled twice.
func NewRadial(opts ...Option) *Radial {
	cfg := newRadialConfig(opts...)
	r := &Radial{radius: cfg.radius, angle: cfg.angle}
	// epsilon was validated by WithEpsilon or is the default.
	r.open, _ = NewOpen(Func(r.mapParameters), cfg.radiusBounds, cfg.angleBounds, cfg.epsilon)

	return r
}

// Points implements Domain.
func (r *Radial) Points(alpha, beta []float64) *grid.Grid {
	return r.open.Points(alpha, beta)
}

// RadiusRange returns the configured radius interval.
func (r *Radial) RadiusRange() Range { return r.radius }

// AngleRange returns the configured angle interval.
func (r *Radial) AngleRange() Range { return r.angle }

// Epsilon returns the open-boundary margin.
func (r *Radial) Epsilon() float64 { return r.open.Epsilon() }

// mapParameters is the raw polar mapping over already-rescaled parameters.
func (r *Radial) mapParameters(alpha, beta []float64) *grid.Grid {
	radii := r.radius.Map(alpha)
	// exp(iθ) per beta sample, computed once per column.
	phases := make([]complex128, len(beta))
	for j, theta := range r.angle.Map(beta) {
		s, c := math.Sincos(theta)
		phases[j] = complex(c, s)
	}

	// Slice lengths are never negative, so FromFunc cannot fail here.
	g, _ := grid.FromFunc(len(radii), len(phases), func(i, j int) complex128 {
		return complex(radii[i], 0) * phases[j]
	})

	return g
}
