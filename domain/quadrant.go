package domain

import (
	"fmt"

	"github.com/katalvlaran/holomap/grid"
)

// Quadrant covers a quadrant of the complex plane, or a half plane / the
// whole plane when reflected. Each axis is first placed in (-1,1) and then
// stretched to (-∞,∞) by Stretch.
type Quadrant struct {
	quadrant int
	x, y     Range
	open     *Open
}

// NewQuadrant builds the domain for quadrant q ∈ 1..4 (counter-clockwise from
// the positive real/imaginary quadrant). WithReflectX / WithReflectY widen the
// corresponding axis to both signs. Both axes are open at both ends, which
// keeps Stretch away from its poles.
// The centre parameter (0.5, 0.5) maps to the origin only when both axes are
// reflected; for quadrant 1 it maps to Stretch(0.5)·(1+i) = (4/3)(1+i).
// Returns ErrBadQuadrant for q outside 1..4.
func NewQuadrant(q int, opts ...Option) (*Quadrant, error) {
	if q < 1 || q > 4 {
		return nil, fmt.Errorf("NewQuadrant(%d): %w", q, ErrBadQuadrant)
	}
	cfg := newQuadrantConfig(opts...)

	d := &Quadrant{quadrant: q, x: Range{Min: 0, Max: 1}, y: Range{Min: 0, Max: 1}}
	if q == 2 || q == 3 {
		d.x = Range{Min: -1, Max: 0}
	}
	if q == 3 || q == 4 {
		d.y = Range{Min: -1, Max: 0}
	}
	if cfg.reflectX {
		d.x = Range{Min: -1, Max: 1}
	}
	if cfg.reflectY {
		d.y = Range{Min: -1, Max: 1}
	}
	d.open, _ = NewOpen(Func(d.mapParameters), OpenBounds, OpenBounds, cfg.epsilon)

	return d, nil
}

// Points implements Domain.
func (d *Quadrant) Points(alpha, beta []float64) *grid.Grid {
	return d.open.Points(alpha, beta)
}

// Index returns the configured quadrant number.
func (d *Quadrant) Index() int { return d.quadrant }

// Epsilon returns the open-boundary margin.
func (d *Quadrant) Epsilon() float64 { return d.open.Epsilon() }

// Stretch is the odd bijection (-1,1) → (-∞,∞), t ↦ 1/(1-t) - 1/(1+t).
// It is singular at t = ±1 and returns ±Inf there.
func Stretch(t float64) float64 {
	return 1/(1-t) - 1/(1+t)
}

func (d *Quadrant) mapParameters(alpha, beta []float64) *grid.Grid {
	xs := d.x.Map(alpha)
	ys := d.y.Map(beta)
	for i := range xs {
		xs[i] = Stretch(xs[i])
	}
	for j := range ys {
		ys[j] = Stretch(ys[j])
	}

	return grid.Outer(xs, ys, func(x, y float64) complex128 {
		return complex(x, y)
	})
}
