package mesh

import "github.com/katalvlaran/holomap/grid"

// Projected exposes a mesh as (x, y) pairs.
type Projected struct {
	base Mesh
}

// NewProjected wraps base. Panics if base is nil.
func NewProjected(base Mesh) *Projected {
	if base == nil {
		panic(nilBase)
	}

	return &Projected{base: base}
}

// Points returns the upstream grid split into real and imaginary planes.
func (p *Projected) Points() *grid.Planar { return grid.Project(p.base.Points()) }

// Transform transforms the underlying complex mesh and projects the result again.
func (p *Projected) Transform(ts ...Transformation) *Projected {
	return NewProjected(p.base.Transform(ts...))
}

// Unwrap returns the complex mesh being projected.
func (p *Projected) Unwrap() Mesh { return p.base }
