package mesh

import (
	"github.com/katalvlaran/holomap/domain"
	"github.com/katalvlaran/holomap/grid"
)

// Transformation maps a whole point grid to a new grid of the same shape.
// Implementations must not modify their argument.
type Transformation func(*grid.Grid) *grid.Grid

// Pointwise lifts a scalar complex function to a Transformation.
// Non-finite results are kept as data.
func Pointwise(f func(complex128) complex128) Transformation {
	return func(g *grid.Grid) *grid.Grid { return g.Apply(f) }
}

// Mesh produces a point grid and can be wrapped in further transformations.
type Mesh interface {
	// Points returns a grid the caller may freely modify.
	Points() *grid.Grid
	// Transform returns a new mesh that applies ts, in order, to Points.
	Transform(ts ...Transformation) Mesh
}

// ParameterMesh is a mesh whose points come from evaluating a domain on a
// parameter grid.
type ParameterMesh interface {
	Mesh
	Parameters() (alpha, beta []float64)
	Domain() domain.Domain
}
