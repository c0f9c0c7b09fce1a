package mesh

import (
	"sync"

	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/grid"
)

// Accumulated displaces upstream points with a point accumulator.
type Accumulated struct {
	base Mesh
	acc  accumulate.PointAccumulator
}

// NewAccumulated wraps base. Panics if base or acc is nil.
func NewAccumulated(base Mesh, acc accumulate.PointAccumulator) *Accumulated {
	if base == nil || acc == nil {
		panic(nilBase)
	}

	return &Accumulated{base: base, acc: acc}
}

// Points implements Mesh.
func (m *Accumulated) Points() *grid.Grid { return m.acc.Accumulate(m.base.Points()) }

// Transform implements Mesh.
func (m *Accumulated) Transform(ts ...Transformation) Mesh { return NewTransformed(m, ts...) }

// Transformed applies an ordered list of transformations to upstream points.
type Transformed struct {
	base Mesh
	ts   []Transformation
}

// NewTransformed wraps base with a private copy of ts.
// Nil entries act as the identity. Panics if base is nil.
func NewTransformed(base Mesh, ts ...Transformation) *Transformed {
	if base == nil {
		panic(nilBase)
	}

	return &Transformed{base: base, ts: append([]Transformation(nil), ts...)}
}

// Len returns the number of transformations held by this stage alone.
func (m *Transformed) Len() int { return len(m.ts) }

// Points implements Mesh.
func (m *Transformed) Points() *grid.Grid {
	g := m.base.Points()
	for _, t := range m.ts {
		if t != nil {
			g = t(g)
		}
	}

	return g
}

// Transform implements Mesh. The new stage holds exactly ts.
func (m *Transformed) Transform(ts ...Transformation) Mesh { return NewTransformed(m, ts...) }

// Cached computes upstream points once and hands out copies.
// Safe for concurrent use.
type Cached struct {
	base   Mesh
	once   sync.Once
	points *grid.Grid
}

// NewCached wraps base. Panics if base is nil.
func NewCached(base Mesh) *Cached {
	if base == nil {
		panic(nilBase)
	}

	return &Cached{base: base}
}

// Points returns a fresh copy of the memoized grid.
func (m *Cached) Points() *grid.Grid {
	m.once.Do(func() { m.points = m.base.Points() })

	return m.points.Clone()
}

// Transform implements Mesh.
func (m *Cached) Transform(ts ...Transformation) Mesh { return NewTransformed(m, ts...) }
