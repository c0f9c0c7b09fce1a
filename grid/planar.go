package grid

import "fmt"

// Planar is a rows×cols×2 array of (x, y) coordinates stored row-major with
// the pair as the fastest-varying axis: data[2*(i*c+j)] is x, the next is y.
type Planar struct {
	r, c int
	data []float64
}

// NewPlanar creates a zeroed rows×cols×2 array.
func NewPlanar(rows, cols int) (*Planar, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewPlanar(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Planar{r: rows, c: cols, data: make([]float64, 2*rows*cols)}, nil
}

// Project converts a complex grid into its planar form (real, imag).
// The shape gains a trailing dimension of size 2; nothing else changes.
// Complexity: O(r*c).
func Project(g *Grid) *Planar {
	p := &Planar{r: g.r, c: g.c, data: make([]float64, 2*len(g.data))}
	for idx, z := range g.data {
		p.data[2*idx] = real(z)
		p.data[2*idx+1] = imag(z)
	}

	return p
}

// Lift is the inverse of Project: it packs (x, y) pairs back into x+iy.
func Lift(p *Planar) *Grid {
	g := &Grid{r: p.r, c: p.c, data: make([]complex128, p.r*p.c)}
	for idx := range g.data {
		g.data[idx] = complex(p.data[2*idx], p.data[2*idx+1])
	}

	return g
}

// Rows returns the number of rows.
func (p *Planar) Rows() int { return p.r }

// Cols returns the number of columns.
func (p *Planar) Cols() int { return p.c }

// Shape returns (rows, cols, 2).
func (p *Planar) Shape() [3]int { return [3]int{p.r, p.c, 2} }

// At returns the coordinate pair at (row, col).
func (p *Planar) At(row, col int) (x, y float64, err error) {
	if row < 0 || row >= p.r || col < 0 || col >= p.c {
		return 0, 0, indexErrorf("Planar.At", row, col)
	}
	idx := 2 * (row*p.c + col)

	return p.data[idx], p.data[idx+1], nil
}

// Set assigns the pair (x, y) at (row, col).
func (p *Planar) Set(row, col int, x, y float64) error {
	if row < 0 || row >= p.r || col < 0 || col >= p.c {
		return indexErrorf("Planar.Set", row, col)
	}
	idx := 2 * (row*p.c + col)
	p.data[idx], p.data[idx+1] = x, y

	return nil
}

// XY returns the pair at (row, col) without bounds reporting.
// Callers iterating 0..Rows()-1 × 0..Cols()-1 use it in hot loops.
func (p *Planar) XY(row, col int) (x, y float64) {
	idx := 2 * (row*p.c + col)

	return p.data[idx], p.data[idx+1]
}

// Flat returns a copy of the backing array in (row, col, component) order.
func (p *Planar) Flat() []float64 {
	out := make([]float64, len(p.data))
	copy(out, p.data)

	return out
}

// Clone returns a deep copy.
func (p *Planar) Clone() *Planar {
	data := make([]float64, len(p.data))
	copy(data, p.data)

	return &Planar{r: p.r, c: p.c, data: data}
}
