package grid

import (
	"fmt"
	"strings"
)

// Grid is a row-major array of complex points.
// r is rows (alpha samples), c is columns (beta samples) and data holds r*c
// elements in row-major order.
type Grid struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// New creates an r×c Grid initialized to zeros.
// Zero-sized grids are valid; negative dimensions return ErrBadShape.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// FromFunc builds an r×c Grid whose (i, j) entry is f(i, j).
// Entries are produced in row-major order, so f may rely on that sequence.
// Complexity: O(r*c) calls of f.
func FromFunc(rows, cols int, f func(i, j int) complex128) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, gridErrorf("FromFunc", err)
	}
	for i := 0; i < rows; i++ {
		base := i * cols
		for j := 0; j < cols; j++ {
			g.data[base+j] = f(i, j)
		}
	}

	return g, nil
}

// FromRows copies a rectangular [][]complex128 into a new Grid.
// An empty outer slice gives a 0×0 grid. Ragged input returns ErrNonRectangular.
func FromRows(rows [][]complex128) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, gridErrorf("FromRows", ErrNonRectangular)
		}
	}
	g := &Grid{r: len(rows), c: cols, data: make([]complex128, len(rows)*cols)}
	for i, row := range rows {
		copy(g.data[i*cols:(i+1)*cols], row)
	}

	return g, nil
}

// Outer returns the len(xs)×len(ys) grid with entries f(xs[i], ys[j]).
// This is the shape-creating step of every domain mapping; it cannot fail
// because slice lengths are never negative.
func Outer(xs, ys []float64, f func(x, y float64) complex128) *Grid {
	g := &Grid{r: len(xs), c: len(ys), data: make([]complex128, len(xs)*len(ys))}
	for i, x := range xs {
		base := i * g.c
		for j, y := range ys {
			g.data[base+j] = f(x, y)
		}
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.c }

// Dims returns (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.r, g.c }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, indexErrorf("Grid."+method, row, col)
	}

	return row*g.c + col, nil
}

// At returns the point at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (complex128, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (g *Grid) Set(row, col int, v complex128) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (g *Grid) Row(i int) []complex128 {
	if i < 0 || i >= g.r {
		return nil
	}
	out := make([]complex128, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out
}

// Values returns a copy of all points in row-major order.
func (g *Grid) Values() []complex128 {
	out := make([]complex128, len(g.data))
	copy(out, g.data)

	return out
}

// Clone returns a deep copy.
// Complexity: O(r*c) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]complex128, len(g.data))
	copy(data, g.data)

	return &Grid{r: g.r, c: g.c, data: data}
}

// Apply returns a new grid with f applied to every point.
// The receiver is left untouched.
// Complexity: O(r*c) calls of f.
func (g *Grid) Apply(f func(complex128) complex128) *Grid {
	out := &Grid{r: g.r, c: g.c, data: make([]complex128, len(g.data))}
	for idx, z := range g.data {
		out.data[idx] = f(z)
	}

	return out
}

// ApplyIndexed is Apply with the (row, col) position passed to f.
func (g *Grid) ApplyIndexed(f func(i, j int, z complex128) complex128) *Grid {
	out := &Grid{r: g.r, c: g.c, data: make([]complex128, len(g.data))}
	for i := 0; i < g.r; i++ {
		base := i * g.c
		for j := 0; j < g.c; j++ {
			out.data[base+j] = f(i, j, g.data[base+j])
		}
	}

	return out
}

// String implements fmt.Stringer for debugging; one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < g.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.data[i*g.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
