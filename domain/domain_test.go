package domain_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/holomap/domain"
	"github.com/katalvlaran/holomap/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = domain.DefaultEpsilon

func at(t *testing.T, g *grid.Grid, i, j int) complex128 {
	t.Helper()
	v, err := g.At(i, j)
	require.NoError(t, err)
	return v
}

// TestRadialDefaultScenario checks the default disk on a 3×4 linear grid:
// radius closed at 0 and open at 1, angle open at both ends.
func TestRadialDefaultScenario(t *testing.T) {
	d := domain.NewRadial()
	g := d.Points([]float64{0, 0.5, 1}, []float64{0, 1.0 / 3, 2.0 / 3, 1})

	rows, cols := g.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)

	wantRadii := []float64{0, 0.5, 1 - eps}
	for i, want := range wantRadii {
		assert.InDelta(t, want, cmplx.Abs(at(t, g, i, 1)), 1e-4, "radius row %d", i)
	}
	assert.Less(t, cmplx.Abs(at(t, g, 2, 0)), 1.0, "boundary circle is excluded")

	seen := map[float64]bool{}
	for j := 0; j < cols; j++ {
		theta := cmplx.Phase(at(t, g, 2, j))
		if theta < 0 {
			theta += 2 * math.Pi
		}
		assert.Greater(t, theta, 0.0)
		assert.Less(t, theta, 2*math.Pi)
		seen[theta] = true
	}
	assert.Len(t, seen, 4, "four distinct angles")
}

// TestRadialExclusiveLowerMargin verifies that an excluded lower limit is
// sampled at the ε-interpolated radius, not at radius_range[0].
func TestRadialExclusiveLowerMargin(t *testing.T) {
	d := domain.NewRadial(
		domain.WithRadiusRange(1, 3),
		domain.WithRadiusBounds(domain.OpenBounds),
		domain.WithEpsilon(1e-3),
	)
	g := d.Points([]float64{0, 1}, []float64{0.5})

	assert.InDelta(t, 1+2*1e-3, cmplx.Abs(at(t, g, 0, 0)), 1e-12)
	assert.InDelta(t, 3-2*1e-3, cmplx.Abs(at(t, g, 1, 0)), 1e-12)
	assert.NotEqual(t, 1.0, cmplx.Abs(at(t, g, 0, 0)))
}

// TestRadialZeroWidthRange ensures a degenerate range yields a constant axis.
func TestRadialZeroWidthRange(t *testing.T) {
	d := domain.NewRadial(domain.WithRadiusRange(2, 2), domain.WithAngleRange(1, 1))
	g := d.Points([]float64{0, 0.3, 1}, []float64{0, 1})

	for _, z := range g.Values() {
		assert.InDelta(t, 2, cmplx.Abs(z), 1e-12)
		assert.InDelta(t, 1, cmplx.Phase(z), 1e-12)
	}
}

// TestRadialClosedBounds maps the parameter ends onto the range ends exactly.
func TestRadialClosedBounds(t *testing.T) {
	d := domain.NewRadial(
		domain.WithAngleRange(0, math.Pi),
		domain.WithRadiusBounds(domain.ClosedBounds),
		domain.WithAngleBounds(domain.ClosedBounds),
	)
	g := d.Points([]float64{1}, []float64{0, 1})

	assert.InDelta(t, 1, real(at(t, g, 0, 0)), 1e-12)
	assert.InDelta(t, -1, real(at(t, g, 0, 1)), 1e-12)
}

// TestQuadrantCenterOfPlane maps the centre parameter of the reflected
// (full-plane) domain to the origin.
func TestQuadrantCenterOfPlane(t *testing.T) {
	d, err := domain.NewQuadrant(1, domain.WithReflectX(), domain.WithReflectY())
	require.NoError(t, err)

	z := at(t, d.Points([]float64{0.5}, []float64{0.5}), 0, 0)
	assert.InDelta(t, 0, real(z), 1e-9)
	assert.InDelta(t, 0, imag(z), 1e-9)
}

// TestQuadrantFirst checks quadrant 1: the parameter corner (0,0) lands next
// to the origin and the centre lands at Stretch(0.5) on both axes.
func TestQuadrantFirst(t *testing.T) {
	d, err := domain.NewQuadrant(1)
	require.NoError(t, err)

	g := d.Points([]float64{0, 0.5, 1}, []float64{0, 0.5, 1})
	corner := at(t, g, 0, 0)
	assert.InDelta(t, 0, real(corner), 1e-4)
	assert.InDelta(t, 0, imag(corner), 1e-4)

	centre := at(t, g, 1, 1)
	assert.InDelta(t, 4.0/3, real(centre), 1e-3)
	assert.InDelta(t, 4.0/3, imag(centre), 1e-3)

	for _, z := range g.Values() {
		assert.False(t, cmplx.IsInf(z), "open margin keeps the poles out")
		assert.GreaterOrEqual(t, real(z), 0.0)
		assert.GreaterOrEqual(t, imag(z), 0.0)
	}
}

// TestQuadrantSigns verifies each quadrant's sign pattern.
func TestQuadrantSigns(t *testing.T) {
	cases := []struct {
		q      int
		reSign float64
		imSign float64
	}{
		{1, 1, 1},
		{2, -1, 1},
		{3, -1, -1},
		{4, 1, -1},
	}
	for _, tc := range cases {
		d, err := domain.NewQuadrant(tc.q)
		require.NoError(t, err)
		z := at(t, d.Points([]float64{0.25, 0.75}, []float64{0.25, 0.75}), 0, 1)
		assert.Equal(t, tc.reSign, math.Copysign(1, real(z)), "quadrant %d real sign", tc.q)
		assert.Equal(t, tc.imSign, math.Copysign(1, imag(z)), "quadrant %d imag sign", tc.q)
	}
}

// TestQuadrantInvalid ensures indices outside 1..4 are rejected.
func TestQuadrantInvalid(t *testing.T) {
	for _, q := range []int{0, 5, -1} {
		_, err := domain.NewQuadrant(q)
		assert.ErrorIs(t, err, domain.ErrBadQuadrant)
	}
}

// TestQuadrantBypassedMarginPropagatesInf shows that with ε = 0 the pole is
// reached and +Inf flows out as data.
func TestQuadrantBypassedMarginPropagatesInf(t *testing.T) {
	d, err := domain.NewQuadrant(1, domain.WithEpsilon(0))
	require.NoError(t, err)

	z := at(t, d.Points([]float64{1}, []float64{0.5}), 0, 0)
	assert.True(t, math.IsInf(real(z), 1))
}

// TestOpenBoundsSpans covers the four interval shapes produced by Open.
func TestOpenBoundsSpans(t *testing.T) {
	identity := domain.Func(func(alpha, beta []float64) *grid.Grid {
		return grid.Outer(alpha, beta, func(a, b float64) complex128 { return complex(a, b) })
	})
	cases := []struct {
		name   string
		bounds domain.Bounds
		lo, hi float64
	}{
		{"open", domain.OpenBounds, 0.1, 0.9},
		{"closed", domain.ClosedBounds, 0, 1},
		{"lower", domain.LowerClosed, 0, 0.9},
		{"upper", domain.UpperClosed, 0.1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := domain.NewOpen(identity, tc.bounds, domain.ClosedBounds, 0.1)
			require.NoError(t, err)
			g := o.Points([]float64{0, 1}, []float64{0})
			assert.InDelta(t, tc.lo, real(at(t, g, 0, 0)), 1e-12)
			assert.InDelta(t, tc.hi, real(at(t, g, 1, 0)), 1e-12)
		})
	}
}

// TestOpenBadEpsilon checks NewOpen and WithEpsilon validation.
func TestOpenBadEpsilon(t *testing.T) {
	_, err := domain.NewOpen(domain.NewRadial(), domain.OpenBounds, domain.OpenBounds, 0.5)
	assert.ErrorIs(t, err, domain.ErrBadEpsilon)

	_, err = domain.NewOpen(domain.NewRadial(), domain.OpenBounds, domain.OpenBounds, math.NaN())
	assert.ErrorIs(t, err, domain.ErrBadEpsilon)

	assert.Panics(t, func() { domain.WithEpsilon(-1) })
	assert.Panics(t, func() { domain.WithRadiusRange(0, math.Inf(1)) })
}

// TestBoundsString renders interval notation.
func TestBoundsString(t *testing.T) {
	assert.Equal(t, "[0,1)", domain.LowerClosed.String())
	assert.Equal(t, "(0,1)", domain.OpenBounds.String())
}
