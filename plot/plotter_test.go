package plot_test

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/holomap/grid"
	"github.com/katalvlaran/holomap/plot"
)

func planar(t *testing.T, rows [][]complex128) *grid.Planar {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return grid.Project(g)
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		opt  plot.Option
		want error
	}{
		{"paint parameter", plot.WithPaintParameter("gamma"), plot.ErrBadPaintParameter},
		{"points colour", plot.WithPointsColor("nope"), plot.ErrBadColor},
		{"grid colour", plot.WithGridColor("#12"), plot.ErrBadColor},
		{"background", plot.WithBackground("white"), plot.ErrBadColor},
		{"axis colour", plot.WithAxisLineColor("#gggggg"), plot.ErrBadColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := plot.New(tc.opt)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { plot.WithDPI(0) })
	assert.Panics(t, func() { plot.WithAxisScale(-1) })
	assert.Panics(t, func() { plot.WithTickRate(math.NaN()) })
	assert.Panics(t, func() { plot.WithLineWidth(-0.1) })
	assert.Panics(t, func() { plot.WithLogger(nil) })
	assert.NotPanics(t, func() { plot.WithMarkerSize(0) })
}

func TestRender_PanelLayout(t *testing.T) {
	p, err := plot.New(plot.WithDPI(20))
	require.NoError(t, err)
	assert.Equal(t, 80, p.PanelSize())

	pts := planar(t, [][]complex128{{0, 1}, {1i, 1 + 1i}})
	dc, err := p.Render(pts, pts)
	require.NoError(t, err)
	defer dc.Close()
	assert.Equal(t, 160, dc.Width())
	assert.Equal(t, 80, dc.Height())

	_, err = p.Render()
	assert.True(t, errors.Is(err, plot.ErrNoPanels))
}

func TestRender_PointColour(t *testing.T) {
	p, err := plot.New(
		plot.WithDPI(72),
		plot.WithMarkerSize(400),
		plot.WithPointsColor("#ff0000"),
		plot.WithAxisLineWidth(0),
	)
	require.NoError(t, err)

	dc, err := p.Render(planar(t, [][]complex128{{0}}))
	require.NoError(t, err)
	defer dc.Close()

	c := dc.Image().At(144, 144)
	r, g, b, _ := c.RGBA()
	assert.Greater(t, r, uint32(0xe000))
	assert.Less(t, g, uint32(0x2000))
	assert.Less(t, b, uint32(0x2000))

	corner := dc.Image().At(2, 2)
	r, g, b, _ = corner.RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "background stays white")
}

func TestWritePNG_SkipsNonFinite(t *testing.T) {
	p, err := plot.New(
		plot.WithDPI(30),
		plot.WithGridColor("plasma"),
		plot.WithPaintParameter("alpha"),
		plot.WithTicks(true),
		plot.WithGrid(true),
		plot.WithSpines(true),
	)
	require.NoError(t, err)

	inf := complex(math.Inf(1), 0)
	pts := planar(t, [][]complex128{{0, inf}, {0.5, 1 + 0.5i}})

	var buf bytes.Buffer
	require.NoError(t, p.WritePNG(&buf, pts))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
}

func TestSavePNG(t *testing.T) {
	p, err := plot.New(plot.WithDPI(10))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "mesh.png")
	require.NoError(t, p.SavePNG(path, planar(t, [][]complex128{{0, 1}})))

	err = p.SavePNG(filepath.Join(t.TempDir(), "missing", "mesh.png"), planar(t, [][]complex128{{0}}))
	assert.Error(t, err)
}
