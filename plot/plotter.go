package plot

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/holomap/grid"
)

// pointsPerInch converts typographic points to inches.
const pointsPerInch = 72.0

// Matplotlib-like furniture.
const (
	gridLineWidth  = 0.8 // pt
	gridLineColor  = "#b0b0b0"
	spineLineWidth = 0.8 // pt
	tickLength     = 3.5 // pt
)

// Plotter renders projected meshes. It is immutable after New and safe for
// concurrent use; every Render call owns its own canvas.
type Plotter struct {
	cfg        config
	points     Paint
	lines      Paint
	param      Parameter
	background colorful.Color
	axisColor  colorful.Color
	gridColor  colorful.Color
}

// New resolves opts and parses every colour.
// Errors: ErrBadColor, ErrBadPaintParameter.
func New(opts ...Option) (*Plotter, error) {
	cfg := newConfig(opts...)

	param, err := ParseParameter(cfg.paintParameter)
	if err != nil {
		return nil, fmt.Errorf("plot.New: %w", err)
	}
	points, err := ParsePaint(cfg.pointsColor)
	if err != nil {
		return nil, fmt.Errorf("plot.New: points: %w", err)
	}
	lines, err := ParsePaint(cfg.gridColor)
	if err != nil {
		return nil, fmt.Errorf("plot.New: grid: %w", err)
	}
	background, err := parseHex("background", cfg.background)
	if err != nil {
		return nil, err
	}
	axisColor, err := parseHex("axis line", cfg.axisLineColor)
	if err != nil {
		return nil, err
	}
	gridColor, _ := colorful.Hex(gridLineColor)

	return &Plotter{
		cfg:        cfg,
		points:     points,
		lines:      lines,
		param:      param,
		background: background,
		axisColor:  axisColor,
		gridColor:  gridColor,
	}, nil
}

func parseHex(what, s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("plot.New: %s %q: %w", what, s, ErrBadColor)
	}

	return c, nil
}

// PanelSize returns the side of one panel in pixels.
func (p *Plotter) PanelSize() int {
	return int(math.Round(p.cfg.dpi * p.cfg.panelInches))
}

// px converts a length in points to pixels.
func (p *Plotter) px(pt float64) float64 { return pt * p.cfg.dpi / pointsPerInch }

// Render draws panels left to right onto a new canvas.
// The caller owns the returned context and should Close it.
func (p *Plotter) Render(panels ...*grid.Planar) (*gg.Context, error) {
	if len(panels) == 0 {
		return nil, fmt.Errorf("plot.Render: %w", ErrNoPanels)
	}
	size := p.PanelSize()
	dc := gg.NewContext(size*len(panels), size)
	dc.ClearWithColor(toRGBA(p.background))

	for k, pts := range panels {
		if pts == nil {
			dc.Close()
			return nil, fmt.Errorf("plot.Render: panel %d: %w", k, ErrNoPanels)
		}
		skipped, err := p.drawPanel(dc, pts, float64(k*size), float64(size))
		if err != nil {
			dc.Close()
			return nil, fmt.Errorf("plot.Render: panel %d: %w", k, err)
		}
		if skipped > 0 {
			p.cfg.logger.Debug("skipped non-finite elements", "panel", k, "count", skipped)
		}
	}

	return dc, nil
}

// WritePNG renders panels and encodes them as PNG to w.
func (p *Plotter) WritePNG(w io.Writer, panels ...*grid.Planar) error {
	dc, err := p.Render(panels...)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}

// SavePNG renders panels into the PNG file at path.
func (p *Plotter) SavePNG(path string, panels ...*grid.Planar) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot.SavePNG: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("plot.SavePNG: %w", cerr)
		}
	}()

	return p.WritePNG(f, panels...)
}

// viewport maps data coordinates of one panel to canvas pixels.
type viewport struct {
	ox, size, scale float64
}

func (v viewport) at(x, y float64) (float64, float64) {
	return v.ox + (x+v.scale)/(2*v.scale)*v.size, (v.scale - y) / (2 * v.scale) * v.size
}

// drawPanel paints one mesh into the square at ox and returns how many
// segments and points were skipped for non-finite coordinates.
func (p *Plotter) drawPanel(dc *gg.Context, pts *grid.Planar, ox, size float64) (int, error) {
	vp := viewport{ox: ox, size: size, scale: p.cfg.axisScale}
	ticks := tickPositions(p.cfg.axisScale, p.cfg.tickRate)

	dc.Push()
	defer dc.Pop()
	dc.ClipRect(ox, 0, size, size)

	if p.cfg.showGrid {
		if err := p.drawGrid(dc, vp, ticks); err != nil {
			return 0, err
		}
	}
	if p.cfg.axisLineWidth > 0 {
		dc.SetColor(p.axisColor)
		dc.SetLineWidth(p.px(p.cfg.axisLineWidth))
		x0, y0 := vp.at(0, 0)
		dc.DrawLine(ox, y0, ox+size, y0)
		dc.DrawLine(x0, 0, x0, size)
		if err := dc.Stroke(); err != nil {
			return 0, fmt.Errorf("axis lines: %w", err)
		}
	}

	skipped, err := p.drawMesh(dc, vp, pts)
	if err != nil {
		return skipped, err
	}

	if p.cfg.showTicks {
		if err := p.drawTicks(dc, vp, ticks); err != nil {
			return skipped, err
		}
	}
	if p.cfg.showSpines {
		dc.SetColor(colorful.Color{})
		dc.SetLineWidth(p.px(spineLineWidth))
		dc.DrawRectangle(ox, 0, size, size)
		if err := dc.Stroke(); err != nil {
			return skipped, fmt.Errorf("spines: %w", err)
		}
	}

	return skipped, nil
}

// drawMesh strokes alpha and beta segments, then fills the points above them.
func (p *Plotter) drawMesh(dc *gg.Context, vp viewport, pts *grid.Planar) (int, error) {
	rows, cols := pts.Rows(), pts.Cols()
	lineColors := p.lines.Colors(rows, cols, p.param)
	pointColors := p.points.Colors(rows, cols, p.param)
	skipped := 0

	segment := func(i1, j1, i2, j2 int) error {
		x1, y1 := pts.XY(i1, j1)
		x2, y2 := pts.XY(i2, j2)
		if !finite(x1, y1, x2, y2) {
			skipped++
			return nil
		}
		dc.SetColor(mix(lineColors[i1*cols+j1], lineColors[i2*cols+j2]))
		ax, ay := vp.at(x1, y1)
		bx, by := vp.at(x2, y2)
		dc.DrawLine(ax, ay, bx, by)

		return dc.Stroke()
	}

	if p.cfg.lineWidth > 0 {
		dc.SetLineWidth(p.px(p.cfg.lineWidth))
		for i := 0; i+1 < rows; i++ {
			for j := 0; j < cols; j++ {
				if err := segment(i, j, i+1, j); err != nil {
					return skipped, fmt.Errorf("alpha line: %w", err)
				}
			}
		}
		for i := 0; i < rows; i++ {
			for j := 0; j+1 < cols; j++ {
				if err := segment(i, j, i, j+1); err != nil {
					return skipped, fmt.Errorf("beta line: %w", err)
				}
			}
		}
	}

	if p.cfg.markerSize > 0 {
		// Scatter sizes are areas in pt²; the disc radius is half the side.
		r := p.px(math.Sqrt(p.cfg.markerSize) / 2)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				x, y := pts.XY(i, j)
				if !finite(x, y) {
					skipped++
					continue
				}
				dc.SetColor(pointColors[i*cols+j])
				cx, cy := vp.at(x, y)
				dc.DrawCircle(cx, cy, r)
				if err := dc.Fill(); err != nil {
					return skipped, fmt.Errorf("points: %w", err)
				}
			}
		}
	}

	return skipped, nil
}

func (p *Plotter) drawGrid(dc *gg.Context, vp viewport, ticks []float64) error {
	dc.SetColor(p.gridColor)
	dc.SetLineWidth(p.px(gridLineWidth))
	for _, t := range ticks {
		x, y := vp.at(t, t)
		dc.DrawLine(x, 0, x, vp.size)
		dc.DrawLine(vp.ox, y, vp.ox+vp.size, y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}

	return nil
}

func (p *Plotter) drawTicks(dc *gg.Context, vp viewport, ticks []float64) error {
	n := p.px(tickLength)
	dc.SetColor(colorful.Color{})
	dc.SetLineWidth(p.px(spineLineWidth))
	for _, t := range ticks {
		x, y := vp.at(t, t)
		dc.DrawLine(x, vp.size, x, vp.size-n)
		dc.DrawLine(vp.ox, y, vp.ox+n, y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("ticks: %w", err)
	}

	return nil
}

// tickPositions spaces ticks by rate over the integer part of ±scale.
func tickPositions(scale, rate float64) []float64 {
	lim := math.Trunc(scale)
	n := int(2*lim/rate + 1)
	if n < 2 {
		return []float64{0}
	}

	return floats.Span(make([]float64, n), -lim, lim)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func toRGBA(c colorful.Color) gg.RGBA {
	return gg.RGB(c.R, c.G, c.B)
}
