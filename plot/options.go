// SPDX-License-Identifier: MIT
// Package: holomap/plot
//
// options.go - functional options for the Plotter.
//
// Contract:
//   • Numeric options panic on meaningless values (non-positive DPI or
//     scale, negative widths); they are fixed by the caller, not by data.
//   • Colour and parameter strings are user input: New parses them and
//     returns ErrBadColor or ErrBadPaintParameter.
//   • Defaults mirror a 4-inch panel at 192 DPI with thin blue lines.

package plot

import (
	"fmt"
	"log/slog"
	"math"
)

// Option customizes a Plotter.
type Option func(*config)

type config struct {
	dpi         float64
	panelInches float64
	markerSize  float64 // scatter area in pt²
	lineWidth   float64 // pt

	pointsColor    string
	gridColor      string
	paintParameter string
	background     string

	axisLineWidth float64 // pt; 0 hides the axis lines
	axisLineColor string
	axisScale     float64
	tickRate      float64
	showTicks     bool
	showGrid      bool
	showSpines    bool

	logger *slog.Logger
}

const (
	defaultDPI           = 192.0
	defaultPanelInches   = 4.0
	defaultMarkerSize    = 1.0
	defaultLineWidth     = 0.1
	defaultMeshColor     = "#0000ff"
	defaultBackground    = "#ffffff"
	defaultAxisLineWidth = 0.5
	defaultAxisLineColor = "#000000"
	defaultAxisScale     = 2.0
	defaultTickRate      = 1.0
)

func newConfig(opts ...Option) config {
	cfg := config{
		dpi:            defaultDPI,
		panelInches:    defaultPanelInches,
		markerSize:     defaultMarkerSize,
		lineWidth:      defaultLineWidth,
		pointsColor:    defaultMeshColor,
		gridColor:      defaultMeshColor,
		paintParameter: string(ParamBeta),
		background:     defaultBackground,
		axisLineWidth:  defaultAxisLineWidth,
		axisLineColor:  defaultAxisLineColor,
		axisScale:      defaultAxisScale,
		tickRate:       defaultTickRate,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func mustPositive(method string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(fmt.Sprintf("plot: %s(%g): value must be finite and positive", method, v))
	}
}

func mustNonNegative(method string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(fmt.Sprintf("plot: %s(%g): value must be finite and non-negative", method, v))
	}
}

// WithDPI sets the raster resolution in dots per inch.
func WithDPI(dpi float64) Option {
	mustPositive("WithDPI", dpi)
	return func(c *config) { c.dpi = dpi }
}

// WithPanelInches sets the side of each square panel in inches.
func WithPanelInches(in float64) Option {
	mustPositive("WithPanelInches", in)
	return func(c *config) { c.panelInches = in }
}

// WithMarkerSize sets the point marker area in pt². Zero hides points.
func WithMarkerSize(s float64) Option {
	mustNonNegative("WithMarkerSize", s)
	return func(c *config) { c.markerSize = s }
}

// WithLineWidth sets the mesh line width in points. Zero hides lines.
func WithLineWidth(w float64) Option {
	mustNonNegative("WithLineWidth", w)
	return func(c *config) { c.lineWidth = w }
}

// WithPointsColor sets the point paint: "#rrggbb" or a colormap name.
func WithPointsColor(s string) Option {
	return func(c *config) { c.pointsColor = s }
}

// WithGridColor sets the mesh line paint: "#rrggbb" or a colormap name.
func WithGridColor(s string) Option {
	return func(c *config) { c.gridColor = s }
}

// WithPaintParameter selects the axis colormaps are spread along ("alpha" or "beta").
func WithPaintParameter(p string) Option {
	return func(c *config) { c.paintParameter = p }
}

// WithBackground sets the canvas colour as "#rrggbb".
func WithBackground(s string) Option {
	return func(c *config) { c.background = s }
}

// WithAxisLineWidth sets the width of the x and y axis lines in points. Zero hides them.
func WithAxisLineWidth(w float64) Option {
	mustNonNegative("WithAxisLineWidth", w)
	return func(c *config) { c.axisLineWidth = w }
}

// WithAxisLineColor sets the axis line colour as "#rrggbb".
func WithAxisLineColor(s string) Option {
	return func(c *config) { c.axisLineColor = s }
}

// WithAxisScale shows the square [-scale, scale]² in every panel.
func WithAxisScale(scale float64) Option {
	mustPositive("WithAxisScale", scale)
	return func(c *config) { c.axisScale = scale }
}

// WithTickRate sets the interval between ticks and grid lines.
func WithTickRate(r float64) Option {
	mustPositive("WithTickRate", r)
	return func(c *config) { c.tickRate = r }
}

// WithTicks toggles tick marks on the bottom and left edges.
func WithTicks(on bool) Option {
	return func(c *config) { c.showTicks = on }
}

// WithGrid toggles background grid lines at tick positions.
func WithGrid(on bool) Option {
	return func(c *config) { c.showGrid = on }
}

// WithSpines toggles the frame around each panel.
func WithSpines(on bool) Option {
	return func(c *config) { c.showSpines = on }
}

// WithLogger routes diagnostics (skipped non-finite segments) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("plot: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
