package plot

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Parameter selects the mesh axis a colormap is spread along.
type Parameter string

const (
	// ParamAlpha spreads colours over rows.
	ParamAlpha Parameter = "alpha"
	// ParamBeta spreads colours over columns.
	ParamBeta Parameter = "beta"
)

// ParseParameter accepts "alpha" or "beta" in any case.
func ParseParameter(s string) (Parameter, error) {
	switch p := Parameter(strings.ToLower(strings.TrimSpace(s))); p {
	case ParamAlpha, ParamBeta:
		return p, nil
	}

	return "", fmt.Errorf("ParseParameter(%q): %w", s, ErrBadPaintParameter)
}

// Colormap is a piecewise-linear gradient in Lab space over evenly spaced stops.
type Colormap struct {
	name  string
	stops []colorful.Color
}

// Name returns the registered name.
func (m *Colormap) Name() string { return m.name }

// At returns the colour at t, clamped to [0,1].
func (m *Colormap) At(t float64) colorful.Color {
	if len(m.stops) == 1 || math.IsNaN(t) || t <= 0 {
		return m.stops[0]
	}
	if t >= 1 {
		return m.stops[len(m.stops)-1]
	}
	pos := t * float64(len(m.stops)-1)
	k := int(pos)

	return m.stops[k].BlendLab(m.stops[k+1], pos-float64(k)).Clamped()
}

var colormaps = map[string][]string{
	"viridis":  {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
	"plasma":   {"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"},
	"inferno":  {"#000004", "#420a68", "#932667", "#dd513a", "#fca50a", "#fcffa4"},
	"magma":    {"#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf"},
	"cividis":  {"#00224e", "#414d6b", "#7c7b78", "#bcaf6f", "#fee838"},
	"twilight": {"#e2d9e2", "#5e43a5", "#2f1436", "#b2573e", "#e2d9e2"},
	"coolwarm": {"#3b4cc0", "#dddddd", "#b40426"},
	"hsv":      {"#ff0000", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00ff", "#ff0000"},
	"gray":     {"#000000", "#ffffff"},
}

// ColormapNames lists the known colormaps in sorted order.
func ColormapNames() []string {
	return slices.Sorted(maps.Keys(colormaps))
}

// LookupColormap returns the named colormap.
func LookupColormap(name string) (*Colormap, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	hexes, ok := colormaps[key]
	if !ok {
		return nil, fmt.Errorf("LookupColormap(%q): %w (known: %s)",
			name, ErrBadColor, strings.Join(ColormapNames(), ", "))
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("LookupColormap(%q): %w", name, err)
		}
		stops[i] = c
	}

	return &Colormap{name: key, stops: stops}, nil
}

// Paint is either a solid colour or a colormap.
type Paint struct {
	solid colorful.Color
	cmap  *Colormap
}

// Solid returns a single-colour paint.
func Solid(c colorful.Color) Paint { return Paint{solid: c} }

// Gradient returns a colormap paint.
func Gradient(m *Colormap) Paint { return Paint{cmap: m} }

// ParsePaint reads "#rrggbb" (or "#rgb") as a solid colour, anything else as a colormap name.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Paint{}, fmt.Errorf("ParsePaint(%q): %w", s, ErrBadColor)
		}
		return Solid(c), nil
	}
	m, err := LookupColormap(s)
	if err != nil {
		return Paint{}, fmt.Errorf("ParsePaint: %w", err)
	}

	return Gradient(m), nil
}

// IsColormap reports whether the paint varies along the mesh.
func (p Paint) IsColormap() bool { return p.cmap != nil }

// Colors returns one colour per mesh node, row-major over rows×cols.
// A colormap is sampled at evenly spaced positions over [0,1] along param;
// a single-sample axis takes the colormap's start.
func (p Paint) Colors(rows, cols int, param Parameter) []colorful.Color {
	out := make([]colorful.Color, rows*cols)
	if p.cmap == nil {
		for i := range out {
			out[i] = p.solid
		}
		return out
	}

	n := cols
	if param == ParamAlpha {
		n = rows
	}
	ramp := make([]colorful.Color, n)
	for k, t := range unitSpan(n) {
		ramp[k] = p.cmap.At(t)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if param == ParamAlpha {
				out[i*cols+j] = ramp[i]
			} else {
				out[i*cols+j] = ramp[j]
			}
		}
	}

	return out
}

// unitSpan returns n evenly spaced values over [0,1]; [0] when n == 1.
func unitSpan(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{0}
	}

	return floats.Span(make([]float64, n), 0, 1)
}

// mix returns the channel-wise mean of two colours.
func mix(a, b colorful.Color) colorful.Color {
	return a.BlendRgb(b, 0.5)
}
