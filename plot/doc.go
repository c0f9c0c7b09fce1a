// Package plot renders projected meshes to raster images.
//
// A Plotter draws one square panel per grid.Planar, side by side, onto a
// github.com/gogpu/gg context and writes it as PNG. Within a panel:
//
//   - alpha lines join (i, j) to (i+1, j), beta lines join (i, j) to (i, j+1);
//   - each segment takes the mean of its two endpoint colours;
//   - points are drawn as filled discs above the lines;
//   - segments or points with a non-finite coordinate are skipped.
//
// Colours are Paints: a solid hex colour, or a named colormap spread evenly
// along the paint parameter (alpha: rows, beta: columns).
//
// The viewport is the square [-scale, scale]² with optional axis lines,
// ticks, grid and spines. Sizes follow typographic points: a panel is four
// inches at the configured DPI and widths are given in points.
//
// Tick labels are not drawn.
package plot
