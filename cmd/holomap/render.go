package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/holomap/plot"
)

// newPlotter maps plot flags onto plot options, rejecting values the
// option constructors would panic on.
func newPlotter(o *options, log *slog.Logger) (*plot.Plotter, error) {
	positive := map[string]float64{
		"dpi":           o.dpi,
		"axis_scale":    o.axisScale,
		"axis_tickrate": o.tickRate,
	}
	nonNegative := map[string]float64{
		"markersize":     o.markerSize,
		"linewidth":      o.lineWidth,
		"axis_linewidth": o.axisLineWidth,
	}
	for name, v := range positive {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: -%s must be positive, got %g", errUsage, name, v)
		}
	}
	for name, v := range nonNegative {
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: -%s must be non-negative, got %g", errUsage, name, v)
		}
	}

	p, err := plot.New(
		plot.WithDPI(o.dpi),
		plot.WithMarkerSize(o.markerSize),
		plot.WithLineWidth(o.lineWidth),
		plot.WithPointsColor(o.pointsColor),
		plot.WithGridColor(o.gridColor),
		plot.WithPaintParameter(o.paintParam),
		plot.WithAxisLineWidth(o.axisLineWidth),
		plot.WithAxisLineColor(o.axisLineColor),
		plot.WithAxisScale(o.axisScale),
		plot.WithTickRate(o.tickRate),
		plot.WithTicks(o.showTicks),
		plot.WithGrid(o.showGrid),
		plot.WithSpines(o.showSpines),
		plot.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	return p, nil
}
