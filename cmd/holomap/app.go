package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/katalvlaran/holomap/builder"
	"github.com/katalvlaran/holomap/domain"
	"github.com/katalvlaran/holomap/grid"
	"github.com/katalvlaran/holomap/mapping"
	"github.com/katalvlaran/holomap/mesh"
	"github.com/katalvlaran/holomap/plot"
)

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks errors caused by the command line itself.
var errUsage = errors.New("usage")

func exitCode(err error) int {
	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		return exitUsage
	}
	return exitFailure
}

// Primitive domains.
const (
	primitiveDisk      = "disk"
	primitiveHalfDisk  = "half_disk"
	primitiveQuadrant  = "quadrant"
	primitiveHalfPlane = "half_plane"
)

type options struct {
	mappings          []string
	primitive         string
	primitiveMappings stringList
	epsilon           float64

	alphaRes, betaRes int
	sampling          string
	seed              int64
	alphaValues       floatList
	betaValues        floatList
	alphaConc         float64
	betaConc          float64
	meshPoints        complexList
	sharpness         float64

	markerSize    float64
	lineWidth     float64
	pointsColor   string
	gridColor     string
	paintParam    string
	onlyFinal     bool
	dpi           float64
	axisLineWidth float64
	axisLineColor string
	axisScale     float64
	tickRate      float64
	showTicks     bool
	showGrid      bool
	showSpines    bool

	output       string
	verbose      bool
	hideWarnings bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("holomap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: holomap [flags] mapping [mapping...]")
		fmt.Fprintf(stderr, "mappings: %s, z^n\n", strings.Join(mapping.Names(), ", "))
		fs.PrintDefaults()
	}

	fs.StringVar(&o.primitive, "primitive_domain", primitiveDisk, "primitive domain: disk, half_disk, quadrant, half_plane")
	fs.Var(&o.primitiveMappings, "primitive_domain_mappings", "mappings applied to the primitive domain to obtain the starting domain (comma-separated or repeated)")
	fs.Float64Var(&o.epsilon, "epsilon", domain.DefaultEpsilon, "margin left at excluded domain boundaries")

	fs.IntVar(&o.alphaRes, "alpha_resolution", 15, "samples along alpha")
	fs.IntVar(&o.betaRes, "beta_resolution", 15, "samples along beta")
	fs.StringVar(&o.sampling, "sampling_method", builder.SamplingLinear, "sampling method: linear, random")
	fs.Int64Var(&o.seed, "seed", 0, "seed for random sampling (0 picks one from the clock)")
	fs.Var(&o.alphaValues, "alpha_accumulate_values", "alpha values in [0,1] to concentrate samples at")
	fs.Var(&o.betaValues, "beta_accumulate_values", "beta values in [0,1] to concentrate samples at")
	fs.Float64Var(&o.alphaConc, "alpha_accumulate_concentration", builder.DefaultConcentration, "alpha concentration; higher is tighter")
	fs.Float64Var(&o.betaConc, "beta_accumulate_concentration", builder.DefaultConcentration, "beta concentration; higher is tighter")
	fs.Var(&o.meshPoints, "mesh_accumulate_points", "complex points that attract mesh points, e.g. 1+1i")
	fs.Float64Var(&o.sharpness, "mesh_accumulate_sharpness", builder.DefaultSharpness, "sharpness of gaussian accumulation")

	fs.Float64Var(&o.markerSize, "markersize", 1, "marker area of mesh points in pt²")
	fs.Float64Var(&o.lineWidth, "linewidth", 0.1, "width of grid lines in pt")
	fs.StringVar(&o.pointsColor, "points_color", "#0000ff", "hex colour or colormap name for points")
	fs.StringVar(&o.gridColor, "grid_color", "#0000ff", "hex colour or colormap name for grid lines")
	fs.StringVar(&o.paintParam, "paint_parameter", string(plot.ParamBeta), "parameter a colormap follows: alpha, beta")
	fs.BoolVar(&o.onlyFinal, "only_transformed_mesh", false, "draw only the transformed mesh")
	fs.Float64Var(&o.dpi, "dpi", 192, "raster resolution")
	fs.Float64Var(&o.axisLineWidth, "axis_linewidth", 0.5, "width of the x and y axis lines; 0 hides them")
	fs.StringVar(&o.axisLineColor, "axis_line_color", "#000000", "axis line colour")
	fs.Float64Var(&o.axisScale, "axis_scale", 2, "half-width of the visible square")
	fs.Float64Var(&o.tickRate, "axis_tickrate", 1, "interval between ticks and grid lines")
	fs.BoolVar(&o.showTicks, "show_ticks", false, "draw ticks")
	fs.BoolVar(&o.showGrid, "show_grid", false, "draw a grid at tick positions")
	fs.BoolVar(&o.showSpines, "show_spines", false, "draw a frame around each panel")

	fs.StringVar(&o.output, "o", "holomap.png", "output PNG path")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.BoolVar(&o.hideWarnings, "hide_warnings", false, "log errors only")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	o.mappings = fs.Args()
	if len(o.mappings) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("%w: at least one mapping is required", errUsage)
	}

	return o, nil
}

func newLogger(o *options, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case o.verbose:
		level = slog.LevelDebug
	case o.hideWarnings:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func primitiveDomain(name string, epsilon float64) (domain.Domain, error) {
	if math.IsNaN(epsilon) || epsilon < 0 || epsilon >= 0.5 {
		return nil, fmt.Errorf("%w: epsilon %g outside [0, 0.5)", errUsage, epsilon)
	}
	eps := domain.WithEpsilon(epsilon)

	switch strings.ToLower(name) {
	case primitiveDisk:
		return domain.NewRadial(eps), nil
	case primitiveHalfDisk:
		return domain.NewRadial(eps,
			domain.WithAngleRange(0, math.Pi),
			domain.WithAngleBounds(domain.OpenBounds),
			domain.WithRadiusBounds(domain.OpenBounds),
		), nil
	case primitiveQuadrant:
		return domain.NewQuadrant(1, eps)
	case primitiveHalfPlane:
		return domain.NewQuadrant(1, eps, domain.WithReflectX())
	}

	return nil, fmt.Errorf("%w: unknown primitive domain %q (allowed: %s, %s, %s, %s)", errUsage, name,
		primitiveDisk, primitiveHalfDisk, primitiveQuadrant, primitiveHalfPlane)
}

func transformations(names []string) ([]mesh.Transformation, error) {
	fs, err := mapping.LookupAll(names)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	ts := make([]mesh.Transformation, len(fs))
	for i, f := range fs {
		ts[i] = mesh.Pointwise(f)
	}
	return ts, nil
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(o, stderr)
	builder.SetLogger(log)
	defer builder.SetLogger(nil)

	d, err := primitiveDomain(o.primitive, o.epsilon)
	if err != nil {
		return err
	}
	initial, err := transformations(o.primitiveMappings)
	if err != nil {
		return err
	}
	final, err := transformations(o.mappings)
	if err != nil {
		return err
	}

	seed := o.seed
	if seed == 0 && strings.EqualFold(o.sampling, builder.SamplingRandom) {
		seed = time.Now().UnixNano()
		log.Info("random sampling", "seed", seed)
	}

	opts := []builder.Option{
		builder.WithSamplingMethod(o.sampling),
		builder.WithSeed(seed),
		builder.WithAlphaAccumulation(o.alphaValues...),
		builder.WithBetaAccumulation(o.betaValues...),
		builder.WithAlphaConcentration(o.alphaConc),
		builder.WithBetaConcentration(o.betaConc),
		builder.WithMeshAccumulation(o.meshPoints...),
		builder.WithSharpness(o.sharpness),
		builder.WithCache(true),
	}
	if len(initial) > 0 {
		opts = append(opts, builder.WithTransformations(initial...))
	}
	m, err := builder.BuildDomainMesh(d, o.alphaRes, o.betaRes, opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	start := mesh.NewProjected(m)
	end := start.Transform(final...)

	p, err := newPlotter(o, log)
	if err != nil {
		return err
	}
	panels := []*grid.Planar{end.Points()}
	if !o.onlyFinal {
		panels = append([]*grid.Planar{start.Points()}, panels...)
	}
	if err := p.SavePNG(o.output, panels...); err != nil {
		return err
	}
	log.Info("wrote mesh plot", "path", o.output, "panels", len(panels))

	return nil
}
