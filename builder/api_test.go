package builder_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/builder"
	"github.com/katalvlaran/holomap/domain"
	"github.com/katalvlaran/holomap/grid"
	"github.com/katalvlaran/holomap/mesh"
	"github.com/katalvlaran/holomap/sampling"
)

// plane maps (alpha, beta) to alpha + i·beta.
var plane = domain.Func(func(alpha, beta []float64) *grid.Grid {
	return grid.Outer(alpha, beta, func(x, y float64) complex128 { return complex(x, y) })
})

func build(t *testing.T, alphaRes, betaRes int, opts ...builder.Option) mesh.Mesh {
	t.Helper()
	m, err := builder.BuildDomainMesh(plane, alphaRes, betaRes, opts...)
	require.NoError(t, err)
	return m
}

func requireClose(t *testing.T, want, got *grid.Grid) {
	t.Helper()
	ok, err := grid.AllClose(got, want, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBuildDomainMesh_DefaultsIsSampledOnly(t *testing.T) {
	m := build(t, 3, 4)
	s, ok := m.(*mesh.Sampled)
	require.True(t, ok, "got %T", m)

	alpha, beta := s.Parameters()
	assert.Equal(t, sampling.LinearAxis(3), alpha)
	assert.Equal(t, sampling.LinearAxis(4), beta)
}

func TestBuildDomainMesh_StageOrder(t *testing.T) {
	double := mesh.Pointwise(func(z complex128) complex128 { return 2 * z })
	opts := []builder.Option{
		builder.WithAlphaAccumulation(0.3),
		builder.WithMeshAccumulation(0.5 + 0.5i),
		builder.WithTransformations(double),
		builder.WithCache(true),
	}
	m := build(t, 8, 6, opts...)
	_, ok := m.(*mesh.Cached)
	require.True(t, ok, "cache is the outermost stage, got %T", m)

	// Rebuild the same chain by hand.
	sampled, err := mesh.NewSampled(plane, sampling.Linear{}, 8, 6)
	require.NoError(t, err)
	mix, err := accumulate.NewBetaMixture([]float64{0.3}, builder.DefaultConcentration)
	require.NoError(t, err)
	gauss, err := accumulate.NewGaussian([]complex128{0.5 + 0.5i}, builder.DefaultSharpness)
	require.NoError(t, err)
	var want mesh.Mesh = mesh.NewReparameterized(sampled, mix, accumulate.Identity{})
	want = mesh.NewAccumulated(want, gauss)
	want = mesh.NewTransformed(want, double)

	requireClose(t, want.Points(), m.Points())
}

func TestBuildDomainMesh_EmptyAccumulationIsNoOp(t *testing.T) {
	plain := build(t, 5, 5)
	noop := build(t, 5, 5,
		builder.WithAlphaAccumulation(),
		builder.WithBetaAccumulation(),
		builder.WithMeshAccumulation(),
	)
	requireClose(t, plain.Points(), noop.Points())
	_, ok := noop.(*mesh.Sampled)
	assert.True(t, ok)
}

func TestBuildDomainMesh_AlphaAccumulationConcentrates(t *testing.T) {
	plain := build(t, 100, 1)
	warped := build(t, 100, 1,
		builder.WithAlphaAccumulation(0.8),
		builder.WithAlphaConcentration(4),
	)

	inBand := func(g *grid.Grid) int {
		n := 0
		for _, z := range g.Values() {
			if real(z) >= 0.7 && real(z) <= 0.9 {
				n++
			}
		}
		return n
	}
	assert.Greater(t, inBand(warped.Points()), inBand(plain.Points()))
}

func TestBuildDomainMesh_MethodNamesCaseInsensitive(t *testing.T) {
	for _, name := range []string{"linear", "LINEAR", " Random "} {
		_, err := builder.BuildDomainMesh(plane, 2, 2,
			builder.WithSamplingMethod(name),
			builder.WithParameterAccumulationMethod("Beta"),
			builder.WithMeshAccumulationMethod("GAUSSIAN"),
		)
		assert.NoError(t, err, name)
	}
}

func TestBuildDomainMesh_UnknownMethod(t *testing.T) {
	cases := []struct {
		name    string
		opt     builder.Option
		allowed string
	}{
		{"sampling", builder.WithSamplingMethod("sobol"), "linear, random"},
		{"parameter", builder.WithParameterAccumulationMethod("kumaraswamy"), "beta"},
		{"mesh", builder.WithMeshAccumulationMethod("cauchy"), "gaussian"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildDomainMesh(plane, 2, 2, tc.opt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, builder.ErrUnknownMethod))
			assert.Contains(t, err.Error(), tc.allowed)
			assert.Contains(t, err.Error(), builder.MethodBuildDomainMesh)
		})
	}
}

func TestBuildDomainMesh_BadResolution(t *testing.T) {
	_, err := builder.BuildDomainMesh(plane, 0, 3)
	assert.True(t, errors.Is(err, builder.ErrBadResolution))
	assert.True(t, errors.Is(err, sampling.ErrBadResolution))
}

func TestBuildDomainMesh_OptionViolations(t *testing.T) {
	cases := []struct {
		name  string
		opt   builder.Option
		inner error
	}{
		{"alpha concentration", builder.WithAlphaConcentration(0), accumulate.ErrBadConcentration},
		{"beta concentration", builder.WithBetaConcentration(-2), accumulate.ErrBadConcentration},
		{"sharpness", builder.WithSharpness(-1), accumulate.ErrBadSharpness},
		{"alpha target", builder.WithAlphaAccumulation(1.5), accumulate.ErrTargetOutOfRange},
		{"beta target", builder.WithBetaAccumulation(-0.1), accumulate.ErrTargetOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildDomainMesh(plane, 2, 2, tc.opt)
			assert.True(t, errors.Is(err, builder.ErrOptionViolation), "got %v", err)
			assert.True(t, errors.Is(err, tc.inner), "got %v", err)
		})
	}
}

func TestBuildDomainMesh_NilDomain(t *testing.T) {
	_, err := builder.BuildDomainMesh(nil, 2, 2)
	assert.True(t, errors.Is(err, mesh.ErrNilDomain))
}

func TestBuildDomainMesh_BoundaryTargets(t *testing.T) {
	m := build(t, 20, 20,
		builder.WithAlphaAccumulation(0, 0.5, 1),
		builder.WithBetaAccumulation(1),
	)
	for _, z := range m.Points().Values() {
		assert.GreaterOrEqual(t, real(z), 0.0)
		assert.LessOrEqual(t, real(z), 1.0)
		assert.GreaterOrEqual(t, imag(z), 0.0)
		assert.LessOrEqual(t, imag(z), 1.0)
	}
}

func TestBuildDomainMesh_RandomSeeded(t *testing.T) {
	a := build(t, 6, 6, builder.WithSamplingMethod("random"), builder.WithSeed(11))
	b := build(t, 6, 6, builder.WithSamplingMethod("random"), builder.WithSeed(11))
	c := build(t, 6, 6, builder.WithSamplingMethod("random"), builder.WithSeed(12))

	requireClose(t, a.Points(), b.Points())
	requireClose(t, a.Points(), a.Points())
	assert.NotEqual(t, a.Points().Values(), c.Points().Values())
}

func TestBuildDomainMesh_InjectedSampler(t *testing.T) {
	m := build(t, 4, 4, builder.WithSampler(sampling.NewRandom(3)))
	want, err := mesh.NewSampled(plane, sampling.NewRandom(3), 4, 4)
	require.NoError(t, err)
	requireClose(t, want.Points(), m.Points())
}

func TestBuildDomainMesh_WithNorm(t *testing.T) {
	zero := func(complex128) float64 { return 0 }
	m := build(t, 3, 3, builder.WithMeshAccumulation(1i), builder.WithNorm(zero))
	for _, z := range m.Points().Values() {
		assert.InDelta(t, 0, real(z), 1e-12)
		assert.InDelta(t, 1, imag(z), 1e-12)
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithSampler(nil) })
	assert.Panics(t, func() { builder.WithNorm(nil) })
	assert.Panics(t, func() { builder.WithTransformations(nil) })
}

func TestLogger(t *testing.T) {
	defer builder.SetLogger(nil)

	var buf bytes.Buffer
	builder.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	build(t, 2, 2, builder.WithBetaAccumulation(0.5), builder.WithCache(true))

	out := buf.String()
	assert.Contains(t, out, "stage=sampled")
	assert.Contains(t, out, "stage=reparameterized")
	assert.Contains(t, out, "stage=cached")
	assert.NotContains(t, out, "stage=accumulated")

	builder.SetLogger(nil)
	assert.NotNil(t, builder.Logger())
	assert.False(t, builder.Logger().Enabled(t.Context(), slog.LevelError))
}
