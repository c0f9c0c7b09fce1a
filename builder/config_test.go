package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeshConfig_Defaults(t *testing.T) {
	cfg := newMeshConfig()
	assert.Equal(t, SamplingLinear, cfg.samplingMethod)
	assert.Equal(t, ParameterBeta, cfg.parameterMethod)
	assert.Equal(t, MeshGaussian, cfg.meshMethod)
	assert.Equal(t, DefaultConcentration, cfg.alphaConcentration)
	assert.Equal(t, DefaultConcentration, cfg.betaConcentration)
	assert.Equal(t, DefaultSharpness, cfg.sharpness)
	assert.NotNil(t, cfg.norm)
	assert.Nil(t, cfg.sampler)
	assert.False(t, cfg.cache)
	assert.False(t, cfg.wantsReparameterization())
}

func TestNewMeshConfig_LastWins(t *testing.T) {
	cfg := newMeshConfig(
		WithSharpness(1),
		WithSharpness(3),
		WithAlphaAccumulation(0.1),
		WithAlphaAccumulation(0.9, 0.2),
		WithCache(true),
		WithCache(false),
	)
	assert.Equal(t, 3.0, cfg.sharpness)
	assert.Equal(t, []float64{0.9, 0.2}, cfg.alphaTargets)
	assert.False(t, cfg.cache)
	assert.True(t, cfg.wantsReparameterization())
}

func TestOptions_CopyInputs(t *testing.T) {
	targets := []float64{0.25}
	points := []complex128{1i}
	opts := []Option{WithBetaAccumulation(targets...), WithMeshAccumulation(points...)}
	targets[0] = 0.75
	points[0] = 0

	cfg := newMeshConfig(opts...)
	assert.Equal(t, []float64{0.25}, cfg.betaTargets)
	assert.Equal(t, []complex128{1i}, cfg.meshTargets)
}

func TestLookupMethod(t *testing.T) {
	_, err := lookupMethod("sampling", "Linear", samplingMethods)
	assert.NoError(t, err)

	_, err = lookupMethod("sampling", "grid", samplingMethods)
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Contains(t, err.Error(), `"grid"`)
}
