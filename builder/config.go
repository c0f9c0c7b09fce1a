// SPDX-License-Identifier: MIT
// Package: holomap/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • meshConfig is the single source of truth for all pipeline knobs.
//   • newMeshConfig applies options in order (later overrides earlier).
//   • Validation happens in BuildDomainMesh, so config resolution never fails.
//
// Defaults:
//   • sampling            = "linear", seed 0
//   • parameter method    = "beta", concentration 4 on both axes
//   • mesh method         = "gaussian", sharpness 2, Euclidean norm
//   • transformations     = none
//   • cache               = off

package builder

import (
	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/mesh"
	"github.com/katalvlaran/holomap/sampling"
)

// meshConfig aggregates every knob read by BuildDomainMesh.
type meshConfig struct {
	samplingMethod string
	sampler        sampling.Sampler // overrides samplingMethod when non-nil
	seed           int64

	alphaTargets       []float64
	betaTargets        []float64
	parameterMethod    string
	alphaConcentration float64
	betaConcentration  float64

	meshTargets []complex128
	meshMethod  string
	sharpness   float64
	norm        accumulate.Norm

	transforms []mesh.Transformation
	cache      bool
}

// newMeshConfig returns the defaults with opts applied in order.
func newMeshConfig(opts ...Option) meshConfig {
	cfg := meshConfig{
		samplingMethod:     SamplingLinear,
		parameterMethod:    ParameterBeta,
		alphaConcentration: DefaultConcentration,
		betaConcentration:  DefaultConcentration,
		meshMethod:         MeshGaussian,
		sharpness:          DefaultSharpness,
		norm:               accumulate.Euclidean,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// wantsReparameterization reports whether any axis has targets.
func (c meshConfig) wantsReparameterization() bool {
	return len(c.alphaTargets) > 0 || len(c.betaTargets) > 0
}
