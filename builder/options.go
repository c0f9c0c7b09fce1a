// SPDX-License-Identifier: MIT
// Package: holomap/builder
//
// options.go - functional options for BuildDomainMesh.
//
// Contract:
//   • Options are functional (type Option func(*meshConfig)).
//   • Slices are copied when the option is created; callers may reuse theirs.
//   • Nil functions and strategies panic here. Numeric values are user input
//     and are checked at build time (ErrOptionViolation).
//   • Determinism is explicit: the random sampler is seeded via WithSeed.

package builder

import (
	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/mesh"
	"github.com/katalvlaran/holomap/sampling"
)

// Option customizes pipeline assembly by mutating a meshConfig.
type Option func(*meshConfig)

// WithSamplingMethod selects the sampling strategy by name ("linear", "random").
func WithSamplingMethod(name string) Option {
	return func(c *meshConfig) {
		c.samplingMethod = name
	}
}

// WithSampler injects a sampling strategy, bypassing the method name.
// Panics on nil.
func WithSampler(s sampling.Sampler) Option {
	if s == nil {
		panic("builder: WithSampler(nil)")
	}
	return func(c *meshConfig) {
		c.sampler = s
	}
}

// WithSeed seeds the random sampling strategy. Zero selects a fixed default.
func WithSeed(seed int64) Option {
	return func(c *meshConfig) {
		c.seed = seed
	}
}

// WithAlphaAccumulation sets the alpha-axis target values in [0,1].
func WithAlphaAccumulation(targets ...float64) Option {
	ts := append([]float64(nil), targets...)
	return func(c *meshConfig) {
		c.alphaTargets = ts
	}
}

// WithBetaAccumulation sets the beta-axis target values in [0,1].
func WithBetaAccumulation(targets ...float64) Option {
	ts := append([]float64(nil), targets...)
	return func(c *meshConfig) {
		c.betaTargets = ts
	}
}

// WithParameterAccumulationMethod selects the parameter warp by name ("beta").
func WithParameterAccumulationMethod(name string) Option {
	return func(c *meshConfig) {
		c.parameterMethod = name
	}
}

// WithAlphaConcentration sets the alpha-axis concentration (> 0).
func WithAlphaConcentration(v float64) Option {
	return func(c *meshConfig) {
		c.alphaConcentration = v
	}
}

// WithBetaConcentration sets the beta-axis concentration (> 0).
func WithBetaConcentration(v float64) Option {
	return func(c *meshConfig) {
		c.betaConcentration = v
	}
}

// WithMeshAccumulation sets the target-space attractor locations.
func WithMeshAccumulation(points ...complex128) Option {
	ps := append([]complex128(nil), points...)
	return func(c *meshConfig) {
		c.meshTargets = ps
	}
}

// WithMeshAccumulationMethod selects the point displacement by name ("gaussian").
func WithMeshAccumulationMethod(name string) Option {
	return func(c *meshConfig) {
		c.meshMethod = name
	}
}

// WithSharpness sets the mesh accumulation decay coefficient (≥ 0).
func WithSharpness(s float64) Option {
	return func(c *meshConfig) {
		c.sharpness = s
	}
}

// WithNorm replaces the distance used by mesh accumulation. Panics on nil.
func WithNorm(n accumulate.Norm) Option {
	if n == nil {
		panic("builder: WithNorm(nil)")
	}
	return func(c *meshConfig) {
		c.norm = n
	}
}

// WithTransformations sets the ordered transformation list.
// Panics if any entry is nil.
func WithTransformations(ts ...mesh.Transformation) Option {
	for _, t := range ts {
		if t == nil {
			panic("builder: WithTransformations(nil)")
		}
	}
	list := append([]mesh.Transformation(nil), ts...)
	return func(c *meshConfig) {
		c.transforms = list
	}
}

// WithCache wraps the assembled pipeline in a memoizing stage.
func WithCache(on bool) Option {
	return func(c *meshConfig) {
		c.cache = on
	}
}
