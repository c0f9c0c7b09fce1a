// SPDX-License-Identifier: MIT
// Package: holomap/builder
//
// api.go - the public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildDomainMesh(d, alphaRes, betaRes, opts...).
//   - Options resolve once into a meshConfig; nothing global except the logger.
//   - Every configuration error is reported before any stage is built.
//   - Determinism: same domain, resolutions and options ⇒ identical points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/domain"
	"github.com/katalvlaran/holomap/mesh"
)

// BuildDomainMesh assembles the mesh pipeline for d.
//
// Stages are inserted in the fixed order
// sampled → [reparameterized] → [accumulated] → [transformed] → [cached];
// see the package documentation for when each optional stage appears.
//
// Errors (all prefixed with "BuildDomainMesh: "):
//   - ErrBadResolution when alphaRes or betaRes < 1.
//   - ErrUnknownMethod for an unrecognized method name.
//   - ErrOptionViolation for a meaningless numeric option.
//   - mesh.ErrNilDomain when d is nil.
//
// Complexity: O(len(opts) + targets) to assemble; point evaluation is deferred
// to Points on the returned mesh.
func BuildDomainMesh(d domain.Domain, alphaRes, betaRes int, opts ...Option) (mesh.Mesh, error) {
	cfg := newMeshConfig(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, builderErrorf(MethodBuildDomainMesh, err)
	}
	log := Logger()

	newSampler, err := lookupMethod("sampling", cfg.samplingMethod, samplingMethods)
	if err != nil {
		return nil, builderErrorf(MethodBuildDomainMesh, err)
	}
	newQuantiler, err := lookupMethod("parameter accumulation", cfg.parameterMethod, parameterMethods)
	if err != nil {
		return nil, builderErrorf(MethodBuildDomainMesh, err)
	}
	newAccumulator, err := lookupMethod("mesh accumulation", cfg.meshMethod, meshMethods)
	if err != nil {
		return nil, builderErrorf(MethodBuildDomainMesh, err)
	}

	// An injected sampler wins over the method name, which is still validated.
	sampler := cfg.sampler
	if sampler == nil {
		sampler = newSampler(cfg)
	}
	sampled, err := mesh.NewSampled(d, sampler, alphaRes, betaRes)
	if err != nil {
		return nil, builderErrorf(MethodBuildDomainMesh, err)
	}
	log.Debug("mesh stage", "stage", "sampled", "sampler", fmt.Sprintf("%T", sampler),
		"alphaRes", alphaRes, "betaRes", betaRes)

	var pm mesh.ParameterMesh = sampled
	if cfg.wantsReparameterization() {
		alphaQ, err := newQuantiler(cfg.alphaTargets, cfg.alphaConcentration)
		if err != nil {
			return nil, builderErrorf(MethodBuildDomainMesh, err)
		}
		betaQ, err := newQuantiler(cfg.betaTargets, cfg.betaConcentration)
		if err != nil {
			return nil, builderErrorf(MethodBuildDomainMesh, err)
		}
		pm = mesh.NewReparameterized(pm, alphaQ, betaQ)
		log.Debug("mesh stage", "stage", "reparameterized",
			"alphaTargets", cfg.alphaTargets, "betaTargets", cfg.betaTargets)
	}

	var m mesh.Mesh = pm
	if len(cfg.meshTargets) > 0 {
		var acc accumulate.PointAccumulator
		if acc, err = newAccumulator(cfg.meshTargets, cfg.sharpness, cfg.norm); err != nil {
			return nil, builderErrorf(MethodBuildDomainMesh, err)
		}
		m = mesh.NewAccumulated(m, acc)
		log.Debug("mesh stage", "stage", "accumulated",
			"attractors", len(cfg.meshTargets), "sharpness", cfg.sharpness)
	}
	if len(cfg.transforms) > 0 {
		m = mesh.NewTransformed(m, cfg.transforms...)
		log.Debug("mesh stage", "stage", "transformed", "count", len(cfg.transforms))
	}
	if cfg.cache {
		m = mesh.NewCached(m)
		log.Debug("mesh stage", "stage", "cached")
	}

	return m, nil
}

// validateConfig checks every numeric knob, whether or not its stage is used.
func validateConfig(cfg meshConfig) error {
	checks := []error{
		validateTargets("alpha", cfg.alphaTargets),
		validateTargets("beta", cfg.betaTargets),
		validateConcentration("alpha", cfg.alphaConcentration),
		validateConcentration("beta", cfg.betaConcentration),
		validateSharpness(cfg.sharpness),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	return nil
}
