package builder

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/holomap/accumulate"
	"github.com/katalvlaran/holomap/sampling"
)

// samplerFactory builds a sampling strategy from the resolved config.
type samplerFactory func(cfg meshConfig) sampling.Sampler

// quantilerFactory builds one axis warp from its targets and concentration.
type quantilerFactory func(targets []float64, concentration float64) (accumulate.Quantiler, error)

// accumulatorFactory builds a point accumulator from attractors.
type accumulatorFactory func(points []complex128, sharpness float64, norm accumulate.Norm) (accumulate.PointAccumulator, error)

var samplingMethods = map[string]samplerFactory{
	SamplingLinear: func(meshConfig) sampling.Sampler { return sampling.Linear{} },
	SamplingRandom: func(cfg meshConfig) sampling.Sampler { return sampling.NewRandom(cfg.seed) },
}

var parameterMethods = map[string]quantilerFactory{
	ParameterBeta: func(targets []float64, concentration float64) (accumulate.Quantiler, error) {
		if len(targets) == 0 {
			return accumulate.Identity{}, nil
		}
		return accumulate.NewBetaMixture(targets, concentration)
	},
}

var meshMethods = map[string]accumulatorFactory{
	MeshGaussian: func(points []complex128, sharpness float64, norm accumulate.Norm) (accumulate.PointAccumulator, error) {
		return accumulate.NewGaussian(points, sharpness, accumulate.WithNorm(norm))
	},
}

// lookupMethod resolves name case-insensitively in registry.
// On failure the error names the kind, the offending value and the allowed set.
func lookupMethod[F any](kind, name string, registry map[string]F) (F, error) {
	if f, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	var zero F
	allowed := slices.Sorted(maps.Keys(registry))

	return zero, fmt.Errorf("%s method %q (allowed: %s): %w",
		kind, name, strings.Join(allowed, ", "), ErrUnknownMethod)
}

// validateConcentration enforces a finite, strictly positive concentration.
func validateConcentration(axis string, v float64) error {
	if _, _, err := accumulate.BetaShape(0.5, v); err != nil {
		return fmt.Errorf("%s concentration: %w: %w", axis, ErrOptionViolation, err)
	}

	return nil
}

// validateTargets enforces every parameter target in [0,1].
func validateTargets(axis string, targets []float64) error {
	for _, v := range targets {
		if _, _, err := accumulate.BetaShape(v, DefaultConcentration); err != nil {
			return fmt.Errorf("%s accumulation: %w: %w", axis, ErrOptionViolation, err)
		}
	}

	return nil
}

// validateSharpness enforces a finite, non-negative sharpness.
func validateSharpness(s float64) error {
	if _, err := accumulate.NewGaussian(nil, s); err != nil {
		return fmt.Errorf("sharpness: %w: %w", ErrOptionViolation, err)
	}

	return nil
}
