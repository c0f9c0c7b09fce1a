// SPDX-License-Identifier: MIT
// Package: accumulate
//
// errors.go - sentinel errors for density accumulation.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors wrap them with the offending value via %w.
//   - Per-point evaluation never fails: non-finite inputs propagate as data.

package accumulate

import (
	"errors"
	"fmt"
)

// ErrTargetOutOfRange indicates a parameter-space target outside [0,1].
var ErrTargetOutOfRange = errors.New("accumulate: target out of [0,1]")

// ErrBadConcentration indicates a concentration that is not finite and > 0.
var ErrBadConcentration = errors.New("accumulate: concentration must be finite and positive")

// ErrBadSharpness indicates a sharpness that is negative or non-finite.
var ErrBadSharpness = errors.New("accumulate: sharpness must be finite and non-negative")

// accumulateErrorf prefixes err with the constructor name and the offending value.
func accumulateErrorf(method string, value float64, err error) error {
	return fmt.Errorf("%s(%g): %w", method, value, err)
}
