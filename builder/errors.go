// SPDX-License-Identifier: MIT
// Package: holomap/builder
//
// errors.go - sentinel errors for pipeline assembly.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (method, offending value, allowed set) is attached with %w at
//     the boundary, never baked into the sentinel text.
//   • Assembly never panics on user input; option constructors panic only
//     on nil functions or strategies.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/holomap/sampling"
)

// ErrUnknownMethod indicates a sampling, parameter-accumulation or
// mesh-accumulation method name outside the allowed set.
var ErrUnknownMethod = errors.New("builder: unknown method")

// ErrBadResolution indicates an alpha or beta resolution below 1.
// It is the sampling sentinel, so either name matches with errors.Is.
var ErrBadResolution = sampling.ErrBadResolution

// ErrOptionViolation indicates a numeric option outside its domain.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes err with the method name, preserving it for errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
