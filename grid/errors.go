// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
//
// Every message is prefixed with "grid: ". Methods wrap these sentinels with
// their own name via gridErrorf; callers branch with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNonRectangular indicates that rows of differing lengths were supplied.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrDimensionMismatch indicates that two grids do not share a shape.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNilGrid indicates that a nil *Grid or *Planar was passed where a value is required.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrBadTolerance indicates a NaN or infinite tolerance passed to AllClose.
	ErrBadTolerance = errors.New("grid: tolerance must be finite")
)

// gridErrorf prefixes err with the method name, keeping err matchable by errors.Is.
func gridErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}

// indexErrorf reports an out-of-range access at (row, col).
func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}
