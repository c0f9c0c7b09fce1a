package domain

import "errors"

var (
	// ErrBadQuadrant indicates a quadrant index outside 1..4.
	ErrBadQuadrant = errors.New("domain: quadrant must be in 1..4")

	// ErrBadEpsilon indicates an open-domain margin outside [0, 0.5).
	ErrBadEpsilon = errors.New("domain: epsilon must be in [0, 0.5)")
)
