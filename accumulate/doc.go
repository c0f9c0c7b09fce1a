// Package accumulate concentrates mesh samples around chosen locations.
//
// Two independent mechanisms are provided:
//
// Parameter space (Quantiler):
//
//	Each axis of the raw (alpha, beta) grid is pushed through the quantile
//	function of an equal-weight mixture of U(0,1) and one Beta law per target
//	value. The Beta law for target v has its mode at v; the concentration c
//	controls how peaked it is. Quantile functions are monotone and map 0→0,
//	1→1, so order and the [0,1] range are preserved while more samples land
//	near every target.
//
// Target space (PointAccumulator):
//
//	Already-mapped points are displaced toward attractor locations. For a point
//	m and attractors p₁…pₖ the displacement is
//
//	    (1/k) Σ (pᵢ - m)·exp(-(s·|pᵢ - m|)²)
//
//	with sharpness s. The mean (not the weight-normalized sum) is used, so the
//	pull toward one attractor weakens as unrelated attractors are added.
//
// Errors:
//   - ErrTargetOutOfRange  - a parameter target outside [0,1].
//   - ErrBadConcentration  - concentration not strictly positive and finite.
//   - ErrBadSharpness      - negative or non-finite sharpness.
//
// Numeric degeneracies (targets exactly at 0, 0.5 or 1; empty target lists;
// non-finite points) are data, not errors.
package accumulate
