// SPDX-License-Identifier: MIT
// Package: grid
//
// compare.go - tolerance comparison kernels.
//
// Policy:
//   - Shapes must match exactly, otherwise ErrDimensionMismatch.
//   - An element passes when |a-b| ≤ atol + rtol*|b| (b is the reference).
//   - NaN matches NaN; a NaN against a number fails. Only identical infinities match.
//   - Negative tolerances are normalized to their absolute value.

package grid

import (
	"math"
	"math/cmplx"
)

// AllClose reports whether a and b agree element-wise within tolerance.
// Time: O(r*c). Space: O(1).
func AllClose(a, b *Grid, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, gridErrorf("AllClose", err)
	}
	if a == nil || b == nil {
		return false, gridErrorf("AllClose", ErrNilGrid)
	}
	if a.r != b.r || a.c != b.c {
		return false, gridErrorf("AllClose", ErrDimensionMismatch)
	}

	for idx, av := range a.data {
		bv := b.data[idx]
		if av == bv {
			continue
		}
		aNaN, bNaN := cmplx.IsNaN(av), cmplx.IsNaN(bv)
		if aNaN || bNaN {
			if aNaN && bNaN {
				continue
			}
			return false, nil
		}
		if cmplx.IsInf(av) || cmplx.IsInf(bv) {
			return false, nil
		}
		if cmplx.Abs(av-bv) > atol+rtol*cmplx.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// PlanarAllClose is AllClose for planar arrays, applied per component.
func PlanarAllClose(a, b *Planar, rtol, atol float64) (bool, error) {
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, gridErrorf("PlanarAllClose", err)
	}
	if a == nil || b == nil {
		return false, gridErrorf("PlanarAllClose", ErrNilGrid)
	}
	if a.r != b.r || a.c != b.c {
		return false, gridErrorf("PlanarAllClose", ErrDimensionMismatch)
	}

	for idx, av := range a.data {
		bv := b.data[idx]
		if av == bv {
			continue
		}
		aNaN, bNaN := math.IsNaN(av), math.IsNaN(bv)
		if aNaN || bNaN {
			if aNaN && bNaN {
				continue
			}
			return false, nil
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false, nil
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrBadTolerance
	}

	return math.Abs(rtol), math.Abs(atol), nil
}
