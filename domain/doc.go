// Package domain maps normalized parameters (alpha, beta) ∈ [0,1]² to points
// of the complex plane.
//
// What:
//
//   - Domain is the single contract: Points(alpha, beta) returns a
//     len(alpha)×len(beta) grid.Grid (outer product of the two axes).
//   - Radial maps alpha to a radius and beta to an angle: r·exp(iθ).
//   - Quadrant maps each axis into (-1,1) (one half per quadrant, or the whole
//     interval when reflected) and sends it through t ↦ 1/(1-t) - 1/(1+t),
//     covering a quadrant, half plane or the full plane.
//   - Open wraps any Domain and shrinks [0,1] by a margin ε on the ends that
//     are excluded, emulating an open boundary.
//
// Why:
//
//   - The bijection of Quadrant is singular at t = ±1 and the angle axis of
//     Radial folds 0 onto 2π. Both are handled by Open, so the mappings
//     themselves stay branch-free.
//
// Defaults:
//
//   - Radial: radius (0,1) with the lower end included, angle (0,2π) open
//     at both ends, ε = DefaultEpsilon.
//   - Quadrant: quadrant 1, no reflection, both axes open at both ends.
//
// Errors:
//
//   - ErrBadQuadrant: quadrant index outside 1..4.
//   - ErrBadEpsilon:  margin outside [0, 0.5).
//
// Option constructors (WithX) panic on meaningless values; constructors and
// Points never panic. A caller who bypasses the margin gets ±Inf from the
// Quadrant bijection; those values propagate as data.
package domain
