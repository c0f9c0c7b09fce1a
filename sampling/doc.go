// Package sampling produces the raw parameter grids (alpha, beta) that a mesh
// feeds to its domain.
//
// A Sampler returns two ordered slices of values in [0,1], one per axis, with
// lengths equal to the requested resolutions:
//
//   - Linear: evenly spaced, both endpoints included. Resolution 1 gives [0].
//   - Random: independent uniform draws, sorted ascending so that the
//     renderer's grid-line connectivity stays meaningful.
//
// Determinism:
//
//	Random owns a seed, not a generator. Every Sample call rebuilds its streams
//	from that seed (one derived stream per axis), so a mesh asks for its points
//	as often as it likes and always sees the same grid. Seed 0 selects a fixed
//	default seed.
package sampling
