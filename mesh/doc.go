// Package mesh assembles point grids from a domain through a chain of stages.
//
// Every stage implements Mesh and owns exactly one upstream stage; Points
// calls upstream and post-processes the result. Nothing is shared between
// chains and no stage mutates its input grid.
//
// Stages, in the order the builder inserts them:
//
//	Sampled          sampler → (alpha, beta) → domain.Points
//	Reparameterized  quantile warp of (alpha, beta) per axis, then domain.Points
//	Accumulated      point-space displacement (accumulate.PointAccumulator)
//	Transformed      ordered list of grid → grid functions
//	Cached           lazily computed once, returns a fresh copy per call
//
// The first two are ParameterMeshes: the domain is evaluated inside their
// Points, so parameters and domain remain visible to later reparameterization.
//
// Projected sits outside the chain. It converts the complex grid into a
// (rows, cols, 2) Planar array, and its Transform re-projects so a projected
// mesh stays projected.
//
// Transform on any stage wraps that stage once in a new Transformed whose
// list is exactly the supplied list; lists are never merged.
package mesh
