// Package holomap builds sampling meshes over parametric domains and shows how
// complex-valued mappings distort them.
//
// What is in the box?
//
//	A small pipeline that goes from two normalized parameters to a picture:
//		• Domains: radial (disk, sector, annulus) and quadrant/half-plane
//		  parameterizations with open-boundary margins
//		• Sampling: linear or seeded random parameter grids
//		• Accumulation: Beta-mixture warping in parameter space and Gaussian
//		  attractors in the complex plane
//		• Meshes: a decorator chain with transformation, caching and projection
//		• Rendering: PNG panels with colormaps and axis styling
//
// Packages:
//
//	grid/       - complex and planar row-major point grids
//	domain/     - Radial, Quadrant and the Open margin wrapper
//	sampling/   - Linear and Random parameter samplers
//	accumulate/ - Beta mixture quantiles and Gaussian point attraction
//	mesh/       - Sampled, Reparameterized, Accumulated, Transformed, Cached, Projected
//	builder/    - BuildDomainMesh, the option-driven pipeline assembler
//	mapping/    - named complex functions for the command line
//	plot/       - raster rendering via github.com/gogpu/gg
//	cmd/holomap - the command-line tool
//
// Quick example:
//
//	m, _ := builder.BuildDomainMesh(domain.NewRadial(), 15, 15,
//		builder.WithTransformations(mesh.Pointwise(cmplx.Exp)))
//	pts := mesh.NewProjected(m).Points() // shape (15, 15, 2)
//
//	go install github.com/katalvlaran/holomap/cmd/holomap@latest
package holomap
