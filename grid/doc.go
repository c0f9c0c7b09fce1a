// Package grid holds the point arrays that flow through a mesh pipeline.
//
// Grid is a rows×cols array of complex128 values stored row-major in a flat
// slice: row i is the i-th alpha sample, column j the j-th beta sample.
// Planar is the projected form of a Grid, a rows×cols×2 array of float64
// (x, y) pairs handed to renderers.
//
// Both types are plain values with no shared state. Every operation that
// produces a grid allocates a new one; Clone is a deep copy. Indexed access
// is bounds-checked and reports ErrOutOfRange instead of panicking.
//
// Non-finite values (NaN, ±Inf) are legal entries. A mapping evaluated at a
// pole produces them and they propagate through later stages as data.
//
// Complexity:
//
//   - New, FromFunc, Clone, Apply, Project: O(rows·cols) time and memory.
//   - At, Set: O(1).
//   - AllClose: O(rows·cols) time, O(1) memory.
package grid
