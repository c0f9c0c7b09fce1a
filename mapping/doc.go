// Package mapping provides named complex functions for command-line use.
//
// The mesh pipeline only accepts compiled functions; this package is the
// small, closed vocabulary the CLI offers in their place. A name resolves to
// a Func via Lookup:
//
//	z, 1/z, exp, log, sqrt, sin, cos, tan, sinh, cosh, tanh,
//	joukowski      z + 1/z
//	cayley         (z - i) / (z + i)
//	inverse-cayley i(1 + z) / (1 - z)
//	z^n            principal power for any real n (also written z**n)
//
// Names are case-insensitive and surrounding spaces are ignored. Poles and
// branch cuts produce non-finite values, which the pipeline carries as data.
package mapping
