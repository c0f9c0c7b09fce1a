// Package builder assembles a mesh pipeline for a domain from declarative options.
//
// BuildDomainMesh is the single entry point. It resolves functional options
// into a private meshConfig once, validates every method name and numeric
// knob, and then inserts stages in a fixed order:
//
//	sampled → [reparameterized] → [accumulated] → [transformed] → [cached]
//
// A bracketed stage is inserted only when its configuration asks for it:
// target values on either axis, attractor points, a non-empty transformation
// list, or WithCache. The domain is evaluated inside the sampled and
// reparameterized stages, not as a separate stage.
//
// Methods:
//
//	sampling:                linear (default), random
//	parameter accumulation:  beta (default)
//	mesh accumulation:       gaussian (default)
//
// Method names are matched case-insensitively. An unknown name fails with
// ErrUnknownMethod; the message lists the offending value and the allowed set.
//
// Errors:
//   - ErrUnknownMethod    - method name not in the allowed set.
//   - ErrBadResolution    - a resolution below 1 (same value as sampling.ErrBadResolution).
//   - ErrOptionViolation  - meaningless numeric option (concentration ≤ 0,
//     negative sharpness, accumulation target outside [0,1]); wraps the
//     accumulate sentinel as well.
//
// Options that receive a nil function or strategy panic at construction,
// since that is a programmer error rather than user input.
//
// Determinism:
//
//	The random sampler owns its seed (WithSeed, default 0 ⇒ fixed default),
//	so the same options always yield the same points.
//
// Logging:
//
//	BuildDomainMesh reports each inserted stage at debug level through the
//	package logger. It is silent until SetLogger is called.
package builder
