package mesh

import "errors"

var (
	// ErrNilDomain indicates a sampled mesh without a domain.
	ErrNilDomain = errors.New("mesh: domain is nil")

	// ErrNilSampler indicates a sampled mesh without a sampler.
	ErrNilSampler = errors.New("mesh: sampler is nil")
)

// nilBase is the panic message for a decorator built on nothing.
const nilBase = "mesh: nil upstream mesh"
