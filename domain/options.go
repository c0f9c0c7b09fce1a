// SPDX-License-Identifier: MIT
// Package: holomap/domain
//
// options.go - functional options for Radial and Quadrant.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Constructors (NewRadial, NewQuadrant) resolve options once, in order,
//     later options overriding earlier ones.
//   • Options a constructor does not read are ignored (e.g. WithReflectX on
//     a Radial domain).

package domain

import (
	"fmt"
	"math"
)

// Option customizes a domain constructor.
type Option func(*config)

// config aggregates every knob read by the domain constructors.
type config struct {
	radius       Range  // Radial
	angle        Range  // Radial
	radiusBounds Bounds // Radial, alpha axis
	angleBounds  Bounds // Radial, beta axis

	reflectX bool // Quadrant
	reflectY bool // Quadrant

	epsilon float64 // both
}

func newRadialConfig(opts ...Option) config {
	cfg := config{
		radius:       Range{Min: 0, Max: 1},
		angle:        Range{Min: 0, Max: 2 * math.Pi},
		radiusBounds: LowerClosed,
		angleBounds:  OpenBounds,
		epsilon:      DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func newQuadrantConfig(opts ...Option) config {
	cfg := config{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRadiusRange sets the radius interval targeted by alpha.
// Panics on non-finite ends.
func WithRadiusRange(minR, maxR float64) Option {
	mustFinite("WithRadiusRange", minR, maxR)
	return func(c *config) {
		c.radius = Range{Min: minR, Max: maxR}
	}
}

// WithAngleRange sets the angle interval (radians) targeted by beta.
// Panics on non-finite ends.
func WithAngleRange(minTheta, maxTheta float64) Option {
	mustFinite("WithAngleRange", minTheta, maxTheta)
	return func(c *config) {
		c.angle = Range{Min: minTheta, Max: maxTheta}
	}
}

// WithRadiusBounds selects which radius ends are sampled.
func WithRadiusBounds(b Bounds) Option {
	return func(c *config) {
		c.radiusBounds = b
	}
}

// WithAngleBounds selects which angle ends are sampled.
func WithAngleBounds(b Bounds) Option {
	return func(c *config) {
		c.angleBounds = b
	}
}

// WithReflectX widens the real axis of a Quadrant domain to (-1,1).
func WithReflectX() Option {
	return func(c *config) {
		c.reflectX = true
	}
}

// WithReflectY widens the imaginary axis of a Quadrant domain to (-1,1).
func WithReflectY() Option {
	return func(c *config) {
		c.reflectY = true
	}
}

// WithEpsilon sets the open-boundary margin. Panics unless 0 ≤ ε < 0.5.
func WithEpsilon(epsilon float64) Option {
	if !validEpsilon(epsilon) {
		panic(fmt.Sprintf("domain: WithEpsilon(%g): epsilon must be in [0, 0.5)", epsilon))
	}
	return func(c *config) {
		c.epsilon = epsilon
	}
}

func mustFinite(method string, vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("domain: %s: range ends must be finite", method))
		}
	}
}
