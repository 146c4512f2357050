// SPDX-License-Identifier: MIT
// Package: perplexing/wire
//
// options.go — functional options and the resolved build configuration.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless values; Build never panics.
//   - Options resolve into an immutable buildConfig value; last option wins.
//   - Highlight and Collider radius is always twice the nominal wire radius.

package wire

import "fmt"

// Option customises Build.
type Option func(*buildConfig)

// buildConfig aggregates every knob used by Build. Passed by value.
type buildConfig struct {
	wireRadius  float64
	bezierSteps int
	ringRes     int
	colliderRes int
}

// newBuildConfig resolves defaults, then applies opts in order.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		wireRadius:  DefaultWireRadius,
		bezierSteps: DefaultBezierSteps,
		ringRes:     DefaultRingResolution,
		colliderRes: DefaultColliderResolution,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// radius returns the tube radius for f.
func (c buildConfig) radius(f Fidelity) float64 {
	if f == Wire {
		return c.wireRadius
	}
	return 2 * c.wireRadius
}

// revSteps returns the ring resolution for f.
func (c buildConfig) revSteps(f Fidelity) int {
	if f == Collider {
		return c.colliderRes
	}
	return c.ringRes
}

// WithWireRadius sets the nominal radius (> 0). Highlight/Collider use 2r.
func WithWireRadius(r float64) Option {
	if !(r > 0) {
		panic(fmt.Sprintf("wire: WithWireRadius(%g)", r))
	}
	return func(c *buildConfig) {
		c.wireRadius = r
	}
}

// WithBezierSteps sets the samples per Bézier arc. Cut and Copper pieces need
// at least reserveForCopper+2 samples per stub, so n must be ≥ 8.
func WithBezierSteps(n int) Option {
	if n < reserveForCopper+discardCopper {
		panic(fmt.Sprintf("wire: WithBezierSteps(%d)", n))
	}
	return func(c *buildConfig) {
		c.bezierSteps = n
	}
}

// WithRingResolution sets the ring vertex count for Wire/Highlight meshes and
// for Collider meshes. Both must be ≥ 3.
func WithRingResolution(wire, collider int) Option {
	if wire < 3 || collider < 3 {
		panic(fmt.Sprintf("wire: WithRingResolution(%d, %d)", wire, collider))
	}
	return func(c *buildConfig) {
		c.ringRes, c.colliderRes = wire, collider
	}
}
