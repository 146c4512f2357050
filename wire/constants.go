// SPDX-License-Identifier: MIT
// Package: perplexing/wire
//
// constants.go — geometry defaults and path-shaping parameters.

package wire

// Geometry defaults, in the host's local units (module face ≈ 0.15 wide).
const (
	// DefaultWireRadius is the nominal radius of a visible wire.
	DefaultWireRadius = 0.0025

	// DefaultBezierSteps is the sample count per cubic arc, shared endpoints included.
	DefaultBezierSteps = 16

	// DefaultRingResolution is the ring vertex count for Wire/Highlight meshes.
	DefaultRingResolution = 16

	// DefaultColliderResolution is the ring vertex count for Collider meshes.
	DefaultColliderResolution = 4

	// MinSegments is the smallest accepted Request.Segments.
	MinSegments = 2
)

// Path shaping.
const (
	// interpolation points are spread between these blends of the two controls
	nearBlend = 0.8
	farBlend  = 0.2

	// control arm length as a fraction of the distance to the next point
	controlArm = 0.25

	maxTiltDegrees = 45.0
	fullTurn       = 360.0

	// cut stubs swing by [minSwing, minSwing+swingRange) degrees
	minSwing   = 1.0
	swingRange = 10.0

	// centerline samples reserved at the free end of each stub for copper
	reserveForCopper = 6
	// samples at the very tip dropped from the copper piece
	discardCopper = 2
)
