// SPDX-License-Identifier: MIT
// Package: perplexing/wire
//
// build.go — Build: Request → tube.Mesh.
//
// Contract:
//   - Segments ≥ MinSegments, Piece and Fidelity in range; else sentinel error.
//   - Radius: nominal for Wire, doubled for Highlight and Collider.
//   - Ring resolution: 4 for Collider, 16 otherwise (see options).
//   - Same Request + same options ⇒ bit-identical Mesh.
//
// Complexity: O(Segments·bezierSteps·ringRes) time and space.

package wire

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/perplexing/curve"
	"github.com/katalvlaran/perplexing/tube"
)

const methodBuild = "Build"

// Build generates the mesh described by req.
func Build(req Request, opts ...Option) (tube.Mesh, error) {
	if err := validate(req); err != nil {
		return tube.Mesh{}, err
	}
	cfg := newBuildConfig(opts...)
	// One source per wire; draw order below is part of the determinism contract.
	rng := rand.New(rand.NewSource(req.Seed))

	radius := cfg.radius(req.Fidelity)
	rev := cfg.revSteps(req.Fidelity)
	skel := newSkeleton(req, rng)

	if req.Piece == Uncut {
		var pts []curve.Point
		if req.Fidelity == Collider {
			// colliders follow the control polygon, no Bézier sampling
			pts = skel.controlPolygon(req)
		} else {
			pts = curve.Chain(skel.uncutKnots(req), cfg.bezierSteps)
		}
		m, err := tube.Tube(pts, radius, rev)
		if err != nil {
			return tube.Mesh{}, fmt.Errorf("%s: %s: %w", methodBuild, req.Piece, err)
		}
		return m, nil
	}

	// Cut and Copper split at the middle knot; each half bends away on its own.
	swing1, swing2 := swings(rng)
	first, second := skel.stubKnots(req, swing1, swing2)

	stub := cutStub
	if req.Piece == Copper {
		stub = copperStub
	}
	a, err := stub(curve.Chain(first, cfg.bezierSteps), radius, rev)
	if err != nil {
		return tube.Mesh{}, fmt.Errorf("%s: %s start half: %w", methodBuild, req.Piece, err)
	}
	b, err := stub(curve.Chain(second, cfg.bezierSteps), radius, rev)
	if err != nil {
		return tube.Mesh{}, fmt.Errorf("%s: %s end half: %w", methodBuild, req.Piece, err)
	}

	return tube.Merge(a, b), nil
}

// validate checks the enumerations and the segment count.
func validate(req Request) error {
	if req.Segments < MinSegments {
		return fmt.Errorf("%s: segments=%d < %d: %w", methodBuild, req.Segments, MinSegments, ErrTooFewSegments)
	}
	if req.Piece < Uncut || req.Piece > Copper {
		return fmt.Errorf("%s: piece=%d: %w", methodBuild, int(req.Piece), ErrUnknownPiece)
	}
	if req.Fidelity < Wire || req.Fidelity > Collider {
		return fmt.Errorf("%s: fidelity=%d: %w", methodBuild, int(req.Fidelity), ErrUnknownFidelity)
	}

	return nil
}

// cutStub tubes a stub centerline, drops the last reserveForCopper rings and
// caps the new free end facing along the last surviving segment.
func cutStub(pts []curve.Point, radius float64, rev int) (tube.Mesh, error) {
	rings, err := tube.Rings(pts, radius, rev)
	if err != nil {
		return tube.Mesh{}, err
	}
	keep := rings[:len(rings)-reserveForCopper] // the copper occupies the rest

	end := len(pts) - 1 - reserveForCopper
	center := pts[end]
	outward := center.Sub(pts[end-1])

	return tube.Merge(tube.Surface(keep), tube.Cap(keep[len(keep)-1], center, outward)), nil
}

// copperStub tubes the half-radius conductor: the last reserveForCopper+2
// centerline samples minus discardCopper at the tip. The first ring is
// dropped (the inner end stays open) and the tip is capped.
func copperStub(pts []curve.Point, radius float64, rev int) (tube.Mesh, error) {
	n := len(pts)
	core := pts[n-reserveForCopper-discardCopper : n-discardCopper]

	rings, err := tube.Rings(core, radius/2, rev)
	if err != nil {
		return tube.Mesh{}, err
	}
	rings = rings[1:] // inner end stays open, hidden inside the insulation

	center := core[len(core)-1]
	outward := center.Sub(core[len(core)-2])

	return tube.Merge(tube.Surface(rings), tube.Cap(rings[len(rings)-1], center, outward)), nil
}
