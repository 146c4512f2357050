// SPDX-License-Identifier: MIT
// Package: perplexing/tube
//
// rings.go — cross-section rings along a centerline.
//
// Algorithm:
//  1. Seed the first "up" normal as cross(p1-p0, +Y), normalised and scaled to
//     radius. If the first segment is parallel to +Y, +X is the reference.
//  2. For every later point take the local tangent: (p[i+1]-p[i]) + (p[i]-p[i-1])
//     at interior points, the single adjacent segment at the last point.
//     Project the previous normal onto the plane orthogonal to that tangent,
//     normalise and scale to radius.
//  3. Build ring i by rotating p[i]+normal[i] about the tangent axis through
//     p[i] by 360·k/revSteps degrees, k ∈ [0, revSteps), then reverse the ring
//     so triangles built by Surface face outward.
//
// Complexity: O(P·R) time and space.

package tube

import (
	"fmt"

	"github.com/katalvlaran/perplexing/curve"
)

const methodRings = "Rings"

// axis is the rotation axis of one ring: the line through Start and End.
type axis struct {
	Start, End curve.Point
}

// Rings returns one Ring per centerline point.
func Rings(points []curve.Point, radius float64, revSteps int) ([]Ring, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%s: got %d points: %w", methodRings, len(points), ErrTooFewPoints)
	}
	if revSteps < MinRevSteps {
		return nil, fmt.Errorf("%s: revSteps=%d < %d: %w", methodRings, revSteps, MinRevSteps, ErrBadResolution)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%s: radius=%g: %w", methodRings, radius, ErrBadRadius)
	}

	n := len(points)
	normals := propagateNormals(points, radius)

	rings := make([]Ring, n)
	for i := 0; i < n; i++ {
		rings[i] = ring(points[i], normals[i], ringAxis(points, i), revSteps)
	}

	return rings, nil
}

// propagateNormals computes the twist-free "up" vector at every point.
func propagateNormals(points []curve.Point, radius float64) []curve.Point {
	n := len(points)
	normals := make([]curve.Point, n)
	normals[0] = seedNormal(points[1].Sub(points[0]), radius)

	for i := 1; i < n; i++ {
		t := tangent(points, i)
		nv := normals[i-1].ProjectOntoPlane(t).Normalize()
		if nv == curve.Zero {
			// previous normal was parallel to the tangent (hairpin); re-seed
			normals[i] = seedNormal(t, radius)
			continue
		}
		normals[i] = nv.Scale(radius)
	}

	return normals
}

// seedNormal returns a vector of length radius perpendicular to dir.
func seedNormal(dir curve.Point, radius float64) curve.Point {
	nv := dir.Cross(curve.UnitY).Normalize()
	if nv == curve.Zero {
		nv = dir.Cross(curve.UnitX).Normalize()
	}
	return nv.Scale(radius)
}

// tangent returns the unnormalised tangent at point i (i ≥ 1).
func tangent(points []curve.Point, i int) curve.Point {
	if i == len(points)-1 {
		return points[i].Sub(points[i-1])
	}
	return points[i+1].Sub(points[i]).Add(points[i].Sub(points[i-1]))
}

// ringAxis returns the axis the ring at point i is revolved around.
func ringAxis(points []curve.Point, i int) axis {
	n := len(points)
	switch i {
	case 0:
		return axis{Start: points[0], End: points[1]}
	case n - 1:
		return axis{Start: points[n-2], End: points[n-1]}
	default:
		p := points[i]
		return axis{Start: p, End: p.Add(tangent(points, i))}
	}
}

// ring revolves center+normal about ax and returns the vertices in reversed
// rotation order.
func ring(center, normal curve.Point, ax axis, revSteps int) Ring {
	perp := center.Add(normal)
	r := make(Ring, revSteps)
	for k := 0; k < revSteps; k++ {
		angle := 360 * float64(k) / float64(revSteps)
		p := perp.Rotate(ax.Start, ax.End, angle)
		r[revSteps-1-k] = Vertex{Point: p, Normal: p.Sub(center).Normalize()}
	}

	return r
}
