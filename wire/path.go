// SPDX-License-Identifier: MIT
// Package: perplexing/wire
//
// path.go — jittered spline skeleton shared by every piece of a wire.
//
// Random draw order (fixed; part of the determinism contract):
//  1. For each interpolation point i ascending: tilt = Float64(), spin = Float64().
//  2. Cut/Copper only: sign = Intn(2), swing₁ = Float64(), swing₂ = Float64().

package wire

import (
	"math/rand"

	"github.com/katalvlaran/perplexing/curve"
)

// skeleton holds the interpolation points and the symmetric control points
// around each of them.
type skeleton struct {
	interp []curve.Point
	before []curve.Point // reflection of after through interp
	after  []curve.Point
}

// newSkeleton places req.Segments-1 interpolation points between the 80/20
// blends of the two control points and jitters a control arm around each.
func newSkeleton(req Request, rng *rand.Rand) skeleton {
	n := req.Segments
	count := n - 1
	sc, ec := req.StartControl, req.EndControl

	iStart := sc.Scale(nearBlend).Add(ec.Scale(farBlend))
	iEnd := sc.Scale(farBlend).Add(ec.Scale(nearBlend))

	s := skeleton{
		interp: make([]curve.Point, count),
		before: make([]curve.Point, count),
		after:  make([]curve.Point, count),
	}
	for i := 0; i < count; i++ {
		t := 0.5 // a lone point sits halfway
		if n > 2 {
			t = float64(i) / float64(n-2)
		}
		s.interp[i] = req.Raise.Add(iStart.Lerp(iEnd, t))
	}

	// the last arm aims at EndControl
	for i := 0; i < count; i++ {
		p1 := s.interp[i]
		p2 := ec
		if i < count-1 {
			p2 = s.interp[i+1]
		}
		s.after[i] = jitterControl(p1, p2, rng)
		s.before[i] = p1.Scale(2).Sub(s.after[i])
	}

	return s
}

// jitterControl returns a control point a quarter of the way from p1 toward
// p2, tilted up to maxTiltDegrees off the segment and spun by a random angle
// around it.
func jitterControl(p1, p2 curve.Point, rng *rand.Rand) curve.Point {
	v := p2.Sub(p1).Scale(controlArm)

	// any reference not parallel to v gives a perpendicular tilt axis
	ref := curve.UnitX
	if v.Normalize().X > 0.5 {
		ref = curve.UnitY
	}
	perp := ref.Cross(v)

	c := p1.Add(v).Rotate(p1, p1.Add(perp), maxTiltDegrees*rng.Float64())
	return c.Rotate(p1, p2, fullTurn*rng.Float64())
}

// uncutKnots is the full knot chain start → interpolation points → end.
func (s skeleton) uncutKnots(req Request) []curve.Knot {
	knots := make([]curve.Knot, 0, len(s.interp)+2)
	knots = append(knots, curve.Knot{Point: req.Start, After: req.StartControl})
	for i := range s.interp {
		knots = append(knots, curve.Knot{Before: s.before[i], Point: s.interp[i], After: s.after[i]})
	}
	knots = append(knots, curve.Knot{Before: req.EndControl, Point: req.End})

	return knots
}

// controlPolygon is the raw polyline start, startControl, interpolation
// points, endControl, end.
func (s skeleton) controlPolygon(req Request) []curve.Point {
	pts := make([]curve.Point, 0, len(s.interp)+4)
	pts = append(pts, req.Start, req.StartControl)
	pts = append(pts, s.interp...)
	pts = append(pts, req.EndControl, req.End)

	return pts
}

// stubKnots returns the knot chains of the two halves of a cut wire. The
// first half runs from Start over the first (Segments+1)/2 interpolation
// points, swung by swing1 degrees about Start→StartControl. The second half
// runs from End backwards down to interpolation point (Segments-1)/2, swung
// by swing2 degrees about End→EndControl.
func (s skeleton) stubKnots(req Request, swing1, swing2 float64) (first, second []curve.Knot) {
	n := req.Segments

	rot := func(p curve.Point) curve.Point { return p.Rotate(req.Start, req.StartControl, swing1) }
	take := min((n+1)/2, len(s.interp))
	first = make([]curve.Knot, 0, take+1)
	first = append(first, curve.Knot{Point: req.Start, After: req.StartControl})
	for i := 0; i < take; i++ {
		first = append(first, curve.Knot{Before: rot(s.before[i]), Point: rot(s.interp[i]), After: rot(s.after[i])})
	}

	rot = func(p curve.Point) curve.Point { return p.Rotate(req.End, req.EndControl, swing2) }
	cutOff := (n - 1) / 2
	second = make([]curve.Knot, 0, len(s.interp)-cutOff+1)
	second = append(second, curve.Knot{Point: req.End, After: req.EndControl})
	for i := len(s.interp) - 1; i >= cutOff; i-- {
		// walking backwards, so the control roles swap
		second = append(second, curve.Knot{Before: rot(s.after[i]), Point: rot(s.interp[i]), After: rot(s.before[i])})
	}

	return first, second
}

// swings draws the rotation of both stubs: a shared sign and two
// independent magnitudes in [minSwing, minSwing+swingRange).
func swings(rng *rand.Rand) (float64, float64) {
	sign := 1.0
	if rng.Intn(2) == 0 {
		sign = -1
	}
	a := (rng.Float64()*swingRange + minSwing) * sign
	b := (rng.Float64()*swingRange + minSwing) * sign

	return a, b
}
