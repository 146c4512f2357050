// SPDX-License-Identifier: MIT
// Package: perplexing/curve
//
// bezier.go — cubic Bézier evaluation and arc chaining.
//
// Contract:
//   - CubicBezier evaluates B(t) = (1-t)³p0 + 3(1-t)²t·c1 + 3(1-t)t²·c2 + t³p3.
//   - SampleBezier emits exactly `steps` samples, t = i/(steps-1), both ends included.
//   - Chain emits arc 0 in full and every later arc without its first sample,
//     so shared knots appear once.

package curve

// MinBezierSteps is the smallest sample count that still includes both endpoints.
const MinBezierSteps = 2

// Knot is one interior point of a piecewise-cubic chain together with the
// control points on either side of it. Before is unused on the first knot and
// After is unused on the last one.
type Knot struct {
	Before Point
	Point  Point
	After  Point
}

// CubicBezier evaluates the cubic Bézier curve with endpoints p0, p3 and
// control points c1, c2 at parameter t ∈ [0,1].
func CubicBezier(p0, c1, c2, p3 Point, t float64) Point {
	u := 1 - t
	return p0.Scale(u * u * u).
		Add(c1.Scale(3 * u * u * t)).
		Add(c2.Scale(3 * u * t * t)).
		Add(p3.Scale(t * t * t))
}

// SampleBezier returns steps evenly parameterised samples of the cubic.
// steps below MinBezierSteps is raised to MinBezierSteps.
//
// Complexity: O(steps) time and space.
func SampleBezier(p0, c1, c2, p3 Point, steps int) []Point {
	if steps < MinBezierSteps {
		steps = MinBezierSteps
	}
	out := make([]Point, steps)
	last := float64(steps - 1)
	for i := 0; i < steps; i++ {
		out[i] = CubicBezier(p0, c1, c2, p3, float64(i)/last)
	}
	out[0], out[steps-1] = p0, p3 // exact ends

	return out
}

// Chain samples a cubic arc between every pair of consecutive knots, using
// (k[i].Point, k[i].After, k[i+1].Before, k[i+1].Point) as the control polygon,
// and concatenates the arcs. Fewer than two knots yield their points verbatim.
//
// Complexity: O(len(knots)·steps).
func Chain(knots []Knot, steps int) []Point {
	if len(knots) < 2 {
		out := make([]Point, len(knots))
		for i, k := range knots {
			out[i] = k.Point
		}
		return out
	}
	if steps < MinBezierSteps {
		steps = MinBezierSteps
	}

	out := make([]Point, 0, steps+(len(knots)-2)*(steps-1))
	for i := 0; i+1 < len(knots); i++ {
		one, two := knots[i], knots[i+1]
		arc := SampleBezier(one.Point, one.After, two.Before, two.Point, steps)
		if i > 0 {
			arc = arc[1:]
		}
		out = append(out, arc...)
	}

	return out
}
