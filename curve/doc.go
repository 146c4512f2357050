// Package curve provides the small amount of 3-D vector algebra needed to
// sweep wires through space: a Point value type, rotation about an arbitrary
// axis, projection onto a plane, and cubic Bézier evaluation.
//
// What:
//
//   - Point is an immutable value; every method returns a new Point.
//   - Point.Rotate is the single source of truth for rotation sense
//     (right-hand rule about axisStart→axisEnd, angles in degrees).
//   - CubicBezier / SampleBezier evaluate the Bernstein-basis cubic.
//   - Chain stitches consecutive cubic arcs through a list of Knots and drops
//     the duplicated shared endpoints.
//
// Complexity:
//
//   - Every Point operation is O(1) and allocation-free.
//   - SampleBezier: O(steps). Chain: O(len(knots)·steps).
//
// Determinism:
//
//   - All functions are pure; identical inputs yield bit-identical outputs.
package curve
