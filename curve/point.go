// SPDX-License-Identifier: MIT
// Package: perplexing/curve
//
// point.go — the Point value type and its algebra.
//
// Point is a defined type over model3d.Coord3D: the vector algebra is
// model3d's, this file only adds the rotation entry point and the guards the
// generator relies on.
//
// Contract:
//   - Point is a plain value (three float64); methods use value receivers.
//   - No method mutates its receiver; no method panics.
//   - Normalize of the zero vector returns the zero vector (never NaN).
//   - Rotate is the only place rotation sense is decided.

package curve

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// Point is a 3-component real vector used both as a position and as a direction.
type Point model3d.Coord3D

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// FromCoord3D converts a model3d coordinate into a Point.
func FromCoord3D(c model3d.Coord3D) Point {
	return Point(c)
}

// Reference axes.
var (
	Zero  = Point{}
	UnitX = Point{X: 1}
	UnitY = Point{Y: 1}
	UnitZ = Point{Z: 1}
)

// Coord3D returns p as a model3d coordinate.
func (p Point) Coord3D() model3d.Coord3D {
	return model3d.Coord3D(p)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point(p.Coord3D().Add(q.Coord3D()))
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point(p.Coord3D().Sub(q.Coord3D()))
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point(p.Coord3D().Scale(s))
}

// Neg returns -p.
func (p Point) Neg() Point {
	return p.Scale(-1)
}

// Dot returns the scalar product p·q.
func (p Point) Dot(q Point) float64 {
	return p.Coord3D().Dot(q.Coord3D())
}

// Cross returns the vector product p×q.
func (p Point) Cross(q Point) Point {
	return Point(p.Coord3D().Cross(q.Coord3D()))
}

// Len returns the Euclidean length of p.
func (p Point) Len() float64 {
	return p.Coord3D().Norm()
}

// Normalize returns p scaled to unit length, or Zero if p has no length.
func (p Point) Normalize() Point {
	// model3d divides by the norm unconditionally; zero would become NaN.
	if p == Zero {
		return Zero
	}
	return Point(p.Coord3D().Normalize())
}

// Distance returns |p - q|.
func (p Point) Distance(q Point) float64 {
	return p.Coord3D().Dist(q.Coord3D())
}

// Lerp returns p + (q-p)*t.
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// ProjectOntoPlane removes from p its component parallel to normal, i.e. it
// returns the projection of p onto the plane through the origin orthogonal
// to normal. A zero normal leaves p unchanged.
func (p Point) ProjectOntoPlane(normal Point) Point {
	if normal == Zero {
		return p
	}
	return Point(p.Coord3D().ProjectOut(normal.Coord3D()))
}

// Rotate turns p about the line through axisStart and axisEnd by degrees,
// counter-clockwise when looking from axisEnd back toward axisStart (the
// right-hand rule about the axis direction). The rotation matrix comes from
// model3d.NewMatrix3Rotation, which expects a unit axis. A degenerate axis
// (axisStart == axisEnd) returns p unchanged.
//
// Complexity: O(1).
func (p Point) Rotate(axisStart, axisEnd Point, degrees float64) Point {
	k := axisEnd.Sub(axisStart).Normalize()
	if k == Zero {
		return p
	}
	rot := model3d.NewMatrix3Rotation(k.Coord3D(), degrees*math.Pi/180)

	// Rotate about the origin, then translate back onto the axis.
	v := p.Sub(axisStart).Coord3D()
	return axisStart.Add(Point(rot.MulColumn(v)))
}

// ApproxEqual reports whether every component of p and q differs by at most eps.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps &&
		math.Abs(p.Y-q.Y) <= eps &&
		math.Abs(p.Z-q.Z) <= eps
}
