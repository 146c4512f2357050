// SPDX-License-Identifier: MIT
// Package: perplexing/tube
//
// types.go — Vertex, Ring, Mesh and sentinel errors.

package tube

import (
	"errors"

	"github.com/katalvlaran/perplexing/curve"
)

// MinRevSteps is the smallest ring resolution that still encloses an area.
const MinRevSteps = 3

// Sentinel errors for the tube package.
var (
	// ErrTooFewPoints indicates a centerline with fewer than two points.
	ErrTooFewPoints = errors.New("tube: centerline needs at least two points")

	// ErrBadResolution indicates a ring resolution below MinRevSteps.
	ErrBadResolution = errors.New("tube: ring resolution too small")

	// ErrBadRadius indicates a non-positive tube radius.
	ErrBadRadius = errors.New("tube: radius must be positive")

	// ErrMalformedMesh indicates inconsistent vertex/normal/index buffers.
	ErrMalformedMesh = errors.New("tube: malformed mesh")
)

// Vertex is a surface position with its unit normal.
type Vertex struct {
	Point  curve.Point
	Normal curve.Point
}

// Ring is the cross-section of a tube at one centerline point.
type Ring []Vertex

// Mesh is an indexed triangle mesh. Normals[i] belongs to Vertices[i];
// Triangles holds index triples into Vertices.
//
// A Mesh is treated as immutable once returned: functions in this package
// never modify the buffers of a Mesh passed to them.
type Mesh struct {
	Vertices  []curve.Point
	Normals   []curve.Point
	Triangles []int
}

// VertexCount returns len(m.Vertices).
func (m Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of index triples.
func (m Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

// Empty reports whether m has no triangles.
func (m Mesh) Empty() bool { return len(m.Triangles) == 0 }
