// SPDX-License-Identifier: MIT
// Package: perplexing/tube
//
// mesh.go — triangulation of ring grids, caps, merging and validation.
//
// Winding (per quad between ring a and ring b, columns j and j+1 mod R):
//
//	triangle 1: a[j], b[j],   b[j+1]
//	triangle 2: a[j], b[j+1], a[j+1]
//
// Cap fan (per consecutive pair j, j+1 mod R): center, ring[j+1], ring[j].

package tube

import (
	"fmt"

	"github.com/katalvlaran/perplexing/curve"
)

// Tube is Rings followed by Surface.
func Tube(points []curve.Point, radius float64, revSteps int) (Mesh, error) {
	rings, err := Rings(points, radius, revSteps)
	if err != nil {
		return Mesh{}, err
	}
	return Surface(rings), nil
}

// Surface triangulates a grid of equally sized rings. Rings of differing
// length are triangulated up to the length of the first ring.
//
// Complexity: O(len(rings)·R).
func Surface(rings []Ring) Mesh {
	if len(rings) == 0 {
		return Mesh{}
	}
	width := len(rings[0])

	m := Mesh{
		Vertices:  make([]curve.Point, 0, len(rings)*width),
		Normals:   make([]curve.Point, 0, len(rings)*width),
		Triangles: make([]int, 0, 6*width*max(len(rings)-1, 0)),
	}
	// ring-major vertex order: ring i occupies [i*width, (i+1)*width)
	for _, r := range rings {
		for j := 0; j < width; j++ {
			m.Vertices = append(m.Vertices, r[j].Point)
			m.Normals = append(m.Normals, r[j].Normal)
		}
	}

	for i := 0; i+1 < len(rings); i++ {
		a, b := i*width, (i+1)*width
		for j1 := 0; j1 < width; j1++ {
			j2 := (j1 + 1) % width // wrap around the ring, never across rings
			m.Triangles = append(m.Triangles,
				a+j1, b+j1, b+j2,
				a+j1, b+j2, a+j2,
			)
		}
	}

	return m
}

// Cap closes ring with a triangle fan around center. Every cap vertex
// (including copies of the ring's points) carries the unit outward normal.
//
// Complexity: O(len(ring)).
func Cap(r Ring, center, outward curve.Point) Mesh {
	if len(r) == 0 {
		return Mesh{}
	}
	normal := outward.Normalize()
	n := len(r)

	m := Mesh{
		Vertices:  make([]curve.Point, 0, n+1),
		Normals:   make([]curve.Point, 0, n+1),
		Triangles: make([]int, 0, 3*n),
	}
	// rim vertices are copied so the cap shades flat
	m.Vertices = append(m.Vertices, center)
	m.Normals = append(m.Normals, normal)
	for _, v := range r {
		m.Vertices = append(m.Vertices, v.Point)
		m.Normals = append(m.Normals, normal)
	}
	for j1 := 0; j1 < n; j1++ {
		j2 := (j1 + 1) % n
		m.Triangles = append(m.Triangles, 0, 1+j2, 1+j1)
	}

	return m
}

// Merge concatenates meshes into a new Mesh, re-basing triangle indices.
// Inputs are not modified.
func Merge(meshes ...Mesh) Mesh {
	var nv, nt int
	for _, m := range meshes {
		nv += len(m.Vertices)
		nt += len(m.Triangles)
	}
	out := Mesh{
		Vertices:  make([]curve.Point, 0, nv),
		Normals:   make([]curve.Point, 0, nv),
		Triangles: make([]int, 0, nt),
	}
	for _, m := range meshes {
		base := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices...)
		out.Normals = append(out.Normals, m.Normals...)
		for _, idx := range m.Triangles {
			out.Triangles = append(out.Triangles, base+idx)
		}
	}

	return out
}

// Validate checks the buffer invariants of m: one normal per vertex, a
// triangle index count divisible by three, and every index in range.
func (m Mesh) Validate() error {
	if len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("Validate: %d normals for %d vertices: %w", len(m.Normals), len(m.Vertices), ErrMalformedMesh)
	}
	if len(m.Triangles)%3 != 0 {
		return fmt.Errorf("Validate: %d indices not a multiple of 3: %w", len(m.Triangles), ErrMalformedMesh)
	}
	for i, idx := range m.Triangles {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("Validate: index %d at %d out of range [0,%d): %w", idx, i, len(m.Vertices), ErrMalformedMesh)
		}
	}

	return nil
}
