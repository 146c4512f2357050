// SPDX-License-Identifier: MIT
// Package: perplexing/tube
//
// export.go — Mesh conversion to model3d and file export (OBJ, STL).
//
// Contract:
//   - Every exporter validates m first and returns ErrMalformedMesh untouched.
//   - OBJ keeps the shared vertex buffer and per-vertex normals ("f v//vn").
//   - STL is binary and flat-shaded; triangle order follows m.Triangles.

package tube

import (
	"io"

	"github.com/unixpickle/model3d/fileformats"
	"github.com/unixpickle/model3d/model3d"
)

// ModelTriangles returns m as a list of model3d triangles, one per index
// triple, in buffer order.
func (m Mesh) ModelTriangles() ([]*model3d.Triangle, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	tris := make([]*model3d.Triangle, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		tris = append(tris, &model3d.Triangle{
			m.Vertices[m.Triangles[i]].Coord3D(),
			m.Vertices[m.Triangles[i+1]].Coord3D(),
			m.Vertices[m.Triangles[i+2]].Coord3D(),
		})
	}
	return tris, nil
}

// Model3D returns m as a model3d.Mesh. Normals are dropped; model3d derives
// face normals from winding.
func (m Mesh) Model3D() (*model3d.Mesh, error) {
	tris, err := m.ModelTriangles()
	if err != nil {
		return nil, err
	}
	return model3d.NewMeshTriangles(tris), nil
}

// OBJFile returns m as a Wavefront OBJ document with one vertex and one
// normal per mesh vertex and 1-based "v//vn" face references.
func (m Mesh) OBJFile() (*fileformats.OBJFile, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	o := &fileformats.OBJFile{
		Vertices: make([][3]float64, len(m.Vertices)),
		Normals:  make([][3]float64, len(m.Normals)),
	}
	for i, v := range m.Vertices {
		o.Vertices[i] = v.Coord3D().Array()
	}
	for i, n := range m.Normals {
		o.Normals[i] = n.Coord3D().Array()
	}

	group := &fileformats.OBJFileFaceGroup{}
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		var face [3][3]int
		for k := 0; k < 3; k++ {
			idx := m.Triangles[i+k] + 1
			face[k] = [3]int{idx, 0, idx} // no texture coordinate
		}
		group.Faces = append(group.Faces, face)
	}
	o.FaceGroups = []*fileformats.OBJFileFaceGroup{group}
	return o, nil
}

// WriteOBJ writes m to w as Wavefront OBJ.
func (m Mesh) WriteOBJ(w io.Writer) error {
	o, err := m.OBJFile()
	if err != nil {
		return err
	}
	return o.Write(w)
}

// WriteSTL writes m to w as binary STL.
func (m Mesh) WriteSTL(w io.Writer) error {
	tris, err := m.ModelTriangles()
	if err != nil {
		return err
	}
	return model3d.WriteSTL(w, tris)
}
