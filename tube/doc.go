// Package tube sweeps a circular cross-section along a centerline polyline and
// returns an indexed triangle mesh.
//
// What:
//
//   - Rings builds one ring of revSteps vertices per centerline point. Ring
//     orientation is carried from point to point by projecting the previous
//     ring's "up" normal onto the plane orthogonal to the local tangent, which
//     keeps the tube from twisting along the curve.
//   - Surface joins consecutive rings with two triangles per quad. The grid
//     wraps around each ring but never from the last ring back to the first,
//     so tube ends stay open.
//   - Cap closes a ring with a flat triangle fan.
//   - Merge concatenates meshes; Mesh.Validate checks buffer invariants;
//     Mesh.WriteOBJ and Mesh.WriteSTL export through model3d; Mesh.Model3D
//     hands the mesh to model3d for further processing.
//
// Complexity:
//
//   - Rings:   O(P·R) time and space for P points and R = revSteps.
//   - Surface: O(P·R) vertices, 2·R·(P-1) triangles.
//   - Cap:     O(R).
//
// Errors:
//
//   - ErrTooFewPoints   — fewer than two centerline points.
//   - ErrBadResolution  — revSteps below MinRevSteps.
//   - ErrBadRadius      — radius not strictly positive.
//   - ErrMalformedMesh  — Validate found inconsistent buffers.
//
// Determinism: every function is pure; equal inputs give bit-identical meshes.
package tube
