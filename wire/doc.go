// Package wire turns four anchor/control points, a piece kind, a fidelity
// level and a seed into the tube mesh of one puzzle wire.
//
// What:
//
//   - Uncut:  the whole wire. Collider fidelity tubes the raw control polygon
//     at ring resolution 4; Wire/Highlight fidelity tubes a chain of cubic
//     Bézier arcs at ring resolution 16.
//   - Cut:    two dangling stubs, each rotated a few degrees about its anchor
//     axis, truncated before the free end and closed with a flat cap.
//   - Copper: the short, half-radius conductor that pokes out of each stub.
//
// Determinism:
//
//	One logical wire is rendered as several meshes (Wire, Highlight, Collider;
//	Uncut, later Cut+Copper) that must line up. Every Build call seeds its own
//	*rand.Rand from Request.Seed and draws from it in a fixed order; there is
//	no package-level random state.
//
// Errors:
//
//   - ErrTooFewSegments  — Request.Segments < MinSegments.
//   - ErrUnknownPiece    — Request.Piece outside {Uncut, Cut, Copper}.
//   - ErrUnknownFidelity — Request.Fidelity outside {Wire, Highlight, Collider}.
//
// Degenerate geometry (coincident control points) is a caller precondition
// and is not detected.
package wire
