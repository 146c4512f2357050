// SPDX-License-Identifier: MIT
// Package: perplexing/wire
//
// types.go — request, enumerations and sentinel errors.
//
// Contract:
//   - Piece and Fidelity values index layout.MeshSet directly; their order
//     is fixed.
//   - Parse functions accept exactly the String forms, ignoring case.

package wire

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/perplexing/curve"
)

// Piece selects which part of a wire is generated.
type Piece int

const (
	// Uncut is the intact wire from start to end.
	Uncut Piece = iota
	// Cut is the pair of capped stubs left after cutting.
	Cut
	// Copper is the exposed conductor at the free end of each stub.
	Copper
)

// String implements fmt.Stringer.
func (p Piece) String() string {
	switch p {
	case Uncut:
		return "uncut"
	case Cut:
		return "cut"
	case Copper:
		return "copper"
	default:
		return "piece(?)"
	}
}

// ParsePiece is the inverse of Piece.String, case-insensitive.
func ParsePiece(s string) (Piece, error) {
	for p := Uncut; p <= Copper; p++ {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("ParsePiece(%q): %w", s, ErrUnknownPiece)
}

// Fidelity selects the level of detail and thickness of the mesh.
type Fidelity int

const (
	// Wire is the visible wire at nominal radius.
	Wire Fidelity = iota
	// Highlight is the selection outline at double radius.
	Highlight
	// Collider is the coarse hit mesh at double radius.
	Collider
)

// String implements fmt.Stringer.
func (f Fidelity) String() string {
	switch f {
	case Wire:
		return "wire"
	case Highlight:
		return "highlight"
	case Collider:
		return "collider"
	default:
		return "fidelity(?)"
	}
}

// ParseFidelity is the inverse of Fidelity.String, case-insensitive.
func ParseFidelity(s string) (Fidelity, error) {
	for f := Wire; f <= Collider; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("ParseFidelity(%q): %w", s, ErrUnknownFidelity)
}

// Request fully determines one generated mesh: equal Requests (and equal
// options) produce bit-identical meshes.
type Request struct {
	Start        curve.Point
	StartControl curve.Point
	EndControl   curve.Point
	End          curve.Point

	// Segments is the number of spline segments between the two control
	// points; Segments-1 jittered interpolation points are placed there.
	Segments int

	Piece    Piece
	Fidelity Fidelity
	Seed     int64

	// Raise offsets every interpolation point; used to lift wires that
	// cross lower wires.
	Raise curve.Point
}

// Sentinel errors for the wire package.
var (
	// ErrTooFewSegments indicates Request.Segments < MinSegments.
	ErrTooFewSegments = errors.New("wire: too few segments")

	// ErrUnknownPiece indicates an out-of-range Piece value.
	ErrUnknownPiece = errors.New("wire: unknown piece")

	// ErrUnknownFidelity indicates an out-of-range Fidelity value.
	ErrUnknownFidelity = errors.New("wire: unknown fidelity")
)
