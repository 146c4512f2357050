// Package layout places puzzle wires on the module face and builds their
// meshes.
//
// Connector positions are 2-D coordinates on the face plane: X runs left to
// right, Y runs from the bottom row (negative) to the top row (positive). In
// 3-D they map to (X, height, Y).
package layout

import (
	"fmt"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/perplexing/curve"
	"github.com/katalvlaran/perplexing/metrics"
	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/katalvlaran/perplexing/tube"
	"github.com/katalvlaran/perplexing/wire"
)

// Default face geometry.
const (
	DefaultBottom        = -0.02
	DefaultControlHeight = 0.01
	DefaultRaisePerLevel = 0.005
	DefaultSegments      = 4
)

// Face describes where wires attach on a module.
type Face struct {
	Tops    [puzzle.TopCount]geom.Coord
	Bottoms [puzzle.BottomCount]geom.Coord

	Bottom        float64 // height of the connectors
	ControlHeight float64 // height of the vertical control points
	RaisePerLevel float64 // lift per stacking level
	Segments      int     // spline segments per wire

	// Metrics, when set, observes the triangle count of every built mesh.
	Metrics *metrics.Collector
}

// DefaultFace returns the standard module face: four evenly spaced top
// connectors and six bottom connectors.
func DefaultFace() Face {
	f := Face{
		Bottom:        DefaultBottom,
		ControlHeight: DefaultControlHeight,
		RaisePerLevel: DefaultRaisePerLevel,
		Segments:      DefaultSegments,
	}
	for i := range f.Tops {
		f.Tops[i] = geom.Coord{X: -0.045 + 0.03*float64(i), Y: 0.04}
	}
	for i := range f.Bottoms {
		f.Bottoms[i] = geom.Coord{X: -0.05 + 0.02*float64(i), Y: -0.04}
	}
	return f
}

// Bounds returns the smallest rectangle holding every connector.
func (f Face) Bounds() geom.Rect {
	r := geom.Rect{Min: f.Tops[0], Max: f.Tops[0]}
	for _, c := range f.Tops {
		r.ExpandToContainCoord(c)
	}
	for _, c := range f.Bottoms {
		r.ExpandToContainCoord(c)
	}
	return r
}

// Span returns the face-plane distance a wire covers.
func (f Face) Span(slot puzzle.WireSlot) float64 {
	return f.Tops[slot.Top].DistanceFrom(f.Bottoms[slot.Bottom])
}

// at lifts a face-plane coordinate to 3-D at the given height.
func (f Face) at(c geom.Coord, height float64) curve.Point {
	return curve.Pt(c.X, height, c.Y)
}

// Request returns the geometry request for one piece of slot.
func (f Face) Request(slot puzzle.WireSlot, piece wire.Piece, fid wire.Fidelity) wire.Request {
	top, bottom := f.Tops[slot.Top], f.Bottoms[slot.Bottom]

	return wire.Request{
		Start:        f.at(top, f.Bottom),
		StartControl: f.at(top, f.ControlHeight),
		EndControl:   f.at(bottom, f.ControlHeight),
		End:          f.at(bottom, f.Bottom),
		Segments:     f.Segments,
		Piece:        piece,
		Fidelity:     fid,
		Seed:         slot.MeshSeed,
		Raise:        curve.Pt(0, f.RaisePerLevel*float64(slot.Level), 0), // straight up
	}
}

// Pieces and Fidelities list every value Meshes builds, in index order.
var (
	Pieces     = [...]wire.Piece{wire.Uncut, wire.Cut, wire.Copper}
	Fidelities = [...]wire.Fidelity{wire.Wire, wire.Highlight, wire.Collider}
)

// MeshSet holds every mesh of one wire.
type MeshSet struct {
	Number int // 1-based wire number
	// indexed by the enum values, which match the order of Pieces and Fidelities
	meshes [len(Pieces)][len(Fidelities)]tube.Mesh
}

// Mesh returns the mesh of the given piece and fidelity.
func (s *MeshSet) Mesh(piece wire.Piece, fid wire.Fidelity) tube.Mesh {
	return s.meshes[piece][fid]
}

// Build builds the mesh of one piece of wire pos (0-based) of p.
func (f Face) Build(p *puzzle.Puzzle, pos int, piece wire.Piece, fid wire.Fidelity, opts ...wire.Option) (tube.Mesh, error) {
	if pos < 0 || pos >= len(p.Wires) {
		return tube.Mesh{}, fmt.Errorf("Build: wire %d of %d: %w", pos+1, len(p.Wires), ErrNoSuchWire)
	}
	m, err := wire.Build(f.Request(p.Wires[pos], piece, fid), opts...)
	if err != nil {
		return tube.Mesh{}, fmt.Errorf("Build: wire %d: %w", pos+1, err)
	}
	f.Metrics.ObserveMesh(piece.String(), fid.String(), m.TriangleCount())

	return m, nil
}

// Meshes builds every piece at every fidelity for every wire of p. The first
// error aborts the whole set.
//
// Complexity: 9 builds per wire.
func (f Face) Meshes(p *puzzle.Puzzle, opts ...wire.Option) ([]MeshSet, error) {
	out := make([]MeshSet, len(p.Wires))
	for pos := range p.Wires {
		out[pos].Number = pos + 1
		for _, piece := range Pieces {
			for _, fid := range Fidelities {
				m, err := f.Build(p, pos, piece, fid, opts...)
				if err != nil {
					return nil, err
				}
				out[pos].meshes[piece][fid] = m
			}
		}
	}
	return out, nil
}
