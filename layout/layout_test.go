package layout_test

import (
	"testing"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/perplexing/curve"
	"github.com/katalvlaran/perplexing/layout"
	"github.com/katalvlaran/perplexing/metrics"
	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/katalvlaran/perplexing/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func generated(t *testing.T) *puzzle.Puzzle {
	t.Helper()
	g, err := puzzle.NewGenerator(puzzle.StaticEdgework{SerialNumber: "QE7TY1"}, puzzle.WithSeed(99))
	require.NoError(t, err)
	p, err := g.Generate()
	require.NoError(t, err)
	return p
}

// TestFace_Request verifies that a slot maps to connector positions on the
// face and is raised by its stacking level.
func TestFace_Request(t *testing.T) {
	t.Parallel()

	f := layout.DefaultFace()
	slot := puzzle.WireSlot{Top: 2, Bottom: 5, Level: 3, MeshSeed: 77}
	req := f.Request(slot, wire.Cut, wire.Highlight)

	require.Equal(t, curve.Pt(f.Tops[2].X, layout.DefaultBottom, f.Tops[2].Y), req.Start)
	require.Equal(t, curve.Pt(f.Tops[2].X, layout.DefaultControlHeight, f.Tops[2].Y), req.StartControl)
	require.Equal(t, curve.Pt(f.Bottoms[5].X, layout.DefaultControlHeight, f.Bottoms[5].Y), req.EndControl)
	require.Equal(t, curve.Pt(f.Bottoms[5].X, layout.DefaultBottom, f.Bottoms[5].Y), req.End)
	require.InDelta(t, 3*layout.DefaultRaisePerLevel, req.Raise.Y, 1e-15)
	require.Zero(t, req.Raise.X)
	require.Equal(t, int64(77), req.Seed)
	require.Equal(t, layout.DefaultSegments, req.Segments)
	require.Equal(t, wire.Cut, req.Piece)
	require.Equal(t, wire.Highlight, req.Fidelity)
}

func TestFace_BoundsAndSpan(t *testing.T) {
	t.Parallel()

	f := layout.DefaultFace()
	b := f.Bounds()
	require.InDelta(t, -0.05, b.Min.X, 1e-12)
	require.InDelta(t, 0.05, b.Max.X, 1e-12)
	require.InDelta(t, -0.04, b.Min.Y, 1e-12)
	require.InDelta(t, 0.04, b.Max.Y, 1e-12)

	straight := puzzle.WireSlot{Top: 0, Bottom: 0}
	require.InDelta(t, f.Tops[0].DistanceFrom(f.Bottoms[0]), f.Span(straight), 1e-15)
	require.Greater(t, f.Span(puzzle.WireSlot{Top: 0, Bottom: 5}), f.Span(straight))

	f.Tops[1] = geom.Coord{X: 0.2, Y: 0.3}
	require.InDelta(t, 0.2, f.Bounds().Max.X, 1e-12)
}

func TestFace_Meshes(t *testing.T) {
	t.Parallel()

	col, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	p := generated(t)
	f := layout.DefaultFace()
	f.Metrics = col
	sets, err := f.Meshes(p)
	require.NoError(t, err)
	require.Len(t, sets, puzzle.WireCount)

	for i, s := range sets {
		require.Equal(t, i+1, s.Number)
		for _, piece := range layout.Pieces {
			for _, fid := range layout.Fidelities {
				m := s.Mesh(piece, fid)
				require.False(t, m.Empty(), "wire %d %s/%s", s.Number, piece, fid)
				require.NoError(t, m.Validate())
			}
		}
	}

	// one mesh per wire and kind, all at their own label pair
	require.Equal(t, len(layout.Pieces)*len(layout.Fidelities), testutil.CollectAndCount(col.MeshTriangles))
}

// TestFace_BuildMatchesMeshes verifies that Build returns the same mesh as
// the matching entry of Meshes, and rejects an out-of-range wire.
func TestFace_BuildMatchesMeshes(t *testing.T) {
	t.Parallel()

	p := generated(t)
	f := layout.DefaultFace()
	sets, err := f.Meshes(p)
	require.NoError(t, err)

	m, err := f.Build(p, 2, wire.Copper, wire.Collider)
	require.NoError(t, err)
	require.Equal(t, sets[2].Mesh(wire.Copper, wire.Collider), m)

	_, err = f.Build(p, 6, wire.Uncut, wire.Wire)
	require.ErrorIs(t, err, layout.ErrNoSuchWire)
}

// TestFace_BadSegments verifies that a segment count below the minimum
// surfaces wire.ErrTooFewSegments.
func TestFace_BadSegments(t *testing.T) {
	t.Parallel()

	f := layout.DefaultFace()
	f.Segments = 1
	_, err := f.Meshes(generated(t))
	require.ErrorIs(t, err, wire.ErrTooFewSegments)
}
