package wire_test

import (
	"fmt"

	"github.com/katalvlaran/perplexing/curve"
	"github.com/katalvlaran/perplexing/wire"
)

// ExampleBuild builds the visible mesh of an intact three-segment wire.
func ExampleBuild() {
	req := wire.Request{
		Start:        curve.Pt(-0.045, -0.02, 0.04),
		StartControl: curve.Pt(-0.045, 0.01, 0.04),
		EndControl:   curve.Pt(0.01, 0.01, -0.04),
		End:          curve.Pt(0.01, -0.02, -0.04),
		Segments:     3,
		Piece:        wire.Uncut,
		Fidelity:     wire.Wire,
		Seed:         42,
	}

	m, err := wire.Build(req)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.VertexCount(), m.TriangleCount())
	// Output: 736 1440
}
