package tube_test

import (
	"fmt"

	"github.com/katalvlaran/perplexing/curve"
	"github.com/katalvlaran/perplexing/tube"
)

// ExampleTube extrudes a square cross-section along a straight line.
func ExampleTube() {
	pts := []curve.Point{curve.Pt(0, 0, 0), curve.Pt(0, 0, 1), curve.Pt(0, 0, 2)}
	m, err := tube.Tube(pts, 0.5, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.VertexCount(), m.TriangleCount(), m.Validate() == nil)
	// Output: 12 16 true
}
