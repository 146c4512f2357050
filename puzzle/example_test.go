package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/perplexing/puzzle"
)

// ExampleGenerator draws a reproducible puzzle and prints which wires have
// to be cut, in a safe order.
func ExampleGenerator() {
	edge := puzzle.StaticEdgework{BatteryCount: 1, PortCount: 2, SerialNumber: "AB3DE4"}

	g, err := puzzle.NewGenerator(edge, puzzle.WithSeed(2024), puzzle.WithModuleID("example"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := g.Generate()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(p.ID, len(p.Wires), len(p.Solution()) > 0)
	// Output: example 6 true
}
