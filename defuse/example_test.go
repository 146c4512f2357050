package defuse_test

import (
	"fmt"

	"github.com/katalvlaran/perplexing/defuse"
	"github.com/katalvlaran/perplexing/puzzle"
)

func ExampleMachine_Cut() {
	p := &puzzle.Puzzle{Wires: []puzzle.WireSlot{
		{Requirement: puzzle.CutLast},
		{Requirement: puzzle.DontCut},
		{Requirement: puzzle.CutFirst},
	}}
	m, _ := defuse.New(p)

	for _, n := range p.Solution() {
		v, _ := m.Cut(n - 1)
		fmt.Println(n, v)
	}
	fmt.Println("solved:", m.Solved(), "strikes:", m.Strikes())
	// Output:
	// 3 correct
	// 1 correct
	// solved: true strikes: 0
}
