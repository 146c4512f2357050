package puzzle_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/perplexing/metrics"
	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// constSource makes every Intn(n) return k%n where k is the upper half of
// the value, which pins a layout without depending on math/rand's stream.
type constSource int64

func (s constSource) Int63() int64 { return int64(s) }
func (constSource) Seed(int64)     {}

// pinned draws the layout of constant 13: six orange wires, no crossings,
// every star filled. Wires at even bottoms carry the serial-vowel rule.
func pinned() *rand.Rand { return rand.New(constSource(13 << 32)) }

var edgework = puzzle.StaticEdgework{
	BatteryCount:   2,
	IndicatorCount: 1,
	PortCount:      3,
	USB:            true,
	SerialNumber:   "AB3DE4",
}

// TestGenerate_Invariants checks every accepted layout over 200 seeds: six
// wires on distinct bottoms and at least one wire to cut.
func TestGenerate_Invariants(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 200; seed++ {
		g, err := puzzle.NewGenerator(edgework, puzzle.WithSeed(seed))
		require.NoError(t, err)
		p, err := g.Generate()
		require.NoError(t, err)

		require.Len(t, p.Wires, puzzle.WireCount)
		require.GreaterOrEqual(t, p.Attempts, 1)

		bottoms := make([]int, 0, puzzle.WireCount)
		tops := map[int]bool{}
		mustCut := false
		for i, w := range p.Wires {
			require.Equal(t, i, w.Bottom, "wires are numbered by bottom connector")
			bottoms = append(bottoms, w.Bottom)
			tops[w.Top] = true
			require.GreaterOrEqual(t, w.Level, 1)
			mustCut = mustCut || w.Requirement.MustCut()
		}
		require.True(t, sort.IntsAreSorted(bottoms))
		require.Len(t, tops, puzzle.TopCount, "every top connector is used")
		require.True(t, mustCut, "seed %d: nothing to cut", seed)
	}
}

// TestGenerate_Deterministic verifies that equal seeds and module IDs give
// identical puzzles.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	gen := func() *puzzle.Puzzle {
		g, err := puzzle.NewGenerator(edgework, puzzle.WithSeed(42), puzzle.WithModuleID("m-1"))
		require.NoError(t, err)
		p, err := g.Generate()
		require.NoError(t, err)
		return p
	}
	if diff := cmp.Diff(gen(), gen()); diff != "" {
		t.Fatalf("same seed, different puzzle (-first +second):\n%s", diff)
	}
}

func TestGenerate_SequenceAdvances(t *testing.T) {
	t.Parallel()

	g, err := puzzle.NewGenerator(edgework, puzzle.WithSeed(7))
	require.NoError(t, err)
	a, err := g.Generate()
	require.NoError(t, err)
	b, err := g.Generate()
	require.NoError(t, err)
	require.Equal(t, a.ID, b.ID)
	require.NotEqual(t, a.Wires, b.Wires)
}

func TestGenerate_ModuleID(t *testing.T) {
	t.Parallel()

	g1, err := puzzle.NewGenerator(edgework)
	require.NoError(t, err)
	g2, err := puzzle.NewGenerator(edgework)
	require.NoError(t, err)
	require.NotEmpty(t, g1.ModuleID())
	require.NotEqual(t, g1.ModuleID(), g2.ModuleID())

	p, err := g1.Generate()
	require.NoError(t, err)
	require.Equal(t, g1.ModuleID(), p.ID)
}

// TestGenerate_PinnedLayout drives the generator with a constant source so the
// rule column for each bottom connector is known in advance.
func TestGenerate_PinnedLayout(t *testing.T) {
	t.Parallel()

	g, err := puzzle.NewGenerator(edgework, puzzle.WithRand(pinned()))
	require.NoError(t, err)
	p, err := g.Generate()
	require.NoError(t, err)
	require.Equal(t, 1, p.Attempts)

	for i, w := range p.Wires {
		require.Equal(t, puzzle.Orange, w.Color)
		require.Equal(t, 1, w.Level)
		if i%2 == 0 {
			require.Equal(t, puzzle.RuleSerialVowel, w.Rule, "wire %d", i+1)
			require.Equal(t, puzzle.Cut, w.Requirement, "wire %d", i+1)
		} else {
			require.Equal(t, puzzle.RuleDontCut, w.Rule, "wire %d", i+1)
		}
	}
	require.Equal(t, []int{1, 3, 5}, p.Solution())
	require.Equal(t, [puzzle.TopCount]bool{true, true, true, true}, p.Stars)
	require.Equal(t, [puzzle.LEDCount]bool{true, true, true}, p.LEDs)
	require.Equal(t, puzzle.Arrow{Direction: puzzle.Right, Color: puzzle.ArrowBlue}, p.Arrows[0])
}

// TestGenerate_AttemptsExhausted verifies that a layout that never has a wire
// to cut ends in ErrAttemptsExhausted.
func TestGenerate_AttemptsExhausted(t *testing.T) {
	t.Parallel()

	noVowel := puzzle.StaticEdgework{SerialNumber: "XB3DF4"}
	g, err := puzzle.NewGenerator(noVowel, puzzle.WithRand(pinned()), puzzle.WithMaxAttempts(3))
	require.NoError(t, err)
	_, err = g.Generate()
	require.ErrorIs(t, err, puzzle.ErrAttemptsExhausted)
}

func TestGenerate_LogsAndMetrics(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	reg := prometheus.NewRegistry()
	m, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	g, err := puzzle.NewGenerator(edgework,
		puzzle.WithSeed(3),
		puzzle.WithLogger(zap.New(core)),
		puzzle.WithMetrics(m),
		puzzle.WithModuleID("wires-7"),
	)
	require.NoError(t, err)
	p, err := g.Generate()
	require.NoError(t, err)

	accepted := logs.FilterMessage("puzzle generated").All()
	require.Len(t, accepted, 1)
	require.Equal(t, "wires-7", accepted[0].ContextMap()["module"])
	require.EqualValues(t, p.Attempts, accepted[0].ContextMap()["attempts"])
	require.Equal(t, p.Attempts-1, logs.FilterMessage("layout rejected: nothing to cut").Len())

	require.Equal(t, 1, testutil.CollectAndCount(m.GenerationAttempts))
}

// TestNewGenerator_Errors verifies the nil edgework error and the panicking
// options.
func TestNewGenerator_Errors(t *testing.T) {
	t.Parallel()

	_, err := puzzle.NewGenerator(nil)
	require.ErrorIs(t, err, puzzle.ErrNilEdgework)

	require.Panics(t, func() { puzzle.WithRand(nil) })
	require.Panics(t, func() { puzzle.WithLogger(nil) })
	require.Panics(t, func() { puzzle.WithModuleID("") })
	require.Panics(t, func() { puzzle.WithMaxAttempts(-1) })
	require.NotPanics(t, func() { puzzle.WithMetrics(nil) })
}

// TestPuzzle_SolutionOrder verifies CutFirst, then Cut, then CutLast ordering,
// each group by position.
func TestPuzzle_SolutionOrder(t *testing.T) {
	t.Parallel()

	p := &puzzle.Puzzle{Wires: []puzzle.WireSlot{
		{Requirement: puzzle.CutLast},
		{Requirement: puzzle.Cut},
		{Requirement: puzzle.DontCut},
		{Requirement: puzzle.CutFirst},
		{Requirement: puzzle.Cut},
		{Requirement: puzzle.CutFirst},
	}}
	require.Equal(t, []int{4, 6, 2, 5, 1}, p.Solution())
}

func TestPuzzle_Clone(t *testing.T) {
	t.Parallel()

	g, err := puzzle.NewGenerator(edgework, puzzle.WithSeed(11))
	require.NoError(t, err)
	p, err := g.Generate()
	require.NoError(t, err)

	c := p.Clone()
	require.Equal(t, p, c)

	orig := p.Wires[0]
	c.Wires[0].Level = 99
	c.Stars[0] = !p.Stars[0]
	require.Equal(t, orig, p.Wires[0])
	require.NotEqual(t, p.Stars, c.Stars)
}
