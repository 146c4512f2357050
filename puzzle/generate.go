// SPDX-License-Identifier: MIT
// Package: perplexing/puzzle
//
// generate.go — Generator and the single-attempt layout draw.
//
// Random draw order per attempt (fixed; part of the determinism contract):
//  1. Arrows, bottom connector ascending: direction = Intn(4), color = Intn(5).
//  2. Stars, top connector ascending: Intn(2) == 1.
//  3. LEDs ascending: Intn(2) == 1.
//  4. Tops of wires 4 and 5: Intn(4) each.
//  5. Bottom permutation (Fisher–Yates over 0..5).
//  6. Colors, wire ascending: Intn(8).
//  7. Mesh seed base: Int63(); wire i gets deriveSeed(base, i).
//
// Contract:
//   - Generate never returns a puzzle in which every wire is DontCut.
//   - Edgework is snapshotted once per attempt; a rejected attempt still
//     consumes its draws, so retries see fresh layouts.
//   - Wires are returned sorted by bottom connector; levels are assigned in
//     creation order before sorting.
//
// Complexity: O(A·W²) for A attempts and W wires.

package puzzle

import (
	"fmt"
	"math/rand"
	"sort"

	"go.uber.org/zap"
)

const methodGenerate = "Generate"

// Generator draws puzzles for one module.
type Generator struct {
	edge Edgework
	cfg  genConfig
}

// NewGenerator returns a Generator reading bomb state from edge.
func NewGenerator(edge Edgework, opts ...Option) (*Generator, error) {
	if edge == nil {
		return nil, ErrNilEdgework
	}

	return &Generator{edge: edge, cfg: newGenConfig(opts...)}, nil
}

// ModuleID returns the identifier stamped on generated puzzles.
func (g *Generator) ModuleID() string { return g.cfg.moduleID }

// Generate draws layouts until one requires at least one cut.
func (g *Generator) Generate() (*Puzzle, error) {
	log := g.cfg.logger.With(zap.String("module", g.cfg.moduleID))

	// maxAttempts == 0 means retry until a layout is accepted.
	for attempt := 1; g.cfg.maxAttempts == 0 || attempt <= g.cfg.maxAttempts; attempt++ {
		p, ok := attemptGenerate(g.cfg.rng, snapshot(g.edge))
		if !ok {
			log.Debug("layout rejected: nothing to cut", zap.Int("attempt", attempt))
			continue
		}

		p.ID = g.cfg.moduleID
		p.Attempts = attempt
		g.cfg.metrics.ObserveAttempts(attempt)
		log.Info("puzzle generated",
			zap.Int("attempts", attempt),
			zap.String("rules", p.rules()),
			zap.Ints("solution", p.Solution()),
		)

		return p, nil
	}

	return nil, fmt.Errorf("%s: %d attempts: %w", methodGenerate, g.cfg.maxAttempts, ErrAttemptsExhausted)
}

// attemptGenerate draws one complete layout from rng. It reports false when
// no wire has to be cut.
func attemptGenerate(rng *rand.Rand, edge edgeSnapshot) (*Puzzle, bool) {
	v := layoutView{edge: edge}

	// 1-3: panel decorations
	for b := range v.arrows {
		v.arrows[b] = Arrow{
			Direction: Direction(rng.Intn(int(directionCount))),
			Color:     ArrowColor(rng.Intn(int(arrowColorCount))),
		}
	}
	for t := range v.stars {
		v.stars[t] = rng.Intn(2) == 1
	}
	for l := range v.leds {
		v.leds[l] = rng.Intn(2) == 1
	}

	// 4: the first TopCount wires take one top each, the rest share at random
	wires := make([]WireSlot, WireCount)
	for i := range wires {
		if i < TopCount {
			wires[i].Top = i
		} else {
			wires[i].Top = rng.Intn(TopCount)
		}
	}
	// 5-7
	for i, b := range permRange(BottomCount, rng) {
		wires[i].Bottom = b
	}
	for i := range wires {
		wires[i].Color = Color(rng.Intn(colorCount))
	}
	base := rng.Int63()
	for i := range wires {
		wires[i].MeshSeed = deriveSeed(base, uint64(i))
	}

	assignLevels(wires) // creation order, so before the sort below

	// Venn mask, then the secondary condition of the chosen rule.
	v.wires = wires
	anyCut := false
	for i := range wires {
		wires[i].Rule = RuleFor(v.mask(i))
		wires[i].Requirement = v.resolve(i, wires[i].Rule)
		anyCut = anyCut || wires[i].Requirement.MustCut()
	}
	if !anyCut {
		return nil, false
	}

	// Present left to right; rules were resolved against creation order.
	sort.SliceStable(wires, func(a, b int) bool { return wires[a].Bottom < wires[b].Bottom })

	return &Puzzle{
		Wires:  wires,
		Stars:  v.stars,
		Arrows: v.arrows,
		LEDs:   v.leds,
	}, true
}

// rules returns the rule letters of p's wires, left to right.
func (p *Puzzle) rules() string {
	b := make([]byte, len(p.Wires))
	for i, w := range p.Wires {
		b[i] = w.Rule.Letter()
	}
	return string(b)
}
