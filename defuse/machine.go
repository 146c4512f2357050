// SPDX-License-Identifier: MIT
// Package: perplexing/defuse
//
// machine.go — cut state machine.
//
// Contract:
//   - Cut on an out-of-range position returns ErrWireOutOfRange; no state changes.
//   - Cut on an already cut wire returns VerdictNone; no evaluation, no hooks.
//   - Cut after the module is solved marks the wire and returns VerdictIgnored
//     whatever its requirement: a DontCut wire cut after solve is no strike,
//     and no hook fires.
//   - Hooks run synchronously inside Cut, after state has been updated.

package defuse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/perplexing/metrics"
	"github.com/katalvlaran/perplexing/puzzle"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrNilPuzzle indicates New was called without a puzzle.
	ErrNilPuzzle = errors.New("defuse: nil puzzle")

	// ErrWireOutOfRange indicates a position outside [0, Len()).
	ErrWireOutOfRange = errors.New("defuse: wire out of range")
)

// Verdict is the outcome of one Cut call.
type Verdict int

// Verdicts.
const (
	VerdictNone    Verdict = iota // wire already cut; nothing happened
	VerdictCorrect                // valid cut
	VerdictStrike                 // wrong cut; the wire is cut anyway
	VerdictIgnored                // cut after the module was solved; never a strike, even on DontCut
)

var verdictNames = [...]string{"none", "correct", "strike", "ignored"}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return "Verdict(?)"
	}
	return verdictNames[v]
}

// Machine tracks the cut state of one puzzle.
type Machine struct {
	p       *puzzle.Puzzle
	cut     []bool
	strikes int
	solved  bool
	cfg     machineConfig
}

// New returns a Machine for p with every wire intact. A puzzle without any
// wire to cut starts solved.
func New(p *puzzle.Puzzle, opts ...Option) (*Machine, error) {
	if p == nil {
		return nil, ErrNilPuzzle
	}
	m := &Machine{
		p:   p,
		cut: make([]bool, len(p.Wires)),
		cfg: newMachineConfig(opts...),
	}
	m.solved = m.allDone()

	return m, nil
}

// Len returns the number of wires.
func (m *Machine) Len() int { return len(m.cut) }

// IsCut reports whether wire pos has been cut. Out-of-range positions
// report false.
func (m *Machine) IsCut(pos int) bool {
	return pos >= 0 && pos < len(m.cut) && m.cut[pos]
}

// Solved reports whether every wire that must be cut has been cut.
func (m *Machine) Solved() bool { return m.solved }

// Strikes returns the number of wrong cuts so far.
func (m *Machine) Strikes() int { return m.strikes }

// Puzzle returns the puzzle being played. Callers must not modify it.
func (m *Machine) Puzzle() *puzzle.Puzzle { return m.p }

// Cut cuts wire pos and reports how the cut was judged.
func (m *Machine) Cut(pos int) (Verdict, error) {
	if pos < 0 || pos >= len(m.cut) {
		return VerdictNone, fmt.Errorf("Cut: position %d of %d: %w", pos, len(m.cut), ErrWireOutOfRange)
	}
	if m.cut[pos] {
		return VerdictNone, nil
	}

	log := m.cfg.logger.With(zap.String("module", m.p.ID), zap.Int("wire", pos+1))
	// Requirements no longer apply once solved.
	if m.solved {
		m.cut[pos] = true
		m.cfg.metrics.ObserveCut(metrics.VerdictIgnored)
		log.Debug("wire cut after solve")
		return VerdictIgnored, nil
	}

	// Judge against the state before this cut, then record it either way.
	req := m.p.Wires[pos].Requirement
	ok := m.allowed(pos, req)
	m.cut[pos] = true

	if !ok {
		m.strikes++
		m.cfg.metrics.ObserveCut(metrics.VerdictStrike)
		log.Warn("strike", zap.Stringer("requirement", req), zap.Int("strikes", m.strikes))
		if m.cfg.onStrike != nil {
			m.cfg.onStrike(pos, req)
		}
	} else {
		m.cfg.metrics.ObserveCut(metrics.VerdictCorrect)
		log.Info("correct cut", zap.Stringer("requirement", req))
	}

	// solved flips exactly once
	if m.allDone() {
		m.solved = true
		m.cfg.metrics.ObserveSolve()
		log.Info("module solved", zap.Int("strikes", m.strikes))
		if m.cfg.onSolve != nil {
			m.cfg.onSolve()
		}
	}

	if !ok {
		return VerdictStrike, nil
	}
	return VerdictCorrect, nil
}

// Interact is the host-facing cut entry point. It applies the cut and always
// reports that the physical cut should go ahead; invalid positions are
// dropped silently.
func (m *Machine) Interact(pos int) bool {
	_, _ = m.Cut(pos)
	return true
}

// allowed reports whether cutting wire pos with requirement req now is valid.
func (m *Machine) allowed(pos int, req puzzle.Requirement) bool {
	switch req {
	case puzzle.DontCut:
		return false // always a strike before solve
	case puzzle.Cut:
		return !m.pending(pos, puzzle.CutFirst)
	case puzzle.CutLast:
		return !m.pending(pos, puzzle.CutFirst, puzzle.Cut)
	}
	return true
}

// pending reports whether some intact wire other than pos has one of reqs.
func (m *Machine) pending(pos int, reqs ...puzzle.Requirement) bool {
	for i, w := range m.p.Wires {
		if i == pos || m.cut[i] {
			continue
		}
		for _, r := range reqs {
			if w.Requirement == r {
				return true
			}
		}
	}
	return false
}

// allDone reports whether every wire is either cut or must stay intact.
func (m *Machine) allDone() bool {
	for i, w := range m.p.Wires {
		if w.Requirement.MustCut() && !m.cut[i] {
			return false
		}
	}
	return true
}
