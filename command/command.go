// Package command parses and runs the text commands players type to
// interact with a module: "cut 1 4 6" (or "cut 146") and "colorblind".
//
// Contract:
//   - Parse is pure; it never touches a Machine.
//   - Run validates every wire number before the first cut, so a bad number
//     leaves the machine untouched.
//   - A strike ends a multi-wire cut; later numbers are not cut.
//   - A Session is not safe for concurrent use.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/perplexing/defuse"
)

// Sentinel errors.
var (
	// ErrEmptyCommand indicates blank input.
	ErrEmptyCommand = errors.New("command: empty command")

	// ErrUnknownCommand indicates an unknown keyword or stray arguments.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrBadWireNumber indicates a non-digit token or a number outside 1..N.
	ErrBadWireNumber = errors.New("command: bad wire number")
)

// Kind selects what a Command does.
type Kind int

// Command kinds.
const (
	KindCut Kind = iota
	KindColorblind
)

// Command is a parsed player command.
type Command struct {
	Kind  Kind
	Wires []int // 1-based wire numbers, KindCut only
}

// Parse reads one command. Keywords are case-insensitive. Every token after
// "cut" must consist of digits; each digit names one wire.
func Parse(input string) (Command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return Command{}, ErrEmptyCommand
	}

	switch parts[0] {
	case "colorblind", "cb":
		if len(parts) > 1 {
			return Command{}, fmt.Errorf("Parse: %q takes no arguments: %w", parts[0], ErrUnknownCommand)
		}
		return Command{Kind: KindColorblind}, nil

	case "cut":
		if len(parts) == 1 {
			return Command{}, fmt.Errorf("Parse: cut without wires: %w", ErrBadWireNumber)
		}
		// "cut 146" and "cut 1 4 6" are the same command; wire 0 is left
		// for Run to reject against the machine size
		var wires []int
		for _, tok := range parts[1:] {
			for _, r := range tok {
				if r < '0' || r > '9' {
					return Command{}, fmt.Errorf("Parse: %q: %w", tok, ErrBadWireNumber)
				}
				wires = append(wires, int(r-'0'))
			}
		}
		return Command{Kind: KindCut, Wires: wires}, nil
	}

	return Command{}, fmt.Errorf("Parse: %q: %w", parts[0], ErrUnknownCommand)
}

// Session runs commands against one machine and holds the colorblind toggle.
type Session struct {
	m          *defuse.Machine
	colorblind bool
}

// NewSession returns a Session driving m.
func NewSession(m *defuse.Machine) *Session { return &Session{m: m} }

// Colorblind reports whether colorblind mode is on.
func (s *Session) Colorblind() bool { return s.colorblind }

// Machine returns the machine the session drives.
func (s *Session) Machine() *defuse.Machine { return s.m }

// Result reports what a command did.
type Result struct {
	Cuts    []Cut // cuts performed, in order
	Stopped bool  // a strike ended the command early
}

// Cut is one performed cut.
type Cut struct {
	Wire    int // 1-based
	Verdict defuse.Verdict
}

// Run executes cmd. Wire numbers are all checked before the first cut; cuts
// then go in order and stop after the first strike.
func (s *Session) Run(cmd Command) (Result, error) {
	switch cmd.Kind {
	case KindColorblind:
		s.colorblind = !s.colorblind
		return Result{}, nil
	case KindCut:
		// handled below
	default:
		return Result{}, fmt.Errorf("Run: kind %d: %w", int(cmd.Kind), ErrUnknownCommand)
	}

	for _, n := range cmd.Wires {
		if n < 1 || n > s.m.Len() {
			return Result{}, fmt.Errorf("Run: wire %d of %d: %w", n, s.m.Len(), ErrBadWireNumber)
		}
	}

	var res Result
	for _, n := range cmd.Wires {
		v, err := s.m.Cut(n - 1)
		if err != nil {
			return res, err
		}
		res.Cuts = append(res.Cuts, Cut{Wire: n, Verdict: v})
		// VerdictNone (already cut) and VerdictIgnored keep going
		if v == defuse.VerdictStrike {
			res.Stopped = true
			break
		}
	}
	return res, nil
}

// Exec parses input and runs it.
func (s *Session) Exec(input string) (Result, error) {
	cmd, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return s.Run(cmd)
}
