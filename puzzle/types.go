// SPDX-License-Identifier: MIT
// Package: perplexing/puzzle
//
// types.go — wire, indicator and rule enumerations plus the Puzzle value.
//
// Contract:
//   - No package modifies a Puzzle after Generate returns it; Clone gives
//     callers a private copy (panel arrays are copied by value).
//   - Solution lists 1-based wire numbers: CutFirst, then Cut, then CutLast,
//     each group left to right.

package puzzle

import "errors"

// Layout dimensions.
const (
	WireCount   = 6
	TopCount    = 4
	BottomCount = 6
	LEDCount    = 3
)

// Sentinel errors.
var (
	// ErrNilEdgework indicates NewGenerator was given no Edgework.
	ErrNilEdgework = errors.New("puzzle: nil edgework")

	// ErrAttemptsExhausted indicates the configured attempt bound was reached
	// without drawing a layout in which some wire must be cut.
	ErrAttemptsExhausted = errors.New("puzzle: generation attempts exhausted")
)

// Color is the insulation color of a wire.
type Color int

// Wire colors.
const (
	Red Color = iota
	Yellow
	Blue
	White
	Green
	Orange
	Purple
	Black
	colorCount = iota
)

var colorNames = [...]string{"red", "yellow", "blue", "white", "green", "orange", "purple", "black"}

// String returns the lowercase color name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Color(?)"
	}
	return colorNames[c]
}

// ArrowColor is the color of an arrow indicator. Every arrow color names a
// wire color family.
type ArrowColor int

// Arrow colors.
const (
	ArrowRed ArrowColor = iota
	ArrowYellow
	ArrowGreen
	ArrowBlue
	ArrowPurple
	arrowColorCount = iota
)

var arrowFamilies = [...]Color{Red, Yellow, Green, Blue, Purple}

// Family returns the wire color the arrow color stands for.
func (a ArrowColor) Family() Color { return arrowFamilies[a] }

// String returns the name of the color family.
func (a ArrowColor) String() string {
	if a < 0 || int(a) >= len(arrowFamilies) {
		return "ArrowColor(?)"
	}
	return a.Family().String()
}

// Direction is where an arrow points.
type Direction int

// Arrow directions.
const (
	Up Direction = iota
	Right
	Down
	Left
	directionCount = iota
)

var directionNames = [...]string{"up", "right", "down", "left"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "Direction(?)"
	}
	return directionNames[d]
}

// Arrow is the indicator above one bottom connector.
type Arrow struct {
	Direction Direction
	Color     ArrowColor
}

// Requirement is the hidden correct action for a wire.
type Requirement int

// Requirements. CutFirst wires precede every Cut wire, which precede every
// CutLast wire; DontCut wires must never be cut.
const (
	DontCut Requirement = iota
	Cut
	CutFirst
	CutLast
)

var requirementNames = [...]string{"don't cut", "cut", "cut first", "cut last"}

func (r Requirement) String() string {
	if r < 0 || int(r) >= len(requirementNames) {
		return "Requirement(?)"
	}
	return requirementNames[r]
}

// MustCut reports whether a wire with requirement r has to be cut to solve
// the module.
func (r Requirement) MustCut() bool { return r != DontCut }

// WireSlot is one generated wire. Slots are immutable once generated; cut
// state is tracked by the defuse package.
type WireSlot struct {
	Top         int   // top connector, 0..TopCount-1
	Bottom      int   // bottom connector, 0..BottomCount-1
	Color       Color // insulation color
	Level       int   // stacking level, ≥ 1
	Rule        Rule  // rule selected by the Venn predicates
	Requirement Requirement
	MeshSeed    int64 // seed for every mesh of this wire
}

// Puzzle is an accepted module layout.
type Puzzle struct {
	ID       string
	Wires    []WireSlot // sorted by Bottom
	Stars    [TopCount]bool
	Arrows   [BottomCount]Arrow
	LEDs     [LEDCount]bool
	Attempts int // layouts drawn, including the accepted one
}

// Clone returns a deep copy of p.
func (p *Puzzle) Clone() *Puzzle {
	c := *p // Stars, Arrows and LEDs are arrays
	c.Wires = append([]WireSlot(nil), p.Wires...)

	return &c
}

// Solution returns the 1-based wire numbers to cut, in an order that never
// earns a strike: CutFirst wires, then Cut wires, then CutLast wires, each
// group left to right.
func (p *Puzzle) Solution() []int {
	var out []int
	for _, want := range [...]Requirement{CutFirst, Cut, CutLast} {
		for i, w := range p.Wires {
			if w.Requirement == want {
				out = append(out, i+1)
			}
		}
	}

	return out
}
