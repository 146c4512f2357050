// Package puzzle generates the six-wire layout of a Perplexing Wires module
// and derives, for every wire, whether and when it has to be cut.
//
// What:
//
//   - Six wires run from four top connectors to six bottom connectors. The
//     first four wires take top connectors 0..3 in order; the remaining two
//     reuse a random one. Bottom connectors are a random permutation.
//   - Each top connector carries a star (filled or empty), each bottom
//     connector an arrow (direction and color), and the module shows three
//     LEDs.
//   - Crossing wires are stacked: a wire is lifted one level above the
//     highest earlier wire it crosses.
//   - Five yes/no questions about a wire select one of 32 rules; the rule
//     yields the wire's Requirement, possibly by consulting the bomb's
//     Edgework.
//   - A layout in which no wire must be cut is thrown away and drawn again.
//
// Numbering:
//
//	Accepted puzzles are sorted by bottom connector, so Wires[i] is the wire
//	players call "wire i+1", counted left to right.
//
// Errors:
//
//   - ErrNilEdgework        — NewGenerator without bomb state.
//   - ErrAttemptsExhausted  — WithMaxAttempts bound hit before an acceptable layout.
//
// Determinism:
//
//	A Generator created WithSeed(s) produces the same sequence of puzzles
//	for the same Edgework, module ID aside. A Generator is not safe for
//	concurrent use; the Puzzle values it returns are never mutated by this
//	package.
package puzzle
