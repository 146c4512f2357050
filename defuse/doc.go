// Package defuse arbitrates wire cuts on a generated puzzle.
//
// A Machine is the single writer of cut state. Each wire goes NotCut → Cut
// exactly once; the module goes Unsolved → Solved exactly once. A cut is a
// strike when the wire must not be cut, when a Cut wire is cut while a
// CutFirst wire is still intact, or when a CutLast wire is cut while a Cut or
// CutFirst wire is still intact. The wire is cut either way. Once the module
// is solved, further cuts are VerdictIgnored regardless of requirement.
//
// Positions are 0-based indexes into Puzzle.Wires.
//
// A Machine is not safe for concurrent use.
package defuse
