// SPDX-License-Identifier: MIT
// Package: perplexing/puzzle
//
// levels.go — crossing test and stacking levels for drawn wires.
//
// Contract:
//   - Level 1 is the board surface; a wire is never below a wire it crosses
//     that was created before it.
//   - assignLevels depends only on creation order and endpoints.
//
// Complexity: O(W²) for W wires.

package puzzle

// crosses reports whether a and b visually cross: their top order is the
// opposite of their bottom order. Wires sharing a top connector never cross.
func crosses(a, b WireSlot) bool {
	return (a.Top > b.Top && a.Bottom < b.Bottom) || (a.Top < b.Top && a.Bottom > b.Bottom)
}

// assignLevels stacks wires in creation order: each wire sits one level
// above the highest earlier wire it crosses, or at level 1.
func assignLevels(wires []WireSlot) {
	for i := range wires {
		level := 1
		for j := 0; j < i; j++ {
			if crosses(wires[j], wires[i]) && wires[j].Level+1 > level {
				level = wires[j].Level + 1
			}
		}
		wires[i].Level = level
	}
}
