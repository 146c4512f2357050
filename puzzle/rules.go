// SPDX-License-Identifier: MIT
// Package: perplexing/puzzle
//
// rules.go — Venn predicates, the 32-entry rule table and rule resolution.
//
// Predicate bits (mask weight):
//   1  the wire crosses another wire
//   2  the star of its top connector is filled
//   4  its bottom connector index is odd
//   8  its color is red, yellow, blue or white
//   16 its color matches the family of the arrow at its bottom connector
//
// Contract:
//   - mask and resolve read the whole layout but never modify it.
//   - Secondary rules see every wire, including those placed after i.
//   - An unknown rule resolves to DontCut.

package puzzle

// Rule is the instruction selected for a wire by its predicate mask.
type Rule int

// Rules. The first four are final; the rest resolve to Cut or DontCut from
// bomb or module state.
const (
	RuleDontCut     Rule = iota // D
	RuleCut                     // C
	RuleCutFirst                // F
	RuleCutLast                 // L
	RuleBatteries               // B: two or more batteries
	RulePorts                   // P: three or more ports
	RuleIndicators              // I: two or more indicators
	RuleSerialVowel             // S: serial number contains a vowel
	RuleUSB                     // U: a USB port is present
	RuleUniqueColor             // N: no other wire has the same color
	RuleSharedStar              // H: another wire shares its top connector
	RuleAdjacentColor           // A: a wire at a neighbouring bottom connector has the same color
	RuleUniqueArrow             // R: no other arrow points the same way as the one at its bottom connector
	RuleMajorityLEDs            // M: most LEDs are lit
	RuleFirstLED                // E: the first LED is lit
	ruleCount
)

var ruleLetters = [ruleCount]byte{'D', 'C', 'F', 'L', 'B', 'P', 'I', 'S', 'U', 'N', 'H', 'A', 'R', 'M', 'E'}

// Letter returns the single-letter name of r, or '?' when out of range.
func (r Rule) Letter() byte {
	if r < 0 || r >= ruleCount {
		return '?'
	}
	return ruleLetters[r]
}

func (r Rule) String() string { return string(r.Letter()) }

// ruleTable maps a predicate mask to its rule.
var ruleTable = [32]Rule{
	RuleDontCut, RuleCut, RuleSerialVowel, RuleCutFirst, // 0-3
	RuleBatteries, RuleUSB, RuleDontCut, RuleCutLast, // 4-7
	RuleCut, RulePorts, RuleAdjacentColor, RuleDontCut, // 8-11
	RuleUniqueColor, RuleSharedStar, RuleIndicators, RuleCutFirst, // 12-15
	RuleUniqueArrow, RuleCutLast, RuleMajorityLEDs, RuleCut, // 16-19
	RuleFirstLED, RuleDontCut, RuleCut, RuleAdjacentColor, // 20-23
	RuleCutLast, RuleSerialVowel, RuleCutFirst, RuleBatteries, // 24-27
	RuleDontCut, RuleMajorityLEDs, RuleUniqueArrow, RuleCut, // 28-31
}

// RuleFor returns the rule at predicate mask m (0..31).
func RuleFor(m int) Rule { return ruleTable[m&31] }

// layoutView is the module state a rule is evaluated against.
type layoutView struct {
	wires  []WireSlot
	stars  [TopCount]bool
	arrows [BottomCount]Arrow
	leds   [LEDCount]bool
	edge   edgeSnapshot
}

// primary reports whether color counts towards the mask's weight-8 bit.
func primary(c Color) bool {
	return c == Red || c == Yellow || c == Blue || c == White
}

// mask packs the five Venn predicates of wire i.
func (v *layoutView) mask(i int) int {
	w := v.wires[i]
	m := 0
	// crossing is symmetric, so later wires count too
	for j := range v.wires {
		if j != i && crosses(v.wires[j], w) {
			m |= 1
			break
		}
	}
	if v.stars[w.Top] {
		m |= 2
	}
	if w.Bottom%2 == 1 {
		m |= 4
	}
	if primary(w.Color) {
		m |= 8
	}
	// exact match; only the five family colors can set this bit
	if v.arrows[w.Bottom].Color.Family() == w.Color {
		m |= 16
	}

	return m
}

// resolve turns rule r of wire i into a Requirement.
func (v *layoutView) resolve(i int, r Rule) Requirement {
	switch r {
	case RuleDontCut:
		return DontCut
	case RuleCut:
		return Cut
	case RuleCutFirst:
		return CutFirst
	case RuleCutLast:
		return CutLast
	}

	return cutIf(v.holds(i, r))
}

// holds evaluates a secondary rule for wire i.
func (v *layoutView) holds(i int, r Rule) bool {
	w := v.wires[i]
	switch r {
	case RuleBatteries:
		return v.edge.batteries >= 2
	case RulePorts:
		return v.edge.ports >= 3
	case RuleIndicators:
		return v.edge.indicators >= 2
	case RuleSerialVowel:
		return v.edge.serialVowel
	case RuleUSB:
		return v.edge.usb
	case RuleUniqueColor:
		return !v.any(i, func(o WireSlot) bool { return o.Color == w.Color })
	case RuleSharedStar:
		return v.any(i, func(o WireSlot) bool { return o.Top == w.Top })
	case RuleAdjacentColor:
		return v.any(i, func(o WireSlot) bool {
			return o.Color == w.Color && (o.Bottom == w.Bottom-1 || o.Bottom == w.Bottom+1)
		})
	case RuleUniqueArrow:
		// compares against every arrow on the panel, wired or not
		dir := v.arrows[w.Bottom].Direction
		for b, a := range v.arrows {
			if b != w.Bottom && a.Direction == dir {
				return false
			}
		}
		return true
	case RuleMajorityLEDs:
		lit := 0
		for _, on := range v.leds {
			if on {
				lit++
			}
		}
		return 2*lit > LEDCount // strict majority
	case RuleFirstLED:
		return v.leds[0]
	}

	return false
}

// any reports whether some wire other than i satisfies pred.
func (v *layoutView) any(i int, pred func(WireSlot) bool) bool {
	for j, o := range v.wires {
		if j != i && pred(o) {
			return true
		}
	}
	return false
}

// cutIf maps a secondary condition onto Cut or DontCut.
func cutIf(ok bool) Requirement {
	if ok {
		return Cut
	}
	return DontCut
}
