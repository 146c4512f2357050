// SPDX-License-Identifier: MIT
// Package: perplexing/puzzle
//
// edgework.go — bomb state read by the secondary rules.
//
// Contract:
//   - An Edgework is read once per attempt into an edgeSnapshot; rules never
//     call back into it.
//   - Serial letters are matched case-insensitively.

package puzzle

import "strings"

// Edgework is the read-only bomb state consulted by secondary rules. It is
// queried once per generation attempt.
type Edgework interface {
	Batteries() int
	Indicators() int
	Ports() int
	HasUSB() bool
	Serial() string
}

// StaticEdgework is a fixed Edgework, typically filled from configuration.
type StaticEdgework struct {
	BatteryCount   int
	IndicatorCount int
	PortCount      int
	USB            bool
	SerialNumber   string
}

// Edgework accessors.
func (e StaticEdgework) Batteries() int  { return e.BatteryCount }
func (e StaticEdgework) Indicators() int { return e.IndicatorCount }
func (e StaticEdgework) Ports() int      { return e.PortCount }
func (e StaticEdgework) HasUSB() bool    { return e.USB }
func (e StaticEdgework) Serial() string  { return e.SerialNumber }

// edgeSnapshot is the per-attempt view of an Edgework.
type edgeSnapshot struct {
	batteries   int
	indicators  int
	ports       int
	usb         bool
	serialVowel bool
}

// snapshot reads every Edgework accessor exactly once.
func snapshot(e Edgework) edgeSnapshot {
	return edgeSnapshot{
		batteries:   e.Batteries(),
		indicators:  e.Indicators(),
		ports:       e.Ports(),
		usb:         e.HasUSB(),
		serialVowel: strings.ContainsAny(strings.ToUpper(e.Serial()), "AEIOU"), // Y is not a vowel
	}
}
