// Package perplexing generates Perplexing Wires bomb modules: a six-wire
// puzzle whose cut rules come from a fixed decision table, plus the tube
// meshes that draw each wire intact, cut, and with its exposed copper.
//
// Layout:
//
//	curve/   — 3-D vectors, rotation about an axis, cubic Bézier chains
//	tube/    — ring extrusion of a polyline into an indexed triangle mesh
//	wire/    — jittered spline paths and Uncut/Cut/Copper meshes per wire
//	puzzle/  — layout generation, stacking levels, rule table, requirements
//	defuse/  — cut state machine: ordering, strikes, solved
//	layout/  — connector positions on the module face; meshes per wire
//	command/ — "cut 1 4 6" / "colorblind" text commands
//	config/  — YAML configuration
//	metrics/ — Prometheus collectors
//	cmd/perplexing — CLI: generate, mesh, play
//
// Determinism:
//
//	A puzzle is reproducible from its generator seed and the bomb's
//	edgework; every wire mesh is reproducible from its Request, which
//	carries the wire's own seed.
package perplexing
