// SPDX-License-Identifier: MIT
// Package: perplexing/defuse
//
// options.go — functional options for Machine.
//
// Contract:
//   - WithLogger panics on nil. Without options a Machine logs to zap.NewNop
//     and records no metrics.
//   - Hooks are optional and run synchronously inside Cut.

package defuse

import (
	"github.com/katalvlaran/perplexing/metrics"
	"github.com/katalvlaran/perplexing/puzzle"
	"go.uber.org/zap"
)

// Option customises a Machine.
type Option func(*machineConfig)

type machineConfig struct {
	logger   *zap.Logger
	metrics  *metrics.Collector
	onStrike func(pos int, req puzzle.Requirement)
	onSolve  func()
}

func newMachineConfig(opts ...Option) machineConfig {
	cfg := machineConfig{logger: zap.NewNop()} // nil metrics and hooks are no-ops
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the structured logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("defuse: WithLogger(nil)")
	}
	return func(c *machineConfig) { c.logger = l }
}

// WithMetrics records cuts and solves into m. A nil m disables metrics.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *machineConfig) { c.metrics = m }
}

// WithOnStrike is called after every wrong cut with the wire position and
// its requirement.
func WithOnStrike(fn func(pos int, req puzzle.Requirement)) Option {
	return func(c *machineConfig) { c.onStrike = fn }
}

// WithOnSolve is called once, when the module becomes solved.
func WithOnSolve(fn func()) Option {
	return func(c *machineConfig) { c.onSolve = fn }
}
