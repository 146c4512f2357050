// SPDX-License-Identifier: MIT
// Package: perplexing/puzzle
//
// options.go — Generator options and resolved configuration.
//
// Contract:
//   - Option constructors PANIC on meaningless values (nil rand, nil logger,
//     empty module id, negative attempt bound).
//   - Options resolve once in NewGenerator; last option wins.

package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/katalvlaran/perplexing/metrics"
	"go.uber.org/zap"
)

// Option customises a Generator.
type Option func(*genConfig)

type genConfig struct {
	rng         *rand.Rand
	logger      *zap.Logger
	metrics     *metrics.Collector
	moduleID    string
	maxAttempts int // 0 = unbounded
}

func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.moduleID == "" {
		cfg.moduleID = uuid.NewString()
	}

	return cfg
}

// WithSeed seeds the generator's private source. Seed 0 maps to a fixed
// default seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r as the random source. The Generator takes ownership of r.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("puzzle: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithLogger sets the structured logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("puzzle: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}

// WithMetrics records generation attempts into m. A nil m disables metrics.
func WithMetrics(m *metrics.Collector) Option {
	return func(c *genConfig) {
		c.metrics = m
	}
}

// WithModuleID sets the identifier stamped on generated puzzles and log
// lines. Default: a random UUID per Generator.
func WithModuleID(id string) Option {
	if id == "" {
		panic("puzzle: WithModuleID(\"\")")
	}
	return func(c *genConfig) {
		c.moduleID = id
	}
}

// WithMaxAttempts bounds the number of layouts drawn per Generate call.
// 0 means unbounded.
func WithMaxAttempts(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("puzzle: WithMaxAttempts(%d)", n))
	}
	return func(c *genConfig) {
		c.maxAttempts = n
	}
}
