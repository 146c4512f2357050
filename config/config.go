// Package config loads the YAML configuration of the perplexing tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/perplexing/layout"
	"github.com/katalvlaran/perplexing/puzzle"
	"github.com/katalvlaran/perplexing/wire"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Seed        int64          `yaml:"seed"`
	MaxAttempts int            `yaml:"max_attempts"` // 0 = unbounded
	Edgework    EdgeworkConfig `yaml:"edgework"`
	Geometry    GeometryConfig `yaml:"geometry"`
	Logging     LoggingConfig  `yaml:"logging"`
}

// EdgeworkConfig describes the bomb the module sits on.
type EdgeworkConfig struct {
	Batteries  int    `yaml:"batteries"`
	Indicators int    `yaml:"indicators"`
	Ports      int    `yaml:"ports"`
	USB        bool   `yaml:"usb"`
	Serial     string `yaml:"serial"`
}

// GeometryConfig tunes wire meshes.
type GeometryConfig struct {
	SegmentCount  int     `yaml:"segment_count"`
	WireRadius    float64 `yaml:"wire_radius"`
	RaisePerLevel float64 `yaml:"raise_per_level"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Edgework: EdgeworkConfig{
			Batteries:  2,
			Indicators: 1,
			Ports:      2,
			Serial:     "AB3DE4",
		},
		Geometry: GeometryConfig{
			SegmentCount:  layout.DefaultSegments,
			WireRadius:    wire.DefaultWireRadius,
			RaisePerLevel: layout.DefaultRaisePerLevel,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// PERPLEXING_SEED and PERPLEXING_SERIAL override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// decode over the defaults so omitted keys keep them
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides layers PERPLEXING_* variables over the loaded values.
func (c *Config) applyEnvOverrides() error {
	if s := os.Getenv("PERPLEXING_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("PERPLEXING_SEED=%q: %w", s, ErrInvalidConfig)
		}
		c.Seed = seed
	}
	if s := os.Getenv("PERPLEXING_SERIAL"); s != "" {
		c.Edgework.Serial = s
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.MaxAttempts < 0:
		return fmt.Errorf("max_attempts=%d: %w", c.MaxAttempts, ErrInvalidConfig)
	case c.Edgework.Batteries < 0 || c.Edgework.Indicators < 0 || c.Edgework.Ports < 0:
		return fmt.Errorf("edgework counts must be non-negative: %w", ErrInvalidConfig)
	case c.Geometry.SegmentCount < wire.MinSegments:
		return fmt.Errorf("geometry.segment_count=%d < %d: %w", c.Geometry.SegmentCount, wire.MinSegments, ErrInvalidConfig)
	case !(c.Geometry.WireRadius > 0): // also rejects NaN
		return fmt.Errorf("geometry.wire_radius=%g: %w", c.Geometry.WireRadius, ErrInvalidConfig)
	case c.Geometry.RaisePerLevel < 0:
		return fmt.Errorf("geometry.raise_per_level=%g: %w", c.Geometry.RaisePerLevel, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level=%q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	return nil
}

// StaticEdgework returns the configured bomb state.
func (c *Config) StaticEdgework() puzzle.StaticEdgework {
	return puzzle.StaticEdgework{
		BatteryCount:   c.Edgework.Batteries,
		IndicatorCount: c.Edgework.Indicators,
		PortCount:      c.Edgework.Ports,
		USB:            c.Edgework.USB,
		SerialNumber:   c.Edgework.Serial,
	}
}

// Face returns the default face with the configured geometry.
func (c *Config) Face() layout.Face {
	f := layout.DefaultFace()
	f.Segments = c.Geometry.SegmentCount
	f.RaisePerLevel = c.Geometry.RaisePerLevel
	return f
}

// WireOptions returns the mesh options implied by the configuration.
// Call only on a validated Config.
func (c *Config) WireOptions() []wire.Option {
	return []wire.Option{wire.WithWireRadius(c.Geometry.WireRadius)}
}

// Level returns the configured log level. Call only on a validated Config.
func (c *Config) Level() zapcore.Level {
	lvl, _ := zapcore.ParseLevel(c.Logging.Level)
	return lvl
}
