// Package config loads the run configuration of the percolation CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds one percolation experiment.
type Config struct {
	// Grid geometry
	Grid GridConfig `yaml:"grid"`

	// Trials is the number of independent Monte Carlo trials.
	Trials int `yaml:"trials"`

	// Seed selects the random streams; 0 uses the fixed default seed.
	Seed int64 `yaml:"seed"`

	// Workers bounds concurrently running trials; 1 is sequential.
	Workers int `yaml:"workers"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig configures the n×n grid.
type GridConfig struct {
	Size int `yaml:"size"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Grid:    GridConfig{Size: 200},
		Trials:  100,
		Seed:    0,
		Workers: 1,
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load reads a YAML file over DefaultConfig. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field is within its domain.
func (c *Config) Validate() error {
	if c.Grid.Size <= 0 {
		return fmt.Errorf("%w: grid.size=%d must be > 0", ErrInvalidConfig, c.Grid.Size)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials=%d must be > 0", ErrInvalidConfig, c.Trials)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d must be >= 1", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses Level; an empty level means warn.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	if strings.TrimSpace(l.Level) == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	return lvl, nil
}
