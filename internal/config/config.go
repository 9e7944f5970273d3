// Package config loads the amphipod tool configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-ricrob/amphipod/internal/diagram"
	"github.com/go-ricrob/amphipod/internal/solver"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the tool settings. Zero values of the solver section mean "default".
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Solver contains search settings.
	Solver SolverConfig `yaml:"solver"`

	// UnfoldRows are the room levels inserted for part 2.
	UnfoldRows []string `yaml:"unfold_rows"`
}

// SolverConfig contains search settings.
type SolverConfig struct {
	MaxExpansions int `yaml:"max_expansions"`
	Partitions    int `yaml:"partitions"`
	ProgressEvery int `yaml:"progress_every"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Solver: SolverConfig{
			Partitions:    solver.DefaultPartitions,
			ProgressEvery: solver.DefaultProgressEvery,
		},
		UnfoldRows: append([]string(nil), diagram.DefaultUnfoldRows...),
	}
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Solver.MaxExpansions < 0 {
		return fmt.Errorf("%w: solver.max_expansions %d", ErrInvalid, c.Solver.MaxExpansions)
	}
	if c.Solver.Partitions < 0 {
		return fmt.Errorf("%w: solver.partitions %d", ErrInvalid, c.Solver.Partitions)
	}
	if c.Solver.ProgressEvery < 0 {
		return fmt.Errorf("%w: solver.progress_every %d", ErrInvalid, c.Solver.ProgressEvery)
	}
	for _, row := range c.UnfoldRows {
		if strings.TrimSpace(row) == "" {
			return fmt.Errorf("%w: empty unfold row", ErrInvalid)
		}
	}
	return nil
}

// SolverOptions converts the solver section into solver options.
func (c Config) SolverOptions(logger *slog.Logger) []solver.Option {
	opts := []solver.Option{
		solver.WithLogger(logger),
		solver.WithMaxExpansions(c.Solver.MaxExpansions),
		solver.WithProgressEvery(c.Solver.ProgressEvery),
	}
	if c.Solver.Partitions > 0 {
		opts = append(opts, solver.WithPartitions(c.Solver.Partitions))
	}
	return opts
}

// ParseLevel converts a level name into a slog level. The empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalid, name)
	}
	return level, nil
}
