// SPDX-License-Identifier: MIT

// Package config loads gausstrace settings and input systems.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/matrix"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultPath is the config file read from the working directory when no
// path is given. Unlike an explicit path, it may be absent.
const DefaultPath = "gausstrace.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the top-level settings document.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Solver contains elimination settings.
	Solver SolverConfig `json:"solver" yaml:"solver"`

	// Output contains rendering settings.
	Output OutputConfig `json:"output" yaml:"output"`

	// Log contains logging settings.
	Log LogConfig `json:"log" yaml:"log"`
}

// SolverConfig contains elimination settings.
type SolverConfig struct {
	Epsilon        float64 `json:"epsilon" yaml:"epsilon"`
	FailOnSingular bool    `json:"fail_on_singular" yaml:"fail_on_singular"`
}

// OutputConfig contains rendering settings.
type OutputConfig struct {
	Format string `json:"format" yaml:"format"`
	Color  string `json:"color" yaml:"color"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			Epsilon:        gauss.DefaultEpsilon,
			FailOnSingular: false,
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration with priority: env > file > defaults.
//
// Inputs:
//   - path: Path to YAML/JSON config file. Empty means DefaultPath, which is
//     skipped when missing; an explicit path must exist.
//
// Outputs:
//   - Config: Merged configuration.
//   - error: Non-nil if an explicit file is missing, a file is invalid, an
//     environment override cannot be parsed, or validation fails.
func Load(path string) (Config, error) {
	cfg := Default()

	required := path != ""
	if !required {
		path = DefaultPath
	}
	if err := loadFile(path, required, &cfg); err != nil {
		return cfg, fmt.Errorf("load config file: %w", err)
	}

	if err := loadFromEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, required bool, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil // Implicit file doesn't exist, use defaults
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("GAUSSTRACE_EPSILON"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("GAUSSTRACE_EPSILON=%q: %w", v, err)
		}
		cfg.Solver.Epsilon = f
	}
	if v := os.Getenv("GAUSSTRACE_FAIL_ON_SINGULAR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GAUSSTRACE_FAIL_ON_SINGULAR=%q: %w", v, err)
		}
		cfg.Solver.FailOnSingular = b
	}
	if v := os.Getenv("GAUSSTRACE_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("GAUSSTRACE_COLOR"); v != "" {
		cfg.Output.Color = v
	}
	if v := os.Getenv("GAUSSTRACE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if math.IsNaN(c.Solver.Epsilon) || math.IsInf(c.Solver.Epsilon, 0) || c.Solver.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be finite and > 0: %v", c.Solver.Epsilon)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be one of text, json, yaml: %q", c.Output.Format)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never: %q", c.Output.Color)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// MatrixOptions returns the matrix policy matching the solver tolerance, so
// Solution accepts exactly what Solve treats as reduced.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(c.Solver.Epsilon)}
}

// SolveOptions converts the solver section into gauss options.
func (c Config) SolveOptions() []gauss.Option {
	opts := []gauss.Option{gauss.WithEpsilon(c.Solver.Epsilon)}
	if c.Solver.FailOnSingular {
		opts = append(opts, gauss.WithFailOnSingular())
	}
	return opts
}

// ParseLevel maps a level name (debug, info, warn, error) to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}
