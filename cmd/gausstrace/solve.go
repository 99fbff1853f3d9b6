// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gausstrace/gauss"
	"github.com/katalvlaran/gausstrace/internal/config"
)

// runSolve loads configuration and input, solves, and renders the trace.
func runSolve(cmd *cobra.Command, args []string, flags solveFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	level, _ := config.ParseLevel(cfg.Log.Level) // validated by resolveConfig
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	if path == "-" {
		logger.Debug("reading system from stdin")
	}
	m, err := config.LoadSystem(path, cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	input := m.Clone()
	logger.Info("system loaded", slog.String("source", path), slog.Int("unknowns", m.Rows()))

	opts := append(cfg.SolveOptions(), gauss.WithLogger(logger))
	tr, err := gauss.Solve(m, opts...)
	if err != nil {
		logger.Error("solve failed", slog.String("error", err.Error()))
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case config.FormatJSON:
		return renderJSON(out, tr, input, m)
	case config.FormatYAML:
		return renderYAML(out, tr, input, m)
	default:
		return renderText(out, input, tr, m, newStyles(out, cfg.Output.Color))
	}
}

// resolveConfig applies flags the user set on top of env, file and defaults.
func resolveConfig(cmd *cobra.Command, flags solveFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}

	set := cmd.Flags().Changed
	if set("format") {
		cfg.Output.Format = flags.format
	}
	if set("color") {
		cfg.Output.Color = flags.color
	}
	if set("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if set("epsilon") {
		cfg.Solver.Epsilon = flags.epsilon
	}
	if set("strict") {
		cfg.Solver.FailOnSingular = flags.strict
	}

	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}
