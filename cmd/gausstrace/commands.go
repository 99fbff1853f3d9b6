// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// solveFlags holds CLI overrides; only flags the user set are applied.
type solveFlags struct {
	configPath string
	format     string
	color      string
	logLevel   string
	epsilon    float64
	strict     bool
}

// newRootCmd builds the command tree. A fresh tree per call keeps tests independent.
func newRootCmd() *cobra.Command {
	var flags solveFlags

	rootCmd := &cobra.Command{
		Use:   "gausstrace",
		Short: "Solve linear systems by Gaussian elimination and show every step",
		Long: `gausstrace reduces an augmented matrix [A|b] to [I|x] and prints the
matrix after every row operation, labelled with the operation applied.`,
		SilenceUsage: true,
	}

	// --- Solve ---
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve the system in file (YAML or JSON, stdin when omitted or \"-\")",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, flags) // Defined in solve.go
		},
	}
	solveCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML/JSON config file (default ./gausstrace.yaml when present)")
	solveCmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json or yaml")
	solveCmd.Flags().StringVar(&flags.color, "color", "", "colour mode: auto, always or never")
	solveCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	solveCmd.Flags().Float64Var(&flags.epsilon, "epsilon", 0, "tolerance for zero/one tests")
	solveCmd.Flags().BoolVar(&flags.strict, "strict", false, "fail instead of reporting an invalid trace on singular systems")

	// --- Version ---
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the gausstrace version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gausstrace", version)
		},
	}

	rootCmd.AddCommand(solveCmd, versionCmd)

	return rootCmd
}
