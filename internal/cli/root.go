// SPDX-License-Identifier: MIT

// Package cli implements the lvlpath command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	logFile string
}

// NewRootCmd builds the lvlpath command tree.
func NewRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:   "lvlpath",
		Short: "Single-source shortest distances over weighted graphs",
		Long: `lvlpath runs Dijkstra's algorithm over graph fixtures (YAML adjacency
documents) or OpenStreetMap road extracts and prints the shortest distances
from a source vertex.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "log search progress at debug level")
	root.PersistentFlags().StringVar(&gf.logFile, "log-file", "", "also append logs to this file")

	root.AddCommand(newDistCmd(gf), newOSMCmd(gf))

	return root
}

// Execute runs the command tree with os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// logger opens the logging pipeline for one command run. The returned
// closer releases the log file, if any.
func (gf *globalFlags) logger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if gf.verbose {
		level = slog.LevelDebug
	}

	return newLogger(cmd.ErrOrStderr(), gf.logFile, level)
}
