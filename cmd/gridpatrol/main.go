// SPDX-License-Identifier: MIT

// Package main implements the gridpatrol CLI: trace a guard across a text
// grid, count loop-inducing obstructions, and draw the result.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpatrol/config"
	"github.com/katalvlaran/gridpatrol/gridtext"
	"github.com/katalvlaran/gridpatrol/logging"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "gridpatrol",
		Short: "Simulate a patrolling guard on a text grid",
		Long: `gridpatrol walks a guard across a grid of '.', '#' and '^' cells.
The guard moves forward and turns right in front of an obstruction.

Examples:
  # Count the cells the guard covers before leaving the grid
  gridpatrol trace input.txt

  # Count the single obstructions that trap the guard in a loop
  gridpatrol loops --workers 8 input.txt

  # Draw the walk from stdin
  cat input.txt | gridpatrol render -`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format: console or json")

	cmd.AddCommand(newTraceCmd(&flags))
	cmd.AddCommand(newLoopsCmd(&flags))
	cmd.AddCommand(newRenderCmd(&flags))

	return cmd
}

// env is what every subcommand needs after flag parsing.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, flags *rootFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: log}, nil
}

// readMap parses the grid named by arg; "-" reads stdin.
func readMap(cmd *cobra.Command, arg string, log *zap.Logger) (*gridtext.Map, error) {
	var r io.Reader = cmd.InOrStdin()
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	m, err := gridtext.Read(r)
	if err != nil {
		return nil, err
	}
	if len(m.ExtraGuards) > 0 {
		log.Warn("several guard markers, using the first",
			zap.Stringer("guard", m.Guard.Position),
			zap.Int("ignored", len(m.ExtraGuards)),
		)
	}

	return m, nil
}
