// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpatrol/logging"
	"github.com/katalvlaran/gridpatrol/obstruct"
)

type loopsFlags struct {
	workers  int
	pathOnly bool
	timeout  time.Duration
	list     bool
	metrics  bool
}

func newLoopsCmd(flags *rootFlags) *cobra.Command {
	var lf loopsFlags
	cmd := &cobra.Command{
		Use:   "loops <file|->",
		Short: "Count single obstructions that trap the guard in a loop",
		Long: `Try an extra obstruction on every free cell except the guard's start
and count the placements after which the guard walks in a loop forever.

Examples:
  gridpatrol loops input.txt
  gridpatrol loops --path-only --list input.txt
  gridpatrol loops --metrics --timeout 30s input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logging.Sync(e.log) }()

			if cmd.Flags().Changed("workers") {
				e.cfg.Search.Workers = lf.workers
			}
			if cmd.Flags().Changed("path-only") {
				e.cfg.Search.PathOnly = lf.pathOnly
			}
			if cmd.Flags().Changed("timeout") {
				e.cfg.Search.Timeout = lf.timeout
			}
			if err := e.cfg.Validate(); err != nil {
				return err
			}

			m, err := readMap(cmd, args[0], e.log)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics, err := obstruct.NewMetrics(reg)
			if err != nil {
				return err
			}
			ctx, cancel, opts := searchOptions(cmd, e)
			defer cancel()

			res, err := obstruct.Search(ctx, m.Area, m.Guard, append(opts, obstruct.WithMetrics(metrics))...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "loop obstacles: %d\n", res.Count())
			if lf.list {
				for _, p := range res.Loops {
					fmt.Fprintf(out, "%d,%d\n", p.X, p.Y)
				}
			}
			if lf.metrics {
				return writeMetrics(out, reg)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&lf.workers, "workers", 0, "concurrent evaluations (0: one per CPU)")
	cmd.Flags().BoolVar(&lf.pathOnly, "path-only", false, "only trace cells the unobstructed walk looks at")
	cmd.Flags().DurationVar(&lf.timeout, "timeout", 0, "abort the search after this long (0: no limit)")
	cmd.Flags().BoolVar(&lf.list, "list", false, "print each loop obstacle as x,y")
	cmd.Flags().BoolVar(&lf.metrics, "metrics", false, "print search metrics in Prometheus text format")

	return cmd
}

// searchOptions maps the search section of e.cfg onto obstruct options and
// a context bounded by search.timeout. cancel must always be called.
func searchOptions(cmd *cobra.Command, e *env) (context.Context, context.CancelFunc, []obstruct.Option) {
	opts := []obstruct.Option{obstruct.WithLogger(e.log)}
	if e.cfg.Search.Workers > 0 {
		opts = append(opts, obstruct.WithWorkers(e.cfg.Search.Workers))
	}
	if e.cfg.Search.PathOnly {
		opts = append(opts, obstruct.WithPathOnly())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if e.cfg.Search.Timeout > 0 {
		ctx, cancel := context.WithTimeout(ctx, e.cfg.Search.Timeout)
		return ctx, cancel, opts
	}

	return ctx, func() {}, opts
}

// writeMetrics dumps every family in reg in the Prometheus text format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
