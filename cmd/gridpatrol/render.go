// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpatrol/logging"
	"github.com/katalvlaran/gridpatrol/obstruct"
	"github.com/katalvlaran/gridpatrol/patrol"
	"github.com/katalvlaran/gridpatrol/render"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var (
		loops bool
		color bool
	)
	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Draw the grid with the guard's walk",
		Long: `Draw the grid, marking visited cells with X. With --loops, loop-inducing
obstructions are drawn as O instead of the walk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logging.Sync(e.log) }()
			if cmd.Flags().Changed("color") {
				e.cfg.Render.Color = color
			}

			m, err := readMap(cmd, args[0], e.log)
			if err != nil {
				return err
			}

			opts := []render.Option{render.WithColor(e.cfg.Render.Color)}
			if loops {
				ctx, cancel, searchOpts := searchOptions(cmd, e)
				defer cancel()
				res, err := obstruct.Search(ctx, m.Area, m.Guard, searchOpts...)
				if err != nil {
					return err
				}
				opts = append(opts, render.WithMarks(res.Loops))
			} else {
				path, err := patrol.Trace(m.Area, m.Guard, patrol.SimpleStep{}, patrol.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				opts = append(opts, render.WithPath(path))
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Draw(m.Area, m.Guard, opts...))

			return nil
		},
	}
	cmd.Flags().BoolVar(&loops, "loops", false, "mark loop-inducing obstructions instead of the walk")
	cmd.Flags().BoolVar(&color, "color", false, "colorize the drawing")

	return cmd
}
