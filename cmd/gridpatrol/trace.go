// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpatrol/logging"
	"github.com/katalvlaran/gridpatrol/patrol"
)

func newTraceCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <file|->",
		Short: "Count the distinct cells the guard visits",
		Long: `Walk the guard until it leaves the grid, is boxed in, or loops, then
print the number of distinct cells visited and why the walk stopped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer func() { _ = logging.Sync(e.log) }()

			m, err := readMap(cmd, args[0], e.log)
			if err != nil {
				return err
			}
			path, err := patrol.Trace(m.Area, m.Guard, patrol.SimpleStep{},
				patrol.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			e.log.Debug("trace finished",
				zap.Int("states", path.Len()),
				zap.Stringer("stop", path.Stop),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "distinct cells: %d\n", path.DistinctCells())
			fmt.Fprintf(out, "stop: %s\n", path.Stop)

			return nil
		},
	}
}
