// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/steptime/timetable"
)

func newWalkCmd(a *app) *cobra.Command {
	walk := &cobra.Command{
		Use:   "walk",
		Short: "Print every point of the timeline as: index time delta",
		Long: `walk steps a table from the start time up to, but not including, the
end time and prints one line per point. With --backward it first runs to
the end and then retreats back to the start.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.model()
			if err != nil {
				return err
			}
			tbl, err := timetable.NewWithSegments(m.Start(), m.Segments(),
				timetable.WithLogger(a.logger.Named("timetable")))
			if err != nil {
				return err
			}

			p := printer{w: cmd.OutOrStdout(), precision: a.v.GetInt("precision")}
			if a.v.GetBool("backward") {
				return walkBackward(tbl, p)
			}

			return walkForward(tbl, p)
		},
	}
	walk.Flags().Bool("backward", false, "walk from the last point back to the start")

	return walk
}

type printer struct {
	w         io.Writer
	precision int
}

func (p printer) point(tbl *timetable.Table[float64]) error {
	_, err := fmt.Fprintf(p.w, "%d\t%.*g\t%.*g\n",
		tbl.StepIndex(), p.precision, tbl.Time(), p.precision, tbl.Delta())

	return err
}

func walkForward(tbl *timetable.Table[float64], p printer) error {
	for ; !tbl.Finished(); tbl.Advance() {
		if err := p.point(tbl); err != nil {
			return err
		}
	}

	return nil
}

func walkBackward(tbl *timetable.Table[float64], p printer) error {
	for !tbl.Finished() {
		tbl.Advance()
	}
	tbl.Retreat()
	for !tbl.Finished() {
		if err := p.point(tbl); err != nil {
			return err
		}
		if tbl.StepIndex() == 0 {
			return nil
		}
		tbl.Retreat()
	}

	return nil
}
