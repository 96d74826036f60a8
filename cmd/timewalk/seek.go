// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/steptime/timeline"
)

func newSeekCmd(a *app) *cobra.Command {
	seek := &cobra.Command{
		Use:   "seek",
		Short: "Find the greatest point not after --at",
		Long: `seek prints the position, step index and time of the point a cursor
lands on when seeking --at. On a boundary shared by two segments the
earlier segment is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.model()
			if err != nil {
				return err
			}
			at := a.v.GetFloat64("at")
			c := timeline.Seek(m, at)
			v, err := c.Value()
			if err != nil {
				return errors.Wrapf(err, "seek %g outside [%g, %g]", at, m.Start(), m.EndTime())
			}
			prec := a.v.GetInt("precision")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%.*g\n", c.Position(), c.Index(), prec, v)

			return err
		},
	}
	seek.Flags().Float64("at", 0, "time to seek")

	return seek
}
