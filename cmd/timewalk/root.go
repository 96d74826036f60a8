// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/steptime/timeline"
)

const envPrefix = "TIMEWALK"

// app carries the state shared by every subcommand once flags, environment
// and config file have been merged.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// newRootCmd returns the timewalk root command with its subcommands. Each
// call owns a fresh viper instance so commands can be built more than once.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "timewalk",
		Short: "Walk and query piecewise-uniform timelines",
		Long: `timewalk builds a timeline from a start time and a list of segments,
each written as count:step, and walks or searches it.

A timeline with start 1 and segments 10:0.1 4:0.3 has points
1.0, 1.1, ... 2.0, 2.3, ... 3.2.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			// Sync on a terminal or pipe may fail with EINVAL; nothing to recover.
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, toml or json) with the same keys as the flags")
	flags.Float64("start", 0, "start time of the timeline")
	flags.StringSlice("segment", nil, "segment as count:step; repeat or comma-separate for more")
	flags.Int("precision", 6, "significant digits when printing times")
	flags.Bool("verbose", false, "log segment transitions at debug level")

	root.AddCommand(newWalkCmd(a), newSeekCmd(a))

	return root
}

// configure binds the merged flag set, enables TIMEWALK_* environment
// variables, reads the optional config file and builds the logger.
func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", path)
		}
	}

	logger, err := newLogger(a.v.GetBool("verbose"))
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	a.logger = logger

	return nil
}

// model builds the timeline described by the start and segment settings.
func (a *app) model() (*timeline.Model[float64], error) {
	segs, err := parseSegments(a.v.GetStringSlice("segment"))
	if err != nil {
		return nil, err
	}
	m, err := timeline.NewModel(a.v.GetFloat64("start"), segs...)
	if err != nil {
		return nil, errors.Wrap(err, "building timeline")
	}
	a.logger.Debug("timeline built",
		zap.Float64("start", m.Start()),
		zap.Int("segments", m.Len()),
		zap.Float64("end", m.EndTime()),
	)

	return m, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	return cfg.Build()
}
