// SPDX-License-Identifier: MIT

// Command timewalk builds a stepped timeline from flags or a config file and
// either walks it point by point or seeks a time inside it.
//
// Usage:
//
//	timewalk walk --start 1 --segment 10:0.1 --segment 4:0.3 [--backward]
//	timewalk seek --start 10 --segment 5:1 --segment 5:2 --at 16
//
// Every flag can also come from a YAML/TOML file given with --config or from
// a TIMEWALK_* environment variable (e.g. TIMEWALK_START=2.5).
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger, lerr := zap.NewProduction()
		if lerr != nil {
			logger = zap.NewExample()
		}
		logger.Error("timewalk failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
