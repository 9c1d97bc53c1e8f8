// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Matchreport turns a CSV table of pattern-matching benchmark
// measurements into the comparison charts that justify an
// algorithm-selection policy.
//
// Usage:
//
//	matchreport generate [table.csv] [--out dir] [--pattern p]
//	matchreport decide   [table.csv] [--csv]
//	matchreport export   [table.csv] --db file.db
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// defaultTable is the input read when no table argument is given.
const defaultTable = "performance.csv"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("matchreport failed")
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matchreport",
		Short:         "derive algorithm-selection reports from pattern-matching benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newDecideCmd(), newExportCmd())
	return root
}

func tableArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultTable
}
