// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"matchperf/benchsql"
	"matchperf/benchtab"
)

func newExportCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "export [table.csv]",
		Short: "archive the measurement table into a SQLite database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := benchtab.Load(tableArg(args))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := benchsql.Save(ctx, dbPath, tbl); err != nil {
				return err
			}
			n, err := benchsql.Count(ctx, dbPath)
			if err != nil {
				return err
			}
			log.Info().Str("db", dbPath).Int("rows", n).Msg("measurements archived")
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "matchperf.db", "SQLite database file")
	return cmd
}
