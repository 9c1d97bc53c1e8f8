// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"matchperf/benchcmp"
	"matchperf/benchtab"
)

func newDecideCmd() *cobra.Command {
	var asCSV bool
	cmd := &cobra.Command{
		Use:   "decide [table.csv]",
		Short: "print the per-scenario fastest-algorithm matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := benchtab.Load(tableArg(args))
			if err != nil {
				return err
			}
			decisions := benchcmp.DecisionMatrix(tbl)
			if asCSV {
				return benchcmp.WriteDecisionsCSV(cmd.OutOrStdout(), decisions)
			}
			return benchcmp.WriteDecisionsText(cmd.OutOrStdout(), decisions)
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of an aligned table")
	return cmd
}
