// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteDecisionsCSV writes the decision matrix in CSV form. NoData
// entries carry NoDataLabel so every scenario appears exactly once.
func WriteDecisionsCSV(w io.Writer, decisions []Decision) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Scenario", "Best Algorithm"}); err != nil {
		return err
	}
	for _, d := range decisions {
		winner := d.Winner
		if d.NoData {
			winner = NoDataLabel
		}
		if err := cw.Write([]string{d.Scenario, winner}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDecisionsText writes the decision matrix as an aligned text
// table.
func WriteDecisionsText(w io.Writer, decisions []Decision) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "scenario\tbest algorithm\n")
	for _, d := range decisions {
		winner := d.Winner
		if d.NoData {
			winner = NoDataLabel
		}
		fmt.Fprintf(tw, "%s\t%s\n", d.Scenario, winner)
	}
	return tw.Flush()
}
