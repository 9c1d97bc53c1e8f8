// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"matchperf/benchcmp"
)

// DecisionPie writes the winner-distribution pie: one slice per
// algorithm, sized by the number of scenarios it wins. NoData
// scenarios appear as their own slice so counts stay total.
func (rep *Report) DecisionPie(dist []benchcmp.WinnerCount) error {
	if len(dist) == 0 {
		return fmt.Errorf("decision pie: no winners to render")
	}
	if err := os.MkdirAll(rep.Dir, 0o777); err != nil {
		return err
	}

	values := make([]chart.Value, 0, len(dist))
	for _, wc := range dist {
		values = append(values, chart.Value{
			Value: float64(wc.Count),
			Label: fmt.Sprintf("%s (%d)", wc.Algorithm, wc.Count),
			Style: chart.Style{
				FillColor: drawingColor(rep.Style.ColorFor(wc.Algorithm)),
			},
		})
	}

	pie := chart.PieChart{
		Title:  "Fastest algorithm by scenario",
		Width:  800,
		Height: 800,
		Values: values,
	}

	f, err := os.Create(filepath.Join(rep.Dir, DecisionPNG))
	if err != nil {
		return err
	}
	if err := pie.Render(chart.PNG, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawingColor(c color.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
