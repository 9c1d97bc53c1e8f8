// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders derived comparison series into the fixed
// set of report images. It is the presentation collaborator: it
// receives already-derived series plus a Style and performs no
// analysis of its own.
package benchchart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"matchperf/benchagg"
	"matchperf/benchcmp"
	"matchperf/benchunit"
)

// Fixed artifact names. Rerunning with an unchanged input table
// overwrites each with equivalent derived data.
const (
	LiteralPNG     = "graph1_kmp_vs_boyermoore.png"
	StructurePNG   = "graph2_structure_size.png"
	PrefilterPNG   = "graph3_prefilter_impact.png"
	AutomataPNG    = "graph4_automata_comparison.png"
	AlternationPNG = "graph5_aho_corasick.png"
	DecisionPNG    = "graph6_decision_matrix.png"
	IndexHTML      = "report.html"
)

// A Report renders chart files into Dir using Style.
type Report struct {
	Style Style
	Dir   string
}

// An AlgSeries is one algorithm's derived series.
type AlgSeries struct {
	Algorithm string
	Series    benchagg.Series
}

// An XY is a single scatter point.
type XY struct {
	X, Y float64
}

// An XYSeries is one algorithm's scatter points.
type XYSeries struct {
	Algorithm string
	Points    []XY
}

// A PrefilterSeries is one base algorithm's prefilter impact analysis.
type PrefilterSeries struct {
	Algorithm string
	Pattern   string
	Points    []benchcmp.PrefilterPoint
}

// Literal writes the literal-pattern comparison: mean match time by
// pattern length (with the selection threshold marked) next to a
// grouped per-pattern bar comparison.
func (rep *Report) Literal(byLen, byPattern []AlgSeries) error {
	left := rep.newPlot("Match time by pattern length", "Pattern Length (chars)", "Match Time (ms)")
	rep.addLines(left, byLen)
	lo, hi := seriesRange(byLen)
	left.Add(vline(rep.Style.PatternLenThreshold, lo, hi, red))

	right := rep.newPlot("Short vs long literal patterns", "Pattern", "Match Time (ms)")
	if err := rep.groupedBars(right, byPattern); err != nil {
		return err
	}

	return rep.writeGrid(LiteralPNG, [][]*plot.Plot{{left, right}})
}

// StructureSize writes the structure-size comparison: node counts and
// memory footprint per pattern type, one grouped bar panel each.
func (rep *Report) StructureSize(nodes, sizes []AlgSeries) error {
	left := rep.newPlot("Structure size: node count", "Pattern Type", "Structure Nodes")
	if err := rep.groupedBars(left, nodes); err != nil {
		return err
	}
	right := rep.newPlot("Structure size: memory", "Pattern Type", "Structure Size (KB)")
	if err := rep.groupedBars(right, sizes); err != nil {
		return err
	}
	return rep.writeGrid(StructurePNG, [][]*plot.Plot{{left, right}})
}

// PrefilterImpact writes one row per base algorithm: total time with
// and without prefiltering across text sizes (log scale, threshold
// marked) next to per-size gain/loss bars.
func (rep *Report) PrefilterImpact(impacts []PrefilterSeries) error {
	var rows [][]*plot.Plot
	for _, im := range impacts {
		rows = append(rows, []*plot.Plot{rep.prefilterLines(im), rep.prefilterGains(im)})
	}
	if len(rows) == 0 {
		return fmt.Errorf("prefilter impact: no series to render")
	}
	return rep.writeGrid(PrefilterPNG, rows)
}

func (rep *Report) prefilterLines(im PrefilterSeries) *plot.Plot {
	p := rep.newPlot(
		fmt.Sprintf("Prefilter impact - %s (pattern %q)", im.Algorithm, im.Pattern),
		"Text Size", "Total Time (ms)")
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = kbTicks{}

	var wo, wi plotter.XYs
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pt := range im.Points {
		if pt.TextSizeKB <= 0 {
			continue // log scale
		}
		wo = append(wo, plotter.XY{X: pt.TextSizeKB, Y: pt.WithoutMS})
		wi = append(wi, plotter.XY{X: pt.TextSizeKB, Y: pt.WithMS})
		lo = math.Min(lo, math.Min(pt.WithoutMS, pt.WithMS))
		hi = math.Max(hi, math.Max(pt.WithoutMS, pt.WithMS))
	}
	addLinePoints(p, "without prefilter", blue, wo)
	addLinePoints(p, "with prefilter", orange, wi)
	if lo <= hi {
		p.Add(vline(rep.Style.TextSizeKBThreshold, lo, hi, red))
	}
	return p
}

func (rep *Report) prefilterGains(im PrefilterSeries) *plot.Plot {
	p := rep.newPlot(
		fmt.Sprintf("Gain/loss with prefilter - %s (positive = faster)", im.Algorithm),
		"Text Size", "Gain (%)")

	gains := make(plotter.Values, len(im.Points))
	losses := make(plotter.Values, len(im.Points))
	labels := make([]string, len(im.Points))
	for i, pt := range im.Points {
		if pt.GainPct > 0 {
			gains[i] = pt.GainPct
		} else {
			losses[i] = pt.GainPct
		}
		labels[i] = benchunit.KB(pt.TextSizeKB)
	}

	w := vg.Points(18)
	for _, part := range []struct {
		vals plotter.Values
		clr  color.Color
	}{{gains, green}, {losses, red}} {
		bars, err := plotter.NewBarChart(part.vals, w)
		if err != nil {
			continue
		}
		bars.Color = alpha(part.clr, 0xb3)
		bars.LineStyle.Width = 0
		p.Add(bars)
	}
	p.NominalX(labels...)
	return p
}

// AutomataComparison writes the automata trade-off: a log-log scatter
// of construction versus matching time next to grouped total-time bars
// per pattern complexity.
func (rep *Report) AutomataComparison(scatter []XYSeries, totals []AlgSeries) error {
	left := rep.newPlot("Trade-off: construction vs matching", "Build Time (ms)", "Match Time (ms)")
	left.X.Scale = plot.LogScale{}
	left.Y.Scale = plot.LogScale{}
	left.X.Tick.Marker = plot.LogTicks{Prec: -1}
	left.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	for _, s := range scatter {
		var xys plotter.XYs
		for _, pt := range s.Points {
			if pt.X <= 0 || pt.Y <= 0 {
				continue // log scale
			}
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
		}
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = alpha(rep.Style.ColorFor(s.Algorithm), 0xa0)
		sc.GlyphStyle.Radius = vg.Points(4)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		left.Add(sc)
		left.Legend.Add(s.Algorithm, sc)
	}

	right := rep.newPlot("Total time by pattern complexity", "Scenario", "Total Time (ms)")
	if err := rep.groupedBars(right, totals); err != nil {
		return err
	}

	return rep.writeGrid(AutomataPNG, [][]*plot.Plot{{left, right}})
}

// Alternation writes the literal-alternation comparison: build and
// match means per algorithm next to overall total time per algorithm.
func (rep *Report) Alternation(amorts []benchcmp.Amortization, totals benchagg.Series) error {
	names := make([]string, len(amorts))
	builds := make(plotter.Values, len(amorts))
	matches := make(plotter.Values, len(amorts))
	for i, a := range amorts {
		names[i] = a.Algorithm
		builds[i] = a.Build.Float()
		matches[i] = a.Match.Float()
	}

	left := rep.newPlot("Construction vs matching on alternations", "Algorithm", "Time (ms)")
	w := vg.Points(16)
	for i, part := range []struct {
		name string
		vals plotter.Values
		clr  color.Color
	}{{"Build", builds, skyBlue}, {"Match", matches, lightCoral}} {
		bars, err := plotter.NewBarChart(part.vals, w)
		if err != nil {
			return err
		}
		bars.Color = part.clr
		bars.LineStyle.Width = 0
		bars.Offset = w * vg.Length(float64(i)-0.5)
		left.Add(bars)
		left.Legend.Add(part.name, bars)
	}
	left.NominalX(names...)

	// One single-colored bar per algorithm: each chart carries one
	// non-zero value so every bar keeps its algorithm color.
	right := rep.newPlot("Overall total time on alternations", "Algorithm", "Total Time (ms)")
	for i, pt := range totals {
		vals := make(plotter.Values, len(totals))
		vals[i] = pt.Value.Float()
		bars, err := plotter.NewBarChart(vals, vg.Points(24))
		if err != nil {
			return err
		}
		bars.Color = alpha(rep.Style.ColorFor(pt.Label), 0xb3)
		bars.LineStyle.Width = 0
		right.Add(bars)
	}
	right.NominalX(totals.Labels()...)

	return rep.writeGrid(AlternationPNG, [][]*plot.Plot{{left, right}})
}

func (rep *Report) newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.Gray{Y: 0xd0}
	grid.Vertical.Color = color.Gray{Y: 0xd0}
	p.Add(grid)
	p.Legend.Top = true
	return p
}

func (rep *Report) addLines(p *plot.Plot, series []AlgSeries) {
	for _, s := range series {
		xys := make(plotter.XYs, 0, len(s.Series))
		for _, pt := range s.Series {
			xys = append(xys, plotter.XY{X: pt.X, Y: pt.Value.Float()})
		}
		addLinePoints(p, s.Algorithm, rep.Style.ColorFor(s.Algorithm), xys)
	}
}

func addLinePoints(p *plot.Plot, name string, clr color.Color, xys plotter.XYs) {
	if len(xys) == 0 {
		return
	}
	l, sc, err := plotter.NewLinePoints(xys)
	if err != nil {
		return
	}
	l.Color = clr
	l.Width = vg.Points(2)
	sc.GlyphStyle.Color = clr
	sc.GlyphStyle.Radius = vg.Points(3)
	p.Add(l, sc)
	p.Legend.Add(name, l, sc)
}

// groupedBars adds one offset bar chart per series; all series must
// share the same requested key set, which becomes the nominal X axis.
func (rep *Report) groupedBars(p *plot.Plot, series []AlgSeries) error {
	if len(series) == 0 {
		return fmt.Errorf("grouped bars: no series")
	}
	w := vg.Points(16)
	n := len(series)
	for i, s := range series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Series.Values()), w)
		if err != nil {
			return err
		}
		bars.Color = alpha(rep.Style.ColorFor(s.Algorithm), 0xd0)
		bars.LineStyle.Width = 0
		bars.Offset = w * vg.Length(float64(i)-float64(n-1)/2)
		p.Add(bars)
		p.Legend.Add(s.Algorithm, bars)
	}
	p.NominalX(series[0].Series.Labels()...)
	return nil
}

// writeGrid renders a grid of panels into one PNG under rep.Dir.
func (rep *Report) writeGrid(name string, plots [][]*plot.Plot) error {
	if err := os.MkdirAll(rep.Dir, 0o777); err != nil {
		return err
	}
	rows, cols := len(plots), len(plots[0])
	const panelW, panelH = 16, 10 // centimeters
	dpi := rep.Style.DPI
	if dpi == 0 {
		dpi = 300
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(cols*panelW)*vg.Centimeter, vg.Length(rows*panelH)*vg.Centimeter),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Centimeter, PadY: vg.Centimeter,
		PadTop: vg.Millimeter * 5, PadBottom: vg.Millimeter * 5,
		PadLeft: vg.Millimeter * 5, PadRight: vg.Millimeter * 5,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	f, err := os.Create(filepath.Join(rep.Dir, name))
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func vline(x, ymin, ymax float64, clr color.Color) *plotter.Line {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return new(plotter.Line)
	}
	l.Color = clr
	l.Width = vg.Points(1.5)
	l.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	return l
}

func seriesRange(series []AlgSeries) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, pt := range s.Series {
			v := pt.Value.Float()
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		return 0, 1
	}
	return lo, hi
}

// kbTicks labels a log-scaled text-size axis at each decade.
type kbTicks struct{}

func (kbTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 {
		min = 0.001
	}
	var ticks []plot.Tick
	for e := math.Floor(math.Log10(min)); e <= math.Ceil(math.Log10(max)); e++ {
		v := math.Pow(10, e)
		ticks = append(ticks, plot.Tick{Value: v, Label: benchunit.KB(v)})
	}
	return ticks
}

var (
	red        = color.NRGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	green      = color.NRGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	blue       = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	orange     = color.NRGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	skyBlue    = color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	lightCoral = color.NRGBA{R: 0xf0, G: 0x80, B: 0x80, A: 0xff}
)
