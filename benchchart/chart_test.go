// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchperf/benchagg"
	"matchperf/benchcmp"
)

// Render tests are smoke tests: they check that each chart writes a
// non-empty PNG, not what the pixels look like.

func testReport(t *testing.T) *Report {
	t.Helper()
	// Low DPI keeps the render fast.
	style := DefaultStyle()
	style.DPI = 72
	return &Report{Style: style, Dir: t.TempDir()}
}

func assertPNG(t *testing.T, rep *Report, name string) {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(rep.Dir, name))
	require.NoError(t, err)
	require.Greater(t, len(b), 8)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(b[:8]))
}

func lineSeries(algo string, ys ...float64) AlgSeries {
	s := AlgSeries{Algorithm: algo}
	for i, y := range ys {
		s.Series = append(s.Series, benchagg.Point{
			X:     float64(i + 1),
			Label: "s" + string(rune('0'+i)),
			Value: benchagg.Value{Mean: y, N: 1},
		})
	}
	return s
}

func TestLiteral(t *testing.T) {
	rep := testReport(t)
	byLen := []AlgSeries{
		lineSeries("KMP", 1.0, 2.0, 3.0),
		lineSeries("Boyer-Moore", 3.0, 2.0, 1.0),
	}
	require.NoError(t, rep.Literal(byLen, byLen))
	assertPNG(t, rep, LiteralPNG)
}

func TestStructureSize(t *testing.T) {
	rep := testReport(t)
	nodes := []AlgSeries{
		lineSeries("NFA", 10, 20),
		lineSeries("DFA", 30, 40),
		lineSeries("min-DFA", 5, 8),
	}
	require.NoError(t, rep.StructureSize(nodes, nodes))
	assertPNG(t, rep, StructurePNG)
}

func TestPrefilterImpact(t *testing.T) {
	rep := testReport(t)
	impacts := []PrefilterSeries{{
		Algorithm: "NFA",
		Pattern:   "a.c",
		Points: []benchcmp.PrefilterPoint{
			{TextSizeKB: 5, WithoutMS: 10, WithMS: 15, GainPct: -50},
			{TextSizeKB: 100, WithoutMS: 40, WithMS: 10, GainPct: 75},
		},
	}}
	require.NoError(t, rep.PrefilterImpact(impacts))
	assertPNG(t, rep, PrefilterPNG)
}

func TestPrefilterImpactEmpty(t *testing.T) {
	rep := testReport(t)
	err := rep.PrefilterImpact(nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no series"))
}

func TestAutomataComparison(t *testing.T) {
	rep := testReport(t)
	scatter := []XYSeries{
		{Algorithm: "NFA", Points: []XY{{X: 0.5, Y: 8}, {X: 1, Y: 12}}},
		{Algorithm: "DFA", Points: []XY{{X: 5, Y: 0.5}, {X: 0, Y: 3}}}, // zero X dropped (log scale)
	}
	totals := []AlgSeries{
		lineSeries("NFA", 9, 13),
		lineSeries("DFA", 6, 4),
	}
	require.NoError(t, rep.AutomataComparison(scatter, totals))
	assertPNG(t, rep, AutomataPNG)
}

func TestAlternation(t *testing.T) {
	rep := testReport(t)
	amorts := []benchcmp.Amortization{
		{Algorithm: "Aho-Corasick", Build: benchagg.Value{Mean: 2, N: 1}, Match: benchagg.Value{Mean: 1, N: 1}, Ratio: 2},
		{Algorithm: "DFA", Build: benchagg.Value{Mean: 8, N: 1}, Match: benchagg.Value{Mean: 0.5, N: 1}, Ratio: 16},
	}
	totals := benchagg.Series{
		{X: 0, Label: "Aho-Corasick", Value: benchagg.Value{Mean: 3, N: 1}},
		{X: 1, Label: "DFA", Value: benchagg.Value{Mean: 8.5, N: 1}},
	}
	require.NoError(t, rep.Alternation(amorts, totals))
	assertPNG(t, rep, AlternationPNG)
}

func TestDecisionPie(t *testing.T) {
	rep := testReport(t)
	dist := []benchcmp.WinnerCount{
		{Algorithm: "DFA", Count: 3},
		{Algorithm: "KMP", Count: 2},
		{Algorithm: "N/A", Count: 1},
	}
	require.NoError(t, rep.DecisionPie(dist))
	assertPNG(t, rep, DecisionPNG)

	require.Error(t, rep.DecisionPie(nil))
}

func TestWriteIndex(t *testing.T) {
	rep := testReport(t)
	err := rep.WriteIndex(IndexData{
		Title:  "report",
		Source: "performance.csv",
		Charts: []IndexChart{{File: LiteralPNG, Caption: "literal comparison"}},
		Decisions: []benchcmp.Decision{
			{Scenario: "Simple Regex - Dot", Winner: "DFA"},
			{Scenario: "Warmup", NoData: true},
		},
	})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(rep.Dir, IndexHTML))
	require.NoError(t, err)
	html := string(b)
	assert.Contains(t, html, "performance.csv")
	assert.Contains(t, html, LiteralPNG)
	assert.Contains(t, html, "<td>DFA</td>")
	assert.Contains(t, html, "no data")
}
