// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcmp derives comparison artifacts from a measurement
// table: the per-scenario decision matrix, prefiltering gain/loss per
// text size, and construction-cost amortization per algorithm.
package benchcmp

import (
	"sort"

	"matchperf/benchagg"
	"matchperf/benchtab"
)

// NoDataLabel stands in for a winner when a scenario has no candidate
// rows. Distribution counts such scenarios under this label so that
// entry counts stay accurate.
const NoDataLabel = "N/A"

// A Decision names the empirically fastest algorithm for one scenario.
type Decision struct {
	Scenario string
	// Winner is the algorithm minimizing mean-independent TotalTimeMS
	// among non-prefiltered rows. It is unset when NoData is true.
	Winner string
	// NoData marks a scenario with no candidate rows. The entry is
	// still emitted, never silently omitted.
	NoData bool
}

// DecisionMatrix selects the fastest algorithm for every distinct
// scenario of t, in first-seen scenario order.
//
// Scenarios whose class carries the prefilter marker are dedicated
// prefilter runs and are not part of the matrix; within the remaining
// scenarios, prefiltered algorithm variants are never candidates for
// "overall best". The winner is the row with minimum TotalTimeMS; the
// scan compares with strict less-than, so on an exact tie the row
// appearing first in input order wins. That tie-break is deliberate and
// locked by tests; change the comparison, not the iteration order.
func DecisionMatrix(t *benchtab.Table) []Decision {
	type best struct {
		winner string
		total  float64
		has    bool
	}

	var order []string
	bests := make(map[string]*best)
	recs := t.Records()
	for i := range recs {
		r := &recs[i]
		if r.Class.Has(benchtab.ClassPrefilter) {
			continue
		}
		b := bests[r.Scenario]
		if b == nil {
			b = new(best)
			bests[r.Scenario] = b
			order = append(order, r.Scenario)
		}
		if r.Prefiltered() {
			continue
		}
		if !b.has || r.TotalTimeMS < b.total {
			b.has = true
			b.winner = r.Algorithm
			b.total = r.TotalTimeMS
		}
	}

	out := make([]Decision, 0, len(order))
	for _, scenario := range order {
		b := bests[scenario]
		if !b.has {
			out = append(out, Decision{Scenario: scenario, NoData: true})
			continue
		}
		out = append(out, Decision{Scenario: scenario, Winner: b.winner})
	}
	return out
}

// A WinnerCount is one slice of the winner distribution.
type WinnerCount struct {
	Algorithm string
	Count     int
}

// Distribution counts how many scenarios each algorithm wins,
// descending by count; equal counts keep first-seen order. NoData
// entries are counted under NoDataLabel so the counts sum to the
// number of decisions.
func Distribution(decisions []Decision) []WinnerCount {
	counts := make(map[string]int)
	var order []string
	for _, d := range decisions {
		name := d.Winner
		if d.NoData {
			name = NoDataLabel
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	out := make([]WinnerCount, 0, len(order))
	for _, name := range order {
		out = append(out, WinnerCount{Algorithm: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// An Amortization summarizes the construction-versus-matching trade-off
// for one algorithm.
type Amortization struct {
	Algorithm string
	Build     benchagg.Value
	Match     benchagg.Value
	// Ratio is mean build time over mean match time: how many matching
	// runs one construction costs. It is 0 when the match mean is
	// undefined or 0.
	Ratio float64
}

// Amortize reduces build and match time per algorithm, in the given
// order. Algorithms absent from t still produce an entry with
// undefined values.
func Amortize(t *benchtab.Table, algorithms []string) []Amortization {
	builds := benchagg.MeanBy(t, benchagg.ByAlgorithm, benchagg.BuildTime, algorithms)
	matches := benchagg.MeanBy(t, benchagg.ByAlgorithm, benchagg.MatchTime, algorithms)

	out := make([]Amortization, len(algorithms))
	for i, name := range algorithms {
		a := Amortization{
			Algorithm: name,
			Build:     builds[i].Value,
			Match:     matches[i].Value,
		}
		if a.Match.Defined() && a.Match.Mean > 0 {
			a.Ratio = a.Build.Float() / a.Match.Mean
		}
		out[i] = a
	}
	return out
}
