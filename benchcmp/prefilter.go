// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcmp

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"matchperf/benchtab"
)

// A PrefilterPoint pairs the plain and prefiltered mean total time for
// one text size. A side with no measurements is 0 (the pair is still
// emitted); threshold claims like "disable prefiltering under 10 KB"
// are read directly off the GainPct sign across sizes, so partial
// pairs must survive.
type PrefilterPoint struct {
	TextSizeKB float64
	// WithoutMS is the mean total time of the base algorithm.
	WithoutMS float64
	// WithMS is the mean total time of the prefiltered variant.
	WithMS float64
	// GainPct is (WithoutMS-WithMS)/WithoutMS*100. Positive means
	// prefiltering helped, negative means it hurt. It is exactly 0
	// when WithoutMS is 0: with no baseline there is nothing to
	// normalize against.
	GainPct float64
}

// Prefilter pairs the plain and prefiltered variants of baseAlgorithm
// on pattern across every distinct text size of t, ascending. The size
// set is the union of both variants' sizes, so a size measured on only
// one side still yields a point.
func Prefilter(t *benchtab.Table, baseAlgorithm, pattern string) []PrefilterPoint {
	without := make(map[int][]float64)
	with := make(map[int][]float64)

	recs := t.Records()
	for i := range recs {
		r := &recs[i]
		if r.Pattern != pattern || r.Base() != baseAlgorithm {
			continue
		}
		if r.Prefiltered() {
			with[r.TextLength] = append(with[r.TextLength], r.TotalTimeMS)
		} else {
			without[r.TextLength] = append(without[r.TextLength], r.TotalTimeMS)
		}
	}

	seen := make(map[int]bool)
	var sizes []int
	for n := range without {
		if !seen[n] {
			seen[n] = true
			sizes = append(sizes, n)
		}
	}
	for n := range with {
		if !seen[n] {
			seen[n] = true
			sizes = append(sizes, n)
		}
	}
	sort.Ints(sizes)

	out := make([]PrefilterPoint, 0, len(sizes))
	for _, n := range sizes {
		p := PrefilterPoint{TextSizeKB: float64(n) / 1024}
		if xs := without[n]; len(xs) > 0 {
			p.WithoutMS = stats.Mean(xs)
		}
		if xs := with[n]; len(xs) > 0 {
			p.WithMS = stats.Mean(xs)
		}
		if p.WithoutMS > 0 {
			p.GainPct = (p.WithoutMS - p.WithMS) / p.WithoutMS * 100
		}
		out = append(out, p)
	}
	return out
}

// HasPrefiltered reports whether t carries any prefiltered measurement
// of baseAlgorithm on pattern. Callers use it to pick a representative
// pattern before charting.
func HasPrefiltered(t *benchtab.Table, baseAlgorithm, pattern string) bool {
	recs := t.Records()
	for i := range recs {
		r := &recs[i]
		if r.Prefiltered() && r.Base() == baseAlgorithm && r.Pattern == pattern {
			return true
		}
	}
	return false
}
