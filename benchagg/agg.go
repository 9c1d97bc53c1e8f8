// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchagg groups measurement records by a key and reduces a
// numeric column to its mean.
//
// Both entry points are deterministic: for a fixed table and fixed
// arguments they return an identical series, and the result is
// invariant to input row order. Numeric keys are emitted in ascending
// order; categorical keys are emitted in the caller's requested order,
// with a requested key that matched no records yielding an undefined
// (zero-valued) point rather than an error.
package benchagg

import (
	"sort"
	"strconv"

	"github.com/aclements/go-moremath/stats"

	"matchperf/benchtab"
)

// A MetricFunc extracts the numeric column to reduce.
type MetricFunc func(r *benchtab.Record) float64

// Metric columns.
var (
	BuildTime      MetricFunc = func(r *benchtab.Record) float64 { return r.BuildTimeMS }
	MatchTime      MetricFunc = func(r *benchtab.Record) float64 { return r.MatchTimeMS }
	TotalTime      MetricFunc = func(r *benchtab.Record) float64 { return r.TotalTimeMS }
	MemoryUsed     MetricFunc = func(r *benchtab.Record) float64 { return r.MemoryUsedKB }
	StructureSize  MetricFunc = func(r *benchtab.Record) float64 { return r.StructureSizeKB }
	StructureNodes MetricFunc = func(r *benchtab.Record) float64 { return float64(r.StructureNodes) }
)

// A NumFunc extracts a numeric group key.
type NumFunc func(r *benchtab.Record) float64

// A StrFunc extracts a categorical group key.
type StrFunc func(r *benchtab.Record) string

// Group keys.
var (
	ByPatternLen NumFunc = func(r *benchtab.Record) float64 { return float64(r.PatternLen()) }
	ByTextSizeKB NumFunc = func(r *benchtab.Record) float64 { return r.TextSizeKB() }
	ByAlgorithm  StrFunc = func(r *benchtab.Record) string { return r.Algorithm }
	ByScenario   StrFunc = func(r *benchtab.Record) string { return r.Scenario }
	ByPattern    StrFunc = func(r *benchtab.Record) string { return r.Pattern }
)

// A Point is one group of a series.
type Point struct {
	// X is the numeric key, or the requested-key index for categorical
	// series.
	X float64
	// Label names the group.
	Label string
	// Value is the reduced metric for the group.
	Value Value
}

// A Series is a (key, value) sequence produced by one aggregation.
type Series []Point

// Values flattens the series to plain numbers (undefined points
// flatten to 0).
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value.Float()
	}
	return out
}

// Labels returns the group labels in series order.
func (s Series) Labels() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.Label
	}
	return out
}

// Mean groups t by a numeric key and reduces metric to its mean per
// group. Points are emitted for every observed key, ascending.
func Mean(t *benchtab.Table, key NumFunc, metric MetricFunc) Series {
	groups := make(map[float64][]float64)
	recs := t.Records()
	for i := range recs {
		k := key(&recs[i])
		groups[k] = append(groups[k], metric(&recs[i]))
	}

	keys := make([]float64, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	s := make(Series, 0, len(keys))
	for _, k := range keys {
		xs := groups[k]
		s = append(s, Point{
			X:     k,
			Label: strconv.FormatFloat(k, 'g', -1, 64),
			Value: Value{Mean: stats.Mean(xs), N: len(xs)},
		})
	}
	return s
}

// MeanBy groups t by a categorical key and reduces metric to its mean
// for each requested key, in request order. A requested key with no
// matching records yields an undefined point whose flattened value is
// 0; it is never dropped, so the series always has len(keys) points.
func MeanBy(t *benchtab.Table, key StrFunc, metric MetricFunc, keys []string) Series {
	groups := make(map[string][]float64)
	recs := t.Records()
	for i := range recs {
		k := key(&recs[i])
		groups[k] = append(groups[k], metric(&recs[i]))
	}

	s := make(Series, 0, len(keys))
	for i, k := range keys {
		p := Point{X: float64(i), Label: k}
		if xs := groups[k]; len(xs) > 0 {
			p.Value = Value{Mean: stats.Mean(xs), N: len(xs)}
		}
		s = append(s, p)
	}
	return s
}
