// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab loads pattern-matching benchmark measurements from a
// delimited table and presents them as an immutable record set.
//
// One Record is one benchmark observation: a single algorithm run
// against a single pattern in a single scenario. All derived analyses
// (selection, aggregation, comparison) are pure reads over a Table;
// nothing downstream mutates it.
package benchtab

import "strings"

// prefilterSuffix marks the prefiltered variant of a base algorithm in
// the Algorithm column, e.g. "NFA (with prefilter)".
const prefilterSuffix = " (with prefilter)"

// A Record is a single benchmark measurement.
//
// A zero value in any numeric field is the "not measured" sentinel, not
// an error: the loader coerces missing cells to zero so aggregation
// never sees gaps.
type Record struct {
	// Algorithm is the matcher under test, e.g. "KMP", "Boyer-Moore",
	// "NFA", or a base name suffixed with "(with prefilter)".
	Algorithm string

	// Scenario is the free-text test category combining pattern shape
	// and text-size class, e.g. "Short Literal - Small Text".
	Scenario string

	// Class is the scenario category parsed from Scenario at load
	// time. Selectors match on Class, not on the label text.
	Class ScenarioClass

	// Pattern is the literal or regular expression under test.
	Pattern string

	// TextLength is the size of the input text in bytes.
	TextLength int

	BuildTimeMS float64
	MatchTimeMS float64
	TotalTimeMS float64

	MemoryUsedKB    float64
	StructureSizeKB float64

	// StructureNodes counts the states of the matching structure built
	// for this pattern/algorithm pair. It describes the matcher, not
	// the input, so it is constant across text sizes.
	StructureNodes int
}

// Prefiltered reports whether this measurement ran the prefiltered
// variant of its base algorithm.
func (r Record) Prefiltered() bool {
	return strings.HasSuffix(r.Algorithm, prefilterSuffix)
}

// Base returns the algorithm name with any prefilter suffix removed.
// For non-prefiltered records it is the Algorithm itself.
func (r *Record) Base() string {
	return strings.TrimSuffix(r.Algorithm, prefilterSuffix)
}

// TextSizeKB returns the input text size in kilobytes.
func (r *Record) TextSizeKB() float64 {
	return float64(r.TextLength) / 1024
}

// PatternLen returns the length of the pattern in bytes.
func (r *Record) PatternLen() int {
	return len(r.Pattern)
}

// A Table is an immutable sequence of measurement records in input
// (file) order.
type Table struct {
	recs []Record
}

// NewTable constructs a Table from recs. The Table takes ownership of
// the slice; callers must not modify it afterwards.
func NewTable(recs []Record) *Table {
	return &Table{recs: recs}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.recs)
}

// Rec returns the i'th record, in input order.
func (t *Table) Rec(i int) Record {
	return t.recs[i]
}

// Records returns the records in input order. The returned slice is
// shared with the Table and must be treated as read-only.
func (t *Table) Records() []Record {
	return t.recs
}

// Scenarios returns the distinct scenario labels in first-seen order.
func (t *Table) Scenarios() []string {
	return t.distinct(func(r *Record) string { return r.Scenario })
}

// Algorithms returns the distinct algorithm names in first-seen order,
// including prefiltered variants.
func (t *Table) Algorithms() []string {
	return t.distinct(func(r *Record) string { return r.Algorithm })
}

// Patterns returns the distinct patterns in first-seen order.
func (t *Table) Patterns() []string {
	return t.distinct(func(r *Record) string { return r.Pattern })
}

func (t *Table) distinct(key func(*Record) string) []string {
	var out []string
	seen := make(map[string]bool)
	for i := range t.recs {
		k := key(&t.recs[i])
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
