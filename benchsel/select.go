// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchsel carves named subsets out of a measurement table.
//
// A Pred matches a single record. Select composes predicates by
// logical AND and returns a new table; the input table is never
// modified. Selecting with no predicates is the identity.
package benchsel

import (
	"strings"

	"matchperf/benchtab"
)

// A Pred reports whether a record belongs to a selection.
type Pred func(r *benchtab.Record) bool

// Select returns the records of t matching every predicate, in input
// order. With no predicates it returns a table with the same rows as t.
func Select(t *benchtab.Table, preds ...Pred) *benchtab.Table {
	recs := t.Records()
	out := make([]benchtab.Record, 0, len(recs))
	p := And(preds...)
	for i := range recs {
		if p(&recs[i]) {
			out = append(out, recs[i])
		}
	}
	return benchtab.NewTable(out)
}

// And matches records matching every predicate. With no predicates it
// matches everything.
func And(preds ...Pred) Pred {
	return func(r *benchtab.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or matches records matching at least one predicate. With no
// predicates it matches nothing.
func Or(preds ...Pred) Pred {
	return func(r *benchtab.Record) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Pred) Pred {
	return func(r *benchtab.Record) bool {
		return !p(r)
	}
}

// AlgorithmIn matches records whose exact algorithm name (including any
// prefilter suffix) is one of names.
func AlgorithmIn(names ...string) Pred {
	set := stringSet(names)
	return func(r *benchtab.Record) bool {
		return set[r.Algorithm]
	}
}

// BaseAlgorithm matches records whose algorithm, with any prefilter
// suffix removed, equals name.
func BaseAlgorithm(name string) Pred {
	return func(r *benchtab.Record) bool {
		return r.Base() == name
	}
}

// PatternIn matches records whose pattern is one of patterns.
func PatternIn(patterns ...string) Pred {
	set := stringSet(patterns)
	return func(r *benchtab.Record) bool {
		return set[r.Pattern]
	}
}

// PatternIs matches records testing exactly pattern.
func PatternIs(pattern string) Pred {
	return func(r *benchtab.Record) bool {
		return r.Pattern == pattern
	}
}

// ScenarioIn matches records whose scenario label is one of scenarios.
func ScenarioIn(scenarios ...string) Pred {
	set := stringSet(scenarios)
	return func(r *benchtab.Record) bool {
		return set[r.Scenario]
	}
}

// ScenarioContains matches on a scenario label substring. Prefer Class
// where a typed category exists; this remains for ad-hoc slicing.
func ScenarioContains(sub string) Pred {
	return func(r *benchtab.Record) bool {
		return strings.Contains(r.Scenario, sub)
	}
}

// Class matches records whose scenario class carries every marker in
// mask.
func Class(mask benchtab.ScenarioClass) Pred {
	return func(r *benchtab.Record) bool {
		return r.Class.Has(mask)
	}
}

// ExcludePrefiltered matches records of base algorithms only.
func ExcludePrefiltered() Pred {
	return func(r *benchtab.Record) bool {
		return !r.Prefiltered()
	}
}

// PrefilteredOnly matches records of prefiltered variants only.
func PrefilteredOnly() Pred {
	return func(r *benchtab.Record) bool {
		return r.Prefiltered()
	}
}

// HasStructure matches records with a measured structure size. Zero is
// the "not measured" sentinel, so such rows carry no structure data.
func HasStructure() Pred {
	return func(r *benchtab.Record) bool {
		return r.StructureSizeKB > 0
	}
}

func stringSet(ss []string) map[string]bool {
	set := make(map[string]bool, len(ss))
	for _, s := range ss {
		set[s] = true
	}
	return set
}
