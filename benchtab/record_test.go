// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefiltered(t *testing.T) {
	r := Record{Algorithm: "NFA (with prefilter)"}
	assert.True(t, r.Prefiltered())
	assert.Equal(t, "NFA", r.Base())

	r = Record{Algorithm: "NFA"}
	assert.False(t, r.Prefiltered())
	assert.Equal(t, "NFA", r.Base())
}

func TestDistinctFirstSeen(t *testing.T) {
	tbl := NewTable([]Record{
		{Algorithm: "KMP", Scenario: "B", Pattern: "x"},
		{Algorithm: "DFA", Scenario: "A", Pattern: "y"},
		{Algorithm: "KMP", Scenario: "B", Pattern: "x"},
		{Algorithm: "NFA", Scenario: "A", Pattern: "z"},
	})
	assert.Equal(t, []string{"KMP", "DFA", "NFA"}, tbl.Algorithms())
	assert.Equal(t, []string{"B", "A"}, tbl.Scenarios())
	assert.Equal(t, []string{"x", "y", "z"}, tbl.Patterns())
}

func TestParseScenarioClass(t *testing.T) {
	tests := []struct {
		scenario string
		want     ScenarioClass
	}{
		{"Short Literal - Small Text", ClassLiteral},
		{"Long Literal - Large Text", ClassLiteral},
		{"Simple Regex - Dot", ClassRegex},
		{"Complex Regex - Alternation", ClassRegex | ClassAlternation},
		{"Regex - prefilter sweep", ClassRegex | ClassPrefilter},
		{"Prefilter calibration", ClassPrefilter},
		{"Warmup", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseScenarioClass(tt.scenario), "scenario %q", tt.scenario)
	}
}

func TestScenarioClassHas(t *testing.T) {
	c := ClassRegex | ClassAlternation
	assert.True(t, c.Has(ClassRegex))
	assert.True(t, c.Has(ClassRegex|ClassAlternation))
	assert.False(t, c.Has(ClassLiteral))
	assert.False(t, c.Has(ClassRegex|ClassPrefilter))
}

func TestScenarioClassString(t *testing.T) {
	assert.Equal(t, "other", ScenarioClass(0).String())
	assert.Equal(t, "literal", ClassLiteral.String())
	assert.Equal(t, "regex|alternation", (ClassRegex | ClassAlternation).String())
}
