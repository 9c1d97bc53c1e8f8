// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchsel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchperf/benchtab"
)

func rec(algo, scenario, pattern string) benchtab.Record {
	return benchtab.Record{
		Algorithm: algo,
		Scenario:  scenario,
		Class:     benchtab.ParseScenarioClass(scenario),
		Pattern:   pattern,
	}
}

func testTable() *benchtab.Table {
	return benchtab.NewTable([]benchtab.Record{
		rec("KMP", "Short Literal - Small Text", "abc"),
		rec("Boyer-Moore", "Short Literal - Small Text", "abc"),
		rec("NFA", "Simple Regex - Dot", "a.c"),
		rec("NFA (with prefilter)", "Simple Regex - Dot", "a.c"),
		rec("DFA", "Complex Regex - Alternation", "cat|dog"),
	})
}

func TestSelectIdentity(t *testing.T) {
	tbl := testTable()
	got := Select(tbl)
	require.Equal(t, tbl.Len(), got.Len())
	for i := 0; i < tbl.Len(); i++ {
		assert.Equal(t, tbl.Rec(i), got.Rec(i))
	}
}

func TestSelectAnd(t *testing.T) {
	got := Select(testTable(),
		Class(benchtab.ClassRegex),
		ExcludePrefiltered(),
	)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "NFA", got.Rec(0).Algorithm)
	assert.Equal(t, "DFA", got.Rec(1).Algorithm)
}

func TestSelectPreservesOrder(t *testing.T) {
	got := Select(testTable(), Class(benchtab.ClassLiteral))
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "KMP", got.Rec(0).Algorithm)
	assert.Equal(t, "Boyer-Moore", got.Rec(1).Algorithm)
}

func TestAlgorithmIn(t *testing.T) {
	got := Select(testTable(), AlgorithmIn("KMP", "DFA"))
	require.Equal(t, 2, got.Len())
	// The exact name must match; the prefiltered NFA variant is not "NFA".
	got = Select(testTable(), AlgorithmIn("NFA"))
	require.Equal(t, 1, got.Len())
	assert.False(t, got.Rec(0).Prefiltered())
}

func TestBaseAlgorithm(t *testing.T) {
	got := Select(testTable(), BaseAlgorithm("NFA"))
	require.Equal(t, 2, got.Len())
	assert.False(t, got.Rec(0).Prefiltered())
	assert.True(t, got.Rec(1).Prefiltered())
}

func TestOrNot(t *testing.T) {
	got := Select(testTable(), Or(PatternIs("abc"), PatternIs("cat|dog")))
	assert.Equal(t, 3, got.Len())

	got = Select(testTable(), Not(Class(benchtab.ClassLiteral)))
	assert.Equal(t, 3, got.Len())

	// Empty Or matches nothing.
	got = Select(testTable(), Or())
	assert.Equal(t, 0, got.Len())
}

func TestPrefilteredOnly(t *testing.T) {
	got := Select(testTable(), PrefilteredOnly())
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "NFA (with prefilter)", got.Rec(0).Algorithm)
}

func TestHasStructure(t *testing.T) {
	tbl := benchtab.NewTable([]benchtab.Record{
		{Algorithm: "KMP", StructureSizeKB: 0},
		{Algorithm: "NFA", StructureSizeKB: 1.5},
	})
	got := Select(tbl, HasStructure())
	require.Equal(t, 1, got.Len())
	assert.Equal(t, "NFA", got.Rec(0).Algorithm)
}

func TestScenarioPreds(t *testing.T) {
	got := Select(testTable(), ScenarioIn("Simple Regex - Dot"))
	assert.Equal(t, 2, got.Len())

	got = Select(testTable(), ScenarioContains("Alternation"))
	assert.Equal(t, 1, got.Len())
}
