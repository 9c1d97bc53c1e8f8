// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchagg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchperf/benchtab"
)

func TestMean(t *testing.T) {
	tbl := benchtab.NewTable([]benchtab.Record{
		{Pattern: "abcde", MatchTimeMS: 4.0},
		{Pattern: "ab", MatchTimeMS: 1.0},
		{Pattern: "xy", MatchTimeMS: 3.0},
		{Pattern: "fghij", MatchTimeMS: 6.0},
	})
	s := Mean(tbl, ByPatternLen, MatchTime)
	require.Len(t, s, 2)

	// Numeric keys come out ascending regardless of input order.
	assert.Equal(t, 2.0, s[0].X)
	assert.Equal(t, 2.0, s[0].Value.Mean)
	assert.Equal(t, 2, s[0].Value.N)
	assert.Equal(t, 5.0, s[1].X)
	assert.Equal(t, 5.0, s[1].Value.Mean)
}

func TestMeanRowOrderInvariant(t *testing.T) {
	recs := []benchtab.Record{
		{Pattern: "ab", MatchTimeMS: 1.0},
		{Pattern: "abcde", MatchTimeMS: 4.0},
		{Pattern: "ab", MatchTimeMS: 3.0},
	}
	fwd := Mean(benchtab.NewTable(recs), ByPatternLen, MatchTime)

	rev := make([]benchtab.Record, len(recs))
	for i, r := range recs {
		rev[len(recs)-1-i] = r
	}
	bwd := Mean(benchtab.NewTable(rev), ByPatternLen, MatchTime)

	assert.Equal(t, fwd, bwd)
}

func TestMeanBy(t *testing.T) {
	tbl := benchtab.NewTable([]benchtab.Record{
		{Algorithm: "DFA", TotalTimeMS: 4.0},
		{Algorithm: "KMP", TotalTimeMS: 2.0},
		{Algorithm: "KMP", TotalTimeMS: 4.0},
	})
	s := MeanBy(tbl, ByAlgorithm, TotalTime, []string{"KMP", "NFA", "DFA"})
	require.Len(t, s, 3)

	// Request order, not data order.
	assert.Equal(t, "KMP", s[0].Label)
	assert.Equal(t, 3.0, s[0].Value.Mean)
	assert.Equal(t, 2, s[0].Value.N)

	// A requested key with no records is an undefined point, not a gap.
	assert.Equal(t, "NFA", s[1].Label)
	assert.False(t, s[1].Value.Defined())
	assert.Equal(t, 0.0, s[1].Value.Float())

	assert.Equal(t, "DFA", s[2].Label)
	assert.Equal(t, 4.0, s[2].Value.Mean)

	assert.Equal(t, []float64{3, 0, 4}, s.Values())
	assert.Equal(t, []string{"KMP", "NFA", "DFA"}, s.Labels())
}

func TestMeanByEmptyTable(t *testing.T) {
	s := MeanBy(benchtab.NewTable(nil), ByAlgorithm, TotalTime, []string{"KMP", "DFA"})
	require.Len(t, s, 2)
	for _, p := range s {
		assert.False(t, p.Value.Defined())
	}
}

func TestValueZeroVsUndefined(t *testing.T) {
	// A measured zero and "no data" flatten identically but are
	// distinguishable through Defined.
	measured := Value{Mean: 0, N: 3}
	missing := Value{}
	assert.Equal(t, measured.Float(), missing.Float())
	assert.True(t, measured.Defined())
	assert.False(t, missing.Defined())
}
