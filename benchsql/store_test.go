// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchsql

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchperf/benchtab"
)

func testTable() *benchtab.Table {
	return benchtab.NewTable([]benchtab.Record{
		{
			Algorithm: "KMP", Scenario: "Short Literal - Small Text",
			Class: benchtab.ClassLiteral, Pattern: "abc", TextLength: 1024,
			BuildTimeMS: 0.1, MatchTimeMS: 5.0, TotalTimeMS: 5.1,
			MemoryUsedKB: 12.5,
		},
		{
			Algorithm: "NFA", Scenario: "Simple Regex - Dot",
			Class: benchtab.ClassRegex, Pattern: "a.c", TextLength: 5120,
			BuildTimeMS: 2.0, MatchTimeMS: 8.0, TotalTimeMS: 10.0,
			StructureSizeKB: 1.5, StructureNodes: 12,
		},
	})
}

func TestSaveAndCount(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "matchperf.db")

	require.NoError(t, Save(ctx, path, testTable()))
	n, err := Count(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var algo, class string
	var nodes int
	err = db.QueryRowContext(ctx,
		"SELECT algorithm, scenario_class, structure_nodes FROM measurement WHERE pattern = ?", "a.c",
	).Scan(&algo, &class, &nodes)
	require.NoError(t, err)
	assert.Equal(t, "NFA", algo)
	assert.Equal(t, "regex", class)
	assert.Equal(t, 12, nodes)
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "matchperf.db")

	require.NoError(t, Save(ctx, path, testTable()))
	require.NoError(t, Save(ctx, path, testTable()))

	n, err := Count(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
