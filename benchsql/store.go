// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchsql archives a normalized measurement table into a
// SQLite database for ad-hoc querying outside the report pipeline.
package benchsql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"matchperf/benchtab"
)

const schema = `
CREATE TABLE IF NOT EXISTS measurement (
	algorithm TEXT NOT NULL,
	scenario TEXT NOT NULL,
	scenario_class TEXT NOT NULL,
	pattern TEXT NOT NULL,
	text_length INTEGER NOT NULL,
	build_time_ms REAL NOT NULL,
	match_time_ms REAL NOT NULL,
	total_time_ms REAL NOT NULL,
	memory_used_kb REAL NOT NULL,
	structure_size_kb REAL NOT NULL,
	structure_nodes INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS measurement_scenario_idx ON measurement(scenario);
CREATE INDEX IF NOT EXISTS measurement_algorithm_idx ON measurement(algorithm);
`

// Save replaces the measurement table of the database at path with the
// records of t. The operation is idempotent: saving an unchanged table
// twice leaves identical rows.
func Save(ctx context.Context, path string, t *benchtab.Table) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM measurement"); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO measurement (
			algorithm, scenario, scenario_class, pattern, text_length,
			build_time_ms, match_time_ms, total_time_ms,
			memory_used_kb, structure_size_kb, structure_nodes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range t.Records() {
		_, err := stmt.ExecContext(ctx,
			r.Algorithm, r.Scenario, r.Class.String(), r.Pattern, r.TextLength,
			r.BuildTimeMS, r.MatchTimeMS, r.TotalTimeMS,
			r.MemoryUsedKB, r.StructureSizeKB, r.StructureNodes,
		)
		if err != nil {
			return fmt.Errorf("insert measurement: %w", err)
		}
	}
	return tx.Commit()
}

// Count returns the number of archived measurements.
func Count(ctx context.Context, path string) (int, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	var n int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM measurement").Scan(&n)
	return n, err
}
