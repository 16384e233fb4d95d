package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id                TEXT PRIMARY KEY,
		computed_at       TEXT NOT NULL,
		off_client_hours  REAL NOT NULL DEFAULT 0,
		client_work_hours REAL NOT NULL DEFAULT 0,
		travel_hours      REAL NOT NULL DEFAULT 0,
		diagnostics_count INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_computed_at ON runs(computed_at)`,

	`CREATE TABLE IF NOT EXISTS run_days (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		day    TEXT NOT NULL,
		hours  REAL NOT NULL,
		PRIMARY KEY (run_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS run_entries (
		run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		description TEXT NOT NULL,
		start_text  TEXT NOT NULL DEFAULT '',
		end_text    TEXT NOT NULL DEFAULT '',
		hours       REAL NOT NULL,
		PRIMARY KEY (run_id, position)
	)`,
}
