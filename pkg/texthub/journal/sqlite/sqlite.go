package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/texthub/pkg/texthub/journal"
)

// sqliteJournal implements journal.Journal using SQLite.
type sqliteJournal struct {
	db *sql.DB
}

// Open opens a SQLite-backed journal at path with WAL mode enabled.
func Open(ctx context.Context, path string) (journal.Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteJournal{db: db}, nil
}

// Close closes the database connection.
func (j *sqliteJournal) Close() error {
	return j.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	unit TEXT NOT NULL,
	input TEXT,
	result_json TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_unit ON runs(unit);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Append stores one run.
func (j *sqliteJournal) Append(ctx context.Context, r journal.Run) error {
	resultJSON, err := json.Marshal(r.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = j.db.ExecContext(ctx, `
		INSERT INTO runs (id, unit, input, result_json, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.ID, r.Unit, r.Input, string(resultJSON), r.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// Recent returns up to limit runs, newest first.
func (j *sqliteJournal) Recent(ctx context.Context, limit int) ([]journal.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, unit, input, result_json, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

// ByUnit returns up to limit runs for one unit, newest first.
func (j *sqliteJournal) ByUnit(ctx context.Context, unit string, limit int) ([]journal.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, unit, input, result_json, created_at
		FROM runs
		WHERE unit = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, unit, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]journal.Run, error) {
	var runs []journal.Run
	for rows.Next() {
		var r journal.Run
		var resultJSON, createdAt string
		if err := rows.Scan(&r.ID, &r.Unit, &r.Input, &resultJSON, &createdAt); err != nil {
			return nil, err
		}
		if resultJSON != "" && resultJSON != "null" {
			if err := json.Unmarshal([]byte(resultJSON), &r.Result); err != nil {
				return nil, fmt.Errorf("unmarshal result: %w", err)
			}
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		r.CreatedAt = ts
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
