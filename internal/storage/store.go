// Package storage keeps a local log of generation runs and the events each
// run delivered. The log is informational: failures here are warnings for
// the caller to surface, never reasons to abort a run.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Evaaaz/calendar-reminder-app/internal/sink"
)

// Run is one recorded generation pass.
type Run struct {
	ID        int64
	StartedAt time.Time
	Source    string
	Generated int
	Delivered int
	DryRun    bool
}

// Store is a SQLite-backed run log.
type Store struct {
	path string
	db   *sql.DB
}

// New opens (creating if needed) the run log at path.
func New(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}

	s := &Store{path: path, db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate run log: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME NOT NULL,
			source TEXT NOT NULL,
			generated INTEGER NOT NULL,
			delivered INTEGER NOT NULL,
			dry_run INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS delivered_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL,
			uid TEXT,
			path TEXT,
			summary TEXT NOT NULL,
			event_date TEXT NOT NULL,
			FOREIGN KEY (run_id) REFERENCES runs(id)
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun stores one run and its delivered events, returning the run ID.
func (s *Store) RecordRun(run Run, delivered []sink.Delivered) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (started_at, source, generated, delivered, dry_run) VALUES (?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339), run.Source, run.Generated, run.Delivered, run.DryRun,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, d := range delivered {
		if _, err := tx.Exec(
			`INSERT INTO delivered_events (run_id, uid, path, summary, event_date) VALUES (?, ?, ?, ?, ?)`,
			runID, d.UID, d.Path, d.Summary, d.Date,
		); err != nil {
			return 0, fmt.Errorf("insert delivered event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, source, generated, delivered, dry_run
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &startedAt, &r.Source, &r.Generated, &r.Delivered, &r.DryRun); err != nil {
			return nil, err
		}
		r.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DeliveredEvents returns the events recorded for one run.
func (s *Store) DeliveredEvents(runID int64) ([]sink.Delivered, error) {
	rows, err := s.db.Query(
		`SELECT uid, path, summary, event_date FROM delivered_events WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []sink.Delivered
	for rows.Next() {
		var d sink.Delivered
		if err := rows.Scan(&d.UID, &d.Path, &d.Summary, &d.Date); err != nil {
			return nil, err
		}
		events = append(events, d)
	}
	return events, rows.Err()
}
