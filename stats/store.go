// Package stats persists run results and the all-time high score in a
// local SQLite database. Persistence failures are reported to the caller
// and are never fatal to an in-progress or just-ended game.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	played_at   TEXT NOT NULL,
	score       INTEGER NOT NULL,
	ticks       INTEGER NOT NULL,
	cause       TEXT NOT NULL,
	layout      TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	duration_ms INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
`

// RunRecord is one finished simulation run.
type RunRecord struct {
	ID         string
	PlayedAt   time.Time
	Score      int
	Ticks      uint64
	Cause      string
	Layout     string
	Difficulty string
	Duration   time.Duration
}

// Store is a single-connection SQLite store for run history.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path, creating parent directories
// as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// RecordRun inserts one run. A missing ID gets a fresh uuid; a zero
// PlayedAt gets the current time.
func (s *Store) RecordRun(rec RunRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, played_at, score, ticks, cause, layout, difficulty, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.PlayedAt.UTC().Format(time.RFC3339Nano),
		rec.Score,
		rec.Ticks,
		rec.Cause,
		rec.Layout,
		rec.Difficulty,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// HighScore returns the best recorded score, zero when no runs exist.
func (s *Store) HighScore() (int, error) {
	var high int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM runs`).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("high score: %w", err)
	}
	return high, nil
}

// History returns up to limit runs, best score first.
func (s *Store) History(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, played_at, score, ticks, cause, layout, difficulty, duration_ms
		 FROM runs ORDER BY score DESC, played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var playedAt string
		var durationMS int64
		if err := rows.Scan(&rec.ID, &playedAt, &rec.Score, &rec.Ticks, &rec.Cause, &rec.Layout, &rec.Difficulty, &durationMS); err != nil {
			return nil, err
		}
		rec.PlayedAt, _ = time.Parse(time.RFC3339Nano, playedAt)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
