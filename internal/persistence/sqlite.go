// Package persistence implements the coordinator's best-effort job
// summary sink (spec.md §6 "Persistence sink interface", §4.3 step 6).
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/flowstack/mrword/internal/coordinator"
)

// SQLiteSink persists job summaries to a local SQLite file. It satisfies
// coordinator.Sink.
type SQLiteSink struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at path, enables WAL mode,
// and ensures the job_summaries table exists.
func Open(path string) (*SQLiteSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("persistence: create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("persistence: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: ping: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS job_summaries (
	job_id      TEXT PRIMARY KEY,
	text_length INTEGER NOT NULL,
	num_shards  INTEGER NOT NULL,
	status      TEXT NOT NULL,
	created_at  DATETIME NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: migrate: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSink) Close() error { return s.db.Close() }

// InsertJobSummary implements coordinator.Sink.
func (s *SQLiteSink) InsertJobSummary(ctx context.Context, summary coordinator.JobSummary) error {
	const stmt = `
INSERT INTO job_summaries (job_id, text_length, num_shards, status, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(job_id) DO UPDATE SET
	text_length = excluded.text_length,
	num_shards  = excluded.num_shards,
	status      = excluded.status,
	created_at  = excluded.created_at;`

	_, err := s.db.ExecContext(ctx, stmt,
		summary.JobID, summary.TextLength, summary.NumShards, summary.Status, summary.CreatedAt)
	if err != nil {
		return fmt.Errorf("persistence: insert job summary: %w", err)
	}
	return nil
}
