// Package history persists a summary row per assessment run, so trends
// (line counts, debt markers) are visible across runs without diffing
// old reports.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/codelift/codelift/internal/assess"
)

// DefaultPath is the history database location relative to the scanned
// project root.
const DefaultPath = "docs/modernization/.codelift.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id                TEXT PRIMARY KEY,
	root              TEXT NOT NULL,
	total_files       INTEGER NOT NULL,
	total_lines       INTEGER NOT NULL,
	large_files       INTEGER NOT NULL,
	complex_functions INTEGER NOT NULL,
	todos             INTEGER NOT NULL,
	test_files        INTEGER NOT NULL,
	framework         TEXT NOT NULL,
	created_at        TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Store is the SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Run is one recorded assessment.
type Run struct {
	ID               string
	Root             string
	TotalFiles       int
	TotalLines       int
	LargeFiles       int
	ComplexFunctions int
	Todos            int
	TestFiles        int
	Framework        string
	CreatedAt        time.Time
}

// RecordRun stores a summary row for the report and returns the run ID.
func (s *Store) RecordRun(ctx context.Context, r *assess.Report) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, root, total_files, total_lines, large_files,
			complex_functions, todos, test_files, framework, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.Root, r.TotalFiles, r.TotalLines, len(r.LargeFiles),
		len(r.ComplexFunctions), len(r.Todos), r.TestFiles, r.Framework,
		r.GeneratedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, total_files, total_lines, large_files,
			complex_functions, todos, test_files, framework, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		err := rows.Scan(&r.ID, &r.Root, &r.TotalFiles, &r.TotalLines,
			&r.LargeFiles, &r.ComplexFunctions, &r.Todos, &r.TestFiles,
			&r.Framework, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
