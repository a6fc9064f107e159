// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps a local SQLite history of generation runs: which
// documents were produced, where they went, and the digest of each.
package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/aidottxt/internal/output"
)

const (
	appDir = "aidottxt"
	dbFile = "ledger.db"

	defaultLimit = 20

	// timeLayout is fixed-width so started_at sorts correctly as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// DefaultPath returns the ledger location under the user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locating cache directory: %w", err)
	}
	return filepath.Join(dir, appDir, dbFile), nil
}

// Run is one recorded generation run.
type Run struct {
	ID        string           `json:"id" yaml:"id"`
	StartedAt time.Time        `json:"started_at" yaml:"started_at"`
	OutDir    string           `json:"out_dir" yaml:"out_dir"`
	DryRun    bool             `json:"dry_run" yaml:"dry_run"`
	Formats   []string         `json:"formats" yaml:"formats"`
	Documents []DocumentRecord `json:"documents" yaml:"documents"`
}

// DocumentRecord is one document produced by a run.
type DocumentRecord struct {
	Format string `json:"format" yaml:"format"`
	Path   string `json:"path" yaml:"path"`
	Digest string `json:"digest" yaml:"digest"`
	Bytes  int    `json:"bytes" yaml:"bytes"`
	Status string `json:"status" yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewRun builds a Run with a fresh ID from a write or preview result.
func NewRun(startedAt time.Time, outDir string, dryRun bool, formats []string, result output.WriteResult) Run {
	run := Run{
		ID:        uuid.NewString(),
		StartedAt: startedAt.UTC(),
		OutDir:    outDir,
		DryRun:    dryRun,
		Formats:   formats,
		Documents: make([]DocumentRecord, 0, len(result.Files)),
	}
	for _, f := range result.Files {
		rec := DocumentRecord{
			Format: string(f.Document.Format),
			Path:   f.Document.Path,
			Digest: f.Digest,
			Bytes:  len(f.Document.Content),
			Status: string(f.Status),
		}
		if f.Err != nil {
			rec.Error = f.Err.Error()
		}
		run.Documents = append(run.Documents, rec)
	}
	return run
}

// Store manages the ledger database.
type Store struct {
	db  *sql.DB
	dir string
}

// Open opens or creates the ledger database at path, creating its directory
// and schema as needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := &Store{db: db, dir: dir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			out_dir TEXT NOT NULL,
			dry_run INTEGER NOT NULL,
			formats TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			format TEXT NOT NULL,
			path TEXT NOT NULL,
			digest TEXT NOT NULL,
			bytes INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT,
			PRIMARY KEY (run_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores run and its documents in one transaction.
func (s *Store) Record(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	formatsJSON, _ := json.Marshal(run.Formats)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, out_dir, dry_run, formats) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(timeLayout), run.OutDir, run.DryRun, string(formatsJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (run_id, seq, format, path, digest, bytes, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range run.Documents {
		if _, err := stmt.ExecContext(ctx,
			run.ID, i, d.Format, d.Path, d.Digest, d.Bytes, d.Status, d.Error,
		); err != nil {
			return fmt.Errorf("inserting document %s: %w", d.Path, err)
		}
	}

	return tx.Commit()
}

// Recent returns up to limit runs, newest first, with their documents.
// A non-positive limit uses the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, out_dir, dry_run, formats FROM runs
		 ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var (
			r           Run
			startedAt   string
			formatsJSON string
		)
		if err := rows.Scan(&r.ID, &startedAt, &r.OutDir, &r.DryRun, &formatsJSON); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if r.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, fmt.Errorf("parsing started_at of run %s: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(formatsJSON), &r.Formats); err != nil {
			return nil, fmt.Errorf("decoding formats of run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		docs, err := s.documents(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Documents = docs
	}
	return runs, nil
}

func (s *Store) documents(ctx context.Context, runID string) ([]DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT format, path, digest, bytes, status, COALESCE(error, '')
		 FROM documents WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying documents for run %s: %w", runID, err)
	}
	defer rows.Close()

	docs := []DocumentRecord{}
	for rows.Next() {
		var d DocumentRecord
		if err := rows.Scan(&d.Format, &d.Path, &d.Digest, &d.Bytes, &d.Status, &d.Error); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
