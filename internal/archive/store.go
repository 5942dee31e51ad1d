// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists completed search runs and their kept papers
// to a local SQLite database so past results can be listed and queried
// without re-hitting PubMed.
package archive

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

	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

const defaultDBFile = "papers.db"

// Store manages the run archive SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the archive database at cfg.Path, creating
// parent directories and the schema as needed.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dbPath := cfg.Path
	if dbPath == "" {
		dbPath = defaultDBFile
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
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
			query TEXT NOT NULL,
			started TEXT NOT NULL,
			max_results INTEGER,
			found INTEGER,
			kept INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			run_id TEXT NOT NULL REFERENCES runs(id),
			pmid TEXT NOT NULL,
			title TEXT,
			pub_date TEXT,
			authors TEXT,
			companies TEXT,
			email TEXT,
			PRIMARY KEY (run_id, pmid)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// Run describes one archived search run.
type Run struct {
	ID         string    `json:"id" yaml:"id"`
	Query      string    `json:"query" yaml:"query"`
	Started    time.Time `json:"started" yaml:"started"`
	MaxResults int       `json:"max_results" yaml:"max_results"`
	Found      int       `json:"found" yaml:"found"`
	Kept       int       `json:"kept" yaml:"kept"`
}

// SaveRun stores a completed search run and its kept records in a
// single transaction. found is the number of candidate papers examined;
// the kept count is taken from records. It returns the generated run ID.
func (s *Store) SaveRun(ctx context.Context, query string, maxResults, found int, records []types.PaperRecord) (string, error) {
	runID := uuid.NewString()
	started := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, query, started, max_results, found, kept)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, query, started, maxResults, found, len(records),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, pmid, title, pub_date, authors, companies, email)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id, pmid) DO UPDATE SET
			title=excluded.title, pub_date=excluded.pub_date,
			authors=excluded.authors, companies=excluded.companies,
			email=excluded.email`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		authorsJSON, _ := json.Marshal(rec.NonAcademicAuthors)
		companiesJSON, _ := json.Marshal(rec.CompanyAffiliations)
		_, err := stmt.ExecContext(ctx,
			runID, rec.PMID, rec.Title, rec.PubDate,
			string(authorsJSON), string(companiesJSON), rec.CorrespondingEmail,
		)
		if err != nil {
			return "", fmt.Errorf("inserting record %s: %w", rec.PMID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}

	return runID, nil
}
