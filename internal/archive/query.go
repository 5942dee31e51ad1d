// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

const defaultMaxHits = 20

// ListRuns returns archived runs, most recent first. A limit of zero or
// less returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(`SELECT id, query, started, max_results, found, kept
		FROM runs ORDER BY started DESC`)
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			started string
		)
		if err := rows.Scan(&r.ID, &r.Query, &started, &r.MaxResults, &r.Found, &r.Kept); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
			r.Started = t
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// Records returns the kept papers for a run in the order they were
// archived, which preserves PubMed's relevance ordering.
func (s *Store) Records(ctx context.Context, runID string) ([]types.PaperRecord, error) {
	var query string
	err := s.db.QueryRowContext(ctx,
		`SELECT query FROM runs WHERE id = ?`, runID,
	).Scan(&query)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run %s not found", runID)
		}
		return nil, fmt.Errorf("looking up run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pmid, title, pub_date, authors, companies, email
		 FROM records WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []types.PaperRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CompanyHit is an archived record matched by company search, together
// with the run it belongs to.
type CompanyHit struct {
	types.PaperRecord
	RunID string `json:"run_id" yaml:"run_id"`
}

// FindByCompany returns archived records whose company affiliations
// contain substr, matched case-insensitively. A limit of zero or less
// applies the default cap.
func (s *Store) FindByCompany(ctx context.Context, substr string, limit int) ([]CompanyHit, error) {
	substr = strings.TrimSpace(substr)
	if substr == "" {
		return nil, fmt.Errorf("company search term is empty")
	}
	if limit <= 0 {
		limit = defaultMaxHits
	}

	pattern := "%" + strings.ToLower(substr) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, pmid, title, pub_date, authors, companies, email
		 FROM records WHERE lower(companies) LIKE ?
		 ORDER BY run_id, rowid LIMIT ?`,
		pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var hits []CompanyHit
	for rows.Next() {
		var (
			hit           CompanyHit
			authorsJSON   sql.NullString
			companiesJSON sql.NullString
			email         sql.NullString
		)
		if err := rows.Scan(&hit.RunID, &hit.PMID, &hit.Title, &hit.PubDate,
			&authorsJSON, &companiesJSON, &email); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		fillRecord(&hit.PaperRecord, authorsJSON, companiesJSON, email)
		hits = append(hits, hit)
	}

	return hits, rows.Err()
}

func scanRecord(rows *sql.Rows) (types.PaperRecord, error) {
	var (
		rec           types.PaperRecord
		authorsJSON   sql.NullString
		companiesJSON sql.NullString
		email         sql.NullString
	)

	if err := rows.Scan(&rec.PMID, &rec.Title, &rec.PubDate, &authorsJSON, &companiesJSON, &email); err != nil {
		return types.PaperRecord{}, fmt.Errorf("scanning record: %w", err)
	}

	fillRecord(&rec, authorsJSON, companiesJSON, email)
	return rec, nil
}

func fillRecord(rec *types.PaperRecord, authorsJSON, companiesJSON, email sql.NullString) {
	if authorsJSON.Valid {
		json.Unmarshal([]byte(authorsJSON.String), &rec.NonAcademicAuthors)
	}
	if companiesJSON.Valid {
		json.Unmarshal([]byte(companiesJSON.String), &rec.CompanyAffiliations)
	}
	if email.Valid {
		rec.CorrespondingEmail = email.String
	}
}

