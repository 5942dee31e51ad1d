// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

// csvHeader is the fixed output column order.
var csvHeader = []string{
	"PubmedID", "Title", "Publication Date",
	"Non-academic Author(s)", "Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes records as CSV to w, header first. List columns join
// their values with "; "; a missing email renders as "Not available".
func WriteCSV(records []types.PaperRecord, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PMID,
			r.Title,
			r.PubDate,
			strings.Join(r.NonAcademicAuthors, "; "),
			strings.Join(r.CompanyAffiliations, "; "),
			valueOr(r.CorrespondingEmail, noEmail),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PMID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// SaveCSV writes records to a CSV file, creating or truncating it.
func SaveCSV(records []types.PaperRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	if err := WriteCSV(records, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing CSV file: %w", err)
	}
	return nil
}
