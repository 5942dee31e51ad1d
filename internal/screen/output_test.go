// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			PMID:                "123",
			Title:               "No title",
			PubDate:             "2023--",
			NonAcademicAuthors:  []string{"Jane Doe"},
			CompanyAffiliations: []string{"Pfizer Inc"},
		},
		{
			PMID:                "456",
			Title:               "Antibody Engineering at Scale",
			PubDate:             "2024-Feb-01",
			NonAcademicAuthors:  []string{"Bob Ray", "Ann Lee"},
			CompanyAffiliations: []string{"Genentech Inc", "Roche Diagnostics"},
			CorrespondingEmail:  "ray@gene.com",
		},
	}
}

// --- CSV ---

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(sampleRecords(), &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header + 2 records", len(rows))
	}

	wantHeader := []string{
		"PubmedID", "Title", "Publication Date",
		"Non-academic Author(s)", "Company Affiliation(s)",
		"Corresponding Author Email",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	// Missing email renders as the placeholder.
	if rows[1][5] != "Not available" {
		t.Errorf("rows[1][5] = %q, want Not available", rows[1][5])
	}
	// List columns join with "; ".
	if rows[2][3] != "Bob Ray; Ann Lee" {
		t.Errorf("rows[2][3] = %q", rows[2][3])
	}
	if rows[2][4] != "Genentech Inc; Roche Diagnostics" {
		t.Errorf("rows[2][4] = %q", rows[2][4])
	}
	if rows[2][5] != "ray@gene.com" {
		t.Errorf("rows[2][5] = %q", rows[2][5])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(nil, &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want header only", len(rows))
	}
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "papers.csv")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := SaveCSV(sampleRecords(), path); err != nil {
		t.Fatalf("SaveCSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved CSV: %v", err)
	}
	if !strings.HasPrefix(string(data), "PubmedID,Title,Publication Date") {
		t.Errorf("saved CSV does not start with header:\n%s", data)
	}
}

func TestSaveCSVBadPath(t *testing.T) {
	err := SaveCSV(sampleRecords(), filepath.Join(t.TempDir(), "missing-dir", "papers.csv"))
	if err == nil {
		t.Fatal("SaveCSV should fail when the directory does not exist")
	}
}

// --- console ---

func TestFormatConsole(t *testing.T) {
	var buf bytes.Buffer
	FormatConsole(sampleRecords(), &buf)
	out := buf.String()

	for _, want := range []string{
		"Paper 1:",
		"PubMed ID: 123",
		"Title: No title",
		"Publication Date: 2023--",
		"Corresponding Author Email: Not available",
		"Paper 2:",
		"Non-academic Authors: Bob Ray; Ann Lee",
		"Company Affiliations: Genentech Inc; Roche Diagnostics",
		"Corresponding Author Email: ray@gene.com",
		"Total papers found: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatConsoleNoAuthors(t *testing.T) {
	records := []types.PaperRecord{{
		PMID:                "7",
		Title:               "Anonymous Industry Paper",
		PubDate:             "Unknown",
		CompanyAffiliations: []string{"Pfizer Inc"},
	}}

	var buf bytes.Buffer
	FormatConsole(records, &buf)
	if !strings.Contains(buf.String(), "Non-academic Authors: None") {
		t.Errorf("empty author list should render as None:\n%s", buf.String())
	}
}

func TestFormatConsoleEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatConsole(nil, &buf)
	if !strings.Contains(buf.String(), "No papers found with the specified criteria") {
		t.Errorf("empty output = %q", buf.String())
	}
}

// --- JSON ---

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleRecords(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []types.PaperRecord
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2", len(parsed))
	}
	if parsed[0].PMID != "123" || parsed[1].CorrespondingEmail != "ray@gene.com" {
		t.Errorf("parsed = %+v", parsed)
	}
}
