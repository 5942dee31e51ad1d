package screen

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

// FormatConsole writes records to w as numbered human-readable blocks.
func FormatConsole(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found with the specified criteria")
		return
	}
	for i, r := range records {
		fmt.Fprintf(w, "\nPaper %d:\n", i+1)
		fmt.Fprintf(w, "PubMed ID: %s\n", r.PMID)
		fmt.Fprintf(w, "Title: %s\n", r.Title)
		fmt.Fprintf(w, "Publication Date: %s\n", r.PubDate)
		fmt.Fprintf(w, "Non-academic Authors: %s\n", valueOr(strings.Join(r.NonAcademicAuthors, "; "), "None"))
		fmt.Fprintf(w, "Company Affiliations: %s\n", strings.Join(r.CompanyAffiliations, "; "))
		fmt.Fprintf(w, "Corresponding Author Email: %s\n", valueOr(r.CorrespondingEmail, noEmail))
	}
	fmt.Fprintf(w, "\nTotal papers found: %d\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.PaperRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
