// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import "github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"

// Placeholders substituted for absent source fields. Missing data renders
// as a placeholder, never as an error.
const (
	noTitle     = "No title"
	unknownDate = "Unknown"
	noEmail     = "Not available"
)

// FormatDate renders a publication date as "year-month-day" with whatever
// components the source supplied: a missing year becomes "Unknown", missing
// month or day stay empty (so year-only dates render as "2023--"). A paper
// with no date at all renders as "Unknown".
func FormatDate(d *types.PubDate) string {
	if d == nil {
		return unknownDate
	}
	year := d.Year
	if year == "" {
		year = unknownDate
	}
	return year + "-" + d.Month + "-" + d.Day
}

// BuildRecord turns a fetched paper and its author resolution into an
// output record. It returns nil when the resolution carries no company
// affiliations: that is the single inclusion gate for the whole pipeline.
func BuildRecord(raw *types.RawPaper, res Resolution) *types.PaperRecord {
	if len(res.CompanyAffiliations) == 0 {
		return nil
	}
	title := raw.Title
	if title == "" {
		title = noTitle
	}
	return &types.PaperRecord{
		PMID:                raw.PMID,
		Title:               title,
		PubDate:             FormatDate(raw.Date),
		NonAcademicAuthors:  res.NonAcademicAuthors,
		CompanyAffiliations: res.CompanyAffiliations,
		CorrespondingEmail:  res.Email,
	}
}
