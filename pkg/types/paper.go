// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PubDate holds the publication date components as PubMed reports them.
// Any component may be empty; rendering applies placeholders, never errors.
type PubDate struct {
	Year  string `json:"year" yaml:"year"`
	Month string `json:"month,omitempty" yaml:"month,omitempty"`
	Day   string `json:"day,omitempty" yaml:"day,omitempty"`
}

// RawAuthor is one author entry from a fetched article, prior to screening.
type RawAuthor struct {
	// ForeName and LastName are the individual name components. Either may
	// be absent; display names are built from whatever is present.
	ForeName string `json:"fore_name,omitempty" yaml:"fore_name,omitempty"`
	LastName string `json:"last_name,omitempty" yaml:"last_name,omitempty"`

	// Collective marks a group author (consortium, working group). Collective
	// entries carry no individual identity and are skipped during screening.
	Collective bool `json:"collective,omitempty" yaml:"collective,omitempty"`

	// Affiliations lists the free-text affiliation strings attached to this
	// author, in source order.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`

	// Email is the author's contact address when the source exposes one.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// RawPaper is the structured metadata for one article as returned by the
// fetch collaborator. Every field except PMID may be absent.
type RawPaper struct {
	// PMID is the PubMed identifier as parsed from the article record.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, empty when the record carries none.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Date is the publication date, nil when the record carries none at all.
	Date *PubDate `json:"date,omitempty" yaml:"date,omitempty"`

	// Authors lists the article authors in source order.
	Authors []RawAuthor `json:"authors,omitempty" yaml:"authors,omitempty"`
}

// PaperRecord is one screened paper: an article with at least one author
// affiliated with a pharmaceutical or biotechnology company. Records are
// built once and not mutated afterwards.
type PaperRecord struct {
	// PMID is the PubMed identifier.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, or the "No title" placeholder.
	Title string `json:"title" yaml:"title"`

	// PubDate is the rendered publication date ("2023-Jun-05", "2023--",
	// or "Unknown" when the source carries no date).
	PubDate string `json:"pub_date" yaml:"pub_date"`

	// NonAcademicAuthors lists display names of authors whose affiliations
	// matched no academic indicator, in first-seen order, deduplicated.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the extracted company names, in first-seen
	// order, deduplicated. Always non-empty: papers without a company
	// affiliation are never turned into records.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first author email encountered in author
	// order, empty when no author exposed one.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}
