// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether free-text author affiliations belong to
// pharmaceutical/biotech companies or to academic institutions, and extracts
// a short company name from matching affiliations. Matching is keyword-based
// and case-insensitive; keywords are tried in declared order so results are
// stable across runs.
package classify

// RuleSet is the keyword inventory driving classification. Pharma keywords
// mark an affiliation as industry; Academic keywords mark it as academic.
// Order matters for company-name extraction: the first pharma keyword that
// appears in an affiliation anchors the extracted name.
type RuleSet struct {
	Pharma   []string `json:"pharma" yaml:"pharma"`
	Academic []string `json:"academic" yaml:"academic"`
}

// DefaultRules returns the built-in keyword inventory: generic industry
// markers plus well-known company names for pharma, and institution words
// for academia. Substring matching means "bristol" also covers
// "Bristol Myers Squibb" and "lab" covers "laboratory".
func DefaultRules() RuleSet {
	return RuleSet{
		Pharma: []string{
			"pharma", "biotech", "genentech", "novartis", "pfizer",
			"roche", "sanofi", "merck", "gilead", "astrazeneca",
			"bristol", "johnson", "johnson & johnson", "eli lilly",
			"abbvie", "amgen", "biogen", "moderna", "bayer",
		},
		Academic: []string{
			"university", "college", "institute", "school",
			"hospital", "lab", "laboratory", "academy",
			"government", "ministry", "clinic",
		},
	}
}
