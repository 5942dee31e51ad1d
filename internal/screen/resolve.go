// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"strings"

	"github.com/Yasaswini24122000/pubmed-company-papers/internal/classify"
	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

// Resolution aggregates author screening for one paper: which authors look
// non-academic, which companies their affiliations name, and the first
// author email seen. Both lists preserve first-insertion order.
type Resolution struct {
	NonAcademicAuthors  []string
	CompanyAffiliations []string
	Email               string
}

// Resolve walks the authors in the given order and classifies every
// affiliation string. Collective (group) authors are skipped outright. The
// first email encountered wins, regardless of how that author's
// affiliations classify. Per affiliation: a pharma/biotech match records
// the author and the extracted company; an affiliation matching neither
// keyword set still records the author as non-academic but contributes no
// company; a recognized academic affiliation records nothing.
func Resolve(authors []types.RawAuthor, cls *classify.Classifier) Resolution {
	var res Resolution
	seenAuthors := make(map[string]bool)
	seenCompanies := make(map[string]bool)

	for _, a := range authors {
		if a.Collective {
			continue
		}
		name := strings.TrimSpace(a.ForeName + " " + a.LastName)

		if res.Email == "" && a.Email != "" {
			res.Email = a.Email
		}

		for _, affiliation := range a.Affiliations {
			affiliation = strings.TrimSpace(affiliation)
			switch {
			case cls.IsPharmaBiotech(affiliation):
				res.NonAcademicAuthors = appendUnique(res.NonAcademicAuthors, seenAuthors, name)
				company := cls.ExtractCompanyName(affiliation)
				res.CompanyAffiliations = appendUnique(res.CompanyAffiliations, seenCompanies, company)
			case !cls.IsAcademic(affiliation):
				res.NonAcademicAuthors = appendUnique(res.NonAcademicAuthors, seenAuthors, name)
			}
		}
	}
	return res
}

// appendUnique adds v to list unless it is empty or already present.
func appendUnique(list []string, seen map[string]bool, v string) []string {
	if v == "" || seen[v] {
		return list
	}
	seen[v] = true
	return append(list, v)
}
