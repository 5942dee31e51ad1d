// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Yasaswini24122000/pubmed-company-papers/internal/httputil"
	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

// FetchArticle retrieves one article's metadata via efetch and converts it
// to the pipeline's raw representation.
func (c *Client) FetchArticle(ctx context.Context, pmid string) (*types.RawPaper, error) {
	if strings.TrimSpace(pmid) == "" {
		return nil, fmt.Errorf("empty PMID")
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {pmid},
		"retmode": {"xml"},
	}
	c.identify(params)

	reqURL := efetchBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("efetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("efetch returned HTTP %d", resp.StatusCode)
	}

	var set efetchArticleSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}
	if len(set.Articles) == 0 {
		return nil, fmt.Errorf("no article in efetch response for PMID %s", pmid)
	}
	return set.Articles[0].toRawPaper(), nil
}

// efetch XML structures. Affiliations appear both in the modern
// AffiliationInfo wrapper and, in records from before 2014, as a direct
// Affiliation child of Author; both forms are read.
type efetchArticleSet struct {
	Articles []efetchArticle `xml:"PubmedArticle"`
}

type efetchArticle struct {
	PMID    string         `xml:"MedlineCitation>PMID"`
	Title   string         `xml:"MedlineCitation>Article>ArticleTitle"`
	PubDate *efetchPubDate `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	Authors []efetchAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type efetchPubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type efetchAuthor struct {
	LastName          string   `xml:"LastName"`
	ForeName          string   `xml:"ForeName"`
	CollectiveName    string   `xml:"CollectiveName"`
	Email             string   `xml:"Email"`
	Affiliations      []string `xml:"AffiliationInfo>Affiliation"`
	LegacyAffiliation string   `xml:"Affiliation"`
}

func (a efetchArticle) toRawPaper() *types.RawPaper {
	raw := &types.RawPaper{
		PMID:  strings.TrimSpace(a.PMID),
		Title: strings.TrimSpace(a.Title),
	}
	if a.PubDate != nil {
		raw.Date = &types.PubDate{
			Year:  strings.TrimSpace(a.PubDate.Year),
			Month: strings.TrimSpace(a.PubDate.Month),
			Day:   strings.TrimSpace(a.PubDate.Day),
		}
	}
	for _, au := range a.Authors {
		raw.Authors = append(raw.Authors, au.toRawAuthor())
	}
	return raw
}

func (a efetchAuthor) toRawAuthor() types.RawAuthor {
	out := types.RawAuthor{
		ForeName:   strings.TrimSpace(a.ForeName),
		LastName:   strings.TrimSpace(a.LastName),
		Collective: strings.TrimSpace(a.CollectiveName) != "",
		Email:      strings.TrimSpace(a.Email),
	}
	out.Affiliations = append(out.Affiliations, a.Affiliations...)
	if a.LegacyAffiliation != "" {
		out.Affiliations = append(out.Affiliations, a.LegacyAffiliation)
	}
	return out
}
