// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

const sampleEFetchXML = `<?xml version="1.0" ?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2019//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_190101.dtd">
<PubmedArticleSet>
<PubmedArticle>
  <MedlineCitation Status="MEDLINE" Owner="NLM">
    <PMID Version="1">31452104</PMID>
    <Article PubModel="Print-Electronic">
      <Journal>
        <ISSN IssnType="Electronic">1474-1784</ISSN>
        <JournalIssue CitedMedium="Internet">
          <Volume>18</Volume>
          <Issue>10</Issue>
          <PubDate>
            <Year>2019</Year>
            <Month>Oct</Month>
            <Day>23</Day>
          </PubDate>
        </JournalIssue>
        <Title>Nature reviews. Drug discovery</Title>
      </Journal>
      <ArticleTitle>Antibody therapeutics in oncology.</ArticleTitle>
      <AuthorList CompleteYN="Y">
        <Author ValidYN="Y">
          <LastName>Doe</LastName>
          <ForeName>Jane</ForeName>
          <Initials>J</Initials>
          <AffiliationInfo>
            <Affiliation>Genentech Inc, South San Francisco, CA, USA.</Affiliation>
          </AffiliationInfo>
          <AffiliationInfo>
            <Affiliation>Department of Oncology, Stanford University, CA, USA.</Affiliation>
          </AffiliationInfo>
        </Author>
        <Author ValidYN="Y">
          <LastName>Smith</LastName>
          <ForeName>John</ForeName>
          <Initials>J</Initials>
          <Email>john.smith@example.org</Email>
        </Author>
        <Author ValidYN="Y">
          <CollectiveName>The Antibody Consortium</CollectiveName>
        </Author>
      </AuthorList>
    </Article>
  </MedlineCitation>
</PubmedArticle>
</PubmedArticleSet>`

const legacyEFetchXML = `<?xml version="1.0" ?>
<PubmedArticleSet>
<PubmedArticle>
  <MedlineCitation Status="MEDLINE" Owner="NLM">
    <PMID Version="1">10540283</PMID>
    <Article PubModel="Print">
      <Journal>
        <JournalIssue CitedMedium="Print">
          <PubDate>
            <Year>1999</Year>
          </PubDate>
        </JournalIssue>
      </Journal>
      <ArticleTitle>Early combinatorial chemistry approaches.</ArticleTitle>
      <AuthorList CompleteYN="Y">
        <Author ValidYN="Y">
          <LastName>Ray</LastName>
          <ForeName>Bob</ForeName>
          <Affiliation>Pfizer Central Research, Groton, CT.</Affiliation>
        </Author>
      </AuthorList>
    </Article>
  </MedlineCitation>
</PubmedArticle>
</PubmedArticleSet>`

const noDateEFetchXML = `<?xml version="1.0" ?>
<PubmedArticleSet>
<PubmedArticle>
  <MedlineCitation Status="MEDLINE" Owner="NLM">
    <PMID Version="1">999</PMID>
    <Article PubModel="Print">
      <ArticleTitle>Undated manuscript.</ArticleTitle>
    </Article>
  </MedlineCitation>
</PubmedArticle>
</PubmedArticleSet>`

// --- FetchArticle ---

func TestFetchArticle(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprint(w, sampleEFetchXML)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &Client{HTTPClient: ts.Client(), UserAgent: "test/0.1"}
	raw, err := c.FetchArticle(context.Background(), "31452104")
	if err != nil {
		t.Fatalf("FetchArticle: %v", err)
	}

	for key, want := range map[string]string{
		"db":      "pubmed",
		"id":      "31452104",
		"retmode": "xml",
	} {
		if got := gotQuery.Get(key); got != want {
			t.Errorf("query %s = %q, want %q", key, got, want)
		}
	}

	if raw.PMID != "31452104" {
		t.Errorf("PMID = %q", raw.PMID)
	}
	if raw.Title != "Antibody therapeutics in oncology." {
		t.Errorf("Title = %q", raw.Title)
	}
	if raw.Date == nil {
		t.Fatal("Date = nil, want parsed PubDate")
	}
	if raw.Date.Year != "2019" || raw.Date.Month != "Oct" || raw.Date.Day != "23" {
		t.Errorf("Date = %+v", raw.Date)
	}

	if len(raw.Authors) != 3 {
		t.Fatalf("len(Authors) = %d, want 3", len(raw.Authors))
	}

	jane := raw.Authors[0]
	if jane.ForeName != "Jane" || jane.LastName != "Doe" {
		t.Errorf("author 0 = %+v", jane)
	}
	if len(jane.Affiliations) != 2 {
		t.Fatalf("author 0 affiliations = %v, want 2", jane.Affiliations)
	}
	if !strings.HasPrefix(jane.Affiliations[0], "Genentech Inc") {
		t.Errorf("affiliation[0] = %q", jane.Affiliations[0])
	}
	if jane.Collective {
		t.Error("author 0 should not be collective")
	}

	john := raw.Authors[1]
	if john.Email != "john.smith@example.org" {
		t.Errorf("author 1 email = %q", john.Email)
	}
	if len(john.Affiliations) != 0 {
		t.Errorf("author 1 affiliations = %v, want none", john.Affiliations)
	}

	consortium := raw.Authors[2]
	if !consortium.Collective {
		t.Error("author 2 should be collective")
	}
	if consortium.ForeName != "" || consortium.LastName != "" {
		t.Errorf("author 2 names = %q %q, want empty", consortium.ForeName, consortium.LastName)
	}
}

func TestFetchArticleLegacyAffiliation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, legacyEFetchXML)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	raw, err := c.FetchArticle(context.Background(), "10540283")
	if err != nil {
		t.Fatalf("FetchArticle: %v", err)
	}
	if len(raw.Authors) != 1 {
		t.Fatalf("len(Authors) = %d, want 1", len(raw.Authors))
	}
	affs := raw.Authors[0].Affiliations
	if len(affs) != 1 || !strings.HasPrefix(affs[0], "Pfizer Central Research") {
		t.Errorf("legacy affiliation not read: %v", affs)
	}
	if raw.Date == nil || raw.Date.Year != "1999" || raw.Date.Month != "" {
		t.Errorf("Date = %+v, want year-only 1999", raw.Date)
	}
}

func TestFetchArticleNoDate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, noDateEFetchXML)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	raw, err := c.FetchArticle(context.Background(), "999")
	if err != nil {
		t.Fatalf("FetchArticle: %v", err)
	}
	if raw.Date != nil {
		t.Errorf("Date = %+v, want nil for missing PubDate", raw.Date)
	}
}

func TestFetchArticleEmptyPMID(t *testing.T) {
	c := &Client{HTTPClient: http.DefaultClient}
	if _, err := c.FetchArticle(context.Background(), ""); err == nil {
		t.Fatal("FetchArticle should reject an empty PMID")
	}
}

func TestFetchArticleEmptySet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0" ?><PubmedArticleSet></PubmedArticleSet>`)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.FetchArticle(context.Background(), "12345")
	if err == nil || !strings.Contains(err.Error(), "no article") {
		t.Errorf("expected no-article error, got: %v", err)
	}
}

func TestFetchArticleHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.FetchArticle(context.Background(), "12345")
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("expected HTTP 404 error, got: %v", err)
	}
}

func TestFetchArticleBadXML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"not": "xml"}`)
	}))
	defer ts.Close()

	old := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = old }()

	c := &Client{HTTPClient: ts.Client()}
	_, err := c.FetchArticle(context.Background(), "12345")
	if err == nil || !strings.Contains(err.Error(), "parsing efetch response") {
		t.Errorf("expected parse error, got: %v", err)
	}
}
