// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Yasaswini24122000/pubmed-company-papers/internal/httputil"
)

const (
	defaultMaxResults = 100

	// esearch ignores retmax beyond 10000; past that, retstart paging
	// would be required. Clamp rather than fail.
	maxRetMax = 10000
)

// SearchIDs runs an esearch query against the pubmed database and returns
// the matching PubMed IDs in relevance order. maxResults is clamped to
// [1, 10000]; zero or negative means the default of 100.
func (c *Client) SearchIDs(ctx context.Context, query string, maxResults int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty query")
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxRetMax {
		maxResults = maxRetMax
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
	}
	c.identify(params)

	reqURL := esearchBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("esearch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("esearch returned HTTP %d", resp.StatusCode)
	}

	var er esearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	return er.Result.IDList, nil
}

// esearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	RetMax string   `json:"retmax"`
	IDList []string `json:"idlist"`
}
