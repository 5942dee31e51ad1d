// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed is a client for the NCBI Entrez E-utilities: esearch for
// turning a query into PubMed IDs and efetch for retrieving article
// metadata. Responses are decoded into the shared types the screening
// pipeline consumes.
package pubmed

import (
	"net/http"
	"net/url"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// Client queries the NCBI E-utilities.
type Client struct {
	HTTPClient *http.Client

	// Tool and Email identify this client to NCBI, as the E-utilities
	// usage policy asks of registered clients. Sent when non-empty.
	Tool  string
	Email string

	// APIKey raises the NCBI rate limit from 3 to 10 requests per second.
	APIKey string

	// UserAgent is sent as the User-Agent header on every request.
	UserAgent string

	// MaxRetries caps retries for rate-limited or transient failures;
	// zero means the httputil default.
	MaxRetries int
}

// identify adds the NCBI client-identification parameters.
func (c *Client) identify(params url.Values) {
	if c.Tool != "" {
		params.Set("tool", c.Tool)
	}
	if c.Email != "" {
		params.Set("email", c.Email)
	}
	if c.APIKey != "" {
		params.Set("api_key", c.APIKey)
	}
}
