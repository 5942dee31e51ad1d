package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-company-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the PubMed search and fetch stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of PubMed IDs to request (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Tool is the client name reported to the E-utilities via the tool
	// parameter, as NCBI asks of registered clients.
	Tool string `json:"tool" yaml:"tool"`

	// Email is the maintainer contact reported via the email parameter.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// FetchDelay is the pause between consecutive article fetches (default 350ms,
	// which keeps an unkeyed client under NCBI's 3 requests/second ceiling).
	FetchDelay time.Duration `json:"fetch_delay" yaml:"fetch_delay"`

	// FetchWorkers is the number of concurrent article fetches (default 1).
	// Values above 1 disable FetchDelay pacing.
	FetchWorkers int `json:"fetch_workers" yaml:"fetch_workers"`

	// MaxRetries is the number of retry attempts for rate-limited or failed
	// requests (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ClassifyConfig holds settings for affiliation classification.
type ClassifyConfig struct {
	// RulesFile is an optional path to a YAML rules file overriding the
	// built-in keyword inventory. Empty means built-in rules.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty"`
}

// ArchiveConfig holds settings for the local run archive.
type ArchiveConfig struct {
	// Path is the SQLite database file (default "papers.db").
	Path string `json:"path" yaml:"path"`

	// Disable skips archiving entirely when true.
	Disable bool `json:"disable,omitempty" yaml:"disable,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search   SearchConfig   `json:"search" yaml:"search"`
	Classify ClassifyConfig `json:"classify" yaml:"classify"`
	Archive  ArchiveConfig  `json:"archive" yaml:"archive"`
}
