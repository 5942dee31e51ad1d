// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Yasaswini24122000/pubmed-company-papers/internal/archive"
	"github.com/Yasaswini24122000/pubmed-company-papers/internal/classify"
	"github.com/Yasaswini24122000/pubmed-company-papers/internal/pubmed"
	"github.com/Yasaswini24122000/pubmed-company-papers/internal/screen"
	"github.com/Yasaswini24122000/pubmed-company-papers/internal/secrets"
	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultFetchDelay = 350 * time.Millisecond
	defaultMaxResults = 100
	defaultTool       = "pubmed-company-papers"
	defaultUserAgent  = "pubmed-company-papers/0.1"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search PubMed and keep papers with company-affiliated authors",
	Long: `Search runs a PubMed query, fetches each result's article metadata, and
keeps the papers where at least one author is affiliated with a
pharmaceutical or biotech company. Kept papers go to the console by
default, or to a CSV file with --file.

The query uses PubMed's own syntax, so field tags and boolean operators
work as they do on the PubMed website. Progress and the screening summary
go to stderr; --debug adds a line per examined identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("file", "f", "", "write results to a CSV file instead of the console")
	searchCmd.Flags().IntP("max", "m", defaultMaxResults, "maximum number of PubMed IDs to request")
	searchCmd.Flags().BoolP("debug", "d", false, "print per-identifier screening detail")
	searchCmd.Flags().Bool("json", false, "print results as JSON instead of the console format")
	searchCmd.Flags().String("rules", "", "YAML rules file overriding the built-in keywords")
	searchCmd.Flags().Int("workers", 1, "concurrent article fetches (values above 1 disable pacing)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	searchCmd.Flags().Duration("delay", 0, "pause between consecutive article fetches (default 350ms)")
	searchCmd.Flags().Int("max-retries", 0, "retry attempts for rate-limited requests (default 3)")
	searchCmd.Flags().Bool("no-archive", false, "skip recording this run in the local archive")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	file, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Catch a bad output path before spending the network round trips.
	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return fmt.Errorf("output directory for %s: %w", file, err)
			}
		}
	}

	cfg := searchConfig(cmd)

	rules, err := effectiveRules(cmd)
	if err != nil {
		return err
	}
	cls := classify.New(rules)

	client := &pubmed.Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Tool:       cfg.Tool,
		Email:      cfg.Email,
		APIKey:     cfg.APIKey,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}

	ctx := context.Background()
	records, summary, err := screen.SearchPapers(ctx, client, client, cls, query, cfg, debug, os.Stderr)
	if err != nil {
		return err
	}

	if err := writeResults(records, file, jsonOutput); err != nil {
		return err
	}

	if !configBool(cmd, "no-archive", "archive.disable", false) {
		archiveRun(ctx, query, cfg.MaxResults, summary, records)
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d identifier(s) failed screening", summary.Failed)
	}
	return nil
}

// searchConfig assembles the search stage configuration from flags, the
// config file, loaded secrets, and defaults.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   configDuration(cmd, "timeout", "search.timeout", defaultTimeout),
			UserAgent: viperDefault("search.user_agent", defaultUserAgent),
		},
		MaxResults:   configInt(cmd, "max", "search.max_results", defaultMaxResults),
		Tool:         viperDefault("search.tool", defaultTool),
		Email:        secretDefault(secrets.EutilsEmail, viper.GetString("search.email")),
		APIKey:       secretDefault(secrets.NCBIAPIKey, viper.GetString("search.api_key")),
		FetchDelay:   configDuration(cmd, "delay", "search.fetch_delay", defaultFetchDelay),
		FetchWorkers: configInt(cmd, "workers", "search.fetch_workers", 1),
		MaxRetries:   configInt(cmd, "max-retries", "search.max_retries", 0),
	}
}

func writeResults(records []types.PaperRecord, file string, jsonOutput bool) error {
	if file != "" {
		if len(records) == 0 {
			fmt.Println("No papers to save")
			return nil
		}
		if err := screen.SaveCSV(records, file); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", file)
		return nil
	}

	if jsonOutput {
		return screen.FormatJSON(records, os.Stdout)
	}
	screen.FormatConsole(records, os.Stdout)
	return nil
}

// archiveRun records a completed run in the local archive. Archive
// trouble is reported as a warning so it never costs the user their
// results.
func archiveRun(ctx context.Context, query string, maxResults int, summary screen.Summary, records []types.PaperRecord) {
	store, err := archive.NewStore(types.ArchiveConfig{Path: viper.GetString("archive.path")})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: archive unavailable: %v\n", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveRun(ctx, query, maxResults, summary.Total(), records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: archiving run failed: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Archived run %s\n", runID)
}
