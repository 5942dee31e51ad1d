// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yasaswini24122000/pubmed-company-papers/internal/archive"
	"github.com/Yasaswini24122000/pubmed-company-papers/pkg/types"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect archived search runs",
	Long: `Archive manages the local SQLite archive that search records completed
runs into. Use subcommands to list past runs, show a run's kept papers,
or find archived papers by company name.`,
}

// --- runs subcommand ---

var archiveRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived search runs, most recent first",
	RunE:  runArchiveRuns,
}

func runArchiveRuns(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-16s  %-38s  %5s  %4s\n",
		"Run ID", "Started", "Query", "Found", "Kept")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 107))

	for _, r := range runs {
		query := r.Query
		if len(query) > 38 {
			query = query[:35] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-16s  %-38s  %5d  %4d\n",
			r.ID, r.Started.Local().Format("2006-01-02 15:04"), query, r.Found, r.Kept)
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

// --- show subcommand ---

var archiveShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the kept papers for an archived run",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveShow,
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Records(context.Background(), args[0])
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	return writeResults(records, file, jsonOutput)
}

// --- company subcommand ---

var archiveCompanyCmd = &cobra.Command{
	Use:   "company <name>",
	Short: "Find archived papers by company affiliation",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveCompany,
}

func runArchiveCompany(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	hits, err := store.FindByCompany(context.Background(), args[0], limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("No archived papers match that company.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-42s  %-28s  %s\n",
		"PubMed ID", "Title", "Companies", "Run ID")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 122))

	for _, h := range hits {
		title := h.Title
		if len(title) > 42 {
			title = title[:39] + "..."
		}
		companies := strings.Join(h.CompanyAffiliations, "; ")
		if len(companies) > 28 {
			companies = companies[:25] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-10s  %-42s  %-28s  %s\n", h.PMID, title, companies, h.RunID)
	}

	fmt.Fprintf(os.Stdout, "\n%d papers\n", len(hits))
	return nil
}

// --- shared helpers ---

func openArchive(cmd *cobra.Command) (*archive.Store, error) {
	return archive.NewStore(types.ArchiveConfig{
		Path: configString(cmd, "db", "archive.path", ""),
	})
}

func init() {
	// Shared flag on the parent command, inherited by subcommands.
	archiveCmd.PersistentFlags().String("db", "", "archive database path (default papers.db)")

	archiveRunsCmd.Flags().Int("limit", 0, "maximum runs to list (0 = all)")
	archiveRunsCmd.Flags().Bool("json", false, "output runs as JSON")

	archiveShowCmd.Flags().StringP("file", "f", "", "write the run's papers to a CSV file")
	archiveShowCmd.Flags().Bool("json", false, "output papers as JSON")

	archiveCompanyCmd.Flags().Int("limit", 0, "maximum papers to return (0 = default cap)")
	archiveCompanyCmd.Flags().Bool("json", false, "output papers as JSON")

	archiveCmd.AddCommand(archiveRunsCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveCompanyCmd)

	rootCmd.AddCommand(archiveCmd)
}
