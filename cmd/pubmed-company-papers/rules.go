// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/Yasaswini24122000/pubmed-company-papers/internal/classify"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect or scaffold affiliation classification rules",
	Long: `Rules manages the keyword rules that decide which author affiliations
count as pharmaceutical or biotech companies and which as academic
institutions. Use show to print the effective rule set, or init to write
the built-in rules to a YAML file as a starting point for customization.`,
}

// --- show subcommand ---

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective classification rules as YAML",
	RunE:  runRulesShow,
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	rules, err := effectiveRules(cmd)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	os.Stdout.Write(data)
	return nil
}

// --- init subcommand ---

var rulesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in rules to a YAML file",
	RunE:  runRulesInit,
}

func runRulesInit(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", out)
		}
	}

	if err := classify.WriteRules(out, classify.DefaultRules()); err != nil {
		return err
	}
	fmt.Printf("Wrote default rules to %s\n", out)
	return nil
}

// --- shared helpers ---

// effectiveRules resolves the rule set the way search applies it: an
// explicit --rules flag, then the configured rules file, then the
// built-in defaults.
func effectiveRules(cmd *cobra.Command) (classify.RuleSet, error) {
	rulesFile := configString(cmd, "rules", "classify.rules_file", "")
	if rulesFile == "" {
		return classify.DefaultRules(), nil
	}
	return classify.LoadRules(rulesFile)
}

func init() {
	rulesShowCmd.Flags().String("rules", "", "YAML rules file overriding the built-in keywords")

	rulesInitCmd.Flags().String("out", "rules.yaml", "output path for the rules file")
	rulesInitCmd.Flags().Bool("force", false, "overwrite an existing file")

	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesInitCmd)

	rootCmd.AddCommand(rulesCmd)
}
