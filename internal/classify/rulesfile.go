// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// LoadRules reads a RuleSet from a YAML file. A section the file leaves
// empty falls back to the built-in list, so a file can override just the
// pharma keywords or just the academic ones. An empty pharma list in
// particular would make every search come back empty.
func LoadRules(path string) (RuleSet, error) {
	var rules RuleSet
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("reading rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("parsing rules file: %w", err)
	}

	defaults := DefaultRules()
	if len(normalize(rules.Pharma)) == 0 {
		rules.Pharma = defaults.Pharma
	}
	if len(normalize(rules.Academic)) == 0 {
		rules.Academic = defaults.Academic
	}
	return rules, nil
}

// WriteRules saves a RuleSet to a YAML file, creating or truncating it.
// Used to seed an editable copy of the built-in rules.
func WriteRules(path string, rules RuleSet) error {
	data, err := yaml.Marshal(&rules)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
