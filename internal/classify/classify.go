// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "strings"

// Classifier applies a RuleSet to affiliation strings. Keywords are
// normalized to lowercase at construction so matching is case-insensitive.
type Classifier struct {
	pharma   []string
	academic []string
}

// New builds a Classifier from rules. Keywords are lowercased and trimmed;
// empty keywords are dropped so they cannot match everything.
func New(rules RuleSet) *Classifier {
	return &Classifier{
		pharma:   normalize(rules.Pharma),
		academic: normalize(rules.Academic),
	}
}

func normalize(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// IsPharmaBiotech reports whether the affiliation contains any pharma
// keyword. An affiliation can be both pharma and academic; callers check
// pharma first.
func (c *Classifier) IsPharmaBiotech(affiliation string) bool {
	return containsAny(affiliation, c.pharma)
}

// IsAcademic reports whether the affiliation contains any academic keyword.
func (c *Classifier) IsAcademic(affiliation string) bool {
	return containsAny(affiliation, c.academic)
}

func containsAny(affiliation string, keywords []string) bool {
	lower := strings.ToLower(affiliation)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractCompanyName pulls a short company name out of an affiliation.
// For each pharma keyword present in the affiliation, in rule order, it
// finds the first whitespace-separated word containing the keyword and takes
// that word plus up to two following words as the name window. The window is
// truncated at the first comma or semicolon, so "Genentech Inc, South San
// Francisco, CA" yields "Genentech Inc". Keywords spanning several words
// ("eli lilly") never match a single word and fall through to later
// keywords. When no keyword anchors a word, the text before the first comma
// is returned as a best guess.
func (c *Classifier) ExtractCompanyName(affiliation string) string {
	lower := strings.ToLower(affiliation)
	words := strings.Fields(affiliation)
	for _, kw := range c.pharma {
		if !strings.Contains(lower, kw) {
			continue
		}
		for i, word := range words {
			if !strings.Contains(strings.ToLower(word), kw) {
				continue
			}
			end := i + 3
			if end > len(words) {
				end = len(words)
			}
			window := strings.Trim(strings.Join(words[i:end], " "), " ,;")
			if cut := strings.IndexAny(window, ",;"); cut >= 0 {
				window = strings.TrimSpace(window[:cut])
			}
			return window
		}
	}
	before, _, _ := strings.Cut(affiliation, ",")
	return strings.TrimSpace(before)
}
