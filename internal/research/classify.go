package research

import "strings"

// styleRules are checked in order; the first match wins, so a description
// that is both a tutorial and funny classifies as educational.
var styleRules = []struct {
	markers []string
	style   string
}{
	{[]string{"tutorial", "how to"}, "educational"},
	{[]string{"funny", "joke"}, "funny"},
	{[]string{"shocking", "unbelievable"}, "shocking"},
}

// ClassifyStyle tags a description by substring presence, defaulting to
// entertaining.
func ClassifyStyle(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range styleRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.style
			}
		}
	}
	return "entertaining"
}

// Summarize truncates a description to its first 200 characters.
func Summarize(description string) string {
	runes := []rune(description)
	if len(runes) <= 200 {
		return description
	}
	return string(runes[:200])
}
