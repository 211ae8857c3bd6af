package keywords

import (
	"strings"

	"creator-toolkit/internal/ai"
)

// tableColumns is the column count the keyword prompt asks the model for.
const tableColumns = 6

// parseTable extracts markdown table rows from raw model output. The output
// format is an informal, unversioned contract: rows that don't look like
// table lines are ignored, and an output with no table at all is reported
// with the raw text attached.
func parseTable(content string) ([][]string, error) {
	var rows [][]string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "|---") {
			continue
		}
		cells := strings.Split(strings.Trim(trimmed, "|"), "|")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return nil, &ai.MalformedOutputError{Reason: "no table rows in response", Raw: content}
	}
	return rows, nil
}

func splitAlternatives(raw string) []string {
	var alts []string
	for _, a := range strings.Split(raw, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			alts = append(alts, a)
		}
	}
	return alts
}
