package research

import (
	"sort"
	"strings"

	"creator-toolkit/internal/models"
)

// shortMaxMinutes is the duration at or below which a video counts as a
// short.
const shortMaxMinutes = 2.0

// passesShortsFilter applies the shorts-mode exclude. An unknown duration is
// "not a short": it is dropped under ShortsOnly and kept under ShortsExclude.
func passesShortsFilter(mode models.ShortsMode, durationMinutes *float64) bool {
	switch mode {
	case models.ShortsOnly:
		return durationMinutes != nil && *durationMinutes <= shortMaxMinutes
	case models.ShortsExclude:
		return durationMinutes == nil || *durationMinutes > shortMaxMinutes
	default:
		return true
	}
}

// passesLanguageFilter compares the declared 2-letter audio language against
// the user's selection, case-insensitively. Records without a declared
// language count as English.
func passesLanguageFilter(declared, wanted string) bool {
	if declared == "" {
		declared = "en"
	}
	if len(declared) > 2 {
		declared = declared[:2]
	}
	return strings.EqualFold(declared, wanted)
}

// matchedKeywords returns the niche keywords present in the combined record
// text.
func matchedKeywords(keywords []string, combined string) []string {
	var matched []string
	for _, k := range keywords {
		if strings.Contains(combined, k) {
			matched = append(matched, k)
		}
	}
	return matched
}

// passesMatchMode enforces strict mode: every niche keyword must appear in
// the combined text. Loose mode never excludes (search already matched).
func passesMatchMode(mode models.MatchMode, keywords []string, combined string) bool {
	if mode != models.MatchAll {
		return true
	}
	for _, k := range keywords {
		if !strings.Contains(combined, k) {
			return false
		}
	}
	return true
}

// sortRecords orders records by the chosen field in place. The sort is
// stable: equal keys keep their arrival order.
func sortRecords(records []models.VideoRecord, field models.SortField, order models.SortOrder) {
	key := func(r models.VideoRecord) float64 {
		switch field {
		case models.SortViews:
			return float64(r.Views)
		case models.SortLikes:
			return float64(r.Likes)
		case models.SortComments:
			return float64(r.Comments)
		case models.SortSubscribers:
			return float64(r.Subscribers)
		default:
			return r.ViralScore
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if order == models.SortAscending {
			return key(records[i]) < key(records[j])
		}
		return key(records[i]) > key(records[j])
	})
}
