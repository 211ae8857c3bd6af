package models

// ShortsMode controls how short-form videos are filtered.
type ShortsMode string

const (
	ShortsAll     ShortsMode = "all"
	ShortsOnly    ShortsMode = "only"
	ShortsExclude ShortsMode = "exclude"
)

// MatchMode controls how niche keywords must match a record's combined text.
type MatchMode string

const (
	MatchAny MatchMode = "any"
	MatchAll MatchMode = "all"
)

type SortField string

const (
	SortViralScore  SortField = "viral_score"
	SortViews       SortField = "views"
	SortLikes       SortField = "likes"
	SortComments    SortField = "comments"
	SortSubscribers SortField = "subscribers"
)

type SortOrder string

const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

// IntRange is an inclusive numeric filter bound. A nil range means no filter.
type IntRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (r *IntRange) Contains(v int64) bool {
	if r == nil {
		return true
	}
	return v >= r.Min && v <= r.Max
}

// FloatRange is the duration-range counterpart of IntRange.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r *FloatRange) Contains(v float64) bool {
	if r == nil {
		return true
	}
	return v >= r.Min && v <= r.Max
}

// SearchCriteria holds one search invocation's parameters. It is not mutated
// after submission.
type SearchCriteria struct {
	Niches      string      `json:"niches"` // pipe-delimited keyword set
	MonthsBack  int         `json:"months_back"`
	MaxResults  int         `json:"max_results"`
	Subscribers IntRange    `json:"subscribers"`
	Views       IntRange    `json:"views"`
	Likes       *IntRange   `json:"likes,omitempty"`
	Comments    *IntRange   `json:"comments,omitempty"`
	Duration    *FloatRange `json:"duration,omitempty"` // minutes
	Shorts      ShortsMode  `json:"shorts"`
	SortBy      SortField   `json:"sort_by"`
	SortOrder   SortOrder   `json:"sort_order"`
	Language    string      `json:"language"` // 2-letter code
	MatchMode   MatchMode   `json:"match_mode"`
}
