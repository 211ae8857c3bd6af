package models

import "time"

// VideoRecord is one enriched, scored search result. Records live only inside
// the session's active result set and are replaced wholesale on the next
// search.
type VideoRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Channel         string    `json:"channel"`
	ChannelID       string    `json:"channel_id"`
	Subscribers     int64     `json:"subscribers"`
	Views           int64     `json:"views"`
	Likes           int64     `json:"likes"`
	Comments        int64     `json:"comments"`
	DurationMinutes *float64  `json:"duration_minutes"` // nil when unparseable
	PublishedAt     time.Time `json:"published_at"`
	URL             string    `json:"url"`
	Summary         string    `json:"summary"` // first 200 chars of description
	Style           string    `json:"style"`
	SentimentScore  float64   `json:"sentiment_score"`
	SentimentLabel  string    `json:"sentiment_label"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	AvatarURL       string    `json:"avatar_url"`
	MatchedKeywords []string  `json:"matched_keywords"`
	Viral           bool      `json:"viral"`
	ViralScore      float64   `json:"viral_score"`
	BadgeColor      string    `json:"badge_color"`
}

// ResearchResult is the response of one search invocation.
type ResearchResult struct {
	Criteria SearchCriteria `json:"criteria"`
	Records  []VideoRecord  `json:"records"`
	Ran      time.Time      `json:"ran"`
}
