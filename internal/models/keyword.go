package models

// KeywordReport is one analyzed keyword or phrase.
type KeywordReport struct {
	Keyword      string   `json:"keyword"`
	Popularity   int      `json:"popularity"`  // 1-10, trends-derived when available
	Competition  int      `json:"competition"` // 1-10
	Score        float64  `json:"score"`
	Label        string   `json:"label"`
	Rankability  string   `json:"rankability"`
	Alternatives []string `json:"alternatives"`
	Insight      string   `json:"insight"`
	TrendBacked  bool     `json:"trend_backed"` // popularity came from the trends service
}
