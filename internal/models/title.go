package models

// TitleSuggestion is one generated title with its heuristic score.
type TitleSuggestion struct {
	Title   string `json:"title"`
	Insight string `json:"insight"`
	Score   int    `json:"score"` // 0-10
	Color   string `json:"color"`
}
