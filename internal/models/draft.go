package models

import "time"

// DraftParams are the generation parameters a draft was produced with. The
// revision action reuses them instead of reading ambient state.
type DraftParams struct {
	Title       string  `json:"title"`
	Keyword     string  `json:"keyword"`
	Topic       string  `json:"topic"`
	Tone        string  `json:"tone"`
	Goal        string  `json:"goal"`
	Temperature float32 `json:"temperature"`
}

// DraftArtifact carries a generated description from the producing action to
// a later revision action.
type DraftArtifact struct {
	Content   string      `json:"content"`
	Params    DraftParams `json:"params"`
	CreatedAt time.Time   `json:"created_at"`
}
