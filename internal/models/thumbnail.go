package models

// ThumbnailConcept is one suggested thumbnail design. ImagePrompt may be
// empty when the model omitted the prompt line; such concepts cannot be sent
// to the image generator.
type ThumbnailConcept struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Text        string `json:"text"`
	Insight     string `json:"insight"`
	ImagePrompt string `json:"image_prompt"`
}
