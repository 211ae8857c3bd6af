// Package thumbnails suggests thumbnail concepts and turns a concept's image
// prompt into a generated image served from the data directory.
package thumbnails

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/models"
)

const conceptSystem = "You are a creative YouTube thumbnail designer."

const conceptPrompt = `You are a YouTube strategist and visual designer. Suggest 3 compelling, creative YouTube thumbnail ideas for the following:

- Title: %s
- Keyword: %s
- Tone/Emotion: %s
- Strategy Goal: %s

Each suggestion should include:
- Description: A vivid visual scene (composition, subject, colors, layout)
- Text: A short overlay text suggestion
- Insight: Why this visual style would be effective
- Prompt: An AI image prompt to generate the thumbnail image

Format:
Concept 1:
Description: <...>
Text: <...>
Insight: <...>
Prompt: <...>`

// ConceptRequest carries the thumbnail form fields.
type ConceptRequest struct {
	Title   string `json:"title"`
	Keyword string `json:"keyword"`
	Vibe    string `json:"vibe"`
	Goal    string `json:"goal"`
}

type Helper struct {
	completer ai.Completer
	images    ai.ImageGenerator
	dir       string
	log       *slog.Logger
}

func NewHelper(completer ai.Completer, images ai.ImageGenerator, dataDir string, log *slog.Logger) *Helper {
	return &Helper{
		completer: completer,
		images:    images,
		dir:       filepath.Join(dataDir, "thumbnails"),
		log:       log,
	}
}

// Concepts asks the model for thumbnail ideas and parses them into
// structured concepts.
func (h *Helper) Concepts(ctx context.Context, req ConceptRequest) ([]models.ThumbnailConcept, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("a video title is required")
	}
	if strings.TrimSpace(req.Keyword) == "" {
		return nil, fmt.Errorf("a target keyword is required")
	}

	output, err := h.completer.Complete(ctx, ai.CompletionRequest{
		System:      conceptSystem,
		Prompt:      fmt.Sprintf(conceptPrompt, req.Title, req.Keyword, req.Vibe, req.Goal),
		Temperature: 0.8,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	concepts := parseConcepts(output)
	if len(concepts) == 0 {
		return nil, &ai.MalformedOutputError{Reason: "no Concept entries in response", Raw: output}
	}
	return concepts, nil
}

// parseConcepts splits raw output on the "Concept " marker and picks out the
// labelled lines of each chunk. Missing sections stay empty; a concept
// without a Prompt line is kept but cannot be sent to the image generator.
func parseConcepts(output string) []models.ThumbnailConcept {
	var concepts []models.ThumbnailConcept
	for _, chunk := range strings.Split(output, "Concept ") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" || !startsWithDigit(chunk) {
			continue
		}

		concept := models.ThumbnailConcept{
			Label: fmt.Sprintf("Concept %d", len(concepts)+1),
		}
		for _, line := range strings.Split(chunk, "\n") {
			line = strings.TrimSpace(line)
			lower := strings.ToLower(line)
			switch {
			case strings.HasPrefix(lower, "description:"):
				concept.Description = strings.TrimSpace(line[len("description:"):])
			case strings.HasPrefix(lower, "text:"):
				concept.Text = strings.TrimSpace(line[len("text:"):])
			case strings.HasPrefix(lower, "insight:"):
				concept.Insight = strings.TrimSpace(line[len("insight:"):])
			case strings.HasPrefix(lower, "prompt:"):
				concept.ImagePrompt = strings.TrimSpace(line[len("prompt:"):])
			}
		}
		concepts = append(concepts, concept)
	}
	return concepts
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// Generate produces an image for prompt and returns the path it is served
// under.
func (h *Helper) Generate(ctx context.Context, prompt, size, quality string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("an image prompt is required")
	}
	if size == "" {
		size = "1792x1024"
	}

	data, err := h.images.GenerateImage(ctx, ai.ImageRequest{Prompt: prompt, Size: size, Quality: quality})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	name := uuid.NewString() + ".png"
	if err := os.WriteFile(filepath.Join(h.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write thumbnail: %w", err)
	}

	h.log.Info("thumbnail generated", "file", name, "bytes", len(data))
	return "/thumbnails/" + name, nil
}

// Dir is the directory generated thumbnails are written to.
func (h *Helper) Dir() string {
	return h.dir
}
