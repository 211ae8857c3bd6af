package research

import (
	"context"
	"fmt"
	"strings"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/models"
)

const insightSystem = "You are a YouTube marketing expert."

// Insight asks the model why one already-displayed record performed well and
// returns the answer verbatim. Nothing is cached; a repeat click pays for a
// fresh call.
func Insight(ctx context.Context, completer ai.Completer, rec models.VideoRecord) (string, error) {
	var duration float64
	if rec.DurationMinutes != nil {
		duration = *rec.DurationMinutes
	}

	prompt := fmt.Sprintf(`You're a YouTube growth strategist. Analyze this video to identify repeatable, audience-agnostic techniques that may have contributed to its strong performance.

Please avoid restating obvious metrics like high views, likes, or comments unless they're part of a clear strategy (e.g. controversy, challenge, timing). Be specific and actionable.

Explain **how a creator could test, adapt, or apply** these tactics to their own videos — including practical steps, phrasing, visuals, or formats.

Also explain **when NOT to use** any tactic mentioned (e.g. "only works if..." or "avoid this unless...").

**Video Context**:
- Title: %s
- Description: %s
- Style: %s
- Sentiment: %s (%.2f)
- Thumbnail URL: %s
- Subscribers: %d
- Views: %d
- Likes: %d
- Comments: %d
- Duration: %.2f min
- Keyword Match: %s`,
		rec.Title,
		rec.Summary,
		rec.Style,
		rec.SentimentLabel,
		rec.SentimentScore,
		rec.ThumbnailURL,
		rec.Subscribers,
		rec.Views,
		rec.Likes,
		rec.Comments,
		duration,
		strings.Join(rec.MatchedKeywords, ", "),
	)

	text, err := completer.Complete(ctx, ai.CompletionRequest{
		System:      insightSystem,
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		return "", fmt.Errorf("insight generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
