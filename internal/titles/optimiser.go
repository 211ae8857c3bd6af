// Package titles generates keyword-targeted video titles and scores them
// with a simple CTR/SEO heuristic.
package titles

import (
	"context"
	"fmt"
	"strings"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/models"
)

const optimiseSystem = "You are a YouTube strategist that specialises in writing video titles."

const optimisePrompt = `You are a YouTube strategist and headline copywriter.

Based on the following:
- Topic: %s
- Keyword: %s
- Tone: %s
- Goal: %s

Generate 3 to 5 optimised YouTube video titles. Each title must:
- Include the keyword or a close variation
- Be no longer than 70 characters
- Be designed to increase CTR and/or rank for search

After each title, include a brief insight (1-2 sentences) on why it works.

Format:
Title: <title>
Insight: <why this works>`

// Request carries the title form fields.
type Request struct {
	Topic       string  `json:"topic"`
	Keyword     string  `json:"keyword"`
	Tone        string  `json:"tone"`
	Goal        string  `json:"goal"`
	Temperature float32 `json:"temperature"`
}

// Optimise generates scored title suggestions for the request.
func Optimise(ctx context.Context, completer ai.Completer, req Request) ([]models.TitleSuggestion, error) {
	if strings.TrimSpace(req.Keyword) == "" {
		return nil, fmt.Errorf("a target keyword is required")
	}

	output, err := completer.Complete(ctx, ai.CompletionRequest{
		System:      optimiseSystem,
		Prompt:      fmt.Sprintf(optimisePrompt, req.Topic, req.Keyword, req.Tone, req.Goal),
		Temperature: req.Temperature,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	suggestions := parseSuggestions(output, req.Keyword)
	if len(suggestions) == 0 {
		return nil, &ai.MalformedOutputError{Reason: "no Title: entries in response", Raw: output}
	}
	return suggestions, nil
}

// parseSuggestions splits raw output on the "Title:" marker. A missing
// insight line is tolerated and left empty.
func parseSuggestions(output, keyword string) []models.TitleSuggestion {
	var suggestions []models.TitleSuggestion
	for _, entry := range strings.Split(output, "Title:") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		lines := strings.Split(entry, "\n")
		title := strings.TrimSpace(lines[0])
		if title == "" {
			continue
		}

		insight := ""
		for _, line := range lines[1:] {
			if strings.Contains(line, "Insight:") {
				insight = strings.TrimSpace(strings.Replace(line, "Insight:", "", 1))
				break
			}
		}

		score := HeuristicScore(title, keyword)
		suggestions = append(suggestions, models.TitleSuggestion{
			Title:   title,
			Insight: insight,
			Score:   score,
			Color:   ScoreColor(score),
		})
	}
	return suggestions
}

// HeuristicScore rates a title 0-10: 5 points for containing the keyword,
// up to 5 more for staying near the 50-character sweet spot, nothing for
// blowing the 70-character limit.
func HeuristicScore(title, keyword string) int {
	score := 0
	if keyword != "" && strings.Contains(strings.ToLower(title), strings.ToLower(keyword)) {
		score += 5
	}

	length := len([]rune(title))
	if length <= 70 {
		bonus := 5 - (length-50)/5
		if bonus < 0 {
			bonus = 0
		}
		score += bonus
	}

	if score > 10 {
		score = 10
	}
	return score
}

// ScoreColor maps a heuristic score to its display color.
func ScoreColor(score int) string {
	switch {
	case score >= 7:
		return "green"
	case score >= 4:
		return "orange"
	default:
		return "red"
	}
}
