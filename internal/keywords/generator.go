// Package keywords analyzes candidate keywords by blending a model-estimated
// table with live trend popularity.
package keywords

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/models"
)

const analyzeSystem = "You are an SEO and YouTube keyword expert."

const analyzePrompt = `You are a video content strategist. Analyze the following keywords or phrases:

%s

For each one:
- Score its popularity from 1-10
- Score its likely competition from 1-10 (higher = more competitive)
- Suggest if it's good for ranking or too saturated
- Recommend three alternative keywords or phrases that are more specific or have better SEO opportunity

Most importantly, include a unique and helpful insight for each keyword AND each alternative:
- Explain why this keyword might perform well or not
- Suggest content types, audience appeal, or strategic SEO intent
- Tailor the insight to the specific keyword - do not reuse language or generic phrases like "offers better SEO opportunity"

Return a markdown table using six columns:
| Keyword | Popularity | Competition | Rankability | Alternatives | Insight |`

// TrendSource supplies live popularity; ok is false when the service has no
// data for the keyword.
type TrendSource interface {
	Score(ctx context.Context, keyword string) (int, bool)
}

type Generator struct {
	completer ai.Completer
	trends    TrendSource
	log       *slog.Logger
}

func NewGenerator(completer ai.Completer, trends TrendSource, log *slog.Logger) *Generator {
	return &Generator{completer: completer, trends: trends, log: log}
}

// Analyze scores the user's keywords. Popularity prefers the live trend
// number and falls back to the model's estimate when trends have nothing;
// rows with unparseable numbers are skipped rather than failing the batch.
func (g *Generator) Analyze(ctx context.Context, input string) ([]models.KeywordReport, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("at least one keyword or phrase is required")
	}

	content, err := g.completer.Complete(ctx, ai.CompletionRequest{
		System:      analyzeSystem,
		Prompt:      fmt.Sprintf(analyzePrompt, input),
		Temperature: 0.0,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, err
	}

	rows, err := parseTable(content)
	if err != nil {
		return nil, err
	}

	var reports []models.KeywordReport
	for _, cells := range rows[1:] { // first row is the header
		if len(cells) < tableColumns {
			continue
		}
		keyword := cells[0]

		popularity, trendBacked := g.trends.Score(ctx, keyword)
		if !trendBacked || popularity == 0 {
			popularity, err = strconv.Atoi(cells[1])
			if err != nil {
				g.log.Debug("skipping row with unparseable popularity", "keyword", keyword, "raw", cells[1])
				continue
			}
			trendBacked = false
		}

		competition, err := strconv.Atoi(cells[2])
		if err != nil {
			g.log.Debug("skipping row with unparseable competition", "keyword", keyword, "raw", cells[2])
			continue
		}

		score := Score(popularity, competition)
		reports = append(reports, models.KeywordReport{
			Keyword:      keyword,
			Popularity:   popularity,
			Competition:  competition,
			Score:        score,
			Label:        ScoreLabel(score),
			Rankability:  Rankability(score),
			Alternatives: splitAlternatives(cells[4]),
			Insight:      cells[5],
			TrendBacked:  trendBacked,
		})
	}

	return reports, nil
}

// Score combines popularity and competition into a single 0-10 potential
// figure, rounded to one decimal. The unobtainable ideal (popularity 10,
// competition 0) scores 10.
func Score(popularity, competition int) float64 {
	raw := 10 - math.Sqrt(math.Pow(float64(10-popularity), 2)+math.Pow(float64(competition), 2))/2
	return math.Round(raw*10) / 10
}

// ScoreLabel maps a score to its display label.
func ScoreLabel(score float64) string {
	switch {
	case score >= 8:
		return "Excellent Potential"
	case score >= 6:
		return "Strong Opportunity"
	case score >= 4:
		return "Balanced Potential"
	case score >= 2:
		return "Low Potential"
	default:
		return "High Risk"
	}
}

// Rankability maps a score to its coarse tier.
func Rankability(score float64) string {
	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	case score >= 4:
		return "Medium"
	default:
		return "Low"
	}
}
