// Package sentiment wraps the VADER classifier behind the two calls the
// researcher needs: a polarity score and its display label.
package sentiment

import (
	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Polarity scores text in [-1, 1].
func Polarity(text string) float64 {
	if text == "" {
		return 0
	}
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}

// Label maps a polarity score to its display label at the ±0.3 thresholds.
func Label(score float64) string {
	switch {
	case score > 0.3:
		return "Positive"
	case score < -0.3:
		return "Negative"
	default:
		return "Neutral"
	}
}
