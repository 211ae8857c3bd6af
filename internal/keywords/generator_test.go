package keywords

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/logger"
)

type fakeCompleter struct {
	output string
	err    error
	last   ai.CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	f.last = req
	return f.output, f.err
}

type fakeTrends struct {
	scores map[string]int
}

func (f *fakeTrends) Score(ctx context.Context, keyword string) (int, bool) {
	v, ok := f.scores[keyword]
	return v, ok
}

const sampleTable = `Here is the analysis:

| Keyword | Popularity | Competition | Rankability | Alternatives | Insight |
|---|---|---|---|---|---|
| aquascaping | 7 | 3 | Good | nano tanks, planted tanks, shrimp tanks | Niche but growing |
| fish | 9 | 9 | Saturated | betta care, fish tank ideas | Too broad |
`

func TestAnalyzePrefersTrendPopularity(t *testing.T) {
	completer := &fakeCompleter{output: sampleTable}
	trends := &fakeTrends{scores: map[string]int{"aquascaping": 4}}
	g := NewGenerator(completer, trends, logger.New("test"))

	reports, err := g.Analyze(context.Background(), "aquascaping, fish")
	require.NoError(t, err)
	require.Len(t, reports, 2)

	require.Equal(t, "aquascaping", reports[0].Keyword)
	require.Equal(t, 4, reports[0].Popularity, "live trend number wins over the model estimate")
	require.True(t, reports[0].TrendBacked)
	require.Equal(t, []string{"nano tanks", "planted tanks", "shrimp tanks"}, reports[0].Alternatives)

	require.Equal(t, 9, reports[1].Popularity, "model estimate used when trends have no data")
	require.False(t, reports[1].TrendBacked)

	require.Equal(t, float32(0.0), completer.last.Temperature)
}

func TestAnalyzeZeroTrendFallsBackToModel(t *testing.T) {
	completer := &fakeCompleter{output: sampleTable}
	trends := &fakeTrends{scores: map[string]int{"aquascaping": 0}}
	g := NewGenerator(completer, trends, logger.New("test"))

	reports, err := g.Analyze(context.Background(), "aquascaping")
	require.NoError(t, err)
	require.Equal(t, 7, reports[0].Popularity)
	require.False(t, reports[0].TrendBacked)
}

func TestAnalyzeSkipsUnparseableRows(t *testing.T) {
	table := `| Keyword | Popularity | Competition | Rankability | Alternatives | Insight |
| good | 5 | 5 | Medium | alt | fine |
| bad | high | 5 | Medium | alt | fine |
| short row | 5 |
`
	g := NewGenerator(&fakeCompleter{output: table}, &fakeTrends{}, logger.New("test"))

	reports, err := g.Analyze(context.Background(), "good, bad")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, "good", reports[0].Keyword)
}

func TestAnalyzeMalformedOutput(t *testing.T) {
	g := NewGenerator(&fakeCompleter{output: "I cannot produce a table today."}, &fakeTrends{}, logger.New("test"))

	_, err := g.Analyze(context.Background(), "anything")
	var malformed *ai.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Raw, "cannot produce")
}

func TestAnalyzeValidation(t *testing.T) {
	g := NewGenerator(&fakeCompleter{}, &fakeTrends{}, logger.New("test"))
	_, err := g.Analyze(context.Background(), "   ")
	require.Error(t, err)
}

func TestAnalyzePropagatesCompleterError(t *testing.T) {
	g := NewGenerator(&fakeCompleter{err: errors.New("quota exceeded")}, &fakeTrends{}, logger.New("test"))
	_, err := g.Analyze(context.Background(), "anything")
	require.ErrorContains(t, err, "quota exceeded")
}

func TestScore(t *testing.T) {
	tests := []struct {
		popularity  int
		competition int
		expected    float64
	}{
		{10, 0, 10},
		{8, 2, 8.6},
		{10, 10, 5},
		{1, 10, 3.3},
		{5, 5, 6.5},
	}

	for _, tt := range tests {
		if got := Score(tt.popularity, tt.competition); got != tt.expected {
			t.Errorf("Score(%d, %d) = %v, want %v", tt.popularity, tt.competition, got, tt.expected)
		}
	}
}

func TestScoreLabelAndRankability(t *testing.T) {
	tests := []struct {
		score       float64
		label       string
		rankability string
	}{
		{9, "Excellent Potential", "Excellent"},
		{8, "Excellent Potential", "Excellent"},
		{6.5, "Strong Opportunity", "Good"},
		{4, "Balanced Potential", "Medium"},
		{2.5, "Low Potential", "Low"},
		{1, "High Risk", "Low"},
	}

	for _, tt := range tests {
		if got := ScoreLabel(tt.score); got != tt.label {
			t.Errorf("ScoreLabel(%v) = %q, want %q", tt.score, got, tt.label)
		}
		if got := Rankability(tt.score); got != tt.rankability {
			t.Errorf("Rankability(%v) = %q, want %q", tt.score, got, tt.rankability)
		}
	}
}
