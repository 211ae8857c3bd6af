package descriptions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/models"
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

func TestGenerate(t *testing.T) {
	completer := &fakeCompleter{output: "  A great description.\n"}
	params := models.DraftParams{
		Title:       "My Aquascape",
		Keyword:     "aquascaping",
		Topic:       "planted tanks",
		Tone:        "friendly",
		Goal:        "subscribers",
		Temperature: 0.7,
	}

	draft, err := Generate(context.Background(), completer, params)
	require.NoError(t, err)
	require.Equal(t, "A great description.", draft.Content)
	require.Equal(t, params, draft.Params)
	require.False(t, draft.CreatedAt.IsZero())
	require.Equal(t, float32(0.7), completer.last.Temperature)
	require.Contains(t, completer.last.Prompt, "My Aquascape")
	require.Contains(t, completer.last.Prompt, "aquascaping")
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		params models.DraftParams
	}{
		{"missing title", models.DraftParams{Keyword: "fish"}},
		{"missing keyword", models.DraftParams{Title: "My Video"}},
		{"blank title", models.DraftParams{Title: "   ", Keyword: "fish"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &fakeCompleter{}
			_, err := Generate(context.Background(), completer, tt.params)
			require.Error(t, err)
			require.Empty(t, completer.last.Prompt, "no model call on invalid input")
		})
	}
}

func TestReviseChainsDrafts(t *testing.T) {
	completer := &fakeCompleter{output: "A better description."}
	original := &models.DraftArtifact{
		Content: "A rough description.",
		Params:  models.DraftParams{Title: "t", Keyword: "k", Temperature: 0.4},
	}

	revised, err := Revise(context.Background(), completer, original, "make it punchier")
	require.NoError(t, err)
	require.Equal(t, "A better description.", revised.Content)
	require.Equal(t, original.Params, revised.Params, "revision keeps the original generation parameters")
	require.Equal(t, float32(0.4), completer.last.Temperature, "revision reuses the draft's temperature")
	require.Contains(t, completer.last.Prompt, "A rough description.")
	require.Contains(t, completer.last.Prompt, "make it punchier")

	// The revised artifact can itself be revised.
	completer.output = "An even better description."
	again, err := Revise(context.Background(), completer, revised, "shorter")
	require.NoError(t, err)
	require.Equal(t, "An even better description.", again.Content)
}

func TestReviseValidation(t *testing.T) {
	completer := &fakeCompleter{}
	draft := &models.DraftArtifact{Content: "something"}

	_, err := Revise(context.Background(), completer, nil, "feedback")
	require.Error(t, err)

	_, err = Revise(context.Background(), completer, &models.DraftArtifact{}, "feedback")
	require.Error(t, err)

	_, err = Revise(context.Background(), completer, draft, "  ")
	require.Error(t, err)
}
