// Package descriptions generates and revises video descriptions. Revision
// takes an explicit draft artifact rather than reading ambient state, so the
// producing and consuming actions stay decoupled.
package descriptions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creator-toolkit/internal/ai"
	"creator-toolkit/internal/models"
)

const (
	writeSystem  = "You are a YouTube strategist who writes high-performing video descriptions."
	reviseSystem = "You are a helpful YouTube strategist."
)

const writePrompt = `You are a YouTube strategist and copywriter. Write an effective, engaging YouTube video description based on the following:

- Title: %s
- Topic: %s
- Keyword: %s
- Tone: %s
- Goal: %s

The description should:
- Be 1-3 paragraphs
- Naturally use the keyword or phrase
- Include calls to action if appropriate (subscribe, comment, visit links)
- Help with viewer retention and SEO

At the end, include a short explanation of how the description supports the goal.`

const revisePrompt = `Please revise the following YouTube video description:

%s

Based on this user feedback:
%s

Provide the improved description only.`

// Generate writes a fresh description and wraps it in a draft artifact that
// carries its generation parameters forward.
func Generate(ctx context.Context, completer ai.Completer, params models.DraftParams) (*models.DraftArtifact, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("a video title is required")
	}
	if strings.TrimSpace(params.Keyword) == "" {
		return nil, fmt.Errorf("a target keyword is required")
	}

	content, err := completer.Complete(ctx, ai.CompletionRequest{
		System:      writeSystem,
		Prompt:      fmt.Sprintf(writePrompt, params.Title, params.Topic, params.Keyword, params.Tone, params.Goal),
		Temperature: params.Temperature,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, err
	}

	return &models.DraftArtifact{
		Content:   strings.TrimSpace(content),
		Params:    params,
		CreatedAt: time.Now(),
	}, nil
}

// Revise rewrites an existing draft according to user feedback, reusing the
// draft's own generation temperature. The revised text becomes a new draft
// so revisions can be chained.
func Revise(ctx context.Context, completer ai.Completer, draft *models.DraftArtifact, feedback string) (*models.DraftArtifact, error) {
	if draft == nil || strings.TrimSpace(draft.Content) == "" {
		return nil, fmt.Errorf("no draft to revise")
	}
	if strings.TrimSpace(feedback) == "" {
		return nil, fmt.Errorf("revision feedback is required")
	}

	content, err := completer.Complete(ctx, ai.CompletionRequest{
		System:      reviseSystem,
		Prompt:      fmt.Sprintf(revisePrompt, draft.Content, feedback),
		Temperature: draft.Params.Temperature,
		MaxTokens:   600,
	})
	if err != nil {
		return nil, err
	}

	return &models.DraftArtifact{
		Content:   strings.TrimSpace(content),
		Params:    draft.Params,
		CreatedAt: time.Now(),
	}, nil
}
