package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"creator-toolkit/internal/config"
)

// CompletionRequest is one free-text generation call.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32 // 0.0-1.0
	MaxTokens   int32
}

// Completer is implemented by Client and by test fakes.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ImageRequest is one image generation call. Quality has no model-side
// equivalent yet and is carried for interface parity with the callers.
type ImageRequest struct {
	Prompt  string
	Size    string // "1792x1024", "1024x1024", "1024x1792"
	Quality string
}

// ImageGenerator is implemented by Client and by test fakes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error)
}

type Client struct {
	client     *genai.Client
	model      string
	imageModel string
}

func NewClient(ctx context.Context, cfg *config.AIConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:     client,
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
	}, nil
}

// Complete sends one prompt and returns the raw response text.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(req.Prompt)}, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxTokens,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// GenerateImage produces one image and returns its bytes.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) ([]byte, error) {
	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    aspectRatio(req.Size),
	}

	resp, err := c.client.Models.GenerateImages(ctx, c.imageModel, req.Prompt, cfg)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("no image returned by model")
	}
	return resp.GeneratedImages[0].Image.ImageBytes, nil
}

func aspectRatio(size string) string {
	switch size {
	case "1024x1024":
		return "1:1"
	case "1024x1792":
		return "9:16"
	default:
		return "16:9" // thumbnail default, matches 1792x1024
	}
}
