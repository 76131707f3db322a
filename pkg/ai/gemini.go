package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/meetmind-team/meetmind-backend/pkg/config"
)

// GeminiClient generates meeting summaries through the Gemini API. The
// client is stateless per call; one instance is shared by all requests.
type GeminiClient struct {
	apiKey string
	model  string
}

// NewGeminiClient creates a Gemini client using values from the provided
// config.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	c := &GeminiClient{}
	if cfg != nil {
		c.apiKey = cfg.APIKey
		c.model = cfg.Model
	}
	if c.model == "" {
		c.model = "gemini-2.5-pro"
	}
	return c
}

// GenerateSummary sends the prompt to Gemini and returns the concatenated
// candidate text. An empty response is an error, not an empty summary.
func (g *GeminiClient) GenerateSummary(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("empty response from gemini")
}
