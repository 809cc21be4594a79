package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"resume-folio/config"
)

// GeminiClient is the alternative generation backend using Google's genai SDK.
type GeminiClient struct {
	apiKey string
	model  string
}

// NewGeminiClient builds a Gemini-backed Client.
func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	return &GeminiClient{apiKey: cfg.APIKey, model: cfg.Model}
}

// Complete implements Client via a single GenerateContent call.
func (c *GeminiClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		}
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return result.Text(), nil
}

// KeyConfigured implements Client.
func (c *GeminiClient) KeyConfigured() bool { return c.apiKey != "" }

// ModelName implements Client.
func (c *GeminiClient) ModelName() string { return c.model }
