package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"resume-folio/config"
	"resume-folio/internal/httpclient"
)

// GroqClient talks to Groq's OpenAI-compatible chat-completions API.
type GroqClient struct {
	base   *httpclient.BaseClient
	apiKey string
	model  string
}

// chatCompletionRequest is the OpenAI-style /chat/completions request body.
type chatCompletionRequest struct {
	Model    string              `json:"model"`
	Messages []chatCompletionMsg `json:"messages"`
}

type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the OpenAI-style /chat/completions response body.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewGroqClient builds a client for the configured Groq endpoint. Generation
// calls can run long, so the request deadline comes from the caller's context
// rather than a client-level timeout.
func NewGroqClient(cfg config.GroqConfig) *GroqClient {
	return &GroqClient{
		base:   httpclient.NewBaseClientWithClient(httpclient.New(httpclient.Config{}), cfg.BaseURL),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// Complete implements Client over POST /chat/completions.
func (c *GroqClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	var messages []chatCompletionMsg
	if system != "" {
		messages = append(messages, chatCompletionMsg{Role: "system", Content: system})
	}
	messages = append(messages, chatCompletionMsg{Role: "user", Content: prompt})

	buf, err := json.Marshal(chatCompletionRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/chat/completions", nil, bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.base.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("groq error: %s", chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq error (status %d): %s", resp.StatusCode, string(body))
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("groq: no response choices returned")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// KeyConfigured implements Client.
func (c *GroqClient) KeyConfigured() bool { return c.apiKey != "" }

// ModelName implements Client.
func (c *GroqClient) ModelName() string { return c.model }
