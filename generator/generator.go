// Package generator turns extracted resume text into portfolio site source
// using an external language-model backend.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-folio/config"
	"resume-folio/dto"
	"resume-folio/extractor"
	"resume-folio/internal/logger"
)

// ErrBadModelOutput marks a model response that could not be parsed as the
// expected JSON object.
var ErrBadModelOutput = errors.New("invalid JSON from model")

// Client is a minimal chat-completion backend. Implementations wrap one
// upstream API each (Groq, Gemini).
type Client interface {
	// Complete sends one prompt (with an optional system instruction) and
	// returns the raw model text.
	Complete(ctx context.Context, system, prompt string) (string, error)

	// KeyConfigured reports whether the backend has an API credential.
	KeyConfigured() bool

	// ModelName names the underlying model, for logging.
	ModelName() string
}

// NewClient builds the backend selected in the generation config.
func NewClient(cfg config.AppConfig) Client {
	switch cfg.Generation.Backend {
	case "gemini":
		return NewGeminiClient(cfg.Gemini)
	default:
		return NewGroqClient(cfg.Groq)
	}
}

const summarySystemPrompt = "You are a helpful assistant."

const codeSystemPrompt = `You are a web developer generating a portfolio site.
Respond with a valid JSON object and nothing else. Do NOT wrap the JSON in a
markdown code block.`

// Pipeline runs the resume-to-site flow: chunked summarization followed by a
// single code-generation call.
type Pipeline struct {
	client    Client
	chunkSize int
}

// NewPipeline builds a Pipeline over the given backend. chunkSize bounds the
// text sent to one summarization call.
func NewPipeline(client Client, chunkSize int) *Pipeline {
	return &Pipeline{client: client, chunkSize: chunkSize}
}

// GenerateSite summarizes the resume text and asks the model for the three
// site source blobs. Any of the returned fields may be empty; callers own
// the placeholder policy.
func (p *Pipeline) GenerateSite(ctx context.Context, resumeText string) (dto.SiteCode, error) {
	chunks := extractor.ChunkText(resumeText, p.chunkSize)

	var parts []string
	for i, chunk := range chunks {
		prompt := fmt.Sprintf(
			"Summarize part %d of a resume:\n\n%s\n\nFocus on About, Skills, Work, and Projects.",
			i+1, chunk,
		)
		part, err := p.client.Complete(ctx, summarySystemPrompt, prompt)
		if err != nil {
			return dto.SiteCode{}, fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, strings.TrimSpace(part))
	}
	summary := strings.Join(parts, "\n\n")

	logger.InfoWithFields("resume summarized", logger.Fields{
		"model":  p.client.ModelName(),
		"chunks": len(chunks),
	})

	raw, err := p.client.Complete(ctx, codeSystemPrompt, codePrompt(summary))
	if err != nil {
		return dto.SiteCode{}, fmt.Errorf("generate site code: %w", err)
	}

	site, err := ParseSiteCode(raw)
	if err != nil {
		return dto.SiteCode{}, err
	}
	return site, nil
}

func codePrompt(summary string) string {
	return fmt.Sprintf(`Generate a modern portfolio site based on this resume summary.
Return three strings:
- HTML file (reference style.css and script.js)
- CSS file (basic utility-based styling)
- JS file (simple interactive features)

Resume Summary:
%s

Respond with a valid JSON object like:
{
  "html_code": "<!DOCTYPE html>...</html>",
  "css_code": "body { ... }",
  "js_code": "console.log('...')"
}`, summary)
}

// ParseSiteCode decodes the model's JSON answer into a SiteCode. Markdown
// code fences are stripped first since models add them despite instructions.
func ParseSiteCode(raw string) (dto.SiteCode, error) {
	cleaned := StripCodeFences(raw)

	var site dto.SiteCode
	if err := json.Unmarshal([]byte(cleaned), &site); err != nil {
		return dto.SiteCode{}, fmt.Errorf("%w: %v", ErrBadModelOutput, err)
	}
	return site, nil
}

// StripCodeFences removes a surrounding ```...``` block, with or without a
// language tag, and returns the inner text.
func StripCodeFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		// drop the language tag line ("json", "html", ...)
		first := strings.TrimSpace(trimmed[:i])
		if first == "" || !strings.ContainsAny(first, "{}<") {
			trimmed = trimmed[i+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
