package dto

import "strings"

// SiteCode is the generated site source: three independent text blobs.
// All fields are optional from the generation collaborator's point of view;
// the client substitutes placeholders for whatever is missing.
type SiteCode struct {
	HTMLCode string `json:"html_code" example:"<!DOCTYPE html>..."`
	CSSCode  string `json:"css_code" example:"body { margin: 0 }"`
	JSCode   string `json:"js_code" example:"console.log('hi')"`
}

// Empty reports whether all three blobs are blank after trimming.
func (s SiteCode) Empty() bool {
	return strings.TrimSpace(s.HTMLCode) == "" &&
		strings.TrimSpace(s.CSSCode) == "" &&
		strings.TrimSpace(s.JSCode) == ""
}

// DeployRequest is the body of POST /deploy-site/.
type DeployRequest struct {
	HTMLCode string `json:"html_code"`
	CSSCode  string `json:"css_code"`
	JSCode   string `json:"js_code"`
}

// DeployResponse carries the public URL returned by the hosting provider.
type DeployResponse struct {
	URL string `json:"url" example:"https://example.netlify.app"`
}

// HealthResponse is the body of GET /health.
// The groq_key_configured field name is frozen by the wire contract even
// when the configured backend is not Groq.
type HealthResponse struct {
	Status            string `json:"status" example:"healthy"`
	GroqKeyConfigured bool   `json:"groq_key_configured"`
}

// ErrorResponse is the common error body: a single human-readable detail.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Only PDF and DOCX are allowed"`
}
