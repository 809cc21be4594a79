package client_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/client"
	"resume-folio/dto"
)

func TestComposePreviewFragment(t *testing.T) {
	site := dto.SiteCode{
		HTMLCode: "<h1>Hi</h1>",
		CSSCode:  "h1 { color: red; }",
		JSCode:   "console.log('hi')",
	}

	out := client.ComposePreview(site)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<h1>Hi</h1>")
	assert.Contains(t, out, "<style>h1 { color: red; }</style>")
	assert.Contains(t, out, "<script>console.log('hi')</script>")
	// style lands in head, script in body
	assert.Less(t, strings.Index(out, "<style>"), strings.Index(out, "<body>"))
	assert.Greater(t, strings.Index(out, "<script>"), strings.Index(out, "<body>"))
}

func TestComposePreviewFullDocument(t *testing.T) {
	site := dto.SiteCode{
		HTMLCode: "<!DOCTYPE html><html><head><title>Me</title></head><body><main>hello</main></body></html>",
		CSSCode:  "main { padding: 1rem; }",
		JSCode:   "",
	}

	out := client.ComposePreview(site)

	assert.Equal(t, 1, strings.Count(out, "<!DOCTYPE html>"))
	assert.Equal(t, 1, strings.Count(out, "<html"))
	assert.Contains(t, out, "<title>Me</title>")
	assert.Contains(t, out, "main { padding: 1rem; }")
}

func TestComposePreviewDeterministic(t *testing.T) {
	site := dto.SiteCode{HTMLCode: "<p>x</p>", CSSCode: "p{}", JSCode: "y()"}
	assert.Equal(t, client.ComposePreview(site), client.ComposePreview(site))
}

func TestComposePreviewReflectsEdits(t *testing.T) {
	site := dto.SiteCode{HTMLCode: "<h1>Hi</h1>", CSSCode: "h1 { color: blue; }", JSCode: ""}
	before := client.ComposePreview(site)

	site.CSSCode = "h1 { color: red; }"
	after := client.ComposePreview(site)

	assert.NotEqual(t, before, after)
	assert.NotContains(t, after, "blue")
	assert.Contains(t, after, "h1 { color: red; }")
}
