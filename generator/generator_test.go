package generator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/generator"
)

func TestParseSiteCode(t *testing.T) {
	raw := `{"html_code": "<h1>Hi</h1>", "css_code": "h1 { color: red; }", "js_code": "console.log('hi')"}`

	site, err := generator.ParseSiteCode(raw)
	assert.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>", site.HTMLCode)
	assert.Equal(t, "h1 { color: red; }", site.CSSCode)
	assert.Equal(t, "console.log('hi')", site.JSCode)
}

func TestParseSiteCodeFenced(t *testing.T) {
	raw := "```json\n{\"html_code\": \"<p>x</p>\", \"css_code\": \"p{}\", \"js_code\": \"\"}\n```"

	site, err := generator.ParseSiteCode(raw)
	assert.NoError(t, err)
	assert.Equal(t, "<p>x</p>", site.HTMLCode)
}

func TestParseSiteCodeMissingFields(t *testing.T) {
	site, err := generator.ParseSiteCode(`{"html_code": "<p>only html</p>"}`)
	assert.NoError(t, err)
	assert.Equal(t, "<p>only html</p>", site.HTMLCode)
	assert.Empty(t, site.CSSCode)
	assert.Empty(t, site.JSCode)
}

func TestParseSiteCodeInvalidJSON(t *testing.T) {
	_, err := generator.ParseSiteCode("Sure! Here is your portfolio site:")
	assert.ErrorIs(t, err, generator.ErrBadModelOutput)
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"```{\"a\":1}```", `{"a":1}`},
		{"  \n```json\n{}\n```\n  ", "{}"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, generator.StripCodeFences(c.in), c.in)
	}
}

// fakeClient scripts model answers for pipeline tests.
type fakeClient struct {
	answers []string
	prompts []string
	calls   int
}

func (f *fakeClient) Complete(_ context.Context, _ string, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	answer := f.answers[f.calls%len(f.answers)]
	f.calls++
	return answer, nil
}

func (f *fakeClient) KeyConfigured() bool { return true }
func (f *fakeClient) ModelName() string   { return "fake-model" }

func TestGenerateSite(t *testing.T) {
	fake := &fakeClient{answers: []string{
		"summary of the chunk",
		"summary of the chunk",
		`{"html_code": "<main>portfolio</main>", "css_code": "main{}", "js_code": ""}`,
	}}
	pipeline := generator.NewPipeline(fake, 9)

	site, err := pipeline.GenerateSite(context.Background(), "aaaa bbbb cccc dddd")
	assert.NoError(t, err)
	assert.Equal(t, "<main>portfolio</main>", site.HTMLCode)
	assert.Equal(t, "main{}", site.CSSCode)

	// two summarize calls for two chunks, then one code call
	assert.Equal(t, 3, fake.calls)
	assert.Contains(t, fake.prompts[0], "part 1")
	assert.Contains(t, fake.prompts[1], "part 2")
	assert.Contains(t, fake.prompts[2], "summary of the chunk")
}

func TestGenerateSiteBadOutput(t *testing.T) {
	fake := &fakeClient{answers: []string{"not json"}}
	pipeline := generator.NewPipeline(fake, 0)

	_, err := pipeline.GenerateSite(context.Background(), "a short resume")
	assert.ErrorIs(t, err, generator.ErrBadModelOutput)
}

func TestGenerateSiteFencedAnswer(t *testing.T) {
	fake := &fakeClient{answers: []string{
		"summary",
		"```json\n{\"html_code\": \"<p>x</p>\", \"css_code\": \"p{}\", \"js_code\": \"\"}\n```",
	}}
	pipeline := generator.NewPipeline(fake, 0)

	site, err := pipeline.GenerateSite(context.Background(), "resume text")
	assert.NoError(t, err)
	assert.False(t, site.Empty())
	assert.True(t, strings.Contains(site.HTMLCode, "<p>x</p>"))
}
