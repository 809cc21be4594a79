package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/dto"
)

// fakeGateway serves /health with the given status and records whether the
// upload route was ever hit.
type fakeGateway struct {
	srv          *httptest.Server
	uploadCalled bool
}

func newFakeGateway(t *testing.T, healthStatus string, keyConfigured bool) *fakeGateway {
	t.Helper()
	g := &fakeGateway{}
	g.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			json.NewEncoder(w).Encode(dto.HealthResponse{
				Status:            healthStatus,
				GroqKeyConfigured: keyConfigured,
			})
		case "/upload-resume/":
			g.uploadCalled = true
			json.NewEncoder(w).Encode(dto.SiteCode{
				HTMLCode: "<main>me</main>", CSSCode: "main{}", JSCode: "",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(g.srv.Close)
	return g
}

func runGenerate(t *testing.T, gateway, resumePath, session string) error {
	t.Helper()
	cmd := newRootCommand()
	cmd.SetArgs([]string{"generate", resumePath, "--gateway", gateway, "--session", session})
	return cmd.ExecuteContext(context.Background())
}

func TestGenerateBlockedWhenGatewayDegraded(t *testing.T) {
	gw := newFakeGateway(t, "degraded", false)

	err := runGenerate(t, gw.srv.URL, "resume.pdf", t.TempDir())
	assert.ErrorContains(t, err, "generation disabled")
	assert.ErrorContains(t, err, "degraded")
	assert.False(t, gw.uploadCalled, "a non-healthy gateway must block the upload")
}

func TestGenerateBlockedWhenGatewayUnreachable(t *testing.T) {
	gw := newFakeGateway(t, "healthy", true)
	gw.srv.Close()

	err := runGenerate(t, gw.srv.URL, "resume.pdf", t.TempDir())
	assert.ErrorContains(t, err, "generation disabled")
	assert.ErrorContains(t, err, "unreachable")
	assert.False(t, gw.uploadCalled)
}

func TestGenerateProceedsWhenGatewayHealthy(t *testing.T) {
	gw := newFakeGateway(t, "healthy", true)

	resume := filepath.Join(t.TempDir(), "resume.pdf")
	assert.NoError(t, os.WriteFile(resume, []byte("%PDF-1.4 dummy"), 0o644))
	session := filepath.Join(t.TempDir(), "site")

	err := runGenerate(t, gw.srv.URL, resume, session)
	assert.NoError(t, err)
	assert.True(t, gw.uploadCalled)

	content, err := os.ReadFile(filepath.Join(session, "index.html"))
	assert.NoError(t, err)
	assert.Equal(t, "<main>me</main>", string(content))
}
