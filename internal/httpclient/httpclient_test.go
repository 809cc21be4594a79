package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/internal/httpclient"
	"resume-folio/internal/trace"
)

func TestNewRequestJoinsPaths(t *testing.T) {
	c := httpclient.NewBaseClient("http://example.com/api")

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/health", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "http://example.com/api/health", req.URL.String())
}

func TestNewRequestKeepsTrailingSlash(t *testing.T) {
	c := httpclient.NewBaseClient("http://example.com")

	req, err := c.NewRequest(context.Background(), http.MethodPost, "/upload-resume/", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "/upload-resume/", req.URL.Path)
}

func TestNewRequestQuery(t *testing.T) {
	c := httpclient.NewBaseClient("http://example.com")

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/health", url.Values{"v": {"1"}}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "v=1", req.URL.RawQuery)
}

func TestNewRequestRejectsInlineQuery(t *testing.T) {
	c := httpclient.NewBaseClient("http://example.com")

	_, err := c.NewRequest(context.Background(), http.MethodGet, "/health?v=1", nil, nil)
	assert.Error(t, err)
}

func TestTransportPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotSpanID = r.Header.Get("X-Span-Id")
	}))
	defer srv.Close()

	c := httpclient.NewBaseClient(srv.URL)
	ctx := trace.WithRequestAndSpan(context.Background(), "req-123", 0)

	req, err := c.NewRequest(ctx, http.MethodGet, "/", nil, nil)
	assert.NoError(t, err)
	resp, err := c.Do(req)
	assert.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-123", gotRequestID)
	assert.Equal(t, "1", gotSpanID)

	// a second call on the same request context gets the next span
	req, err = c.NewRequest(ctx, http.MethodGet, "/", nil, nil)
	assert.NoError(t, err)
	resp, err = c.Do(req)
	assert.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "2", gotSpanID)
}
