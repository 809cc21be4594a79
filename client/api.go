package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"resume-folio/dto"
	"resume-folio/extractor"
	"resume-folio/internal/httpclient"
)

// DefaultGenerateTimeout bounds one generation request end to end.
const DefaultGenerateTimeout = 60 * time.Second

const defaultGatewayURL = "http://localhost:8000"

// GatewayStatus classifies the health probe result. Generation is hard-gated
// on this classification.
type GatewayStatus int

const (
	GatewayHealthy GatewayStatus = iota
	GatewayDegraded
	GatewayUnreachable
)

func (g GatewayStatus) String() string {
	switch g {
	case GatewayHealthy:
		return "healthy"
	case GatewayDegraded:
		return "degraded"
	default:
		return "unreachable"
	}
}

// HealthStatus is the probe snapshot taken at session start.
type HealthStatus struct {
	Gateway       GatewayStatus
	KeyConfigured bool
}

// API is the thin client for the gateway's three endpoints.
type API struct {
	base            *httpclient.BaseClient
	GenerateTimeout time.Duration
}

// NewAPI builds a client for the given base URL. An empty URL falls back to
// the FOLIO_GATEWAY_URL environment variable, then to the local default.
func NewAPI(baseURL string) *API {
	if baseURL == "" {
		baseURL = os.Getenv("FOLIO_GATEWAY_URL")
	}
	if baseURL == "" {
		baseURL = defaultGatewayURL
	}
	return &API{
		// deploys run to completion, so the client itself carries no timeout;
		// the generation call gets a per-request context deadline instead
		base:            httpclient.NewBaseClientWithClient(httpclient.New(httpclient.Config{}), baseURL),
		GenerateTimeout: DefaultGenerateTimeout,
	}
}

// Health probes GET /health once and classifies the result.
func (a *API) Health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := a.base.NewRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return HealthStatus{Gateway: GatewayUnreachable}
	}
	resp, err := a.base.Do(req)
	if err != nil {
		return HealthStatus{Gateway: GatewayUnreachable}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return HealthStatus{Gateway: GatewayUnreachable}
	}

	var health dto.HealthResponse
	if resp.StatusCode != http.StatusOK || json.Unmarshal(body, &health) != nil {
		return HealthStatus{Gateway: GatewayDegraded}
	}
	if health.Status != "healthy" {
		return HealthStatus{Gateway: GatewayDegraded, KeyConfigured: health.GroqKeyConfigured}
	}
	return HealthStatus{Gateway: GatewayHealthy, KeyConfigured: health.GroqKeyConfigured}
}

// Generate uploads the resume file and returns the generation outcome. A
// non-nil error is a local validation or read failure: it is reported inline
// and nothing was sent over the network.
func (a *API) Generate(ctx context.Context, path string) (Outcome, error) {
	filename := filepath.Base(path)
	if _, err := extractor.DetectKind(filename, ""); err != nil {
		return Outcome{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{}, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return Outcome{}, err
	}
	if _, err := part.Write(data); err != nil {
		return Outcome{}, err
	}
	if err := writer.Close(); err != nil {
		return Outcome{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, a.GenerateTimeout)
	defer cancel()

	req, err := a.base.NewRequest(ctx, http.MethodPost, "/upload-resume/", nil, &buf)
	if err != nil {
		return Outcome{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.base.Do(req)
	if err != nil {
		return transportOutcome(err), nil
	}
	defer resp.Body.Close()

	// read the body as text first, then parse
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportOutcome(err), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serverErrorOutcome(body), nil
	}

	var site dto.SiteCode
	if err := json.Unmarshal(body, &site); err != nil {
		return Outcome{Kind: OutcomeMalformedBody, Detail: err.Error()}, nil
	}
	if site.Empty() {
		return Outcome{Kind: OutcomeEmptyContent}, nil
	}
	return Outcome{Kind: OutcomeSuccess, Site: site}, nil
}

// Deploy submits the current triple to the gateway. No timeout is applied;
// the request runs to completion or failure.
func (a *API) Deploy(ctx context.Context, site dto.SiteCode) Outcome {
	payload, err := json.Marshal(dto.DeployRequest{
		HTMLCode: site.HTMLCode,
		CSSCode:  site.CSSCode,
		JSCode:   site.JSCode,
	})
	if err != nil {
		return Outcome{Kind: OutcomeConnectionFailure, Detail: err.Error()}
	}

	req, err := a.base.NewRequest(ctx, http.MethodPost, "/deploy-site/", nil, bytes.NewReader(payload))
	if err != nil {
		return Outcome{Kind: OutcomeConnectionFailure, Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.base.Do(req)
	if err != nil {
		return transportOutcome(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportOutcome(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serverErrorOutcome(body)
	}

	var out dto.DeployResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Outcome{Kind: OutcomeMalformedBody, Detail: err.Error()}
	}
	if out.URL == "" {
		return Outcome{Kind: OutcomeMalformedBody, Detail: "response carried no url"}
	}
	return Outcome{Kind: OutcomeSuccess, URL: out.URL}
}

// transportOutcome distinguishes a deadline expiry from other connection
// failures so the user sees a timeout-specific message.
func transportOutcome(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return Outcome{Kind: OutcomeTimeout, Detail: err.Error()}
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return Outcome{Kind: OutcomeTimeout, Detail: err.Error()}
	}
	return Outcome{Kind: OutcomeConnectionFailure, Detail: err.Error()}
}

// serverErrorOutcome surfaces the server's detail message verbatim when the
// error body parses, and falls back to a generic message otherwise.
func serverErrorOutcome(body []byte) Outcome {
	var e dto.ErrorResponse
	if json.Unmarshal(body, &e) == nil && e.Detail != "" {
		return Outcome{Kind: OutcomeServerError, Detail: e.Detail}
	}
	return Outcome{Kind: OutcomeServerError}
}
