package deployer

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"context"

	"resume-folio/config"
	"resume-folio/dto"
	"resume-folio/internal/httpclient"
)

// Netlify deploys by uploading a zip of the site to the Netlify API.
// With a configured site id the zip goes to that site's deploys endpoint;
// otherwise a fresh site is created from the zip.
type Netlify struct {
	base   *httpclient.BaseClient
	token  string
	siteID string
}

// netlifyDeployResponse covers the URL fields of both the site and the
// deploy API objects.
type netlifyDeployResponse struct {
	SSLURL       string `json:"ssl_url"`
	URL          string `json:"url"`
	DeploySSLURL string `json:"deploy_ssl_url"`
}

// NewNetlify builds a Netlify deployer. Deploy uploads are not bounded by a
// client timeout; the caller's context decides.
func NewNetlify(cfg config.NetlifyConfig) *Netlify {
	return &Netlify{
		base:   httpclient.NewBaseClientWithClient(httpclient.New(httpclient.Config{}), cfg.BaseURL),
		token:  cfg.AuthToken,
		siteID: cfg.SiteID,
	}
}

// Deploy implements Deployer.
func (n *Netlify) Deploy(ctx context.Context, site dto.SiteCode) (string, error) {
	archive, err := zipSite(site)
	if err != nil {
		return "", fmt.Errorf("build site archive: %w", err)
	}

	relPath := "/api/v1/sites"
	if n.siteID != "" {
		relPath = fmt.Sprintf("/api/v1/sites/%s/deploys", n.siteID)
	}

	req, err := n.base.NewRequest(ctx, http.MethodPost, relPath, nil, bytes.NewReader(archive))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/zip")
	req.Header.Set("Authorization", "Bearer "+n.token)

	resp, err := n.base.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("netlify error (status %d): %s", resp.StatusCode, string(body))
	}

	var out netlifyDeployResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode netlify response: %w", err)
	}

	switch {
	case out.SSLURL != "":
		return out.SSLURL, nil
	case out.URL != "":
		return out.URL, nil
	case out.DeploySSLURL != "":
		return out.DeploySSLURL, nil
	}
	return "", fmt.Errorf("deployment succeeded but no URL found")
}

// zipSite packs the three fixed entries into an in-memory zip archive.
func zipSite(site dto.SiteCode) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	entries := []struct {
		name    string
		content string
	}{
		{FileHTML, site.HTMLCode},
		{FileCSS, site.CSSCode},
		{FileJS, site.JSCode},
	}
	for _, e := range entries {
		f, err := w.Create(e.name)
		if err != nil {
			return nil, err
		}
		if _, err := f.Write([]byte(e.content)); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
