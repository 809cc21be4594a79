package deployer_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-folio/config"
	"resume-folio/deployer"
	"resume-folio/dto"
)

var testSite = dto.SiteCode{
	HTMLCode: "<main>portfolio</main>",
	CSSCode:  "main { margin: 0 auto; }",
	JSCode:   "console.log('hi')",
}

func TestNewUnknownProvider(t *testing.T) {
	_, err := deployer.New(config.DeployConfig{Provider: "ftp"})
	assert.Error(t, err)
}

func TestLocalDeploy(t *testing.T) {
	dir := t.TempDir()
	d := deployer.NewLocal(config.LocalConfig{Dir: dir})

	url, err := d.Deploy(context.Background(), testSite)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "file://"))
	assert.True(t, strings.HasSuffix(url, "/index.html"))

	siteDirs, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, siteDirs, 1)

	siteDir := filepath.Join(dir, siteDirs[0].Name())
	for name, want := range map[string]string{
		"index.html": testSite.HTMLCode,
		"style.css":  testSite.CSSCode,
		"script.js":  testSite.JSCode,
	} {
		content, err := os.ReadFile(filepath.Join(siteDir, name))
		assert.NoError(t, err)
		assert.Equal(t, want, string(content))
	}
}

func TestLocalDeployPublicBaseURL(t *testing.T) {
	d := deployer.NewLocal(config.LocalConfig{
		Dir:           t.TempDir(),
		PublicBaseURL: "https://sites.example.com/",
	})

	url, err := d.Deploy(context.Background(), testSite)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://sites.example.com/"))
	assert.NotContains(t, url, "//index.html")
}

func TestLocalDeployDistinctIDs(t *testing.T) {
	d := deployer.NewLocal(config.LocalConfig{Dir: t.TempDir()})

	first, err := d.Deploy(context.Background(), testSite)
	assert.NoError(t, err)
	second, err := d.Deploy(context.Background(), testSite)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNetlifyDeployNewSite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sites", r.URL.Path)
		assert.Equal(t, "application/zip", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
		assert.NoError(t, err)
		var names []string
		for _, f := range zr.File {
			names = append(names, f.Name)
		}
		assert.ElementsMatch(t, []string{"index.html", "style.css", "script.js"}, names)

		json.NewEncoder(w).Encode(map[string]string{"ssl_url": "https://folio.netlify.app"})
	}))
	defer srv.Close()

	d := deployer.NewNetlify(config.NetlifyConfig{BaseURL: srv.URL, AuthToken: "token-123"})
	url, err := d.Deploy(context.Background(), testSite)
	assert.NoError(t, err)
	assert.Equal(t, "https://folio.netlify.app", url)
}

func TestNetlifyDeployExistingSite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sites/site-42/deploys", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"deploy_ssl_url": "https://deploy-preview.netlify.app"})
	}))
	defer srv.Close()

	d := deployer.NewNetlify(config.NetlifyConfig{BaseURL: srv.URL, AuthToken: "t", SiteID: "site-42"})
	url, err := d.Deploy(context.Background(), testSite)
	assert.NoError(t, err)
	assert.Equal(t, "https://deploy-preview.netlify.app", url)
}

func TestNetlifyDeployNoURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "abc"}`))
	}))
	defer srv.Close()

	d := deployer.NewNetlify(config.NetlifyConfig{BaseURL: srv.URL, AuthToken: "t"})
	_, err := d.Deploy(context.Background(), testSite)
	assert.ErrorContains(t, err, "no URL found")
}

func TestNetlifyDeployAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "bad token"}`))
	}))
	defer srv.Close()

	d := deployer.NewNetlify(config.NetlifyConfig{BaseURL: srv.URL, AuthToken: "wrong"})
	_, err := d.Deploy(context.Background(), testSite)
	assert.ErrorContains(t, err, "status 401")
}
