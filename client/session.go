// Package client implements the user-facing side of the resume-to-site flow:
// an explicit session object, the gateway API client with a closed set of
// call outcomes, tabbed editing over the three code blobs, preview
// composition, and zip export.
package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-folio/dto"
)

// Placeholder text substituted for any generation field that came back empty,
// so the editor and preview never operate on absent content.
const (
	PlaceholderHTML = "<!-- no HTML generated -->"
	PlaceholderCSS  = "/* no CSS generated */"
	PlaceholderJS   = "// no JS generated"
)

// ErrEmptySite rejects deploy/export while markup or stylesheet is blank.
var ErrEmptySite = errors.New("markup and stylesheet must not be empty")

// Phase tracks where the session stands in the upload-generate-deploy flow.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseGenerated Phase = "generated"
	PhaseDeployed  Phase = "deployed"
)

// Session is the single-flight client state: one resume, one generated site,
// at most one deployment. Starting a new generation invalidates everything
// from the previous one.
type Session struct {
	SourceFile  string       `json:"source_file"`
	Site        dto.SiteCode `json:"-"`
	Phase       Phase        `json:"phase"`
	DeployURL   string       `json:"deploy_url,omitempty"`
	GeneratedAt time.Time    `json:"generated_at,omitzero"`
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{Phase: PhaseIdle}
}

// Reset clears all artifacts of the previous flow: code blobs, deployment
// URL, phase. Called whenever a new resume is submitted.
func (s *Session) Reset() {
	*s = Session{Phase: PhaseIdle}
}

// ApplyGeneration resets the session and installs a fresh generation result,
// substituting placeholders for any blank field.
func (s *Session) ApplyGeneration(sourceFile string, site dto.SiteCode) {
	s.Reset()
	s.SourceFile = sourceFile
	s.Site = withPlaceholders(site)
	s.Phase = PhaseGenerated
	s.GeneratedAt = time.Now()
}

func withPlaceholders(site dto.SiteCode) dto.SiteCode {
	if strings.TrimSpace(site.HTMLCode) == "" {
		site.HTMLCode = PlaceholderHTML
	}
	if strings.TrimSpace(site.CSSCode) == "" {
		site.CSSCode = PlaceholderCSS
	}
	if strings.TrimSpace(site.JSCode) == "" {
		site.JSCode = PlaceholderJS
	}
	return site
}

// CanPublish reports whether the current blobs satisfy the local deploy and
// export precondition: non-blank markup and stylesheet.
func (s *Session) CanPublish() error {
	if strings.TrimSpace(s.Site.HTMLCode) == "" || strings.TrimSpace(s.Site.CSSCode) == "" {
		return ErrEmptySite
	}
	return nil
}

// session directory layout
const (
	sessionFileHTML = "index.html"
	sessionFileCSS  = "style.css"
	sessionFileJS   = "script.js"
	sessionFileMeta = "folio.json"
)

// Save writes the session into dir so separate CLI invocations can pick the
// flow back up.
func (s *Session) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	files := map[string]string{
		sessionFileHTML: s.Site.HTMLCode,
		sessionFileCSS:  s.Site.CSSCode,
		sessionFileJS:   s.Site.JSCode,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}

	meta, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, sessionFileMeta), meta, 0o644)
}

// LoadSession reads a session previously written by Save.
func LoadSession(dir string) (*Session, error) {
	meta, err := os.ReadFile(filepath.Join(dir, sessionFileMeta))
	if err != nil {
		return nil, err
	}
	s := NewSession()
	if err := json.Unmarshal(meta, s); err != nil {
		return nil, err
	}

	read := func(name string) (string, error) {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if s.Site.HTMLCode, err = read(sessionFileHTML); err != nil {
		return nil, err
	}
	if s.Site.CSSCode, err = read(sessionFileCSS); err != nil {
		return nil, err
	}
	if s.Site.JSCode, err = read(sessionFileJS); err != nil {
		return nil, err
	}
	return s, nil
}
