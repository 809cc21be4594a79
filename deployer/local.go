package deployer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"resume-folio/config"
	"resume-folio/dto"
)

// Local writes the site files under a directory. Development fallback; the
// "public" URL is whatever base URL the config points at that directory.
type Local struct {
	dir           string
	publicBaseURL string
}

// NewLocal builds a filesystem deployer.
func NewLocal(cfg config.LocalConfig) *Local {
	return &Local{
		dir:           cfg.Dir,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

// Deploy implements Deployer.
func (l *Local) Deploy(_ context.Context, site dto.SiteCode) (string, error) {
	siteID := uuid.NewString()[:8]
	siteDir := filepath.Join(l.dir, siteID)
	if err := os.MkdirAll(siteDir, 0o755); err != nil {
		return "", fmt.Errorf("create site dir: %w", err)
	}

	files := map[string]string{
		FileHTML: site.HTMLCode,
		FileCSS:  site.CSSCode,
		FileJS:   site.JSCode,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(siteDir, name), []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", name, err)
		}
	}

	if l.publicBaseURL == "" {
		return "file://" + mustAbs(siteDir) + "/" + FileHTML, nil
	}
	return fmt.Sprintf("%s/%s/%s", l.publicBaseURL, siteID, FileHTML), nil
}

func mustAbs(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
