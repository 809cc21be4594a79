// Package deployer publishes a generated site through a hosting provider and
// returns its public URL. Providers are opaque collaborators; nothing is
// verified beyond the URL they hand back.
package deployer

import (
	"context"
	"fmt"

	"resume-folio/config"
	"resume-folio/dto"
)

// Deployer publishes one site and returns its public URL.
type Deployer interface {
	Deploy(ctx context.Context, site dto.SiteCode) (string, error)
}

// The three fixed file names every provider publishes.
const (
	FileHTML = "index.html"
	FileCSS  = "style.css"
	FileJS   = "script.js"
)

// New builds the provider selected in the deploy config.
func New(cfg config.DeployConfig) (Deployer, error) {
	switch cfg.Provider {
	case "netlify":
		return NewNetlify(cfg.Netlify), nil
	case "s3":
		return NewS3(cfg.S3)
	case "local":
		return NewLocal(cfg.Local), nil
	default:
		return nil, fmt.Errorf("unknown deploy provider %q", cfg.Provider)
	}
}
