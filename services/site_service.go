// Package services holds the gateway's business logic between the HTTP
// handlers and the external collaborators.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"resume-folio/deployer"
	"resume-folio/dto"
	"resume-folio/extractor"
	"resume-folio/internal/logger"
)

// ErrEmptySite rejects a deploy whose markup or stylesheet is blank.
var ErrEmptySite = errors.New("html_code and css_code must not be empty")

// SiteGenerator produces site source from resume text.
type SiteGenerator interface {
	GenerateSite(ctx context.Context, resumeText string) (dto.SiteCode, error)
}

// SiteService wires resume extraction, code generation, and deployment.
type SiteService struct {
	generator SiteGenerator
	deployer  deployer.Deployer
}

func NewSiteService(gen SiteGenerator, dep deployer.Deployer) *SiteService {
	return &SiteService{generator: gen, deployer: dep}
}

// GenerateFromResume validates the uploaded file, extracts its text, and asks
// the generation backend for the three code blobs. Returned fields may be
// empty; the client substitutes placeholders.
func (s *SiteService) GenerateFromResume(ctx context.Context, filename, contentType string, data []byte) (dto.SiteCode, error) {
	text, err := extractor.ExtractText(filename, contentType, data)
	if err != nil {
		return dto.SiteCode{}, err
	}

	start := time.Now()
	site, err := s.generator.GenerateSite(ctx, text)
	if err != nil {
		return dto.SiteCode{}, err
	}

	logger.InfoWithFields("site generated", logger.Fields{
		"filename":    filename,
		"text_chars":  len(text),
		"duration_ms": time.Since(start).Milliseconds(),
		"html_bytes":  len(site.HTMLCode),
		"css_bytes":   len(site.CSSCode),
		"js_bytes":    len(site.JSCode),
	})
	return site, nil
}

// Deploy forwards the (possibly edited) triple to the hosting provider and
// returns its public URL. Markup and stylesheet must be non-blank.
func (s *SiteService) Deploy(ctx context.Context, req dto.DeployRequest) (string, error) {
	if strings.TrimSpace(req.HTMLCode) == "" || strings.TrimSpace(req.CSSCode) == "" {
		return "", ErrEmptySite
	}

	site := dto.SiteCode{
		HTMLCode: req.HTMLCode,
		CSSCode:  req.CSSCode,
		JSCode:   req.JSCode,
	}

	start := time.Now()
	url, err := s.deployer.Deploy(ctx, site)
	if err != nil {
		return "", err
	}

	logger.InfoWithFields("site deployed", logger.Fields{
		"url":         url,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return url, nil
}
