package client

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ArchiveName returns the timestamped download filename for an export.
func ArchiveName(now time.Time) string {
	return "portfolio-" + now.Format("20060102-150405") + ".zip"
}

// ExportArchive writes the current blobs as a zip with the fixed entry names
// plus a README noting provenance. Refused while markup or stylesheet is
// blank, same rule as deployment.
func (s *Session) ExportArchive(w io.Writer, now time.Time) error {
	if err := s.CanPublish(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	entries := []struct {
		name    string
		content string
	}{
		{"index.html", s.Site.HTMLCode},
		{"style.css", s.Site.CSSCode},
		{"script.js", s.Site.JSCode},
		{"README.md", s.readme(now)},
	}
	for _, e := range entries {
		f, err := zw.Create(e.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", e.name, err)
		}
		if _, err := f.Write([]byte(e.content)); err != nil {
			return fmt.Errorf("write %s: %w", e.name, err)
		}
	}
	return zw.Close()
}

// ExportArchiveFile writes the archive into dir and returns its path.
func (s *Session) ExportArchiveFile(dir string, now time.Time) (string, error) {
	if err := s.CanPublish(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ArchiveName(now))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := s.ExportArchive(f, now); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *Session) readme(now time.Time) string {
	source := s.SourceFile
	if source == "" {
		source = "(unknown resume)"
	}
	readme := fmt.Sprintf(
		"# Portfolio site\n\nGenerated from %s with resume-folio.\nExported at %s.\n",
		source, now.Format(time.RFC3339),
	)
	if s.DeployURL != "" {
		readme += fmt.Sprintf("\nDeployed at %s.\n", s.DeployURL)
	}
	return readme
}
