// Package extractor turns uploaded resume files (PDF or DOCX) into plain text.
package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedType is returned when neither the extension nor the
	// declared media type matches the PDF/DOCX allow-list.
	ErrUnsupportedType = errors.New("only PDF and DOCX are allowed")

	// ErrNoText is returned when a syntactically valid file yields no text.
	ErrNoText = errors.New("no text extracted from resume")
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Kind identifies a supported resume file format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

// DetectKind validates filename extension and declared content type against
// the allow-list. A generic octet-stream content type is tolerated when the
// extension passes, since browsers often fail to label DOCX uploads.
func DetectKind(filename, contentType string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	switch ext {
	case ".pdf":
		if ct == "" || ct == mimePDF || ct == "application/octet-stream" {
			return KindPDF, nil
		}
	case ".docx":
		if ct == "" || ct == mimeDOCX || ct == "application/octet-stream" {
			return KindDOCX, nil
		}
	}
	return "", ErrUnsupportedType
}

// ExtractText dispatches on the detected kind and returns the resume's plain
// text. Blank output is an ErrNoText failure, not a success with empty text.
func ExtractText(filename, contentType string, data []byte) (string, error) {
	kind, err := DetectKind(filename, contentType)
	if err != nil {
		return "", err
	}

	var text string
	switch kind {
	case KindPDF:
		text, err = extractPDF(data)
	case KindDOCX:
		text, err = extractDOCX(data)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", kind, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}
