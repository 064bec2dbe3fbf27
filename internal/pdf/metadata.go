package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Metadata holds the document information fields relevant to outline
// extraction.
type Metadata struct {
	Title   string `json:"title,omitempty"`
	Author  string `json:"author,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// ReadMetadata extracts the document information dictionary using pdfcpu.
// Validation is relaxed: many real-world PDFs carry minor spec violations
// and still have usable info dictionaries.
func ReadMetadata(path string) (*Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	// Validation populates the document information fields on the xref table.
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to validate PDF: %w", err)
	}

	return &Metadata{
		Title:   strings.TrimSpace(ctx.Title),
		Author:  strings.TrimSpace(ctx.Author),
		Subject: strings.TrimSpace(ctx.Subject),
	}, nil
}

// MetadataTitle returns the declared document title, or empty when the
// document carries none or cannot be parsed. Callers fall back to
// content-based title selection.
func MetadataTitle(path string) string {
	meta, err := ReadMetadata(path)
	if err != nil {
		return ""
	}
	return meta.Title
}
