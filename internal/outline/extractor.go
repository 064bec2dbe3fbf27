package outline

import (
	"log"

	"github.com/docstruct/pdf-outline/internal/pdf"
)

// Extractor runs the full per-document pipeline: open, select title,
// gather fragments, classify, assemble. Each document is processed in
// isolation; statistics never leak between documents.
type Extractor struct {
	maxFileSize int64
	thresholds  Thresholds
	classifier  *Classifier
	titles      *TitleSelector
}

// NewExtractor creates an extractor with default thresholds.
func NewExtractor(maxFileSize int64) *Extractor {
	return NewExtractorWithThresholds(maxFileSize, DefaultThresholds())
}

// NewExtractorWithThresholds creates an extractor with custom thresholds.
func NewExtractorWithThresholds(maxFileSize int64, t Thresholds) *Extractor {
	return &Extractor{
		maxFileSize: maxFileSize,
		thresholds:  t,
		classifier:  NewClassifierWithThresholds(t),
		titles:      NewTitleSelectorWithThresholds(t),
	}
}

// ExtractFile extracts the outline of one PDF. Any failure to open or
// parse the document yields the canonical error result rather than an
// error: a broken document must not break a batch.
func (e *Extractor) ExtractFile(path string) *Result {
	doc, err := pdf.OpenDocument(path, e.maxFileSize)
	if err != nil {
		log.Printf("cannot open %s: %v", path, err)
		return ErrorResult()
	}
	defer doc.Close()

	return e.Extract(doc, pdf.MetadataTitle(path))
}

// Extract runs title selection and heading classification over an open
// document. The metadata title may be empty.
func (e *Extractor) Extract(doc *pdf.Document, metadataTitle string) *Result {
	title := e.titles.Select(metadataTitle, e.titleScanWindow(doc))

	// First pass: materialize every fragment. Document-wide statistics
	// need the full stream before anything can be classified.
	fragments := doc.AllFragments()
	if len(fragments) == 0 {
		return &Result{Title: title, Outline: []Heading{}}
	}

	stats := FragmentFontStatistics(fragments)
	if stats.Degenerate() {
		return &Result{Title: title, Outline: []Heading{}}
	}

	// Second pass: classify each fragment independently.
	var headings []Heading
	for _, frag := range fragments {
		if h, ok := e.classifier.Classify(frag, stats); ok {
			headings = append(headings, h)
		}
	}

	return &Result{
		Title:   title,
		Outline: AssembleOutline(headings),
	}
}

// titleScanWindow gathers per-page fragment lists for the pages the title
// selector inspects.
func (e *Extractor) titleScanWindow(doc *pdf.Document) [][]pdf.StyledFragment {
	numPages := doc.NumPages()
	if numPages > e.thresholds.TitleScanPages {
		numPages = e.thresholds.TitleScanPages
	}

	pages := make([][]pdf.StyledFragment, 0, numPages)
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		pages = append(pages, doc.PageFragments(pageNum))
	}
	return pages
}
