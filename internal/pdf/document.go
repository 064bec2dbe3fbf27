package pdf

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowTolerance is the maximum baseline Y drift (in points) between spans
// still considered part of the same text run.
const rowTolerance = 2.0

// Document wraps an open PDF and exposes its text as styled fragments.
type Document struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// OpenDocument validates and opens a PDF file for fragment extraction.
// The caller must Close the returned document.
func OpenDocument(path string, maxFileSize int64) (*Document, error) {
	if err := NewValidator(maxFileSize).ValidateFile(path); err != nil {
		return nil, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &Document{
		path:   path,
		file:   f,
		reader: reader,
	}, nil
}

// Path returns the file path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// PageFragments extracts the styled text fragments of one page in reading
// order. Malformed pages yield no fragments rather than an error: the
// extraction library panics on some broken content streams, and a single
// bad page must not sink the document.
func (d *Document) PageFragments(pageNum int) (fragments []StyledFragment) {
	defer func() {
		if recover() != nil {
			fragments = nil
		}
	}()

	if pageNum < 1 || pageNum > d.reader.NumPage() {
		return nil
	}

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil
	}

	return coalesceSpans(page.Content().Text, pageNum)
}

// AllFragments materializes the fragments of every page in page order.
// The classifier needs document-wide font statistics before it can label
// anything, so the whole stream is collected up front.
func (d *Document) AllFragments() []StyledFragment {
	var all []StyledFragment
	for pageNum := 1; pageNum <= d.reader.NumPage(); pageNum++ {
		all = append(all, d.PageFragments(pageNum)...)
	}
	return all
}

// coalesceSpans merges consecutive raw text spans that share font name,
// font size, and baseline into fragments. The extraction library emits
// word- or glyph-level spans; a heading rendered as several spans must be
// classified as one run.
func coalesceSpans(texts []pdf.Text, pageNum int) []StyledFragment {
	var fragments []StyledFragment

	var run strings.Builder
	var runFont string
	var runSize float64
	var runY float64
	var runEnd float64

	flush := func() {
		text := strings.TrimSpace(run.String())
		if text != "" {
			fragments = append(fragments, StyledFragment{
				Text:     text,
				FontSize: runSize,
				Bold:     isBoldFontName(runFont),
				Page:     pageNum,
			})
		}
		run.Reset()
	}

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			// Whitespace spans separate words but never break a run.
			if run.Len() > 0 {
				run.WriteByte(' ')
				runEnd = t.X + t.W
			}
			continue
		}

		sameRun := run.Len() > 0 &&
			t.Font == runFont &&
			t.FontSize == runSize &&
			math.Abs(t.Y-runY) <= rowTolerance

		if !sameRun {
			flush()
			runFont = t.Font
			runSize = t.FontSize
			runY = t.Y
		} else if t.X-runEnd > wordGap(runSize) {
			run.WriteByte(' ')
		}

		run.WriteString(t.S)
		runEnd = t.X + t.W
	}
	flush()

	return fragments
}

// wordGap returns the horizontal gap beyond which two spans on the same
// baseline are separate words.
func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 3.0
	}
	return fontSize * 0.3
}

// isBoldFontName infers boldness from the font name, since the extraction
// library does not expose style flags. Matches names like "Helvetica-Bold",
// "Arial Black", "Roboto-Heavy".
func isBoldFontName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}
