package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/docstruct/pdf-outline/internal/outline"
	"github.com/docstruct/pdf-outline/internal/pdf"
)

const outputFilePerm = 0o640

// Runner processes every PDF in an input directory and writes one JSON
// outline per document. Documents are independent, so they are processed
// concurrently; a failing document never affects its siblings.
type Runner struct {
	extractor *outline.Extractor
	search    *pdf.Search
	workers   int
}

// NewRunner creates a batch runner. workers bounds how many documents are
// processed at once; values below 1 are treated as 1.
func NewRunner(extractor *outline.Extractor, maxFileSize int64, workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		extractor: extractor,
		search:    pdf.NewSearch(maxFileSize),
		workers:   workers,
	}
}

// Run processes all PDFs in inputDir and writes results to outputDir.
// An empty input directory is not an error: it logs a warning and writes
// nothing. Per-document failures are logged and converted to the
// canonical error output file; Run only fails on setup problems.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) error {
	if _, err := os.Stat(inputDir); err != nil {
		return fmt.Errorf("cannot access input directory %s: %w", inputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", outputDir, err)
	}

	files, err := r.search.FindPDFsInDirectory(inputDir)
	if err != nil {
		return fmt.Errorf("failed to scan input directory: %w", err)
	}
	if len(files) == 0 {
		log.Printf("warning: no PDF files found in %s", inputDir)
		return nil
	}

	log.Printf("found %d PDF files to process", len(files))

	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	for _, file := range files {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(file pdf.FileInfo) {
			defer wg.Done()
			defer func() { <-sem }()
			r.processFile(file, outputDir)
		}(file)
	}

	wg.Wait()
	log.Printf("processing complete: %d documents", len(files))
	return nil
}

// processFile extracts one document and writes its result file. Every
// input gets an output file, even when extraction fails outright.
func (r *Runner) processFile(file pdf.FileInfo, outputDir string) {
	result := r.extractSafely(file.Path)

	outputPath := filepath.Join(outputDir, outputFileName(file.Name))
	if err := writeResult(outputPath, result); err != nil {
		log.Printf("error writing result for %s: %v", file.Name, err)
		return
	}
	log.Printf("processed %s: title=%q headings=%d", file.Name, result.Title, len(result.Outline))
}

// extractSafely shields the batch from panics inside PDF parsing. Any
// panic degrades to the canonical error result for that document.
func (r *Runner) extractSafely(path string) (result *outline.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("error processing %s: %v", path, rec)
			result = outline.ErrorResult()
		}
	}()
	return r.extractor.ExtractFile(path)
}

// writeResult serializes a result as indented JSON to the given path.
func writeResult(path string, result *outline.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, outputFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// outputFileName maps a source file name to its result file name:
// the base name with the extension replaced by .json.
func outputFileName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base + ".json"
}
