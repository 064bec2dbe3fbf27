package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Search handles PDF discovery in input directories.
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a new PDF search handler with the specified constraints
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// FindPDFsInDirectory returns the PDF files directly inside a directory,
// sorted by file name. The scan is non-recursive: batch processing treats
// the input directory as a flat drop folder.
func (s *Search) FindPDFsInDirectory(directory string) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	absDirectory, err := filepath.Abs(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory path: %w", err)
	}

	entries, err := os.ReadDir(absDirectory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", absDirectory, err)
	}

	var pdfFiles []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Skip files that disappear or become unreadable mid-scan.
			continue
		}

		pdfFiles = append(pdfFiles, FileInfo{
			Path:         filepath.Join(absDirectory, entry.Name()),
			Name:         entry.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
	}

	sort.Slice(pdfFiles, func(i, j int) bool {
		return pdfFiles[i].Name < pdfFiles[j].Name
	})

	return pdfFiles, nil
}

// CountPDFsInDirectory counts the PDF files directly inside a directory.
func (s *Search) CountPDFsInDirectory(directory string) (int, error) {
	files, err := s.FindPDFsInDirectory(directory)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}
