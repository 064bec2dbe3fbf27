package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileEmptyPath(t *testing.T) {
	v := NewValidator(1024)
	assert.Error(t, v.ValidateFile(""))
}

func TestValidateFileNotExist(t *testing.T) {
	v := NewValidator(1024)
	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestValidateFileInfoRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	info, err := os.Stat(dir)
	require.NoError(t, err)

	v := NewValidator(1024)
	err = v.ValidateFileInfo(dir, info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestValidateFileInfoRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o600))
	info, err := os.Stat(path)
	require.NoError(t, err)

	v := NewValidator(1024)
	err = v.ValidateFileInfo(path, info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a PDF")
}

func TestValidateFileInfoRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	info, err := os.Stat(path)
	require.NoError(t, err)

	v := NewValidator(1024)
	err = v.ValidateFileInfo(path, info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestValidateFileInfoRejectsOversize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.pdf")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o600))
	info, err := os.Stat(path)
	require.NoError(t, err)

	v := NewValidator(10)
	err = v.ValidateFileInfo(path, info)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestValidateFileInfoAcceptsUppercaseExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "REPORT.PDF")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	info, err := os.Stat(path)
	require.NoError(t, err)

	v := NewValidator(1024)
	assert.NoError(t, v.ValidateFileInfo(path, info))
}

func TestIsValidPDFGarbageContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a real pdf"), 0o600))

	v := NewValidator(1024)
	assert.False(t, v.IsValidPDF(path))
}
