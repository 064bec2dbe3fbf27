package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/docstruct/pdf-outline/internal/config"
)

func capturePrintVersion(t *testing.T) string {
	t.Helper()

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = originalStdout }()

	done := make(chan struct{})
	go func() {
		defer close(done)
		printVersion()
		w.Close()
	}()

	var buf bytes.Buffer
	io.Copy(&buf, r)
	<-done

	return buf.String()
}

func TestPrintVersion(t *testing.T) {
	oldVersion, oldBuildTime, oldGitCommit := version, buildTime, gitCommit
	version = "1.2.3"
	buildTime = "2026-01-15_09:00:00"
	gitCommit = "abc123"
	defer func() {
		version, buildTime, gitCommit = oldVersion, oldBuildTime, oldGitCommit
	}()

	output := capturePrintVersion(t)

	expectedStrings := []string{
		"PDF Outline Extractor",
		"Version: 1.2.3",
		"Build Time: 2026-01-15_09:00:00",
		"Git Commit: abc123",
		"Built with:",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("printVersion() output missing %q\nActual output:\n%s", expected, output)
		}
	}
}

func TestPrintVersionDefaults(t *testing.T) {
	oldVersion, oldBuildTime, oldGitCommit := version, buildTime, gitCommit
	version = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
	defer func() {
		version, buildTime, gitCommit = oldVersion, oldBuildTime, oldGitCommit
	}()

	output := capturePrintVersion(t)

	for _, expected := range []string{"Version: dev", "Build Time: unknown", "Git Commit: unknown"} {
		if !strings.Contains(output, expected) {
			t.Errorf("printVersion() output missing %q\nActual output:\n%s", expected, output)
		}
	}
}

func TestSetupLoggingStdioMode(t *testing.T) {
	originalOutput := log.Writer()
	originalFlags := log.Flags()
	defer func() {
		log.SetOutput(originalOutput)
		log.SetFlags(originalFlags)
	}()

	cfg := &config.Config{Mode: config.ModeStdio, LogLevel: "debug"}
	setupLogging(cfg)
	if log.Writer() != os.Stderr {
		t.Error("stdio debug mode should log to stderr")
	}

	cfg.LogLevel = "info"
	setupLogging(cfg)
	if log.Writer() == os.Stderr {
		t.Error("stdio non-debug mode must not log to stderr")
	}
}

func TestSetupLoggingBatchMode(t *testing.T) {
	originalOutput := log.Writer()
	originalFlags := log.Flags()
	defer func() {
		log.SetOutput(originalOutput)
		log.SetFlags(originalFlags)
	}()

	cfg := &config.Config{Mode: config.ModeBatch, LogLevel: "info"}
	setupLogging(cfg)

	if log.Flags() != log.LstdFlags {
		t.Errorf("batch mode flags = %v, want %v", log.Flags(), log.LstdFlags)
	}
}

func TestVersionFlagDetection(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		hasVersion bool
	}{
		{"no version flag", []string{"program"}, false},
		{"-version flag", []string{"program", "-version"}, true},
		{"--version flag", []string{"program", "--version"}, true},
		{"-v flag", []string{"program", "-v"}, true},
		{"version flag among others", []string{"program", "--mode=batch", "--version"}, true},
		{"similar but not version", []string{"program", "-verbose", "-versions"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := false
			for _, arg := range tt.args[1:] {
				if arg == "-version" || arg == "--version" || arg == "-v" {
					found = true
					break
				}
			}
			if found != tt.hasVersion {
				t.Errorf("Version flag detection for %v: got %v, want %v", tt.args, found, tt.hasVersion)
			}
		})
	}
}
