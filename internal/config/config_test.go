package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModeBatch, cfg.Mode)
	assert.Equal(t, DefaultInputDir, cfg.InputDirectory)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDirectory)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
	assert.Equal(t, "pdf-outline", cfg.ServerName)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name:   "stdio mode is valid",
			modify: func(c *Config) { c.Mode = ModeStdio },
		},
		{
			name:    "unknown mode",
			modify:  func(c *Config) { c.Mode = "daemon" },
			wantErr: "mode",
		},
		{
			name:    "empty input directory",
			modify:  func(c *Config) { c.InputDirectory = "" },
			wantErr: "input directory",
		},
		{
			name:    "empty output directory",
			modify:  func(c *Config) { c.OutputDirectory = "" },
			wantErr: "output directory",
		},
		{
			name:    "zero workers",
			modify:  func(c *Config) { c.Workers = 0 },
			wantErr: "workers",
		},
		{
			name:    "non-positive max file size",
			modify:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: "file size",
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEnsureOutputDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDirectory = filepath.Join(t.TempDir(), "out", "nested")

	require.NoError(t, cfg.EnsureOutputDirectory())
	assert.DirExists(t, cfg.OutputDirectory)

	// Idempotent when the directory already exists.
	assert.NoError(t, cfg.EnsureOutputDirectory())
}

func TestModeHelpers(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.IsBatchMode())
	assert.False(t, cfg.IsStdioMode())
	assert.False(t, cfg.IsDebug())

	cfg.Mode = ModeStdio
	cfg.LogLevel = "debug"
	assert.False(t, cfg.IsBatchMode())
	assert.True(t, cfg.IsStdioMode())
	assert.True(t, cfg.IsDebug())
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()

	assert.Contains(t, s, "Mode: batch")
	assert.Contains(t, s, "Workers:")
	assert.Contains(t, s, "MaxFileSize:")
}
