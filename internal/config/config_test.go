package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "papersum.yaml")
	content := "provider: openai\nmodel: gpt-4o-mini\nsummary_max_words: 500\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 500, cfg.SummaryMaxWords)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().Temperature, cfg.Temperature)
	assert.Equal(t, Default().OutputDir, cfg.OutputDir)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "papersum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: from-file\n"), 0644))

	t.Setenv("PAPERSUM_MODEL", "from-env")
	t.Setenv("PAPERSUM_MAX_WORDS", "1200")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Model)
	assert.Equal(t, 1200, cfg.SummaryMaxWords)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "papersum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults valid", func(c *Config) {}, true},
		{"bad provider", func(c *Config) { c.Provider = "cohere" }, false},
		{"temperature too high", func(c *Config) { c.Temperature = 1.5 }, false},
		{"zero word target", func(c *Config) { c.SummaryMaxWords = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
