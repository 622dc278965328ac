// Package config holds the explicit run configuration. There is no
// process-global settings object: a Config value is built once and passed
// into the components that need it, so concurrent runs with different
// settings stay independent.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Config carries the tunables for a summarization run.
type Config struct {
	// Provider selects the generation backend: "gemini" or "openai".
	Provider string `yaml:"provider"`
	// Model is the model identifier passed to the provider.
	Model string `yaml:"model"`
	// Temperature is the sampling temperature for generation calls.
	Temperature float64 `yaml:"temperature"`
	// MaxTokens caps the model output length per call.
	MaxTokens int `yaml:"max_tokens"`
	// SummaryMaxWords is the default total word target for summaries.
	SummaryMaxWords int `yaml:"summary_max_words"`
	// OutputDir is where summary reports are written.
	OutputDir string `yaml:"output_dir"`
}

// DefaultFile is the config file name looked up in the working directory.
const DefaultFile = "papersum.yaml"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider:        "gemini",
		Model:           "gemini-2.5-flash",
		Temperature:     0.3,
		MaxTokens:       16384,
		SummaryMaxWords: 800,
		OutputDir:       "outputs",
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// YAML file at path when it exists, overlaid with environment variables.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PAPERSUM_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("PAPERSUM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PAPERSUM_MAX_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SummaryMaxWords = n
		}
	}
	if v := os.Getenv("PAPERSUM_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
}

func (c Config) validate() error {
	if c.Provider != "gemini" && c.Provider != "openai" {
		return fmt.Errorf("invalid provider %q (want gemini or openai)", c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature %v out of range [0, 1]", c.Temperature)
	}
	if c.SummaryMaxWords <= 0 {
		return fmt.Errorf("summary_max_words must be positive, got %d", c.SummaryMaxWords)
	}
	return nil
}
