package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/config"
	"github.com/itsmostafa/papersum/internal/generate"
	"github.com/itsmostafa/papersum/internal/version"
)

var (
	configFile string
	provider   string
	model      string
	maxWords   int
	outputDir  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "papersum",
	Short: "Summarize scientific papers with LLMs",
	Long: `Papersum reads scientific papers from text files, detects their section
structure, and generates structured markdown summaries through a multi-phase
LLM pipeline with a configurable word budget.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("papersum %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "Config file path")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Generation provider (gemini, openai)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Model identifier")
	rootCmd.PersistentFlags().IntVar(&maxWords, "max-words", 0, "Total summary word target")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory for saved summaries")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress")
}

// loadConfig resolves the effective configuration: file and environment
// via config.Load, then explicit flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, err
	}
	if provider != "" {
		cfg.Provider = provider
	}
	if model != "" {
		cfg.Model = model
	}
	if maxWords > 0 {
		cfg.SummaryMaxWords = maxWords
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	return cfg, nil
}

// newLogger builds the CLI logger; verbose runs log progress to stderr.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newClient builds the generation client for the configured provider.
func newClient(cfg config.Config) (generate.Client, error) {
	return generate.NewClient(cfg.Provider, cfg.Model, cfg.Temperature, cfg.MaxTokens)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
