package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/extract"
	"github.com/itsmostafa/papersum/internal/report"
	"github.com/itsmostafa/papersum/internal/summarize"
)

var recursive bool

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Summarize every paper in a directory",
	Long: `Summarize all supported files in a directory. Failures are reported and
skipped so one bad file does not abort the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		paths, err := collectPapers(args[0], recursive)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no supported files in %s", args[0])
		}

		out := cmd.OutOrStdout()
		FormatRunHeader(out, cfg.Provider, client.Model(), cfg.SummaryMaxWords)

		s := summarize.New(client, summarize.Options{
			MaxWords: cfg.SummaryMaxWords,
			Logger:   newLogger(),
		})

		failed := 0
		for _, path := range paths {
			text, err := extract.ReadFile(path)
			if err != nil {
				FormatError(out, path, err)
				failed++
				continue
			}
			title := extract.DetectTitle(text, path)

			summary, err := s.Summarize(cmd.Context(), text, title, cfg.SummaryMaxWords)
			if err != nil {
				FormatError(out, path, err)
				failed++
				continue
			}

			saved, err := report.Save(summary, report.Metadata{
				SourcePath:  path,
				Model:       client.Model(),
				Temperature: cfg.Temperature,
				Generated:   time.Now(),
			}, cfg.OutputDir)
			if err != nil {
				FormatError(out, path, err)
				failed++
				continue
			}
			FormatSaved(out, saved)
		}

		fmt.Fprintf(out, "\n%d summarized, %d failed\n", len(paths)-failed, failed)
		if failed == len(paths) {
			return fmt.Errorf("all %d files failed", failed)
		}
		return nil
	},
}

// collectPapers lists supported files under dir, sorted by path. Without
// recursive, subdirectories are skipped.
func collectPapers(dir string, recursive bool) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if extract.Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return paths, nil
}

func init() {
	batchCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Include subdirectories")
	rootCmd.AddCommand(batchCmd)
}
