package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/extract"
	"github.com/itsmostafa/papersum/internal/report"
	"github.com/itsmostafa/papersum/internal/summarize"
)

var paperTitle string
var noSave bool

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize a single paper",
	Long: `Summarize a paper from a text file. The summary is printed as a preview
and saved as a markdown report unless --no-save is given.`,
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

		path := args[0]
		text, err := extract.ReadFile(path)
		if err != nil {
			return err
		}
		title := paperTitle
		if title == "" {
			title = extract.DetectTitle(text, path)
		}

		FormatRunHeader(cmd.OutOrStdout(), cfg.Provider, client.Model(), cfg.SummaryMaxWords)

		s := summarize.New(client, summarize.Options{
			MaxWords: cfg.SummaryMaxWords,
			Logger:   newLogger(),
		})
		summary, err := s.Summarize(cmd.Context(), text, title, cfg.SummaryMaxWords)
		if err != nil {
			return err
		}

		FormatSummaryPreview(cmd.OutOrStdout(), summary)

		if !noSave {
			saved, err := report.Save(summary, report.Metadata{
				SourcePath:  path,
				Model:       client.Model(),
				Temperature: cfg.Temperature,
				Generated:   time.Now(),
			}, cfg.OutputDir)
			if err != nil {
				return err
			}
			FormatSaved(cmd.OutOrStdout(), saved)
		}
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&paperTitle, "title", "", "Paper title (detected from the text when empty)")
	summarizeCmd.Flags().BoolVar(&noSave, "no-save", false, "Skip writing the summary report")
	rootCmd.AddCommand(summarizeCmd)
}
