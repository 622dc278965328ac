package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/papersum/internal/extract"
	"github.com/itsmostafa/papersum/internal/section"
	"github.com/itsmostafa/papersum/internal/textproc"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "Inspect the detected section structure of a paper",
	Long: `Detect and print a paper's named sections and numbered-heading outline
without calling a model. Useful for checking what the summarizer will see.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := extract.ReadFile(args[0])
		if err != nil {
			return err
		}
		normalized := textproc.Normalize(text)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Named sections"))
		FormatSectionTable(out, normalized, section.Detect(normalized))

		fmt.Fprintln(out)
		fmt.Fprintln(out, titleStyle.Render("Numbered outline"))
		FormatNumberedOutline(out, section.DetectNumbered(normalized))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
