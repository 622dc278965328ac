package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/papersum/internal/section"
	"github.com/itsmostafa/papersum/internal/summarize"
	"github.com/itsmostafa/papersum/internal/textproc"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for result boxes with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	// headerBoxStyle for the run header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatRunHeader renders the run configuration box
func FormatRunHeader(w io.Writer, provider, model string, maxWords int) {
	content := fmt.Sprintf("%s\n%s %s  %s %s\n%s %d words",
		titleStyle.Render("Scientific Paper Summarizer"),
		dimStyle.Render("Provider:"), provider,
		dimStyle.Render("Model:"), model,
		dimStyle.Render("Target:"), maxWords,
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSummaryPreview renders the summary preview box
func FormatSummaryPreview(w io.Writer, s *summarize.Summary) {
	preview := s.Overview
	if len(preview) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(preview[cut]) {
			cut--
		}
		preview = preview[:cut] + "..."
	}

	lines := []string{
		titleStyle.Render(s.Title),
		fmt.Sprintf("%s %d  %s %d  %s %d",
			dimStyle.Render("Words:"), s.WordCount,
			dimStyle.Render("Findings:"), len(s.KeyFindings),
			dimStyle.Render("Sections:"), s.Stats()["sections_filled"],
		),
		"",
		preview,
	}
	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// FormatSectionTable renders detected sections, one per line
func FormatSectionTable(w io.Writer, text string, spans map[section.Key]section.Span) {
	if len(spans) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No named sections detected"))
		return
	}
	for _, key := range section.List(spans) {
		words := textproc.CountWords(section.Extract(text, spans, key))
		fmt.Fprintf(w, "%s %s (%d words)\n",
			successStyle.Render("●"),
			titleStyle.Render(string(key)),
			words,
		)
	}
}

// FormatNumberedOutline renders the numbered-heading outline with indentation
func FormatNumberedOutline(w io.Writer, sections map[string]section.Numbered) {
	if len(sections) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No numbered sections detected"))
		return
	}
	for _, label := range section.ListNumbered(sections) {
		sec := sections[label]
		indent := strings.Repeat("  ", sec.Depth-1)
		fmt.Fprintf(w, "%s%s %s\n", indent, dimStyle.Render(sec.Label), sec.Title)
	}
}

// FormatSaved renders the saved-report confirmation line
func FormatSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "%s Summary saved to %s\n", successStyle.Render("✓"), path)
}

// FormatError renders a failure line without aborting batch processing
func FormatError(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("✗"), path, err)
}
