// Package report writes summary results to markdown files with run metadata.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/itsmostafa/papersum/internal/summarize"
)

// Metadata describes the run that produced a summary.
type Metadata struct {
	SourcePath  string
	Model       string
	Temperature float64
	Generated   time.Time
}

// Format renders a summary as a markdown report framed with metadata.
func Format(s *summarize.Summary, meta Metadata) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", s.Title)
	sb.WriteString("---\n")
	fmt.Fprintf(&sb, "**Original File:** `%s`  \n", filepath.Base(meta.SourcePath))
	fmt.Fprintf(&sb, "**Generated:** %s  \n", meta.Generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "**Model:** %s  \n", meta.Model)
	fmt.Fprintf(&sb, "**Word Count:** %d\n", s.WordCount)
	sb.WriteString("\n---\n\n")

	sb.WriteString(s.FullSummary)

	sb.WriteString("\n\n---\n\n## Metadata\n\n")
	fmt.Fprintf(&sb, "- **Summary Word Count:** %d\n", s.WordCount)
	fmt.Fprintf(&sb, "- **Model Temperature:** %g\n", meta.Temperature)
	sb.WriteString("- **Generated by:** papersum\n")

	return sb.String()
}

// Save writes the formatted report to outputDir, named after the source
// file with a timestamp suffix. The directory is created when missing.
func Save(s *summarize.Summary, meta Metadata, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", outputDir, err)
	}

	base := filepath.Base(meta.SourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s_summary_%s.md", stem, meta.Generated.Format("20060102_150405"))
	path := filepath.Join(outputDir, name)

	if err := os.WriteFile(path, []byte(Format(s, meta)), 0644); err != nil {
		return "", fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return path, nil
}
