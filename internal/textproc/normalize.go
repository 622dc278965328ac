// Package textproc provides text normalization and word-level utilities
// used by the section detectors and the summarization pipeline.
package textproc

import (
	"regexp"
	"strings"
)

var (
	pageNumberPattern = regexp.MustCompile(`\n\s*\d+\s*\n`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw extracted text while preserving line boundaries,
// which downstream span math depends on. It unifies line endings, removes
// isolated page-number lines, fixes common OCR ligatures, and collapses
// runs of blank lines. Normalize is idempotent.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = pageNumberPattern.ReplaceAllString(text, "\n")
	text = strings.ReplaceAll(text, "ﬁ", "fi")
	text = strings.ReplaceAll(text, "ﬂ", "fl")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
