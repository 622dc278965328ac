package textproc

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	return len(wordPattern.FindAllString(text, -1))
}

// TruncateWords limits text to at most maxWords whitespace-delimited tokens.
// An ellipsis marker is appended only when truncation actually occurred.
func TruncateWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
