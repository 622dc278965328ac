package section

import (
	"regexp"
	"sort"
	"strings"
)

// Numbered is a hierarchical numbered-heading span such as "2.3 Error
// Analysis". Depth counts the dot-separated label components. Containment
// between spans is implicit in the label prefix relationship: "2.3" lies
// inside "2", but the mapping stays flat and is keyed by label.
type Numbered struct {
	Label string
	Title string
	Depth int
	Start int
	End   int
}

var numberedHeadingPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)[\s.\-]+(\S.*)$`)

// DetectNumbered resolves numeric headings ("1", "1.2", "2.3.4") into spans.
// A span ends at the first later heading that is not a dotted descendant of
// its label and whose depth is less than or equal to its own; descendants
// never close their ancestors. The last open span runs to the document end.
func DetectNumbered(text string) map[string]Numbered {
	lines := strings.Split(text, "\n")
	offsets := lineOffsets(lines)

	var entries []Numbered
	for idx, line := range lines {
		m := numberedHeadingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		label := m[1]
		entries = append(entries, Numbered{
			Label: label,
			Title: strings.TrimSpace(m[2]),
			Depth: strings.Count(label, ".") + 1,
			Start: offsets[idx],
		})
	}

	sections := make(map[string]Numbered, len(entries))
	for i, entry := range entries {
		entry.End = len(text)
		for j := i + 1; j < len(entries); j++ {
			other := entries[j]
			if strings.HasPrefix(other.Label, entry.Label+".") {
				continue
			}
			if other.Depth <= entry.Depth {
				entry.End = other.Start
				break
			}
		}
		sections[entry.Label] = entry
	}
	return sections
}

// ExtractNumbered returns the trimmed text of the numbered section with the
// given label, or "" if no such heading exists.
func ExtractNumbered(text, label string) string {
	sections := DetectNumbered(text)
	sec, ok := sections[label]
	if !ok {
		return ""
	}
	return strings.TrimSpace(text[sec.Start:sec.End])
}

// ListNumbered returns the detected labels ordered by position in the text.
func ListNumbered(sections map[string]Numbered) []string {
	labels := make([]string, 0, len(sections))
	for label := range sections {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return sections[labels[i]].Start < sections[labels[j]].Start
	})
	return labels
}
