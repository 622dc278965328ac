// Package section locates logical sections of a document as character
// spans. It offers two independent addressing schemes over the same text:
// canonical named sections (abstract, methods, ...) resolved by layered
// heading heuristics, and hierarchical numbered sections ("1", "2.3")
// resolved by dotted-label prefix rules. Both detectors are pure functions
// of the input text and recompute spans from scratch on every call.
package section

import (
	"sort"
	"strings"
)

// Key identifies a canonical logical section independent of the exact
// heading wording in the source document.
type Key string

const (
	KeyAbstract     Key = "abstract"
	KeyIntroduction Key = "introduction"
	KeyMethods      Key = "methods"
	KeyResults      Key = "results"
	KeyDiscussion   Key = "discussion"
	KeyConclusion   Key = "conclusion"
	KeyReferences   Key = "references"
)

// Span is a half-open character range [Start, End) within the document.
type Span struct {
	Start int
	End   int
}

// lineOffsets returns the starting character offset of each line,
// assuming lines are joined by single newlines.
func lineOffsets(lines []string) []int {
	offsets := make([]int, len(lines))
	total := 0
	for i, line := range lines {
		offsets[i] = total
		total += len(line) + 1
	}
	return offsets
}

// closeSpans clips each span's end to the start of the next span in
// document order. The last span runs to the document end.
func closeSpans(spans map[Key]Span, textLen int) {
	type entry struct {
		key   Key
		start int
	}
	ordered := make([]entry, 0, len(spans))
	for k, s := range spans {
		ordered = append(ordered, entry{k, s.Start})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start < ordered[j].start })

	for i, e := range ordered {
		end := textLen
		if i+1 < len(ordered) {
			end = ordered[i+1].start
		}
		spans[e.key] = Span{Start: e.start, End: end}
	}
}

// Extract returns the trimmed text of the named section, or "" if the
// section is absent from the span map.
func Extract(text string, spans map[Key]Span, key Key) string {
	span, ok := spans[key]
	if !ok {
		return ""
	}
	return strings.TrimSpace(text[span.Start:span.End])
}

// List returns the detected keys ordered by their position in the text.
func List(spans map[Key]Span) []Key {
	keys := make([]Key, 0, len(spans))
	for k := range spans {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return spans[keys[i]].Start < spans[keys[j]].Start })
	return keys
}
