package section

import (
	"regexp"
	"strconv"
	"strings"
)

// Heading heuristics. Scientific papers have no universal heading grammar
// (numbered vs. unnumbered, markdown vs. plain, synonym wording), so
// detection layers several header shapes per canonical key and accepts the
// first line that satisfies any of them.
const (
	// maxHeadingLen rejects long lines; true headings are short.
	maxHeadingLen = 80
	// maxHeadingWords rejects period-terminated lines with many words,
	// which are body sentences rather than headings.
	maxHeadingWords = 6
	// fallbackTrailing is how many characters may follow the keyword
	// before the line break in the loose fallback scan.
	fallbackTrailing = 40
)

// keywordOrder fixes the precedence of canonical keys when several match
// the same line.
var keywordOrder = []Key{
	KeyAbstract,
	KeyIntroduction,
	KeyMethods,
	KeyResults,
	KeyDiscussion,
	KeyConclusion,
	KeyReferences,
}

// fragments maps each canonical key to a regex fragment covering its name
// and known synonyms in lowercased text.
var fragments = map[Key]string{
	KeyAbstract:     `abstract`,
	KeyIntroduction: `introduction`,
	KeyMethods:      `(?:method(?:s|ology)?|algorithm|least[- ]squares algorithm)`,
	KeyResults:      `(?:results?|numerical results|experimental results)`,
	KeyDiscussion:   `discussion`,
	KeyConclusion:   `conclusions?`,
	KeyReferences:   `references?`,
}

// matcher holds the compiled header-shape predicates for one canonical key,
// ordered most specific first, plus the loose whole-text fallback pattern.
type matcher struct {
	key    Key
	shapes []*regexp.Regexp
	loose  *regexp.Regexp
}

var matchers = buildMatchers()

func buildMatchers() []matcher {
	const tail = `(?:\b|\s|[:\-–—])`
	ms := make([]matcher, 0, len(keywordOrder))
	for _, key := range keywordOrder {
		frag := fragments[key]
		ms = append(ms, matcher{
			key: key,
			shapes: []*regexp.Regexp{
				// Markdown-style heading: "# Methods"
				regexp.MustCompile(`^#+\s*` + frag + tail),
				// Numbered heading: "3.1 Methods"
				regexp.MustCompile(`^\d+\.?\d*(?:\.\d+)*\s+` + frag + tail),
				// Bare heading: "Methods"
				regexp.MustCompile(`^` + frag + tail),
				// Composite: keyword anywhere in an otherwise short line,
				// e.g. "Least-Squares Algorithm and Analysis"
				regexp.MustCompile(`\b` + frag + `\b`),
			},
			loose: regexp.MustCompile(
				`(?i)(?:^|\n)((?:\d+\.?\d*(?:\.\d+)*\s+)?` + frag +
					`[a-z0-9 \-–—:]{0,` + strconv.Itoa(fallbackTrailing) + `})(?:\n|$)`),
		})
	}
	return ms
}

// Detect locates canonical sections as non-overlapping character spans.
//
// Pass 1 scans line by line: each candidate heading line may claim at most
// one canonical key, and the first matching line per key wins. Span ends are
// then closed by sorting starts and clipping to the next start. Pass 2 runs
// only when fewer than two sections were found; it applies a looser regex
// across the whole text to catch headings embedded in irregular formatting.
//
// Detect never fails: a section that cannot be located is simply absent
// from the returned map.
func Detect(text string) map[Key]Span {
	lines := strings.Split(text, "\n")
	offsets := lineOffsets(lines)
	spans := make(map[Key]Span)

	for idx, line := range lines {
		raw := strings.TrimSpace(line)
		if raw == "" || len(raw) > maxHeadingLen {
			continue
		}
		lowered := strings.ToLower(raw)
		if strings.HasSuffix(lowered, ".") && len(strings.Fields(lowered)) > maxHeadingWords {
			continue
		}
		if key, ok := matchLine(lowered, spans); ok {
			spans[key] = Span{Start: offsets[idx], End: len(text)}
		}
	}

	closeSpans(spans, len(text))

	if len(spans) < 2 {
		fallbackScan(text, spans)
		closeSpans(spans, len(text))
	}

	return spans
}

// matchLine tests the header shapes of every unclaimed key against a
// candidate line, in shape-specificity order, and reports the first key
// whose shapes accept it.
func matchLine(lowered string, found map[Key]Span) (Key, bool) {
	for shapeIdx := 0; shapeIdx < 4; shapeIdx++ {
		for _, m := range matchers {
			if _, ok := found[m.key]; ok {
				continue
			}
			if m.shapes[shapeIdx].MatchString(lowered) {
				return m.key, true
			}
		}
	}
	return "", false
}

// fallbackScan merges in sections found by the loose whole-text patterns.
// Only keys still missing after pass 1 are considered.
func fallbackScan(text string, spans map[Key]Span) {
	for _, m := range matchers {
		if _, ok := spans[m.key]; ok {
			continue
		}
		loc := m.loose.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		// loc[2] is the start of the captured header group. A heading line
		// already claimed by another key is not claimed twice.
		if claimed(spans, loc[2]) {
			continue
		}
		spans[m.key] = Span{Start: loc[2], End: len(text)}
	}
}

func claimed(spans map[Key]Span, start int) bool {
	for _, s := range spans {
		if s.Start == start {
			return true
		}
	}
	return false
}
