// Package summarize orchestrates multi-phase summarization of scientific
// papers: section detection, per-section summarization, overview synthesis,
// key-finding extraction, and final compilation against a word budget.
package summarize

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/itsmostafa/papersum/internal/budget"
	"github.com/itsmostafa/papersum/internal/generate"
	"github.com/itsmostafa/papersum/internal/section"
	"github.com/itsmostafa/papersum/internal/textproc"
)

// priorityKeys are the sections summarized individually, in presentation
// order. Other detected sections contribute through the overview only.
var priorityKeys = []section.Key{
	section.KeyMethods,
	section.KeyResults,
	section.KeyConclusion,
}

const (
	// minSectionChars is the smallest extract worth a dedicated model call.
	minSectionChars = 100
	// overviewExcerptChars bounds the excerpt sent when no sections were found.
	overviewExcerptChars = 2000
	// findingsExcerptChars bounds the excerpt for finding extraction fallback.
	findingsExcerptChars = 3000
	// expandSourceWords bounds the source text included in expansion prompts.
	expandSourceWords = 2500
)

// Summary is the structured result of a run. All fields are final once
// Summarize returns; callers may share a Summary across goroutines.
type Summary struct {
	Title       string
	Overview    string
	KeyFindings []string
	Methodology string
	Results     string
	Conclusions string
	FullSummary string
	WordCount   int
}

// Stats returns run statistics for display and logging.
func (s *Summary) Stats() map[string]int {
	sections := 0
	for _, body := range []string{s.Methodology, s.Results, s.Conclusions} {
		if body != "" {
			sections++
		}
	}
	return map[string]int{
		"word_count":      s.WordCount,
		"key_findings":    len(s.KeyFindings),
		"sections_filled": sections,
	}
}

// Summarizer runs the summarization pipeline against a generation client.
type Summarizer struct {
	client   generate.Client
	maxWords int
	logger   *slog.Logger
}

// Options tunes a Summarizer. Zero values fall back to sensible defaults.
type Options struct {
	// MaxWords is the default total word target when Summarize is called
	// with a non-positive target. Defaults to 800.
	MaxWords int
	// Logger receives pipeline progress. Defaults to a discarding logger.
	Logger *slog.Logger
}

// New builds a Summarizer around the given generation client.
func New(client generate.Client, opts Options) *Summarizer {
	if opts.MaxWords <= 0 {
		opts.MaxWords = 800
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Summarizer{
		client:   client,
		maxWords: opts.MaxWords,
		logger:   opts.Logger,
	}
}

// Summarize produces a structured summary of the paper text, targeting
// maxWords total (non-positive means the Summarizer default). Generation
// failures during section summarization, overview synthesis, or finding
// extraction abort the run; only expansion degrades gracefully.
func (s *Summarizer) Summarize(ctx context.Context, text, title string, maxWords int) (*Summary, error) {
	if maxWords <= 0 {
		maxWords = s.maxWords
	}

	// Phase 1: normalize and detect sections.
	normalized := textproc.Normalize(text)
	spans := section.Detect(normalized)
	s.logger.Info("detected sections",
		"count", len(spans),
		"keys", section.List(spans),
	)

	// Phase 2: summarize priority sections. The budget is planned once,
	// from the count of sections that will actually be summarized.
	type sectionText struct {
		key  section.Key
		body string
	}
	var present []sectionText
	for _, key := range priorityKeys {
		body := section.Extract(normalized, spans, key)
		if len(body) > minSectionChars {
			present = append(present, sectionText{key, body})
		}
	}
	plan := budget.Plan(maxWords, len(present))
	s.logger.Info("planned word budget",
		"total", plan.TotalTarget,
		"per_section", plan.PerSection,
		"overview", plan.Overview,
	)

	summaries := make(map[section.Key]string, len(present))
	for _, st := range present {
		s.logger.Info("summarizing section", "section", string(st.key), "chars", len(st.body))
		res, err := s.client.Generate(ctx, sectionPrompt(st.key, st.body, plan.PerSection))
		if err != nil {
			return nil, generate.Classify("summarize "+string(st.key)+" section", err)
		}
		if body := strings.TrimSpace(res.Text); body != "" {
			summaries[st.key] = body
		}
	}

	// Phase 3: overview, from section summaries when any exist, else from
	// the head of the paper itself.
	var overviewPrompt string
	if len(summaries) > 0 {
		overviewPrompt = overviewFromSectionsPrompt(summaries, plan.Overview)
	} else {
		overviewPrompt = overviewFromTextPrompt(head(normalized, overviewExcerptChars), plan.Overview)
	}
	res, err := s.client.Generate(ctx, overviewPrompt)
	if err != nil {
		return nil, generate.Classify("generate overview", err)
	}
	overview := strings.TrimSpace(res.Text)

	// Phase 4: key findings.
	findings, err := s.extractFindings(ctx, normalized, summaries)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Title:       title,
		Overview:    overview,
		KeyFindings: findings,
		Methodology: summaries[section.KeyMethods],
		Results:     summaries[section.KeyResults],
		Conclusions: summaries[section.KeyConclusion],
	}

	// Phase 5: compile, expand when short, and enforce the word cap.
	full := compile(summary)
	full = s.expandIfShort(ctx, normalized, full, maxWords)
	full = textproc.TruncateWords(full, maxWords)

	summary.FullSummary = full
	summary.WordCount = textproc.CountWords(full)
	s.logger.Info("summary compiled", "words", summary.WordCount, "target", maxWords)
	return summary, nil
}

// extractFindings asks the model for 3-5 key findings. Source text is the
// results/discussion/conclusion summaries when available, any summaries
// otherwise, and the head of the paper as a last resort.
func (s *Summarizer) extractFindings(ctx context.Context, normalized string, summaries map[section.Key]string) ([]string, error) {
	var parts []string
	for _, key := range []section.Key{section.KeyResults, section.KeyDiscussion, section.KeyConclusion} {
		if body, ok := summaries[key]; ok {
			parts = append(parts, body)
		}
	}
	if len(parts) == 0 {
		for _, key := range priorityKeys {
			if body, ok := summaries[key]; ok {
				parts = append(parts, body)
			}
		}
	}
	context := strings.Join(parts, "\n\n")
	if context == "" {
		context = head(normalized, findingsExcerptChars)
	}

	res, err := s.client.Generate(ctx, findingsPrompt(context))
	if err != nil {
		return nil, generate.Classify("extract key findings", err)
	}
	return parseFindings(res.Text), nil
}

// expandIfShort asks the model to grow a draft that landed well under the
// target. The draft is kept as-is when expansion fails or returns nothing.
func (s *Summarizer) expandIfShort(ctx context.Context, normalized, draft string, maxWords int) string {
	target := max(200, maxWords)
	words := textproc.CountWords(draft)
	if float64(words) >= budget.ExpandBelow*float64(target) {
		return draft
	}

	s.logger.Info("expanding summary", "words", words, "target", target)
	source := textproc.TruncateWords(normalized, expandSourceWords)
	res, err := s.client.Generate(ctx, expandPrompt(source, draft, target))
	if err != nil {
		s.logger.Warn("expansion failed, keeping draft", "error", err)
		return draft
	}
	expanded := strings.TrimSpace(res.Text)
	if expanded == "" {
		return draft
	}
	return expanded
}

// head returns at most n bytes of s cut at a rune boundary, marking
// truncation with an ellipsis.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
