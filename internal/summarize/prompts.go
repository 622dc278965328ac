package summarize

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/papersum/internal/section"
)

// Prompt templates for the summarization pipeline. Every prompt is complete
// and self-contained; the generation capability holds no conversation state.

const sectionPromptTemplate = `You are an expert at summarizing scientific papers.

Context: This is the %s section of a scientific paper.

Text to summarize:
%s

Please provide a clear, concise summary that captures the essential information.
Focus on the key points, methods, findings, or conclusions as appropriate for this section.
Use technical language where necessary but ensure clarity. Limit to about %d words.

Summary:`

const overviewFromTextTemplate = `You are an expert at summarizing scientific papers.

Read this excerpt from a scientific paper and provide a comprehensive overview (~%d words) that captures the paper's main contribution, approach, and significance.

Paper Excerpt:
%s

Generate a cohesive overview that:
1. States the research question or problem
2. Describes the methodology in brief
3. Highlights main findings
4. Indicates significance or implications

Overview:`

const overviewFromSectionsTemplate = `You are an expert at summarizing scientific papers.

Based on these section summaries from a scientific paper, provide a comprehensive overview (~%d words) that captures the paper's main contribution, approach, and significance.

Section Summaries:
%s

Generate a cohesive overview that:
1. States the research question or problem
2. Describes the methodology in brief
3. Highlights main findings
4. Indicates significance or implications

Overview:`

const findingsPromptTemplate = `You are an expert at analyzing scientific papers.

Based on this text from a scientific paper, extract 3-5 key findings or contributions.

Text:
%s

Provide the key findings as a numbered list, one finding per line.

Key Findings:`

const expandPromptTemplate = `You are an expert technical writer.

Expand the following scientific paper summary to approximately %d words.
Use the SOURCE TEXT to add missing details (problem statement, assumptions, methodology highlights, key results, limitations, and implications).
Preserve the markdown structure and keep it factual and non-repetitive.

SOURCE TEXT (use for details):
%s

CURRENT SUMMARY (to expand):
%s

Write the expanded summary now, maintaining the same headings:`

func sectionPrompt(key section.Key, body string, targetWords int) string {
	return fmt.Sprintf(sectionPromptTemplate, key, body, targetWords)
}

func overviewFromTextPrompt(excerpt string, targetWords int) string {
	return fmt.Sprintf(overviewFromTextTemplate, targetWords, excerpt)
}

func overviewFromSectionsPrompt(summaries map[section.Key]string, targetWords int) string {
	var sb strings.Builder
	for _, key := range priorityKeys {
		summary, ok := summaries[key]
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(strings.ToUpper(string(key)))
		sb.WriteString(":\n")
		sb.WriteString(summary)
	}
	return fmt.Sprintf(overviewFromSectionsTemplate, targetWords, sb.String())
}

func findingsPrompt(context string) string {
	return fmt.Sprintf(findingsPromptTemplate, context)
}

func expandPrompt(sourceText, draft string, targetWords int) string {
	return fmt.Sprintf(expandPromptTemplate, targetWords, sourceText, draft)
}
