package summarize

import (
	"fmt"
	"strings"
)

// compile assembles the markdown document from the summary parts. The
// Overview and Key Findings headings always appear; section headings are
// omitted when empty. Heading order is fixed.
func compile(s *Summary) string {
	parts := []string{"# SCIENTIFIC PAPER SUMMARY"}

	parts = append(parts, "## Overview\n"+s.Overview)

	var sb strings.Builder
	sb.WriteString("## Key Findings")
	for i, finding := range s.KeyFindings {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, finding)
	}
	parts = append(parts, sb.String())

	if s.Methodology != "" {
		parts = append(parts, "## Methodology\n"+s.Methodology)
	}
	if s.Results != "" {
		parts = append(parts, "## Results\n"+s.Results)
	}
	if s.Conclusions != "" {
		parts = append(parts, "## Conclusions\n"+s.Conclusions)
	}

	return strings.Join(parts, "\n\n")
}
