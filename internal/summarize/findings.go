package summarize

import "strings"

// maxFindings caps the key-findings list.
const maxFindings = 5

// findingMarkers are the list markers stripped from the front of each line.
const findingMarkers = "0123456789.)-• \t"

// parseFindings turns a model response into a list of findings: one per
// line, list markers removed, empty lines dropped, at most maxFindings kept.
func parseFindings(raw string) []string {
	var findings []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimLeft(line, findingMarkers)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		findings = append(findings, line)
		if len(findings) == maxFindings {
			break
		}
	}
	return findings
}
