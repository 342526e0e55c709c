// Package ingest prepares resume and job posting documents for scoring: it
// reads plain text or HTML from files and URLs and normalizes it while
// preserving the line structure the extractors rely on.
package ingest

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankRunsRe  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes text content while preserving structure: line breaks
// and bullet lists survive, runs of spaces collapse, and blank-line runs are
// capped at one empty line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses interior whitespace but keeps leading indentation and
// bullet markers in place.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	body := innerSpaceRe.ReplaceAllString(trimmed, " ")
	if indent := len(line) - len(trimmed); indent > 0 {
		return strings.Repeat(" ", indent) + body
	}
	return body
}
