package textnorm

import (
	"regexp"
	"strings"
)

var (
	horizontalRun = regexp.MustCompile(`[ \t]+`)
	blankRun      = regexp.MustCompile(`\n{3,}`)
	sentenceBreak = regexp.MustCompile(`([.!?])[ \t]+([A-Z])`)
	yearBreak     = regexp.MustCompile(`(\d{4})[ \t]+([A-Z])`)
)

// Normalize repairs line structure lost during document text extraction:
// horizontal whitespace runs collapse to single spaces, then line breaks
// are reinserted after sentence punctuation and after a 4-digit year
// when a capital letter follows. Existing line breaks are preserved, so
// already-structured text passes through unchanged apart from the
// whitespace collapse.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	text = horizontalRun.ReplaceAllString(text, " ")
	text = sentenceBreak.ReplaceAllString(text, "$1\n$2")
	text = yearBreak.ReplaceAllString(text, "$1\n$2")
	text = blankRun.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// Lines splits text into trimmed-right lines. Extractors share this so
// line indices agree across passes.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}
