package parser

import "strings"

// SplitLines cuts statement text into trimmed, non-empty lines. Every
// grammar operates on this view: OCR preserves the visual layout loosely
// as line order, and blank lines carry no information.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
