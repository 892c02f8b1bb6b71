package markup

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{4,}`)
	reRuleNoise  = regexp.MustCompile(`(?m)^\s*[_]{4,}\s*$`)
)

// Normalize collapses noisy whitespace in raw OCR text before parsing.
// Conservative: keeps line breaks and all semantic markup (tags, LaTeX
// delimiters, checkbox glyphs) intact, so a normalized document parses to the
// same markup as the original.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n\n")
	s = reRuleNoise.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
