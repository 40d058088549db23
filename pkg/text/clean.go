package text

import (
	"regexp"
	"strings"
)

var punctuation = regexp.MustCompile(`\s*([.,;:!?])`)

// Clean normalizes scraped or OCRed passage text. Runs of whitespace
// collapse into a single space, whitespace before closing punctuation is
// removed, and the result is trimmed. The collapse runs before the
// punctuation pass.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.Join(strings.Fields(text), " ")
	text = punctuation.ReplaceAllString(text, "$1")

	return strings.TrimSpace(text)
}
