package text

import "strings"

// rtlMark is the Unicode right-to-left mark (U+200F).
const rtlMark = "‏"

// FormatHebrew prefixes text with the right-to-left mark, unless one is
// already present, and trims surrounding whitespace. The function is
// idempotent and otherwise leaves the text untouched, in particular
// character order and vowel points.
func FormatHebrew(text string) string {
	if text == "" {
		return ""
	}

	if !strings.HasPrefix(text, rtlMark) {
		text = rtlMark + text
	}

	return strings.TrimSpace(text)
}
