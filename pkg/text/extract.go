package text

import (
	"fmt"
	"strings"
)

// ExtractVerses returns the ordered, trimmed, non-empty verses of a response
// document, whichever accepted shape carries them. Malformed input yields an
// empty result rather than an error.
func ExtractVerses(doc any) []string {
	value, _ := Resolve(doc)
	return Verses(value)
}

// Verses normalizes a raw verse payload into a list of verses. Sequences
// keep their order, each element stringified and trimmed, empty elements
// dropped. A single string splits on runs of line breaks. Anything else
// yields no verses.
func Verses(value any) []string {
	switch v := value.(type) {
	case []any:
		verses := make([]string, 0, len(v))

		for _, item := range v {
			verse := strings.TrimSpace(stringify(item))

			if verse == "" {
				continue
			}

			verses = append(verses, verse)
		}

		return verses

	case []string:
		verses := make([]string, 0, len(v))

		for _, item := range v {
			verse := strings.TrimSpace(item)

			if verse == "" {
				continue
			}

			verses = append(verses, verse)
		}

		return verses

	case string:
		var verses []string

		for _, line := range strings.FieldsFunc(v, isLineBreak) {
			if verse := strings.TrimSpace(line); verse != "" {
				verses = append(verses, verse)
			}
		}

		return verses
	}

	return nil
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""

	case string:
		return v
	}

	return fmt.Sprint(value)
}
