package text

import "strings"

// Pair is one aligned verse pairing. Either side may be empty when the
// other language has no verse at that position.
type Pair struct {
	Source string
	Target string
}

// Aligner pairs two verse sequences position by position, applying a
// per-side format to every verse. A nil format leaves verses untouched.
type Aligner struct {
	SourceFormat func(string) string
	TargetFormat func(string) string
}

// NewAligner returns an aligner for Hebrew sources and plain-text targets.
func NewAligner() *Aligner {
	return &Aligner{
		SourceFormat: FormatHebrew,
		TargetFormat: strings.TrimSpace,
	}
}

// Pairs aligns the source and target inputs. Either input may be a single
// string or a sequence. Empty and whitespace-only entries are dropped from
// each side before pairing, so verses can shift position relative to the
// raw input, and the shorter side is padded with empty strings.
func (a *Aligner) Pairs(source, target any) []Pair {
	sources := a.format(source, a.SourceFormat)
	targets := a.format(target, a.TargetFormat)

	size := max(len(sources), len(targets))

	if size == 0 {
		return nil
	}

	pairs := make([]Pair, size)

	for i := range pairs {
		if i < len(sources) {
			pairs[i].Source = sources[i]
		}

		if i < len(targets) {
			pairs[i].Target = targets[i]
		}
	}

	return pairs
}

func (a *Aligner) format(input any, format func(string) string) []string {
	var verses []string

	for _, verse := range elements(input) {
		if strings.TrimSpace(verse) == "" {
			continue
		}

		if format != nil {
			verse = format(verse)
		}

		verses = append(verses, verse)
	}

	return verses
}

// elements coerces a verse input into its raw elements. A single string
// becomes a one-element sequence, sequence elements are stringified, and
// any other input has none.
func elements(input any) []string {
	switch v := input.(type) {
	case string:
		return []string{v}

	case []string:
		return v

	case []any:
		items := make([]string, len(v))

		for i, item := range v {
			items[i] = stringify(item)
		}

		return items
	}

	return nil
}

// ParallelTexts aligns Hebrew verses with their translation. Hebrew verses
// gain a right-to-left mark, translations are trimmed, and pairing is
// positional after empty entries are dropped on each side.
func ParallelTexts(hebrew, english any) []Pair {
	return NewAligner().Pairs(hebrew, english)
}
