package text_test

import (
	"strings"
	"testing"

	"github.com/adrianliechti/sefaria/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestParallelTexts(t *testing.T) {
	pairs := text.ParallelTexts(
		[]any{"בראשית", "ויאמר", "ויהי"},
		[]any{"In the beginning", "And said"},
	)

	require.Equal(t, []text.Pair{
		{Source: "‏בראשית", Target: "In the beginning"},
		{Source: "‏ויאמר", Target: "And said"},
		{Source: "‏ויהי", Target: ""},
	}, pairs)
}

func TestParallelTextsEmpty(t *testing.T) {
	require.Empty(t, text.ParallelTexts([]any{}, []any{}))
	require.Empty(t, text.ParallelTexts(nil, nil))
	require.Empty(t, text.ParallelTexts([]any{"", "  "}, []any{""}))
}

func TestParallelTextsEqualLength(t *testing.T) {
	hebrew := []string{"בראשית ברא", " ויאמר אלהים "}
	english := []string{"In the beginning", " And God said "}

	pairs := text.ParallelTexts(hebrew, english)

	require.Len(t, pairs, 2)

	for i, pair := range pairs {
		require.Equal(t, text.FormatHebrew(hebrew[i]), pair.Source)
		require.Equal(t, strings.TrimSpace(english[i]), pair.Target)
	}
}

func TestParallelTextsCoercion(t *testing.T) {
	pairs := text.ParallelTexts("בראשית", []any{"In the beginning", "And said"})

	require.Equal(t, []text.Pair{
		{Source: "‏בראשית", Target: "In the beginning"},
		{Source: "", Target: "And said"},
	}, pairs)
}

func TestParallelTextsFiltering(t *testing.T) {
	// blanks are dropped per side before pairing, so verses shift
	// relative to their raw position
	pairs := text.ParallelTexts(
		[]any{"א", "", "ב"},
		[]any{"", "alef", "bet"},
	)

	require.Equal(t, []text.Pair{
		{Source: "‏א", Target: "alef"},
		{Source: "‏ב", Target: "bet"},
	}, pairs)
}

func TestAlignerFormats(t *testing.T) {
	aligner := &text.Aligner{
		SourceFormat: strings.ToUpper,
	}

	pairs := aligner.Pairs([]any{"alef"}, []any{" bet "})

	require.Equal(t, []text.Pair{
		{Source: "ALEF", Target: " bet "},
	}, pairs)
}
