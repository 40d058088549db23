package text_test

import (
	"testing"

	"github.com/adrianliechti/sefaria/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestFormatHebrew(t *testing.T) {
	tests := []struct {
		name string

		input string
		want  string
	}{
		{
			name: "empty",

			input: "",
			want:  "",
		},
		{
			name: "plain verse",

			input: "בראשית ברא אלהים",
			want:  "‏בראשית ברא אלהים",
		},
		{
			name: "already marked",

			input: "‏בראשית",
			want:  "‏בראשית",
		},
		{
			name: "trims trailing whitespace",

			input: "שלום  \n",
			want:  "‏שלום",
		},
		{
			name: "leading whitespace stays behind the mark",

			input: "  שלום",
			want:  "‏  שלום",
		},
		{
			name: "vowel points are preserved",

			input: "בְּרֵאשִׁית",
			want:  "‏בְּרֵאשִׁית",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.FormatHebrew(tt.input)

			require.Equal(t, tt.want, got)
			require.Equal(t, got, text.FormatHebrew(got))
		})
	}
}
