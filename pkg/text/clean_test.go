package text_test

import (
	"testing"

	"github.com/adrianliechti/sefaria/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
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
			name: "blank",

			input: " \t\n ",
			want:  "",
		},
		{
			name: "already clean",

			input: "In the beginning God created the heaven and the earth.",
			want:  "In the beginning God created the heaven and the earth.",
		},
		{
			name: "collapse runs",

			input: "This   is  a  messy    text   with extra   spaces  .",
			want:  "This is a messy text with extra spaces.",
		},
		{
			name: "tabs and newlines",

			input: "a\t\tb\nc",
			want:  "a b c",
		},
		{
			name: "space before punctuation",

			input: "Hello , world !  How are you ?",
			want:  "Hello, world! How are you?",
		},
		{
			name: "semicolon and colon",

			input: "first ; second : third",
			want:  "first; second: third",
		},
		{
			name: "space after punctuation untouched",

			input: "a ,b",
			want:  "a,b",
		},
		{
			name: "non-breaking space",

			input: "a  b",
			want:  "a b",
		},
		{
			name: "surrounding whitespace",

			input: "  shalom  ",
			want:  "shalom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, text.Clean(tt.input))
		})
	}
}
