package text_test

import (
	"testing"

	"github.com/adrianliechti/sefaria/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string

		doc any

		value  any
		source text.Source
	}{
		{
			name: "direct",
			doc:  map[string]any{"text": []any{"a"}},

			value:  []any{"a"},
			source: text.SourceDirect,
		},
		{
			name: "direct wins over aliased and versioned",
			doc: map[string]any{
				"text":     "a",
				"he":       "b",
				"versions": []any{map[string]any{"text": "c"}},
			},

			value:  "a",
			source: text.SourceDirect,
		},
		{
			name: "direct null still wins",
			doc: map[string]any{
				"text": nil,
				"he":   "b",
			},

			value:  nil,
			source: text.SourceDirect,
		},
		{
			name: "aliased",
			doc: map[string]any{
				"he": "b",
			},

			value:  "b",
			source: text.SourceAliased,
		},
		{
			name: "versioned",
			doc: map[string]any{
				"versions": []any{
					map[string]any{"text": []any{"c"}},
					map[string]any{"text": []any{"d"}},
				},
			},

			value:  []any{"c"},
			source: text.SourceVersioned,
		},
		{
			name: "versioned without text",
			doc: map[string]any{
				"versions": []any{map[string]any{"title": "x"}},
			},

			value:  nil,
			source: text.SourceVersioned,
		},
		{
			name: "versioned entry not an object",
			doc: map[string]any{
				"versions": []any{"x"},
			},

			value:  nil,
			source: text.SourceVersioned,
		},
		{
			name: "versions empty",
			doc: map[string]any{
				"versions": []any{},
			},

			value:  nil,
			source: text.SourceNone,
		},
		{
			name: "versions not a list",
			doc: map[string]any{
				"versions": "x",
			},

			value:  nil,
			source: text.SourceNone,
		},
		{
			name: "empty document",
			doc:  map[string]any{},

			value:  nil,
			source: text.SourceNone,
		},
		{
			name: "nil document",
			doc:  nil,

			value:  nil,
			source: text.SourceNone,
		},
		{
			name: "non-object document",
			doc:  "Genesis 1:1",

			value:  nil,
			source: text.SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, source := text.Resolve(tt.doc)

			require.Equal(t, tt.value, value)
			require.Equal(t, tt.source, source)
		})
	}
}

func TestSourceString(t *testing.T) {
	require.Equal(t, "text", text.SourceDirect.String())
	require.Equal(t, "he", text.SourceAliased.String())
	require.Equal(t, "versions", text.SourceVersioned.String())
	require.Equal(t, "none", text.SourceNone.String())
}
