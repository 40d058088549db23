package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/sefaria/pkg/client"

	"github.com/stretchr/testify/require"
)

func TestIndexContents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/index", r.URL.Path)

		json.NewEncoder(w).Encode([]any{
			map[string]any{
				"category":   "Tanakh",
				"heCategory": "תנ\"ך",
				"contents": []any{
					map[string]any{"title": "Genesis", "heTitle": "בראשית"},
				},
			},
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	entries, err := c.Indexes.Contents(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Tanakh", entries[0].Category)
	require.Len(t, entries[0].Contents, 1)
	require.Equal(t, "Genesis", entries[0].Contents[0].Title)
}

func TestIndexGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/raw/index/Genesis", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"title":      "Genesis",
			"categories": []any{"Tanakh", "Torah"},
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	doc, err := c.Indexes.Get(context.Background(), "Genesis")

	require.NoError(t, err)
	require.Equal(t, "Genesis", doc["title"])
}

func TestVersionList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/texts/versions/Genesis", r.URL.Path)

		json.NewEncoder(w).Encode([]any{
			map[string]any{
				"versionTitle": "The Holy Scriptures",
				"language":     "en",
				"license":      "Public Domain",
			},
			map[string]any{
				"versionTitle": "Tanach with Nikkud",
				"language":     "he",
			},
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	versions, err := c.Versions.List(context.Background(), "Genesis")

	require.NoError(t, err)
	require.Len(t, versions, 2)
	require.Equal(t, "The Holy Scriptures", versions[0].Title)
	require.Equal(t, "he", versions[1].Language)
}
