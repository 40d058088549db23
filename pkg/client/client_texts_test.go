package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/sefaria/pkg/client"
	"github.com/adrianliechti/sefaria/pkg/corpus"
	"github.com/adrianliechti/sefaria/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestTextGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "GET", r.Method)
		require.Equal(t, "/v3/texts/Genesis 1:1", r.URL.Path)
		require.Equal(t, "hebrew", r.URL.Query().Get("version"))
		require.Equal(t, "1", r.URL.Query().Get("fill_in_missing_segments"))
		require.Empty(t, r.URL.Query().Get("return_format"))

		json.NewEncoder(w).Encode(map[string]any{
			"ref":  "Genesis 1:1",
			"text": []string{"In the beginning"},
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	doc, err := c.Texts.Get(context.Background(), "Genesis 1:1", &corpus.TextOptions{
		Version:     "hebrew",
		FillMissing: true,
	})

	require.NoError(t, err)
	require.Equal(t, "Genesis 1:1", doc["ref"])
	require.Equal(t, []string{"In the beginning"}, text.ExtractVerses(doc))
}

func TestTextGetError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no text", http.StatusNotFound)
	}))

	defer server.Close()

	c := client.New(server.URL)

	_, err := c.Texts.Get(context.Background(), "Nothing 1:1", nil)
	require.Error(t, err)
}

func TestTextGetInvalidReference(t *testing.T) {
	c := client.New("")

	_, err := c.Texts.Get(context.Background(), "", nil)
	require.ErrorIs(t, err, corpus.ErrInvalidReference)
}

func TestTextBulk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/bulktext", r.URL.Path)

		var body struct {
			Refs []string `json:"refs"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, []string{"Genesis 1:1", "Exodus 1:1"}, body.Refs)

		json.NewEncoder(w).Encode(map[string]any{
			"Genesis 1:1": map[string]any{
				"ref": "Genesis 1:1",
				"he":  "בראשית ברא",
				"en":  "In the beginning",
			},
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	passages, err := c.Texts.Bulk(context.Background(), []string{"Genesis 1:1", "Exodus 1:1"})

	require.NoError(t, err)
	require.Len(t, passages, 1)
	require.Equal(t, "בראשית ברא", passages["Genesis 1:1"].He)
}

func TestTextLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/texts/languages", r.URL.Path)

		json.NewEncoder(w).Encode([]string{"en", "he", "de"})
	}))

	defer server.Close()

	c := client.New(server.URL)

	languages, err := c.Texts.Languages(context.Background())

	require.NoError(t, err)
	require.Equal(t, []string{"en", "he", "de"}, languages)
}

func TestTextRandom(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/texts/random", r.URL.Path)
		require.Equal(t, "Genesis|Exodus", r.URL.Query().Get("titles"))

		json.NewEncoder(w).Encode(map[string]any{
			"ref": "Exodus 2:3",
		})
	}))

	defer server.Close()

	c := client.New(server.URL)

	doc, err := c.Texts.Random(context.Background(), &client.RandomOptions{
		Titles: "Genesis|Exodus",
	})

	require.NoError(t, err)
	require.Equal(t, "Exodus 2:3", doc["ref"])
}
