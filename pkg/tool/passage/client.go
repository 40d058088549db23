package passage

import (
	"context"
	"errors"

	"github.com/adrianliechti/sefaria/pkg/corpus"
	"github.com/adrianliechti/sefaria/pkg/text"
	"github.com/adrianliechti/sefaria/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	provider corpus.Provider

	source string
	target string
}

type Option func(*Client)

// WithSource sets the edition fetched for the original-language side of
// parallel passages.
func WithSource(version string) Option {
	return func(c *Client) {
		c.source = version
	}
}

// WithTarget sets the edition fetched for the translation side of parallel
// passages.
func WithTarget(version string) Option {
	return func(c *Client) {
		c.target = version
	}
}

func New(provider corpus.Provider, options ...Option) (*Client, error) {
	c := &Client{
		provider: provider,

		source: "hebrew",
		target: "english",
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "get_passage",
			Description: "Read a passage from the Jewish library by reference. Returns the verses of the passage in the requested edition",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"ref": map[string]any{
						"type":        "string",
						"description": "the passage reference, like 'Genesis 1:1-5', 'Berakhot 2a' or 'Mishnah Peah 4:2'",
					},

					"version": map[string]any{
						"type":        "string",
						"description": "optional edition selector, either a language like 'english' or 'language|version title'",
					},
				},

				"required": []string{"ref"},
			},
		},
		{
			Name:        "get_parallel_passage",
			Description: "Read a passage in Hebrew and translation side by side, verse by verse",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"ref": map[string]any{
						"type":        "string",
						"description": "the passage reference, like 'Genesis 1:1-5'",
					},
				},

				"required": []string{"ref"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	switch name {
	case "get_passage":
		return c.getPassage(ctx, parameters)

	case "get_parallel_passage":
		return c.getParallelPassage(ctx, parameters)
	}

	return nil, tool.ErrInvalidTool
}

type Passage struct {
	Ref string `json:"ref"`

	Verses []string `json:"verses"`
}

func (c *Client) getPassage(ctx context.Context, parameters map[string]any) (any, error) {
	ref, ok := parameters["ref"].(string)

	if !ok {
		return nil, errors.New("missing ref parameter")
	}

	options := &corpus.TextOptions{
		FillMissing: true,
	}

	if version, ok := parameters["version"].(string); ok {
		options.Version = version
	}

	doc, err := c.provider.Get(ctx, ref, options)

	if err != nil {
		return nil, err
	}

	verses := text.ExtractVerses(doc)

	for i, verse := range verses {
		verses[i] = text.Clean(verse)
	}

	result := Passage{
		Ref:    ref,
		Verses: verses,
	}

	if canonical, ok := doc["ref"].(string); ok && canonical != "" {
		result.Ref = canonical
	}

	return result, nil
}

type ParallelVerse struct {
	Hebrew  string `json:"hebrew"`
	English string `json:"english"`
}

func (c *Client) getParallelPassage(ctx context.Context, parameters map[string]any) (any, error) {
	ref, ok := parameters["ref"].(string)

	if !ok {
		return nil, errors.New("missing ref parameter")
	}

	source, err := c.provider.Get(ctx, ref, &corpus.TextOptions{
		Version:     c.source,
		FillMissing: true,
	})

	if err != nil {
		return nil, err
	}

	target, err := c.provider.Get(ctx, ref, &corpus.TextOptions{
		Version:     c.target,
		FillMissing: true,
	})

	if err != nil {
		return nil, err
	}

	verses := []ParallelVerse{}

	for _, pair := range text.ParallelTexts(text.ExtractVerses(source), text.ExtractVerses(target)) {
		verses = append(verses, ParallelVerse{
			Hebrew:  pair.Source,
			English: pair.Target,
		})
	}

	return verses, nil
}
