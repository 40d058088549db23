package search

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/adrianliechti/sefaria/pkg/client"
	"github.com/adrianliechti/sefaria/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	service client.SearchService

	limit int
}

type Option func(*Client)

func WithLimit(limit int) Option {
	return func(c *Client) {
		c.limit = limit
	}
}

func New(service client.SearchService, options ...Option) (*Client, error) {
	c := &Client{
		service: service,

		limit: 5,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "search_library",
			Description: "Search the Jewish library for passages matching a query. Returns passage references usable with get_passage",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "the text to search for, in English or Hebrew",
					},

					"filters": map[string]any{
						"type":        "array",
						"description": "optional list of category paths to restrict the search to (e.g. Tanakh/Torah/Genesis)",
						"items": map[string]any{
							"type": "string",
						},
					},
				},

				"required": []string{"query"},
			},
		},
	}, nil
}

type Result struct {
	Ref string `json:"ref"`

	Version string  `json:"version,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "search_library" {
		return nil, tool.ErrInvalidTool
	}

	query, ok := parameters["query"].(string)

	if !ok {
		return nil, errors.New("missing query parameter")
	}

	input := client.SearchRequest{
		Query: query,
		Limit: c.limit,
	}

	if filters, ok := parameters["filters"].([]any); ok {
		for _, f := range filters {
			if filter, ok := f.(string); ok {
				input.Filters = append(input.Filters, filter)
			}
		}
	}

	data, err := c.service.Query(ctx, input)

	if err != nil {
		return nil, err
	}

	results := []Result{}

	for _, hit := range data.Hits {
		var source struct {
			Ref     string `json:"ref"`
			Version string `json:"version"`
		}

		json.Unmarshal(hit.Source, &source)

		if source.Ref == "" {
			continue
		}

		results = append(results, Result{
			Ref:     source.Ref,
			Version: source.Version,
			Score:   hit.Score,
		})
	}

	return results, nil
}
