package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type SearchService struct {
	Options []RequestOption
}

func NewSearchService(opts ...RequestOption) SearchService {
	return SearchService{
		Options: opts,
	}
}

type SearchRequest struct {
	Query string `json:"q"`

	// Type is "text" or "sheet".
	Type string `json:"type"`

	Field string `json:"field,omitempty"`
	Exact bool   `json:"exact,omitempty"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	Filters      []string `json:"filters,omitempty"`
	FilterFields []string `json:"filter_fields,omitempty"`

	Aggs []string `json:"aggs,omitempty"`

	SortType string `json:"sort_type,omitempty"`
	SortDir  string `json:"sort_dir,omitempty"`

	AppliedFilters      []string `json:"applied_filters,omitempty"`
	AppliedFilterFields []string `json:"applied_filter_fields,omitempty"`

	GroupRelated bool `json:"group_related,omitempty"`
	WithRefs     bool `json:"with_refs,omitempty"`
}

type SearchHit struct {
	ID    string
	Score float64

	// Source is the raw hit document. Result shapes differ between text
	// and sheet searches and are not normalized.
	Source json.RawMessage
}

type SearchResults struct {
	Total int

	Hits []SearchHit
}

func (r *SearchService) Query(ctx context.Context, input SearchRequest, opts ...RequestOption) (*SearchResults, error) {
	if input.Type == "" {
		input.Type = "text"
	}

	if input.Limit == 0 {
		input.Limit = 10
	}

	c := newRequestConfig(append(r.Options, opts...)...)

	var data bytes.Buffer

	if err := json.NewEncoder(&data).Encode(input); err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/search-wrapper", &data)
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	type resultType struct {
		Hits struct {
			Total any `json:"total"`

			Hits []struct {
				ID     string          `json:"_id"`
				Score  float64         `json:"_score"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	var result resultType

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	results := &SearchResults{
		Total: hitTotal(result.Hits.Total),
	}

	for _, h := range result.Hits.Hits {
		results.Hits = append(results.Hits, SearchHit{
			ID:     h.ID,
			Score:  h.Score,
			Source: h.Source,
		})
	}

	return results, nil
}

// hitTotal reads the total hit count, which is a bare number in older
// search backends and an object with a "value" field in newer ones.
func hitTotal(value any) int {
	switch v := value.(type) {
	case float64:
		return int(v)

	case map[string]any:
		if n, ok := v["value"].(float64); ok {
			return int(n)
		}
	}

	return 0
}
