package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/adrianliechti/sefaria/pkg/corpus"
)

type HistoryService struct {
	Options []RequestOption
}

func NewHistoryService(opts ...RequestOption) HistoryService {
	return HistoryService{
		Options: opts,
	}
}

type HistoryOptions struct {
	Language string
	Version  string
}

// Get returns the revision history of a reference, optionally narrowed to
// one language or edition.
func (r *HistoryService) Get(ctx context.Context, ref string, options *HistoryOptions, opts ...RequestOption) (corpus.Document, error) {
	if options == nil {
		options = new(HistoryOptions)
	}

	c := newRequestConfig(append(r.Options, opts...)...)

	query := url.Values{}

	if options.Language != "" {
		query.Set("language", options.Language)
	}

	if options.Version != "" {
		query.Set("version", options.Version)
	}

	endpoint := c.URL + "/history/" + url.PathEscape(ref)

	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, _ := http.NewRequestWithContext(ctx, "GET", endpoint, nil)

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

	var result corpus.Document

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
