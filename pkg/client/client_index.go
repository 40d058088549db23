package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/adrianliechti/sefaria/pkg/corpus"
)

type IndexService struct {
	Options []RequestOption
}

func NewIndexService(opts ...RequestOption) IndexService {
	return IndexService{
		Options: opts,
	}
}

// Get returns the raw index record of a title, including its schema and
// alternate structures.
func (r *IndexService) Get(ctx context.Context, title string, opts ...RequestOption) (corpus.Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/v2/raw/index/"+url.PathEscape(title), nil)

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

type TOCEntry struct {
	Category   string `json:"category"`
	HeCategory string `json:"heCategory"`

	Title   string `json:"title"`
	HeTitle string `json:"heTitle"`

	Contents []TOCEntry `json:"contents"`
}

// Contents returns the complete table of contents of the library, a tree of
// categories with text titles at the leaves.
func (r *IndexService) Contents(ctx context.Context, opts ...RequestOption) ([]TOCEntry, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/index", nil)

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

	var result []TOCEntry

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}

// Counts returns availability counts of a title per language and section.
func (r *IndexService) Counts(ctx context.Context, title string, opts ...RequestOption) (corpus.Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/counts/"+url.PathEscape(title), nil)

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
