package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/adrianliechti/sefaria/pkg/corpus"
)

type LinkService struct {
	Options []RequestOption
}

func NewLinkService(opts ...RequestOption) LinkService {
	return LinkService{
		Options: opts,
	}
}

type Link struct {
	Ref       string `json:"ref"`
	AnchorRef string `json:"anchorRef"`
	SourceRef string `json:"sourceRef"`

	Category string `json:"category"`
	Type     string `json:"type"`
}

// List returns the intertextual links of a reference, one entry per
// connected passage.
func (r *LinkService) List(ctx context.Context, ref string, opts ...RequestOption) ([]Link, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/links/"+url.PathEscape(ref), nil)

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

	var result []Link

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}

// Summary returns link counts of a reference grouped by category.
func (r *LinkService) Summary(ctx context.Context, ref string, opts ...RequestOption) (corpus.Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/links/"+url.PathEscape(ref)+"/summary", nil)

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
