package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/adrianliechti/sefaria/pkg/corpus"
)

type ManuscriptService struct {
	Options []RequestOption
}

func NewManuscriptService(opts ...RequestOption) ManuscriptService {
	return ManuscriptService{
		Options: opts,
	}
}

// Get returns manuscript images and metadata covering a reference.
func (r *ManuscriptService) Get(ctx context.Context, ref string, opts ...RequestOption) (corpus.Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/manuscripts/"+url.PathEscape(ref), nil)

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
