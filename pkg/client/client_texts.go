package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/adrianliechti/sefaria/pkg/corpus"
)

var (
	_ corpus.Provider = (*TextService)(nil)
)

type TextService struct {
	Options []RequestOption
}

func NewTextService(opts ...RequestOption) TextService {
	return TextService{
		Options: opts,
	}
}

type TextOptions = corpus.TextOptions

// Get fetches the passage document of a reference like "Genesis 1:1".
func (r *TextService) Get(ctx context.Context, ref string, options *corpus.TextOptions) (corpus.Document, error) {
	if ref == "" {
		return nil, corpus.ErrInvalidReference
	}

	if options == nil {
		options = new(corpus.TextOptions)
	}

	c := newRequestConfig(r.Options...)

	query := url.Values{}

	if options.Version != "" {
		query.Set("version", options.Version)
	}

	if options.FillMissing {
		query.Set("fill_in_missing_segments", "1")
	}

	if options.Format != "" && options.Format != "default" {
		query.Set("return_format", options.Format)
	}

	endpoint := c.URL + "/v3/texts/" + url.PathEscape(ref)

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

type RandomOptions struct {
	// Titles is a pipe-separated list of book titles to draw from.
	Titles string

	// Categories is a pipe-separated list of categories to draw from.
	Categories string
}

func (r *TextService) Random(ctx context.Context, options *RandomOptions, opts ...RequestOption) (corpus.Document, error) {
	if options == nil {
		options = new(RandomOptions)
	}

	c := newRequestConfig(append(r.Options, opts...)...)

	query := url.Values{}

	if options.Titles != "" {
		query.Set("titles", options.Titles)
	}

	if options.Categories != "" {
		query.Set("categories", options.Categories)
	}

	endpoint := c.URL + "/texts/random"

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

type BulkPassage struct {
	Ref   string `json:"ref"`
	HeRef string `json:"heRef"`

	He string `json:"he"`
	En string `json:"en"`

	Lang string `json:"lang"`

	PrimaryCategory string `json:"primaryCategory"`
}

// Bulk fetches the primary text of many references in one round trip,
// keyed by reference.
func (r *TextService) Bulk(ctx context.Context, refs []string, opts ...RequestOption) (map[string]BulkPassage, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	type bodyType struct {
		Refs []string `json:"refs"`
	}

	body := bodyType{
		Refs: refs,
	}

	var data bytes.Buffer

	if err := json.NewEncoder(&data).Encode(body); err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/bulktext", &data)
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

	var result map[string]BulkPassage

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *TextService) Languages(ctx context.Context, opts ...RequestOption) ([]string, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/texts/languages", nil)

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

	var result []string

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}

// Translations lists available translations of a language, organized by
// category.
func (r *TextService) Translations(ctx context.Context, lang string, opts ...RequestOption) (corpus.Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/texts/translations/"+url.PathEscape(lang), nil)

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

func (r *TextService) List(ctx context.Context, opts ...RequestOption) (corpus.Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/texts/list", nil)

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
