package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/adrianliechti/sefaria/pkg/corpus"
)

type TopicService struct {
	Options []RequestOption
}

func NewTopicService(opts ...RequestOption) TopicService {
	return TopicService{
		Options: opts,
	}
}

// RefLinks returns the topics linked to a reference.
func (r *TopicService) RefLinks(ctx context.Context, ref string, opts ...RequestOption) ([]corpus.Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/ref-topic-links/"+url.PathEscape(ref), nil)

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

	var result []corpus.Document

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
