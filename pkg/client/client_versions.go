package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

type VersionService struct {
	Options []RequestOption
}

func NewVersionService(opts ...RequestOption) VersionService {
	return VersionService{
		Options: opts,
	}
}

type Version struct {
	Title    string `json:"versionTitle"`
	Language string `json:"language"`

	Source  string `json:"versionSource"`
	Notes   string `json:"versionNotes"`
	License string `json:"license"`
}

// List returns every edition of an index title, such as "Genesis".
func (r *VersionService) List(ctx context.Context, index string, opts ...RequestOption) ([]Version, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/texts/versions/"+url.PathEscape(index), nil)

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

	var result []Version

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return result, nil
}
