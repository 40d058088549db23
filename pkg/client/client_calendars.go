package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

type CalendarService struct {
	Options []RequestOption
}

func NewCalendarService(opts ...RequestOption) CalendarService {
	return CalendarService{
		Options: opts,
	}
}

type CalendarOptions struct {
	// Timezone is an IANA name like "America/New_York" used to determine
	// the current date.
	Timezone string

	// Custom selects a custom reading cycle, like "ashkenazi".
	Custom string
}

type Bilingual struct {
	En string `json:"en"`
	He string `json:"he"`
}

type CalendarItem struct {
	Title        Bilingual `json:"title"`
	DisplayValue Bilingual `json:"displayValue"`

	Ref   string `json:"ref"`
	HeRef string `json:"heRef"`

	URL      string `json:"url"`
	Category string `json:"category"`
}

type Calendar struct {
	Date     string `json:"date"`
	Timezone string `json:"timezone"`

	Items []CalendarItem `json:"calendar_items"`
}

// Items returns the learning schedules of the current date, such as the
// weekly Torah portion and Daf Yomi.
func (r *CalendarService) Items(ctx context.Context, options *CalendarOptions, opts ...RequestOption) (*Calendar, error) {
	if options == nil {
		options = new(CalendarOptions)
	}

	c := newRequestConfig(append(r.Options, opts...)...)

	query := url.Values{}

	if options.Timezone != "" {
		query.Set("timezone", options.Timezone)
	}

	if options.Custom != "" {
		query.Set("custom", options.Custom)
	}

	endpoint := c.URL + "/calendars"

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

	var result Calendar

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
