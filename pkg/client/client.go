package client

import (
	"net/http"
	"strings"
)

type Client struct {
	Texts    TextService
	Versions VersionService
	Indexes  IndexService

	Searches SearchService

	Links  LinkService
	Topics TopicService

	Calendars   CalendarService
	Manuscripts ManuscriptService
	Histories   HistoryService
}

func New(url string, opts ...RequestOption) *Client {
	if url == "" {
		url = "https://www.sefaria.org/api"
	}

	url = strings.TrimSuffix(url, "/")

	opts = append(opts, WithURL(url))

	return &Client{
		Texts:    NewTextService(opts...),
		Versions: NewVersionService(opts...),
		Indexes:  NewIndexService(opts...),

		Searches: NewSearchService(opts...),

		Links:  NewLinkService(opts...),
		Topics: NewTopicService(opts...),

		Calendars:   NewCalendarService(opts...),
		Manuscripts: NewManuscriptService(opts...),
		Histories:   NewHistoryService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
