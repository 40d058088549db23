package client

import (
	"net/http"
)

type RequestConfig struct {
	Client *http.Client

	URL   string
	Token string
}

type RequestOption func(*RequestConfig)

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = url
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}
