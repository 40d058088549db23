package calendar

import (
	"context"

	"github.com/adrianliechti/sefaria/pkg/client"
	"github.com/adrianliechti/sefaria/pkg/tool"
)

var _ tool.Provider = (*Client)(nil)

type Client struct {
	service client.CalendarService

	timezone string
}

type Option func(*Client)

// WithTimezone sets the default timezone used when a call does not name
// one.
func WithTimezone(timezone string) Option {
	return func(c *Client) {
		c.timezone = timezone
	}
}

func New(service client.CalendarService, options ...Option) (*Client, error) {
	c := &Client{
		service: service,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        "get_calendars",
			Description: "Get today's Jewish learning schedules, like the weekly Torah portion and Daf Yomi. Returns titles and passage references usable with get_passage",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"timezone": map[string]any{
						"type":        "string",
						"description": "optional IANA timezone used to determine the current date (e.g. America/New_York)",
					},
				},
			},
		},
	}, nil
}

type Entry struct {
	Title   string `json:"title"`
	Display string `json:"display"`

	Ref      string `json:"ref,omitempty"`
	Category string `json:"category,omitempty"`
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != "get_calendars" {
		return nil, tool.ErrInvalidTool
	}

	options := &client.CalendarOptions{
		Timezone: c.timezone,
	}

	if timezone, ok := parameters["timezone"].(string); ok && timezone != "" {
		options.Timezone = timezone
	}

	calendar, err := c.service.Items(ctx, options)

	if err != nil {
		return nil, err
	}

	entries := []Entry{}

	for _, item := range calendar.Items {
		entries = append(entries, Entry{
			Title:   item.Title.En,
			Display: item.DisplayValue.En,

			Ref:      item.Ref,
			Category: item.Category,
		})
	}

	return entries, nil
}
