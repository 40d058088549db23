package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/sefaria/pkg/tool"
	"github.com/adrianliechti/sefaria/pkg/tool/calendar"
	"github.com/adrianliechti/sefaria/pkg/tool/passage"
	"github.com/adrianliechti/sefaria/pkg/tool/search"

	"github.com/adrianliechti/sefaria/pkg/client"
	"github.com/adrianliechti/sefaria/pkg/corpus"

	"github.com/adrianliechti/sefaria/pkg/otel"
)

func (c *Config) RegisterTool(id string, p tool.Provider) {
	if c.tools == nil {
		c.tools = make(map[string]tool.Provider)
	}

	c.tools[id] = p
}

func (cfg *Config) Tools() []tool.Provider {
	var tools []tool.Provider

	if cfg.tools != nil {
		for _, p := range cfg.tools {
			tools = append(tools, p)
		}
	}

	return tools
}

func (cfg *Config) Tool(id string) (tool.Provider, error) {
	if cfg.tools != nil {
		if p, ok := cfg.tools[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("tool not found: " + id)
}

type toolConfig struct {
	Type string `yaml:"type"`

	Corpus string `yaml:"corpus"`

	Source string `yaml:"source"`
	Target string `yaml:"target"`

	Timezone string `yaml:"timezone"`

	Limit *int `yaml:"limit"`
}

type toolContext struct {
	Client *client.Client
	Corpus corpus.Provider
}

func (cfg *Config) registerTools(f *configFile) error {
	var configs map[string]toolConfig

	if err := f.Tools.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Tools.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		context := toolContext{}

		if c, err := cfg.Client(config.Corpus); err == nil {
			context.Client = c
		}

		if p, err := cfg.Corpus(config.Corpus); err == nil {
			context.Corpus = p
		}

		tool, err := createTool(config, context)

		if err != nil {
			return err
		}

		if _, ok := tool.(otel.Tool); !ok {
			tool = otel.NewTool(config.Type, tool)
		}

		cfg.RegisterTool(id, tool)
	}

	return nil
}

func createTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	switch strings.ToLower(cfg.Type) {

	case "passage":
		return passageTool(cfg, context)

	case "search":
		return searchTool(cfg, context)

	case "calendar":
		return calendarTool(cfg, context)

	default:
		return nil, errors.New("invalid tool type: " + cfg.Type)
	}
}

func passageTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	if context.Corpus == nil {
		return nil, errors.New("passage tool requires a corpus")
	}

	var options []passage.Option

	if cfg.Source != "" {
		options = append(options, passage.WithSource(cfg.Source))
	}

	if cfg.Target != "" {
		options = append(options, passage.WithTarget(cfg.Target))
	}

	return passage.New(context.Corpus, options...)
}

func searchTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	if context.Client == nil {
		return nil, errors.New("search tool requires a corpus")
	}

	var options []search.Option

	if cfg.Limit != nil {
		options = append(options, search.WithLimit(*cfg.Limit))
	}

	return search.New(context.Client.Searches, options...)
}

func calendarTool(cfg toolConfig, context toolContext) (tool.Provider, error) {
	if context.Client == nil {
		return nil, errors.New("calendar tool requires a corpus")
	}

	var options []calendar.Option

	if cfg.Timezone != "" {
		options = append(options, calendar.WithTimezone(cfg.Timezone))
	}

	return calendar.New(context.Client.Calendars, options...)
}
