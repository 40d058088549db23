package config

import (
	"bytes"
	"os"

	"github.com/adrianliechti/sefaria/pkg/client"
	"github.com/adrianliechti/sefaria/pkg/corpus"
	"github.com/adrianliechti/sefaria/pkg/mcp"
	"github.com/adrianliechti/sefaria/pkg/tool"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	clients map[string]*client.Client
	corpora map[string]corpus.Provider

	tools map[string]tool.Provider

	mcps map[string]*mcp.Server
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if err := c.registerCorpora(file); err != nil {
		return nil, err
	}

	if err := c.registerTools(file); err != nil {
		return nil, err
	}

	if err := c.registerMCP(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Corpora yaml.Node `yaml:"corpora"`

	Tools yaml.Node `yaml:"tools"`

	MCPs yaml.Node `yaml:"mcps"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
