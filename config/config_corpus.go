package config

import (
	"errors"

	"github.com/adrianliechti/sefaria/pkg/client"
	"github.com/adrianliechti/sefaria/pkg/corpus"
	"github.com/adrianliechti/sefaria/pkg/limiter"
	"github.com/adrianliechti/sefaria/pkg/otel"
)

func (cfg *Config) RegisterClient(id string, c *client.Client) {
	if cfg.clients == nil {
		cfg.clients = make(map[string]*client.Client)
	}

	if _, ok := cfg.clients[""]; !ok {
		cfg.clients[""] = c
	}

	cfg.clients[id] = c
}

func (cfg *Config) Client(id string) (*client.Client, error) {
	if cfg.clients != nil {
		if c, ok := cfg.clients[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("client not found: " + id)
}

func (cfg *Config) RegisterCorpus(id string, p corpus.Provider) {
	if cfg.corpora == nil {
		cfg.corpora = make(map[string]corpus.Provider)
	}

	if _, ok := cfg.corpora[""]; !ok {
		cfg.corpora[""] = p
	}

	cfg.corpora[id] = p
}

func (cfg *Config) Corpus(id string) (corpus.Provider, error) {
	if cfg.corpora != nil {
		if p, ok := cfg.corpora[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("corpus not found: " + id)
}

type corpusConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerCorpora(f *configFile) error {
	var configs map[string]corpusConfig

	if err := f.Corpora.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Corpora.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		client, corpus, err := createCorpus(config)

		if err != nil {
			return err
		}

		if _, ok := corpus.(limiter.Corpus); !ok {
			corpus = limiter.NewCorpus(createLimiter(config.Limit), corpus)
		}

		if _, ok := corpus.(otel.Corpus); !ok {
			corpus = otel.NewCorpus(corpus)
		}

		cfg.RegisterClient(id, client)
		cfg.RegisterCorpus(id, corpus)
	}

	return nil
}

func createCorpus(cfg corpusConfig) (*client.Client, corpus.Provider, error) {
	var options []client.RequestOption

	if cfg.Token != "" {
		options = append(options, client.WithToken(cfg.Token))
	}

	c := client.New(cfg.URL, options...)

	return c, &c.Texts, nil
}
