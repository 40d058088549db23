package limiter

import (
	"context"

	"github.com/adrianliechti/sefaria/pkg/corpus"

	"golang.org/x/time/rate"
)

type Corpus interface {
	Limiter
	corpus.Provider
}

type limitedCorpus struct {
	limiter  *rate.Limiter
	provider corpus.Provider
}

func NewCorpus(l *rate.Limiter, p corpus.Provider) Corpus {
	return &limitedCorpus{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedCorpus) limiterSetup() {
}

func (p *limitedCorpus) Get(ctx context.Context, ref string, options *corpus.TextOptions) (corpus.Document, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Get(ctx, ref, options)
}
