package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/adrianliechti/sefaria/pkg/corpus"
	"github.com/adrianliechti/sefaria/pkg/limiter"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type recorder struct {
	refs []string
}

func (p *recorder) Get(ctx context.Context, ref string, options *corpus.TextOptions) (corpus.Document, error) {
	p.refs = append(p.refs, ref)

	return corpus.Document{"ref": ref}, nil
}

func TestCorpus(t *testing.T) {
	provider := &recorder{}

	l := limiter.NewCorpus(rate.NewLimiter(rate.Every(time.Millisecond), 1), provider)

	doc, err := l.Get(context.Background(), "Genesis 1:1", nil)

	require.NoError(t, err)
	require.Equal(t, "Genesis 1:1", doc["ref"])
	require.Equal(t, []string{"Genesis 1:1"}, provider.refs)
}

func TestCorpusNilLimiter(t *testing.T) {
	provider := &recorder{}

	l := limiter.NewCorpus(nil, provider)

	_, err := l.Get(context.Background(), "Genesis 1:2", nil)

	require.NoError(t, err)
	require.Equal(t, []string{"Genesis 1:2"}, provider.refs)
}
