package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/sefaria/pkg/corpus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type Corpus interface {
	Observable
	corpus.Provider
}

type observableCorpus struct {
	provider corpus.Provider

	durationMetric metric.Float64Histogram
}

func NewCorpus(p corpus.Provider) Corpus {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("sefaria.fetch.duration",
		metric.WithDescription("Duration of passage fetches"),
		metric.WithUnit("s"),
	)

	return &observableCorpus{
		provider: p,

		durationMetric: durationMetric,
	}
}

func (p *observableCorpus) otelSetup() {
}

func (p *observableCorpus) Get(ctx context.Context, ref string, options *corpus.TextOptions) (corpus.Document, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "fetch "+ref)
	defer span.End()

	timestamp := time.Now()

	result, err := p.provider.Get(ctx, ref, options)

	attrs := []KeyValue{
		String("sefaria.outcome", outcome(err)),
	}

	if options != nil && options.Version != "" {
		attrs = append(attrs, String("sefaria.version", options.Version))
	}

	p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))

	return result, err
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
