package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/adrianliechti/sefaria/config"
	"github.com/adrianliechti/sefaria/pkg/otel"
	"github.com/adrianliechti/sefaria/server"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration path")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx := context.Background()

	if otel.EnableTelemetry {
		if err := otel.Setup(ctx, "sefaria", version); err != nil {
			panic(err)
		}
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		panic(err)
	}

	slog.InfoContext(ctx, "server starting", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		panic(err)
	}
}
