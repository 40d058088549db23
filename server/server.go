package server

import (
	"net/http"

	"github.com/adrianliechti/sefaria/config"
	"github.com/adrianliechti/sefaria/pkg/otel"
	"github.com/adrianliechti/sefaria/server/mcp"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h, err := mcp.New(cfg)

	if err != nil {
		return nil, err
	}

	h.Attach(r)

	var handler http.Handler = r

	if otel.EnableTelemetry {
		handler = otelhttp.NewHandler(handler, "server")
	}

	s := &Server{
		Config: cfg,

		handler: handler,
	}

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Address, s)
}
