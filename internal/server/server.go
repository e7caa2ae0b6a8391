// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	POST /v1/layout/graph      graph document in, JSON layout out
//	POST /v1/layout/tree       tree document in, JSON layout out
//	POST /v1/render/{format}   document in, rendered artifact out
//	GET  /v1/palette/{name}    palette slot and color for an annotation name
//	GET  /healthz              liveness
//	GET  /metrics              Prometheus metrics
//
// Layout and render routes accept JSON or YAML documents and take layout
// options as query parameters (width, height, node_size, level_spacing,
// iterations, strict, sequential_ids, theme, labels, refresh). Defaults
// come from the current configuration, so a watched config file changes
// the defaults of the next request.
package server

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leetpulse/dskit/internal/config"
	"github.com/leetpulse/dskit/pkg/pipeline"
)

// ConfigSource supplies the configuration for each request.
// [*config.Loader] implements it.
type ConfigSource interface {
	Config() *config.Config
}

// Static is a ConfigSource that never changes.
type Static struct{ Cfg *config.Config }

// Config returns the wrapped configuration, or the defaults when nil.
func (s Static) Config() *config.Config {
	if s.Cfg == nil {
		return config.Default()
	}
	return s.Cfg
}

// Server holds the HTTP handler dependencies.
type Server struct {
	runner  *pipeline.Runner
	config  ConfigSource
	logger  *log.Logger
	metrics prometheus.Gatherer
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithGatherer serves metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.metrics = g }
}

// New creates a Server and registers all routes.
func New(runner *pipeline.Runner, cfg ConfigSource, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg == nil {
		cfg = Static{}
	}
	s := &Server{
		runner:  runner,
		config:  cfg,
		logger:  logger,
		metrics: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.With(s.limitBody).Post("/layout/{kind}", s.layout)
		r.With(s.limitBody).Post("/render/{format}", s.render)
		r.Get("/palette/{name}", s.palette)
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
