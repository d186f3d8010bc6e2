// Package server serves the interactive visualization over HTTP.
//
// Routes:
//
//	GET /              HTML page with the node-count and allocation sliders
//	GET /scene.{fmt}   scene as svg, json, dot, png or pdf
//	GET /resources     resource totals as JSON
//	GET /healthz       health check, 503 when the cache is unreachable
//	GET /metrics       Prometheus metrics (when configured)
//
// Scene routes accept the query parameters nodes, allocation, viz, theme and
// title. Out-of-range numbers are clamped to the slider bounds.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openmesh-network/meshviz/pkg/pipeline"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

const shutdownTimeout = 10 * time.Second

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	metrics  http.Handler
	defaults topology.Params
	layout   topology.Layout
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithDefaults sets the slider positions used when a request omits them.
func WithDefaults(p topology.Params) Option {
	return func(s *Server) { s.defaults = p.Clamp() }
}

// WithLayout overrides the drawing constants.
func WithLayout(l topology.Layout) Option {
	return func(s *Server) { s.layout = l.WithDefaults() }
}

// New creates a server. A nil runner gets an uncached one.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{
		runner:   runner,
		logger:   logger,
		defaults: topology.DefaultParams(),
		layout:   topology.DefaultLayout(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(instrument)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/scene.{format}", s.handleScene)
	r.Get("/resources", s.handleResources)
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", handleVersion)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
