package serve

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loomui/loom/internal/errors"
	"github.com/loomui/loom/internal/registry"
)

// Config configures the registry server.
type Config struct {
	// Addr is the listen address (default: ":7420").
	Addr string

	// TracerName is the OpenTelemetry tracer name (default: "loom").
	TracerName string

	// Registry is the Prometheus registry to register metrics with.
	// Default: a fresh registry private to this server.
	Registry *prometheus.Registry
}

// Option configures the registry server.
type Option func(*Config)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(c *Config) {
		c.Addr = addr
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithPrometheusRegistry sets the Prometheus registry.
func WithPrometheusRegistry(reg *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = reg
	}
}

func defaultConfig() Config {
	return Config{
		Addr:       ":7420",
		TracerName: "loom",
		Registry:   prometheus.NewRegistry(),
	}
}

// Server exposes a component registry over HTTP. Clients fetch the
// manifest from /registry.json and component sources from
// /components/{name}/{file}; the same shape a loom project's
// [registry] url points at.
type Server struct {
	reg     *registry.Registry
	config  Config
	metrics *metrics
}

// New returns a Server for the given registry.
func New(reg *registry.Registry, opts ...Option) *Server {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Server{
		reg:     reg,
		config:  config,
		metrics: newMetrics(config.Registry),
	}
}

// Handler builds the chi router with tracing and metrics applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.tracing(s.config.TracerName))
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Get("/registry.json", s.handleManifest)
	r.Get("/components/{name}/{file}", s.handleComponentFile)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		s.config.Registry, promhttp.HandlerOpts{}))

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts it
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.New("E401").Wrap(err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.New("E401").Wrap(err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleManifest(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.reg.Manifest()); err != nil {
		http.Error(w, "encoding manifest", http.StatusInternalServerError)
	}
}

func (s *Server) handleComponentFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	file := chi.URLParam(r, "file")

	c, ok := s.reg.Find(name)
	if !ok {
		http.Error(w, "unknown component", http.StatusNotFound)
		return
	}
	if !componentHasFile(c, file) {
		http.Error(w, "file not part of component", http.StatusNotFound)
		return
	}

	content, err := registry.Source(file)
	if err != nil {
		http.Error(w, "source missing", http.StatusInternalServerError)
		return
	}

	s.metrics.downloadsTotal.WithLabelValues(name).Inc()
	w.Header().Set("Content-Type", "text/x-go; charset=utf-8")
	w.Write(content)
}

func componentHasFile(c registry.Component, file string) bool {
	for _, f := range c.Files {
		if f == file {
			return true
		}
	}
	return false
}
