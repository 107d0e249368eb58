package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/state-trends-dashboard/internal/domain"
	"github.com/couchcryptid/state-trends-dashboard/internal/observability"
	"github.com/couchcryptid/state-trends-dashboard/internal/reference"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dashboard runs the enrichment pipeline for one request.
type Dashboard interface {
	Enrich(ctx context.Context, term string) (domain.Enrichment, error)
	Choropleth(ctx context.Context, term string) (domain.Choropleth, error)
	Scatter(ctx context.Context, term string, c domain.Characteristic) (domain.ScatterChart, error)
}

// Content serves the static page copy and solutions table.
type Content interface {
	Prose() reference.Prose
	Solutions() []domain.Solution
	Solution(name string) (domain.SolutionInsight, error)
}

// Options configures routing defaults and the listener.
type Options struct {
	Addr                  string
	CORSOrigins           []string
	DefaultTerm           string
	DefaultCharacteristic domain.Characteristic
	RequestTimeout        time.Duration
}

// Server exposes the dashboard page, its JSON API, and health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	dashboard  Dashboard
	content    Content
	opts       Options
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer wires the router. ready backs /readyz.
func NewServer(opts Options, dashboard Dashboard, content Content, ready sharedobs.ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	s := &Server{
		dashboard: dashboard,
		content:   content,
		opts:      opts,
		metrics:   metrics,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(ready))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(opts.RequestTimeout))
		r.Get("/", s.handleIndex)
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/characteristics", s.handleCharacteristics)
			r.Get("/choropleth", s.handleChoropleth)
			r.Get("/scatter", s.handleScatter)
			r.Get("/scatter.png", s.handleScatterPNG)
			r.Get("/states", s.handleStates)
			r.Get("/prose", s.handleProse)
			r.Route("/solutions", func(r chi.Router) {
				r.Get("/", s.handleSolutions)
				r.Get("/{name}", s.handleSolution)
			})
		})
	})

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      opts.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// instrument records per-route request counts and latency and logs each request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)

		s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.metrics.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
		s.logger.Debug("http request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
