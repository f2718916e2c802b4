// Package api serves the sales dataset over HTTP.
//
// Routes:
//
//	GET /vendas           dataset as a JSON array, descending by vendas
//	GET /vendas/chart.svg server-rendered bar chart for the current dataset
//	GET /healthz          liveness probe
//
// Every request that needs data performs one fetch against the provider;
// a failed fetch yields a single error response with no retry and no
// partial payload.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"saleschart/pkg/chart/layout"
	"saleschart/pkg/sales"
)

// Options configures the server. The zero value is usable for tests: the
// default canvas and an empty CORS allow-list.
type Options struct {
	Canvas           layout.Canvas
	AllowedOrigins   []string
	AllowCredentials bool
	ChartTitle       string
	Logger           *log.Logger
}

// Server handles HTTP requests for the sales API.
type Server struct {
	provider sales.Provider
	canvas   layout.Canvas
	opts     Options
	logger   *log.Logger
}

// NewServer creates a server backed by the given provider.
func NewServer(provider sales.Provider, opts Options) *Server {
	if opts.Canvas.Width == 0 {
		opts.Canvas = layout.DefaultCanvas()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		provider: provider,
		canvas:   opts.Canvas,
		opts:     opts,
		logger:   logger,
	}
}

// Handler builds the chi router with middleware and routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: s.opts.AllowCredentials,
		MaxAge:           86400,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/vendas", s.handleVendas)
	r.Get("/vendas/chart.svg", s.handleChartSVG)

	return r
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
