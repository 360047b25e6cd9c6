package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Davidi18/wordpress-mcp/internal/tenant"
)

// Server is the gateway's HTTP face: the MCP endpoint plus the convenience
// API routes.
type Server struct {
	Router   *chi.Mux
	resolver *tenant.Resolver
	logger   *slog.Logger
	httpSrv  *http.Server
}

// New wires the router. mcpHandler serves the MCP protocol endpoint; apiKey
// guards the /api routes (and /mcp) when non-empty. /health and /metrics are
// always open. exposeStack puts panic stacks in 500 bodies (development
// only).
func New(port int, apiKey string, resolver *tenant.Resolver, mcpHandler http.Handler, logger *slog.Logger, exposeStack bool) *Server {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoverMiddleware(logger, exposeStack))
	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "wordpress-mcp")
	})

	s := &Server{
		Router:   r,
		resolver: resolver,
		logger:   logger,
		httpSrv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(APIKeyMiddleware(apiKey))
		r.Use(TimeoutMiddleware(60 * time.Second))

		r.Get("/api/clients", s.handleClients)
		r.Get("/api/find", s.handleFind)
		r.Get("/api/site-data", s.handleSiteData)
		r.Handle("/mcp", mcpHandler)
	})

	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("starting server", slog.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
