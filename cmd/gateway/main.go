package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Davidi18/wordpress-mcp/internal/config"
	"github.com/Davidi18/wordpress-mcp/internal/mcpserver"
	"github.com/Davidi18/wordpress-mcp/internal/server"
	"github.com/Davidi18/wordpress-mcp/internal/telemetry"
	"github.com/Davidi18/wordpress-mcp/internal/tenant"
)

const version = "1.0.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	shutdown, err := telemetry.InitTracer("wordpress-mcp", logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The database is optional; env-only deployments skip it.
	var cache *tenant.Cache
	if cfg.DatabaseURL != "" {
		store, err := tenant.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer store.Close()
		cache = tenant.NewCache(store, tenant.DefaultTTL, nil)
	}

	resolver := tenant.NewResolver(cache, cfg.EnvLookup(), logger)

	// Refusing to start with zero usable clients beats serving requests
	// that can only fail or write to the wrong site.
	known := resolver.Known(ctx)
	if len(known) == 0 {
		log.Fatal("No WordPress clients configured: set DATABASE_URL or WP_API_URL/WP_API_USERNAME/WP_API_PASSWORD")
	}
	logger.Info("clients configured",
		slog.Int("count", len(known)),
		slog.String("source", known[0].Source))

	mcpSrv := mcpserver.New(mcpserver.NewHandler(resolver, logger), version)
	srv := server.New(cfg.Port, cfg.APIKey, resolver, mcpserver.HTTPHandler(mcpSrv, "/mcp"), logger, !cfg.IsProduction())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case sig := <-sigCh:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("gateway shutdown complete")
}
