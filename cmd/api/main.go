// ABOUTME: Main entry point for the Feed Discovery API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feed-discovery-api/api"
	"feed-discovery-api/api/handlers"
	"feed-discovery-api/api/middleware"
	"feed-discovery-api/core/corpus"
	"feed-discovery-api/core/discovery"
	coreerrors "feed-discovery-api/core/errors"
	"feed-discovery-api/core/interfaces"
	"feed-discovery-api/core/metadata"
	"feed-discovery-api/core/query"
	"feed-discovery-api/core/ranking"
	"feed-discovery-api/core/validation"
	stdhttp "feed-discovery-api/infrastructure/http/standard"
	"feed-discovery-api/infrastructure/logger"
	"feed-discovery-api/infrastructure/metrics"
	"feed-discovery-api/pkg/config"
	"feed-discovery-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, logCloser := logger.New(logger.Options{
		Backend: cfg.Log.Backend,
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
	})
	defer logCloser.Close()

	var flags featureflags.Manager = featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	// The corpus is loaded once and never reloaded
	feeds, err := corpus.Load(cfg.Corpus.Path, cfg.Corpus.Version)
	if err != nil {
		msg := "Failed to start"
		if coreerrors.IsCorpus(err) {
			msg = "Failed to load corpus"
		}
		appLogger.Error(msg, map[string]interface{}{
			"path":  cfg.Corpus.Path,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	appLogger.Info("Starting Feed Discovery API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"corpus":      cfg.Corpus.Path,
		"version":     feeds.Version(),
		"corpus_size": feeds.Len(),
		"max_limit":   cfg.Search.MaxLimit,
		"concurrency": cfg.Validation.Concurrency,
		"max_urls":    cfg.Validation.MaxURLs,
		"flags":       flags.GetAllFlags(),
	})

	// Outgoing requests are logged with the inbound request ID
	transport := &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    appLogger,
	}
	httpClient := stdhttp.NewStandardHTTPClientWithTransport(cfg.Validation.ProbeTimeout, transport)

	var recorder *metrics.Metrics
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     appLogger,
	}
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		recorder = metrics.New()
		deps.Metrics = recorder
	}

	// Create services
	normalizer := query.NewNormalizer(cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	engine := ranking.NewEngine(feeds)
	prober := validation.NewURLValidator(deps, cfg.Validation.ProbeTimeout)

	var parser metadata.BodyParser = metadata.SniffParser{}
	if flags.IsEnabled(ctx, featureflags.FeedParserMetadata) {
		parser = metadata.FallbackParser{Primary: metadata.FeedParser{}, Fallback: metadata.SniffParser{}}
	}
	extractor := metadata.NewExtractor(deps, metadata.Options{
		MaxBytes:  cfg.Validation.MetadataMaxBytes,
		Timeout:   cfg.Validation.MetadataTimeout,
		Parser:    parser,
		Transport: transport,
	})
	orchestrator := validation.NewOrchestrator(deps, prober, extractor, cfg.Validation.Concurrency)

	// Create API with middleware
	apiConfig := api.APIConfig{Logger: appLogger}
	if recorder != nil {
		apiConfig.Metrics = recorder
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewFeedsHandler(deps, normalizer, engine, orchestrator, cfg.Validation.MaxURLs).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(feeds).RegisterRoutes(humaAPI)

	if flags.IsEnabled(ctx, featureflags.DiscoverEnabled) {
		discoverer := discovery.NewService(deps, cfg.Validation.Concurrency)
		handlers.NewDiscoverHandler(discoverer).RegisterRoutes(humaAPI)
	}

	// Create HTTP server. The write timeout is derived from the largest
	// validation batch the handlers accept.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server stopped", nil)
}
