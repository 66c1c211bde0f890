// Package main is the entry point for the cheer gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients"
	"github.com/uplift-labs/cheer-gateway/internal/adapters/clients/providers"
	"github.com/uplift-labs/cheer-gateway/internal/adapters/http"
	"github.com/uplift-labs/cheer-gateway/internal/adapters/http/handlers"
	"github.com/uplift-labs/cheer-gateway/internal/app"
	"github.com/uplift-labs/cheer-gateway/internal/domain"
	"github.com/uplift-labs/cheer-gateway/internal/platform/config"
	"github.com/uplift-labs/cheer-gateway/internal/platform/logging"
	"github.com/uplift-labs/cheer-gateway/internal/platform/telemetry"
	"github.com/uplift-labs/cheer-gateway/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the gateway.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting gateway",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create the provider fleet and the health registry
	healthRegistry := ports.NewHealthRegistry()

	service, err := buildCheerService(cfg, logger, healthRegistry)
	if err != nil {
		return err
	}

	// 6. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	cheerHandler := handlers.NewCheerHandler(service)

	// 7. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 8. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(
		logger, &cfg.App, cheerHandler, healthHandler,
	))

	// 9. Start server (non-blocking)
	serverErr := server.Start()

	// 10. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// buildCheerService constructs one instrumented HTTP client per upstream,
// wraps each in its provider adapter, registers the adapters as health
// checkers, and assembles the application service.
func buildCheerService(
	cfg *config.Config,
	logger *slog.Logger,
	registry ports.HealthRegistry,
) (*app.CheerService, error) {
	newClient := func(name string, pc config.ProviderConfig, headers map[string]string) (*clients.Client, error) {
		client, err := clients.New(&clients.Config{
			BaseURL:      pc.BaseURL,
			ProviderName: name,
			Timeout:      pc.Timeout,
			Circuit:      cfg.Client.CircuitBreaker,
			Transport:    cfg.Client.Transport,
			Headers:      headers,
			Logger:       logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating %s client: %w", name, err)
		}

		return client, nil
	}

	adviceClient, err := newClient("adviceslip", cfg.Providers.Advice, nil)
	if err != nil {
		return nil, err
	}

	quotableClient, err := newClient("quotable", cfg.Providers.Quotable, nil)
	if err != nil {
		return nil, err
	}

	bulkClient, err := newClient("typefit", cfg.Providers.BulkQuotes, nil)
	if err != nil {
		return nil, err
	}

	verseClient, err := newClient("biblelabs", cfg.Providers.Verse, nil)
	if err != nil {
		return nil, err
	}

	songClient, err := newClient("itunes", cfg.Providers.Song, nil)
	if err != nil {
		return nil, err
	}

	// icanhazdadjoke answers HTML unless asked for JSON explicitly.
	dadJokeClient, err := newClient("icanhazdadjoke", cfg.Providers.DadJoke,
		map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, err
	}

	funnyJokeClient, err := newClient("officialjoke", cfg.Providers.FunnyJoke, nil)
	if err != nil {
		return nil, err
	}

	// The nerdy and hr kinds hit the same upstream host, so they share one
	// client and one circuit breaker.
	jokeAPIClient, err := newClient("jokeapi", cfg.Providers.JokeAPI, nil)
	if err != nil {
		return nil, err
	}

	riddleClient, err := newClient("riddlesapi", cfg.Providers.Riddle, nil)
	if err != nil {
		return nil, err
	}

	advice := providers.NewAdviceSlip(adviceClient)
	quotable := providers.NewQuotable(quotableClient)
	bulkQuotes := providers.NewTypeFit(bulkClient)
	verse := providers.NewBibleLabs(verseClient)
	song := providers.NewITunes(songClient)
	dadJoke := providers.NewDadJoke(dadJokeClient)
	funnyJoke := providers.NewOfficialJoke(funnyJokeClient)
	nerdyJoke := providers.NewNerdyJoke(jokeAPIClient)
	hrJoke := providers.NewHRJoke(jokeAPIClient)
	riddle := providers.NewRiddlesAPI(riddleClient)

	checkers := []ports.HealthChecker{
		advice, quotable, bulkQuotes, verse, song,
		dadJoke, funnyJoke, nerdyJoke, hrJoke, riddle,
	}
	for _, checker := range checkers {
		if err := registry.Register(checker); err != nil {
			return nil, fmt.Errorf("registering %s health check: %w", checker.Name(), err)
		}
	}

	return app.NewCheerService(app.CheerServiceConfig{
		QuoteProviders: []ports.QuoteProvider{advice, quotable},
		ListProvider:   bulkQuotes,
		VerseProvider:  verse,
		SongProvider:   song,
		JokeProviders: map[domain.JokeKind]ports.JokeProvider{
			domain.KindDad:   dadJoke,
			domain.KindFunny: funnyJoke,
			domain.KindNerdy: nerdyJoke,
			domain.KindHR:    hrJoke,
		},
		RiddleProvider: riddle,
		Logger:         logger,
	}), nil
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
