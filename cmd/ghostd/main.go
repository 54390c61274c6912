// ghostd server: HTTP ingestion, pattern detection, and ghost execution.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ghostworks/ghostd/pkg/api"
	"github.com/ghostworks/ghostd/pkg/config"
	"github.com/ghostworks/ghostd/pkg/database"
	"github.com/ghostworks/ghostd/pkg/events"
	"github.com/ghostworks/ghostd/pkg/llm"
	"github.com/ghostworks/ghostd/pkg/ratelimit"
	"github.com/ghostworks/ghostd/pkg/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := slog.Default()

	slog.Info("Starting ghostd", "http_port", cfg.HTTPPort)

	ctx := context.Background()

	// 1. Database (runs migrations on startup)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Rate limiters, shared via Redis across replicas when configured
	var ingestLimiter, execLimiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Error("Failed to connect to Redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		ingestLimiter = ratelimit.NewRedisLimiter(rdb, cfg.IngestPerMinute, time.Minute)
		execLimiter = ratelimit.NewRedisLimiter(rdb, cfg.ExecutionsPerMinute, time.Minute)
		slog.Info("Using Redis rate limiters", "addr", cfg.RedisAddr)
	} else {
		ingestLimiter = ratelimit.NewMemoryLimiter(cfg.IngestPerMinute, time.Minute)
		execLimiter = ratelimit.NewMemoryLimiter(cfg.ExecutionsPerMinute, time.Minute)
		slog.Info("Using in-memory rate limiters")
	}

	// 3. LLM client (optional; lifting and planning degrade without it)
	var llmClient llm.Client
	if cfg.LLMEnabled {
		client, err := llm.NewOpenAIClient()
		if err != nil {
			slog.Error("Failed to initialize LLM client", "error", err)
			os.Exit(1)
		}
		llmClient = client
	} else {
		slog.Warn("LLM_API_KEY not set; abstraction lifting and planning disabled")
	}

	// 4. Announcements and domain services
	publisher := events.NewPublisher(dbClient.DB())

	ingestService := services.NewIngestService(dbClient.Client, ingestLimiter, logger)
	patternService := services.NewPatternService(dbClient.Client, llmClient, publisher, logger)
	ghostService := services.NewGhostService(dbClient.Client, logger)
	executionService := services.NewExecutionService(dbClient.Client, llmClient, execLimiter, publisher, logger)
	feedbackService := services.NewFeedbackService(dbClient.Client, logger)
	slog.Info("Services initialized")

	// 5. Ingestion triggers detection asynchronously; the 202 never waits.
	ingestService.OnIngest(func(orgIDs []string) {
		for _, orgID := range orgIDs {
			go func(orgID string) {
				detectCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				defer cancel()
				if _, err := patternService.DetectPatterns(detectCtx, orgID); err != nil {
					slog.Warn("Background pattern detection failed", "org_id", orgID, "error", err)
				}
			}(orgID)
		}
	})

	// 6. Periodic approval request expiry sweep
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if n, err := ghostService.ExpireApprovalRequests(sweepCtx); err != nil {
					slog.Warn("Approval expiry sweep failed", "error", err)
				} else if n > 0 {
					slog.Info("Expired stale approval requests", "count", n)
				}
			}
		}
	}()

	// 7. HTTP server
	server := api.NewServer(
		dbClient, llmClient,
		ingestService, patternService, ghostService, executionService, feedbackService,
		api.Config{ServiceToken: cfg.ServiceToken},
		logger)

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 8. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Received signal, shutting down", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	slog.Info("Shutdown complete")
}
