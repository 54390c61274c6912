// ghost-edge device agent: reads raw capture events as NDJSON on stdin,
// runs them through the on-device privacy pipeline, and transmits the
// resulting secure events in batches.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/privacy"
	"github.com/ghostworks/ghostd/pkg/transmit"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file", "error", err)
	}

	orgID := os.Getenv("GHOST_ORG_ID")
	if orgID == "" {
		slog.Error("GHOST_ORG_ID is required")
		os.Exit(1)
	}
	deviceID := getEnv("GHOST_DEVICE_ID", uuid.NewString())
	userID := getEnv("GHOST_USER_ID", "anonymous")
	endpoint := getEnv("GHOST_ENDPOINT", "http://localhost:8080/ingest-events")

	queuePath := getEnv("GHOST_QUEUE_PATH",
		filepath.Join(os.TempDir(), "ghost-edge-queue.json"))
	store, err := transmit.NewFileStore(queuePath)
	if err != nil {
		slog.Error("Failed to open batch store", "path", queuePath, "error", err)
		os.Exit(1)
	}

	pipeline := privacy.NewPipeline(orgID, deviceID, userID)
	transmitter := transmit.New(transmit.Config{
		Endpoint:          endpoint,
		APIKey:            os.Getenv("GHOST_API_KEY"),
		DeviceFingerprint: deviceID,
	}, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	transmitter.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("Received signal, shutting down", "signal", sig)
		cancel()
		_ = os.Stdin.Close()
	}()

	slog.Info("ghost-edge started",
		"org_id", orgID, "device_id", deviceID, "endpoint", endpoint)

	// One raw event per line. Malformed lines are dropped, not fatal.
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var processed, dropped int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw models.RawEvent
		if err := json.Unmarshal(line, &raw); err != nil {
			dropped++
			slog.Debug("Dropping malformed event", "error", err)
			continue
		}
		secure := pipeline.Process(&raw)
		if secure == nil {
			dropped++
			continue
		}
		transmitter.Enqueue(*secure)
		processed++
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		slog.Error("Input read failed", "error", err)
	}

	// Final flush before exit; unsent batches persist to the queue file.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	transmitter.Shutdown(shutdownCtx)

	stats := transmitter.Stats()
	slog.Info("ghost-edge stopped",
		"processed", processed,
		"dropped", dropped,
		"sent", stats.TotalSent,
		"failed", stats.TotalFailed)
}
