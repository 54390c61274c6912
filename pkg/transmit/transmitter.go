// Package transmit is the reliable edge→cloud hop: it batches secure events,
// rate-limits enqueues, retries transient failures with exponential backoff,
// and persists undeliverable batches for replay after restart.
package transmit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/version"
	"github.com/google/uuid"
)

// Stats is a point-in-time snapshot of transmitter counters.
type Stats struct {
	TotalSent        int `json:"totalSent"`
	TotalFailed      int `json:"totalFailed"`
	TotalDropped     int `json:"totalDropped"`
	TotalBatches     int `json:"totalBatches"`
	BufferSize       int `json:"bufferSize"`
	FailedBatchCount int `json:"failedBatchCount"`
	EventsThisMinute int `json:"eventsThisMinute"`
}

// Transmitter exclusively owns its buffer, failed-batch queue, and rate
// counters. External callers interact only through Enqueue, Flush,
// Configure, Stats, Start and Shutdown. Enqueue never reorders events
// already buffered.
type Transmitter struct {
	httpClient *http.Client
	store      BatchStore

	mu          sync.Mutex
	cfg         Config
	buffer      []models.SecureEvent
	failed      []models.SecureEventBatch
	flushing    bool
	minuteStart time.Time
	minuteCount int

	totalSent    int
	totalFailed  int
	totalDropped int
	totalBatches int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a transmitter and restores any persisted failed batches.
// store may be nil (no durable queue).
func New(cfg Config, store BatchStore) *Transmitter {
	t := &Transmitter{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		store:       store,
		cfg:         cfg.withDefaults(),
		minuteStart: time.Now(),
		stopCh:      make(chan struct{}),
	}
	t.restoreFailedBatches()
	return t
}

// Configure replaces the transmitter configuration. Overrides apply to
// subsequent batches; in-flight sends finish under the old settings.
func (t *Transmitter) Configure(cfg Config) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg = cfg.withDefaults()
}

// Start launches the periodic flush timer.
func (t *Transmitter) Start(ctx context.Context) {
	t.wg.Add(1)
	go t.run(ctx)
}

// run is the flush timer loop.
func (t *Transmitter) run(ctx context.Context) {
	defer t.wg.Done()

	t.mu.Lock()
	interval := t.cfg.FlushInterval
	t.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Flush(ctx)
		}
	}
}

// Enqueue appends an event to the buffer. Events beyond the per-minute
// limit are dropped and counted. Reaching the batch size triggers an async
// flush. Constant-time and non-blocking.
func (t *Transmitter) Enqueue(ev models.SecureEvent) {
	t.mu.Lock()
	t.rollMinuteLocked()
	if t.minuteCount >= t.cfg.PerMinuteLimit {
		t.totalDropped++
		t.mu.Unlock()
		return
	}
	t.minuteCount++
	t.buffer = append(t.buffer, ev)
	full := len(t.buffer) >= t.cfg.MaxBatchSize
	t.mu.Unlock()

	if full {
		go t.Flush(context.Background())
	}
}

// Flush sends up to one batch from the buffer, then attempts to drain the
// failed-batch queue. A no-op when a flush is already in progress or the
// buffer is empty.
func (t *Transmitter) Flush(ctx context.Context) {
	t.mu.Lock()
	if t.flushing || len(t.buffer) == 0 {
		t.mu.Unlock()
		return
	}
	t.flushing = true
	n := min(len(t.buffer), t.cfg.MaxBatchSize)
	events := make([]models.SecureEvent, n)
	copy(events, t.buffer[:n])
	t.buffer = append(t.buffer[:0], t.buffer[n:]...)
	cfg := t.cfg
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.flushing = false
		t.mu.Unlock()
	}()

	batch := models.SecureEventBatch{
		Events:            events,
		DeviceFingerprint: cfg.DeviceFingerprint,
		BatchID:           uuid.New().String(),
		SentAt:            time.Now().UTC().Format(time.RFC3339),
	}
	t.sendBatch(ctx, batch, 0)
	t.drainFailed(ctx)
}

// sendBatch POSTs a batch. 429 honors Retry-After and retries with an
// unchanged retry counter; 5xx retries with exponential backoff up to
// MaxRetries; all other failures push the batch to the failed queue and
// persist it.
func (t *Transmitter) sendBatch(ctx context.Context, batch models.SecureEventBatch, retry int) {
	t.mu.Lock()
	cfg := t.cfg
	t.mu.Unlock()

	if cfg.Endpoint == "" {
		t.queueFailed(batch)
		return
	}

	status, retryAfter, err := t.post(ctx, cfg, batch)
	switch {
	case err == nil && (status == http.StatusOK || status == http.StatusAccepted):
		t.mu.Lock()
		t.totalSent += len(batch.Events)
		t.totalBatches++
		t.mu.Unlock()
		return

	case err == nil && status == http.StatusTooManyRequests:
		slog.Warn("Batch rate-limited by ingestion, backing off",
			"batch_id", batch.BatchID, "retry_after_s", retryAfter.Seconds())
		if !t.sleep(ctx, retryAfter) {
			t.queueFailed(batch)
			return
		}
		t.sendBatch(ctx, batch, retry)
		return

	case (err != nil || status >= 500) && retry < cfg.MaxRetries:
		backoff := cfg.RetryBase * (1 << retry)
		slog.Warn("Batch send failed, retrying",
			"batch_id", batch.BatchID, "status", status, "retry", retry, "backoff", backoff, "error", err)
		if !t.sleep(ctx, backoff) {
			t.queueFailed(batch)
			return
		}
		t.sendBatch(ctx, batch, retry+1)
		return
	}

	slog.Error("Batch undeliverable, queueing for replay",
		"batch_id", batch.BatchID, "status", status, "error", err)
	t.queueFailed(batch)
}

// post performs one HTTP attempt and returns (status, retryAfter, err).
func (t *Transmitter) post(ctx context.Context, cfg Config, batch models.SecureEventBatch) (int, time.Duration, error) {
	body, err := json.Marshal(batch)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to marshal batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	req.Header.Set("User-Agent", version.Full())
	req.Header.Set("X-Ghost-Batch-Id", batch.BatchID)
	req.Header.Set("X-Ghost-Device", cfg.DeviceFingerprint)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	retryAfter := time.Minute
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, perr := strconv.Atoi(s); perr == nil && secs >= 0 {
			retryAfter = time.Duration(secs) * time.Second
		}
	}
	return resp.StatusCode, retryAfter, nil
}

// drainFailed retries every batch currently in the failed queue once.
// Batches that fail again are re-queued by sendBatch.
func (t *Transmitter) drainFailed(ctx context.Context) {
	t.mu.Lock()
	if len(t.failed) == 0 {
		t.mu.Unlock()
		return
	}
	pending := t.failed
	t.failed = nil
	t.mu.Unlock()

	for _, batch := range pending {
		// No retry budget on replay; a second failure re-queues.
		t.sendBatch(ctx, batch, t.cfgSnapshot().MaxRetries)
	}
	t.persistFailed()
}

// queueFailed appends a batch to the failed queue (cap 10 newest) and
// persists the queue.
func (t *Transmitter) queueFailed(batch models.SecureEventBatch) {
	t.mu.Lock()
	t.totalFailed += len(batch.Events)
	t.failed = append(t.failed, batch)
	if len(t.failed) > maxPersistedBatches {
		t.failed = t.failed[len(t.failed)-maxPersistedBatches:]
	}
	t.mu.Unlock()
	t.persistFailed()
}

func (t *Transmitter) persistFailed() {
	if t.store == nil {
		return
	}
	t.mu.Lock()
	snapshot := make([]models.SecureEventBatch, len(t.failed))
	copy(snapshot, t.failed)
	t.mu.Unlock()

	if err := t.store.Save(snapshot); err != nil {
		slog.Error("Failed to persist failed-batch queue", "error", err)
	}
}

// restoreFailedBatches loads persisted batches into the failed queue and
// clears the store. Called once at construction.
func (t *Transmitter) restoreFailedBatches() {
	if t.store == nil {
		return
	}
	batches, err := t.store.Load()
	if err != nil {
		slog.Error("Failed to restore failed-batch queue", "error", err)
		return
	}
	if len(batches) == 0 {
		return
	}
	t.mu.Lock()
	t.failed = batches
	t.mu.Unlock()
	if err := t.store.Clear(); err != nil {
		slog.Warn("Failed to clear batch store after restore", "error", err)
	}
	slog.Info("Restored failed batches from local storage", "count", len(batches))
}

// Shutdown stops the flush timer, forces one final flush, and persists the
// failed queue.
func (t *Transmitter) Shutdown(ctx context.Context) {
	t.stopOnce.Do(func() { close(t.stopCh) })
	t.wg.Wait()
	t.Flush(ctx)
	t.persistFailed()
}

// Stats returns a snapshot of the transmitter counters.
func (t *Transmitter) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollMinuteLocked()
	return Stats{
		TotalSent:        t.totalSent,
		TotalFailed:      t.totalFailed,
		TotalDropped:     t.totalDropped,
		TotalBatches:     t.totalBatches,
		BufferSize:       len(t.buffer),
		FailedBatchCount: len(t.failed),
		EventsThisMinute: t.minuteCount,
	}
}

// rollMinuteLocked resets the per-minute counter when the window expires.
// Callers must hold t.mu.
func (t *Transmitter) rollMinuteLocked() {
	if time.Since(t.minuteStart) >= time.Minute {
		t.minuteStart = time.Now()
		t.minuteCount = 0
	}
}

// sleep waits for d or until shutdown/ctx cancellation; returns false when
// interrupted.
func (t *Transmitter) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-t.stopCh:
		return false
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func (t *Transmitter) cfgSnapshot() Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cfg
}
