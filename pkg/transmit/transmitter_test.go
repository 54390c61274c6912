package transmit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/models"
)

// ingestStub records received batches and serves a scripted status sequence,
// repeating the last status once exhausted.
type ingestStub struct {
	mu       sync.Mutex
	statuses []int
	headers  []http.Header
	batches  []models.SecureEventBatch
	calls    int

	retryAfter string
}

func (s *ingestStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var batch models.SecureEventBatch
		_ = json.NewDecoder(r.Body).Decode(&batch)

		s.mu.Lock()
		s.batches = append(s.batches, batch)
		s.headers = append(s.headers, r.Header.Clone())
		idx := s.calls
		if idx >= len(s.statuses) {
			idx = len(s.statuses) - 1
		}
		status := s.statuses[idx]
		s.calls++
		s.mu.Unlock()

		if status == http.StatusTooManyRequests && s.retryAfter != "" {
			w.Header().Set("Retry-After", s.retryAfter)
		}
		w.WriteHeader(status)
	}
}

func (s *ingestStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func event(seq int) models.SecureEvent {
	return models.SecureEvent{
		OrgID:          "org-1",
		EventType:      models.EventTypeUserInteraction,
		IntentLabel:    models.IntentDataEntry,
		SequenceNumber: seq,
	}
}

func TestFlush_SendsBatchWithHeaders(t *testing.T) {
	stub := &ingestStub{statuses: []int{http.StatusAccepted}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tr := New(Config{
		Endpoint:          srv.URL,
		APIKey:            "key-123",
		DeviceFingerprint: "device-1",
	}, nil)

	for i := 1; i <= 3; i++ {
		tr.Enqueue(event(i))
	}
	tr.Flush(context.Background())

	require.Equal(t, 1, stub.callCount())
	require.Len(t, stub.batches[0].Events, 3)
	assert.NotEmpty(t, stub.batches[0].BatchID)
	assert.Equal(t, "device-1", stub.batches[0].DeviceFingerprint)

	h := stub.headers[0]
	assert.Equal(t, "Bearer key-123", h.Get("Authorization"))
	assert.Equal(t, "device-1", h.Get("X-Ghost-Device"))
	assert.Equal(t, stub.batches[0].BatchID, h.Get("X-Ghost-Batch-Id"))
	assert.True(t, strings.HasPrefix(h.Get("User-Agent"), "ghostd/"))

	stats := tr.Stats()
	assert.Equal(t, 3, stats.TotalSent)
	assert.Equal(t, 1, stats.TotalBatches)
	assert.Zero(t, stats.BufferSize)
	assert.Zero(t, stats.FailedBatchCount)
}

func TestFlush_EmptyBufferIsNoop(t *testing.T) {
	stub := &ingestStub{statuses: []int{http.StatusAccepted}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tr := New(Config{Endpoint: srv.URL}, nil)
	tr.Flush(context.Background())

	assert.Zero(t, stub.callCount())
}

func TestSendBatch_RetriesAfter429(t *testing.T) {
	stub := &ingestStub{
		statuses:   []int{http.StatusTooManyRequests, http.StatusAccepted},
		retryAfter: "0",
	}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tr := New(Config{Endpoint: srv.URL}, nil)
	tr.Enqueue(event(1))
	tr.Flush(context.Background())

	assert.Equal(t, 2, stub.callCount())
	stats := tr.Stats()
	assert.Equal(t, 1, stats.TotalSent)
	assert.Equal(t, 1, stats.TotalBatches)
}

func TestSendBatch_BacksOffOn5xx(t *testing.T) {
	stub := &ingestStub{statuses: []int{
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusAccepted,
	}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tr := New(Config{
		Endpoint:  srv.URL,
		RetryBase: time.Millisecond,
	}, nil)
	tr.Enqueue(event(1))
	tr.Flush(context.Background())

	assert.Equal(t, 3, stub.callCount())
	assert.Equal(t, 1, tr.Stats().TotalSent)
}

func TestSendBatch_ExhaustedRetriesQueueForReplay(t *testing.T) {
	stub := &ingestStub{statuses: []int{http.StatusInternalServerError}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tr := New(Config{
		Endpoint:   srv.URL,
		RetryBase:  time.Millisecond,
		MaxRetries: 2,
	}, nil)
	tr.Enqueue(event(1))
	tr.Enqueue(event(2))
	tr.Flush(context.Background())

	stats := tr.Stats()
	assert.Zero(t, stats.TotalSent)
	assert.Equal(t, 1, stats.FailedBatchCount)
	assert.GreaterOrEqual(t, stub.callCount(), 3)
}

func TestEnqueue_DropsAbovePerMinuteLimit(t *testing.T) {
	tr := New(Config{PerMinuteLimit: 2}, nil)

	tr.Enqueue(event(1))
	tr.Enqueue(event(2))
	tr.Enqueue(event(3))

	stats := tr.Stats()
	assert.Equal(t, 2, stats.BufferSize)
	assert.Equal(t, 1, stats.TotalDropped)
	assert.Equal(t, 2, stats.EventsThisMinute)
}

func TestOfflineMode_PersistsAndRestoresFailedBatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	// No endpoint: every flush lands in the durable failed queue.
	tr := New(Config{DeviceFingerprint: "device-1"}, store)
	tr.Enqueue(event(1))
	tr.Flush(context.Background())
	require.Equal(t, 1, tr.Stats().FailedBatchCount)

	persisted, err := store.Load()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Len(t, persisted[0].Events, 1)

	// A fresh transmitter restores the queue and clears the store.
	restored := New(Config{DeviceFingerprint: "device-1"}, store)
	assert.Equal(t, 1, restored.Stats().FailedBatchCount)

	afterRestore, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, afterRestore)
}

func TestFailedQueue_KeepsNewestTen(t *testing.T) {
	tr := New(Config{}, nil)

	for i := 0; i < 12; i++ {
		tr.Enqueue(event(i))
		tr.Flush(context.Background())
	}
	assert.Equal(t, maxPersistedBatches, tr.Stats().FailedBatchCount)
}

func TestShutdown_FlushesBufferedEvents(t *testing.T) {
	stub := &ingestStub{statuses: []int{http.StatusAccepted}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tr := New(Config{Endpoint: srv.URL}, nil)
	tr.Start(context.Background())
	tr.Enqueue(event(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tr.Shutdown(ctx)

	assert.Equal(t, 1, tr.Stats().TotalSent)
}

func TestFileStore_RoundTripAndCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "queue.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	empty, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, empty)

	batches := make([]models.SecureEventBatch, 12)
	for i := range batches {
		batches[i] = models.SecureEventBatch{BatchID: string(rune('a' + i))}
	}
	require.NoError(t, store.Save(batches))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, maxPersistedBatches)
	assert.Equal(t, "c", loaded[0].BatchID)
	assert.Equal(t, "l", loaded[len(loaded)-1].BatchID)

	require.NoError(t, store.Clear())
	cleared, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, cleared)

	require.NoError(t, store.Clear())
}
