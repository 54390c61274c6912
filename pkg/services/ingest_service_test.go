package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/secureevent"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/ratelimit"
	"github.com/ghostworks/ghostd/test/util"
)

func secureTestEvent(orgID, session string, seq int) models.SecureEvent {
	return models.SecureEvent{
		SessionFingerprint: session,
		TimestampBucket:    "2026-08-24T10:00:00Z",
		IntentVector:       []float64{0.6, 0.8, 0, 0},
		StructuralHash:     "aa11bb22",
		OrgID:              orgID,
		EventType:          models.EventTypeUserInteraction,
		IntentLabel:        models.IntentDataEntry,
		IntentConfidence:   0.9,
		ElementSignature:   "input@body>form>input",
		SequenceNumber:     seq,
	}
}

func setupIngestService(t *testing.T, limiter ratelimit.Limiter) (*IngestService, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	return NewIngestService(client, limiter, slog.Default()), client
}

func TestIngest_PersistsBatch(t *testing.T) {
	svc, client := setupIngestService(t, nil)
	ctx := context.Background()

	var hookOrgs []string
	svc.OnIngest(func(orgIDs []string) { hookOrgs = orgIDs })

	batch := &models.SecureEventBatch{
		Events: []models.SecureEvent{
			secureTestEvent("org-1", "session-a", 1),
			secureTestEvent("org-1", "session-a", 2),
		},
		BatchID: "batch-1",
	}
	result, err := svc.Ingest(ctx, batch, "device-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, "batch-1", result.BatchID)

	rows, err := client.SecureEvent.Query().
		Where(secureevent.BatchIDEQ("batch-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "org-1", row.OrgID)
		assert.Equal(t, "device-1", row.DeviceFingerprint)
		assert.Equal(t, "session-a", row.SessionFingerprint)
		assert.Equal(t, []float64{0.6, 0.8, 0, 0}, row.IntentVector)
	}

	assert.Equal(t, []string{"org-1"}, hookOrgs)
}

func TestIngest_GeneratesBatchID(t *testing.T) {
	svc, _ := setupIngestService(t, nil)

	result, err := svc.Ingest(context.Background(), &models.SecureEventBatch{
		Events: []models.SecureEvent{secureTestEvent("org-1", "session-a", 1)},
	}, "device-1")
	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
}

func TestIngest_EmptyBatchAccepted(t *testing.T) {
	svc, client := setupIngestService(t, nil)
	ctx := context.Background()

	result, err := svc.Ingest(ctx, &models.SecureEventBatch{Events: []models.SecureEvent{}}, "device-1")
	require.NoError(t, err)
	assert.Zero(t, result.Accepted)
	assert.NotEmpty(t, result.BatchID)

	count, err := client.SecureEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngest_MissingEventsArray(t *testing.T) {
	svc, _ := setupIngestService(t, nil)

	_, err := svc.Ingest(context.Background(), &models.SecureEventBatch{}, "device-1")
	assert.True(t, IsValidationError(err))

	_, err = svc.Ingest(context.Background(), nil, "device-1")
	assert.True(t, IsValidationError(err))
}

func TestIngest_BatchTooLarge(t *testing.T) {
	svc, _ := setupIngestService(t, nil)

	events := make([]models.SecureEvent, maxBatchEvents+1)
	for i := range events {
		events[i] = secureTestEvent("org-1", "session-a", i+1)
	}
	_, err := svc.Ingest(context.Background(), &models.SecureEventBatch{Events: events}, "device-1")
	assert.ErrorIs(t, err, ErrBatchTooLarge)
}

func TestIngest_RejectsInvalidEvents(t *testing.T) {
	svc, client := setupIngestService(t, nil)
	ctx := context.Background()

	bad := secureTestEvent("org-1", "session-a", 1)
	bad.EventType = "telepathy"
	_, err := svc.Ingest(ctx, &models.SecureEventBatch{
		Events: []models.SecureEvent{secureTestEvent("org-1", "session-a", 1), bad},
	}, "device-1")
	assert.True(t, IsValidationError(err))

	noOrg := secureTestEvent("", "session-a", 1)
	_, err = svc.Ingest(ctx, &models.SecureEventBatch{
		Events: []models.SecureEvent{noOrg},
	}, "device-1")
	assert.True(t, IsValidationError(err))

	// Rejected batches insert nothing.
	count, err := client.SecureEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngest_RateLimitedPerDevice(t *testing.T) {
	svc, _ := setupIngestService(t, ratelimit.NewMemoryLimiter(1, time.Minute))
	ctx := context.Background()

	batch := func() *models.SecureEventBatch {
		return &models.SecureEventBatch{
			Events: []models.SecureEvent{secureTestEvent("org-1", "session-a", 1)},
		}
	}

	_, err := svc.Ingest(ctx, batch(), "device-1")
	require.NoError(t, err)

	_, err = svc.Ingest(ctx, batch(), "device-1")
	assert.ErrorIs(t, err, ErrRateLimited)

	// Another device has its own window.
	_, err = svc.Ingest(ctx, batch(), "device-2")
	assert.NoError(t, err)
}

func TestIngest_RateLimitChargesPerEvent(t *testing.T) {
	svc, _ := setupIngestService(t, ratelimit.NewMemoryLimiter(100, time.Minute))
	ctx := context.Background()

	batchOf := func(n int) *models.SecureEventBatch {
		events := make([]models.SecureEvent, n)
		for i := range events {
			events[i] = secureTestEvent("org-1", "session-a", i+1)
		}
		return &models.SecureEventBatch{Events: events}
	}

	_, err := svc.Ingest(ctx, batchOf(60), "device-1")
	require.NoError(t, err)

	// A second 60-event batch would put the device at 120 events in the
	// window; the whole batch is refused.
	_, err = svc.Ingest(ctx, batchOf(60), "device-1")
	assert.ErrorIs(t, err, ErrRateLimited)

	_, err = svc.Ingest(ctx, batchOf(40), "device-1")
	require.NoError(t, err)

	// Empty batches consume no events, even at the limit.
	_, err = svc.Ingest(ctx, batchOf(0), "device-1")
	assert.NoError(t, err)
}

func TestIngest_FallsBackToBatchFingerprint(t *testing.T) {
	svc, client := setupIngestService(t, nil)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, &models.SecureEventBatch{
		Events:            []models.SecureEvent{secureTestEvent("org-1", "session-a", 1)},
		DeviceFingerprint: "device-from-body",
	}, "")
	require.NoError(t, err)

	row, err := client.SecureEvent.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-from-body", row.DeviceFingerprint)
}
