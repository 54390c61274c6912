package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/secureevent"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/ratelimit"
)

// maxBatchEvents caps one ingest batch.
const maxBatchEvents = 100

// IngestService validates and persists secure event batches.
type IngestService struct {
	client  *ent.Client
	limiter ratelimit.Limiter
	logger  *slog.Logger

	// onIngest, when set, is invoked after a successful insert with the
	// org IDs seen in the batch. Used to trigger pattern detection without
	// delaying the 202 response.
	onIngest func(orgIDs []string)
}

// NewIngestService creates an IngestService. The limiter partitions by device
// fingerprint; pass nil to disable rate limiting.
func NewIngestService(client *ent.Client, limiter ratelimit.Limiter, logger *slog.Logger) *IngestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestService{client: client, limiter: limiter, logger: logger}
}

// OnIngest registers the post-insert hook.
func (s *IngestService) OnIngest(fn func(orgIDs []string)) {
	s.onIngest = fn
}

// IngestResult reports what was accepted.
type IngestResult struct {
	Accepted int    `json:"accepted"`
	BatchID  string `json:"batchId"`
}

// Ingest validates a batch and inserts its events. deviceFingerprint comes
// from the transport header and overrides the batch body's copy.
func (s *IngestService) Ingest(ctx context.Context, batch *models.SecureEventBatch, deviceFingerprint string) (*IngestResult, error) {
	if batch == nil || batch.Events == nil {
		return nil, NewValidationError("events", "events array is required")
	}
	if len(batch.Events) > maxBatchEvents {
		return nil, fmt.Errorf("%w: %d events (max %d)", ErrBatchTooLarge, len(batch.Events), maxBatchEvents)
	}
	if deviceFingerprint == "" {
		deviceFingerprint = batch.DeviceFingerprint
	}

	// The limiter is charged per event, not per batch, so batch size cannot
	// multiply the per-device budget.
	if s.limiter != nil && len(batch.Events) > 0 {
		allowed, err := s.limiter.AllowN(ctx, "ingest:"+deviceFingerprint, len(batch.Events))
		if err != nil {
			return nil, fmt.Errorf("rate limiter failed: %w", err)
		}
		if !allowed {
			return nil, ErrRateLimited
		}
	}

	batchID := batch.BatchID
	if batchID == "" {
		batchID = uuid.NewString()
	}

	// Empty batches are valid and accepted without touching the store.
	if len(batch.Events) == 0 {
		return &IngestResult{Accepted: 0, BatchID: batchID}, nil
	}

	now := time.Now()
	builders := make([]*ent.SecureEventCreate, len(batch.Events))
	orgSet := make(map[string]struct{})
	for i, ev := range batch.Events {
		if !ev.EventType.Valid() {
			return nil, NewValidationError("events", fmt.Sprintf("unknown event type %q at index %d", ev.EventType, i))
		}
		if ev.OrgID == "" {
			return nil, NewValidationError("events", fmt.Sprintf("missing orgId at index %d", i))
		}
		orgSet[ev.OrgID] = struct{}{}

		b := s.client.SecureEvent.Create().
			SetID(uuid.NewString()).
			SetSessionFingerprint(ev.SessionFingerprint).
			SetTimestampBucket(ev.TimestampBucket).
			SetIntentVector(ev.IntentVector).
			SetOrgID(ev.OrgID).
			SetEventType(secureevent.EventType(ev.EventType)).
			SetIntentLabel(string(ev.IntentLabel)).
			SetIntentConfidence(ev.IntentConfidence).
			SetSequenceNumber(ev.SequenceNumber).
			SetDeviceFingerprint(deviceFingerprint).
			SetBatchID(batchID).
			SetIngestedAt(now)
		if ev.StructuralHash != "" {
			b.SetStructuralHash(ev.StructuralHash)
		}
		if ev.ElementSignature != "" {
			b.SetElementSignature(ev.ElementSignature)
		}
		builders[i] = b
	}

	if _, err := s.client.SecureEvent.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert events: %w", err)
	}

	s.logger.Info("batch ingested",
		"batch_id", batchID,
		"events", len(batch.Events),
		"device", deviceFingerprint)

	if s.onIngest != nil {
		orgIDs := make([]string, 0, len(orgSet))
		for orgID := range orgSet {
			orgIDs = append(orgIDs, orgID)
		}
		s.onIngest(orgIDs)
	}

	return &IngestResult{Accepted: len(batch.Events), BatchID: batchID}, nil
}
