package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
	"github.com/ghostworks/ghostd/ent/secureevent"
	"github.com/ghostworks/ghostd/pkg/cluster"
	"github.com/ghostworks/ghostd/pkg/events"
	"github.com/ghostworks/ghostd/pkg/llm"
	"github.com/ghostworks/ghostd/pkg/models"
)

// PatternService runs temporal intent clustering over an org's events and
// manages the detected pattern lifecycle.
type PatternService struct {
	client    *ent.Client
	detector  *cluster.Detector
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewPatternService creates a PatternService. The LLM client and publisher
// may be nil (lifting and announcements are then skipped).
func NewPatternService(client *ent.Client, llmClient llm.Client, publisher *events.Publisher, logger *slog.Logger) *PatternService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &PatternService{client: client, publisher: publisher, logger: logger}
	s.detector = cluster.NewDetector(&entClusterStore{client: client}, llmClient, logger)
	return s
}

// DetectPatterns runs detection for one org and announces the results.
func (s *PatternService) DetectPatterns(ctx context.Context, orgID string) ([]*cluster.Pattern, error) {
	if orgID == "" {
		return nil, NewValidationError("orgId", "orgId is required")
	}

	patterns, err := s.detector.Detect(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		for _, p := range patterns {
			err := s.publisher.PublishPatternDetected(ctx, events.PatternDetectedPayload{
				OrgID:         p.OrgID,
				PatternID:     p.ID,
				Status:        string(p.Status),
				Confidence:    p.Confidence,
				SuggestedName: p.SuggestedName,
			})
			if err != nil {
				s.logger.Warn("failed to announce pattern", "pattern_id", p.ID, "error", err)
			}
		}
	}

	return patterns, nil
}

// ListPatterns returns an org's patterns, newest activity first.
func (s *PatternService) ListPatterns(ctx context.Context, orgID string) ([]*ent.DetectedPattern, error) {
	if orgID == "" {
		return nil, NewValidationError("orgId", "orgId is required")
	}
	patterns, err := s.client.DetectedPattern.Query().
		Where(detectedpattern.OrgIDEQ(orgID)).
		Order(ent.Desc(detectedpattern.FieldLastSeen)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}
	return patterns, nil
}

// DismissPattern marks a pattern as dismissed.
func (s *PatternService) DismissPattern(ctx context.Context, orgID, patternID string) error {
	if orgID == "" {
		return NewValidationError("orgId", "orgId is required")
	}
	n, err := s.client.DetectedPattern.Update().
		Where(
			detectedpattern.IDEQ(patternID),
			detectedpattern.OrgIDEQ(orgID),
		).
		SetStatus(detectedpattern.StatusDismissed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to dismiss pattern: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// entClusterStore adapts the Ent client to the detector's store interface.
type entClusterStore struct {
	client *ent.Client
}

// RecentEvents returns up to limit most recent events for an org, mapped back
// into the wire model the detector operates on.
func (s *entClusterStore) RecentEvents(ctx context.Context, orgID string, limit int) ([]models.SecureEvent, error) {
	rows, err := s.client.SecureEvent.Query().
		Where(secureevent.OrgIDEQ(orgID)).
		Order(ent.Desc(secureevent.FieldIngestedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	out := make([]models.SecureEvent, len(rows))
	for i, row := range rows {
		ev := models.SecureEvent{
			SessionFingerprint: row.SessionFingerprint,
			TimestampBucket:    row.TimestampBucket,
			IntentVector:       row.IntentVector,
			StructuralHash:     row.StructuralHash,
			OrgID:              row.OrgID,
			EventType:          models.EventType(row.EventType),
			IntentLabel:        models.IntentClass(row.IntentLabel),
			IntentConfidence:   row.IntentConfidence,
			SequenceNumber:     row.SequenceNumber,
		}
		if row.ElementSignature != nil {
			ev.ElementSignature = *row.ElementSignature
		}
		out[i] = ev
	}
	return out, nil
}

// UpsertPattern creates or refreshes a pattern by its deterministic ID.
// Re-detection updates occurrences, confidence, window bounds and suggestions
// but never demotes an approved or dismissed pattern.
func (s *entClusterStore) UpsertPattern(ctx context.Context, p *cluster.Pattern) error {
	existing, err := s.client.DetectedPattern.Query().
		Where(detectedpattern.IDEQ(p.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to look up pattern: %w", err)
	}

	if existing == nil {
		create := s.client.DetectedPattern.Create().
			SetID(p.ID).
			SetOrgID(p.OrgID).
			SetIntentSequence(p.IntentSequence).
			SetStructuralHashes(p.StructuralHashes).
			SetOccurrences(p.Occurrences).
			SetConfidence(p.Confidence).
			SetFirstSeen(p.FirstSeen).
			SetLastSeen(p.LastSeen).
			SetStatus(detectedpattern.Status(p.Status))
		if p.SuggestedName != "" {
			create.SetSuggestedName(p.SuggestedName)
		}
		if p.SuggestedDescription != "" {
			create.SetSuggestedDescription(p.SuggestedDescription)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to create pattern: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetOccurrences(p.Occurrences).
		SetConfidence(p.Confidence).
		SetLastSeen(p.LastSeen)
	if p.FirstSeen.Before(existing.FirstSeen) {
		update.SetFirstSeen(p.FirstSeen)
	}
	if p.SuggestedName != "" && existing.SuggestedName == nil {
		update.SetSuggestedName(p.SuggestedName)
	}
	if p.SuggestedDescription != "" && existing.SuggestedDescription == nil {
		update.SetSuggestedDescription(p.SuggestedDescription)
	}
	// Reviewed states stick.
	if existing.Status == detectedpattern.StatusNeedsReview || existing.Status == detectedpattern.StatusAutoSuggested {
		update.SetStatus(detectedpattern.Status(p.Status))
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update pattern: %w", err)
	}
	return nil
}
