package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/userfeedback"
)

// FeedbackService records append-only user feedback on executions.
type FeedbackService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewFeedbackService creates a FeedbackService.
func NewFeedbackService(client *ent.Client, logger *slog.Logger) *FeedbackService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedbackService{client: client, logger: logger}
}

// SubmitFeedbackRequest carries one feedback record.
type SubmitFeedbackRequest struct {
	ExecutionID       string         `json:"executionId"`
	GhostID           string         `json:"ghostId"`
	OrgID             string         `json:"orgId"`
	UserID            string         `json:"userId"`
	SatisfactionScore *int           `json:"satisfactionScore,omitempty"` // 1..5
	CorrectedActions  map[string]any `json:"correctedActions,omitempty"`
	Notes             string         `json:"notes,omitempty"`
}

// SubmitFeedback inserts one feedback row. The table is append-only; there
// is deliberately no update or delete path.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, req SubmitFeedbackRequest) (*ent.UserFeedback, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("orgId", "orgId is required")
	}
	if req.ExecutionID == "" {
		return nil, NewValidationError("executionId", "executionId is required")
	}
	if req.SatisfactionScore != nil && (*req.SatisfactionScore < 1 || *req.SatisfactionScore > 5) {
		return nil, NewValidationError("satisfactionScore", "satisfactionScore must be between 1 and 5")
	}

	create := s.client.UserFeedback.Create().
		SetID(uuid.NewString()).
		SetExecutionID(req.ExecutionID).
		SetGhostID(req.GhostID).
		SetOrgID(req.OrgID).
		SetUserID(req.UserID)
	if req.SatisfactionScore != nil {
		create.SetSatisfactionScore(*req.SatisfactionScore)
	}
	if req.CorrectedActions != nil {
		create.SetCorrectedActions(req.CorrectedActions)
	}
	if req.Notes != "" {
		create.SetNotes(req.Notes)
	}

	fb, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return fb, nil
}

// ListFeedback returns an org's feedback for one execution.
func (s *FeedbackService) ListFeedback(ctx context.Context, orgID, executionID string) ([]*ent.UserFeedback, error) {
	if orgID == "" {
		return nil, NewValidationError("orgId", "orgId is required")
	}
	rows, err := s.client.UserFeedback.Query().
		Where(
			userfeedback.OrgIDEQ(orgID),
			userfeedback.ExecutionIDEQ(executionID),
		).
		Order(ent.Asc(userfeedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return rows, nil
}
