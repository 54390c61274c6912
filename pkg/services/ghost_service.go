package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/approvalrequest"
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/pkg/models"
)

// GhostService manages the Ghost lifecycle: creation from detected patterns
// or the dashboard, the approval state machine, and version history.
type GhostService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewGhostService creates a GhostService.
func NewGhostService(client *ent.Client, logger *slog.Logger) *GhostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GhostService{client: client, logger: logger}
}

// CreateGhostRequest carries a new Ghost. Both the dashboard flow and
// pattern promotion converge here, so the pending_approval invariant holds
// regardless of origin.
type CreateGhostRequest struct {
	OrgID           string                  `json:"orgId"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description,omitempty"`
	Trigger         *models.GhostTrigger    `json:"trigger,omitempty"`
	Parameters      []models.GhostParameter `json:"parameters,omitempty"`
	ExecutionPlan   []models.ExecutionNode  `json:"executionPlan,omitempty"`
	Confidence      *float64                `json:"confidence,omitempty"`
	SourcePatternID string                  `json:"sourcePatternId,omitempty"`
	CreatedBy       string                  `json:"createdBy,omitempty"`
}

// CreateGhost inserts a Ghost in pending_approval and opens an approval
// request for it.
func (s *GhostService) CreateGhost(ctx context.Context, req CreateGhostRequest) (*ent.Ghost, error) {
	if req.OrgID == "" {
		return nil, NewValidationError("orgId", "orgId is required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}

	create := s.client.Ghost.Create().
		SetID(uuid.NewString()).
		SetOrgID(req.OrgID).
		SetName(req.Name).
		SetStatus(ghost.StatusPendingApproval).
		SetIsActive(false)
	if req.Description != "" {
		create.SetDescription(req.Description)
	}
	if req.Trigger != nil {
		create.SetTrigger(*req.Trigger)
	}
	if req.Parameters != nil {
		create.SetParameters(req.Parameters)
	}
	if req.ExecutionPlan != nil {
		create.SetExecutionPlan(req.ExecutionPlan)
	}
	if req.Confidence != nil {
		create.SetConfidence(*req.Confidence)
	}
	if req.SourcePatternID != "" {
		create.SetSourcePatternID(req.SourcePatternID)
	}
	if req.CreatedBy != "" {
		create.SetCreatedBy(req.CreatedBy)
	}

	g, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create ghost: %w", err)
	}

	requestedBy := req.CreatedBy
	if requestedBy == "" {
		requestedBy = "system"
	}
	_, err = s.client.ApprovalRequest.Create().
		SetID(uuid.NewString()).
		SetGhostID(g.ID).
		SetOrgID(g.OrgID).
		SetRequestedBy(requestedBy).
		SetStatus(approvalrequest.StatusPending).
		Save(ctx)
	if err != nil {
		s.logger.Warn("failed to open approval request", "ghost_id", g.ID, "error", err)
	}

	return g, nil
}

// GetGhost loads one Ghost scoped to an org.
func (s *GhostService) GetGhost(ctx context.Context, orgID, ghostID string) (*ent.Ghost, error) {
	if orgID == "" {
		return nil, NewValidationError("orgId", "orgId is required")
	}
	g, err := s.client.Ghost.Query().
		Where(ghost.IDEQ(ghostID), ghost.OrgIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ghost: %w", err)
	}
	return g, nil
}

// ApproveGhostRequest is one governance action on a Ghost.
type ApproveGhostRequest struct {
	GhostID      string `json:"ghost_id"`
	Action       string `json:"action"` // approve | reject | pause | activate | archive
	DecisionNote string `json:"decision_note,omitempty"`
	ApprovedBy   string `json:"approved_by,omitempty"`
}

// ApproveGhostResult reports the post-transition state.
type ApproveGhostResult struct {
	NewStatus string `json:"new_status"`
	Version   int    `json:"version"`
}

// ApproveGhost applies one state machine transition:
//
//	pending_approval --approve--> approved (is_active=true, version+1, version row)
//	pending_approval --reject --> archived (is_active=false)
//	any             --archive--> archived (is_active=false)
//	approved|active --pause  --> paused   (is_active=false)
//	paused|approved --activate-> active   (is_active=true)
//
// Re-approving an already approved Ghost is a no-op returning current state.
// Any approval action also resolves the matching pending approval request.
func (s *GhostService) ApproveGhost(ctx context.Context, req ApproveGhostRequest) (*ApproveGhostResult, error) {
	if req.GhostID == "" {
		return nil, NewValidationError("ghost_id", "ghost_id is required")
	}

	g, err := s.client.Ghost.Query().
		Where(ghost.IDEQ(req.GhostID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load ghost: %w", err)
	}

	switch req.Action {
	case "approve":
		return s.approve(ctx, g, req)
	case "reject":
		return s.transition(ctx, g, req, ghost.StatusArchived, false,
			g.Status == ghost.StatusPendingApproval)
	case "archive":
		return s.transition(ctx, g, req, ghost.StatusArchived, false, true)
	case "pause":
		return s.transition(ctx, g, req, ghost.StatusPaused, false,
			g.Status == ghost.StatusApproved || g.Status == ghost.StatusActive)
	case "activate":
		return s.transition(ctx, g, req, ghost.StatusActive, true,
			g.Status == ghost.StatusPaused || g.Status == ghost.StatusApproved)
	default:
		return nil, NewValidationError("action", fmt.Sprintf("unknown action %q", req.Action))
	}
}

func (s *GhostService) approve(ctx context.Context, g *ent.Ghost, req ApproveGhostRequest) (*ApproveGhostResult, error) {
	// Idempotent re-approve.
	if g.Status == ghost.StatusApproved {
		return &ApproveGhostResult{NewStatus: string(g.Status), Version: g.Version}, nil
	}
	if g.Status != ghost.StatusPendingApproval {
		return nil, NewValidationError("action",
			fmt.Sprintf("cannot approve ghost in status %q", g.Status))
	}

	newVersion := g.Version + 1

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update := tx.Ghost.UpdateOneID(g.ID).
		SetStatus(ghost.StatusApproved).
		SetIsActive(true).
		SetVersion(newVersion)
	if req.ApprovedBy != "" {
		update.SetApprovedBy(req.ApprovedBy)
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to approve ghost: %w", err)
	}

	version := tx.GhostVersion.Create().
		SetID(uuid.NewString()).
		SetGhostID(g.ID).
		SetVersion(newVersion)
	if g.ExecutionPlan != nil {
		version.SetExecutionPlan(g.ExecutionPlan)
	}
	if g.Parameters != nil {
		version.SetParameters(g.Parameters)
	}
	version.SetTrigger(g.Trigger)
	if g.Description != nil {
		version.SetChangeDescription(*g.Description)
	}
	if req.ApprovedBy != "" {
		version.SetCreatedBy(req.ApprovedBy)
	}
	if _, err := version.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert version row: %w", err)
	}

	if err := resolveApprovalRequests(ctx, tx, g.ID, approvalrequest.StatusApproved, req); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}

	s.logger.Info("ghost approved",
		"ghost_id", g.ID, "org_id", g.OrgID, "version", newVersion, "approved_by", req.ApprovedBy)

	return &ApproveGhostResult{NewStatus: string(ghost.StatusApproved), Version: newVersion}, nil
}

func (s *GhostService) transition(ctx context.Context, g *ent.Ghost, req ApproveGhostRequest, to ghost.Status, active, allowed bool) (*ApproveGhostResult, error) {
	if g.Status == to {
		return &ApproveGhostResult{NewStatus: string(to), Version: g.Version}, nil
	}
	if !allowed {
		return nil, NewValidationError("action",
			fmt.Sprintf("cannot %s ghost in status %q", req.Action, g.Status))
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Ghost.UpdateOneID(g.ID).
		SetStatus(to).
		SetIsActive(active).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update ghost: %w", err)
	}

	if req.Action == "reject" {
		if err := resolveApprovalRequests(ctx, tx, g.ID, approvalrequest.StatusRejected, req); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	s.logger.Info("ghost transitioned",
		"ghost_id", g.ID, "org_id", g.OrgID, "action", req.Action, "new_status", string(to))

	return &ApproveGhostResult{NewStatus: string(to), Version: g.Version}, nil
}

// resolveApprovalRequests closes any pending request rows for the Ghost.
func resolveApprovalRequests(ctx context.Context, tx *ent.Tx, ghostID string, to approvalrequest.Status, req ApproveGhostRequest) error {
	update := tx.ApprovalRequest.Update().
		Where(
			approvalrequest.GhostIDEQ(ghostID),
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
		).
		SetStatus(to).
		SetResolvedAt(time.Now())
	if req.ApprovedBy != "" {
		update.SetApprovedBy(req.ApprovedBy)
	}
	if req.DecisionNote != "" {
		update.SetDecisionNote(req.DecisionNote)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to resolve approval requests: %w", err)
	}
	return nil
}

// ExpireApprovalRequests marks pending requests past their deadline as
// expired. Intended for a periodic sweep.
func (s *GhostService) ExpireApprovalRequests(ctx context.Context) (int, error) {
	n, err := s.client.ApprovalRequest.Update().
		Where(
			approvalrequest.StatusEQ(approvalrequest.StatusPending),
			approvalrequest.ExpiresAtLT(time.Now()),
		).
		SetStatus(approvalrequest.StatusExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire approval requests: %w", err)
	}
	return n, nil
}
