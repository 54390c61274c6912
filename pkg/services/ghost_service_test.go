package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/approvalrequest"
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/ent/ghostversion"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/test/util"
)

func setupGhostService(t *testing.T) (*GhostService, *ent.Client) {
	client, _ := util.SetupTestDatabase(t)
	return NewGhostService(client, slog.Default()), client
}

func createTestGhost(t *testing.T, svc *GhostService) *ent.Ghost {
	t.Helper()
	g, err := svc.CreateGhost(context.Background(), CreateGhostRequest{
		OrgID:       "org-1",
		Name:        "Invoice filing",
		Description: "Files monthly invoices",
		Trigger:     &models.GhostTrigger{Type: "event", Condition: "invoice_uploaded"},
		ExecutionPlan: []models.ExecutionNode{{
			ID:     "open",
			Type:   models.NodeTypeAction,
			Action: &models.NodeAction{Tool: models.ToolNavigateTo},
		}},
		CreatedBy: "user-7",
	})
	require.NoError(t, err)
	return g
}

func TestCreateGhost_StartsPendingApproval(t *testing.T) {
	svc, client := setupGhostService(t)
	ctx := context.Background()

	g := createTestGhost(t, svc)

	assert.Equal(t, ghost.StatusPendingApproval, g.Status)
	assert.Equal(t, 1, g.Version)
	assert.False(t, g.IsActive)

	// Creation opens a pending approval request.
	req, err := client.ApprovalRequest.Query().
		Where(approvalrequest.GhostIDEQ(g.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusPending, req.Status)
	assert.Equal(t, "user-7", req.RequestedBy)
	assert.True(t, req.ExpiresAt.After(time.Now()))
}

func TestCreateGhost_Validation(t *testing.T) {
	svc, _ := setupGhostService(t)
	ctx := context.Background()

	_, err := svc.CreateGhost(ctx, CreateGhostRequest{Name: "no org"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateGhost(ctx, CreateGhostRequest{OrgID: "org-1"})
	assert.True(t, IsValidationError(err))
}

func TestApproveGhost_PromotesAndVersions(t *testing.T) {
	svc, client := setupGhostService(t)
	ctx := context.Background()
	g := createTestGhost(t, svc)

	result, err := svc.ApproveGhost(ctx, ApproveGhostRequest{
		GhostID:    g.ID,
		Action:     "approve",
		ApprovedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", result.NewStatus)
	assert.Equal(t, 2, result.Version)

	reloaded, err := client.Ghost.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, ghost.StatusApproved, reloaded.Status)
	assert.True(t, reloaded.IsActive)
	assert.Equal(t, 2, reloaded.Version)

	// The approval wrote a version snapshot.
	version, err := client.GhostVersion.Query().
		Where(ghostversion.GhostIDEQ(g.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version.Version)
	require.Len(t, version.ExecutionPlan, 1)
	assert.Equal(t, "open", version.ExecutionPlan[0].ID)

	// The pending approval request is resolved.
	req, err := client.ApprovalRequest.Query().
		Where(approvalrequest.GhostIDEQ(g.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusApproved, req.Status)
	assert.NotNil(t, req.ResolvedAt)
}

func TestApproveGhost_ReapproveIsIdempotent(t *testing.T) {
	svc, client := setupGhostService(t)
	ctx := context.Background()
	g := createTestGhost(t, svc)

	first, err := svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "approve"})
	require.NoError(t, err)

	second, err := svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "approve"})
	require.NoError(t, err)

	assert.Equal(t, first.Version, second.Version)
	count, err := client.GhostVersion.Query().
		Where(ghostversion.GhostIDEQ(g.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestApproveGhost_RejectArchives(t *testing.T) {
	svc, client := setupGhostService(t)
	ctx := context.Background()
	g := createTestGhost(t, svc)

	result, err := svc.ApproveGhost(ctx, ApproveGhostRequest{
		GhostID:      g.ID,
		Action:       "reject",
		DecisionNote: "overlaps an existing ghost",
	})
	require.NoError(t, err)
	assert.Equal(t, "archived", result.NewStatus)

	reloaded, err := client.Ghost.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, ghost.StatusArchived, reloaded.Status)
	assert.False(t, reloaded.IsActive)

	req, err := client.ApprovalRequest.Query().
		Where(approvalrequest.GhostIDEQ(g.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusRejected, req.Status)
	require.NotNil(t, req.DecisionNote)
	assert.Equal(t, "overlaps an existing ghost", *req.DecisionNote)
}

func TestApproveGhost_PauseAndActivate(t *testing.T) {
	svc, client := setupGhostService(t)
	ctx := context.Background()
	g := createTestGhost(t, svc)

	_, err := svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "approve"})
	require.NoError(t, err)

	paused, err := svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "pause"})
	require.NoError(t, err)
	assert.Equal(t, "paused", paused.NewStatus)

	reloaded, err := client.Ghost.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)

	activated, err := svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "activate"})
	require.NoError(t, err)
	assert.Equal(t, "active", activated.NewStatus)

	reloaded, err = client.Ghost.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsActive)
}

func TestApproveGhost_IllegalTransitions(t *testing.T) {
	svc, _ := setupGhostService(t)
	ctx := context.Background()
	g := createTestGhost(t, svc)

	// A pending ghost cannot be paused or activated.
	_, err := svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "pause"})
	assert.True(t, IsValidationError(err))

	_, err = svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "activate"})
	assert.True(t, IsValidationError(err))

	// An archived ghost cannot be approved.
	_, err = svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "archive"})
	require.NoError(t, err)
	_, err = svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "approve"})
	assert.True(t, IsValidationError(err))
}

func TestApproveGhost_UnknownGhostAndAction(t *testing.T) {
	svc, _ := setupGhostService(t)
	ctx := context.Background()

	_, err := svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: "missing", Action: "approve"})
	assert.ErrorIs(t, err, ErrNotFound)

	g := createTestGhost(t, svc)
	_, err = svc.ApproveGhost(ctx, ApproveGhostRequest{GhostID: g.ID, Action: "promote"})
	assert.True(t, IsValidationError(err))

	_, err = svc.ApproveGhost(ctx, ApproveGhostRequest{Action: "approve"})
	assert.True(t, IsValidationError(err))
}

func TestGetGhost_ScopedToOrg(t *testing.T) {
	svc, _ := setupGhostService(t)
	ctx := context.Background()
	g := createTestGhost(t, svc)

	loaded, err := svc.GetGhost(ctx, "org-1", g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, loaded.ID)

	_, err = svc.GetGhost(ctx, "org-2", g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpireApprovalRequests(t *testing.T) {
	svc, client := setupGhostService(t)
	ctx := context.Background()
	g := createTestGhost(t, svc)

	_, err := client.ApprovalRequest.Update().
		Where(approvalrequest.GhostIDEQ(g.ID)).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	n, err := svc.ExpireApprovalRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	req, err := client.ApprovalRequest.Query().
		Where(approvalrequest.GhostIDEQ(g.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, approvalrequest.StatusExpired, req.Status)
}
