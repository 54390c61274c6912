package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
	"github.com/ghostworks/ghostd/ent/execution"
	"github.com/ghostworks/ghostd/ent/executionlog"
	"github.com/ghostworks/ghostd/ent/executionstep"
	entghost "github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/pkg/executor"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/test/util"
)

// seedExecutableGhost inserts an approved ghost whose plan needs no network.
func seedExecutableGhost(t *testing.T, client *ent.Client, status entghost.Status) *ent.Ghost {
	t.Helper()
	g, err := client.Ghost.Create().
		SetID(uuid.NewString()).
		SetOrgID("org-1").
		SetName("Report extraction").
		SetStatus(status).
		SetIsActive(status == entghost.StatusApproved || status == entghost.StatusActive).
		SetExecutionPlan([]models.ExecutionNode{{
			ID:   "extract",
			Type: models.NodeTypeAction,
			Action: &models.NodeAction{
				Tool:   models.ToolExtractData,
				Params: map[string]any{"selector_strategy": "structural"},
			},
		}}).
		Save(context.Background())
	require.NoError(t, err)
	return g
}

func TestExecuteGhost_RecordsExecutionStepsAndAudit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	g := seedExecutableGhost(t, client, entghost.StatusApproved)

	svc := NewExecutionService(client, nil, nil, nil, slog.Default())

	result, err := svc.ExecuteGhost(ctx, g.ID, map[string]any{"report": "monthly"}, "manual")
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "structural", result.Steps[0].Strategy)

	exec, steps, err := svc.GetExecution(ctx, result.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, execution.StatusCompleted, exec.Status)
	assert.Equal(t, 1, exec.StepCount)
	assert.NotNil(t, exec.CompletedAt)
	require.Len(t, steps, 1)
	assert.Equal(t, "extract", steps[0].NodeID)
	assert.Equal(t, executionstep.StatusCompleted, steps[0].Status)

	// The audit ledger got exactly one row.
	audit, err := client.ExecutionLog.Query().
		Where(executionlog.ExecutionIDEQ(result.ExecutionID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "completed", audit.Status)
	assert.Equal(t, "org-1", audit.OrgID)
	assert.Equal(t, []string{"structural"}, audit.StrategiesUsed)
}

func TestExecuteGhost_AuditLedgerIsAppendOnly(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	g := seedExecutableGhost(t, client, entghost.StatusApproved)

	svc := NewExecutionService(client, nil, nil, nil, slog.Default())
	result, err := svc.ExecuteGhost(ctx, g.ID, nil, "manual")
	require.NoError(t, err)

	_, err = client.ExecutionLog.Update().
		Where(executionlog.ExecutionIDEQ(result.ExecutionID)).
		SetStatus("tampered").
		Save(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append-only")

	err = client.ExecutionLog.DeleteOneID(result.ExecutionID).Exec(ctx)
	require.Error(t, err)
}

func TestExecuteGhost_BlockPolicy(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	g := seedExecutableGhost(t, client, entghost.StatusApproved)

	_, err := client.AutomationPolicy.Create().
		SetID(uuid.NewString()).
		SetOrgID("org-1").
		SetName("freeze-window").
		SetAction(automationpolicy.ActionBlock).
		Save(ctx)
	require.NoError(t, err)

	svc := NewExecutionService(client, nil, nil, nil, slog.Default())
	_, err = svc.ExecuteGhost(ctx, g.ID, nil, "manual")
	assert.ErrorIs(t, err, ErrExecutionBlocked)

	// Nothing was recorded.
	count, err := client.Execution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecuteGhost_RequireApprovalPolicyNeedsActiveGhost(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	_, err := client.AutomationPolicy.Create().
		SetID(uuid.NewString()).
		SetOrgID("org-1").
		SetName("strict-activation").
		SetAction(automationpolicy.ActionRequireApproval).
		Save(ctx)
	require.NoError(t, err)

	svc := NewExecutionService(client, nil, nil, nil, slog.Default())

	approved := seedExecutableGhost(t, client, entghost.StatusApproved)
	_, err = svc.ExecuteGhost(ctx, approved.ID, nil, "manual")
	assert.ErrorIs(t, err, ErrExecutionBlocked)

	active := seedExecutableGhost(t, client, entghost.StatusActive)
	result, err := svc.ExecuteGhost(ctx, active.ID, nil, "manual")
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestExecuteGhost_InactivePoliciesAreIgnored(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	g := seedExecutableGhost(t, client, entghost.StatusApproved)

	_, err := client.AutomationPolicy.Create().
		SetID(uuid.NewString()).
		SetOrgID("org-1").
		SetName("retired-freeze").
		SetAction(automationpolicy.ActionBlock).
		SetIsActive(false).
		Save(ctx)
	require.NoError(t, err)

	svc := NewExecutionService(client, nil, nil, nil, slog.Default())
	result, err := svc.ExecuteGhost(ctx, g.ID, nil, "manual")
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestExecuteGhost_Errors(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewExecutionService(client, nil, nil, nil, slog.Default())

	_, err := svc.ExecuteGhost(ctx, "", nil, "manual")
	assert.True(t, IsValidationError(err))

	_, err = svc.ExecuteGhost(ctx, "missing", nil, "manual")
	assert.ErrorIs(t, err, executor.ErrGhostNotFound)

	pending := seedExecutableGhost(t, client, entghost.StatusPendingApproval)
	_, err = svc.ExecuteGhost(ctx, pending.ID, nil, "manual")
	assert.ErrorIs(t, err, executor.ErrGhostNotApproved)
}

func TestGetExecution_NotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewExecutionService(client, nil, nil, nil, slog.Default())

	_, _, err := svc.GetExecution(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
