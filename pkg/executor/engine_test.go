package executor

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghostworks/ghostd/pkg/llm/llmtest"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/ratelimit"
)

type fakeGhostStore struct {
	ghosts map[string]*Ghost
}

func (s *fakeGhostStore) GetGhost(_ context.Context, ghostID string) (*Ghost, error) {
	g, ok := s.ghosts[ghostID]
	if !ok {
		return nil, ErrGhostNotFound
	}
	return g, nil
}

type fakeExecutionStore struct {
	mu         sync.Mutex
	executions map[string]*ExecutionRecord
	steps      map[string][]StepRecord
	finalized  map[string]string
	finalErr   map[string]string
	audits     []*AuditRecord
}

func newFakeExecutionStore() *fakeExecutionStore {
	return &fakeExecutionStore{
		executions: make(map[string]*ExecutionRecord),
		steps:      make(map[string][]StepRecord),
		finalized:  make(map[string]string),
		finalErr:   make(map[string]string),
	}
}

func (s *fakeExecutionStore) CreateExecution(_ context.Context, rec *ExecutionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executions[rec.ID] = rec
	return nil
}

func (s *fakeExecutionStore) RecordStep(_ context.Context, executionID string, step *StepRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps[executionID] = append(s.steps[executionID], *step)
	return nil
}

func (s *fakeExecutionStore) FinalizeExecution(_ context.Context, executionID, status, errMsg string, _ int, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalized[executionID] = status
	s.finalErr[executionID] = errMsg
	return nil
}

func (s *fakeExecutionStore) AppendAuditLog(_ context.Context, rec *AuditRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audits = append(s.audits, rec)
	return nil
}

func approvedGhost(plan []models.ExecutionNode) *Ghost {
	return &Ghost{
		ID:     "ghost-1",
		OrgID:  "org-1",
		Name:   "Invoice filing",
		Status: "approved",
		Plan:   plan,
	}
}

func apiNode(id, endpoint string) models.ExecutionNode {
	return models.ExecutionNode{
		ID:   id,
		Type: models.NodeTypeAction,
		Action: &models.NodeAction{
			Tool:   models.ToolAPICall,
			Params: map[string]any{"endpoint": endpoint, "method": "GET"},
		},
	}
}

func TestExecute_APICallPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost([]models.ExecutionNode{apiNode("call", srv.URL)}),
	}}
	store := newFakeExecutionStore()
	e := NewEngine(ghosts, store, nil, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	require.Len(t, result.Steps, 1)
	step := result.Steps[0]
	assert.Equal(t, "call", step.NodeID)
	assert.Equal(t, "completed", step.Status)
	assert.Equal(t, "api", step.Strategy)
	assert.Equal(t, 200, step.Output["status"])
	assert.Equal(t, map[string]any{"ok": true}, step.Output["body"])

	assert.Equal(t, "completed", store.finalized[result.ExecutionID])
	require.Len(t, store.audits, 1)
	audit := store.audits[0]
	assert.Equal(t, "completed", audit.Status)
	assert.Equal(t, "org-1", audit.OrgID)
	assert.Equal(t, []string{"api"}, audit.StrategiesUsed)
}

func TestExecute_GhostNotFound(t *testing.T) {
	store := newFakeExecutionStore()
	e := NewEngine(&fakeGhostStore{ghosts: map[string]*Ghost{}}, store, nil, nil, slog.Default())

	_, err := e.Execute(context.Background(), "missing", nil, "manual")
	assert.ErrorIs(t, err, ErrGhostNotFound)
	assert.Empty(t, store.executions)
}

func TestExecute_RejectsNonExecutableGhost(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": {ID: "ghost-1", OrgID: "org-1", Status: "pending_approval"},
	}}
	store := newFakeExecutionStore()
	e := NewEngine(ghosts, store, nil, nil, slog.Default())

	_, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	assert.ErrorIs(t, err, ErrGhostNotApproved)
	assert.Empty(t, store.executions)
	assert.Empty(t, store.audits)
}

func TestExecute_PerOrgRateLimit(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost([]models.ExecutionNode{{ID: "noop", Type: models.NodeTypeAction}}),
	}}
	store := newFakeExecutionStore()
	limiter := ratelimit.NewMemoryLimiter(1, time.Minute)
	e := NewEngine(ghosts, store, nil, limiter, slog.Default())

	_, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)

	_, err = e.Execute(context.Background(), "ghost-1", nil, "manual")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestExecute_SelfHealedSubstituteStillFailsTheRun(t *testing.T) {
	// The endpoint is closed before execution so the original step fails.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost([]models.ExecutionNode{apiNode("call", deadURL)}),
	}}
	store := newFakeExecutionStore()
	scripted := llmtest.NewScriptedClient(
		`{"tool": "human_escalation", "params": {"reason": "endpoint unreachable"}}`)
	e := NewEngine(ghosts, store, scripted, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)

	// The substitute completed, but the recorded failed step still fails
	// the execution.
	assert.Equal(t, "failed", result.Status)
	require.Len(t, result.Steps, 2)

	failed := result.Steps[0]
	assert.Equal(t, "call", failed.NodeID)
	assert.Equal(t, "failed", failed.Status)
	assert.Equal(t, "direct", failed.Strategy)
	assert.NotEmpty(t, failed.Error)

	healed := result.Steps[1]
	assert.Equal(t, "call_healed", healed.NodeID)
	assert.Equal(t, "completed", healed.Status)
	assert.Equal(t, "self_healed:human", healed.Strategy)
	assert.Equal(t, true, healed.Output["escalated"])

	require.Len(t, store.audits, 1)
	assert.Equal(t, "failed", store.audits[0].Status)
	assert.ElementsMatch(t, []string{"direct", "self_healed:human"}, store.audits[0].StrategiesUsed)
	assert.Equal(t, "failed", store.finalized[result.ExecutionID])
}

func TestExecute_HealingUnavailableStopsTheRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost([]models.ExecutionNode{
			apiNode("call", deadURL),
			apiNode("never-reached", deadURL),
		}),
	}}
	store := newFakeExecutionStore()
	e := NewEngine(ghosts, store, nil, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)

	assert.Equal(t, "failed", result.Status)
	require.Len(t, result.Steps, 1)
	assert.Contains(t, store.finalErr[result.ExecutionID], "self-heal failed")
	require.Len(t, store.audits, 1)
}

func TestExecute_PlannerFallbackEscalates(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost(nil),
	}}
	store := newFakeExecutionStore()
	scripted := llmtest.NewScriptedClient()
	scripted.Err = errors.New("model unavailable")
	e := NewEngine(ghosts, store, scripted, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	require.Len(t, result.Steps, 1)
	step := result.Steps[0]
	assert.Equal(t, "escalate", step.NodeID)
	assert.Equal(t, "human", step.Strategy)
	assert.Equal(t, true, step.Output["escalated"])
	assert.Equal(t, "Could not generate execution plan automatically", step.Output["reason"])
}

func TestExecute_PlannerGeneratedPlan(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost(nil),
	}}
	store := newFakeExecutionStore()
	scripted := llmtest.NewScriptedClient(
		`[{"id": "open", "type": "action", "action": {"tool": "navigate_to", "params": {"url_hash": "a1b2c3d4"}}}]`)
	e := NewEngine(ghosts, store, scripted, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", map[string]any{"invoice": "42"}, "api")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	require.Len(t, result.Steps, 1)
	step := result.Steps[0]
	assert.Equal(t, "open", step.NodeID)
	assert.Equal(t, "semantic", step.Strategy)
	assert.Equal(t, models.ToolNavigateTo, step.Output["action"])
	assert.Equal(t, "Queued for client-side browser execution", step.Output["note"])

	calls := scripted.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[1].Content, "Invoice filing")
}

func TestExecute_SelectorStrategyOverride(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost([]models.ExecutionNode{{
			ID:   "click",
			Type: models.NodeTypeAction,
			Action: &models.NodeAction{
				Tool:   models.ToolClickElement,
				Params: map[string]any{"selector_strategy": "structural"},
			},
		}}),
	}}
	store := newFakeExecutionStore()
	e := NewEngine(ghosts, store, nil, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "structural", result.Steps[0].Strategy)
}

func TestExecute_UnknownToolIsRecordedNotFatal(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost([]models.ExecutionNode{{
			ID:     "odd",
			Type:   models.NodeTypeAction,
			Action: &models.NodeAction{Tool: "teleport"},
		}}),
	}}
	store := newFakeExecutionStore()
	e := NewEngine(ghosts, store, nil, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "unknown", result.Steps[0].Strategy)
	assert.Contains(t, result.Steps[0].Output["error"], "teleport")
}

func TestExecute_NonActionNodesAreSkipped(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": approvedGhost([]models.ExecutionNode{
			{ID: "cond", Type: models.NodeTypeCondition},
		}),
	}}
	store := newFakeExecutionStore()
	e := NewEngine(ghosts, store, nil, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "manual")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "skipped", result.Steps[0].Status)
	assert.Equal(t, "direct", result.Steps[0].Strategy)
}

func TestExecute_ActiveGhostIsExecutable(t *testing.T) {
	ghosts := &fakeGhostStore{ghosts: map[string]*Ghost{
		"ghost-1": {
			ID:     "ghost-1",
			OrgID:  "org-1",
			Status: "active",
			Plan:   []models.ExecutionNode{{ID: "cond", Type: models.NodeTypeCondition}},
		},
	}}
	store := newFakeExecutionStore()
	e := NewEngine(ghosts, store, nil, nil, slog.Default())

	result, err := e.Execute(context.Background(), "ghost-1", nil, "trigger")
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}
