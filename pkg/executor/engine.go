// Package executor runs approved Ghosts: it plans with the LLM when no stored
// plan exists, executes nodes via the appropriate strategy, self-heals failed
// steps through LLM replanning, and records every attempt in the audit ledger.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghostworks/ghostd/pkg/llm"
	"github.com/ghostworks/ghostd/pkg/models"
	"github.com/ghostworks/ghostd/pkg/ratelimit"
)

// defaultNodeTimeout bounds a step when the node carries no timeout.
const defaultNodeTimeout = 30 * time.Second

// Engine executes Ghosts. Safe for concurrent use.
type Engine struct {
	ghosts     GhostStore
	store      ExecutionStore
	llm        llm.Client
	limiter    ratelimit.Limiter
	httpClient *http.Client
	logger     *slog.Logger
}

// NewEngine creates an execution engine. The limiter may be nil to disable
// per-org execution throttling; the LLM client may be nil, in which case
// planning falls back to human escalation and failed steps are not healed.
func NewEngine(ghosts GhostStore, store ExecutionStore, llmClient llm.Client, limiter ratelimit.Limiter, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		ghosts:     ghosts,
		store:      store,
		llm:        llmClient,
		limiter:    limiter,
		httpClient: &http.Client{Timeout: defaultNodeTimeout},
		logger:     logger,
	}
}

// Execute runs the Ghost identified by ghostID. The returned Result carries
// the execution ID, terminal status and every recorded step. The audit row is
// written even when the execution fails.
func (e *Engine) Execute(ctx context.Context, ghostID string, params map[string]any, trigger string) (*Result, error) {
	ghost, err := e.ghosts.GetGhost(ctx, ghostID)
	if err != nil {
		return nil, err
	}
	if !ghost.Executable() {
		return nil, ErrGhostNotApproved
	}

	if e.limiter != nil {
		allowed, err := e.limiter.Allow(ctx, "exec:"+ghost.OrgID)
		if err != nil {
			return nil, fmt.Errorf("rate limiter failed: %w", err)
		}
		if !allowed {
			return nil, ErrRateLimited
		}
	}

	startedAt := time.Now()
	rec := &ExecutionRecord{
		ID:         uuid.NewString(),
		GhostID:    ghost.ID,
		Status:     "running",
		Parameters: params,
		Trigger:    trigger,
		StartedAt:  startedAt,
	}
	if err := e.store.CreateExecution(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	plan := ghost.Plan
	if len(plan) == 0 {
		plan = e.plan(ctx, ghost, params)
	}

	steps, execErr := e.executePlan(ctx, rec.ID, plan, params)

	status := "completed"
	errMsg := ""
	for _, s := range steps {
		if s.Status == "failed" {
			status = "failed"
			errMsg = s.Error
		}
	}
	if execErr != nil {
		status = "failed"
		errMsg = execErr.Error()
	}

	completedAt := time.Now()
	if err := e.store.FinalizeExecution(ctx, rec.ID, status, errMsg, len(steps), completedAt); err != nil {
		e.logger.Error("failed to finalize execution", "execution_id", rec.ID, "error", err)
	}

	// The audit row is written unconditionally.
	audit := &AuditRecord{
		ExecutionID:    rec.ID,
		GhostID:        ghost.ID,
		OrgID:          ghost.OrgID,
		Status:         status,
		Steps:          len(steps),
		DurationMs:     int(completedAt.Sub(startedAt).Milliseconds()),
		StrategiesUsed: distinctStrategies(steps),
		LoggedAt:       completedAt,
	}
	if err := e.store.AppendAuditLog(ctx, audit); err != nil {
		e.logger.Error("failed to append audit log", "execution_id", rec.ID, "error", err)
	}

	e.logger.Info("execution finished",
		"execution_id", rec.ID,
		"ghost_id", ghost.ID,
		"org_id", ghost.OrgID,
		"status", status,
		"steps", len(steps),
		"duration_ms", audit.DurationMs)

	return &Result{ExecutionID: rec.ID, Status: status, Steps: steps}, nil
}

// executePlan iterates nodes in order, self-healing failed steps. It stops
// early when healing itself fails.
func (e *Engine) executePlan(ctx context.Context, executionID string, plan []models.ExecutionNode, params map[string]any) ([]StepRecord, error) {
	var steps []StepRecord

	record := func(step StepRecord) {
		steps = append(steps, step)
		if err := e.store.RecordStep(ctx, executionID, &step); err != nil {
			e.logger.Error("failed to record step", "execution_id", executionID, "node_id", step.NodeID, "error", err)
		}
	}

	for _, node := range plan {
		step := e.executeNode(ctx, node, params)
		record(step)

		if step.Status != "failed" {
			continue
		}

		healed, err := e.heal(ctx, node, step.Error, params)
		if err != nil {
			e.logger.Warn("self-heal failed, stopping execution",
				"execution_id", executionID, "node_id", node.ID, "error", err)
			return steps, fmt.Errorf("self-heal failed: %w", err)
		}
		record(*healed)
		if healed.Status == "failed" {
			return steps, errors.New("self-healed substitute failed")
		}
	}

	return steps, nil
}

// executeNode runs one node with its timeout and returns the step record.
func (e *Engine) executeNode(ctx context.Context, node models.ExecutionNode, params map[string]any) StepRecord {
	timeout := defaultNodeTimeout
	if node.TimeoutMs > 0 {
		timeout = time.Duration(node.TimeoutMs) * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	step := StepRecord{NodeID: node.ID, Status: "completed"}

	if node.Action == nil {
		step.Status = "skipped"
		step.Strategy = "direct"
		step.DurationMs = int(time.Since(start).Milliseconds())
		return step
	}

	output, strategy, err := e.dispatch(ctx, node.Action, params)
	step.DurationMs = int(time.Since(start).Milliseconds())
	step.Strategy = strategy
	step.Output = output
	if err != nil {
		step.Status = "failed"
		step.Strategy = "direct"
		step.Error = err.Error()
	}
	return step
}

// heal asks the LLM for a single substitute node and executes it. The
// substitute's strategy is prefixed "self_healed:".
func (e *Engine) heal(ctx context.Context, failed models.ExecutionNode, errMsg string, params map[string]any) (*StepRecord, error) {
	if e.llm == nil {
		return nil, errors.New("no LLM client for self-healing")
	}

	action, err := e.replan(ctx, failed, errMsg)
	if err != nil {
		return nil, err
	}

	substitute := models.ExecutionNode{
		ID:        failed.ID + "_healed",
		Type:      models.NodeTypeAction,
		Action:    action,
		TimeoutMs: failed.TimeoutMs,
	}
	step := e.executeNode(ctx, substitute, params)
	if step.Status == "failed" {
		step.Strategy = "self_healed:direct"
	} else {
		step.Strategy = "self_healed:" + step.Strategy
	}
	return &step, nil
}

func distinctStrategies(steps []StepRecord) []string {
	seen := make(map[string]struct{}, len(steps))
	var out []string
	for _, s := range steps {
		if s.Strategy == "" {
			continue
		}
		if _, ok := seen[s.Strategy]; ok {
			continue
		}
		seen[s.Strategy] = struct{}{}
		out = append(out, s.Strategy)
	}
	return out
}
