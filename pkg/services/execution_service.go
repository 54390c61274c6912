package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ghostworks/ghostd/ent"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
	"github.com/ghostworks/ghostd/ent/execution"
	"github.com/ghostworks/ghostd/ent/executionstep"
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/pkg/events"
	"github.com/ghostworks/ghostd/pkg/executor"
	"github.com/ghostworks/ghostd/pkg/llm"
	"github.com/ghostworks/ghostd/pkg/ratelimit"
)

// ExecutionService runs Ghosts through the execution engine, enforcing
// automation policies first and announcing completions afterwards.
type ExecutionService struct {
	client    *ent.Client
	engine    *executor.Engine
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewExecutionService creates an ExecutionService.
func NewExecutionService(client *ent.Client, llmClient llm.Client, limiter ratelimit.Limiter, publisher *events.Publisher, logger *slog.Logger) *ExecutionService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ExecutionService{client: client, publisher: publisher, logger: logger}
	s.engine = executor.NewEngine(
		&entGhostStore{client: client},
		&entExecutionStore{client: client},
		llmClient, limiter, logger)
	return s
}

// ExecuteGhost runs one Ghost. Policy violations and governance errors map
// onto the executor sentinels so the API layer renders stable codes.
func (s *ExecutionService) ExecuteGhost(ctx context.Context, ghostID string, params map[string]any, trigger string) (*executor.Result, error) {
	if ghostID == "" {
		return nil, NewValidationError("ghostId", "ghostId is required")
	}

	g, err := s.client.Ghost.Query().
		Where(ghost.IDEQ(ghostID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, executor.ErrGhostNotFound
		}
		return nil, fmt.Errorf("failed to load ghost: %w", err)
	}

	if err := s.checkPolicies(ctx, g); err != nil {
		return nil, err
	}

	result, err := s.engine.Execute(ctx, ghostID, params, trigger)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		pubErr := s.publisher.PublishExecutionCompleted(ctx, events.ExecutionCompletedPayload{
			OrgID:       g.OrgID,
			ExecutionID: result.ExecutionID,
			GhostID:     ghostID,
			Status:      result.Status,
			Steps:       len(result.Steps),
		})
		if pubErr != nil {
			s.logger.Warn("failed to announce execution", "execution_id", result.ExecutionID, "error", pubErr)
		}
	}

	return result, nil
}

// checkPolicies evaluates the org's active automation policies.
// block refuses outright; require_approval demands an activated Ghost;
// notify logs and proceeds; allow proceeds.
func (s *ExecutionService) checkPolicies(ctx context.Context, g *ent.Ghost) error {
	policies, err := s.client.AutomationPolicy.Query().
		Where(
			automationpolicy.OrgIDEQ(g.OrgID),
			automationpolicy.IsActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load automation policies: %w", err)
	}

	for _, p := range policies {
		switch p.Action {
		case automationpolicy.ActionBlock:
			s.logger.Info("execution blocked by policy",
				"ghost_id", g.ID, "org_id", g.OrgID, "policy", p.Name)
			return fmt.Errorf("%w: %s", ErrExecutionBlocked, p.Name)
		case automationpolicy.ActionRequireApproval:
			if g.Status != ghost.StatusActive {
				return fmt.Errorf("%w: policy %s requires an activated ghost", ErrExecutionBlocked, p.Name)
			}
		case automationpolicy.ActionNotify:
			s.logger.Info("execution notify policy matched",
				"ghost_id", g.ID, "org_id", g.OrgID, "policy", p.Name)
		}
	}
	return nil
}

// GetExecution returns one execution with its ordered steps.
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string) (*ent.Execution, []*ent.ExecutionStep, error) {
	exec, err := s.client.Execution.Query().
		Where(execution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get execution: %w", err)
	}

	steps, err := s.client.ExecutionStep.Query().
		Where(executionstep.ExecutionIDEQ(executionID)).
		Order(ent.Asc(executionstep.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get execution steps: %w", err)
	}

	return exec, steps, nil
}

// entGhostStore adapts the Ent client to the engine's GhostStore.
type entGhostStore struct {
	client *ent.Client
}

func (s *entGhostStore) GetGhost(ctx context.Context, ghostID string) (*executor.Ghost, error) {
	g, err := s.client.Ghost.Query().
		Where(ghost.IDEQ(ghostID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, executor.ErrGhostNotFound
		}
		return nil, fmt.Errorf("failed to load ghost: %w", err)
	}

	out := &executor.Ghost{
		ID:         g.ID,
		OrgID:      g.OrgID,
		Name:       g.Name,
		Status:     string(g.Status),
		Plan:       g.ExecutionPlan,
		Parameters: g.Parameters,
	}
	if g.Description != nil {
		out.Description = *g.Description
	}
	return out, nil
}

// entExecutionStore adapts the Ent client to the engine's ExecutionStore.
type entExecutionStore struct {
	client *ent.Client
}

func (s *entExecutionStore) CreateExecution(ctx context.Context, rec *executor.ExecutionRecord) error {
	create := s.client.Execution.Create().
		SetID(rec.ID).
		SetGhostID(rec.GhostID).
		SetStatus(execution.Status(rec.Status)).
		SetStartedAt(rec.StartedAt)
	if rec.Parameters != nil {
		create.SetParameters(rec.Parameters)
	}
	if rec.Trigger != "" {
		create.SetTrigger(rec.Trigger)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to create execution: %w", err)
	}
	return nil
}

func (s *entExecutionStore) RecordStep(ctx context.Context, executionID string, step *executor.StepRecord) error {
	create := s.client.ExecutionStep.Create().
		SetID(uuid.NewString()).
		SetExecutionID(executionID).
		SetNodeID(step.NodeID).
		SetStatus(executionstep.Status(step.Status)).
		SetStrategy(step.Strategy).
		SetDurationMs(step.DurationMs)
	if step.Output != nil {
		create.SetOutput(step.Output)
	}
	if step.Error != "" {
		create.SetError(step.Error)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("failed to record step: %w", err)
	}
	return nil
}

func (s *entExecutionStore) FinalizeExecution(ctx context.Context, executionID, status, errMsg string, stepCount int, completedAt time.Time) error {
	update := s.client.Execution.UpdateOneID(executionID).
		SetStatus(execution.Status(status)).
		SetStepCount(stepCount).
		SetCompletedAt(completedAt)
	if errMsg != "" {
		update.SetError(errMsg)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to finalize execution: %w", err)
	}
	return nil
}

func (s *entExecutionStore) AppendAuditLog(ctx context.Context, rec *executor.AuditRecord) error {
	_, err := s.client.ExecutionLog.Create().
		SetID(uuid.NewString()).
		SetExecutionID(rec.ExecutionID).
		SetGhostID(rec.GhostID).
		SetOrgID(rec.OrgID).
		SetStatus(rec.Status).
		SetSteps(rec.Steps).
		SetDurationMs(rec.DurationMs).
		SetStrategiesUsed(rec.StrategiesUsed).
		SetLoggedAt(rec.LoggedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to append audit log: %w", err)
	}
	return nil
}
