package executor

import (
	"context"
	"time"
)

// GhostStore loads executable Ghosts. Implementations return ErrGhostNotFound
// for unknown IDs.
type GhostStore interface {
	GetGhost(ctx context.Context, ghostID string) (*Ghost, error)
}

// ExecutionStore persists executions, their steps, and the audit ledger.
type ExecutionStore interface {
	// CreateExecution inserts a new running execution row.
	CreateExecution(ctx context.Context, rec *ExecutionRecord) error
	// RecordStep appends one attempted step to an execution.
	RecordStep(ctx context.Context, executionID string, step *StepRecord) error
	// FinalizeExecution sets the terminal status, step count and error.
	FinalizeExecution(ctx context.Context, executionID, status, errMsg string, stepCount int, completedAt time.Time) error
	// AppendAuditLog writes the immutable audit row. It must never update
	// or delete existing rows.
	AppendAuditLog(ctx context.Context, rec *AuditRecord) error
}
