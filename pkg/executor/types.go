package executor

import (
	"errors"
	"time"

	"github.com/ghostworks/ghostd/pkg/models"
)

var (
	// ErrGhostNotFound indicates the requested Ghost does not exist.
	ErrGhostNotFound = errors.New("ghost not found")
	// ErrGhostNotApproved indicates the Ghost is not in an executable state.
	ErrGhostNotApproved = errors.New("ghost is not approved for execution")
	// ErrRateLimited indicates the org exceeded its execution rate.
	ErrRateLimited = errors.New("execution rate limit exceeded")
)

// Ghost is the loaded view of an executable workflow template.
type Ghost struct {
	ID          string
	OrgID       string
	Name        string
	Description string
	Status      string
	Plan        []models.ExecutionNode
	Parameters  []models.GhostParameter
}

// Executable reports whether the Ghost may be run.
func (g *Ghost) Executable() bool {
	return g.Status == "approved" || g.Status == "active"
}

// StepRecord is one attempted step, in attempt order.
type StepRecord struct {
	NodeID     string         `json:"nodeId"`
	Status     string         `json:"status"`
	Strategy   string         `json:"strategy"`
	DurationMs int            `json:"durationMs"`
	Output     map[string]any `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Result is the outcome of one execution.
type Result struct {
	ExecutionID string       `json:"executionId"`
	Status      string       `json:"status"`
	Steps       []StepRecord `json:"steps"`
}

// ExecutionRecord is the persisted execution row.
type ExecutionRecord struct {
	ID         string
	GhostID    string
	Status     string
	Parameters map[string]any
	Trigger    string
	StepCount  int
	StartedAt  time.Time
	Error      string
}

// AuditRecord is the immutable audit ledger row written after finalization.
type AuditRecord struct {
	ExecutionID    string
	GhostID        string
	OrgID          string
	Status         string
	Steps          int
	DurationMs     int
	StrategiesUsed []string
	LoggedAt       time.Time
}
