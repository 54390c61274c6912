// Package events broadcasts transient org-scoped announcements via
// PostgreSQL NOTIFY for dashboard delivery across replicas.
package events

// Transient event types (NOTIFY only, no DB persistence; the underlying
// rows live in their own tables).
const (
	EventTypePatternDetected    = "pattern.detected"
	EventTypeExecutionCompleted = "execution.completed"
)

// OrgChannel returns the channel name for an org's announcements.
// Format: "ghost:org:{org_id}"
func OrgChannel(orgID string) string {
	return "ghost:org:" + orgID
}

// PatternDetectedPayload announces newly detected or refreshed patterns.
type PatternDetectedPayload struct {
	Type          string  `json:"type"` // EventTypePatternDetected
	OrgID         string  `json:"org_id"`
	PatternID     string  `json:"pattern_id"`
	Status        string  `json:"status"`
	Confidence    float64 `json:"confidence"`
	SuggestedName string  `json:"suggested_name,omitempty"`
}

// ExecutionCompletedPayload announces a finalized execution.
type ExecutionCompletedPayload struct {
	Type        string `json:"type"` // EventTypeExecutionCompleted
	OrgID       string `json:"org_id"`
	ExecutionID string `json:"execution_id"`
	GhostID     string `json:"ghost_id"`
	Status      string `json:"status"`
	Steps       int    `json:"steps"`
	DurationMs  int    `json:"duration_ms"`
}
