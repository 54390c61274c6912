// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ApprovalRequest is the predicate function for approvalrequest builders.
type ApprovalRequest func(*sql.Selector)

// AutomationPolicy is the predicate function for automationpolicy builders.
type AutomationPolicy func(*sql.Selector)

// DetectedPattern is the predicate function for detectedpattern builders.
type DetectedPattern func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// ExecutionLog is the predicate function for executionlog builders.
type ExecutionLog func(*sql.Selector)

// ExecutionStep is the predicate function for executionstep builders.
type ExecutionStep func(*sql.Selector)

// Ghost is the predicate function for ghost builders.
type Ghost func(*sql.Selector)

// GhostVersion is the predicate function for ghostversion builders.
type GhostVersion func(*sql.Selector)

// OrgSettings is the predicate function for orgsettings builders.
type OrgSettings func(*sql.Selector)

// SecureEvent is the predicate function for secureevent builders.
type SecureEvent func(*sql.Selector)

// UserFeedback is the predicate function for userfeedback builders.
type UserFeedback func(*sql.Selector)
