// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/approvalrequest"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
	"github.com/ghostworks/ghostd/ent/execution"
	"github.com/ghostworks/ghostd/ent/executionlog"
	"github.com/ghostworks/ghostd/ent/executionstep"
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/ent/ghostversion"
	"github.com/ghostworks/ghostd/ent/orgsettings"
	"github.com/ghostworks/ghostd/ent/predicate"
	"github.com/ghostworks/ghostd/ent/secureevent"
	"github.com/ghostworks/ghostd/ent/userfeedback"
	"github.com/ghostworks/ghostd/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalRequest  = "ApprovalRequest"
	TypeAutomationPolicy = "AutomationPolicy"
	TypeDetectedPattern  = "DetectedPattern"
	TypeExecution        = "Execution"
	TypeExecutionLog     = "ExecutionLog"
	TypeExecutionStep    = "ExecutionStep"
	TypeGhost            = "Ghost"
	TypeGhostVersion     = "GhostVersion"
	TypeOrgSettings      = "OrgSettings"
	TypeSecureEvent      = "SecureEvent"
	TypeUserFeedback     = "UserFeedback"
)

// ApprovalRequestMutation represents an operation that mutates the ApprovalRequest nodes in the graph.
type ApprovalRequestMutation struct {
	config
	op            Op
	typ           string
	id            *string
	ghost_id      *string
	execution_id  *string
	org_id        *string
	requested_by  *string
	approved_by   *string
	status        *approvalrequest.Status
	reason        *string
	decision_note *string
	expires_at    *time.Time
	created_at    *time.Time
	resolved_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ApprovalRequest, error)
	predicates    []predicate.ApprovalRequest
}

var _ ent.Mutation = (*ApprovalRequestMutation)(nil)

// approvalrequestOption allows management of the mutation configuration using functional options.
type approvalrequestOption func(*ApprovalRequestMutation)

// newApprovalRequestMutation creates new mutation for the ApprovalRequest entity.
func newApprovalRequestMutation(c config, op Op, opts ...approvalrequestOption) *ApprovalRequestMutation {
	m := &ApprovalRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRequestID sets the ID field of the mutation.
func withApprovalRequestID(id string) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRequest
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRequest sets the old ApprovalRequest of the mutation.
func withApprovalRequest(node *ApprovalRequest) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		m.oldValue = func(context.Context) (*ApprovalRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRequest entities.
func (m *ApprovalRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGhostID sets the "ghost_id" field.
func (m *ApprovalRequestMutation) SetGhostID(s string) {
	m.ghost_id = &s
}

// GhostID returns the value of the "ghost_id" field in the mutation.
func (m *ApprovalRequestMutation) GhostID() (r string, exists bool) {
	v := m.ghost_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGhostID returns the old "ghost_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldGhostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGhostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGhostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGhostID: %w", err)
	}
	return oldValue.GhostID, nil
}

// ResetGhostID resets all changes to the "ghost_id" field.
func (m *ApprovalRequestMutation) ResetGhostID() {
	m.ghost_id = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *ApprovalRequestMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ApprovalRequestMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *ApprovalRequestMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[approvalrequest.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ApprovalRequestMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, approvalrequest.FieldExecutionID)
}

// SetOrgID sets the "org_id" field.
func (m *ApprovalRequestMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ApprovalRequestMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ApprovalRequestMutation) ResetOrgID() {
	m.org_id = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *ApprovalRequestMutation) SetRequestedBy(s string) {
	m.requested_by = &s
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *ApprovalRequestMutation) RequestedBy() (r string, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRequestedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *ApprovalRequestMutation) ResetRequestedBy() {
	m.requested_by = nil
}

// SetApprovedBy sets the "approved_by" field.
func (m *ApprovalRequestMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *ApprovalRequestMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *ApprovalRequestMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[approvalrequest.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *ApprovalRequestMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, approvalrequest.FieldApprovedBy)
}

// SetStatus sets the "status" field.
func (m *ApprovalRequestMutation) SetStatus(a approvalrequest.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalRequestMutation) Status() (r approvalrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldStatus(ctx context.Context) (v approvalrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalRequestMutation) ResetStatus() {
	m.status = nil
}

// SetReason sets the "reason" field.
func (m *ApprovalRequestMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ApprovalRequestMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ApprovalRequestMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[approvalrequest.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ApprovalRequestMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, approvalrequest.FieldReason)
}

// SetDecisionNote sets the "decision_note" field.
func (m *ApprovalRequestMutation) SetDecisionNote(s string) {
	m.decision_note = &s
}

// DecisionNote returns the value of the "decision_note" field in the mutation.
func (m *ApprovalRequestMutation) DecisionNote() (r string, exists bool) {
	v := m.decision_note
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionNote returns the old "decision_note" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecisionNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionNote: %w", err)
	}
	return oldValue.DecisionNote, nil
}

// ClearDecisionNote clears the value of the "decision_note" field.
func (m *ApprovalRequestMutation) ClearDecisionNote() {
	m.decision_note = nil
	m.clearedFields[approvalrequest.FieldDecisionNote] = struct{}{}
}

// DecisionNoteCleared returns if the "decision_note" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DecisionNoteCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDecisionNote]
	return ok
}

// ResetDecisionNote resets all changes to the "decision_note" field.
func (m *ApprovalRequestMutation) ResetDecisionNote() {
	m.decision_note = nil
	delete(m.clearedFields, approvalrequest.FieldDecisionNote)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalRequestMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalRequestMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalRequestMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ApprovalRequestMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ApprovalRequestMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ApprovalRequestMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[approvalrequest.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ApprovalRequestMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, approvalrequest.FieldResolvedAt)
}

// Where appends a list predicates to the ApprovalRequestMutation builder.
func (m *ApprovalRequestMutation) Where(ps ...predicate.ApprovalRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRequest).
func (m *ApprovalRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRequestMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.ghost_id != nil {
		fields = append(fields, approvalrequest.FieldGhostID)
	}
	if m.execution_id != nil {
		fields = append(fields, approvalrequest.FieldExecutionID)
	}
	if m.org_id != nil {
		fields = append(fields, approvalrequest.FieldOrgID)
	}
	if m.requested_by != nil {
		fields = append(fields, approvalrequest.FieldRequestedBy)
	}
	if m.approved_by != nil {
		fields = append(fields, approvalrequest.FieldApprovedBy)
	}
	if m.status != nil {
		fields = append(fields, approvalrequest.FieldStatus)
	}
	if m.reason != nil {
		fields = append(fields, approvalrequest.FieldReason)
	}
	if m.decision_note != nil {
		fields = append(fields, approvalrequest.FieldDecisionNote)
	}
	if m.expires_at != nil {
		fields = append(fields, approvalrequest.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, approvalrequest.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, approvalrequest.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldGhostID:
		return m.GhostID()
	case approvalrequest.FieldExecutionID:
		return m.ExecutionID()
	case approvalrequest.FieldOrgID:
		return m.OrgID()
	case approvalrequest.FieldRequestedBy:
		return m.RequestedBy()
	case approvalrequest.FieldApprovedBy:
		return m.ApprovedBy()
	case approvalrequest.FieldStatus:
		return m.Status()
	case approvalrequest.FieldReason:
		return m.Reason()
	case approvalrequest.FieldDecisionNote:
		return m.DecisionNote()
	case approvalrequest.FieldExpiresAt:
		return m.ExpiresAt()
	case approvalrequest.FieldCreatedAt:
		return m.CreatedAt()
	case approvalrequest.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrequest.FieldGhostID:
		return m.OldGhostID(ctx)
	case approvalrequest.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case approvalrequest.FieldOrgID:
		return m.OldOrgID(ctx)
	case approvalrequest.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case approvalrequest.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case approvalrequest.FieldStatus:
		return m.OldStatus(ctx)
	case approvalrequest.FieldReason:
		return m.OldReason(ctx)
	case approvalrequest.FieldDecisionNote:
		return m.OldDecisionNote(ctx)
	case approvalrequest.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case approvalrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approvalrequest.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldGhostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGhostID(v)
		return nil
	case approvalrequest.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case approvalrequest.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case approvalrequest.FieldRequestedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case approvalrequest.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case approvalrequest.FieldStatus:
		v, ok := value.(approvalrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalrequest.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case approvalrequest.FieldDecisionNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionNote(v)
		return nil
	case approvalrequest.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case approvalrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approvalrequest.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrequest.FieldExecutionID) {
		fields = append(fields, approvalrequest.FieldExecutionID)
	}
	if m.FieldCleared(approvalrequest.FieldApprovedBy) {
		fields = append(fields, approvalrequest.FieldApprovedBy)
	}
	if m.FieldCleared(approvalrequest.FieldReason) {
		fields = append(fields, approvalrequest.FieldReason)
	}
	if m.FieldCleared(approvalrequest.FieldDecisionNote) {
		fields = append(fields, approvalrequest.FieldDecisionNote)
	}
	if m.FieldCleared(approvalrequest.FieldResolvedAt) {
		fields = append(fields, approvalrequest.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ClearField(name string) error {
	switch name {
	case approvalrequest.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case approvalrequest.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case approvalrequest.FieldReason:
		m.ClearReason()
		return nil
	case approvalrequest.FieldDecisionNote:
		m.ClearDecisionNote()
		return nil
	case approvalrequest.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ResetField(name string) error {
	switch name {
	case approvalrequest.FieldGhostID:
		m.ResetGhostID()
		return nil
	case approvalrequest.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case approvalrequest.FieldOrgID:
		m.ResetOrgID()
		return nil
	case approvalrequest.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case approvalrequest.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case approvalrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalrequest.FieldReason:
		m.ResetReason()
		return nil
	case approvalrequest.FieldDecisionNote:
		m.ResetDecisionNote()
		return nil
	case approvalrequest.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case approvalrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approvalrequest.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ApprovalRequest edge %s", name)
}

// AutomationPolicyMutation represents an operation that mutates the AutomationPolicy nodes in the graph.
type AutomationPolicyMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	name          *string
	description   *string
	condition     *map[string]interface{}
	action        *automationpolicy.Action
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AutomationPolicy, error)
	predicates    []predicate.AutomationPolicy
}

var _ ent.Mutation = (*AutomationPolicyMutation)(nil)

// automationpolicyOption allows management of the mutation configuration using functional options.
type automationpolicyOption func(*AutomationPolicyMutation)

// newAutomationPolicyMutation creates new mutation for the AutomationPolicy entity.
func newAutomationPolicyMutation(c config, op Op, opts ...automationpolicyOption) *AutomationPolicyMutation {
	m := &AutomationPolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeAutomationPolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAutomationPolicyID sets the ID field of the mutation.
func withAutomationPolicyID(id string) automationpolicyOption {
	return func(m *AutomationPolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *AutomationPolicy
		)
		m.oldValue = func(ctx context.Context) (*AutomationPolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AutomationPolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAutomationPolicy sets the old AutomationPolicy of the mutation.
func withAutomationPolicy(node *AutomationPolicy) automationpolicyOption {
	return func(m *AutomationPolicyMutation) {
		m.oldValue = func(context.Context) (*AutomationPolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AutomationPolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AutomationPolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AutomationPolicy entities.
func (m *AutomationPolicyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AutomationPolicyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AutomationPolicyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AutomationPolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *AutomationPolicyMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *AutomationPolicyMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the AutomationPolicy entity.
// If the AutomationPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationPolicyMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *AutomationPolicyMutation) ResetOrgID() {
	m.org_id = nil
}

// SetName sets the "name" field.
func (m *AutomationPolicyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AutomationPolicyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AutomationPolicy entity.
// If the AutomationPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationPolicyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AutomationPolicyMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *AutomationPolicyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AutomationPolicyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AutomationPolicy entity.
// If the AutomationPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationPolicyMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AutomationPolicyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[automationpolicy.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AutomationPolicyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[automationpolicy.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AutomationPolicyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, automationpolicy.FieldDescription)
}

// SetCondition sets the "condition" field.
func (m *AutomationPolicyMutation) SetCondition(value map[string]interface{}) {
	m.condition = &value
}

// Condition returns the value of the "condition" field in the mutation.
func (m *AutomationPolicyMutation) Condition() (r map[string]interface{}, exists bool) {
	v := m.condition
	if v == nil {
		return
	}
	return *v, true
}

// OldCondition returns the old "condition" field's value of the AutomationPolicy entity.
// If the AutomationPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationPolicyMutation) OldCondition(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCondition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCondition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCondition: %w", err)
	}
	return oldValue.Condition, nil
}

// ClearCondition clears the value of the "condition" field.
func (m *AutomationPolicyMutation) ClearCondition() {
	m.condition = nil
	m.clearedFields[automationpolicy.FieldCondition] = struct{}{}
}

// ConditionCleared returns if the "condition" field was cleared in this mutation.
func (m *AutomationPolicyMutation) ConditionCleared() bool {
	_, ok := m.clearedFields[automationpolicy.FieldCondition]
	return ok
}

// ResetCondition resets all changes to the "condition" field.
func (m *AutomationPolicyMutation) ResetCondition() {
	m.condition = nil
	delete(m.clearedFields, automationpolicy.FieldCondition)
}

// SetAction sets the "action" field.
func (m *AutomationPolicyMutation) SetAction(a automationpolicy.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *AutomationPolicyMutation) Action() (r automationpolicy.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AutomationPolicy entity.
// If the AutomationPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationPolicyMutation) OldAction(ctx context.Context) (v automationpolicy.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AutomationPolicyMutation) ResetAction() {
	m.action = nil
}

// SetIsActive sets the "is_active" field.
func (m *AutomationPolicyMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AutomationPolicyMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AutomationPolicy entity.
// If the AutomationPolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationPolicyMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AutomationPolicyMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the AutomationPolicyMutation builder.
func (m *AutomationPolicyMutation) Where(ps ...predicate.AutomationPolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AutomationPolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AutomationPolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AutomationPolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AutomationPolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AutomationPolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AutomationPolicy).
func (m *AutomationPolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AutomationPolicyMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.org_id != nil {
		fields = append(fields, automationpolicy.FieldOrgID)
	}
	if m.name != nil {
		fields = append(fields, automationpolicy.FieldName)
	}
	if m.description != nil {
		fields = append(fields, automationpolicy.FieldDescription)
	}
	if m.condition != nil {
		fields = append(fields, automationpolicy.FieldCondition)
	}
	if m.action != nil {
		fields = append(fields, automationpolicy.FieldAction)
	}
	if m.is_active != nil {
		fields = append(fields, automationpolicy.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AutomationPolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case automationpolicy.FieldOrgID:
		return m.OrgID()
	case automationpolicy.FieldName:
		return m.Name()
	case automationpolicy.FieldDescription:
		return m.Description()
	case automationpolicy.FieldCondition:
		return m.Condition()
	case automationpolicy.FieldAction:
		return m.Action()
	case automationpolicy.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AutomationPolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case automationpolicy.FieldOrgID:
		return m.OldOrgID(ctx)
	case automationpolicy.FieldName:
		return m.OldName(ctx)
	case automationpolicy.FieldDescription:
		return m.OldDescription(ctx)
	case automationpolicy.FieldCondition:
		return m.OldCondition(ctx)
	case automationpolicy.FieldAction:
		return m.OldAction(ctx)
	case automationpolicy.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown AutomationPolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationPolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case automationpolicy.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case automationpolicy.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case automationpolicy.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case automationpolicy.FieldCondition:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCondition(v)
		return nil
	case automationpolicy.FieldAction:
		v, ok := value.(automationpolicy.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case automationpolicy.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown AutomationPolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AutomationPolicyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AutomationPolicyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationPolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AutomationPolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AutomationPolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(automationpolicy.FieldDescription) {
		fields = append(fields, automationpolicy.FieldDescription)
	}
	if m.FieldCleared(automationpolicy.FieldCondition) {
		fields = append(fields, automationpolicy.FieldCondition)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AutomationPolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AutomationPolicyMutation) ClearField(name string) error {
	switch name {
	case automationpolicy.FieldDescription:
		m.ClearDescription()
		return nil
	case automationpolicy.FieldCondition:
		m.ClearCondition()
		return nil
	}
	return fmt.Errorf("unknown AutomationPolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AutomationPolicyMutation) ResetField(name string) error {
	switch name {
	case automationpolicy.FieldOrgID:
		m.ResetOrgID()
		return nil
	case automationpolicy.FieldName:
		m.ResetName()
		return nil
	case automationpolicy.FieldDescription:
		m.ResetDescription()
		return nil
	case automationpolicy.FieldCondition:
		m.ResetCondition()
		return nil
	case automationpolicy.FieldAction:
		m.ResetAction()
		return nil
	case automationpolicy.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown AutomationPolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AutomationPolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AutomationPolicyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AutomationPolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AutomationPolicyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AutomationPolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AutomationPolicyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AutomationPolicyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AutomationPolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AutomationPolicyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AutomationPolicy edge %s", name)
}

// DetectedPatternMutation represents an operation that mutates the DetectedPattern nodes in the graph.
type DetectedPatternMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	org_id                  *string
	intent_sequence         *[]string
	appendintent_sequence   []string
	structural_hashes       *[]string
	appendstructural_hashes []string
	occurrences             *int
	addoccurrences          *int
	confidence              *float64
	addconfidence           *float64
	suggested_name          *string
	suggested_description   *string
	first_seen              *time.Time
	last_seen               *time.Time
	status                  *detectedpattern.Status
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*DetectedPattern, error)
	predicates              []predicate.DetectedPattern
}

var _ ent.Mutation = (*DetectedPatternMutation)(nil)

// detectedpatternOption allows management of the mutation configuration using functional options.
type detectedpatternOption func(*DetectedPatternMutation)

// newDetectedPatternMutation creates new mutation for the DetectedPattern entity.
func newDetectedPatternMutation(c config, op Op, opts ...detectedpatternOption) *DetectedPatternMutation {
	m := &DetectedPatternMutation{
		config:        c,
		op:            op,
		typ:           TypeDetectedPattern,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDetectedPatternID sets the ID field of the mutation.
func withDetectedPatternID(id string) detectedpatternOption {
	return func(m *DetectedPatternMutation) {
		var (
			err   error
			once  sync.Once
			value *DetectedPattern
		)
		m.oldValue = func(ctx context.Context) (*DetectedPattern, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DetectedPattern.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDetectedPattern sets the old DetectedPattern of the mutation.
func withDetectedPattern(node *DetectedPattern) detectedpatternOption {
	return func(m *DetectedPatternMutation) {
		m.oldValue = func(context.Context) (*DetectedPattern, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DetectedPatternMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DetectedPatternMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DetectedPattern entities.
func (m *DetectedPatternMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DetectedPatternMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DetectedPatternMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DetectedPattern.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *DetectedPatternMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *DetectedPatternMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *DetectedPatternMutation) ResetOrgID() {
	m.org_id = nil
}

// SetIntentSequence sets the "intent_sequence" field.
func (m *DetectedPatternMutation) SetIntentSequence(s []string) {
	m.intent_sequence = &s
	m.appendintent_sequence = nil
}

// IntentSequence returns the value of the "intent_sequence" field in the mutation.
func (m *DetectedPatternMutation) IntentSequence() (r []string, exists bool) {
	v := m.intent_sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentSequence returns the old "intent_sequence" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldIntentSequence(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentSequence: %w", err)
	}
	return oldValue.IntentSequence, nil
}

// AppendIntentSequence adds s to the "intent_sequence" field.
func (m *DetectedPatternMutation) AppendIntentSequence(s []string) {
	m.appendintent_sequence = append(m.appendintent_sequence, s...)
}

// AppendedIntentSequence returns the list of values that were appended to the "intent_sequence" field in this mutation.
func (m *DetectedPatternMutation) AppendedIntentSequence() ([]string, bool) {
	if len(m.appendintent_sequence) == 0 {
		return nil, false
	}
	return m.appendintent_sequence, true
}

// ResetIntentSequence resets all changes to the "intent_sequence" field.
func (m *DetectedPatternMutation) ResetIntentSequence() {
	m.intent_sequence = nil
	m.appendintent_sequence = nil
}

// SetStructuralHashes sets the "structural_hashes" field.
func (m *DetectedPatternMutation) SetStructuralHashes(s []string) {
	m.structural_hashes = &s
	m.appendstructural_hashes = nil
}

// StructuralHashes returns the value of the "structural_hashes" field in the mutation.
func (m *DetectedPatternMutation) StructuralHashes() (r []string, exists bool) {
	v := m.structural_hashes
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuralHashes returns the old "structural_hashes" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldStructuralHashes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuralHashes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuralHashes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuralHashes: %w", err)
	}
	return oldValue.StructuralHashes, nil
}

// AppendStructuralHashes adds s to the "structural_hashes" field.
func (m *DetectedPatternMutation) AppendStructuralHashes(s []string) {
	m.appendstructural_hashes = append(m.appendstructural_hashes, s...)
}

// AppendedStructuralHashes returns the list of values that were appended to the "structural_hashes" field in this mutation.
func (m *DetectedPatternMutation) AppendedStructuralHashes() ([]string, bool) {
	if len(m.appendstructural_hashes) == 0 {
		return nil, false
	}
	return m.appendstructural_hashes, true
}

// ResetStructuralHashes resets all changes to the "structural_hashes" field.
func (m *DetectedPatternMutation) ResetStructuralHashes() {
	m.structural_hashes = nil
	m.appendstructural_hashes = nil
}

// SetOccurrences sets the "occurrences" field.
func (m *DetectedPatternMutation) SetOccurrences(i int) {
	m.occurrences = &i
	m.addoccurrences = nil
}

// Occurrences returns the value of the "occurrences" field in the mutation.
func (m *DetectedPatternMutation) Occurrences() (r int, exists bool) {
	v := m.occurrences
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrences returns the old "occurrences" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldOccurrences(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrences: %w", err)
	}
	return oldValue.Occurrences, nil
}

// AddOccurrences adds i to the "occurrences" field.
func (m *DetectedPatternMutation) AddOccurrences(i int) {
	if m.addoccurrences != nil {
		*m.addoccurrences += i
	} else {
		m.addoccurrences = &i
	}
}

// AddedOccurrences returns the value that was added to the "occurrences" field in this mutation.
func (m *DetectedPatternMutation) AddedOccurrences() (r int, exists bool) {
	v := m.addoccurrences
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrences resets all changes to the "occurrences" field.
func (m *DetectedPatternMutation) ResetOccurrences() {
	m.occurrences = nil
	m.addoccurrences = nil
}

// SetConfidence sets the "confidence" field.
func (m *DetectedPatternMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DetectedPatternMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DetectedPatternMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DetectedPatternMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DetectedPatternMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSuggestedName sets the "suggested_name" field.
func (m *DetectedPatternMutation) SetSuggestedName(s string) {
	m.suggested_name = &s
}

// SuggestedName returns the value of the "suggested_name" field in the mutation.
func (m *DetectedPatternMutation) SuggestedName() (r string, exists bool) {
	v := m.suggested_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedName returns the old "suggested_name" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldSuggestedName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedName: %w", err)
	}
	return oldValue.SuggestedName, nil
}

// ClearSuggestedName clears the value of the "suggested_name" field.
func (m *DetectedPatternMutation) ClearSuggestedName() {
	m.suggested_name = nil
	m.clearedFields[detectedpattern.FieldSuggestedName] = struct{}{}
}

// SuggestedNameCleared returns if the "suggested_name" field was cleared in this mutation.
func (m *DetectedPatternMutation) SuggestedNameCleared() bool {
	_, ok := m.clearedFields[detectedpattern.FieldSuggestedName]
	return ok
}

// ResetSuggestedName resets all changes to the "suggested_name" field.
func (m *DetectedPatternMutation) ResetSuggestedName() {
	m.suggested_name = nil
	delete(m.clearedFields, detectedpattern.FieldSuggestedName)
}

// SetSuggestedDescription sets the "suggested_description" field.
func (m *DetectedPatternMutation) SetSuggestedDescription(s string) {
	m.suggested_description = &s
}

// SuggestedDescription returns the value of the "suggested_description" field in the mutation.
func (m *DetectedPatternMutation) SuggestedDescription() (r string, exists bool) {
	v := m.suggested_description
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedDescription returns the old "suggested_description" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldSuggestedDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedDescription: %w", err)
	}
	return oldValue.SuggestedDescription, nil
}

// ClearSuggestedDescription clears the value of the "suggested_description" field.
func (m *DetectedPatternMutation) ClearSuggestedDescription() {
	m.suggested_description = nil
	m.clearedFields[detectedpattern.FieldSuggestedDescription] = struct{}{}
}

// SuggestedDescriptionCleared returns if the "suggested_description" field was cleared in this mutation.
func (m *DetectedPatternMutation) SuggestedDescriptionCleared() bool {
	_, ok := m.clearedFields[detectedpattern.FieldSuggestedDescription]
	return ok
}

// ResetSuggestedDescription resets all changes to the "suggested_description" field.
func (m *DetectedPatternMutation) ResetSuggestedDescription() {
	m.suggested_description = nil
	delete(m.clearedFields, detectedpattern.FieldSuggestedDescription)
}

// SetFirstSeen sets the "first_seen" field.
func (m *DetectedPatternMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *DetectedPatternMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *DetectedPatternMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *DetectedPatternMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *DetectedPatternMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *DetectedPatternMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetStatus sets the "status" field.
func (m *DetectedPatternMutation) SetStatus(d detectedpattern.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DetectedPatternMutation) Status() (r detectedpattern.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldStatus(ctx context.Context) (v detectedpattern.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DetectedPatternMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DetectedPatternMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DetectedPatternMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DetectedPatternMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DetectedPatternMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DetectedPatternMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DetectedPattern entity.
// If the DetectedPattern object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedPatternMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DetectedPatternMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DetectedPatternMutation builder.
func (m *DetectedPatternMutation) Where(ps ...predicate.DetectedPattern) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DetectedPatternMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DetectedPatternMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DetectedPattern, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DetectedPatternMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DetectedPatternMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DetectedPattern).
func (m *DetectedPatternMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DetectedPatternMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.org_id != nil {
		fields = append(fields, detectedpattern.FieldOrgID)
	}
	if m.intent_sequence != nil {
		fields = append(fields, detectedpattern.FieldIntentSequence)
	}
	if m.structural_hashes != nil {
		fields = append(fields, detectedpattern.FieldStructuralHashes)
	}
	if m.occurrences != nil {
		fields = append(fields, detectedpattern.FieldOccurrences)
	}
	if m.confidence != nil {
		fields = append(fields, detectedpattern.FieldConfidence)
	}
	if m.suggested_name != nil {
		fields = append(fields, detectedpattern.FieldSuggestedName)
	}
	if m.suggested_description != nil {
		fields = append(fields, detectedpattern.FieldSuggestedDescription)
	}
	if m.first_seen != nil {
		fields = append(fields, detectedpattern.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, detectedpattern.FieldLastSeen)
	}
	if m.status != nil {
		fields = append(fields, detectedpattern.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, detectedpattern.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, detectedpattern.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DetectedPatternMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case detectedpattern.FieldOrgID:
		return m.OrgID()
	case detectedpattern.FieldIntentSequence:
		return m.IntentSequence()
	case detectedpattern.FieldStructuralHashes:
		return m.StructuralHashes()
	case detectedpattern.FieldOccurrences:
		return m.Occurrences()
	case detectedpattern.FieldConfidence:
		return m.Confidence()
	case detectedpattern.FieldSuggestedName:
		return m.SuggestedName()
	case detectedpattern.FieldSuggestedDescription:
		return m.SuggestedDescription()
	case detectedpattern.FieldFirstSeen:
		return m.FirstSeen()
	case detectedpattern.FieldLastSeen:
		return m.LastSeen()
	case detectedpattern.FieldStatus:
		return m.Status()
	case detectedpattern.FieldCreatedAt:
		return m.CreatedAt()
	case detectedpattern.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DetectedPatternMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case detectedpattern.FieldOrgID:
		return m.OldOrgID(ctx)
	case detectedpattern.FieldIntentSequence:
		return m.OldIntentSequence(ctx)
	case detectedpattern.FieldStructuralHashes:
		return m.OldStructuralHashes(ctx)
	case detectedpattern.FieldOccurrences:
		return m.OldOccurrences(ctx)
	case detectedpattern.FieldConfidence:
		return m.OldConfidence(ctx)
	case detectedpattern.FieldSuggestedName:
		return m.OldSuggestedName(ctx)
	case detectedpattern.FieldSuggestedDescription:
		return m.OldSuggestedDescription(ctx)
	case detectedpattern.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case detectedpattern.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case detectedpattern.FieldStatus:
		return m.OldStatus(ctx)
	case detectedpattern.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case detectedpattern.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DetectedPattern field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectedPatternMutation) SetField(name string, value ent.Value) error {
	switch name {
	case detectedpattern.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case detectedpattern.FieldIntentSequence:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentSequence(v)
		return nil
	case detectedpattern.FieldStructuralHashes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuralHashes(v)
		return nil
	case detectedpattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrences(v)
		return nil
	case detectedpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case detectedpattern.FieldSuggestedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedName(v)
		return nil
	case detectedpattern.FieldSuggestedDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedDescription(v)
		return nil
	case detectedpattern.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case detectedpattern.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case detectedpattern.FieldStatus:
		v, ok := value.(detectedpattern.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case detectedpattern.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case detectedpattern.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DetectedPattern field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DetectedPatternMutation) AddedFields() []string {
	var fields []string
	if m.addoccurrences != nil {
		fields = append(fields, detectedpattern.FieldOccurrences)
	}
	if m.addconfidence != nil {
		fields = append(fields, detectedpattern.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DetectedPatternMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case detectedpattern.FieldOccurrences:
		return m.AddedOccurrences()
	case detectedpattern.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectedPatternMutation) AddField(name string, value ent.Value) error {
	switch name {
	case detectedpattern.FieldOccurrences:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrences(v)
		return nil
	case detectedpattern.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DetectedPattern numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DetectedPatternMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(detectedpattern.FieldSuggestedName) {
		fields = append(fields, detectedpattern.FieldSuggestedName)
	}
	if m.FieldCleared(detectedpattern.FieldSuggestedDescription) {
		fields = append(fields, detectedpattern.FieldSuggestedDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DetectedPatternMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DetectedPatternMutation) ClearField(name string) error {
	switch name {
	case detectedpattern.FieldSuggestedName:
		m.ClearSuggestedName()
		return nil
	case detectedpattern.FieldSuggestedDescription:
		m.ClearSuggestedDescription()
		return nil
	}
	return fmt.Errorf("unknown DetectedPattern nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DetectedPatternMutation) ResetField(name string) error {
	switch name {
	case detectedpattern.FieldOrgID:
		m.ResetOrgID()
		return nil
	case detectedpattern.FieldIntentSequence:
		m.ResetIntentSequence()
		return nil
	case detectedpattern.FieldStructuralHashes:
		m.ResetStructuralHashes()
		return nil
	case detectedpattern.FieldOccurrences:
		m.ResetOccurrences()
		return nil
	case detectedpattern.FieldConfidence:
		m.ResetConfidence()
		return nil
	case detectedpattern.FieldSuggestedName:
		m.ResetSuggestedName()
		return nil
	case detectedpattern.FieldSuggestedDescription:
		m.ResetSuggestedDescription()
		return nil
	case detectedpattern.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case detectedpattern.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case detectedpattern.FieldStatus:
		m.ResetStatus()
		return nil
	case detectedpattern.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case detectedpattern.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DetectedPattern field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DetectedPatternMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DetectedPatternMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DetectedPatternMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DetectedPatternMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DetectedPatternMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DetectedPatternMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DetectedPatternMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DetectedPattern unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DetectedPatternMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DetectedPattern edge %s", name)
}

// ExecutionMutation represents an operation that mutates the Execution nodes in the graph.
type ExecutionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	ghost_id      *string
	status        *execution.Status
	parameters    *map[string]interface{}
	trigger       *string
	step_count    *int
	addstep_count *int
	started_at    *time.Time
	completed_at  *time.Time
	error         *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Execution, error)
	predicates    []predicate.Execution
}

var _ ent.Mutation = (*ExecutionMutation)(nil)

// executionOption allows management of the mutation configuration using functional options.
type executionOption func(*ExecutionMutation)

// newExecutionMutation creates new mutation for the Execution entity.
func newExecutionMutation(c config, op Op, opts ...executionOption) *ExecutionMutation {
	m := &ExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionID sets the ID field of the mutation.
func withExecutionID(id string) executionOption {
	return func(m *ExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Execution
		)
		m.oldValue = func(ctx context.Context) (*Execution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Execution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecution sets the old Execution of the mutation.
func withExecution(node *Execution) executionOption {
	return func(m *ExecutionMutation) {
		m.oldValue = func(context.Context) (*Execution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Execution entities.
func (m *ExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Execution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGhostID sets the "ghost_id" field.
func (m *ExecutionMutation) SetGhostID(s string) {
	m.ghost_id = &s
}

// GhostID returns the value of the "ghost_id" field in the mutation.
func (m *ExecutionMutation) GhostID() (r string, exists bool) {
	v := m.ghost_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGhostID returns the old "ghost_id" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldGhostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGhostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGhostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGhostID: %w", err)
	}
	return oldValue.GhostID, nil
}

// ResetGhostID resets all changes to the "ghost_id" field.
func (m *ExecutionMutation) ResetGhostID() {
	m.ghost_id = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionMutation) SetStatus(e execution.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionMutation) Status() (r execution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStatus(ctx context.Context) (v execution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetParameters sets the "parameters" field.
func (m *ExecutionMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *ExecutionMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *ExecutionMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[execution.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *ExecutionMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[execution.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *ExecutionMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, execution.FieldParameters)
}

// SetTrigger sets the "trigger" field.
func (m *ExecutionMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *ExecutionMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ClearTrigger clears the value of the "trigger" field.
func (m *ExecutionMutation) ClearTrigger() {
	m.trigger = nil
	m.clearedFields[execution.FieldTrigger] = struct{}{}
}

// TriggerCleared returns if the "trigger" field was cleared in this mutation.
func (m *ExecutionMutation) TriggerCleared() bool {
	_, ok := m.clearedFields[execution.FieldTrigger]
	return ok
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *ExecutionMutation) ResetTrigger() {
	m.trigger = nil
	delete(m.clearedFields, execution.FieldTrigger)
}

// SetStepCount sets the "step_count" field.
func (m *ExecutionMutation) SetStepCount(i int) {
	m.step_count = &i
	m.addstep_count = nil
}

// StepCount returns the value of the "step_count" field in the mutation.
func (m *ExecutionMutation) StepCount() (r int, exists bool) {
	v := m.step_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStepCount returns the old "step_count" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStepCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepCount: %w", err)
	}
	return oldValue.StepCount, nil
}

// AddStepCount adds i to the "step_count" field.
func (m *ExecutionMutation) AddStepCount(i int) {
	if m.addstep_count != nil {
		*m.addstep_count += i
	} else {
		m.addstep_count = &i
	}
}

// AddedStepCount returns the value that was added to the "step_count" field in this mutation.
func (m *ExecutionMutation) AddedStepCount() (r int, exists bool) {
	v := m.addstep_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepCount resets all changes to the "step_count" field.
func (m *ExecutionMutation) ResetStepCount() {
	m.step_count = nil
	m.addstep_count = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[execution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[execution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, execution.FieldCompletedAt)
}

// SetError sets the "error" field.
func (m *ExecutionMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ExecutionMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Execution entity.
// If the Execution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ExecutionMutation) ClearError() {
	m.error = nil
	m.clearedFields[execution.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ExecutionMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[execution.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ExecutionMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, execution.FieldError)
}

// Where appends a list predicates to the ExecutionMutation builder.
func (m *ExecutionMutation) Where(ps ...predicate.Execution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Execution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Execution).
func (m *ExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.ghost_id != nil {
		fields = append(fields, execution.FieldGhostID)
	}
	if m.status != nil {
		fields = append(fields, execution.FieldStatus)
	}
	if m.parameters != nil {
		fields = append(fields, execution.FieldParameters)
	}
	if m.trigger != nil {
		fields = append(fields, execution.FieldTrigger)
	}
	if m.step_count != nil {
		fields = append(fields, execution.FieldStepCount)
	}
	if m.started_at != nil {
		fields = append(fields, execution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.error != nil {
		fields = append(fields, execution.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldGhostID:
		return m.GhostID()
	case execution.FieldStatus:
		return m.Status()
	case execution.FieldParameters:
		return m.Parameters()
	case execution.FieldTrigger:
		return m.Trigger()
	case execution.FieldStepCount:
		return m.StepCount()
	case execution.FieldStartedAt:
		return m.StartedAt()
	case execution.FieldCompletedAt:
		return m.CompletedAt()
	case execution.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case execution.FieldGhostID:
		return m.OldGhostID(ctx)
	case execution.FieldStatus:
		return m.OldStatus(ctx)
	case execution.FieldParameters:
		return m.OldParameters(ctx)
	case execution.FieldTrigger:
		return m.OldTrigger(ctx)
	case execution.FieldStepCount:
		return m.OldStepCount(ctx)
	case execution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case execution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case execution.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown Execution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case execution.FieldGhostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGhostID(v)
		return nil
	case execution.FieldStatus:
		v, ok := value.(execution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case execution.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case execution.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case execution.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepCount(v)
		return nil
	case execution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case execution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case execution.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstep_count != nil {
		fields = append(fields, execution.FieldStepCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case execution.FieldStepCount:
		return m.AddedStepCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case execution.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepCount(v)
		return nil
	}
	return fmt.Errorf("unknown Execution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(execution.FieldParameters) {
		fields = append(fields, execution.FieldParameters)
	}
	if m.FieldCleared(execution.FieldTrigger) {
		fields = append(fields, execution.FieldTrigger)
	}
	if m.FieldCleared(execution.FieldCompletedAt) {
		fields = append(fields, execution.FieldCompletedAt)
	}
	if m.FieldCleared(execution.FieldError) {
		fields = append(fields, execution.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMutation) ClearField(name string) error {
	switch name {
	case execution.FieldParameters:
		m.ClearParameters()
		return nil
	case execution.FieldTrigger:
		m.ClearTrigger()
		return nil
	case execution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case execution.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown Execution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMutation) ResetField(name string) error {
	switch name {
	case execution.FieldGhostID:
		m.ResetGhostID()
		return nil
	case execution.FieldStatus:
		m.ResetStatus()
		return nil
	case execution.FieldParameters:
		m.ResetParameters()
		return nil
	case execution.FieldTrigger:
		m.ResetTrigger()
		return nil
	case execution.FieldStepCount:
		m.ResetStepCount()
		return nil
	case execution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case execution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case execution.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown Execution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Execution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Execution edge %s", name)
}

// ExecutionLogMutation represents an operation that mutates the ExecutionLog nodes in the graph.
type ExecutionLogMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	execution_id          *string
	ghost_id              *string
	org_id                *string
	status                *string
	steps                 *int
	addsteps              *int
	duration_ms           *int
	addduration_ms        *int
	strategies_used       *[]string
	appendstrategies_used []string
	logged_at             *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ExecutionLog, error)
	predicates            []predicate.ExecutionLog
}

var _ ent.Mutation = (*ExecutionLogMutation)(nil)

// executionlogOption allows management of the mutation configuration using functional options.
type executionlogOption func(*ExecutionLogMutation)

// newExecutionLogMutation creates new mutation for the ExecutionLog entity.
func newExecutionLogMutation(c config, op Op, opts ...executionlogOption) *ExecutionLogMutation {
	m := &ExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionLogID sets the ID field of the mutation.
func withExecutionLogID(id string) executionlogOption {
	return func(m *ExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionLog sets the old ExecutionLog of the mutation.
func withExecutionLog(node *ExecutionLog) executionlogOption {
	return func(m *ExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionLog entities.
func (m *ExecutionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ExecutionLogMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ExecutionLogMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ExecutionLogMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetGhostID sets the "ghost_id" field.
func (m *ExecutionLogMutation) SetGhostID(s string) {
	m.ghost_id = &s
}

// GhostID returns the value of the "ghost_id" field in the mutation.
func (m *ExecutionLogMutation) GhostID() (r string, exists bool) {
	v := m.ghost_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGhostID returns the old "ghost_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldGhostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGhostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGhostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGhostID: %w", err)
	}
	return oldValue.GhostID, nil
}

// ResetGhostID resets all changes to the "ghost_id" field.
func (m *ExecutionLogMutation) ResetGhostID() {
	m.ghost_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *ExecutionLogMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ExecutionLogMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ExecutionLogMutation) ResetOrgID() {
	m.org_id = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionLogMutation) ResetStatus() {
	m.status = nil
}

// SetSteps sets the "steps" field.
func (m *ExecutionLogMutation) SetSteps(i int) {
	m.steps = &i
	m.addsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *ExecutionLogMutation) Steps() (r int, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AddSteps adds i to the "steps" field.
func (m *ExecutionLogMutation) AddSteps(i int) {
	if m.addsteps != nil {
		*m.addsteps += i
	} else {
		m.addsteps = &i
	}
}

// AddedSteps returns the value that was added to the "steps" field in this mutation.
func (m *ExecutionLogMutation) AddedSteps() (r int, exists bool) {
	v := m.addsteps
	if v == nil {
		return
	}
	return *v, true
}

// ResetSteps resets all changes to the "steps" field.
func (m *ExecutionLogMutation) ResetSteps() {
	m.steps = nil
	m.addsteps = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExecutionLogMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExecutionLogMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExecutionLogMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExecutionLogMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExecutionLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetStrategiesUsed sets the "strategies_used" field.
func (m *ExecutionLogMutation) SetStrategiesUsed(s []string) {
	m.strategies_used = &s
	m.appendstrategies_used = nil
}

// StrategiesUsed returns the value of the "strategies_used" field in the mutation.
func (m *ExecutionLogMutation) StrategiesUsed() (r []string, exists bool) {
	v := m.strategies_used
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategiesUsed returns the old "strategies_used" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldStrategiesUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategiesUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategiesUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategiesUsed: %w", err)
	}
	return oldValue.StrategiesUsed, nil
}

// AppendStrategiesUsed adds s to the "strategies_used" field.
func (m *ExecutionLogMutation) AppendStrategiesUsed(s []string) {
	m.appendstrategies_used = append(m.appendstrategies_used, s...)
}

// AppendedStrategiesUsed returns the list of values that were appended to the "strategies_used" field in this mutation.
func (m *ExecutionLogMutation) AppendedStrategiesUsed() ([]string, bool) {
	if len(m.appendstrategies_used) == 0 {
		return nil, false
	}
	return m.appendstrategies_used, true
}

// ResetStrategiesUsed resets all changes to the "strategies_used" field.
func (m *ExecutionLogMutation) ResetStrategiesUsed() {
	m.strategies_used = nil
	m.appendstrategies_used = nil
}

// SetLoggedAt sets the "logged_at" field.
func (m *ExecutionLogMutation) SetLoggedAt(t time.Time) {
	m.logged_at = &t
}

// LoggedAt returns the value of the "logged_at" field in the mutation.
func (m *ExecutionLogMutation) LoggedAt() (r time.Time, exists bool) {
	v := m.logged_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLoggedAt returns the old "logged_at" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldLoggedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoggedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoggedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoggedAt: %w", err)
	}
	return oldValue.LoggedAt, nil
}

// ResetLoggedAt resets all changes to the "logged_at" field.
func (m *ExecutionLogMutation) ResetLoggedAt() {
	m.logged_at = nil
}

// Where appends a list predicates to the ExecutionLogMutation builder.
func (m *ExecutionLogMutation) Where(ps ...predicate.ExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionLog).
func (m *ExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.execution_id != nil {
		fields = append(fields, executionlog.FieldExecutionID)
	}
	if m.ghost_id != nil {
		fields = append(fields, executionlog.FieldGhostID)
	}
	if m.org_id != nil {
		fields = append(fields, executionlog.FieldOrgID)
	}
	if m.status != nil {
		fields = append(fields, executionlog.FieldStatus)
	}
	if m.steps != nil {
		fields = append(fields, executionlog.FieldSteps)
	}
	if m.duration_ms != nil {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	if m.strategies_used != nil {
		fields = append(fields, executionlog.FieldStrategiesUsed)
	}
	if m.logged_at != nil {
		fields = append(fields, executionlog.FieldLoggedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldExecutionID:
		return m.ExecutionID()
	case executionlog.FieldGhostID:
		return m.GhostID()
	case executionlog.FieldOrgID:
		return m.OrgID()
	case executionlog.FieldStatus:
		return m.Status()
	case executionlog.FieldSteps:
		return m.Steps()
	case executionlog.FieldDurationMs:
		return m.DurationMs()
	case executionlog.FieldStrategiesUsed:
		return m.StrategiesUsed()
	case executionlog.FieldLoggedAt:
		return m.LoggedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionlog.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case executionlog.FieldGhostID:
		return m.OldGhostID(ctx)
	case executionlog.FieldOrgID:
		return m.OldOrgID(ctx)
	case executionlog.FieldStatus:
		return m.OldStatus(ctx)
	case executionlog.FieldSteps:
		return m.OldSteps(ctx)
	case executionlog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case executionlog.FieldStrategiesUsed:
		return m.OldStrategiesUsed(ctx)
	case executionlog.FieldLoggedAt:
		return m.OldLoggedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case executionlog.FieldGhostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGhostID(v)
		return nil
	case executionlog.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case executionlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionlog.FieldSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case executionlog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case executionlog.FieldStrategiesUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategiesUsed(v)
		return nil
	case executionlog.FieldLoggedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoggedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionLogMutation) AddedFields() []string {
	var fields []string
	if m.addsteps != nil {
		fields = append(fields, executionlog.FieldSteps)
	}
	if m.addduration_ms != nil {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldSteps:
		return m.AddedSteps()
	case executionlog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSteps(v)
		return nil
	case executionlog.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionLogMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ResetField(name string) error {
	switch name {
	case executionlog.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case executionlog.FieldGhostID:
		m.ResetGhostID()
		return nil
	case executionlog.FieldOrgID:
		m.ResetOrgID()
		return nil
	case executionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case executionlog.FieldSteps:
		m.ResetSteps()
		return nil
	case executionlog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case executionlog.FieldStrategiesUsed:
		m.ResetStrategiesUsed()
		return nil
	case executionlog.FieldLoggedAt:
		m.ResetLoggedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExecutionLog edge %s", name)
}

// ExecutionStepMutation represents an operation that mutates the ExecutionStep nodes in the graph.
type ExecutionStepMutation struct {
	config
	op             Op
	typ            string
	id             *string
	execution_id   *string
	node_id        *string
	status         *executionstep.Status
	strategy       *string
	duration_ms    *int
	addduration_ms *int
	output         *map[string]interface{}
	error          *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ExecutionStep, error)
	predicates     []predicate.ExecutionStep
}

var _ ent.Mutation = (*ExecutionStepMutation)(nil)

// executionstepOption allows management of the mutation configuration using functional options.
type executionstepOption func(*ExecutionStepMutation)

// newExecutionStepMutation creates new mutation for the ExecutionStep entity.
func newExecutionStepMutation(c config, op Op, opts ...executionstepOption) *ExecutionStepMutation {
	m := &ExecutionStepMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionStepID sets the ID field of the mutation.
func withExecutionStepID(id string) executionstepOption {
	return func(m *ExecutionStepMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionStep
		)
		m.oldValue = func(ctx context.Context) (*ExecutionStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionStep sets the old ExecutionStep of the mutation.
func withExecutionStep(node *ExecutionStep) executionstepOption {
	return func(m *ExecutionStepMutation) {
		m.oldValue = func(context.Context) (*ExecutionStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionStep entities.
func (m *ExecutionStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ExecutionStepMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ExecutionStepMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ExecutionStepMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *ExecutionStepMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *ExecutionStepMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *ExecutionStepMutation) ResetNodeID() {
	m.node_id = nil
}

// SetStatus sets the "status" field.
func (m *ExecutionStepMutation) SetStatus(e executionstep.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionStepMutation) Status() (r executionstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldStatus(ctx context.Context) (v executionstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionStepMutation) ResetStatus() {
	m.status = nil
}

// SetStrategy sets the "strategy" field.
func (m *ExecutionStepMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *ExecutionStepMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *ExecutionStepMutation) ResetStrategy() {
	m.strategy = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExecutionStepMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExecutionStepMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExecutionStepMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExecutionStepMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExecutionStepMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetOutput sets the "output" field.
func (m *ExecutionStepMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *ExecutionStepMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ExecutionStepMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[executionstep.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ExecutionStepMutation) OutputCleared() bool {
	_, ok := m.clearedFields[executionstep.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ExecutionStepMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, executionstep.FieldOutput)
}

// SetError sets the "error" field.
func (m *ExecutionStepMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ExecutionStepMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ExecutionStepMutation) ClearError() {
	m.error = nil
	m.clearedFields[executionstep.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ExecutionStepMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[executionstep.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ExecutionStepMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, executionstep.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionStep entity.
// If the ExecutionStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExecutionStepMutation builder.
func (m *ExecutionStepMutation) Where(ps ...predicate.ExecutionStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionStep).
func (m *ExecutionStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionStepMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.execution_id != nil {
		fields = append(fields, executionstep.FieldExecutionID)
	}
	if m.node_id != nil {
		fields = append(fields, executionstep.FieldNodeID)
	}
	if m.status != nil {
		fields = append(fields, executionstep.FieldStatus)
	}
	if m.strategy != nil {
		fields = append(fields, executionstep.FieldStrategy)
	}
	if m.duration_ms != nil {
		fields = append(fields, executionstep.FieldDurationMs)
	}
	if m.output != nil {
		fields = append(fields, executionstep.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, executionstep.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, executionstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionstep.FieldExecutionID:
		return m.ExecutionID()
	case executionstep.FieldNodeID:
		return m.NodeID()
	case executionstep.FieldStatus:
		return m.Status()
	case executionstep.FieldStrategy:
		return m.Strategy()
	case executionstep.FieldDurationMs:
		return m.DurationMs()
	case executionstep.FieldOutput:
		return m.Output()
	case executionstep.FieldError:
		return m.Error()
	case executionstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionstep.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case executionstep.FieldNodeID:
		return m.OldNodeID(ctx)
	case executionstep.FieldStatus:
		return m.OldStatus(ctx)
	case executionstep.FieldStrategy:
		return m.OldStrategy(ctx)
	case executionstep.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case executionstep.FieldOutput:
		return m.OldOutput(ctx)
	case executionstep.FieldError:
		return m.OldError(ctx)
	case executionstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionstep.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case executionstep.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case executionstep.FieldStatus:
		v, ok := value.(executionstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionstep.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case executionstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case executionstep.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case executionstep.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case executionstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionStepMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, executionstep.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionstep.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionstep.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionstep.FieldOutput) {
		fields = append(fields, executionstep.FieldOutput)
	}
	if m.FieldCleared(executionstep.FieldError) {
		fields = append(fields, executionstep.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionStepMutation) ClearField(name string) error {
	switch name {
	case executionstep.FieldOutput:
		m.ClearOutput()
		return nil
	case executionstep.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown ExecutionStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionStepMutation) ResetField(name string) error {
	switch name {
	case executionstep.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case executionstep.FieldNodeID:
		m.ResetNodeID()
		return nil
	case executionstep.FieldStatus:
		m.ResetStatus()
		return nil
	case executionstep.FieldStrategy:
		m.ResetStrategy()
		return nil
	case executionstep.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case executionstep.FieldOutput:
		m.ResetOutput()
		return nil
	case executionstep.FieldError:
		m.ResetError()
		return nil
	case executionstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionStepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionStepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionStepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExecutionStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionStepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExecutionStep edge %s", name)
}

// GhostMutation represents an operation that mutates the Ghost nodes in the graph.
type GhostMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	org_id               *string
	name                 *string
	description          *string
	version              *int
	addversion           *int
	status               *ghost.Status
	trigger              *models.GhostTrigger
	parameters           *[]models.GhostParameter
	appendparameters     []models.GhostParameter
	execution_plan       *[]models.ExecutionNode
	appendexecution_plan []models.ExecutionNode
	confidence           *float64
	addconfidence        *float64
	source_pattern_id    *string
	created_by           *string
	approved_by          *string
	is_active            *bool
	usage_stats          *map[string]interface{}
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Ghost, error)
	predicates           []predicate.Ghost
}

var _ ent.Mutation = (*GhostMutation)(nil)

// ghostOption allows management of the mutation configuration using functional options.
type ghostOption func(*GhostMutation)

// newGhostMutation creates new mutation for the Ghost entity.
func newGhostMutation(c config, op Op, opts ...ghostOption) *GhostMutation {
	m := &GhostMutation{
		config:        c,
		op:            op,
		typ:           TypeGhost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGhostID sets the ID field of the mutation.
func withGhostID(id string) ghostOption {
	return func(m *GhostMutation) {
		var (
			err   error
			once  sync.Once
			value *Ghost
		)
		m.oldValue = func(ctx context.Context) (*Ghost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ghost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGhost sets the old Ghost of the mutation.
func withGhost(node *Ghost) ghostOption {
	return func(m *GhostMutation) {
		m.oldValue = func(context.Context) (*Ghost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GhostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GhostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Ghost entities.
func (m *GhostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GhostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GhostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ghost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *GhostMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *GhostMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *GhostMutation) ResetOrgID() {
	m.org_id = nil
}

// SetName sets the "name" field.
func (m *GhostMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GhostMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GhostMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *GhostMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GhostMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *GhostMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[ghost.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *GhostMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[ghost.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *GhostMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, ghost.FieldDescription)
}

// SetVersion sets the "version" field.
func (m *GhostMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *GhostMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *GhostMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *GhostMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *GhostMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *GhostMutation) SetStatus(gh ghost.Status) {
	m.status = &gh
}

// Status returns the value of the "status" field in the mutation.
func (m *GhostMutation) Status() (r ghost.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldStatus(ctx context.Context) (v ghost.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *GhostMutation) ResetStatus() {
	m.status = nil
}

// SetTrigger sets the "trigger" field.
func (m *GhostMutation) SetTrigger(mt models.GhostTrigger) {
	m.trigger = &mt
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *GhostMutation) Trigger() (r models.GhostTrigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldTrigger(ctx context.Context) (v models.GhostTrigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ClearTrigger clears the value of the "trigger" field.
func (m *GhostMutation) ClearTrigger() {
	m.trigger = nil
	m.clearedFields[ghost.FieldTrigger] = struct{}{}
}

// TriggerCleared returns if the "trigger" field was cleared in this mutation.
func (m *GhostMutation) TriggerCleared() bool {
	_, ok := m.clearedFields[ghost.FieldTrigger]
	return ok
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *GhostMutation) ResetTrigger() {
	m.trigger = nil
	delete(m.clearedFields, ghost.FieldTrigger)
}

// SetParameters sets the "parameters" field.
func (m *GhostMutation) SetParameters(mp []models.GhostParameter) {
	m.parameters = &mp
	m.appendparameters = nil
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *GhostMutation) Parameters() (r []models.GhostParameter, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldParameters(ctx context.Context) (v []models.GhostParameter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// AppendParameters adds mp to the "parameters" field.
func (m *GhostMutation) AppendParameters(mp []models.GhostParameter) {
	m.appendparameters = append(m.appendparameters, mp...)
}

// AppendedParameters returns the list of values that were appended to the "parameters" field in this mutation.
func (m *GhostMutation) AppendedParameters() ([]models.GhostParameter, bool) {
	if len(m.appendparameters) == 0 {
		return nil, false
	}
	return m.appendparameters, true
}

// ClearParameters clears the value of the "parameters" field.
func (m *GhostMutation) ClearParameters() {
	m.parameters = nil
	m.appendparameters = nil
	m.clearedFields[ghost.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *GhostMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[ghost.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *GhostMutation) ResetParameters() {
	m.parameters = nil
	m.appendparameters = nil
	delete(m.clearedFields, ghost.FieldParameters)
}

// SetExecutionPlan sets the "execution_plan" field.
func (m *GhostMutation) SetExecutionPlan(mn []models.ExecutionNode) {
	m.execution_plan = &mn
	m.appendexecution_plan = nil
}

// ExecutionPlan returns the value of the "execution_plan" field in the mutation.
func (m *GhostMutation) ExecutionPlan() (r []models.ExecutionNode, exists bool) {
	v := m.execution_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionPlan returns the old "execution_plan" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldExecutionPlan(ctx context.Context) (v []models.ExecutionNode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionPlan: %w", err)
	}
	return oldValue.ExecutionPlan, nil
}

// AppendExecutionPlan adds mn to the "execution_plan" field.
func (m *GhostMutation) AppendExecutionPlan(mn []models.ExecutionNode) {
	m.appendexecution_plan = append(m.appendexecution_plan, mn...)
}

// AppendedExecutionPlan returns the list of values that were appended to the "execution_plan" field in this mutation.
func (m *GhostMutation) AppendedExecutionPlan() ([]models.ExecutionNode, bool) {
	if len(m.appendexecution_plan) == 0 {
		return nil, false
	}
	return m.appendexecution_plan, true
}

// ClearExecutionPlan clears the value of the "execution_plan" field.
func (m *GhostMutation) ClearExecutionPlan() {
	m.execution_plan = nil
	m.appendexecution_plan = nil
	m.clearedFields[ghost.FieldExecutionPlan] = struct{}{}
}

// ExecutionPlanCleared returns if the "execution_plan" field was cleared in this mutation.
func (m *GhostMutation) ExecutionPlanCleared() bool {
	_, ok := m.clearedFields[ghost.FieldExecutionPlan]
	return ok
}

// ResetExecutionPlan resets all changes to the "execution_plan" field.
func (m *GhostMutation) ResetExecutionPlan() {
	m.execution_plan = nil
	m.appendexecution_plan = nil
	delete(m.clearedFields, ghost.FieldExecutionPlan)
}

// SetConfidence sets the "confidence" field.
func (m *GhostMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *GhostMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *GhostMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *GhostMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *GhostMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[ghost.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *GhostMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[ghost.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *GhostMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, ghost.FieldConfidence)
}

// SetSourcePatternID sets the "source_pattern_id" field.
func (m *GhostMutation) SetSourcePatternID(s string) {
	m.source_pattern_id = &s
}

// SourcePatternID returns the value of the "source_pattern_id" field in the mutation.
func (m *GhostMutation) SourcePatternID() (r string, exists bool) {
	v := m.source_pattern_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePatternID returns the old "source_pattern_id" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldSourcePatternID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePatternID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePatternID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePatternID: %w", err)
	}
	return oldValue.SourcePatternID, nil
}

// ClearSourcePatternID clears the value of the "source_pattern_id" field.
func (m *GhostMutation) ClearSourcePatternID() {
	m.source_pattern_id = nil
	m.clearedFields[ghost.FieldSourcePatternID] = struct{}{}
}

// SourcePatternIDCleared returns if the "source_pattern_id" field was cleared in this mutation.
func (m *GhostMutation) SourcePatternIDCleared() bool {
	_, ok := m.clearedFields[ghost.FieldSourcePatternID]
	return ok
}

// ResetSourcePatternID resets all changes to the "source_pattern_id" field.
func (m *GhostMutation) ResetSourcePatternID() {
	m.source_pattern_id = nil
	delete(m.clearedFields, ghost.FieldSourcePatternID)
}

// SetCreatedBy sets the "created_by" field.
func (m *GhostMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *GhostMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *GhostMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[ghost.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *GhostMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[ghost.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *GhostMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, ghost.FieldCreatedBy)
}

// SetApprovedBy sets the "approved_by" field.
func (m *GhostMutation) SetApprovedBy(s string) {
	m.approved_by = &s
}

// ApprovedBy returns the value of the "approved_by" field in the mutation.
func (m *GhostMutation) ApprovedBy() (r string, exists bool) {
	v := m.approved_by
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedBy returns the old "approved_by" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldApprovedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedBy: %w", err)
	}
	return oldValue.ApprovedBy, nil
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (m *GhostMutation) ClearApprovedBy() {
	m.approved_by = nil
	m.clearedFields[ghost.FieldApprovedBy] = struct{}{}
}

// ApprovedByCleared returns if the "approved_by" field was cleared in this mutation.
func (m *GhostMutation) ApprovedByCleared() bool {
	_, ok := m.clearedFields[ghost.FieldApprovedBy]
	return ok
}

// ResetApprovedBy resets all changes to the "approved_by" field.
func (m *GhostMutation) ResetApprovedBy() {
	m.approved_by = nil
	delete(m.clearedFields, ghost.FieldApprovedBy)
}

// SetIsActive sets the "is_active" field.
func (m *GhostMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *GhostMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *GhostMutation) ResetIsActive() {
	m.is_active = nil
}

// SetUsageStats sets the "usage_stats" field.
func (m *GhostMutation) SetUsageStats(value map[string]interface{}) {
	m.usage_stats = &value
}

// UsageStats returns the value of the "usage_stats" field in the mutation.
func (m *GhostMutation) UsageStats() (r map[string]interface{}, exists bool) {
	v := m.usage_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageStats returns the old "usage_stats" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldUsageStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageStats: %w", err)
	}
	return oldValue.UsageStats, nil
}

// ClearUsageStats clears the value of the "usage_stats" field.
func (m *GhostMutation) ClearUsageStats() {
	m.usage_stats = nil
	m.clearedFields[ghost.FieldUsageStats] = struct{}{}
}

// UsageStatsCleared returns if the "usage_stats" field was cleared in this mutation.
func (m *GhostMutation) UsageStatsCleared() bool {
	_, ok := m.clearedFields[ghost.FieldUsageStats]
	return ok
}

// ResetUsageStats resets all changes to the "usage_stats" field.
func (m *GhostMutation) ResetUsageStats() {
	m.usage_stats = nil
	delete(m.clearedFields, ghost.FieldUsageStats)
}

// SetCreatedAt sets the "created_at" field.
func (m *GhostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GhostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GhostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GhostMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GhostMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Ghost entity.
// If the Ghost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GhostMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GhostMutation builder.
func (m *GhostMutation) Where(ps ...predicate.Ghost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GhostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GhostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ghost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GhostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GhostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ghost).
func (m *GhostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GhostMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.org_id != nil {
		fields = append(fields, ghost.FieldOrgID)
	}
	if m.name != nil {
		fields = append(fields, ghost.FieldName)
	}
	if m.description != nil {
		fields = append(fields, ghost.FieldDescription)
	}
	if m.version != nil {
		fields = append(fields, ghost.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, ghost.FieldStatus)
	}
	if m.trigger != nil {
		fields = append(fields, ghost.FieldTrigger)
	}
	if m.parameters != nil {
		fields = append(fields, ghost.FieldParameters)
	}
	if m.execution_plan != nil {
		fields = append(fields, ghost.FieldExecutionPlan)
	}
	if m.confidence != nil {
		fields = append(fields, ghost.FieldConfidence)
	}
	if m.source_pattern_id != nil {
		fields = append(fields, ghost.FieldSourcePatternID)
	}
	if m.created_by != nil {
		fields = append(fields, ghost.FieldCreatedBy)
	}
	if m.approved_by != nil {
		fields = append(fields, ghost.FieldApprovedBy)
	}
	if m.is_active != nil {
		fields = append(fields, ghost.FieldIsActive)
	}
	if m.usage_stats != nil {
		fields = append(fields, ghost.FieldUsageStats)
	}
	if m.created_at != nil {
		fields = append(fields, ghost.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ghost.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GhostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ghost.FieldOrgID:
		return m.OrgID()
	case ghost.FieldName:
		return m.Name()
	case ghost.FieldDescription:
		return m.Description()
	case ghost.FieldVersion:
		return m.Version()
	case ghost.FieldStatus:
		return m.Status()
	case ghost.FieldTrigger:
		return m.Trigger()
	case ghost.FieldParameters:
		return m.Parameters()
	case ghost.FieldExecutionPlan:
		return m.ExecutionPlan()
	case ghost.FieldConfidence:
		return m.Confidence()
	case ghost.FieldSourcePatternID:
		return m.SourcePatternID()
	case ghost.FieldCreatedBy:
		return m.CreatedBy()
	case ghost.FieldApprovedBy:
		return m.ApprovedBy()
	case ghost.FieldIsActive:
		return m.IsActive()
	case ghost.FieldUsageStats:
		return m.UsageStats()
	case ghost.FieldCreatedAt:
		return m.CreatedAt()
	case ghost.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GhostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ghost.FieldOrgID:
		return m.OldOrgID(ctx)
	case ghost.FieldName:
		return m.OldName(ctx)
	case ghost.FieldDescription:
		return m.OldDescription(ctx)
	case ghost.FieldVersion:
		return m.OldVersion(ctx)
	case ghost.FieldStatus:
		return m.OldStatus(ctx)
	case ghost.FieldTrigger:
		return m.OldTrigger(ctx)
	case ghost.FieldParameters:
		return m.OldParameters(ctx)
	case ghost.FieldExecutionPlan:
		return m.OldExecutionPlan(ctx)
	case ghost.FieldConfidence:
		return m.OldConfidence(ctx)
	case ghost.FieldSourcePatternID:
		return m.OldSourcePatternID(ctx)
	case ghost.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case ghost.FieldApprovedBy:
		return m.OldApprovedBy(ctx)
	case ghost.FieldIsActive:
		return m.OldIsActive(ctx)
	case ghost.FieldUsageStats:
		return m.OldUsageStats(ctx)
	case ghost.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ghost.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Ghost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ghost.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case ghost.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case ghost.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case ghost.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case ghost.FieldStatus:
		v, ok := value.(ghost.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ghost.FieldTrigger:
		v, ok := value.(models.GhostTrigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case ghost.FieldParameters:
		v, ok := value.([]models.GhostParameter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case ghost.FieldExecutionPlan:
		v, ok := value.([]models.ExecutionNode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionPlan(v)
		return nil
	case ghost.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case ghost.FieldSourcePatternID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePatternID(v)
		return nil
	case ghost.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case ghost.FieldApprovedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedBy(v)
		return nil
	case ghost.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case ghost.FieldUsageStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageStats(v)
		return nil
	case ghost.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ghost.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Ghost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GhostMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, ghost.FieldVersion)
	}
	if m.addconfidence != nil {
		fields = append(fields, ghost.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GhostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ghost.FieldVersion:
		return m.AddedVersion()
	case ghost.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ghost.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case ghost.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Ghost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GhostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ghost.FieldDescription) {
		fields = append(fields, ghost.FieldDescription)
	}
	if m.FieldCleared(ghost.FieldTrigger) {
		fields = append(fields, ghost.FieldTrigger)
	}
	if m.FieldCleared(ghost.FieldParameters) {
		fields = append(fields, ghost.FieldParameters)
	}
	if m.FieldCleared(ghost.FieldExecutionPlan) {
		fields = append(fields, ghost.FieldExecutionPlan)
	}
	if m.FieldCleared(ghost.FieldConfidence) {
		fields = append(fields, ghost.FieldConfidence)
	}
	if m.FieldCleared(ghost.FieldSourcePatternID) {
		fields = append(fields, ghost.FieldSourcePatternID)
	}
	if m.FieldCleared(ghost.FieldCreatedBy) {
		fields = append(fields, ghost.FieldCreatedBy)
	}
	if m.FieldCleared(ghost.FieldApprovedBy) {
		fields = append(fields, ghost.FieldApprovedBy)
	}
	if m.FieldCleared(ghost.FieldUsageStats) {
		fields = append(fields, ghost.FieldUsageStats)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GhostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GhostMutation) ClearField(name string) error {
	switch name {
	case ghost.FieldDescription:
		m.ClearDescription()
		return nil
	case ghost.FieldTrigger:
		m.ClearTrigger()
		return nil
	case ghost.FieldParameters:
		m.ClearParameters()
		return nil
	case ghost.FieldExecutionPlan:
		m.ClearExecutionPlan()
		return nil
	case ghost.FieldConfidence:
		m.ClearConfidence()
		return nil
	case ghost.FieldSourcePatternID:
		m.ClearSourcePatternID()
		return nil
	case ghost.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case ghost.FieldApprovedBy:
		m.ClearApprovedBy()
		return nil
	case ghost.FieldUsageStats:
		m.ClearUsageStats()
		return nil
	}
	return fmt.Errorf("unknown Ghost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GhostMutation) ResetField(name string) error {
	switch name {
	case ghost.FieldOrgID:
		m.ResetOrgID()
		return nil
	case ghost.FieldName:
		m.ResetName()
		return nil
	case ghost.FieldDescription:
		m.ResetDescription()
		return nil
	case ghost.FieldVersion:
		m.ResetVersion()
		return nil
	case ghost.FieldStatus:
		m.ResetStatus()
		return nil
	case ghost.FieldTrigger:
		m.ResetTrigger()
		return nil
	case ghost.FieldParameters:
		m.ResetParameters()
		return nil
	case ghost.FieldExecutionPlan:
		m.ResetExecutionPlan()
		return nil
	case ghost.FieldConfidence:
		m.ResetConfidence()
		return nil
	case ghost.FieldSourcePatternID:
		m.ResetSourcePatternID()
		return nil
	case ghost.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case ghost.FieldApprovedBy:
		m.ResetApprovedBy()
		return nil
	case ghost.FieldIsActive:
		m.ResetIsActive()
		return nil
	case ghost.FieldUsageStats:
		m.ResetUsageStats()
		return nil
	case ghost.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ghost.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Ghost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GhostMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GhostMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GhostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GhostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GhostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GhostMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GhostMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Ghost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GhostMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Ghost edge %s", name)
}

// GhostVersionMutation represents an operation that mutates the GhostVersion nodes in the graph.
type GhostVersionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	ghost_id             *string
	version              *int
	addversion           *int
	execution_plan       *[]models.ExecutionNode
	appendexecution_plan []models.ExecutionNode
	parameters           *[]models.GhostParameter
	appendparameters     []models.GhostParameter
	trigger              *models.GhostTrigger
	change_description   *string
	created_by           *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*GhostVersion, error)
	predicates           []predicate.GhostVersion
}

var _ ent.Mutation = (*GhostVersionMutation)(nil)

// ghostversionOption allows management of the mutation configuration using functional options.
type ghostversionOption func(*GhostVersionMutation)

// newGhostVersionMutation creates new mutation for the GhostVersion entity.
func newGhostVersionMutation(c config, op Op, opts ...ghostversionOption) *GhostVersionMutation {
	m := &GhostVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeGhostVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGhostVersionID sets the ID field of the mutation.
func withGhostVersionID(id string) ghostversionOption {
	return func(m *GhostVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *GhostVersion
		)
		m.oldValue = func(ctx context.Context) (*GhostVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GhostVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGhostVersion sets the old GhostVersion of the mutation.
func withGhostVersion(node *GhostVersion) ghostversionOption {
	return func(m *GhostVersionMutation) {
		m.oldValue = func(context.Context) (*GhostVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GhostVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GhostVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GhostVersion entities.
func (m *GhostVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GhostVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GhostVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GhostVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGhostID sets the "ghost_id" field.
func (m *GhostVersionMutation) SetGhostID(s string) {
	m.ghost_id = &s
}

// GhostID returns the value of the "ghost_id" field in the mutation.
func (m *GhostVersionMutation) GhostID() (r string, exists bool) {
	v := m.ghost_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGhostID returns the old "ghost_id" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldGhostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGhostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGhostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGhostID: %w", err)
	}
	return oldValue.GhostID, nil
}

// ResetGhostID resets all changes to the "ghost_id" field.
func (m *GhostVersionMutation) ResetGhostID() {
	m.ghost_id = nil
}

// SetVersion sets the "version" field.
func (m *GhostVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *GhostVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *GhostVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *GhostVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *GhostVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetExecutionPlan sets the "execution_plan" field.
func (m *GhostVersionMutation) SetExecutionPlan(mn []models.ExecutionNode) {
	m.execution_plan = &mn
	m.appendexecution_plan = nil
}

// ExecutionPlan returns the value of the "execution_plan" field in the mutation.
func (m *GhostVersionMutation) ExecutionPlan() (r []models.ExecutionNode, exists bool) {
	v := m.execution_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionPlan returns the old "execution_plan" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldExecutionPlan(ctx context.Context) (v []models.ExecutionNode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionPlan: %w", err)
	}
	return oldValue.ExecutionPlan, nil
}

// AppendExecutionPlan adds mn to the "execution_plan" field.
func (m *GhostVersionMutation) AppendExecutionPlan(mn []models.ExecutionNode) {
	m.appendexecution_plan = append(m.appendexecution_plan, mn...)
}

// AppendedExecutionPlan returns the list of values that were appended to the "execution_plan" field in this mutation.
func (m *GhostVersionMutation) AppendedExecutionPlan() ([]models.ExecutionNode, bool) {
	if len(m.appendexecution_plan) == 0 {
		return nil, false
	}
	return m.appendexecution_plan, true
}

// ClearExecutionPlan clears the value of the "execution_plan" field.
func (m *GhostVersionMutation) ClearExecutionPlan() {
	m.execution_plan = nil
	m.appendexecution_plan = nil
	m.clearedFields[ghostversion.FieldExecutionPlan] = struct{}{}
}

// ExecutionPlanCleared returns if the "execution_plan" field was cleared in this mutation.
func (m *GhostVersionMutation) ExecutionPlanCleared() bool {
	_, ok := m.clearedFields[ghostversion.FieldExecutionPlan]
	return ok
}

// ResetExecutionPlan resets all changes to the "execution_plan" field.
func (m *GhostVersionMutation) ResetExecutionPlan() {
	m.execution_plan = nil
	m.appendexecution_plan = nil
	delete(m.clearedFields, ghostversion.FieldExecutionPlan)
}

// SetParameters sets the "parameters" field.
func (m *GhostVersionMutation) SetParameters(mp []models.GhostParameter) {
	m.parameters = &mp
	m.appendparameters = nil
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *GhostVersionMutation) Parameters() (r []models.GhostParameter, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldParameters(ctx context.Context) (v []models.GhostParameter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// AppendParameters adds mp to the "parameters" field.
func (m *GhostVersionMutation) AppendParameters(mp []models.GhostParameter) {
	m.appendparameters = append(m.appendparameters, mp...)
}

// AppendedParameters returns the list of values that were appended to the "parameters" field in this mutation.
func (m *GhostVersionMutation) AppendedParameters() ([]models.GhostParameter, bool) {
	if len(m.appendparameters) == 0 {
		return nil, false
	}
	return m.appendparameters, true
}

// ClearParameters clears the value of the "parameters" field.
func (m *GhostVersionMutation) ClearParameters() {
	m.parameters = nil
	m.appendparameters = nil
	m.clearedFields[ghostversion.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *GhostVersionMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[ghostversion.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *GhostVersionMutation) ResetParameters() {
	m.parameters = nil
	m.appendparameters = nil
	delete(m.clearedFields, ghostversion.FieldParameters)
}

// SetTrigger sets the "trigger" field.
func (m *GhostVersionMutation) SetTrigger(mt models.GhostTrigger) {
	m.trigger = &mt
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *GhostVersionMutation) Trigger() (r models.GhostTrigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldTrigger(ctx context.Context) (v models.GhostTrigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ClearTrigger clears the value of the "trigger" field.
func (m *GhostVersionMutation) ClearTrigger() {
	m.trigger = nil
	m.clearedFields[ghostversion.FieldTrigger] = struct{}{}
}

// TriggerCleared returns if the "trigger" field was cleared in this mutation.
func (m *GhostVersionMutation) TriggerCleared() bool {
	_, ok := m.clearedFields[ghostversion.FieldTrigger]
	return ok
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *GhostVersionMutation) ResetTrigger() {
	m.trigger = nil
	delete(m.clearedFields, ghostversion.FieldTrigger)
}

// SetChangeDescription sets the "change_description" field.
func (m *GhostVersionMutation) SetChangeDescription(s string) {
	m.change_description = &s
}

// ChangeDescription returns the value of the "change_description" field in the mutation.
func (m *GhostVersionMutation) ChangeDescription() (r string, exists bool) {
	v := m.change_description
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeDescription returns the old "change_description" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldChangeDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeDescription: %w", err)
	}
	return oldValue.ChangeDescription, nil
}

// ClearChangeDescription clears the value of the "change_description" field.
func (m *GhostVersionMutation) ClearChangeDescription() {
	m.change_description = nil
	m.clearedFields[ghostversion.FieldChangeDescription] = struct{}{}
}

// ChangeDescriptionCleared returns if the "change_description" field was cleared in this mutation.
func (m *GhostVersionMutation) ChangeDescriptionCleared() bool {
	_, ok := m.clearedFields[ghostversion.FieldChangeDescription]
	return ok
}

// ResetChangeDescription resets all changes to the "change_description" field.
func (m *GhostVersionMutation) ResetChangeDescription() {
	m.change_description = nil
	delete(m.clearedFields, ghostversion.FieldChangeDescription)
}

// SetCreatedBy sets the "created_by" field.
func (m *GhostVersionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *GhostVersionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *GhostVersionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[ghostversion.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *GhostVersionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[ghostversion.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *GhostVersionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, ghostversion.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *GhostVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GhostVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GhostVersion entity.
// If the GhostVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GhostVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GhostVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GhostVersionMutation builder.
func (m *GhostVersionMutation) Where(ps ...predicate.GhostVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GhostVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GhostVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GhostVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GhostVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GhostVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GhostVersion).
func (m *GhostVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GhostVersionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.ghost_id != nil {
		fields = append(fields, ghostversion.FieldGhostID)
	}
	if m.version != nil {
		fields = append(fields, ghostversion.FieldVersion)
	}
	if m.execution_plan != nil {
		fields = append(fields, ghostversion.FieldExecutionPlan)
	}
	if m.parameters != nil {
		fields = append(fields, ghostversion.FieldParameters)
	}
	if m.trigger != nil {
		fields = append(fields, ghostversion.FieldTrigger)
	}
	if m.change_description != nil {
		fields = append(fields, ghostversion.FieldChangeDescription)
	}
	if m.created_by != nil {
		fields = append(fields, ghostversion.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, ghostversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GhostVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ghostversion.FieldGhostID:
		return m.GhostID()
	case ghostversion.FieldVersion:
		return m.Version()
	case ghostversion.FieldExecutionPlan:
		return m.ExecutionPlan()
	case ghostversion.FieldParameters:
		return m.Parameters()
	case ghostversion.FieldTrigger:
		return m.Trigger()
	case ghostversion.FieldChangeDescription:
		return m.ChangeDescription()
	case ghostversion.FieldCreatedBy:
		return m.CreatedBy()
	case ghostversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GhostVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ghostversion.FieldGhostID:
		return m.OldGhostID(ctx)
	case ghostversion.FieldVersion:
		return m.OldVersion(ctx)
	case ghostversion.FieldExecutionPlan:
		return m.OldExecutionPlan(ctx)
	case ghostversion.FieldParameters:
		return m.OldParameters(ctx)
	case ghostversion.FieldTrigger:
		return m.OldTrigger(ctx)
	case ghostversion.FieldChangeDescription:
		return m.OldChangeDescription(ctx)
	case ghostversion.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case ghostversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GhostVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ghostversion.FieldGhostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGhostID(v)
		return nil
	case ghostversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case ghostversion.FieldExecutionPlan:
		v, ok := value.([]models.ExecutionNode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionPlan(v)
		return nil
	case ghostversion.FieldParameters:
		v, ok := value.([]models.GhostParameter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case ghostversion.FieldTrigger:
		v, ok := value.(models.GhostTrigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case ghostversion.FieldChangeDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeDescription(v)
		return nil
	case ghostversion.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case ghostversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GhostVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GhostVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, ghostversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GhostVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ghostversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GhostVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ghostversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown GhostVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GhostVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ghostversion.FieldExecutionPlan) {
		fields = append(fields, ghostversion.FieldExecutionPlan)
	}
	if m.FieldCleared(ghostversion.FieldParameters) {
		fields = append(fields, ghostversion.FieldParameters)
	}
	if m.FieldCleared(ghostversion.FieldTrigger) {
		fields = append(fields, ghostversion.FieldTrigger)
	}
	if m.FieldCleared(ghostversion.FieldChangeDescription) {
		fields = append(fields, ghostversion.FieldChangeDescription)
	}
	if m.FieldCleared(ghostversion.FieldCreatedBy) {
		fields = append(fields, ghostversion.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GhostVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GhostVersionMutation) ClearField(name string) error {
	switch name {
	case ghostversion.FieldExecutionPlan:
		m.ClearExecutionPlan()
		return nil
	case ghostversion.FieldParameters:
		m.ClearParameters()
		return nil
	case ghostversion.FieldTrigger:
		m.ClearTrigger()
		return nil
	case ghostversion.FieldChangeDescription:
		m.ClearChangeDescription()
		return nil
	case ghostversion.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown GhostVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GhostVersionMutation) ResetField(name string) error {
	switch name {
	case ghostversion.FieldGhostID:
		m.ResetGhostID()
		return nil
	case ghostversion.FieldVersion:
		m.ResetVersion()
		return nil
	case ghostversion.FieldExecutionPlan:
		m.ResetExecutionPlan()
		return nil
	case ghostversion.FieldParameters:
		m.ResetParameters()
		return nil
	case ghostversion.FieldTrigger:
		m.ResetTrigger()
		return nil
	case ghostversion.FieldChangeDescription:
		m.ResetChangeDescription()
		return nil
	case ghostversion.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case ghostversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GhostVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GhostVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GhostVersionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GhostVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GhostVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GhostVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GhostVersionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GhostVersionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GhostVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GhostVersionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GhostVersion edge %s", name)
}

// OrgSettingsMutation represents an operation that mutates the OrgSettings nodes in the graph.
type OrgSettingsMutation struct {
	config
	op                              Op
	typ                             string
	id                              *string
	settings                        *map[string]interface{}
	auto_approve_threshold          *float64
	addauto_approve_threshold       *float64
	max_executions_per_minute       *int
	addmax_executions_per_minute    *int
	llm_provider                    *string
	llm_model                       *string
	require_approval_above_value    *float64
	addrequire_approval_above_value *float64
	clearedFields                   map[string]struct{}
	done                            bool
	oldValue                        func(context.Context) (*OrgSettings, error)
	predicates                      []predicate.OrgSettings
}

var _ ent.Mutation = (*OrgSettingsMutation)(nil)

// orgsettingsOption allows management of the mutation configuration using functional options.
type orgsettingsOption func(*OrgSettingsMutation)

// newOrgSettingsMutation creates new mutation for the OrgSettings entity.
func newOrgSettingsMutation(c config, op Op, opts ...orgsettingsOption) *OrgSettingsMutation {
	m := &OrgSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeOrgSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrgSettingsID sets the ID field of the mutation.
func withOrgSettingsID(id string) orgsettingsOption {
	return func(m *OrgSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *OrgSettings
		)
		m.oldValue = func(ctx context.Context) (*OrgSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrgSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrgSettings sets the old OrgSettings of the mutation.
func withOrgSettings(node *OrgSettings) orgsettingsOption {
	return func(m *OrgSettingsMutation) {
		m.oldValue = func(context.Context) (*OrgSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrgSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrgSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrgSettings entities.
func (m *OrgSettingsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrgSettingsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrgSettingsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrgSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSettings sets the "settings" field.
func (m *OrgSettingsMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *OrgSettingsMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the OrgSettings entity.
// If the OrgSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgSettingsMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *OrgSettingsMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[orgsettings.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *OrgSettingsMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[orgsettings.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *OrgSettingsMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, orgsettings.FieldSettings)
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (m *OrgSettingsMutation) SetAutoApproveThreshold(f float64) {
	m.auto_approve_threshold = &f
	m.addauto_approve_threshold = nil
}

// AutoApproveThreshold returns the value of the "auto_approve_threshold" field in the mutation.
func (m *OrgSettingsMutation) AutoApproveThreshold() (r float64, exists bool) {
	v := m.auto_approve_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoApproveThreshold returns the old "auto_approve_threshold" field's value of the OrgSettings entity.
// If the OrgSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgSettingsMutation) OldAutoApproveThreshold(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoApproveThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoApproveThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoApproveThreshold: %w", err)
	}
	return oldValue.AutoApproveThreshold, nil
}

// AddAutoApproveThreshold adds f to the "auto_approve_threshold" field.
func (m *OrgSettingsMutation) AddAutoApproveThreshold(f float64) {
	if m.addauto_approve_threshold != nil {
		*m.addauto_approve_threshold += f
	} else {
		m.addauto_approve_threshold = &f
	}
}

// AddedAutoApproveThreshold returns the value that was added to the "auto_approve_threshold" field in this mutation.
func (m *OrgSettingsMutation) AddedAutoApproveThreshold() (r float64, exists bool) {
	v := m.addauto_approve_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetAutoApproveThreshold resets all changes to the "auto_approve_threshold" field.
func (m *OrgSettingsMutation) ResetAutoApproveThreshold() {
	m.auto_approve_threshold = nil
	m.addauto_approve_threshold = nil
}

// SetMaxExecutionsPerMinute sets the "max_executions_per_minute" field.
func (m *OrgSettingsMutation) SetMaxExecutionsPerMinute(i int) {
	m.max_executions_per_minute = &i
	m.addmax_executions_per_minute = nil
}

// MaxExecutionsPerMinute returns the value of the "max_executions_per_minute" field in the mutation.
func (m *OrgSettingsMutation) MaxExecutionsPerMinute() (r int, exists bool) {
	v := m.max_executions_per_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxExecutionsPerMinute returns the old "max_executions_per_minute" field's value of the OrgSettings entity.
// If the OrgSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgSettingsMutation) OldMaxExecutionsPerMinute(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxExecutionsPerMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxExecutionsPerMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxExecutionsPerMinute: %w", err)
	}
	return oldValue.MaxExecutionsPerMinute, nil
}

// AddMaxExecutionsPerMinute adds i to the "max_executions_per_minute" field.
func (m *OrgSettingsMutation) AddMaxExecutionsPerMinute(i int) {
	if m.addmax_executions_per_minute != nil {
		*m.addmax_executions_per_minute += i
	} else {
		m.addmax_executions_per_minute = &i
	}
}

// AddedMaxExecutionsPerMinute returns the value that was added to the "max_executions_per_minute" field in this mutation.
func (m *OrgSettingsMutation) AddedMaxExecutionsPerMinute() (r int, exists bool) {
	v := m.addmax_executions_per_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxExecutionsPerMinute resets all changes to the "max_executions_per_minute" field.
func (m *OrgSettingsMutation) ResetMaxExecutionsPerMinute() {
	m.max_executions_per_minute = nil
	m.addmax_executions_per_minute = nil
}

// SetLlmProvider sets the "llm_provider" field.
func (m *OrgSettingsMutation) SetLlmProvider(s string) {
	m.llm_provider = &s
}

// LlmProvider returns the value of the "llm_provider" field in the mutation.
func (m *OrgSettingsMutation) LlmProvider() (r string, exists bool) {
	v := m.llm_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmProvider returns the old "llm_provider" field's value of the OrgSettings entity.
// If the OrgSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgSettingsMutation) OldLlmProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmProvider: %w", err)
	}
	return oldValue.LlmProvider, nil
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (m *OrgSettingsMutation) ClearLlmProvider() {
	m.llm_provider = nil
	m.clearedFields[orgsettings.FieldLlmProvider] = struct{}{}
}

// LlmProviderCleared returns if the "llm_provider" field was cleared in this mutation.
func (m *OrgSettingsMutation) LlmProviderCleared() bool {
	_, ok := m.clearedFields[orgsettings.FieldLlmProvider]
	return ok
}

// ResetLlmProvider resets all changes to the "llm_provider" field.
func (m *OrgSettingsMutation) ResetLlmProvider() {
	m.llm_provider = nil
	delete(m.clearedFields, orgsettings.FieldLlmProvider)
}

// SetLlmModel sets the "llm_model" field.
func (m *OrgSettingsMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *OrgSettingsMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the OrgSettings entity.
// If the OrgSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgSettingsMutation) OldLlmModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ClearLlmModel clears the value of the "llm_model" field.
func (m *OrgSettingsMutation) ClearLlmModel() {
	m.llm_model = nil
	m.clearedFields[orgsettings.FieldLlmModel] = struct{}{}
}

// LlmModelCleared returns if the "llm_model" field was cleared in this mutation.
func (m *OrgSettingsMutation) LlmModelCleared() bool {
	_, ok := m.clearedFields[orgsettings.FieldLlmModel]
	return ok
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *OrgSettingsMutation) ResetLlmModel() {
	m.llm_model = nil
	delete(m.clearedFields, orgsettings.FieldLlmModel)
}

// SetRequireApprovalAboveValue sets the "require_approval_above_value" field.
func (m *OrgSettingsMutation) SetRequireApprovalAboveValue(f float64) {
	m.require_approval_above_value = &f
	m.addrequire_approval_above_value = nil
}

// RequireApprovalAboveValue returns the value of the "require_approval_above_value" field in the mutation.
func (m *OrgSettingsMutation) RequireApprovalAboveValue() (r float64, exists bool) {
	v := m.require_approval_above_value
	if v == nil {
		return
	}
	return *v, true
}

// OldRequireApprovalAboveValue returns the old "require_approval_above_value" field's value of the OrgSettings entity.
// If the OrgSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrgSettingsMutation) OldRequireApprovalAboveValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequireApprovalAboveValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequireApprovalAboveValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequireApprovalAboveValue: %w", err)
	}
	return oldValue.RequireApprovalAboveValue, nil
}

// AddRequireApprovalAboveValue adds f to the "require_approval_above_value" field.
func (m *OrgSettingsMutation) AddRequireApprovalAboveValue(f float64) {
	if m.addrequire_approval_above_value != nil {
		*m.addrequire_approval_above_value += f
	} else {
		m.addrequire_approval_above_value = &f
	}
}

// AddedRequireApprovalAboveValue returns the value that was added to the "require_approval_above_value" field in this mutation.
func (m *OrgSettingsMutation) AddedRequireApprovalAboveValue() (r float64, exists bool) {
	v := m.addrequire_approval_above_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearRequireApprovalAboveValue clears the value of the "require_approval_above_value" field.
func (m *OrgSettingsMutation) ClearRequireApprovalAboveValue() {
	m.require_approval_above_value = nil
	m.addrequire_approval_above_value = nil
	m.clearedFields[orgsettings.FieldRequireApprovalAboveValue] = struct{}{}
}

// RequireApprovalAboveValueCleared returns if the "require_approval_above_value" field was cleared in this mutation.
func (m *OrgSettingsMutation) RequireApprovalAboveValueCleared() bool {
	_, ok := m.clearedFields[orgsettings.FieldRequireApprovalAboveValue]
	return ok
}

// ResetRequireApprovalAboveValue resets all changes to the "require_approval_above_value" field.
func (m *OrgSettingsMutation) ResetRequireApprovalAboveValue() {
	m.require_approval_above_value = nil
	m.addrequire_approval_above_value = nil
	delete(m.clearedFields, orgsettings.FieldRequireApprovalAboveValue)
}

// Where appends a list predicates to the OrgSettingsMutation builder.
func (m *OrgSettingsMutation) Where(ps ...predicate.OrgSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrgSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrgSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrgSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrgSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrgSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrgSettings).
func (m *OrgSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrgSettingsMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.settings != nil {
		fields = append(fields, orgsettings.FieldSettings)
	}
	if m.auto_approve_threshold != nil {
		fields = append(fields, orgsettings.FieldAutoApproveThreshold)
	}
	if m.max_executions_per_minute != nil {
		fields = append(fields, orgsettings.FieldMaxExecutionsPerMinute)
	}
	if m.llm_provider != nil {
		fields = append(fields, orgsettings.FieldLlmProvider)
	}
	if m.llm_model != nil {
		fields = append(fields, orgsettings.FieldLlmModel)
	}
	if m.require_approval_above_value != nil {
		fields = append(fields, orgsettings.FieldRequireApprovalAboveValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrgSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orgsettings.FieldSettings:
		return m.Settings()
	case orgsettings.FieldAutoApproveThreshold:
		return m.AutoApproveThreshold()
	case orgsettings.FieldMaxExecutionsPerMinute:
		return m.MaxExecutionsPerMinute()
	case orgsettings.FieldLlmProvider:
		return m.LlmProvider()
	case orgsettings.FieldLlmModel:
		return m.LlmModel()
	case orgsettings.FieldRequireApprovalAboveValue:
		return m.RequireApprovalAboveValue()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrgSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orgsettings.FieldSettings:
		return m.OldSettings(ctx)
	case orgsettings.FieldAutoApproveThreshold:
		return m.OldAutoApproveThreshold(ctx)
	case orgsettings.FieldMaxExecutionsPerMinute:
		return m.OldMaxExecutionsPerMinute(ctx)
	case orgsettings.FieldLlmProvider:
		return m.OldLlmProvider(ctx)
	case orgsettings.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case orgsettings.FieldRequireApprovalAboveValue:
		return m.OldRequireApprovalAboveValue(ctx)
	}
	return nil, fmt.Errorf("unknown OrgSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orgsettings.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case orgsettings.FieldAutoApproveThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoApproveThreshold(v)
		return nil
	case orgsettings.FieldMaxExecutionsPerMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxExecutionsPerMinute(v)
		return nil
	case orgsettings.FieldLlmProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmProvider(v)
		return nil
	case orgsettings.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case orgsettings.FieldRequireApprovalAboveValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequireApprovalAboveValue(v)
		return nil
	}
	return fmt.Errorf("unknown OrgSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrgSettingsMutation) AddedFields() []string {
	var fields []string
	if m.addauto_approve_threshold != nil {
		fields = append(fields, orgsettings.FieldAutoApproveThreshold)
	}
	if m.addmax_executions_per_minute != nil {
		fields = append(fields, orgsettings.FieldMaxExecutionsPerMinute)
	}
	if m.addrequire_approval_above_value != nil {
		fields = append(fields, orgsettings.FieldRequireApprovalAboveValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrgSettingsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orgsettings.FieldAutoApproveThreshold:
		return m.AddedAutoApproveThreshold()
	case orgsettings.FieldMaxExecutionsPerMinute:
		return m.AddedMaxExecutionsPerMinute()
	case orgsettings.FieldRequireApprovalAboveValue:
		return m.AddedRequireApprovalAboveValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrgSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orgsettings.FieldAutoApproveThreshold:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAutoApproveThreshold(v)
		return nil
	case orgsettings.FieldMaxExecutionsPerMinute:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxExecutionsPerMinute(v)
		return nil
	case orgsettings.FieldRequireApprovalAboveValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequireApprovalAboveValue(v)
		return nil
	}
	return fmt.Errorf("unknown OrgSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrgSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orgsettings.FieldSettings) {
		fields = append(fields, orgsettings.FieldSettings)
	}
	if m.FieldCleared(orgsettings.FieldLlmProvider) {
		fields = append(fields, orgsettings.FieldLlmProvider)
	}
	if m.FieldCleared(orgsettings.FieldLlmModel) {
		fields = append(fields, orgsettings.FieldLlmModel)
	}
	if m.FieldCleared(orgsettings.FieldRequireApprovalAboveValue) {
		fields = append(fields, orgsettings.FieldRequireApprovalAboveValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrgSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrgSettingsMutation) ClearField(name string) error {
	switch name {
	case orgsettings.FieldSettings:
		m.ClearSettings()
		return nil
	case orgsettings.FieldLlmProvider:
		m.ClearLlmProvider()
		return nil
	case orgsettings.FieldLlmModel:
		m.ClearLlmModel()
		return nil
	case orgsettings.FieldRequireApprovalAboveValue:
		m.ClearRequireApprovalAboveValue()
		return nil
	}
	return fmt.Errorf("unknown OrgSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrgSettingsMutation) ResetField(name string) error {
	switch name {
	case orgsettings.FieldSettings:
		m.ResetSettings()
		return nil
	case orgsettings.FieldAutoApproveThreshold:
		m.ResetAutoApproveThreshold()
		return nil
	case orgsettings.FieldMaxExecutionsPerMinute:
		m.ResetMaxExecutionsPerMinute()
		return nil
	case orgsettings.FieldLlmProvider:
		m.ResetLlmProvider()
		return nil
	case orgsettings.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case orgsettings.FieldRequireApprovalAboveValue:
		m.ResetRequireApprovalAboveValue()
		return nil
	}
	return fmt.Errorf("unknown OrgSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrgSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrgSettingsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrgSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrgSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrgSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrgSettingsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrgSettingsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OrgSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrgSettingsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OrgSettings edge %s", name)
}

// SecureEventMutation represents an operation that mutates the SecureEvent nodes in the graph.
type SecureEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	session_fingerprint  *string
	timestamp_bucket     *string
	intent_vector        *[]float64
	appendintent_vector  []float64
	structural_hash      *string
	org_id               *string
	event_type           *secureevent.EventType
	intent_label         *string
	intent_confidence    *float64
	addintent_confidence *float64
	element_signature    *string
	sequence_number      *int
	addsequence_number   *int
	device_fingerprint   *string
	batch_id             *string
	ingested_at          *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SecureEvent, error)
	predicates           []predicate.SecureEvent
}

var _ ent.Mutation = (*SecureEventMutation)(nil)

// secureeventOption allows management of the mutation configuration using functional options.
type secureeventOption func(*SecureEventMutation)

// newSecureEventMutation creates new mutation for the SecureEvent entity.
func newSecureEventMutation(c config, op Op, opts ...secureeventOption) *SecureEventMutation {
	m := &SecureEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSecureEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSecureEventID sets the ID field of the mutation.
func withSecureEventID(id string) secureeventOption {
	return func(m *SecureEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SecureEvent
		)
		m.oldValue = func(ctx context.Context) (*SecureEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SecureEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSecureEvent sets the old SecureEvent of the mutation.
func withSecureEvent(node *SecureEvent) secureeventOption {
	return func(m *SecureEventMutation) {
		m.oldValue = func(context.Context) (*SecureEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SecureEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SecureEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SecureEvent entities.
func (m *SecureEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SecureEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SecureEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SecureEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionFingerprint sets the "session_fingerprint" field.
func (m *SecureEventMutation) SetSessionFingerprint(s string) {
	m.session_fingerprint = &s
}

// SessionFingerprint returns the value of the "session_fingerprint" field in the mutation.
func (m *SecureEventMutation) SessionFingerprint() (r string, exists bool) {
	v := m.session_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionFingerprint returns the old "session_fingerprint" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldSessionFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionFingerprint: %w", err)
	}
	return oldValue.SessionFingerprint, nil
}

// ResetSessionFingerprint resets all changes to the "session_fingerprint" field.
func (m *SecureEventMutation) ResetSessionFingerprint() {
	m.session_fingerprint = nil
}

// SetTimestampBucket sets the "timestamp_bucket" field.
func (m *SecureEventMutation) SetTimestampBucket(s string) {
	m.timestamp_bucket = &s
}

// TimestampBucket returns the value of the "timestamp_bucket" field in the mutation.
func (m *SecureEventMutation) TimestampBucket() (r string, exists bool) {
	v := m.timestamp_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampBucket returns the old "timestamp_bucket" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldTimestampBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampBucket: %w", err)
	}
	return oldValue.TimestampBucket, nil
}

// ResetTimestampBucket resets all changes to the "timestamp_bucket" field.
func (m *SecureEventMutation) ResetTimestampBucket() {
	m.timestamp_bucket = nil
}

// SetIntentVector sets the "intent_vector" field.
func (m *SecureEventMutation) SetIntentVector(f []float64) {
	m.intent_vector = &f
	m.appendintent_vector = nil
}

// IntentVector returns the value of the "intent_vector" field in the mutation.
func (m *SecureEventMutation) IntentVector() (r []float64, exists bool) {
	v := m.intent_vector
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentVector returns the old "intent_vector" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldIntentVector(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentVector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentVector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentVector: %w", err)
	}
	return oldValue.IntentVector, nil
}

// AppendIntentVector adds f to the "intent_vector" field.
func (m *SecureEventMutation) AppendIntentVector(f []float64) {
	m.appendintent_vector = append(m.appendintent_vector, f...)
}

// AppendedIntentVector returns the list of values that were appended to the "intent_vector" field in this mutation.
func (m *SecureEventMutation) AppendedIntentVector() ([]float64, bool) {
	if len(m.appendintent_vector) == 0 {
		return nil, false
	}
	return m.appendintent_vector, true
}

// ResetIntentVector resets all changes to the "intent_vector" field.
func (m *SecureEventMutation) ResetIntentVector() {
	m.intent_vector = nil
	m.appendintent_vector = nil
}

// SetStructuralHash sets the "structural_hash" field.
func (m *SecureEventMutation) SetStructuralHash(s string) {
	m.structural_hash = &s
}

// StructuralHash returns the value of the "structural_hash" field in the mutation.
func (m *SecureEventMutation) StructuralHash() (r string, exists bool) {
	v := m.structural_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuralHash returns the old "structural_hash" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldStructuralHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuralHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuralHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuralHash: %w", err)
	}
	return oldValue.StructuralHash, nil
}

// ClearStructuralHash clears the value of the "structural_hash" field.
func (m *SecureEventMutation) ClearStructuralHash() {
	m.structural_hash = nil
	m.clearedFields[secureevent.FieldStructuralHash] = struct{}{}
}

// StructuralHashCleared returns if the "structural_hash" field was cleared in this mutation.
func (m *SecureEventMutation) StructuralHashCleared() bool {
	_, ok := m.clearedFields[secureevent.FieldStructuralHash]
	return ok
}

// ResetStructuralHash resets all changes to the "structural_hash" field.
func (m *SecureEventMutation) ResetStructuralHash() {
	m.structural_hash = nil
	delete(m.clearedFields, secureevent.FieldStructuralHash)
}

// SetOrgID sets the "org_id" field.
func (m *SecureEventMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *SecureEventMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *SecureEventMutation) ResetOrgID() {
	m.org_id = nil
}

// SetEventType sets the "event_type" field.
func (m *SecureEventMutation) SetEventType(st secureevent.EventType) {
	m.event_type = &st
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SecureEventMutation) EventType() (r secureevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldEventType(ctx context.Context) (v secureevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SecureEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetIntentLabel sets the "intent_label" field.
func (m *SecureEventMutation) SetIntentLabel(s string) {
	m.intent_label = &s
}

// IntentLabel returns the value of the "intent_label" field in the mutation.
func (m *SecureEventMutation) IntentLabel() (r string, exists bool) {
	v := m.intent_label
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentLabel returns the old "intent_label" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldIntentLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentLabel: %w", err)
	}
	return oldValue.IntentLabel, nil
}

// ResetIntentLabel resets all changes to the "intent_label" field.
func (m *SecureEventMutation) ResetIntentLabel() {
	m.intent_label = nil
}

// SetIntentConfidence sets the "intent_confidence" field.
func (m *SecureEventMutation) SetIntentConfidence(f float64) {
	m.intent_confidence = &f
	m.addintent_confidence = nil
}

// IntentConfidence returns the value of the "intent_confidence" field in the mutation.
func (m *SecureEventMutation) IntentConfidence() (r float64, exists bool) {
	v := m.intent_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentConfidence returns the old "intent_confidence" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldIntentConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentConfidence: %w", err)
	}
	return oldValue.IntentConfidence, nil
}

// AddIntentConfidence adds f to the "intent_confidence" field.
func (m *SecureEventMutation) AddIntentConfidence(f float64) {
	if m.addintent_confidence != nil {
		*m.addintent_confidence += f
	} else {
		m.addintent_confidence = &f
	}
}

// AddedIntentConfidence returns the value that was added to the "intent_confidence" field in this mutation.
func (m *SecureEventMutation) AddedIntentConfidence() (r float64, exists bool) {
	v := m.addintent_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntentConfidence resets all changes to the "intent_confidence" field.
func (m *SecureEventMutation) ResetIntentConfidence() {
	m.intent_confidence = nil
	m.addintent_confidence = nil
}

// SetElementSignature sets the "element_signature" field.
func (m *SecureEventMutation) SetElementSignature(s string) {
	m.element_signature = &s
}

// ElementSignature returns the value of the "element_signature" field in the mutation.
func (m *SecureEventMutation) ElementSignature() (r string, exists bool) {
	v := m.element_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldElementSignature returns the old "element_signature" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldElementSignature(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElementSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElementSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElementSignature: %w", err)
	}
	return oldValue.ElementSignature, nil
}

// ClearElementSignature clears the value of the "element_signature" field.
func (m *SecureEventMutation) ClearElementSignature() {
	m.element_signature = nil
	m.clearedFields[secureevent.FieldElementSignature] = struct{}{}
}

// ElementSignatureCleared returns if the "element_signature" field was cleared in this mutation.
func (m *SecureEventMutation) ElementSignatureCleared() bool {
	_, ok := m.clearedFields[secureevent.FieldElementSignature]
	return ok
}

// ResetElementSignature resets all changes to the "element_signature" field.
func (m *SecureEventMutation) ResetElementSignature() {
	m.element_signature = nil
	delete(m.clearedFields, secureevent.FieldElementSignature)
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *SecureEventMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *SecureEventMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *SecureEventMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *SecureEventMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *SecureEventMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetDeviceFingerprint sets the "device_fingerprint" field.
func (m *SecureEventMutation) SetDeviceFingerprint(s string) {
	m.device_fingerprint = &s
}

// DeviceFingerprint returns the value of the "device_fingerprint" field in the mutation.
func (m *SecureEventMutation) DeviceFingerprint() (r string, exists bool) {
	v := m.device_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceFingerprint returns the old "device_fingerprint" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldDeviceFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceFingerprint: %w", err)
	}
	return oldValue.DeviceFingerprint, nil
}

// ResetDeviceFingerprint resets all changes to the "device_fingerprint" field.
func (m *SecureEventMutation) ResetDeviceFingerprint() {
	m.device_fingerprint = nil
}

// SetBatchID sets the "batch_id" field.
func (m *SecureEventMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *SecureEventMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *SecureEventMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetIngestedAt sets the "ingested_at" field.
func (m *SecureEventMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *SecureEventMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the SecureEvent entity.
// If the SecureEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SecureEventMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *SecureEventMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// Where appends a list predicates to the SecureEventMutation builder.
func (m *SecureEventMutation) Where(ps ...predicate.SecureEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SecureEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SecureEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SecureEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SecureEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SecureEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SecureEvent).
func (m *SecureEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SecureEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session_fingerprint != nil {
		fields = append(fields, secureevent.FieldSessionFingerprint)
	}
	if m.timestamp_bucket != nil {
		fields = append(fields, secureevent.FieldTimestampBucket)
	}
	if m.intent_vector != nil {
		fields = append(fields, secureevent.FieldIntentVector)
	}
	if m.structural_hash != nil {
		fields = append(fields, secureevent.FieldStructuralHash)
	}
	if m.org_id != nil {
		fields = append(fields, secureevent.FieldOrgID)
	}
	if m.event_type != nil {
		fields = append(fields, secureevent.FieldEventType)
	}
	if m.intent_label != nil {
		fields = append(fields, secureevent.FieldIntentLabel)
	}
	if m.intent_confidence != nil {
		fields = append(fields, secureevent.FieldIntentConfidence)
	}
	if m.element_signature != nil {
		fields = append(fields, secureevent.FieldElementSignature)
	}
	if m.sequence_number != nil {
		fields = append(fields, secureevent.FieldSequenceNumber)
	}
	if m.device_fingerprint != nil {
		fields = append(fields, secureevent.FieldDeviceFingerprint)
	}
	if m.batch_id != nil {
		fields = append(fields, secureevent.FieldBatchID)
	}
	if m.ingested_at != nil {
		fields = append(fields, secureevent.FieldIngestedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SecureEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case secureevent.FieldSessionFingerprint:
		return m.SessionFingerprint()
	case secureevent.FieldTimestampBucket:
		return m.TimestampBucket()
	case secureevent.FieldIntentVector:
		return m.IntentVector()
	case secureevent.FieldStructuralHash:
		return m.StructuralHash()
	case secureevent.FieldOrgID:
		return m.OrgID()
	case secureevent.FieldEventType:
		return m.EventType()
	case secureevent.FieldIntentLabel:
		return m.IntentLabel()
	case secureevent.FieldIntentConfidence:
		return m.IntentConfidence()
	case secureevent.FieldElementSignature:
		return m.ElementSignature()
	case secureevent.FieldSequenceNumber:
		return m.SequenceNumber()
	case secureevent.FieldDeviceFingerprint:
		return m.DeviceFingerprint()
	case secureevent.FieldBatchID:
		return m.BatchID()
	case secureevent.FieldIngestedAt:
		return m.IngestedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SecureEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case secureevent.FieldSessionFingerprint:
		return m.OldSessionFingerprint(ctx)
	case secureevent.FieldTimestampBucket:
		return m.OldTimestampBucket(ctx)
	case secureevent.FieldIntentVector:
		return m.OldIntentVector(ctx)
	case secureevent.FieldStructuralHash:
		return m.OldStructuralHash(ctx)
	case secureevent.FieldOrgID:
		return m.OldOrgID(ctx)
	case secureevent.FieldEventType:
		return m.OldEventType(ctx)
	case secureevent.FieldIntentLabel:
		return m.OldIntentLabel(ctx)
	case secureevent.FieldIntentConfidence:
		return m.OldIntentConfidence(ctx)
	case secureevent.FieldElementSignature:
		return m.OldElementSignature(ctx)
	case secureevent.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case secureevent.FieldDeviceFingerprint:
		return m.OldDeviceFingerprint(ctx)
	case secureevent.FieldBatchID:
		return m.OldBatchID(ctx)
	case secureevent.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SecureEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecureEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case secureevent.FieldSessionFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionFingerprint(v)
		return nil
	case secureevent.FieldTimestampBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampBucket(v)
		return nil
	case secureevent.FieldIntentVector:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentVector(v)
		return nil
	case secureevent.FieldStructuralHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuralHash(v)
		return nil
	case secureevent.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case secureevent.FieldEventType:
		v, ok := value.(secureevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case secureevent.FieldIntentLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentLabel(v)
		return nil
	case secureevent.FieldIntentConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentConfidence(v)
		return nil
	case secureevent.FieldElementSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElementSignature(v)
		return nil
	case secureevent.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case secureevent.FieldDeviceFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceFingerprint(v)
		return nil
	case secureevent.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case secureevent.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SecureEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SecureEventMutation) AddedFields() []string {
	var fields []string
	if m.addintent_confidence != nil {
		fields = append(fields, secureevent.FieldIntentConfidence)
	}
	if m.addsequence_number != nil {
		fields = append(fields, secureevent.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SecureEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case secureevent.FieldIntentConfidence:
		return m.AddedIntentConfidence()
	case secureevent.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SecureEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case secureevent.FieldIntentConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntentConfidence(v)
		return nil
	case secureevent.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown SecureEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SecureEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(secureevent.FieldStructuralHash) {
		fields = append(fields, secureevent.FieldStructuralHash)
	}
	if m.FieldCleared(secureevent.FieldElementSignature) {
		fields = append(fields, secureevent.FieldElementSignature)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SecureEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SecureEventMutation) ClearField(name string) error {
	switch name {
	case secureevent.FieldStructuralHash:
		m.ClearStructuralHash()
		return nil
	case secureevent.FieldElementSignature:
		m.ClearElementSignature()
		return nil
	}
	return fmt.Errorf("unknown SecureEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SecureEventMutation) ResetField(name string) error {
	switch name {
	case secureevent.FieldSessionFingerprint:
		m.ResetSessionFingerprint()
		return nil
	case secureevent.FieldTimestampBucket:
		m.ResetTimestampBucket()
		return nil
	case secureevent.FieldIntentVector:
		m.ResetIntentVector()
		return nil
	case secureevent.FieldStructuralHash:
		m.ResetStructuralHash()
		return nil
	case secureevent.FieldOrgID:
		m.ResetOrgID()
		return nil
	case secureevent.FieldEventType:
		m.ResetEventType()
		return nil
	case secureevent.FieldIntentLabel:
		m.ResetIntentLabel()
		return nil
	case secureevent.FieldIntentConfidence:
		m.ResetIntentConfidence()
		return nil
	case secureevent.FieldElementSignature:
		m.ResetElementSignature()
		return nil
	case secureevent.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case secureevent.FieldDeviceFingerprint:
		m.ResetDeviceFingerprint()
		return nil
	case secureevent.FieldBatchID:
		m.ResetBatchID()
		return nil
	case secureevent.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	}
	return fmt.Errorf("unknown SecureEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SecureEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SecureEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SecureEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SecureEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SecureEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SecureEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SecureEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SecureEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SecureEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SecureEvent edge %s", name)
}

// UserFeedbackMutation represents an operation that mutates the UserFeedback nodes in the graph.
type UserFeedbackMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	execution_id          *string
	ghost_id              *string
	org_id                *string
	user_id               *string
	satisfaction_score    *int
	addsatisfaction_score *int
	corrected_actions     *map[string]interface{}
	notes                 *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*UserFeedback, error)
	predicates            []predicate.UserFeedback
}

var _ ent.Mutation = (*UserFeedbackMutation)(nil)

// userfeedbackOption allows management of the mutation configuration using functional options.
type userfeedbackOption func(*UserFeedbackMutation)

// newUserFeedbackMutation creates new mutation for the UserFeedback entity.
func newUserFeedbackMutation(c config, op Op, opts ...userfeedbackOption) *UserFeedbackMutation {
	m := &UserFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeUserFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserFeedbackID sets the ID field of the mutation.
func withUserFeedbackID(id string) userfeedbackOption {
	return func(m *UserFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *UserFeedback
		)
		m.oldValue = func(ctx context.Context) (*UserFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserFeedback sets the old UserFeedback of the mutation.
func withUserFeedback(node *UserFeedback) userfeedbackOption {
	return func(m *UserFeedbackMutation) {
		m.oldValue = func(context.Context) (*UserFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserFeedback entities.
func (m *UserFeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserFeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserFeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *UserFeedbackMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *UserFeedbackMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *UserFeedbackMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetGhostID sets the "ghost_id" field.
func (m *UserFeedbackMutation) SetGhostID(s string) {
	m.ghost_id = &s
}

// GhostID returns the value of the "ghost_id" field in the mutation.
func (m *UserFeedbackMutation) GhostID() (r string, exists bool) {
	v := m.ghost_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGhostID returns the old "ghost_id" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldGhostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGhostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGhostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGhostID: %w", err)
	}
	return oldValue.GhostID, nil
}

// ResetGhostID resets all changes to the "ghost_id" field.
func (m *UserFeedbackMutation) ResetGhostID() {
	m.ghost_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *UserFeedbackMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *UserFeedbackMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *UserFeedbackMutation) ResetOrgID() {
	m.org_id = nil
}

// SetUserID sets the "user_id" field.
func (m *UserFeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserFeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserFeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetSatisfactionScore sets the "satisfaction_score" field.
func (m *UserFeedbackMutation) SetSatisfactionScore(i int) {
	m.satisfaction_score = &i
	m.addsatisfaction_score = nil
}

// SatisfactionScore returns the value of the "satisfaction_score" field in the mutation.
func (m *UserFeedbackMutation) SatisfactionScore() (r int, exists bool) {
	v := m.satisfaction_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSatisfactionScore returns the old "satisfaction_score" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldSatisfactionScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSatisfactionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSatisfactionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSatisfactionScore: %w", err)
	}
	return oldValue.SatisfactionScore, nil
}

// AddSatisfactionScore adds i to the "satisfaction_score" field.
func (m *UserFeedbackMutation) AddSatisfactionScore(i int) {
	if m.addsatisfaction_score != nil {
		*m.addsatisfaction_score += i
	} else {
		m.addsatisfaction_score = &i
	}
}

// AddedSatisfactionScore returns the value that was added to the "satisfaction_score" field in this mutation.
func (m *UserFeedbackMutation) AddedSatisfactionScore() (r int, exists bool) {
	v := m.addsatisfaction_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearSatisfactionScore clears the value of the "satisfaction_score" field.
func (m *UserFeedbackMutation) ClearSatisfactionScore() {
	m.satisfaction_score = nil
	m.addsatisfaction_score = nil
	m.clearedFields[userfeedback.FieldSatisfactionScore] = struct{}{}
}

// SatisfactionScoreCleared returns if the "satisfaction_score" field was cleared in this mutation.
func (m *UserFeedbackMutation) SatisfactionScoreCleared() bool {
	_, ok := m.clearedFields[userfeedback.FieldSatisfactionScore]
	return ok
}

// ResetSatisfactionScore resets all changes to the "satisfaction_score" field.
func (m *UserFeedbackMutation) ResetSatisfactionScore() {
	m.satisfaction_score = nil
	m.addsatisfaction_score = nil
	delete(m.clearedFields, userfeedback.FieldSatisfactionScore)
}

// SetCorrectedActions sets the "corrected_actions" field.
func (m *UserFeedbackMutation) SetCorrectedActions(value map[string]interface{}) {
	m.corrected_actions = &value
}

// CorrectedActions returns the value of the "corrected_actions" field in the mutation.
func (m *UserFeedbackMutation) CorrectedActions() (r map[string]interface{}, exists bool) {
	v := m.corrected_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedActions returns the old "corrected_actions" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldCorrectedActions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedActions: %w", err)
	}
	return oldValue.CorrectedActions, nil
}

// ClearCorrectedActions clears the value of the "corrected_actions" field.
func (m *UserFeedbackMutation) ClearCorrectedActions() {
	m.corrected_actions = nil
	m.clearedFields[userfeedback.FieldCorrectedActions] = struct{}{}
}

// CorrectedActionsCleared returns if the "corrected_actions" field was cleared in this mutation.
func (m *UserFeedbackMutation) CorrectedActionsCleared() bool {
	_, ok := m.clearedFields[userfeedback.FieldCorrectedActions]
	return ok
}

// ResetCorrectedActions resets all changes to the "corrected_actions" field.
func (m *UserFeedbackMutation) ResetCorrectedActions() {
	m.corrected_actions = nil
	delete(m.clearedFields, userfeedback.FieldCorrectedActions)
}

// SetNotes sets the "notes" field.
func (m *UserFeedbackMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *UserFeedbackMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *UserFeedbackMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[userfeedback.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *UserFeedbackMutation) NotesCleared() bool {
	_, ok := m.clearedFields[userfeedback.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *UserFeedbackMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, userfeedback.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserFeedback entity.
// If the UserFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserFeedbackMutation builder.
func (m *UserFeedbackMutation) Where(ps ...predicate.UserFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserFeedback).
func (m *UserFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.execution_id != nil {
		fields = append(fields, userfeedback.FieldExecutionID)
	}
	if m.ghost_id != nil {
		fields = append(fields, userfeedback.FieldGhostID)
	}
	if m.org_id != nil {
		fields = append(fields, userfeedback.FieldOrgID)
	}
	if m.user_id != nil {
		fields = append(fields, userfeedback.FieldUserID)
	}
	if m.satisfaction_score != nil {
		fields = append(fields, userfeedback.FieldSatisfactionScore)
	}
	if m.corrected_actions != nil {
		fields = append(fields, userfeedback.FieldCorrectedActions)
	}
	if m.notes != nil {
		fields = append(fields, userfeedback.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, userfeedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userfeedback.FieldExecutionID:
		return m.ExecutionID()
	case userfeedback.FieldGhostID:
		return m.GhostID()
	case userfeedback.FieldOrgID:
		return m.OrgID()
	case userfeedback.FieldUserID:
		return m.UserID()
	case userfeedback.FieldSatisfactionScore:
		return m.SatisfactionScore()
	case userfeedback.FieldCorrectedActions:
		return m.CorrectedActions()
	case userfeedback.FieldNotes:
		return m.Notes()
	case userfeedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userfeedback.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case userfeedback.FieldGhostID:
		return m.OldGhostID(ctx)
	case userfeedback.FieldOrgID:
		return m.OldOrgID(ctx)
	case userfeedback.FieldUserID:
		return m.OldUserID(ctx)
	case userfeedback.FieldSatisfactionScore:
		return m.OldSatisfactionScore(ctx)
	case userfeedback.FieldCorrectedActions:
		return m.OldCorrectedActions(ctx)
	case userfeedback.FieldNotes:
		return m.OldNotes(ctx)
	case userfeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userfeedback.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case userfeedback.FieldGhostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGhostID(v)
		return nil
	case userfeedback.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case userfeedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userfeedback.FieldSatisfactionScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSatisfactionScore(v)
		return nil
	case userfeedback.FieldCorrectedActions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedActions(v)
		return nil
	case userfeedback.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case userfeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserFeedbackMutation) AddedFields() []string {
	var fields []string
	if m.addsatisfaction_score != nil {
		fields = append(fields, userfeedback.FieldSatisfactionScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userfeedback.FieldSatisfactionScore:
		return m.AddedSatisfactionScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userfeedback.FieldSatisfactionScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSatisfactionScore(v)
		return nil
	}
	return fmt.Errorf("unknown UserFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userfeedback.FieldSatisfactionScore) {
		fields = append(fields, userfeedback.FieldSatisfactionScore)
	}
	if m.FieldCleared(userfeedback.FieldCorrectedActions) {
		fields = append(fields, userfeedback.FieldCorrectedActions)
	}
	if m.FieldCleared(userfeedback.FieldNotes) {
		fields = append(fields, userfeedback.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserFeedbackMutation) ClearField(name string) error {
	switch name {
	case userfeedback.FieldSatisfactionScore:
		m.ClearSatisfactionScore()
		return nil
	case userfeedback.FieldCorrectedActions:
		m.ClearCorrectedActions()
		return nil
	case userfeedback.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown UserFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserFeedbackMutation) ResetField(name string) error {
	switch name {
	case userfeedback.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case userfeedback.FieldGhostID:
		m.ResetGhostID()
		return nil
	case userfeedback.FieldOrgID:
		m.ResetOrgID()
		return nil
	case userfeedback.FieldUserID:
		m.ResetUserID()
		return nil
	case userfeedback.FieldSatisfactionScore:
		m.ResetSatisfactionScore()
		return nil
	case userfeedback.FieldCorrectedActions:
		m.ResetCorrectedActions()
		return nil
	case userfeedback.FieldNotes:
		m.ResetNotes()
		return nil
	case userfeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserFeedbackMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserFeedbackMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserFeedbackMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserFeedbackMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserFeedback edge %s", name)
}
