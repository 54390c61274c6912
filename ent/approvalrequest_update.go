// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/approvalrequest"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ApprovalRequestUpdate is the builder for updating ApprovalRequest entities.
type ApprovalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdate) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGhostID sets the "ghost_id" field.
func (_u *ApprovalRequestUpdate) SetGhostID(v string) *ApprovalRequestUpdate {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableGhostID(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ApprovalRequestUpdate) SetExecutionID(v string) *ApprovalRequestUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableExecutionID(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *ApprovalRequestUpdate) ClearExecutionID() *ApprovalRequestUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ApprovalRequestUpdate) SetOrgID(v string) *ApprovalRequestUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableOrgID(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ApprovalRequestUpdate) SetRequestedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRequestedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ApprovalRequestUpdate) SetApprovedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableApprovedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ApprovalRequestUpdate) ClearApprovedBy() *ApprovalRequestUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdate) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ApprovalRequestUpdate) SetReason(v string) *ApprovalRequestUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableReason(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ApprovalRequestUpdate) ClearReason() *ApprovalRequestUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetDecisionNote sets the "decision_note" field.
func (_u *ApprovalRequestUpdate) SetDecisionNote(v string) *ApprovalRequestUpdate {
	_u.mutation.SetDecisionNote(v)
	return _u
}

// SetNillableDecisionNote sets the "decision_note" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecisionNote(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecisionNote(*v)
	}
	return _u
}

// ClearDecisionNote clears the value of the "decision_note" field.
func (_u *ApprovalRequestUpdate) ClearDecisionNote() *ApprovalRequestUpdate {
	_u.mutation.ClearDecisionNote()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalRequestUpdate) SetExpiresAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableExpiresAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApprovalRequestUpdate) SetCreatedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableCreatedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalRequestUpdate) SetResolvedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableResolvedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalRequestUpdate) ClearResolvedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdate) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(approvalrequest.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(approvalrequest.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(approvalrequest.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(approvalrequest.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(approvalrequest.FieldRequestedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(approvalrequest.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(approvalrequest.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(approvalrequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(approvalrequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionNote(); ok {
		_spec.SetField(approvalrequest.FieldDecisionNote, field.TypeString, value)
	}
	if _u.mutation.DecisionNoteCleared() {
		_spec.ClearField(approvalrequest.FieldDecisionNote, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approvalrequest.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRequestUpdateOne is the builder for updating a single ApprovalRequest entity.
type ApprovalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// SetGhostID sets the "ghost_id" field.
func (_u *ApprovalRequestUpdateOne) SetGhostID(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableGhostID(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ApprovalRequestUpdateOne) SetExecutionID(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableExecutionID(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *ApprovalRequestUpdateOne) ClearExecutionID() *ApprovalRequestUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ApprovalRequestUpdateOne) SetOrgID(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableOrgID(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ApprovalRequestUpdateOne) SetRequestedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRequestedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *ApprovalRequestUpdateOne) SetApprovedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableApprovedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *ApprovalRequestUpdateOne) ClearApprovedBy() *ApprovalRequestUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdateOne) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ApprovalRequestUpdateOne) SetReason(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableReason(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ApprovalRequestUpdateOne) ClearReason() *ApprovalRequestUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetDecisionNote sets the "decision_note" field.
func (_u *ApprovalRequestUpdateOne) SetDecisionNote(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecisionNote(v)
	return _u
}

// SetNillableDecisionNote sets the "decision_note" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecisionNote(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecisionNote(*v)
	}
	return _u
}

// ClearDecisionNote clears the value of the "decision_note" field.
func (_u *ApprovalRequestUpdateOne) ClearDecisionNote() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecisionNote()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalRequestUpdateOne) SetExpiresAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableExpiresAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApprovalRequestUpdateOne) SetCreatedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableCreatedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ApprovalRequestUpdateOne) SetResolvedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableResolvedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ApprovalRequestUpdateOne) ClearResolvedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdateOne) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdateOne) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRequestUpdateOne) Select(field string, fields ...string) *ApprovalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRequest entity.
func (_u *ApprovalRequestUpdateOne) Save(ctx context.Context) (*ApprovalRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) SaveX(ctx context.Context) *ApprovalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrequest.FieldID)
		for _, f := range fields {
			if !approvalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(approvalrequest.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(approvalrequest.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(approvalrequest.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(approvalrequest.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(approvalrequest.FieldRequestedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(approvalrequest.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(approvalrequest.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(approvalrequest.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(approvalrequest.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.DecisionNote(); ok {
		_spec.SetField(approvalrequest.FieldDecisionNote, field.TypeString, value)
	}
	if _u.mutation.DecisionNoteCleared() {
		_spec.ClearField(approvalrequest.FieldDecisionNote, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrequest.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrequest.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrequest.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(approvalrequest.FieldResolvedAt, field.TypeTime)
	}
	_node = &ApprovalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
