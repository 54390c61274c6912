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
	"github.com/ghostworks/ghostd/ent/predicate"
	"github.com/ghostworks/ghostd/ent/userfeedback"
)

// UserFeedbackUpdate is the builder for updating UserFeedback entities.
type UserFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *UserFeedbackMutation
}

// Where appends a list predicates to the UserFeedbackUpdate builder.
func (_u *UserFeedbackUpdate) Where(ps ...predicate.UserFeedback) *UserFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *UserFeedbackUpdate) SetExecutionID(v string) *UserFeedbackUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *UserFeedbackUpdate) SetNillableExecutionID(v *string) *UserFeedbackUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetGhostID sets the "ghost_id" field.
func (_u *UserFeedbackUpdate) SetGhostID(v string) *UserFeedbackUpdate {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *UserFeedbackUpdate) SetNillableGhostID(v *string) *UserFeedbackUpdate {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *UserFeedbackUpdate) SetOrgID(v string) *UserFeedbackUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *UserFeedbackUpdate) SetNillableOrgID(v *string) *UserFeedbackUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserFeedbackUpdate) SetUserID(v string) *UserFeedbackUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserFeedbackUpdate) SetNillableUserID(v *string) *UserFeedbackUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSatisfactionScore sets the "satisfaction_score" field.
func (_u *UserFeedbackUpdate) SetSatisfactionScore(v int) *UserFeedbackUpdate {
	_u.mutation.ResetSatisfactionScore()
	_u.mutation.SetSatisfactionScore(v)
	return _u
}

// SetNillableSatisfactionScore sets the "satisfaction_score" field if the given value is not nil.
func (_u *UserFeedbackUpdate) SetNillableSatisfactionScore(v *int) *UserFeedbackUpdate {
	if v != nil {
		_u.SetSatisfactionScore(*v)
	}
	return _u
}

// AddSatisfactionScore adds value to the "satisfaction_score" field.
func (_u *UserFeedbackUpdate) AddSatisfactionScore(v int) *UserFeedbackUpdate {
	_u.mutation.AddSatisfactionScore(v)
	return _u
}

// ClearSatisfactionScore clears the value of the "satisfaction_score" field.
func (_u *UserFeedbackUpdate) ClearSatisfactionScore() *UserFeedbackUpdate {
	_u.mutation.ClearSatisfactionScore()
	return _u
}

// SetCorrectedActions sets the "corrected_actions" field.
func (_u *UserFeedbackUpdate) SetCorrectedActions(v map[string]interface{}) *UserFeedbackUpdate {
	_u.mutation.SetCorrectedActions(v)
	return _u
}

// ClearCorrectedActions clears the value of the "corrected_actions" field.
func (_u *UserFeedbackUpdate) ClearCorrectedActions() *UserFeedbackUpdate {
	_u.mutation.ClearCorrectedActions()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *UserFeedbackUpdate) SetNotes(v string) *UserFeedbackUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *UserFeedbackUpdate) SetNillableNotes(v *string) *UserFeedbackUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *UserFeedbackUpdate) ClearNotes() *UserFeedbackUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserFeedbackUpdate) SetCreatedAt(v time.Time) *UserFeedbackUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserFeedbackUpdate) SetNillableCreatedAt(v *time.Time) *UserFeedbackUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the UserFeedbackMutation object of the builder.
func (_u *UserFeedbackUpdate) Mutation() *UserFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserFeedbackUpdate) check() error {
	if v, ok := _u.mutation.SatisfactionScore(); ok {
		if err := userfeedback.SatisfactionScoreValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_score", err: fmt.Errorf(`ent: validator failed for field "UserFeedback.satisfaction_score": %w`, err)}
		}
	}
	return nil
}

func (_u *UserFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userfeedback.Table, userfeedback.Columns, sqlgraph.NewFieldSpec(userfeedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(userfeedback.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(userfeedback.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(userfeedback.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userfeedback.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SatisfactionScore(); ok {
		_spec.SetField(userfeedback.FieldSatisfactionScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSatisfactionScore(); ok {
		_spec.AddField(userfeedback.FieldSatisfactionScore, field.TypeInt, value)
	}
	if _u.mutation.SatisfactionScoreCleared() {
		_spec.ClearField(userfeedback.FieldSatisfactionScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrectedActions(); ok {
		_spec.SetField(userfeedback.FieldCorrectedActions, field.TypeJSON, value)
	}
	if _u.mutation.CorrectedActionsCleared() {
		_spec.ClearField(userfeedback.FieldCorrectedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(userfeedback.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(userfeedback.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(userfeedback.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserFeedbackUpdateOne is the builder for updating a single UserFeedback entity.
type UserFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserFeedbackMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *UserFeedbackUpdateOne) SetExecutionID(v string) *UserFeedbackUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *UserFeedbackUpdateOne) SetNillableExecutionID(v *string) *UserFeedbackUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetGhostID sets the "ghost_id" field.
func (_u *UserFeedbackUpdateOne) SetGhostID(v string) *UserFeedbackUpdateOne {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *UserFeedbackUpdateOne) SetNillableGhostID(v *string) *UserFeedbackUpdateOne {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *UserFeedbackUpdateOne) SetOrgID(v string) *UserFeedbackUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *UserFeedbackUpdateOne) SetNillableOrgID(v *string) *UserFeedbackUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserFeedbackUpdateOne) SetUserID(v string) *UserFeedbackUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserFeedbackUpdateOne) SetNillableUserID(v *string) *UserFeedbackUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSatisfactionScore sets the "satisfaction_score" field.
func (_u *UserFeedbackUpdateOne) SetSatisfactionScore(v int) *UserFeedbackUpdateOne {
	_u.mutation.ResetSatisfactionScore()
	_u.mutation.SetSatisfactionScore(v)
	return _u
}

// SetNillableSatisfactionScore sets the "satisfaction_score" field if the given value is not nil.
func (_u *UserFeedbackUpdateOne) SetNillableSatisfactionScore(v *int) *UserFeedbackUpdateOne {
	if v != nil {
		_u.SetSatisfactionScore(*v)
	}
	return _u
}

// AddSatisfactionScore adds value to the "satisfaction_score" field.
func (_u *UserFeedbackUpdateOne) AddSatisfactionScore(v int) *UserFeedbackUpdateOne {
	_u.mutation.AddSatisfactionScore(v)
	return _u
}

// ClearSatisfactionScore clears the value of the "satisfaction_score" field.
func (_u *UserFeedbackUpdateOne) ClearSatisfactionScore() *UserFeedbackUpdateOne {
	_u.mutation.ClearSatisfactionScore()
	return _u
}

// SetCorrectedActions sets the "corrected_actions" field.
func (_u *UserFeedbackUpdateOne) SetCorrectedActions(v map[string]interface{}) *UserFeedbackUpdateOne {
	_u.mutation.SetCorrectedActions(v)
	return _u
}

// ClearCorrectedActions clears the value of the "corrected_actions" field.
func (_u *UserFeedbackUpdateOne) ClearCorrectedActions() *UserFeedbackUpdateOne {
	_u.mutation.ClearCorrectedActions()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *UserFeedbackUpdateOne) SetNotes(v string) *UserFeedbackUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *UserFeedbackUpdateOne) SetNillableNotes(v *string) *UserFeedbackUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *UserFeedbackUpdateOne) ClearNotes() *UserFeedbackUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserFeedbackUpdateOne) SetCreatedAt(v time.Time) *UserFeedbackUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserFeedbackUpdateOne) SetNillableCreatedAt(v *time.Time) *UserFeedbackUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the UserFeedbackMutation object of the builder.
func (_u *UserFeedbackUpdateOne) Mutation() *UserFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserFeedbackUpdate builder.
func (_u *UserFeedbackUpdateOne) Where(ps ...predicate.UserFeedback) *UserFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserFeedbackUpdateOne) Select(field string, fields ...string) *UserFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserFeedback entity.
func (_u *UserFeedbackUpdateOne) Save(ctx context.Context) (*UserFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserFeedbackUpdateOne) SaveX(ctx context.Context) *UserFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserFeedbackUpdateOne) check() error {
	if v, ok := _u.mutation.SatisfactionScore(); ok {
		if err := userfeedback.SatisfactionScoreValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_score", err: fmt.Errorf(`ent: validator failed for field "UserFeedback.satisfaction_score": %w`, err)}
		}
	}
	return nil
}

func (_u *UserFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *UserFeedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userfeedback.Table, userfeedback.Columns, sqlgraph.NewFieldSpec(userfeedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userfeedback.FieldID)
		for _, f := range fields {
			if !userfeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userfeedback.FieldID {
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
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(userfeedback.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(userfeedback.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(userfeedback.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userfeedback.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SatisfactionScore(); ok {
		_spec.SetField(userfeedback.FieldSatisfactionScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSatisfactionScore(); ok {
		_spec.AddField(userfeedback.FieldSatisfactionScore, field.TypeInt, value)
	}
	if _u.mutation.SatisfactionScoreCleared() {
		_spec.ClearField(userfeedback.FieldSatisfactionScore, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrectedActions(); ok {
		_spec.SetField(userfeedback.FieldCorrectedActions, field.TypeJSON, value)
	}
	if _u.mutation.CorrectedActionsCleared() {
		_spec.ClearField(userfeedback.FieldCorrectedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(userfeedback.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(userfeedback.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(userfeedback.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &UserFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userfeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
