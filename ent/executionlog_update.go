// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/executionlog"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ExecutionLogUpdate is the builder for updating ExecutionLog entities.
type ExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdate) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ExecutionLogUpdate) SetExecutionID(v string) *ExecutionLogUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableExecutionID(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetGhostID sets the "ghost_id" field.
func (_u *ExecutionLogUpdate) SetGhostID(v string) *ExecutionLogUpdate {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableGhostID(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ExecutionLogUpdate) SetOrgID(v string) *ExecutionLogUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableOrgID(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionLogUpdate) SetStatus(v string) *ExecutionLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableStatus(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ExecutionLogUpdate) SetSteps(v int) *ExecutionLogUpdate {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableSteps(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *ExecutionLogUpdate) AddSteps(v int) *ExecutionLogUpdate {
	_u.mutation.AddSteps(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdate) SetDurationMs(v int) *ExecutionLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableDurationMs(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdate) AddDurationMs(v int) *ExecutionLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStrategiesUsed sets the "strategies_used" field.
func (_u *ExecutionLogUpdate) SetStrategiesUsed(v []string) *ExecutionLogUpdate {
	_u.mutation.SetStrategiesUsed(v)
	return _u
}

// AppendStrategiesUsed appends value to the "strategies_used" field.
func (_u *ExecutionLogUpdate) AppendStrategiesUsed(v []string) *ExecutionLogUpdate {
	_u.mutation.AppendStrategiesUsed(v)
	return _u
}

// SetLoggedAt sets the "logged_at" field.
func (_u *ExecutionLogUpdate) SetLoggedAt(v time.Time) *ExecutionLogUpdate {
	_u.mutation.SetLoggedAt(v)
	return _u
}

// SetNillableLoggedAt sets the "logged_at" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableLoggedAt(v *time.Time) *ExecutionLogUpdate {
	if v != nil {
		_u.SetLoggedAt(*v)
	}
	return _u
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdate) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(executionlog.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(executionlog.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(executionlog.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(executionlog.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(executionlog.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrategiesUsed(); ok {
		_spec.SetField(executionlog.FieldStrategiesUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrategiesUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionlog.FieldStrategiesUsed, value)
		})
	}
	if value, ok := _u.mutation.LoggedAt(); ok {
		_spec.SetField(executionlog.FieldLoggedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionLogUpdateOne is the builder for updating a single ExecutionLog entity.
type ExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *ExecutionLogUpdateOne) SetExecutionID(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableExecutionID(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetGhostID sets the "ghost_id" field.
func (_u *ExecutionLogUpdateOne) SetGhostID(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableGhostID(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ExecutionLogUpdateOne) SetOrgID(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableOrgID(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionLogUpdateOne) SetStatus(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableStatus(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ExecutionLogUpdateOne) SetSteps(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableSteps(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *ExecutionLogUpdateOne) AddSteps(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddSteps(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) SetDurationMs(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableDurationMs(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) AddDurationMs(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStrategiesUsed sets the "strategies_used" field.
func (_u *ExecutionLogUpdateOne) SetStrategiesUsed(v []string) *ExecutionLogUpdateOne {
	_u.mutation.SetStrategiesUsed(v)
	return _u
}

// AppendStrategiesUsed appends value to the "strategies_used" field.
func (_u *ExecutionLogUpdateOne) AppendStrategiesUsed(v []string) *ExecutionLogUpdateOne {
	_u.mutation.AppendStrategiesUsed(v)
	return _u
}

// SetLoggedAt sets the "logged_at" field.
func (_u *ExecutionLogUpdateOne) SetLoggedAt(v time.Time) *ExecutionLogUpdateOne {
	_u.mutation.SetLoggedAt(v)
	return _u
}

// SetNillableLoggedAt sets the "logged_at" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableLoggedAt(v *time.Time) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetLoggedAt(*v)
	}
	return _u
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdateOne) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdateOne) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionLogUpdateOne) Select(field string, fields ...string) *ExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionLog entity.
func (_u *ExecutionLogUpdateOne) Save(ctx context.Context) (*ExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) SaveX(ctx context.Context) *ExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionlog.FieldID)
		for _, f := range fields {
			if !executionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionlog.FieldID {
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
		_spec.SetField(executionlog.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(executionlog.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(executionlog.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(executionlog.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(executionlog.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StrategiesUsed(); ok {
		_spec.SetField(executionlog.FieldStrategiesUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrategiesUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionlog.FieldStrategiesUsed, value)
		})
	}
	if value, ok := _u.mutation.LoggedAt(); ok {
		_spec.SetField(executionlog.FieldLoggedAt, field.TypeTime, value)
	}
	_node = &ExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
