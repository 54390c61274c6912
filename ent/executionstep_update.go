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
	"github.com/ghostworks/ghostd/ent/executionstep"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ExecutionStepUpdate is the builder for updating ExecutionStep entities.
type ExecutionStepUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionStepMutation
}

// Where appends a list predicates to the ExecutionStepUpdate builder.
func (_u *ExecutionStepUpdate) Where(ps ...predicate.ExecutionStep) *ExecutionStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ExecutionStepUpdate) SetExecutionID(v string) *ExecutionStepUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ExecutionStepUpdate) SetNillableExecutionID(v *string) *ExecutionStepUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ExecutionStepUpdate) SetNodeID(v string) *ExecutionStepUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ExecutionStepUpdate) SetNillableNodeID(v *string) *ExecutionStepUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionStepUpdate) SetStatus(v executionstep.Status) *ExecutionStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionStepUpdate) SetNillableStatus(v *executionstep.Status) *ExecutionStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ExecutionStepUpdate) SetStrategy(v string) *ExecutionStepUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ExecutionStepUpdate) SetNillableStrategy(v *string) *ExecutionStepUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionStepUpdate) SetDurationMs(v int) *ExecutionStepUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionStepUpdate) SetNillableDurationMs(v *int) *ExecutionStepUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionStepUpdate) AddDurationMs(v int) *ExecutionStepUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionStepUpdate) SetOutput(v map[string]interface{}) *ExecutionStepUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionStepUpdate) ClearOutput() *ExecutionStepUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionStepUpdate) SetError(v string) *ExecutionStepUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionStepUpdate) SetNillableError(v *string) *ExecutionStepUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionStepUpdate) ClearError() *ExecutionStepUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExecutionStepUpdate) SetCreatedAt(v time.Time) *ExecutionStepUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExecutionStepUpdate) SetNillableCreatedAt(v *time.Time) *ExecutionStepUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ExecutionStepMutation object of the builder.
func (_u *ExecutionStepUpdate) Mutation() *ExecutionStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionStep.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionstep.Table, executionstep.Columns, sqlgraph.NewFieldSpec(executionstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(executionstep.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(executionstep.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(executionstep.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(executionstep.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(executionstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(executionstep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(executionstep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(executionstep.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionStepUpdateOne is the builder for updating a single ExecutionStep entity.
type ExecutionStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionStepMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *ExecutionStepUpdateOne) SetExecutionID(v string) *ExecutionStepUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ExecutionStepUpdateOne) SetNillableExecutionID(v *string) *ExecutionStepUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ExecutionStepUpdateOne) SetNodeID(v string) *ExecutionStepUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ExecutionStepUpdateOne) SetNillableNodeID(v *string) *ExecutionStepUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionStepUpdateOne) SetStatus(v executionstep.Status) *ExecutionStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionStepUpdateOne) SetNillableStatus(v *executionstep.Status) *ExecutionStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ExecutionStepUpdateOne) SetStrategy(v string) *ExecutionStepUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ExecutionStepUpdateOne) SetNillableStrategy(v *string) *ExecutionStepUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionStepUpdateOne) SetDurationMs(v int) *ExecutionStepUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionStepUpdateOne) SetNillableDurationMs(v *int) *ExecutionStepUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionStepUpdateOne) AddDurationMs(v int) *ExecutionStepUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *ExecutionStepUpdateOne) SetOutput(v map[string]interface{}) *ExecutionStepUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *ExecutionStepUpdateOne) ClearOutput() *ExecutionStepUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionStepUpdateOne) SetError(v string) *ExecutionStepUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionStepUpdateOne) SetNillableError(v *string) *ExecutionStepUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionStepUpdateOne) ClearError() *ExecutionStepUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExecutionStepUpdateOne) SetCreatedAt(v time.Time) *ExecutionStepUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExecutionStepUpdateOne) SetNillableCreatedAt(v *time.Time) *ExecutionStepUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ExecutionStepMutation object of the builder.
func (_u *ExecutionStepUpdateOne) Mutation() *ExecutionStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionStepUpdate builder.
func (_u *ExecutionStepUpdateOne) Where(ps ...predicate.ExecutionStep) *ExecutionStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionStepUpdateOne) Select(field string, fields ...string) *ExecutionStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionStep entity.
func (_u *ExecutionStepUpdateOne) Save(ctx context.Context) (*ExecutionStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionStepUpdateOne) SaveX(ctx context.Context) *ExecutionStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionStep.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionStepUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionstep.Table, executionstep.Columns, sqlgraph.NewFieldSpec(executionstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionstep.FieldID)
		for _, f := range fields {
			if !executionstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionstep.FieldID {
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
		_spec.SetField(executionstep.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(executionstep.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(executionstep.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(executionstep.FieldOutput, field.TypeJSON, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(executionstep.FieldOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(executionstep.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(executionstep.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(executionstep.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ExecutionStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
