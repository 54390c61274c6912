// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/executionlog"
)

// ExecutionLogCreate is the builder for creating a ExecutionLog entity.
type ExecutionLogCreate struct {
	config
	mutation *ExecutionLogMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionLogCreate) SetExecutionID(v string) *ExecutionLogCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetGhostID sets the "ghost_id" field.
func (_c *ExecutionLogCreate) SetGhostID(v string) *ExecutionLogCreate {
	_c.mutation.SetGhostID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *ExecutionLogCreate) SetOrgID(v string) *ExecutionLogCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionLogCreate) SetStatus(v string) *ExecutionLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *ExecutionLogCreate) SetSteps(v int) *ExecutionLogCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionLogCreate) SetDurationMs(v int) *ExecutionLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetStrategiesUsed sets the "strategies_used" field.
func (_c *ExecutionLogCreate) SetStrategiesUsed(v []string) *ExecutionLogCreate {
	_c.mutation.SetStrategiesUsed(v)
	return _c
}

// SetLoggedAt sets the "logged_at" field.
func (_c *ExecutionLogCreate) SetLoggedAt(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetLoggedAt(v)
	return _c
}

// SetNillableLoggedAt sets the "logged_at" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableLoggedAt(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetLoggedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionLogCreate) SetID(v string) *ExecutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_c *ExecutionLogCreate) Mutation() *ExecutionLogMutation {
	return _c.mutation
}

// Save creates the ExecutionLog in the database.
func (_c *ExecutionLogCreate) Save(ctx context.Context) (*ExecutionLog, error) {
	if err := _c.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionLogCreate) SaveX(ctx context.Context) *ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionLogCreate) defaults() error {
	if _, ok := _c.mutation.LoggedAt(); !ok {
		if executionlog.DefaultLoggedAt == nil {
			return fmt.Errorf("ent: uninitialized executionlog.DefaultLoggedAt (forgotten import ent/runtime?)")
		}
		v := executionlog.DefaultLoggedAt()
		_c.mutation.SetLoggedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionLogCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionLog.execution_id"`)}
	}
	if _, ok := _c.mutation.GhostID(); !ok {
		return &ValidationError{Name: "ghost_id", err: errors.New(`ent: missing required field "ExecutionLog.ghost_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ExecutionLog.org_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionLog.status"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "ExecutionLog.steps"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ExecutionLog.duration_ms"`)}
	}
	if _, ok := _c.mutation.StrategiesUsed(); !ok {
		return &ValidationError{Name: "strategies_used", err: errors.New(`ent: missing required field "ExecutionLog.strategies_used"`)}
	}
	if _, ok := _c.mutation.LoggedAt(); !ok {
		return &ValidationError{Name: "logged_at", err: errors.New(`ent: missing required field "ExecutionLog.logged_at"`)}
	}
	return nil
}

func (_c *ExecutionLogCreate) sqlSave(ctx context.Context) (*ExecutionLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExecutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionLogCreate) createSpec() (*ExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionlog.Table, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(executionlog.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.GhostID(); ok {
		_spec.SetField(executionlog.FieldGhostID, field.TypeString, value)
		_node.GhostID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(executionlog.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(executionlog.FieldSteps, field.TypeInt, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.StrategiesUsed(); ok {
		_spec.SetField(executionlog.FieldStrategiesUsed, field.TypeJSON, value)
		_node.StrategiesUsed = value
	}
	if value, ok := _c.mutation.LoggedAt(); ok {
		_spec.SetField(executionlog.FieldLoggedAt, field.TypeTime, value)
		_node.LoggedAt = value
	}
	return _node, _spec
}

// ExecutionLogCreateBulk is the builder for creating many ExecutionLog entities in bulk.
type ExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ExecutionLogCreate
}

// Save creates the ExecutionLog entities in the database.
func (_c *ExecutionLogCreateBulk) Save(ctx context.Context) ([]*ExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) SaveX(ctx context.Context) []*ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
