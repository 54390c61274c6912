// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/executionstep"
)

// ExecutionStepCreate is the builder for creating a ExecutionStep entity.
type ExecutionStepCreate struct {
	config
	mutation *ExecutionStepMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *ExecutionStepCreate) SetExecutionID(v string) *ExecutionStepCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *ExecutionStepCreate) SetNodeID(v string) *ExecutionStepCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionStepCreate) SetStatus(v executionstep.Status) *ExecutionStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *ExecutionStepCreate) SetStrategy(v string) *ExecutionStepCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionStepCreate) SetDurationMs(v int) *ExecutionStepCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionStepCreate) SetNillableDurationMs(v *int) *ExecutionStepCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *ExecutionStepCreate) SetOutput(v map[string]interface{}) *ExecutionStepCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetError sets the "error" field.
func (_c *ExecutionStepCreate) SetError(v string) *ExecutionStepCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ExecutionStepCreate) SetNillableError(v *string) *ExecutionStepCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionStepCreate) SetCreatedAt(v time.Time) *ExecutionStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionStepCreate) SetNillableCreatedAt(v *time.Time) *ExecutionStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionStepCreate) SetID(v string) *ExecutionStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExecutionStepMutation object of the builder.
func (_c *ExecutionStepCreate) Mutation() *ExecutionStepMutation {
	return _c.mutation
}

// Save creates the ExecutionStep in the database.
func (_c *ExecutionStepCreate) Save(ctx context.Context) (*ExecutionStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionStepCreate) SaveX(ctx context.Context) *ExecutionStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionStepCreate) defaults() {
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := executionstep.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionStepCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ExecutionStep.execution_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "ExecutionStep.node_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "ExecutionStep.strategy"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ExecutionStep.duration_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionStep.created_at"`)}
	}
	return nil
}

func (_c *ExecutionStepCreate) sqlSave(ctx context.Context) (*ExecutionStep, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionStepCreate) createSpec() (*ExecutionStep, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionstep.Table, sqlgraph.NewFieldSpec(executionstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(executionstep.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(executionstep.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(executionstep.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(executionstep.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(executionstep.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(executionstep.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExecutionStepCreateBulk is the builder for creating many ExecutionStep entities in bulk.
type ExecutionStepCreateBulk struct {
	config
	err      error
	builders []*ExecutionStepCreate
}

// Save creates the ExecutionStep entities in the database.
func (_c *ExecutionStepCreateBulk) Save(ctx context.Context) ([]*ExecutionStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionStepMutation)
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
func (_c *ExecutionStepCreateBulk) SaveX(ctx context.Context) []*ExecutionStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
