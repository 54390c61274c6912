// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
)

// AutomationPolicyCreate is the builder for creating a AutomationPolicy entity.
type AutomationPolicyCreate struct {
	config
	mutation *AutomationPolicyMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *AutomationPolicyCreate) SetOrgID(v string) *AutomationPolicyCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AutomationPolicyCreate) SetName(v string) *AutomationPolicyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AutomationPolicyCreate) SetDescription(v string) *AutomationPolicyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AutomationPolicyCreate) SetNillableDescription(v *string) *AutomationPolicyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCondition sets the "condition" field.
func (_c *AutomationPolicyCreate) SetCondition(v map[string]interface{}) *AutomationPolicyCreate {
	_c.mutation.SetCondition(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AutomationPolicyCreate) SetAction(v automationpolicy.Action) *AutomationPolicyCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AutomationPolicyCreate) SetIsActive(v bool) *AutomationPolicyCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AutomationPolicyCreate) SetNillableIsActive(v *bool) *AutomationPolicyCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AutomationPolicyCreate) SetID(v string) *AutomationPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AutomationPolicyMutation object of the builder.
func (_c *AutomationPolicyCreate) Mutation() *AutomationPolicyMutation {
	return _c.mutation
}

// Save creates the AutomationPolicy in the database.
func (_c *AutomationPolicyCreate) Save(ctx context.Context) (*AutomationPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AutomationPolicyCreate) SaveX(ctx context.Context) *AutomationPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AutomationPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AutomationPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AutomationPolicyCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := automationpolicy.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AutomationPolicyCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "AutomationPolicy.org_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AutomationPolicy.name"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AutomationPolicy.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := automationpolicy.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AutomationPolicy.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AutomationPolicy.is_active"`)}
	}
	return nil
}

func (_c *AutomationPolicyCreate) sqlSave(ctx context.Context) (*AutomationPolicy, error) {
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
			return nil, fmt.Errorf("unexpected AutomationPolicy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AutomationPolicyCreate) createSpec() (*AutomationPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &AutomationPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(automationpolicy.Table, sqlgraph.NewFieldSpec(automationpolicy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(automationpolicy.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(automationpolicy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(automationpolicy.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Condition(); ok {
		_spec.SetField(automationpolicy.FieldCondition, field.TypeJSON, value)
		_node.Condition = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(automationpolicy.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(automationpolicy.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// AutomationPolicyCreateBulk is the builder for creating many AutomationPolicy entities in bulk.
type AutomationPolicyCreateBulk struct {
	config
	err      error
	builders []*AutomationPolicyCreate
}

// Save creates the AutomationPolicy entities in the database.
func (_c *AutomationPolicyCreateBulk) Save(ctx context.Context) ([]*AutomationPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AutomationPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AutomationPolicyMutation)
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
func (_c *AutomationPolicyCreateBulk) SaveX(ctx context.Context) []*AutomationPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AutomationPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AutomationPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
