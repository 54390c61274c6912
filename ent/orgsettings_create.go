// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/orgsettings"
)

// OrgSettingsCreate is the builder for creating a OrgSettings entity.
type OrgSettingsCreate struct {
	config
	mutation *OrgSettingsMutation
	hooks    []Hook
}

// SetSettings sets the "settings" field.
func (_c *OrgSettingsCreate) SetSettings(v map[string]interface{}) *OrgSettingsCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (_c *OrgSettingsCreate) SetAutoApproveThreshold(v float64) *OrgSettingsCreate {
	_c.mutation.SetAutoApproveThreshold(v)
	return _c
}

// SetNillableAutoApproveThreshold sets the "auto_approve_threshold" field if the given value is not nil.
func (_c *OrgSettingsCreate) SetNillableAutoApproveThreshold(v *float64) *OrgSettingsCreate {
	if v != nil {
		_c.SetAutoApproveThreshold(*v)
	}
	return _c
}

// SetMaxExecutionsPerMinute sets the "max_executions_per_minute" field.
func (_c *OrgSettingsCreate) SetMaxExecutionsPerMinute(v int) *OrgSettingsCreate {
	_c.mutation.SetMaxExecutionsPerMinute(v)
	return _c
}

// SetNillableMaxExecutionsPerMinute sets the "max_executions_per_minute" field if the given value is not nil.
func (_c *OrgSettingsCreate) SetNillableMaxExecutionsPerMinute(v *int) *OrgSettingsCreate {
	if v != nil {
		_c.SetMaxExecutionsPerMinute(*v)
	}
	return _c
}

// SetLlmProvider sets the "llm_provider" field.
func (_c *OrgSettingsCreate) SetLlmProvider(v string) *OrgSettingsCreate {
	_c.mutation.SetLlmProvider(v)
	return _c
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_c *OrgSettingsCreate) SetNillableLlmProvider(v *string) *OrgSettingsCreate {
	if v != nil {
		_c.SetLlmProvider(*v)
	}
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *OrgSettingsCreate) SetLlmModel(v string) *OrgSettingsCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_c *OrgSettingsCreate) SetNillableLlmModel(v *string) *OrgSettingsCreate {
	if v != nil {
		_c.SetLlmModel(*v)
	}
	return _c
}

// SetRequireApprovalAboveValue sets the "require_approval_above_value" field.
func (_c *OrgSettingsCreate) SetRequireApprovalAboveValue(v float64) *OrgSettingsCreate {
	_c.mutation.SetRequireApprovalAboveValue(v)
	return _c
}

// SetNillableRequireApprovalAboveValue sets the "require_approval_above_value" field if the given value is not nil.
func (_c *OrgSettingsCreate) SetNillableRequireApprovalAboveValue(v *float64) *OrgSettingsCreate {
	if v != nil {
		_c.SetRequireApprovalAboveValue(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrgSettingsCreate) SetID(v string) *OrgSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OrgSettingsMutation object of the builder.
func (_c *OrgSettingsCreate) Mutation() *OrgSettingsMutation {
	return _c.mutation
}

// Save creates the OrgSettings in the database.
func (_c *OrgSettingsCreate) Save(ctx context.Context) (*OrgSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrgSettingsCreate) SaveX(ctx context.Context) *OrgSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrgSettingsCreate) defaults() {
	if _, ok := _c.mutation.AutoApproveThreshold(); !ok {
		v := orgsettings.DefaultAutoApproveThreshold
		_c.mutation.SetAutoApproveThreshold(v)
	}
	if _, ok := _c.mutation.MaxExecutionsPerMinute(); !ok {
		v := orgsettings.DefaultMaxExecutionsPerMinute
		_c.mutation.SetMaxExecutionsPerMinute(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrgSettingsCreate) check() error {
	if _, ok := _c.mutation.AutoApproveThreshold(); !ok {
		return &ValidationError{Name: "auto_approve_threshold", err: errors.New(`ent: missing required field "OrgSettings.auto_approve_threshold"`)}
	}
	if _, ok := _c.mutation.MaxExecutionsPerMinute(); !ok {
		return &ValidationError{Name: "max_executions_per_minute", err: errors.New(`ent: missing required field "OrgSettings.max_executions_per_minute"`)}
	}
	return nil
}

func (_c *OrgSettingsCreate) sqlSave(ctx context.Context) (*OrgSettings, error) {
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
			return nil, fmt.Errorf("unexpected OrgSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrgSettingsCreate) createSpec() (*OrgSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &OrgSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orgsettings.Table, sqlgraph.NewFieldSpec(orgsettings.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(orgsettings.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.AutoApproveThreshold(); ok {
		_spec.SetField(orgsettings.FieldAutoApproveThreshold, field.TypeFloat64, value)
		_node.AutoApproveThreshold = value
	}
	if value, ok := _c.mutation.MaxExecutionsPerMinute(); ok {
		_spec.SetField(orgsettings.FieldMaxExecutionsPerMinute, field.TypeInt, value)
		_node.MaxExecutionsPerMinute = value
	}
	if value, ok := _c.mutation.LlmProvider(); ok {
		_spec.SetField(orgsettings.FieldLlmProvider, field.TypeString, value)
		_node.LlmProvider = value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(orgsettings.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = value
	}
	if value, ok := _c.mutation.RequireApprovalAboveValue(); ok {
		_spec.SetField(orgsettings.FieldRequireApprovalAboveValue, field.TypeFloat64, value)
		_node.RequireApprovalAboveValue = &value
	}
	return _node, _spec
}

// OrgSettingsCreateBulk is the builder for creating many OrgSettings entities in bulk.
type OrgSettingsCreateBulk struct {
	config
	err      error
	builders []*OrgSettingsCreate
}

// Save creates the OrgSettings entities in the database.
func (_c *OrgSettingsCreateBulk) Save(ctx context.Context) ([]*OrgSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrgSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrgSettingsMutation)
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
func (_c *OrgSettingsCreateBulk) SaveX(ctx context.Context) []*OrgSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrgSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrgSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
