// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/ghostversion"
	"github.com/ghostworks/ghostd/pkg/models"
)

// GhostVersionCreate is the builder for creating a GhostVersion entity.
type GhostVersionCreate struct {
	config
	mutation *GhostVersionMutation
	hooks    []Hook
}

// SetGhostID sets the "ghost_id" field.
func (_c *GhostVersionCreate) SetGhostID(v string) *GhostVersionCreate {
	_c.mutation.SetGhostID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *GhostVersionCreate) SetVersion(v int) *GhostVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetExecutionPlan sets the "execution_plan" field.
func (_c *GhostVersionCreate) SetExecutionPlan(v []models.ExecutionNode) *GhostVersionCreate {
	_c.mutation.SetExecutionPlan(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *GhostVersionCreate) SetParameters(v []models.GhostParameter) *GhostVersionCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *GhostVersionCreate) SetTrigger(v models.GhostTrigger) *GhostVersionCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *GhostVersionCreate) SetNillableTrigger(v *models.GhostTrigger) *GhostVersionCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetChangeDescription sets the "change_description" field.
func (_c *GhostVersionCreate) SetChangeDescription(v string) *GhostVersionCreate {
	_c.mutation.SetChangeDescription(v)
	return _c
}

// SetNillableChangeDescription sets the "change_description" field if the given value is not nil.
func (_c *GhostVersionCreate) SetNillableChangeDescription(v *string) *GhostVersionCreate {
	if v != nil {
		_c.SetChangeDescription(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *GhostVersionCreate) SetCreatedBy(v string) *GhostVersionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *GhostVersionCreate) SetNillableCreatedBy(v *string) *GhostVersionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GhostVersionCreate) SetCreatedAt(v time.Time) *GhostVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GhostVersionCreate) SetNillableCreatedAt(v *time.Time) *GhostVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GhostVersionCreate) SetID(v string) *GhostVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GhostVersionMutation object of the builder.
func (_c *GhostVersionCreate) Mutation() *GhostVersionMutation {
	return _c.mutation
}

// Save creates the GhostVersion in the database.
func (_c *GhostVersionCreate) Save(ctx context.Context) (*GhostVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GhostVersionCreate) SaveX(ctx context.Context) *GhostVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GhostVersionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ghostversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GhostVersionCreate) check() error {
	if _, ok := _c.mutation.GhostID(); !ok {
		return &ValidationError{Name: "ghost_id", err: errors.New(`ent: missing required field "GhostVersion.ghost_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "GhostVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := ghostversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "GhostVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GhostVersion.created_at"`)}
	}
	return nil
}

func (_c *GhostVersionCreate) sqlSave(ctx context.Context) (*GhostVersion, error) {
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
			return nil, fmt.Errorf("unexpected GhostVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GhostVersionCreate) createSpec() (*GhostVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &GhostVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ghostversion.Table, sqlgraph.NewFieldSpec(ghostversion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GhostID(); ok {
		_spec.SetField(ghostversion.FieldGhostID, field.TypeString, value)
		_node.GhostID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(ghostversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ExecutionPlan(); ok {
		_spec.SetField(ghostversion.FieldExecutionPlan, field.TypeJSON, value)
		_node.ExecutionPlan = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(ghostversion.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(ghostversion.FieldTrigger, field.TypeJSON, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.ChangeDescription(); ok {
		_spec.SetField(ghostversion.FieldChangeDescription, field.TypeString, value)
		_node.ChangeDescription = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(ghostversion.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ghostversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GhostVersionCreateBulk is the builder for creating many GhostVersion entities in bulk.
type GhostVersionCreateBulk struct {
	config
	err      error
	builders []*GhostVersionCreate
}

// Save creates the GhostVersion entities in the database.
func (_c *GhostVersionCreateBulk) Save(ctx context.Context) ([]*GhostVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GhostVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GhostVersionMutation)
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
func (_c *GhostVersionCreateBulk) SaveX(ctx context.Context) []*GhostVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
