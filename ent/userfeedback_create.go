// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/userfeedback"
)

// UserFeedbackCreate is the builder for creating a UserFeedback entity.
type UserFeedbackCreate struct {
	config
	mutation *UserFeedbackMutation
	hooks    []Hook
}

// SetExecutionID sets the "execution_id" field.
func (_c *UserFeedbackCreate) SetExecutionID(v string) *UserFeedbackCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetGhostID sets the "ghost_id" field.
func (_c *UserFeedbackCreate) SetGhostID(v string) *UserFeedbackCreate {
	_c.mutation.SetGhostID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *UserFeedbackCreate) SetOrgID(v string) *UserFeedbackCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UserFeedbackCreate) SetUserID(v string) *UserFeedbackCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSatisfactionScore sets the "satisfaction_score" field.
func (_c *UserFeedbackCreate) SetSatisfactionScore(v int) *UserFeedbackCreate {
	_c.mutation.SetSatisfactionScore(v)
	return _c
}

// SetNillableSatisfactionScore sets the "satisfaction_score" field if the given value is not nil.
func (_c *UserFeedbackCreate) SetNillableSatisfactionScore(v *int) *UserFeedbackCreate {
	if v != nil {
		_c.SetSatisfactionScore(*v)
	}
	return _c
}

// SetCorrectedActions sets the "corrected_actions" field.
func (_c *UserFeedbackCreate) SetCorrectedActions(v map[string]interface{}) *UserFeedbackCreate {
	_c.mutation.SetCorrectedActions(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *UserFeedbackCreate) SetNotes(v string) *UserFeedbackCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *UserFeedbackCreate) SetNillableNotes(v *string) *UserFeedbackCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserFeedbackCreate) SetCreatedAt(v time.Time) *UserFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserFeedbackCreate) SetNillableCreatedAt(v *time.Time) *UserFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserFeedbackCreate) SetID(v string) *UserFeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserFeedbackMutation object of the builder.
func (_c *UserFeedbackCreate) Mutation() *UserFeedbackMutation {
	return _c.mutation
}

// Save creates the UserFeedback in the database.
func (_c *UserFeedbackCreate) Save(ctx context.Context) (*UserFeedback, error) {
	if err := _c.defaults(); err != nil {
		return nil, err
	}
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserFeedbackCreate) SaveX(ctx context.Context) *UserFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserFeedbackCreate) defaults() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		if userfeedback.DefaultCreatedAt == nil {
			return fmt.Errorf("ent: uninitialized userfeedback.DefaultCreatedAt (forgotten import ent/runtime?)")
		}
		v := userfeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	return nil
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserFeedbackCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "UserFeedback.execution_id"`)}
	}
	if _, ok := _c.mutation.GhostID(); !ok {
		return &ValidationError{Name: "ghost_id", err: errors.New(`ent: missing required field "UserFeedback.ghost_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "UserFeedback.org_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserFeedback.user_id"`)}
	}
	if v, ok := _c.mutation.SatisfactionScore(); ok {
		if err := userfeedback.SatisfactionScoreValidator(v); err != nil {
			return &ValidationError{Name: "satisfaction_score", err: fmt.Errorf(`ent: validator failed for field "UserFeedback.satisfaction_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserFeedback.created_at"`)}
	}
	return nil
}

func (_c *UserFeedbackCreate) sqlSave(ctx context.Context) (*UserFeedback, error) {
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
			return nil, fmt.Errorf("unexpected UserFeedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserFeedbackCreate) createSpec() (*UserFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &UserFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userfeedback.Table, sqlgraph.NewFieldSpec(userfeedback.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(userfeedback.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.GhostID(); ok {
		_spec.SetField(userfeedback.FieldGhostID, field.TypeString, value)
		_node.GhostID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(userfeedback.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userfeedback.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SatisfactionScore(); ok {
		_spec.SetField(userfeedback.FieldSatisfactionScore, field.TypeInt, value)
		_node.SatisfactionScore = &value
	}
	if value, ok := _c.mutation.CorrectedActions(); ok {
		_spec.SetField(userfeedback.FieldCorrectedActions, field.TypeJSON, value)
		_node.CorrectedActions = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(userfeedback.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userfeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UserFeedbackCreateBulk is the builder for creating many UserFeedback entities in bulk.
type UserFeedbackCreateBulk struct {
	config
	err      error
	builders []*UserFeedbackCreate
}

// Save creates the UserFeedback entities in the database.
func (_c *UserFeedbackCreateBulk) Save(ctx context.Context) ([]*UserFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserFeedbackMutation)
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
func (_c *UserFeedbackCreateBulk) SaveX(ctx context.Context) []*UserFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
