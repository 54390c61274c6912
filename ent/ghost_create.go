// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/pkg/models"
)

// GhostCreate is the builder for creating a Ghost entity.
type GhostCreate struct {
	config
	mutation *GhostMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *GhostCreate) SetOrgID(v string) *GhostCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GhostCreate) SetName(v string) *GhostCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *GhostCreate) SetDescription(v string) *GhostCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *GhostCreate) SetNillableDescription(v *string) *GhostCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *GhostCreate) SetVersion(v int) *GhostCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *GhostCreate) SetNillableVersion(v *int) *GhostCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *GhostCreate) SetStatus(v ghost.Status) *GhostCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GhostCreate) SetNillableStatus(v *ghost.Status) *GhostCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *GhostCreate) SetTrigger(v models.GhostTrigger) *GhostCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *GhostCreate) SetNillableTrigger(v *models.GhostTrigger) *GhostCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *GhostCreate) SetParameters(v []models.GhostParameter) *GhostCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetExecutionPlan sets the "execution_plan" field.
func (_c *GhostCreate) SetExecutionPlan(v []models.ExecutionNode) *GhostCreate {
	_c.mutation.SetExecutionPlan(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *GhostCreate) SetConfidence(v float64) *GhostCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *GhostCreate) SetNillableConfidence(v *float64) *GhostCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSourcePatternID sets the "source_pattern_id" field.
func (_c *GhostCreate) SetSourcePatternID(v string) *GhostCreate {
	_c.mutation.SetSourcePatternID(v)
	return _c
}

// SetNillableSourcePatternID sets the "source_pattern_id" field if the given value is not nil.
func (_c *GhostCreate) SetNillableSourcePatternID(v *string) *GhostCreate {
	if v != nil {
		_c.SetSourcePatternID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *GhostCreate) SetCreatedBy(v string) *GhostCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *GhostCreate) SetNillableCreatedBy(v *string) *GhostCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *GhostCreate) SetApprovedBy(v string) *GhostCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *GhostCreate) SetNillableApprovedBy(v *string) *GhostCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *GhostCreate) SetIsActive(v bool) *GhostCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *GhostCreate) SetNillableIsActive(v *bool) *GhostCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetUsageStats sets the "usage_stats" field.
func (_c *GhostCreate) SetUsageStats(v map[string]interface{}) *GhostCreate {
	_c.mutation.SetUsageStats(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GhostCreate) SetCreatedAt(v time.Time) *GhostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GhostCreate) SetNillableCreatedAt(v *time.Time) *GhostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GhostCreate) SetUpdatedAt(v time.Time) *GhostCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GhostCreate) SetNillableUpdatedAt(v *time.Time) *GhostCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GhostCreate) SetID(v string) *GhostCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GhostMutation object of the builder.
func (_c *GhostCreate) Mutation() *GhostMutation {
	return _c.mutation
}

// Save creates the Ghost in the database.
func (_c *GhostCreate) Save(ctx context.Context) (*Ghost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GhostCreate) SaveX(ctx context.Context) *Ghost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GhostCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := ghost.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ghost.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := ghost.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ghost.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ghost.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GhostCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "Ghost.org_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Ghost.name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Ghost.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := ghost.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Ghost.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Ghost.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ghost.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ghost.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Ghost.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Ghost.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Ghost.updated_at"`)}
	}
	return nil
}

func (_c *GhostCreate) sqlSave(ctx context.Context) (*Ghost, error) {
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
			return nil, fmt.Errorf("unexpected Ghost.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GhostCreate) createSpec() (*Ghost, *sqlgraph.CreateSpec) {
	var (
		_node = &Ghost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ghost.Table, sqlgraph.NewFieldSpec(ghost.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(ghost.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(ghost.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(ghost.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(ghost.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ghost.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(ghost.FieldTrigger, field.TypeJSON, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(ghost.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.ExecutionPlan(); ok {
		_spec.SetField(ghost.FieldExecutionPlan, field.TypeJSON, value)
		_node.ExecutionPlan = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(ghost.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourcePatternID(); ok {
		_spec.SetField(ghost.FieldSourcePatternID, field.TypeString, value)
		_node.SourcePatternID = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(ghost.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(ghost.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(ghost.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.UsageStats(); ok {
		_spec.SetField(ghost.FieldUsageStats, field.TypeJSON, value)
		_node.UsageStats = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ghost.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ghost.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// GhostCreateBulk is the builder for creating many Ghost entities in bulk.
type GhostCreateBulk struct {
	config
	err      error
	builders []*GhostCreate
}

// Save creates the Ghost entities in the database.
func (_c *GhostCreateBulk) Save(ctx context.Context) ([]*Ghost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Ghost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GhostMutation)
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
func (_c *GhostCreateBulk) SaveX(ctx context.Context) []*Ghost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
