// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
)

// DetectedPatternCreate is the builder for creating a DetectedPattern entity.
type DetectedPatternCreate struct {
	config
	mutation *DetectedPatternMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *DetectedPatternCreate) SetOrgID(v string) *DetectedPatternCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetIntentSequence sets the "intent_sequence" field.
func (_c *DetectedPatternCreate) SetIntentSequence(v []string) *DetectedPatternCreate {
	_c.mutation.SetIntentSequence(v)
	return _c
}

// SetStructuralHashes sets the "structural_hashes" field.
func (_c *DetectedPatternCreate) SetStructuralHashes(v []string) *DetectedPatternCreate {
	_c.mutation.SetStructuralHashes(v)
	return _c
}

// SetOccurrences sets the "occurrences" field.
func (_c *DetectedPatternCreate) SetOccurrences(v int) *DetectedPatternCreate {
	_c.mutation.SetOccurrences(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DetectedPatternCreate) SetConfidence(v float64) *DetectedPatternCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSuggestedName sets the "suggested_name" field.
func (_c *DetectedPatternCreate) SetSuggestedName(v string) *DetectedPatternCreate {
	_c.mutation.SetSuggestedName(v)
	return _c
}

// SetNillableSuggestedName sets the "suggested_name" field if the given value is not nil.
func (_c *DetectedPatternCreate) SetNillableSuggestedName(v *string) *DetectedPatternCreate {
	if v != nil {
		_c.SetSuggestedName(*v)
	}
	return _c
}

// SetSuggestedDescription sets the "suggested_description" field.
func (_c *DetectedPatternCreate) SetSuggestedDescription(v string) *DetectedPatternCreate {
	_c.mutation.SetSuggestedDescription(v)
	return _c
}

// SetNillableSuggestedDescription sets the "suggested_description" field if the given value is not nil.
func (_c *DetectedPatternCreate) SetNillableSuggestedDescription(v *string) *DetectedPatternCreate {
	if v != nil {
		_c.SetSuggestedDescription(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *DetectedPatternCreate) SetFirstSeen(v time.Time) *DetectedPatternCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *DetectedPatternCreate) SetLastSeen(v time.Time) *DetectedPatternCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DetectedPatternCreate) SetStatus(v detectedpattern.Status) *DetectedPatternCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DetectedPatternCreate) SetNillableStatus(v *detectedpattern.Status) *DetectedPatternCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DetectedPatternCreate) SetCreatedAt(v time.Time) *DetectedPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DetectedPatternCreate) SetNillableCreatedAt(v *time.Time) *DetectedPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DetectedPatternCreate) SetUpdatedAt(v time.Time) *DetectedPatternCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DetectedPatternCreate) SetNillableUpdatedAt(v *time.Time) *DetectedPatternCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DetectedPatternCreate) SetID(v string) *DetectedPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DetectedPatternMutation object of the builder.
func (_c *DetectedPatternCreate) Mutation() *DetectedPatternMutation {
	return _c.mutation
}

// Save creates the DetectedPattern in the database.
func (_c *DetectedPatternCreate) Save(ctx context.Context) (*DetectedPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DetectedPatternCreate) SaveX(ctx context.Context) *DetectedPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectedPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectedPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DetectedPatternCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := detectedpattern.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := detectedpattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := detectedpattern.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DetectedPatternCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "DetectedPattern.org_id"`)}
	}
	if _, ok := _c.mutation.IntentSequence(); !ok {
		return &ValidationError{Name: "intent_sequence", err: errors.New(`ent: missing required field "DetectedPattern.intent_sequence"`)}
	}
	if _, ok := _c.mutation.StructuralHashes(); !ok {
		return &ValidationError{Name: "structural_hashes", err: errors.New(`ent: missing required field "DetectedPattern.structural_hashes"`)}
	}
	if _, ok := _c.mutation.Occurrences(); !ok {
		return &ValidationError{Name: "occurrences", err: errors.New(`ent: missing required field "DetectedPattern.occurrences"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DetectedPattern.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := detectedpattern.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "DetectedPattern.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "DetectedPattern.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "DetectedPattern.last_seen"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DetectedPattern.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := detectedpattern.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectedPattern.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DetectedPattern.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DetectedPattern.updated_at"`)}
	}
	return nil
}

func (_c *DetectedPatternCreate) sqlSave(ctx context.Context) (*DetectedPattern, error) {
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
			return nil, fmt.Errorf("unexpected DetectedPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DetectedPatternCreate) createSpec() (*DetectedPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &DetectedPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(detectedpattern.Table, sqlgraph.NewFieldSpec(detectedpattern.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(detectedpattern.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.IntentSequence(); ok {
		_spec.SetField(detectedpattern.FieldIntentSequence, field.TypeJSON, value)
		_node.IntentSequence = value
	}
	if value, ok := _c.mutation.StructuralHashes(); ok {
		_spec.SetField(detectedpattern.FieldStructuralHashes, field.TypeJSON, value)
		_node.StructuralHashes = value
	}
	if value, ok := _c.mutation.Occurrences(); ok {
		_spec.SetField(detectedpattern.FieldOccurrences, field.TypeInt, value)
		_node.Occurrences = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(detectedpattern.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SuggestedName(); ok {
		_spec.SetField(detectedpattern.FieldSuggestedName, field.TypeString, value)
		_node.SuggestedName = &value
	}
	if value, ok := _c.mutation.SuggestedDescription(); ok {
		_spec.SetField(detectedpattern.FieldSuggestedDescription, field.TypeString, value)
		_node.SuggestedDescription = &value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(detectedpattern.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(detectedpattern.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(detectedpattern.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(detectedpattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(detectedpattern.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DetectedPatternCreateBulk is the builder for creating many DetectedPattern entities in bulk.
type DetectedPatternCreateBulk struct {
	config
	err      error
	builders []*DetectedPatternCreate
}

// Save creates the DetectedPattern entities in the database.
func (_c *DetectedPatternCreateBulk) Save(ctx context.Context) ([]*DetectedPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DetectedPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DetectedPatternMutation)
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
func (_c *DetectedPatternCreateBulk) SaveX(ctx context.Context) []*DetectedPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectedPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectedPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
