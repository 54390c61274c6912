// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/secureevent"
)

// SecureEventCreate is the builder for creating a SecureEvent entity.
type SecureEventCreate struct {
	config
	mutation *SecureEventMutation
	hooks    []Hook
}

// SetSessionFingerprint sets the "session_fingerprint" field.
func (_c *SecureEventCreate) SetSessionFingerprint(v string) *SecureEventCreate {
	_c.mutation.SetSessionFingerprint(v)
	return _c
}

// SetTimestampBucket sets the "timestamp_bucket" field.
func (_c *SecureEventCreate) SetTimestampBucket(v string) *SecureEventCreate {
	_c.mutation.SetTimestampBucket(v)
	return _c
}

// SetIntentVector sets the "intent_vector" field.
func (_c *SecureEventCreate) SetIntentVector(v []float64) *SecureEventCreate {
	_c.mutation.SetIntentVector(v)
	return _c
}

// SetStructuralHash sets the "structural_hash" field.
func (_c *SecureEventCreate) SetStructuralHash(v string) *SecureEventCreate {
	_c.mutation.SetStructuralHash(v)
	return _c
}

// SetNillableStructuralHash sets the "structural_hash" field if the given value is not nil.
func (_c *SecureEventCreate) SetNillableStructuralHash(v *string) *SecureEventCreate {
	if v != nil {
		_c.SetStructuralHash(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *SecureEventCreate) SetOrgID(v string) *SecureEventCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *SecureEventCreate) SetEventType(v secureevent.EventType) *SecureEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetIntentLabel sets the "intent_label" field.
func (_c *SecureEventCreate) SetIntentLabel(v string) *SecureEventCreate {
	_c.mutation.SetIntentLabel(v)
	return _c
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_c *SecureEventCreate) SetIntentConfidence(v float64) *SecureEventCreate {
	_c.mutation.SetIntentConfidence(v)
	return _c
}

// SetElementSignature sets the "element_signature" field.
func (_c *SecureEventCreate) SetElementSignature(v string) *SecureEventCreate {
	_c.mutation.SetElementSignature(v)
	return _c
}

// SetNillableElementSignature sets the "element_signature" field if the given value is not nil.
func (_c *SecureEventCreate) SetNillableElementSignature(v *string) *SecureEventCreate {
	if v != nil {
		_c.SetElementSignature(*v)
	}
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *SecureEventCreate) SetSequenceNumber(v int) *SecureEventCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetDeviceFingerprint sets the "device_fingerprint" field.
func (_c *SecureEventCreate) SetDeviceFingerprint(v string) *SecureEventCreate {
	_c.mutation.SetDeviceFingerprint(v)
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *SecureEventCreate) SetBatchID(v string) *SecureEventCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetIngestedAt sets the "ingested_at" field.
func (_c *SecureEventCreate) SetIngestedAt(v time.Time) *SecureEventCreate {
	_c.mutation.SetIngestedAt(v)
	return _c
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_c *SecureEventCreate) SetNillableIngestedAt(v *time.Time) *SecureEventCreate {
	if v != nil {
		_c.SetIngestedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SecureEventCreate) SetID(v string) *SecureEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SecureEventMutation object of the builder.
func (_c *SecureEventCreate) Mutation() *SecureEventMutation {
	return _c.mutation
}

// Save creates the SecureEvent in the database.
func (_c *SecureEventCreate) Save(ctx context.Context) (*SecureEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SecureEventCreate) SaveX(ctx context.Context) *SecureEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecureEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecureEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SecureEventCreate) defaults() {
	if _, ok := _c.mutation.IngestedAt(); !ok {
		v := secureevent.DefaultIngestedAt()
		_c.mutation.SetIngestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SecureEventCreate) check() error {
	if _, ok := _c.mutation.SessionFingerprint(); !ok {
		return &ValidationError{Name: "session_fingerprint", err: errors.New(`ent: missing required field "SecureEvent.session_fingerprint"`)}
	}
	if _, ok := _c.mutation.TimestampBucket(); !ok {
		return &ValidationError{Name: "timestamp_bucket", err: errors.New(`ent: missing required field "SecureEvent.timestamp_bucket"`)}
	}
	if _, ok := _c.mutation.IntentVector(); !ok {
		return &ValidationError{Name: "intent_vector", err: errors.New(`ent: missing required field "SecureEvent.intent_vector"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "SecureEvent.org_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "SecureEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := secureevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SecureEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntentLabel(); !ok {
		return &ValidationError{Name: "intent_label", err: errors.New(`ent: missing required field "SecureEvent.intent_label"`)}
	}
	if _, ok := _c.mutation.IntentConfidence(); !ok {
		return &ValidationError{Name: "intent_confidence", err: errors.New(`ent: missing required field "SecureEvent.intent_confidence"`)}
	}
	if v, ok := _c.mutation.IntentConfidence(); ok {
		if err := secureevent.IntentConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "intent_confidence", err: fmt.Errorf(`ent: validator failed for field "SecureEvent.intent_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "SecureEvent.sequence_number"`)}
	}
	if _, ok := _c.mutation.DeviceFingerprint(); !ok {
		return &ValidationError{Name: "device_fingerprint", err: errors.New(`ent: missing required field "SecureEvent.device_fingerprint"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "SecureEvent.batch_id"`)}
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "SecureEvent.ingested_at"`)}
	}
	return nil
}

func (_c *SecureEventCreate) sqlSave(ctx context.Context) (*SecureEvent, error) {
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
			return nil, fmt.Errorf("unexpected SecureEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SecureEventCreate) createSpec() (*SecureEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SecureEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(secureevent.Table, sqlgraph.NewFieldSpec(secureevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionFingerprint(); ok {
		_spec.SetField(secureevent.FieldSessionFingerprint, field.TypeString, value)
		_node.SessionFingerprint = value
	}
	if value, ok := _c.mutation.TimestampBucket(); ok {
		_spec.SetField(secureevent.FieldTimestampBucket, field.TypeString, value)
		_node.TimestampBucket = value
	}
	if value, ok := _c.mutation.IntentVector(); ok {
		_spec.SetField(secureevent.FieldIntentVector, field.TypeJSON, value)
		_node.IntentVector = value
	}
	if value, ok := _c.mutation.StructuralHash(); ok {
		_spec.SetField(secureevent.FieldStructuralHash, field.TypeString, value)
		_node.StructuralHash = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(secureevent.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(secureevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.IntentLabel(); ok {
		_spec.SetField(secureevent.FieldIntentLabel, field.TypeString, value)
		_node.IntentLabel = value
	}
	if value, ok := _c.mutation.IntentConfidence(); ok {
		_spec.SetField(secureevent.FieldIntentConfidence, field.TypeFloat64, value)
		_node.IntentConfidence = value
	}
	if value, ok := _c.mutation.ElementSignature(); ok {
		_spec.SetField(secureevent.FieldElementSignature, field.TypeString, value)
		_node.ElementSignature = &value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(secureevent.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.DeviceFingerprint(); ok {
		_spec.SetField(secureevent.FieldDeviceFingerprint, field.TypeString, value)
		_node.DeviceFingerprint = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(secureevent.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.IngestedAt(); ok {
		_spec.SetField(secureevent.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	return _node, _spec
}

// SecureEventCreateBulk is the builder for creating many SecureEvent entities in bulk.
type SecureEventCreateBulk struct {
	config
	err      error
	builders []*SecureEventCreate
}

// Save creates the SecureEvent entities in the database.
func (_c *SecureEventCreateBulk) Save(ctx context.Context) ([]*SecureEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SecureEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SecureEventMutation)
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
func (_c *SecureEventCreateBulk) SaveX(ctx context.Context) []*SecureEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SecureEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SecureEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
