// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/predicate"
	"github.com/ghostworks/ghostd/ent/secureevent"
)

// SecureEventUpdate is the builder for updating SecureEvent entities.
type SecureEventUpdate struct {
	config
	hooks    []Hook
	mutation *SecureEventMutation
}

// Where appends a list predicates to the SecureEventUpdate builder.
func (_u *SecureEventUpdate) Where(ps ...predicate.SecureEvent) *SecureEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionFingerprint sets the "session_fingerprint" field.
func (_u *SecureEventUpdate) SetSessionFingerprint(v string) *SecureEventUpdate {
	_u.mutation.SetSessionFingerprint(v)
	return _u
}

// SetNillableSessionFingerprint sets the "session_fingerprint" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableSessionFingerprint(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetSessionFingerprint(*v)
	}
	return _u
}

// SetTimestampBucket sets the "timestamp_bucket" field.
func (_u *SecureEventUpdate) SetTimestampBucket(v string) *SecureEventUpdate {
	_u.mutation.SetTimestampBucket(v)
	return _u
}

// SetNillableTimestampBucket sets the "timestamp_bucket" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableTimestampBucket(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetTimestampBucket(*v)
	}
	return _u
}

// SetIntentVector sets the "intent_vector" field.
func (_u *SecureEventUpdate) SetIntentVector(v []float64) *SecureEventUpdate {
	_u.mutation.SetIntentVector(v)
	return _u
}

// AppendIntentVector appends value to the "intent_vector" field.
func (_u *SecureEventUpdate) AppendIntentVector(v []float64) *SecureEventUpdate {
	_u.mutation.AppendIntentVector(v)
	return _u
}

// SetStructuralHash sets the "structural_hash" field.
func (_u *SecureEventUpdate) SetStructuralHash(v string) *SecureEventUpdate {
	_u.mutation.SetStructuralHash(v)
	return _u
}

// SetNillableStructuralHash sets the "structural_hash" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableStructuralHash(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetStructuralHash(*v)
	}
	return _u
}

// ClearStructuralHash clears the value of the "structural_hash" field.
func (_u *SecureEventUpdate) ClearStructuralHash() *SecureEventUpdate {
	_u.mutation.ClearStructuralHash()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *SecureEventUpdate) SetOrgID(v string) *SecureEventUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableOrgID(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SecureEventUpdate) SetEventType(v secureevent.EventType) *SecureEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableEventType(v *secureevent.EventType) *SecureEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetIntentLabel sets the "intent_label" field.
func (_u *SecureEventUpdate) SetIntentLabel(v string) *SecureEventUpdate {
	_u.mutation.SetIntentLabel(v)
	return _u
}

// SetNillableIntentLabel sets the "intent_label" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableIntentLabel(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetIntentLabel(*v)
	}
	return _u
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_u *SecureEventUpdate) SetIntentConfidence(v float64) *SecureEventUpdate {
	_u.mutation.ResetIntentConfidence()
	_u.mutation.SetIntentConfidence(v)
	return _u
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableIntentConfidence(v *float64) *SecureEventUpdate {
	if v != nil {
		_u.SetIntentConfidence(*v)
	}
	return _u
}

// AddIntentConfidence adds value to the "intent_confidence" field.
func (_u *SecureEventUpdate) AddIntentConfidence(v float64) *SecureEventUpdate {
	_u.mutation.AddIntentConfidence(v)
	return _u
}

// SetElementSignature sets the "element_signature" field.
func (_u *SecureEventUpdate) SetElementSignature(v string) *SecureEventUpdate {
	_u.mutation.SetElementSignature(v)
	return _u
}

// SetNillableElementSignature sets the "element_signature" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableElementSignature(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetElementSignature(*v)
	}
	return _u
}

// ClearElementSignature clears the value of the "element_signature" field.
func (_u *SecureEventUpdate) ClearElementSignature() *SecureEventUpdate {
	_u.mutation.ClearElementSignature()
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *SecureEventUpdate) SetSequenceNumber(v int) *SecureEventUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableSequenceNumber(v *int) *SecureEventUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *SecureEventUpdate) AddSequenceNumber(v int) *SecureEventUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetDeviceFingerprint sets the "device_fingerprint" field.
func (_u *SecureEventUpdate) SetDeviceFingerprint(v string) *SecureEventUpdate {
	_u.mutation.SetDeviceFingerprint(v)
	return _u
}

// SetNillableDeviceFingerprint sets the "device_fingerprint" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableDeviceFingerprint(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetDeviceFingerprint(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *SecureEventUpdate) SetBatchID(v string) *SecureEventUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableBatchID(v *string) *SecureEventUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *SecureEventUpdate) SetIngestedAt(v time.Time) *SecureEventUpdate {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *SecureEventUpdate) SetNillableIngestedAt(v *time.Time) *SecureEventUpdate {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// Mutation returns the SecureEventMutation object of the builder.
func (_u *SecureEventUpdate) Mutation() *SecureEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SecureEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecureEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SecureEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecureEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SecureEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := secureevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SecureEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntentConfidence(); ok {
		if err := secureevent.IntentConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "intent_confidence", err: fmt.Errorf(`ent: validator failed for field "SecureEvent.intent_confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *SecureEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(secureevent.Table, secureevent.Columns, sqlgraph.NewFieldSpec(secureevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionFingerprint(); ok {
		_spec.SetField(secureevent.FieldSessionFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimestampBucket(); ok {
		_spec.SetField(secureevent.FieldTimestampBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentVector(); ok {
		_spec.SetField(secureevent.FieldIntentVector, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntentVector(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, secureevent.FieldIntentVector, value)
		})
	}
	if value, ok := _u.mutation.StructuralHash(); ok {
		_spec.SetField(secureevent.FieldStructuralHash, field.TypeString, value)
	}
	if _u.mutation.StructuralHashCleared() {
		_spec.ClearField(secureevent.FieldStructuralHash, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(secureevent.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(secureevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntentLabel(); ok {
		_spec.SetField(secureevent.FieldIntentLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentConfidence(); ok {
		_spec.SetField(secureevent.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntentConfidence(); ok {
		_spec.AddField(secureevent.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ElementSignature(); ok {
		_spec.SetField(secureevent.FieldElementSignature, field.TypeString, value)
	}
	if _u.mutation.ElementSignatureCleared() {
		_spec.ClearField(secureevent.FieldElementSignature, field.TypeString)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(secureevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(secureevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeviceFingerprint(); ok {
		_spec.SetField(secureevent.FieldDeviceFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(secureevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(secureevent.FieldIngestedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secureevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SecureEventUpdateOne is the builder for updating a single SecureEvent entity.
type SecureEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SecureEventMutation
}

// SetSessionFingerprint sets the "session_fingerprint" field.
func (_u *SecureEventUpdateOne) SetSessionFingerprint(v string) *SecureEventUpdateOne {
	_u.mutation.SetSessionFingerprint(v)
	return _u
}

// SetNillableSessionFingerprint sets the "session_fingerprint" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableSessionFingerprint(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetSessionFingerprint(*v)
	}
	return _u
}

// SetTimestampBucket sets the "timestamp_bucket" field.
func (_u *SecureEventUpdateOne) SetTimestampBucket(v string) *SecureEventUpdateOne {
	_u.mutation.SetTimestampBucket(v)
	return _u
}

// SetNillableTimestampBucket sets the "timestamp_bucket" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableTimestampBucket(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetTimestampBucket(*v)
	}
	return _u
}

// SetIntentVector sets the "intent_vector" field.
func (_u *SecureEventUpdateOne) SetIntentVector(v []float64) *SecureEventUpdateOne {
	_u.mutation.SetIntentVector(v)
	return _u
}

// AppendIntentVector appends value to the "intent_vector" field.
func (_u *SecureEventUpdateOne) AppendIntentVector(v []float64) *SecureEventUpdateOne {
	_u.mutation.AppendIntentVector(v)
	return _u
}

// SetStructuralHash sets the "structural_hash" field.
func (_u *SecureEventUpdateOne) SetStructuralHash(v string) *SecureEventUpdateOne {
	_u.mutation.SetStructuralHash(v)
	return _u
}

// SetNillableStructuralHash sets the "structural_hash" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableStructuralHash(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetStructuralHash(*v)
	}
	return _u
}

// ClearStructuralHash clears the value of the "structural_hash" field.
func (_u *SecureEventUpdateOne) ClearStructuralHash() *SecureEventUpdateOne {
	_u.mutation.ClearStructuralHash()
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *SecureEventUpdateOne) SetOrgID(v string) *SecureEventUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableOrgID(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *SecureEventUpdateOne) SetEventType(v secureevent.EventType) *SecureEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableEventType(v *secureevent.EventType) *SecureEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetIntentLabel sets the "intent_label" field.
func (_u *SecureEventUpdateOne) SetIntentLabel(v string) *SecureEventUpdateOne {
	_u.mutation.SetIntentLabel(v)
	return _u
}

// SetNillableIntentLabel sets the "intent_label" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableIntentLabel(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetIntentLabel(*v)
	}
	return _u
}

// SetIntentConfidence sets the "intent_confidence" field.
func (_u *SecureEventUpdateOne) SetIntentConfidence(v float64) *SecureEventUpdateOne {
	_u.mutation.ResetIntentConfidence()
	_u.mutation.SetIntentConfidence(v)
	return _u
}

// SetNillableIntentConfidence sets the "intent_confidence" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableIntentConfidence(v *float64) *SecureEventUpdateOne {
	if v != nil {
		_u.SetIntentConfidence(*v)
	}
	return _u
}

// AddIntentConfidence adds value to the "intent_confidence" field.
func (_u *SecureEventUpdateOne) AddIntentConfidence(v float64) *SecureEventUpdateOne {
	_u.mutation.AddIntentConfidence(v)
	return _u
}

// SetElementSignature sets the "element_signature" field.
func (_u *SecureEventUpdateOne) SetElementSignature(v string) *SecureEventUpdateOne {
	_u.mutation.SetElementSignature(v)
	return _u
}

// SetNillableElementSignature sets the "element_signature" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableElementSignature(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetElementSignature(*v)
	}
	return _u
}

// ClearElementSignature clears the value of the "element_signature" field.
func (_u *SecureEventUpdateOne) ClearElementSignature() *SecureEventUpdateOne {
	_u.mutation.ClearElementSignature()
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *SecureEventUpdateOne) SetSequenceNumber(v int) *SecureEventUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableSequenceNumber(v *int) *SecureEventUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *SecureEventUpdateOne) AddSequenceNumber(v int) *SecureEventUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetDeviceFingerprint sets the "device_fingerprint" field.
func (_u *SecureEventUpdateOne) SetDeviceFingerprint(v string) *SecureEventUpdateOne {
	_u.mutation.SetDeviceFingerprint(v)
	return _u
}

// SetNillableDeviceFingerprint sets the "device_fingerprint" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableDeviceFingerprint(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetDeviceFingerprint(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *SecureEventUpdateOne) SetBatchID(v string) *SecureEventUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableBatchID(v *string) *SecureEventUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *SecureEventUpdateOne) SetIngestedAt(v time.Time) *SecureEventUpdateOne {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *SecureEventUpdateOne) SetNillableIngestedAt(v *time.Time) *SecureEventUpdateOne {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// Mutation returns the SecureEventMutation object of the builder.
func (_u *SecureEventUpdateOne) Mutation() *SecureEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SecureEventUpdate builder.
func (_u *SecureEventUpdateOne) Where(ps ...predicate.SecureEvent) *SecureEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SecureEventUpdateOne) Select(field string, fields ...string) *SecureEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SecureEvent entity.
func (_u *SecureEventUpdateOne) Save(ctx context.Context) (*SecureEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SecureEventUpdateOne) SaveX(ctx context.Context) *SecureEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SecureEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SecureEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SecureEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := secureevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "SecureEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntentConfidence(); ok {
		if err := secureevent.IntentConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "intent_confidence", err: fmt.Errorf(`ent: validator failed for field "SecureEvent.intent_confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *SecureEventUpdateOne) sqlSave(ctx context.Context) (_node *SecureEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(secureevent.Table, secureevent.Columns, sqlgraph.NewFieldSpec(secureevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SecureEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, secureevent.FieldID)
		for _, f := range fields {
			if !secureevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != secureevent.FieldID {
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
	if value, ok := _u.mutation.SessionFingerprint(); ok {
		_spec.SetField(secureevent.FieldSessionFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimestampBucket(); ok {
		_spec.SetField(secureevent.FieldTimestampBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentVector(); ok {
		_spec.SetField(secureevent.FieldIntentVector, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntentVector(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, secureevent.FieldIntentVector, value)
		})
	}
	if value, ok := _u.mutation.StructuralHash(); ok {
		_spec.SetField(secureevent.FieldStructuralHash, field.TypeString, value)
	}
	if _u.mutation.StructuralHashCleared() {
		_spec.ClearField(secureevent.FieldStructuralHash, field.TypeString)
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(secureevent.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(secureevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntentLabel(); ok {
		_spec.SetField(secureevent.FieldIntentLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentConfidence(); ok {
		_spec.SetField(secureevent.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntentConfidence(); ok {
		_spec.AddField(secureevent.FieldIntentConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ElementSignature(); ok {
		_spec.SetField(secureevent.FieldElementSignature, field.TypeString, value)
	}
	if _u.mutation.ElementSignatureCleared() {
		_spec.ClearField(secureevent.FieldElementSignature, field.TypeString)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(secureevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(secureevent.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeviceFingerprint(); ok {
		_spec.SetField(secureevent.FieldDeviceFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(secureevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(secureevent.FieldIngestedAt, field.TypeTime, value)
	}
	_node = &SecureEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{secureevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
