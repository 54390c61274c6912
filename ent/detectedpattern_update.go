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
	"github.com/ghostworks/ghostd/ent/detectedpattern"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// DetectedPatternUpdate is the builder for updating DetectedPattern entities.
type DetectedPatternUpdate struct {
	config
	hooks    []Hook
	mutation *DetectedPatternMutation
}

// Where appends a list predicates to the DetectedPatternUpdate builder.
func (_u *DetectedPatternUpdate) Where(ps ...predicate.DetectedPattern) *DetectedPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *DetectedPatternUpdate) SetOrgID(v string) *DetectedPatternUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableOrgID(v *string) *DetectedPatternUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetIntentSequence sets the "intent_sequence" field.
func (_u *DetectedPatternUpdate) SetIntentSequence(v []string) *DetectedPatternUpdate {
	_u.mutation.SetIntentSequence(v)
	return _u
}

// AppendIntentSequence appends value to the "intent_sequence" field.
func (_u *DetectedPatternUpdate) AppendIntentSequence(v []string) *DetectedPatternUpdate {
	_u.mutation.AppendIntentSequence(v)
	return _u
}

// SetStructuralHashes sets the "structural_hashes" field.
func (_u *DetectedPatternUpdate) SetStructuralHashes(v []string) *DetectedPatternUpdate {
	_u.mutation.SetStructuralHashes(v)
	return _u
}

// AppendStructuralHashes appends value to the "structural_hashes" field.
func (_u *DetectedPatternUpdate) AppendStructuralHashes(v []string) *DetectedPatternUpdate {
	_u.mutation.AppendStructuralHashes(v)
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *DetectedPatternUpdate) SetOccurrences(v int) *DetectedPatternUpdate {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableOccurrences(v *int) *DetectedPatternUpdate {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *DetectedPatternUpdate) AddOccurrences(v int) *DetectedPatternUpdate {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DetectedPatternUpdate) SetConfidence(v float64) *DetectedPatternUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableConfidence(v *float64) *DetectedPatternUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DetectedPatternUpdate) AddConfidence(v float64) *DetectedPatternUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuggestedName sets the "suggested_name" field.
func (_u *DetectedPatternUpdate) SetSuggestedName(v string) *DetectedPatternUpdate {
	_u.mutation.SetSuggestedName(v)
	return _u
}

// SetNillableSuggestedName sets the "suggested_name" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableSuggestedName(v *string) *DetectedPatternUpdate {
	if v != nil {
		_u.SetSuggestedName(*v)
	}
	return _u
}

// ClearSuggestedName clears the value of the "suggested_name" field.
func (_u *DetectedPatternUpdate) ClearSuggestedName() *DetectedPatternUpdate {
	_u.mutation.ClearSuggestedName()
	return _u
}

// SetSuggestedDescription sets the "suggested_description" field.
func (_u *DetectedPatternUpdate) SetSuggestedDescription(v string) *DetectedPatternUpdate {
	_u.mutation.SetSuggestedDescription(v)
	return _u
}

// SetNillableSuggestedDescription sets the "suggested_description" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableSuggestedDescription(v *string) *DetectedPatternUpdate {
	if v != nil {
		_u.SetSuggestedDescription(*v)
	}
	return _u
}

// ClearSuggestedDescription clears the value of the "suggested_description" field.
func (_u *DetectedPatternUpdate) ClearSuggestedDescription() *DetectedPatternUpdate {
	_u.mutation.ClearSuggestedDescription()
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *DetectedPatternUpdate) SetFirstSeen(v time.Time) *DetectedPatternUpdate {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableFirstSeen(v *time.Time) *DetectedPatternUpdate {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *DetectedPatternUpdate) SetLastSeen(v time.Time) *DetectedPatternUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableLastSeen(v *time.Time) *DetectedPatternUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectedPatternUpdate) SetStatus(v detectedpattern.Status) *DetectedPatternUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableStatus(v *detectedpattern.Status) *DetectedPatternUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DetectedPatternUpdate) SetCreatedAt(v time.Time) *DetectedPatternUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DetectedPatternUpdate) SetNillableCreatedAt(v *time.Time) *DetectedPatternUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DetectedPatternUpdate) SetUpdatedAt(v time.Time) *DetectedPatternUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DetectedPatternMutation object of the builder.
func (_u *DetectedPatternUpdate) Mutation() *DetectedPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DetectedPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectedPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DetectedPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectedPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DetectedPatternUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := detectedpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectedPatternUpdate) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := detectedpattern.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "DetectedPattern.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := detectedpattern.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectedPattern.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DetectedPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectedpattern.Table, detectedpattern.Columns, sqlgraph.NewFieldSpec(detectedpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(detectedpattern.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentSequence(); ok {
		_spec.SetField(detectedpattern.FieldIntentSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntentSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectedpattern.FieldIntentSequence, value)
		})
	}
	if value, ok := _u.mutation.StructuralHashes(); ok {
		_spec.SetField(detectedpattern.FieldStructuralHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuralHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectedpattern.FieldStructuralHashes, value)
		})
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(detectedpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(detectedpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(detectedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(detectedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuggestedName(); ok {
		_spec.SetField(detectedpattern.FieldSuggestedName, field.TypeString, value)
	}
	if _u.mutation.SuggestedNameCleared() {
		_spec.ClearField(detectedpattern.FieldSuggestedName, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedDescription(); ok {
		_spec.SetField(detectedpattern.FieldSuggestedDescription, field.TypeString, value)
	}
	if _u.mutation.SuggestedDescriptionCleared() {
		_spec.ClearField(detectedpattern.FieldSuggestedDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(detectedpattern.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(detectedpattern.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detectedpattern.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(detectedpattern.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(detectedpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectedpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DetectedPatternUpdateOne is the builder for updating a single DetectedPattern entity.
type DetectedPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DetectedPatternMutation
}

// SetOrgID sets the "org_id" field.
func (_u *DetectedPatternUpdateOne) SetOrgID(v string) *DetectedPatternUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableOrgID(v *string) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetIntentSequence sets the "intent_sequence" field.
func (_u *DetectedPatternUpdateOne) SetIntentSequence(v []string) *DetectedPatternUpdateOne {
	_u.mutation.SetIntentSequence(v)
	return _u
}

// AppendIntentSequence appends value to the "intent_sequence" field.
func (_u *DetectedPatternUpdateOne) AppendIntentSequence(v []string) *DetectedPatternUpdateOne {
	_u.mutation.AppendIntentSequence(v)
	return _u
}

// SetStructuralHashes sets the "structural_hashes" field.
func (_u *DetectedPatternUpdateOne) SetStructuralHashes(v []string) *DetectedPatternUpdateOne {
	_u.mutation.SetStructuralHashes(v)
	return _u
}

// AppendStructuralHashes appends value to the "structural_hashes" field.
func (_u *DetectedPatternUpdateOne) AppendStructuralHashes(v []string) *DetectedPatternUpdateOne {
	_u.mutation.AppendStructuralHashes(v)
	return _u
}

// SetOccurrences sets the "occurrences" field.
func (_u *DetectedPatternUpdateOne) SetOccurrences(v int) *DetectedPatternUpdateOne {
	_u.mutation.ResetOccurrences()
	_u.mutation.SetOccurrences(v)
	return _u
}

// SetNillableOccurrences sets the "occurrences" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableOccurrences(v *int) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetOccurrences(*v)
	}
	return _u
}

// AddOccurrences adds value to the "occurrences" field.
func (_u *DetectedPatternUpdateOne) AddOccurrences(v int) *DetectedPatternUpdateOne {
	_u.mutation.AddOccurrences(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DetectedPatternUpdateOne) SetConfidence(v float64) *DetectedPatternUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableConfidence(v *float64) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DetectedPatternUpdateOne) AddConfidence(v float64) *DetectedPatternUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuggestedName sets the "suggested_name" field.
func (_u *DetectedPatternUpdateOne) SetSuggestedName(v string) *DetectedPatternUpdateOne {
	_u.mutation.SetSuggestedName(v)
	return _u
}

// SetNillableSuggestedName sets the "suggested_name" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableSuggestedName(v *string) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetSuggestedName(*v)
	}
	return _u
}

// ClearSuggestedName clears the value of the "suggested_name" field.
func (_u *DetectedPatternUpdateOne) ClearSuggestedName() *DetectedPatternUpdateOne {
	_u.mutation.ClearSuggestedName()
	return _u
}

// SetSuggestedDescription sets the "suggested_description" field.
func (_u *DetectedPatternUpdateOne) SetSuggestedDescription(v string) *DetectedPatternUpdateOne {
	_u.mutation.SetSuggestedDescription(v)
	return _u
}

// SetNillableSuggestedDescription sets the "suggested_description" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableSuggestedDescription(v *string) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetSuggestedDescription(*v)
	}
	return _u
}

// ClearSuggestedDescription clears the value of the "suggested_description" field.
func (_u *DetectedPatternUpdateOne) ClearSuggestedDescription() *DetectedPatternUpdateOne {
	_u.mutation.ClearSuggestedDescription()
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *DetectedPatternUpdateOne) SetFirstSeen(v time.Time) *DetectedPatternUpdateOne {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableFirstSeen(v *time.Time) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *DetectedPatternUpdateOne) SetLastSeen(v time.Time) *DetectedPatternUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableLastSeen(v *time.Time) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectedPatternUpdateOne) SetStatus(v detectedpattern.Status) *DetectedPatternUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableStatus(v *detectedpattern.Status) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DetectedPatternUpdateOne) SetCreatedAt(v time.Time) *DetectedPatternUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DetectedPatternUpdateOne) SetNillableCreatedAt(v *time.Time) *DetectedPatternUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DetectedPatternUpdateOne) SetUpdatedAt(v time.Time) *DetectedPatternUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DetectedPatternMutation object of the builder.
func (_u *DetectedPatternUpdateOne) Mutation() *DetectedPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the DetectedPatternUpdate builder.
func (_u *DetectedPatternUpdateOne) Where(ps ...predicate.DetectedPattern) *DetectedPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DetectedPatternUpdateOne) Select(field string, fields ...string) *DetectedPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DetectedPattern entity.
func (_u *DetectedPatternUpdateOne) Save(ctx context.Context) (*DetectedPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectedPatternUpdateOne) SaveX(ctx context.Context) *DetectedPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DetectedPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectedPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DetectedPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := detectedpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectedPatternUpdateOne) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := detectedpattern.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "DetectedPattern.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := detectedpattern.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectedPattern.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DetectedPatternUpdateOne) sqlSave(ctx context.Context) (_node *DetectedPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectedpattern.Table, detectedpattern.Columns, sqlgraph.NewFieldSpec(detectedpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DetectedPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detectedpattern.FieldID)
		for _, f := range fields {
			if !detectedpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != detectedpattern.FieldID {
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
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(detectedpattern.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentSequence(); ok {
		_spec.SetField(detectedpattern.FieldIntentSequence, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntentSequence(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectedpattern.FieldIntentSequence, value)
		})
	}
	if value, ok := _u.mutation.StructuralHashes(); ok {
		_spec.SetField(detectedpattern.FieldStructuralHashes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuralHashes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectedpattern.FieldStructuralHashes, value)
		})
	}
	if value, ok := _u.mutation.Occurrences(); ok {
		_spec.SetField(detectedpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrences(); ok {
		_spec.AddField(detectedpattern.FieldOccurrences, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(detectedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(detectedpattern.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SuggestedName(); ok {
		_spec.SetField(detectedpattern.FieldSuggestedName, field.TypeString, value)
	}
	if _u.mutation.SuggestedNameCleared() {
		_spec.ClearField(detectedpattern.FieldSuggestedName, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedDescription(); ok {
		_spec.SetField(detectedpattern.FieldSuggestedDescription, field.TypeString, value)
	}
	if _u.mutation.SuggestedDescriptionCleared() {
		_spec.ClearField(detectedpattern.FieldSuggestedDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(detectedpattern.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(detectedpattern.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detectedpattern.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(detectedpattern.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(detectedpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DetectedPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectedpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
