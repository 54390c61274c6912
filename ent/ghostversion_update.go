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
	"github.com/ghostworks/ghostd/ent/ghostversion"
	"github.com/ghostworks/ghostd/ent/predicate"
	"github.com/ghostworks/ghostd/pkg/models"
)

// GhostVersionUpdate is the builder for updating GhostVersion entities.
type GhostVersionUpdate struct {
	config
	hooks    []Hook
	mutation *GhostVersionMutation
}

// Where appends a list predicates to the GhostVersionUpdate builder.
func (_u *GhostVersionUpdate) Where(ps ...predicate.GhostVersion) *GhostVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGhostID sets the "ghost_id" field.
func (_u *GhostVersionUpdate) SetGhostID(v string) *GhostVersionUpdate {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *GhostVersionUpdate) SetNillableGhostID(v *string) *GhostVersionUpdate {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *GhostVersionUpdate) SetVersion(v int) *GhostVersionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *GhostVersionUpdate) SetNillableVersion(v *int) *GhostVersionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *GhostVersionUpdate) AddVersion(v int) *GhostVersionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetExecutionPlan sets the "execution_plan" field.
func (_u *GhostVersionUpdate) SetExecutionPlan(v []models.ExecutionNode) *GhostVersionUpdate {
	_u.mutation.SetExecutionPlan(v)
	return _u
}

// AppendExecutionPlan appends value to the "execution_plan" field.
func (_u *GhostVersionUpdate) AppendExecutionPlan(v []models.ExecutionNode) *GhostVersionUpdate {
	_u.mutation.AppendExecutionPlan(v)
	return _u
}

// ClearExecutionPlan clears the value of the "execution_plan" field.
func (_u *GhostVersionUpdate) ClearExecutionPlan() *GhostVersionUpdate {
	_u.mutation.ClearExecutionPlan()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *GhostVersionUpdate) SetParameters(v []models.GhostParameter) *GhostVersionUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *GhostVersionUpdate) AppendParameters(v []models.GhostParameter) *GhostVersionUpdate {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *GhostVersionUpdate) ClearParameters() *GhostVersionUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *GhostVersionUpdate) SetTrigger(v models.GhostTrigger) *GhostVersionUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *GhostVersionUpdate) SetNillableTrigger(v *models.GhostTrigger) *GhostVersionUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// ClearTrigger clears the value of the "trigger" field.
func (_u *GhostVersionUpdate) ClearTrigger() *GhostVersionUpdate {
	_u.mutation.ClearTrigger()
	return _u
}

// SetChangeDescription sets the "change_description" field.
func (_u *GhostVersionUpdate) SetChangeDescription(v string) *GhostVersionUpdate {
	_u.mutation.SetChangeDescription(v)
	return _u
}

// SetNillableChangeDescription sets the "change_description" field if the given value is not nil.
func (_u *GhostVersionUpdate) SetNillableChangeDescription(v *string) *GhostVersionUpdate {
	if v != nil {
		_u.SetChangeDescription(*v)
	}
	return _u
}

// ClearChangeDescription clears the value of the "change_description" field.
func (_u *GhostVersionUpdate) ClearChangeDescription() *GhostVersionUpdate {
	_u.mutation.ClearChangeDescription()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *GhostVersionUpdate) SetCreatedBy(v string) *GhostVersionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *GhostVersionUpdate) SetNillableCreatedBy(v *string) *GhostVersionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *GhostVersionUpdate) ClearCreatedBy() *GhostVersionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GhostVersionUpdate) SetCreatedAt(v time.Time) *GhostVersionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GhostVersionUpdate) SetNillableCreatedAt(v *time.Time) *GhostVersionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the GhostVersionMutation object of the builder.
func (_u *GhostVersionUpdate) Mutation() *GhostVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GhostVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GhostVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostVersionUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := ghostversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "GhostVersion.version": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostversion.Table, ghostversion.Columns, sqlgraph.NewFieldSpec(ghostversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(ghostversion.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ghostversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ghostversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionPlan(); ok {
		_spec.SetField(ghostversion.FieldExecutionPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghostversion.FieldExecutionPlan, value)
		})
	}
	if _u.mutation.ExecutionPlanCleared() {
		_spec.ClearField(ghostversion.FieldExecutionPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(ghostversion.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghostversion.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(ghostversion.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(ghostversion.FieldTrigger, field.TypeJSON, value)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(ghostversion.FieldTrigger, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangeDescription(); ok {
		_spec.SetField(ghostversion.FieldChangeDescription, field.TypeString, value)
	}
	if _u.mutation.ChangeDescriptionCleared() {
		_spec.ClearField(ghostversion.FieldChangeDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(ghostversion.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(ghostversion.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ghostversion.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghostversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GhostVersionUpdateOne is the builder for updating a single GhostVersion entity.
type GhostVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GhostVersionMutation
}

// SetGhostID sets the "ghost_id" field.
func (_u *GhostVersionUpdateOne) SetGhostID(v string) *GhostVersionUpdateOne {
	_u.mutation.SetGhostID(v)
	return _u
}

// SetNillableGhostID sets the "ghost_id" field if the given value is not nil.
func (_u *GhostVersionUpdateOne) SetNillableGhostID(v *string) *GhostVersionUpdateOne {
	if v != nil {
		_u.SetGhostID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *GhostVersionUpdateOne) SetVersion(v int) *GhostVersionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *GhostVersionUpdateOne) SetNillableVersion(v *int) *GhostVersionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *GhostVersionUpdateOne) AddVersion(v int) *GhostVersionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetExecutionPlan sets the "execution_plan" field.
func (_u *GhostVersionUpdateOne) SetExecutionPlan(v []models.ExecutionNode) *GhostVersionUpdateOne {
	_u.mutation.SetExecutionPlan(v)
	return _u
}

// AppendExecutionPlan appends value to the "execution_plan" field.
func (_u *GhostVersionUpdateOne) AppendExecutionPlan(v []models.ExecutionNode) *GhostVersionUpdateOne {
	_u.mutation.AppendExecutionPlan(v)
	return _u
}

// ClearExecutionPlan clears the value of the "execution_plan" field.
func (_u *GhostVersionUpdateOne) ClearExecutionPlan() *GhostVersionUpdateOne {
	_u.mutation.ClearExecutionPlan()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *GhostVersionUpdateOne) SetParameters(v []models.GhostParameter) *GhostVersionUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *GhostVersionUpdateOne) AppendParameters(v []models.GhostParameter) *GhostVersionUpdateOne {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *GhostVersionUpdateOne) ClearParameters() *GhostVersionUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *GhostVersionUpdateOne) SetTrigger(v models.GhostTrigger) *GhostVersionUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *GhostVersionUpdateOne) SetNillableTrigger(v *models.GhostTrigger) *GhostVersionUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// ClearTrigger clears the value of the "trigger" field.
func (_u *GhostVersionUpdateOne) ClearTrigger() *GhostVersionUpdateOne {
	_u.mutation.ClearTrigger()
	return _u
}

// SetChangeDescription sets the "change_description" field.
func (_u *GhostVersionUpdateOne) SetChangeDescription(v string) *GhostVersionUpdateOne {
	_u.mutation.SetChangeDescription(v)
	return _u
}

// SetNillableChangeDescription sets the "change_description" field if the given value is not nil.
func (_u *GhostVersionUpdateOne) SetNillableChangeDescription(v *string) *GhostVersionUpdateOne {
	if v != nil {
		_u.SetChangeDescription(*v)
	}
	return _u
}

// ClearChangeDescription clears the value of the "change_description" field.
func (_u *GhostVersionUpdateOne) ClearChangeDescription() *GhostVersionUpdateOne {
	_u.mutation.ClearChangeDescription()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *GhostVersionUpdateOne) SetCreatedBy(v string) *GhostVersionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *GhostVersionUpdateOne) SetNillableCreatedBy(v *string) *GhostVersionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *GhostVersionUpdateOne) ClearCreatedBy() *GhostVersionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GhostVersionUpdateOne) SetCreatedAt(v time.Time) *GhostVersionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GhostVersionUpdateOne) SetNillableCreatedAt(v *time.Time) *GhostVersionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the GhostVersionMutation object of the builder.
func (_u *GhostVersionUpdateOne) Mutation() *GhostVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GhostVersionUpdate builder.
func (_u *GhostVersionUpdateOne) Where(ps ...predicate.GhostVersion) *GhostVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GhostVersionUpdateOne) Select(field string, fields ...string) *GhostVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GhostVersion entity.
func (_u *GhostVersionUpdateOne) Save(ctx context.Context) (*GhostVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostVersionUpdateOne) SaveX(ctx context.Context) *GhostVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GhostVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostVersionUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := ghostversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "GhostVersion.version": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostVersionUpdateOne) sqlSave(ctx context.Context) (_node *GhostVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostversion.Table, ghostversion.Columns, sqlgraph.NewFieldSpec(ghostversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GhostVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ghostversion.FieldID)
		for _, f := range fields {
			if !ghostversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ghostversion.FieldID {
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
	if value, ok := _u.mutation.GhostID(); ok {
		_spec.SetField(ghostversion.FieldGhostID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ghostversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ghostversion.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExecutionPlan(); ok {
		_spec.SetField(ghostversion.FieldExecutionPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghostversion.FieldExecutionPlan, value)
		})
	}
	if _u.mutation.ExecutionPlanCleared() {
		_spec.ClearField(ghostversion.FieldExecutionPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(ghostversion.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghostversion.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(ghostversion.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(ghostversion.FieldTrigger, field.TypeJSON, value)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(ghostversion.FieldTrigger, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangeDescription(); ok {
		_spec.SetField(ghostversion.FieldChangeDescription, field.TypeString, value)
	}
	if _u.mutation.ChangeDescriptionCleared() {
		_spec.ClearField(ghostversion.FieldChangeDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(ghostversion.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(ghostversion.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ghostversion.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &GhostVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghostversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
