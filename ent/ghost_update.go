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
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/ent/predicate"
	"github.com/ghostworks/ghostd/pkg/models"
)

// GhostUpdate is the builder for updating Ghost entities.
type GhostUpdate struct {
	config
	hooks    []Hook
	mutation *GhostMutation
}

// Where appends a list predicates to the GhostUpdate builder.
func (_u *GhostUpdate) Where(ps ...predicate.Ghost) *GhostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *GhostUpdate) SetOrgID(v string) *GhostUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableOrgID(v *string) *GhostUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GhostUpdate) SetName(v string) *GhostUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableName(v *string) *GhostUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *GhostUpdate) SetDescription(v string) *GhostUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableDescription(v *string) *GhostUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GhostUpdate) ClearDescription() *GhostUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *GhostUpdate) SetVersion(v int) *GhostUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableVersion(v *int) *GhostUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *GhostUpdate) AddVersion(v int) *GhostUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GhostUpdate) SetStatus(v ghost.Status) *GhostUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableStatus(v *ghost.Status) *GhostUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *GhostUpdate) SetTrigger(v models.GhostTrigger) *GhostUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableTrigger(v *models.GhostTrigger) *GhostUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// ClearTrigger clears the value of the "trigger" field.
func (_u *GhostUpdate) ClearTrigger() *GhostUpdate {
	_u.mutation.ClearTrigger()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *GhostUpdate) SetParameters(v []models.GhostParameter) *GhostUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *GhostUpdate) AppendParameters(v []models.GhostParameter) *GhostUpdate {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *GhostUpdate) ClearParameters() *GhostUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetExecutionPlan sets the "execution_plan" field.
func (_u *GhostUpdate) SetExecutionPlan(v []models.ExecutionNode) *GhostUpdate {
	_u.mutation.SetExecutionPlan(v)
	return _u
}

// AppendExecutionPlan appends value to the "execution_plan" field.
func (_u *GhostUpdate) AppendExecutionPlan(v []models.ExecutionNode) *GhostUpdate {
	_u.mutation.AppendExecutionPlan(v)
	return _u
}

// ClearExecutionPlan clears the value of the "execution_plan" field.
func (_u *GhostUpdate) ClearExecutionPlan() *GhostUpdate {
	_u.mutation.ClearExecutionPlan()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GhostUpdate) SetConfidence(v float64) *GhostUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableConfidence(v *float64) *GhostUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GhostUpdate) AddConfidence(v float64) *GhostUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *GhostUpdate) ClearConfidence() *GhostUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSourcePatternID sets the "source_pattern_id" field.
func (_u *GhostUpdate) SetSourcePatternID(v string) *GhostUpdate {
	_u.mutation.SetSourcePatternID(v)
	return _u
}

// SetNillableSourcePatternID sets the "source_pattern_id" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableSourcePatternID(v *string) *GhostUpdate {
	if v != nil {
		_u.SetSourcePatternID(*v)
	}
	return _u
}

// ClearSourcePatternID clears the value of the "source_pattern_id" field.
func (_u *GhostUpdate) ClearSourcePatternID() *GhostUpdate {
	_u.mutation.ClearSourcePatternID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *GhostUpdate) SetCreatedBy(v string) *GhostUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableCreatedBy(v *string) *GhostUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *GhostUpdate) ClearCreatedBy() *GhostUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *GhostUpdate) SetApprovedBy(v string) *GhostUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableApprovedBy(v *string) *GhostUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *GhostUpdate) ClearApprovedBy() *GhostUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *GhostUpdate) SetIsActive(v bool) *GhostUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableIsActive(v *bool) *GhostUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUsageStats sets the "usage_stats" field.
func (_u *GhostUpdate) SetUsageStats(v map[string]interface{}) *GhostUpdate {
	_u.mutation.SetUsageStats(v)
	return _u
}

// ClearUsageStats clears the value of the "usage_stats" field.
func (_u *GhostUpdate) ClearUsageStats() *GhostUpdate {
	_u.mutation.ClearUsageStats()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GhostUpdate) SetCreatedAt(v time.Time) *GhostUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GhostUpdate) SetNillableCreatedAt(v *time.Time) *GhostUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GhostUpdate) SetUpdatedAt(v time.Time) *GhostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GhostMutation object of the builder.
func (_u *GhostUpdate) Mutation() *GhostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GhostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GhostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GhostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ghost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := ghost.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Ghost.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ghost.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ghost.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghost.Table, ghost.Columns, sqlgraph.NewFieldSpec(ghost.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(ghost.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(ghost.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ghost.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ghost.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ghost.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ghost.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ghost.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(ghost.FieldTrigger, field.TypeJSON, value)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(ghost.FieldTrigger, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(ghost.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghost.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(ghost.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionPlan(); ok {
		_spec.SetField(ghost.FieldExecutionPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghost.FieldExecutionPlan, value)
		})
	}
	if _u.mutation.ExecutionPlanCleared() {
		_spec.ClearField(ghost.FieldExecutionPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ghost.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ghost.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(ghost.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SourcePatternID(); ok {
		_spec.SetField(ghost.FieldSourcePatternID, field.TypeString, value)
	}
	if _u.mutation.SourcePatternIDCleared() {
		_spec.ClearField(ghost.FieldSourcePatternID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(ghost.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(ghost.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(ghost.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(ghost.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(ghost.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageStats(); ok {
		_spec.SetField(ghost.FieldUsageStats, field.TypeJSON, value)
	}
	if _u.mutation.UsageStatsCleared() {
		_spec.ClearField(ghost.FieldUsageStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ghost.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ghost.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GhostUpdateOne is the builder for updating a single Ghost entity.
type GhostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GhostMutation
}

// SetOrgID sets the "org_id" field.
func (_u *GhostUpdateOne) SetOrgID(v string) *GhostUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableOrgID(v *string) *GhostUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GhostUpdateOne) SetName(v string) *GhostUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableName(v *string) *GhostUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *GhostUpdateOne) SetDescription(v string) *GhostUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableDescription(v *string) *GhostUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *GhostUpdateOne) ClearDescription() *GhostUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetVersion sets the "version" field.
func (_u *GhostUpdateOne) SetVersion(v int) *GhostUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableVersion(v *int) *GhostUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *GhostUpdateOne) AddVersion(v int) *GhostUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GhostUpdateOne) SetStatus(v ghost.Status) *GhostUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableStatus(v *ghost.Status) *GhostUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *GhostUpdateOne) SetTrigger(v models.GhostTrigger) *GhostUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableTrigger(v *models.GhostTrigger) *GhostUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// ClearTrigger clears the value of the "trigger" field.
func (_u *GhostUpdateOne) ClearTrigger() *GhostUpdateOne {
	_u.mutation.ClearTrigger()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *GhostUpdateOne) SetParameters(v []models.GhostParameter) *GhostUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *GhostUpdateOne) AppendParameters(v []models.GhostParameter) *GhostUpdateOne {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *GhostUpdateOne) ClearParameters() *GhostUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetExecutionPlan sets the "execution_plan" field.
func (_u *GhostUpdateOne) SetExecutionPlan(v []models.ExecutionNode) *GhostUpdateOne {
	_u.mutation.SetExecutionPlan(v)
	return _u
}

// AppendExecutionPlan appends value to the "execution_plan" field.
func (_u *GhostUpdateOne) AppendExecutionPlan(v []models.ExecutionNode) *GhostUpdateOne {
	_u.mutation.AppendExecutionPlan(v)
	return _u
}

// ClearExecutionPlan clears the value of the "execution_plan" field.
func (_u *GhostUpdateOne) ClearExecutionPlan() *GhostUpdateOne {
	_u.mutation.ClearExecutionPlan()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GhostUpdateOne) SetConfidence(v float64) *GhostUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableConfidence(v *float64) *GhostUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GhostUpdateOne) AddConfidence(v float64) *GhostUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *GhostUpdateOne) ClearConfidence() *GhostUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetSourcePatternID sets the "source_pattern_id" field.
func (_u *GhostUpdateOne) SetSourcePatternID(v string) *GhostUpdateOne {
	_u.mutation.SetSourcePatternID(v)
	return _u
}

// SetNillableSourcePatternID sets the "source_pattern_id" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableSourcePatternID(v *string) *GhostUpdateOne {
	if v != nil {
		_u.SetSourcePatternID(*v)
	}
	return _u
}

// ClearSourcePatternID clears the value of the "source_pattern_id" field.
func (_u *GhostUpdateOne) ClearSourcePatternID() *GhostUpdateOne {
	_u.mutation.ClearSourcePatternID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *GhostUpdateOne) SetCreatedBy(v string) *GhostUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableCreatedBy(v *string) *GhostUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *GhostUpdateOne) ClearCreatedBy() *GhostUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *GhostUpdateOne) SetApprovedBy(v string) *GhostUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableApprovedBy(v *string) *GhostUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *GhostUpdateOne) ClearApprovedBy() *GhostUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *GhostUpdateOne) SetIsActive(v bool) *GhostUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableIsActive(v *bool) *GhostUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUsageStats sets the "usage_stats" field.
func (_u *GhostUpdateOne) SetUsageStats(v map[string]interface{}) *GhostUpdateOne {
	_u.mutation.SetUsageStats(v)
	return _u
}

// ClearUsageStats clears the value of the "usage_stats" field.
func (_u *GhostUpdateOne) ClearUsageStats() *GhostUpdateOne {
	_u.mutation.ClearUsageStats()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *GhostUpdateOne) SetCreatedAt(v time.Time) *GhostUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *GhostUpdateOne) SetNillableCreatedAt(v *time.Time) *GhostUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GhostUpdateOne) SetUpdatedAt(v time.Time) *GhostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GhostMutation object of the builder.
func (_u *GhostUpdateOne) Mutation() *GhostMutation {
	return _u.mutation
}

// Where appends a list predicates to the GhostUpdate builder.
func (_u *GhostUpdateOne) Where(ps ...predicate.Ghost) *GhostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GhostUpdateOne) Select(field string, fields ...string) *GhostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Ghost entity.
func (_u *GhostUpdateOne) Save(ctx context.Context) (*Ghost, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostUpdateOne) SaveX(ctx context.Context) *Ghost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GhostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GhostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ghost.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := ghost.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Ghost.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := ghost.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Ghost.status": %w`, err)}
		}
	}
	return nil
}

func (_u *GhostUpdateOne) sqlSave(ctx context.Context) (_node *Ghost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghost.Table, ghost.Columns, sqlgraph.NewFieldSpec(ghost.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ghost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ghost.FieldID)
		for _, f := range fields {
			if !ghost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ghost.FieldID {
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
		_spec.SetField(ghost.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(ghost.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(ghost.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(ghost.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(ghost.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(ghost.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ghost.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(ghost.FieldTrigger, field.TypeJSON, value)
	}
	if _u.mutation.TriggerCleared() {
		_spec.ClearField(ghost.FieldTrigger, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(ghost.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghost.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(ghost.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionPlan(); ok {
		_spec.SetField(ghost.FieldExecutionPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExecutionPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghost.FieldExecutionPlan, value)
		})
	}
	if _u.mutation.ExecutionPlanCleared() {
		_spec.ClearField(ghost.FieldExecutionPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(ghost.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(ghost.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(ghost.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SourcePatternID(); ok {
		_spec.SetField(ghost.FieldSourcePatternID, field.TypeString, value)
	}
	if _u.mutation.SourcePatternIDCleared() {
		_spec.ClearField(ghost.FieldSourcePatternID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(ghost.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(ghost.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(ghost.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(ghost.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(ghost.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsageStats(); ok {
		_spec.SetField(ghost.FieldUsageStats, field.TypeJSON, value)
	}
	if _u.mutation.UsageStatsCleared() {
		_spec.ClearField(ghost.FieldUsageStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ghost.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ghost.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Ghost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
