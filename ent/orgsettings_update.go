// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/orgsettings"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// OrgSettingsUpdate is the builder for updating OrgSettings entities.
type OrgSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *OrgSettingsMutation
}

// Where appends a list predicates to the OrgSettingsUpdate builder.
func (_u *OrgSettingsUpdate) Where(ps ...predicate.OrgSettings) *OrgSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSettings sets the "settings" field.
func (_u *OrgSettingsUpdate) SetSettings(v map[string]interface{}) *OrgSettingsUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *OrgSettingsUpdate) ClearSettings() *OrgSettingsUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (_u *OrgSettingsUpdate) SetAutoApproveThreshold(v float64) *OrgSettingsUpdate {
	_u.mutation.ResetAutoApproveThreshold()
	_u.mutation.SetAutoApproveThreshold(v)
	return _u
}

// SetNillableAutoApproveThreshold sets the "auto_approve_threshold" field if the given value is not nil.
func (_u *OrgSettingsUpdate) SetNillableAutoApproveThreshold(v *float64) *OrgSettingsUpdate {
	if v != nil {
		_u.SetAutoApproveThreshold(*v)
	}
	return _u
}

// AddAutoApproveThreshold adds value to the "auto_approve_threshold" field.
func (_u *OrgSettingsUpdate) AddAutoApproveThreshold(v float64) *OrgSettingsUpdate {
	_u.mutation.AddAutoApproveThreshold(v)
	return _u
}

// SetMaxExecutionsPerMinute sets the "max_executions_per_minute" field.
func (_u *OrgSettingsUpdate) SetMaxExecutionsPerMinute(v int) *OrgSettingsUpdate {
	_u.mutation.ResetMaxExecutionsPerMinute()
	_u.mutation.SetMaxExecutionsPerMinute(v)
	return _u
}

// SetNillableMaxExecutionsPerMinute sets the "max_executions_per_minute" field if the given value is not nil.
func (_u *OrgSettingsUpdate) SetNillableMaxExecutionsPerMinute(v *int) *OrgSettingsUpdate {
	if v != nil {
		_u.SetMaxExecutionsPerMinute(*v)
	}
	return _u
}

// AddMaxExecutionsPerMinute adds value to the "max_executions_per_minute" field.
func (_u *OrgSettingsUpdate) AddMaxExecutionsPerMinute(v int) *OrgSettingsUpdate {
	_u.mutation.AddMaxExecutionsPerMinute(v)
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *OrgSettingsUpdate) SetLlmProvider(v string) *OrgSettingsUpdate {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *OrgSettingsUpdate) SetNillableLlmProvider(v *string) *OrgSettingsUpdate {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *OrgSettingsUpdate) ClearLlmProvider() *OrgSettingsUpdate {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *OrgSettingsUpdate) SetLlmModel(v string) *OrgSettingsUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *OrgSettingsUpdate) SetNillableLlmModel(v *string) *OrgSettingsUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *OrgSettingsUpdate) ClearLlmModel() *OrgSettingsUpdate {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetRequireApprovalAboveValue sets the "require_approval_above_value" field.
func (_u *OrgSettingsUpdate) SetRequireApprovalAboveValue(v float64) *OrgSettingsUpdate {
	_u.mutation.ResetRequireApprovalAboveValue()
	_u.mutation.SetRequireApprovalAboveValue(v)
	return _u
}

// SetNillableRequireApprovalAboveValue sets the "require_approval_above_value" field if the given value is not nil.
func (_u *OrgSettingsUpdate) SetNillableRequireApprovalAboveValue(v *float64) *OrgSettingsUpdate {
	if v != nil {
		_u.SetRequireApprovalAboveValue(*v)
	}
	return _u
}

// AddRequireApprovalAboveValue adds value to the "require_approval_above_value" field.
func (_u *OrgSettingsUpdate) AddRequireApprovalAboveValue(v float64) *OrgSettingsUpdate {
	_u.mutation.AddRequireApprovalAboveValue(v)
	return _u
}

// ClearRequireApprovalAboveValue clears the value of the "require_approval_above_value" field.
func (_u *OrgSettingsUpdate) ClearRequireApprovalAboveValue() *OrgSettingsUpdate {
	_u.mutation.ClearRequireApprovalAboveValue()
	return _u
}

// Mutation returns the OrgSettingsMutation object of the builder.
func (_u *OrgSettingsUpdate) Mutation() *OrgSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrgSettingsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrgSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrgSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(orgsettings.Table, orgsettings.Columns, sqlgraph.NewFieldSpec(orgsettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(orgsettings.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(orgsettings.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoApproveThreshold(); ok {
		_spec.SetField(orgsettings.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAutoApproveThreshold(); ok {
		_spec.AddField(orgsettings.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxExecutionsPerMinute(); ok {
		_spec.SetField(orgsettings.FieldMaxExecutionsPerMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutionsPerMinute(); ok {
		_spec.AddField(orgsettings.FieldMaxExecutionsPerMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(orgsettings.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(orgsettings.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(orgsettings.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(orgsettings.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.RequireApprovalAboveValue(); ok {
		_spec.SetField(orgsettings.FieldRequireApprovalAboveValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRequireApprovalAboveValue(); ok {
		_spec.AddField(orgsettings.FieldRequireApprovalAboveValue, field.TypeFloat64, value)
	}
	if _u.mutation.RequireApprovalAboveValueCleared() {
		_spec.ClearField(orgsettings.FieldRequireApprovalAboveValue, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrgSettingsUpdateOne is the builder for updating a single OrgSettings entity.
type OrgSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrgSettingsMutation
}

// SetSettings sets the "settings" field.
func (_u *OrgSettingsUpdateOne) SetSettings(v map[string]interface{}) *OrgSettingsUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *OrgSettingsUpdateOne) ClearSettings() *OrgSettingsUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (_u *OrgSettingsUpdateOne) SetAutoApproveThreshold(v float64) *OrgSettingsUpdateOne {
	_u.mutation.ResetAutoApproveThreshold()
	_u.mutation.SetAutoApproveThreshold(v)
	return _u
}

// SetNillableAutoApproveThreshold sets the "auto_approve_threshold" field if the given value is not nil.
func (_u *OrgSettingsUpdateOne) SetNillableAutoApproveThreshold(v *float64) *OrgSettingsUpdateOne {
	if v != nil {
		_u.SetAutoApproveThreshold(*v)
	}
	return _u
}

// AddAutoApproveThreshold adds value to the "auto_approve_threshold" field.
func (_u *OrgSettingsUpdateOne) AddAutoApproveThreshold(v float64) *OrgSettingsUpdateOne {
	_u.mutation.AddAutoApproveThreshold(v)
	return _u
}

// SetMaxExecutionsPerMinute sets the "max_executions_per_minute" field.
func (_u *OrgSettingsUpdateOne) SetMaxExecutionsPerMinute(v int) *OrgSettingsUpdateOne {
	_u.mutation.ResetMaxExecutionsPerMinute()
	_u.mutation.SetMaxExecutionsPerMinute(v)
	return _u
}

// SetNillableMaxExecutionsPerMinute sets the "max_executions_per_minute" field if the given value is not nil.
func (_u *OrgSettingsUpdateOne) SetNillableMaxExecutionsPerMinute(v *int) *OrgSettingsUpdateOne {
	if v != nil {
		_u.SetMaxExecutionsPerMinute(*v)
	}
	return _u
}

// AddMaxExecutionsPerMinute adds value to the "max_executions_per_minute" field.
func (_u *OrgSettingsUpdateOne) AddMaxExecutionsPerMinute(v int) *OrgSettingsUpdateOne {
	_u.mutation.AddMaxExecutionsPerMinute(v)
	return _u
}

// SetLlmProvider sets the "llm_provider" field.
func (_u *OrgSettingsUpdateOne) SetLlmProvider(v string) *OrgSettingsUpdateOne {
	_u.mutation.SetLlmProvider(v)
	return _u
}

// SetNillableLlmProvider sets the "llm_provider" field if the given value is not nil.
func (_u *OrgSettingsUpdateOne) SetNillableLlmProvider(v *string) *OrgSettingsUpdateOne {
	if v != nil {
		_u.SetLlmProvider(*v)
	}
	return _u
}

// ClearLlmProvider clears the value of the "llm_provider" field.
func (_u *OrgSettingsUpdateOne) ClearLlmProvider() *OrgSettingsUpdateOne {
	_u.mutation.ClearLlmProvider()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *OrgSettingsUpdateOne) SetLlmModel(v string) *OrgSettingsUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *OrgSettingsUpdateOne) SetNillableLlmModel(v *string) *OrgSettingsUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *OrgSettingsUpdateOne) ClearLlmModel() *OrgSettingsUpdateOne {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetRequireApprovalAboveValue sets the "require_approval_above_value" field.
func (_u *OrgSettingsUpdateOne) SetRequireApprovalAboveValue(v float64) *OrgSettingsUpdateOne {
	_u.mutation.ResetRequireApprovalAboveValue()
	_u.mutation.SetRequireApprovalAboveValue(v)
	return _u
}

// SetNillableRequireApprovalAboveValue sets the "require_approval_above_value" field if the given value is not nil.
func (_u *OrgSettingsUpdateOne) SetNillableRequireApprovalAboveValue(v *float64) *OrgSettingsUpdateOne {
	if v != nil {
		_u.SetRequireApprovalAboveValue(*v)
	}
	return _u
}

// AddRequireApprovalAboveValue adds value to the "require_approval_above_value" field.
func (_u *OrgSettingsUpdateOne) AddRequireApprovalAboveValue(v float64) *OrgSettingsUpdateOne {
	_u.mutation.AddRequireApprovalAboveValue(v)
	return _u
}

// ClearRequireApprovalAboveValue clears the value of the "require_approval_above_value" field.
func (_u *OrgSettingsUpdateOne) ClearRequireApprovalAboveValue() *OrgSettingsUpdateOne {
	_u.mutation.ClearRequireApprovalAboveValue()
	return _u
}

// Mutation returns the OrgSettingsMutation object of the builder.
func (_u *OrgSettingsUpdateOne) Mutation() *OrgSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrgSettingsUpdate builder.
func (_u *OrgSettingsUpdateOne) Where(ps ...predicate.OrgSettings) *OrgSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrgSettingsUpdateOne) Select(field string, fields ...string) *OrgSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrgSettings entity.
func (_u *OrgSettingsUpdateOne) Save(ctx context.Context) (*OrgSettings, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrgSettingsUpdateOne) SaveX(ctx context.Context) *OrgSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrgSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrgSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OrgSettingsUpdateOne) sqlSave(ctx context.Context) (_node *OrgSettings, err error) {
	_spec := sqlgraph.NewUpdateSpec(orgsettings.Table, orgsettings.Columns, sqlgraph.NewFieldSpec(orgsettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrgSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orgsettings.FieldID)
		for _, f := range fields {
			if !orgsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orgsettings.FieldID {
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
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(orgsettings.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(orgsettings.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoApproveThreshold(); ok {
		_spec.SetField(orgsettings.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAutoApproveThreshold(); ok {
		_spec.AddField(orgsettings.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxExecutionsPerMinute(); ok {
		_spec.SetField(orgsettings.FieldMaxExecutionsPerMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxExecutionsPerMinute(); ok {
		_spec.AddField(orgsettings.FieldMaxExecutionsPerMinute, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LlmProvider(); ok {
		_spec.SetField(orgsettings.FieldLlmProvider, field.TypeString, value)
	}
	if _u.mutation.LlmProviderCleared() {
		_spec.ClearField(orgsettings.FieldLlmProvider, field.TypeString)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(orgsettings.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(orgsettings.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.RequireApprovalAboveValue(); ok {
		_spec.SetField(orgsettings.FieldRequireApprovalAboveValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRequireApprovalAboveValue(); ok {
		_spec.AddField(orgsettings.FieldRequireApprovalAboveValue, field.TypeFloat64, value)
	}
	if _u.mutation.RequireApprovalAboveValueCleared() {
		_spec.ClearField(orgsettings.FieldRequireApprovalAboveValue, field.TypeFloat64)
	}
	_node = &OrgSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orgsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
