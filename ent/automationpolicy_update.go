// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// AutomationPolicyUpdate is the builder for updating AutomationPolicy entities.
type AutomationPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *AutomationPolicyMutation
}

// Where appends a list predicates to the AutomationPolicyUpdate builder.
func (_u *AutomationPolicyUpdate) Where(ps ...predicate.AutomationPolicy) *AutomationPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *AutomationPolicyUpdate) SetOrgID(v string) *AutomationPolicyUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *AutomationPolicyUpdate) SetNillableOrgID(v *string) *AutomationPolicyUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AutomationPolicyUpdate) SetName(v string) *AutomationPolicyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AutomationPolicyUpdate) SetNillableName(v *string) *AutomationPolicyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AutomationPolicyUpdate) SetDescription(v string) *AutomationPolicyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AutomationPolicyUpdate) SetNillableDescription(v *string) *AutomationPolicyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AutomationPolicyUpdate) ClearDescription() *AutomationPolicyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCondition sets the "condition" field.
func (_u *AutomationPolicyUpdate) SetCondition(v map[string]interface{}) *AutomationPolicyUpdate {
	_u.mutation.SetCondition(v)
	return _u
}

// ClearCondition clears the value of the "condition" field.
func (_u *AutomationPolicyUpdate) ClearCondition() *AutomationPolicyUpdate {
	_u.mutation.ClearCondition()
	return _u
}

// SetAction sets the "action" field.
func (_u *AutomationPolicyUpdate) SetAction(v automationpolicy.Action) *AutomationPolicyUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AutomationPolicyUpdate) SetNillableAction(v *automationpolicy.Action) *AutomationPolicyUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AutomationPolicyUpdate) SetIsActive(v bool) *AutomationPolicyUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AutomationPolicyUpdate) SetNillableIsActive(v *bool) *AutomationPolicyUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AutomationPolicyMutation object of the builder.
func (_u *AutomationPolicyUpdate) Mutation() *AutomationPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AutomationPolicyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AutomationPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AutomationPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AutomationPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AutomationPolicyUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := automationpolicy.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AutomationPolicy.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AutomationPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(automationpolicy.Table, automationpolicy.Columns, sqlgraph.NewFieldSpec(automationpolicy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(automationpolicy.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(automationpolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(automationpolicy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(automationpolicy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(automationpolicy.FieldCondition, field.TypeJSON, value)
	}
	if _u.mutation.ConditionCleared() {
		_spec.ClearField(automationpolicy.FieldCondition, field.TypeJSON)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(automationpolicy.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(automationpolicy.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automationpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AutomationPolicyUpdateOne is the builder for updating a single AutomationPolicy entity.
type AutomationPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AutomationPolicyMutation
}

// SetOrgID sets the "org_id" field.
func (_u *AutomationPolicyUpdateOne) SetOrgID(v string) *AutomationPolicyUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *AutomationPolicyUpdateOne) SetNillableOrgID(v *string) *AutomationPolicyUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AutomationPolicyUpdateOne) SetName(v string) *AutomationPolicyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AutomationPolicyUpdateOne) SetNillableName(v *string) *AutomationPolicyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AutomationPolicyUpdateOne) SetDescription(v string) *AutomationPolicyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AutomationPolicyUpdateOne) SetNillableDescription(v *string) *AutomationPolicyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AutomationPolicyUpdateOne) ClearDescription() *AutomationPolicyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCondition sets the "condition" field.
func (_u *AutomationPolicyUpdateOne) SetCondition(v map[string]interface{}) *AutomationPolicyUpdateOne {
	_u.mutation.SetCondition(v)
	return _u
}

// ClearCondition clears the value of the "condition" field.
func (_u *AutomationPolicyUpdateOne) ClearCondition() *AutomationPolicyUpdateOne {
	_u.mutation.ClearCondition()
	return _u
}

// SetAction sets the "action" field.
func (_u *AutomationPolicyUpdateOne) SetAction(v automationpolicy.Action) *AutomationPolicyUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AutomationPolicyUpdateOne) SetNillableAction(v *automationpolicy.Action) *AutomationPolicyUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AutomationPolicyUpdateOne) SetIsActive(v bool) *AutomationPolicyUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AutomationPolicyUpdateOne) SetNillableIsActive(v *bool) *AutomationPolicyUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AutomationPolicyMutation object of the builder.
func (_u *AutomationPolicyUpdateOne) Mutation() *AutomationPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the AutomationPolicyUpdate builder.
func (_u *AutomationPolicyUpdateOne) Where(ps ...predicate.AutomationPolicy) *AutomationPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AutomationPolicyUpdateOne) Select(field string, fields ...string) *AutomationPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AutomationPolicy entity.
func (_u *AutomationPolicyUpdateOne) Save(ctx context.Context) (*AutomationPolicy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AutomationPolicyUpdateOne) SaveX(ctx context.Context) *AutomationPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AutomationPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AutomationPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AutomationPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := automationpolicy.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AutomationPolicy.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AutomationPolicyUpdateOne) sqlSave(ctx context.Context) (_node *AutomationPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(automationpolicy.Table, automationpolicy.Columns, sqlgraph.NewFieldSpec(automationpolicy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AutomationPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, automationpolicy.FieldID)
		for _, f := range fields {
			if !automationpolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != automationpolicy.FieldID {
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
		_spec.SetField(automationpolicy.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(automationpolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(automationpolicy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(automationpolicy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Condition(); ok {
		_spec.SetField(automationpolicy.FieldCondition, field.TypeJSON, value)
	}
	if _u.mutation.ConditionCleared() {
		_spec.ClearField(automationpolicy.FieldCondition, field.TypeJSON)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(automationpolicy.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(automationpolicy.FieldIsActive, field.TypeBool, value)
	}
	_node = &AutomationPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automationpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
