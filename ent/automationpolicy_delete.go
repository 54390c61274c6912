// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// AutomationPolicyDelete is the builder for deleting a AutomationPolicy entity.
type AutomationPolicyDelete struct {
	config
	hooks    []Hook
	mutation *AutomationPolicyMutation
}

// Where appends a list predicates to the AutomationPolicyDelete builder.
func (_d *AutomationPolicyDelete) Where(ps ...predicate.AutomationPolicy) *AutomationPolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AutomationPolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AutomationPolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AutomationPolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(automationpolicy.Table, sqlgraph.NewFieldSpec(automationpolicy.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AutomationPolicyDeleteOne is the builder for deleting a single AutomationPolicy entity.
type AutomationPolicyDeleteOne struct {
	_d *AutomationPolicyDelete
}

// Where appends a list predicates to the AutomationPolicyDelete builder.
func (_d *AutomationPolicyDeleteOne) Where(ps ...predicate.AutomationPolicy) *AutomationPolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AutomationPolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{automationpolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AutomationPolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
