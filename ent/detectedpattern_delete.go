// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// DetectedPatternDelete is the builder for deleting a DetectedPattern entity.
type DetectedPatternDelete struct {
	config
	hooks    []Hook
	mutation *DetectedPatternMutation
}

// Where appends a list predicates to the DetectedPatternDelete builder.
func (_d *DetectedPatternDelete) Where(ps ...predicate.DetectedPattern) *DetectedPatternDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DetectedPatternDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DetectedPatternDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DetectedPatternDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(detectedpattern.Table, sqlgraph.NewFieldSpec(detectedpattern.FieldID, field.TypeString))
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

// DetectedPatternDeleteOne is the builder for deleting a single DetectedPattern entity.
type DetectedPatternDeleteOne struct {
	_d *DetectedPatternDelete
}

// Where appends a list predicates to the DetectedPatternDelete builder.
func (_d *DetectedPatternDeleteOne) Where(ps ...predicate.DetectedPattern) *DetectedPatternDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DetectedPatternDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{detectedpattern.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DetectedPatternDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
