// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ghostworks/ghostd/ent/approvalrequest"
)

// ApprovalRequestCreate is the builder for creating a ApprovalRequest entity.
type ApprovalRequestCreate struct {
	config
	mutation *ApprovalRequestMutation
	hooks    []Hook
}

// SetGhostID sets the "ghost_id" field.
func (_c *ApprovalRequestCreate) SetGhostID(v string) *ApprovalRequestCreate {
	_c.mutation.SetGhostID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *ApprovalRequestCreate) SetExecutionID(v string) *ApprovalRequestCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableExecutionID(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *ApprovalRequestCreate) SetOrgID(v string) *ApprovalRequestCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *ApprovalRequestCreate) SetRequestedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *ApprovalRequestCreate) SetApprovedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableApprovedBy(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalRequestCreate) SetStatus(v approvalrequest.Status) *ApprovalRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ApprovalRequestCreate) SetReason(v string) *ApprovalRequestCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableReason(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetDecisionNote sets the "decision_note" field.
func (_c *ApprovalRequestCreate) SetDecisionNote(v string) *ApprovalRequestCreate {
	_c.mutation.SetDecisionNote(v)
	return _c
}

// SetNillableDecisionNote sets the "decision_note" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDecisionNote(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDecisionNote(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalRequestCreate) SetExpiresAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableExpiresAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalRequestCreate) SetCreatedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableCreatedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ApprovalRequestCreate) SetResolvedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableResolvedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRequestCreate) SetID(v string) *ApprovalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_c *ApprovalRequestCreate) Mutation() *ApprovalRequestMutation {
	return _c.mutation
}

// Save creates the ApprovalRequest in the database.
func (_c *ApprovalRequestCreate) Save(ctx context.Context) (*ApprovalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRequestCreate) SaveX(ctx context.Context) *ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		v := approvalrequest.DefaultExpiresAt()
		_c.mutation.SetExpiresAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRequestCreate) check() error {
	if _, ok := _c.mutation.GhostID(); !ok {
		return &ValidationError{Name: "ghost_id", err: errors.New(`ent: missing required field "ApprovalRequest.ghost_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ApprovalRequest.org_id"`)}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`ent: missing required field "ApprovalRequest.requested_by"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ApprovalRequest.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalRequest.created_at"`)}
	}
	return nil
}

func (_c *ApprovalRequestCreate) sqlSave(ctx context.Context) (*ApprovalRequest, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRequestCreate) createSpec() (*ApprovalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrequest.Table, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GhostID(); ok {
		_spec.SetField(approvalrequest.FieldGhostID, field.TypeString, value)
		_node.GhostID = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(approvalrequest.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = &value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(approvalrequest.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(approvalrequest.FieldRequestedBy, field.TypeString, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(approvalrequest.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(approvalrequest.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.DecisionNote(); ok {
		_spec.SetField(approvalrequest.FieldDecisionNote, field.TypeString, value)
		_node.DecisionNote = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approvalrequest.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(approvalrequest.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// ApprovalRequestCreateBulk is the builder for creating many ApprovalRequest entities in bulk.
type ApprovalRequestCreateBulk struct {
	config
	err      error
	builders []*ApprovalRequestCreate
}

// Save creates the ApprovalRequest entities in the database.
func (_c *ApprovalRequestCreateBulk) Save(ctx context.Context) ([]*ApprovalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRequestMutation)
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
func (_c *ApprovalRequestCreateBulk) SaveX(ctx context.Context) []*ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
