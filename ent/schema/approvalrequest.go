package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRequest tracks a pending human decision on a Ghost. Requests
// auto-expire 24 hours after creation.
type ApprovalRequest struct {
	ent.Schema
}

// Fields of the ApprovalRequest.
func (ApprovalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("ghost_id"),
		field.String("execution_id").
			Optional().
			Nillable(),
		field.String("org_id"),
		field.String("requested_by"),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired").
			Default("pending"),
		field.Text("reason").
			Optional().
			Nillable(),
		field.Text("decision_note").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Default(func() time.Time { return time.Now().Add(24 * time.Hour) }),
		field.Time("created_at").
			Default(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ApprovalRequest.
func (ApprovalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ghost_id", "status"),
		index.Fields("org_id", "status"),
		index.Fields("status", "expires_at"),
	}
}
