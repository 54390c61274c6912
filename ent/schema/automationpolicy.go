package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AutomationPolicy is a tenant rule evaluated before executions run.
type AutomationPolicy struct {
	ent.Schema
}

// Fields of the AutomationPolicy.
func (AutomationPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.JSON("condition", map[string]interface{}{}).
			Optional(),
		field.Enum("action").
			Values("require_approval", "block", "notify", "allow"),
		field.Bool("is_active").
			Default(true),
	}
}

// Indexes of the AutomationPolicy.
func (AutomationPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "is_active"),
	}
}
