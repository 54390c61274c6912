package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// OrgSettings holds per-tenant configuration.
type OrgSettings struct {
	ent.Schema
}

// Annotations of the OrgSettings.
func (OrgSettings) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "org_settings"},
	}
}

// Fields of the OrgSettings.
func (OrgSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("org_id").
			Unique().
			Immutable(),
		field.JSON("settings", map[string]interface{}{}).
			Optional(),
		field.Float("auto_approve_threshold").
			Default(0.95),
		field.Int("max_executions_per_minute").
			Default(10),
		field.String("llm_provider").
			Optional(),
		field.String("llm_model").
			Optional(),
		field.Float("require_approval_above_value").
			Optional().
			Nillable(),
	}
}
