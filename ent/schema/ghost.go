package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ghostworks/ghostd/pkg/models"
)

// Ghost holds the schema definition for approved workflow templates.
type Ghost struct {
	ent.Schema
}

// Fields of the Ghost.
func (Ghost) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Int("version").
			Default(1).
			Min(1),
		field.Enum("status").
			Values("pending_approval", "approved", "active", "paused", "archived").
			Default("pending_approval"),
		field.JSON("trigger", models.GhostTrigger{}).
			Optional(),
		field.JSON("parameters", []models.GhostParameter{}).
			Optional(),
		field.JSON("execution_plan", []models.ExecutionNode{}).
			Optional(),
		field.Float("confidence").
			Optional(),
		field.String("source_pattern_id").
			Optional().
			Nillable().
			Comment("Detected pattern this Ghost was promoted from"),
		field.String("created_by").
			Optional().
			Nillable(),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(false).
			Comment("Invariant: true only while status is approved or active"),
		field.JSON("usage_stats", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Ghost.
func (Ghost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "status"),
		index.Fields("org_id", "is_active"),
	}
}
