package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ghostworks/ghostd/pkg/models"
)

// GhostVersion is an immutable snapshot of a Ghost at an approval point.
// One row is appended each time an approval increments the version.
type GhostVersion struct {
	ent.Schema
}

// Fields of the GhostVersion.
func (GhostVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("ghost_id"),
		field.Int("version").
			Min(1),
		field.JSON("execution_plan", []models.ExecutionNode{}).
			Optional(),
		field.JSON("parameters", []models.GhostParameter{}).
			Optional(),
		field.JSON("trigger", models.GhostTrigger{}).
			Optional(),
		field.Text("change_description").
			Optional().
			Nillable(),
		field.String("created_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the GhostVersion.
func (GhostVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ghost_id", "version").
			Unique(),
	}
}
