package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Execution holds the schema definition for one Ghost execution.
type Execution struct {
	ent.Schema
}

// Fields of the Execution.
func (Execution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("ghost_id"),
		field.Enum("status").
			Values("running", "completed", "failed", "cancelled").
			Default("running"),
		field.JSON("parameters", map[string]interface{}{}).
			Optional(),
		field.String("trigger").
			Optional(),
		field.Int("step_count").
			Default(0),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Text("error").
			Optional().
			Nillable(),
	}
}

// Indexes of the Execution.
func (Execution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ghost_id", "started_at"),
		index.Fields("status"),
	}
}
