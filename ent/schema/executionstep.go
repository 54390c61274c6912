package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionStep is one attempted node of an execution, recorded in attempt
// order. Self-healed substitutes appear as additional steps with a
// "self_healed:" strategy prefix.
type ExecutionStep struct {
	ent.Schema
}

// Fields of the ExecutionStep.
func (ExecutionStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("execution_id"),
		field.String("node_id"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped"),
		field.String("strategy"),
		field.Int("duration_ms").
			Default(0),
		field.JSON("output", map[string]interface{}{}).
			Optional(),
		field.Text("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the ExecutionStep.
func (ExecutionStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "created_at"),
	}
}
