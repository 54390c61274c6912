package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionLog is the append-only audit ledger. Updates and deletes fail at
// the hook layer and at the database policy layer.
type ExecutionLog struct {
	ent.Schema
}

// Fields of the ExecutionLog.
func (ExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("execution_id"),
		field.String("ghost_id"),
		field.String("org_id"),
		field.String("status"),
		field.Int("steps"),
		field.Int("duration_ms"),
		field.Strings("strategies_used"),
		field.Time("logged_at").
			Default(time.Now),
	}
}

// Hooks of the ExecutionLog.
func (ExecutionLog) Hooks() []ent.Hook {
	return []ent.Hook{rejectUpdateDelete("execution_logs")}
}

// Indexes of the ExecutionLog.
func (ExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "logged_at"),
		index.Fields("execution_id"),
	}
}
