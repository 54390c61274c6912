package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserFeedback is append-only user feedback on an execution.
type UserFeedback struct {
	ent.Schema
}

// Annotations of the UserFeedback.
func (UserFeedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "user_feedback"},
	}
}

// Fields of the UserFeedback.
func (UserFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("execution_id"),
		field.String("ghost_id"),
		field.String("org_id"),
		field.String("user_id"),
		field.Int("satisfaction_score").
			Optional().
			Nillable().
			Min(1).
			Max(5),
		field.JSON("corrected_actions", map[string]interface{}{}).
			Optional(),
		field.Text("notes").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Hooks of the UserFeedback.
func (UserFeedback) Hooks() []ent.Hook {
	return []ent.Hook{rejectUpdateDelete("user_feedback")}
}

// Indexes of the UserFeedback.
func (UserFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "created_at"),
		index.Fields("execution_id"),
	}
}
