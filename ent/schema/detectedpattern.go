package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DetectedPattern holds the schema definition for clustered workflow
// candidates emitted by the pattern detector.
type DetectedPattern struct {
	ent.Schema
}

// Fields of the DetectedPattern.
func (DetectedPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Deterministic for idempotent re-detection: derived from (org, intent sequence, structural hashes)"),
		field.String("org_id"),
		field.Strings("intent_sequence"),
		field.Strings("structural_hashes"),
		field.Int("occurrences").
			Comment("Cluster size; never below the minimum cluster size"),
		field.Float("confidence").
			Min(0).
			Max(1),
		field.String("suggested_name").
			Optional().
			Nillable(),
		field.Text("suggested_description").
			Optional().
			Nillable(),
		field.Time("first_seen"),
		field.Time("last_seen"),
		field.Enum("status").
			Values("needs_review", "auto_suggested", "approved", "dismissed").
			Default("needs_review"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the DetectedPattern.
func (DetectedPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "status"),
		index.Fields("org_id", "last_seen"),
	}
}
