package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SecureEvent holds the schema definition for ingested privacy-boundary
// events. Rows carry no plaintext URL, user text, or credential; the
// privacy pipeline enforces that before transmission and the ingestion
// service only ever sees the scrubbed form.
type SecureEvent struct {
	ent.Schema
}

// Fields of the SecureEvent.
func (SecureEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_fingerprint").
			Comment("HMAC-SHA256 session identifier, rotates every 15 min"),
		field.String("timestamp_bucket").
			Comment("ISO-8601 at 5-minute granularity, pre-bucketing noise applied on device"),
		field.Floats("intent_vector").
			Comment("128-d perturbed intent embedding"),
		field.String("structural_hash").
			Optional().
			Comment("8-hex FNV-1a of DOM path + tag"),
		field.String("org_id"),
		field.Enum("event_type").
			Values("dom_mut", "user_int", "network", "error"),
		field.String("intent_label"),
		field.Float("intent_confidence").
			Min(0).
			Max(1),
		field.String("element_signature").
			Optional().
			Nillable(),
		field.Int("sequence_number").
			Comment("Monotone within one session fingerprint"),
		field.String("device_fingerprint"),
		field.String("batch_id"),
		field.Time("ingested_at").
			Default(time.Now),
	}
}

// Indexes of the SecureEvent.
func (SecureEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "ingested_at"),
		index.Fields("session_fingerprint", "sequence_number"),
		index.Fields("batch_id"),
	}
}
