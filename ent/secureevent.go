// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/secureevent"
)

// SecureEvent is the model entity for the SecureEvent schema.
type SecureEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// HMAC-SHA256 session identifier, rotates every 15 min
	SessionFingerprint string `json:"session_fingerprint,omitempty"`
	// ISO-8601 at 5-minute granularity, pre-bucketing noise applied on device
	TimestampBucket string `json:"timestamp_bucket,omitempty"`
	// 128-d perturbed intent embedding
	IntentVector []float64 `json:"intent_vector,omitempty"`
	// 8-hex FNV-1a of DOM path + tag
	StructuralHash string `json:"structural_hash,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType secureevent.EventType `json:"event_type,omitempty"`
	// IntentLabel holds the value of the "intent_label" field.
	IntentLabel string `json:"intent_label,omitempty"`
	// IntentConfidence holds the value of the "intent_confidence" field.
	IntentConfidence float64 `json:"intent_confidence,omitempty"`
	// ElementSignature holds the value of the "element_signature" field.
	ElementSignature *string `json:"element_signature,omitempty"`
	// Monotone within one session fingerprint
	SequenceNumber int `json:"sequence_number,omitempty"`
	// DeviceFingerprint holds the value of the "device_fingerprint" field.
	DeviceFingerprint string `json:"device_fingerprint,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// IngestedAt holds the value of the "ingested_at" field.
	IngestedAt   time.Time `json:"ingested_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SecureEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case secureevent.FieldIntentVector:
			values[i] = new([]byte)
		case secureevent.FieldIntentConfidence:
			values[i] = new(sql.NullFloat64)
		case secureevent.FieldSequenceNumber:
			values[i] = new(sql.NullInt64)
		case secureevent.FieldID, secureevent.FieldSessionFingerprint, secureevent.FieldTimestampBucket, secureevent.FieldStructuralHash, secureevent.FieldOrgID, secureevent.FieldEventType, secureevent.FieldIntentLabel, secureevent.FieldElementSignature, secureevent.FieldDeviceFingerprint, secureevent.FieldBatchID:
			values[i] = new(sql.NullString)
		case secureevent.FieldIngestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SecureEvent fields.
func (_m *SecureEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case secureevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case secureevent.FieldSessionFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_fingerprint", values[i])
			} else if value.Valid {
				_m.SessionFingerprint = value.String
			}
		case secureevent.FieldTimestampBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp_bucket", values[i])
			} else if value.Valid {
				_m.TimestampBucket = value.String
			}
		case secureevent.FieldIntentVector:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field intent_vector", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IntentVector); err != nil {
					return fmt.Errorf("unmarshal field intent_vector: %w", err)
				}
			}
		case secureevent.FieldStructuralHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field structural_hash", values[i])
			} else if value.Valid {
				_m.StructuralHash = value.String
			}
		case secureevent.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case secureevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = secureevent.EventType(value.String)
			}
		case secureevent.FieldIntentLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_label", values[i])
			} else if value.Valid {
				_m.IntentLabel = value.String
			}
		case secureevent.FieldIntentConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field intent_confidence", values[i])
			} else if value.Valid {
				_m.IntentConfidence = value.Float64
			}
		case secureevent.FieldElementSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element_signature", values[i])
			} else if value.Valid {
				_m.ElementSignature = new(string)
				*_m.ElementSignature = value.String
			}
		case secureevent.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case secureevent.FieldDeviceFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_fingerprint", values[i])
			} else if value.Valid {
				_m.DeviceFingerprint = value.String
			}
		case secureevent.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case secureevent.FieldIngestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ingested_at", values[i])
			} else if value.Valid {
				_m.IngestedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SecureEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SecureEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SecureEvent.
// Note that you need to call SecureEvent.Unwrap() before calling this method if this SecureEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SecureEvent) Update() *SecureEventUpdateOne {
	return NewSecureEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SecureEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SecureEvent) Unwrap() *SecureEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SecureEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SecureEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SecureEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_fingerprint=")
	builder.WriteString(_m.SessionFingerprint)
	builder.WriteString(", ")
	builder.WriteString("timestamp_bucket=")
	builder.WriteString(_m.TimestampBucket)
	builder.WriteString(", ")
	builder.WriteString("intent_vector=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntentVector))
	builder.WriteString(", ")
	builder.WriteString("structural_hash=")
	builder.WriteString(_m.StructuralHash)
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("intent_label=")
	builder.WriteString(_m.IntentLabel)
	builder.WriteString(", ")
	builder.WriteString("intent_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntentConfidence))
	builder.WriteString(", ")
	if v := _m.ElementSignature; v != nil {
		builder.WriteString("element_signature=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("device_fingerprint=")
	builder.WriteString(_m.DeviceFingerprint)
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("ingested_at=")
	builder.WriteString(_m.IngestedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SecureEvents is a parsable slice of SecureEvent.
type SecureEvents []*SecureEvent
