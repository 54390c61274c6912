// Code generated by ent, DO NOT EDIT.

package secureevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the secureevent type in the database.
	Label = "secure_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionFingerprint holds the string denoting the session_fingerprint field in the database.
	FieldSessionFingerprint = "session_fingerprint"
	// FieldTimestampBucket holds the string denoting the timestamp_bucket field in the database.
	FieldTimestampBucket = "timestamp_bucket"
	// FieldIntentVector holds the string denoting the intent_vector field in the database.
	FieldIntentVector = "intent_vector"
	// FieldStructuralHash holds the string denoting the structural_hash field in the database.
	FieldStructuralHash = "structural_hash"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldIntentLabel holds the string denoting the intent_label field in the database.
	FieldIntentLabel = "intent_label"
	// FieldIntentConfidence holds the string denoting the intent_confidence field in the database.
	FieldIntentConfidence = "intent_confidence"
	// FieldElementSignature holds the string denoting the element_signature field in the database.
	FieldElementSignature = "element_signature"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldDeviceFingerprint holds the string denoting the device_fingerprint field in the database.
	FieldDeviceFingerprint = "device_fingerprint"
	// FieldBatchID holds the string denoting the batch_id field in the database.
	FieldBatchID = "batch_id"
	// FieldIngestedAt holds the string denoting the ingested_at field in the database.
	FieldIngestedAt = "ingested_at"
	// Table holds the table name of the secureevent in the database.
	Table = "secure_events"
)

// Columns holds all SQL columns for secureevent fields.
var Columns = []string{
	FieldID,
	FieldSessionFingerprint,
	FieldTimestampBucket,
	FieldIntentVector,
	FieldStructuralHash,
	FieldOrgID,
	FieldEventType,
	FieldIntentLabel,
	FieldIntentConfidence,
	FieldElementSignature,
	FieldSequenceNumber,
	FieldDeviceFingerprint,
	FieldBatchID,
	FieldIngestedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// IntentConfidenceValidator is a validator for the "intent_confidence" field. It is called by the builders before save.
	IntentConfidenceValidator func(float64) error
	// DefaultIngestedAt holds the default value on creation for the "ingested_at" field.
	DefaultIngestedAt func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeDomMut  EventType = "dom_mut"
	EventTypeUserInt EventType = "user_int"
	EventTypeNetwork EventType = "network"
	EventTypeError   EventType = "error"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeDomMut, EventTypeUserInt, EventTypeNetwork, EventTypeError:
		return nil
	default:
		return fmt.Errorf("secureevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the SecureEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionFingerprint orders the results by the session_fingerprint field.
func BySessionFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionFingerprint, opts...).ToFunc()
}

// ByTimestampBucket orders the results by the timestamp_bucket field.
func ByTimestampBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestampBucket, opts...).ToFunc()
}

// ByStructuralHash orders the results by the structural_hash field.
func ByStructuralHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStructuralHash, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByIntentLabel orders the results by the intent_label field.
func ByIntentLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentLabel, opts...).ToFunc()
}

// ByIntentConfidence orders the results by the intent_confidence field.
func ByIntentConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentConfidence, opts...).ToFunc()
}

// ByElementSignature orders the results by the element_signature field.
func ByElementSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElementSignature, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByDeviceFingerprint orders the results by the device_fingerprint field.
func ByDeviceFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceFingerprint, opts...).ToFunc()
}

// ByBatchID orders the results by the batch_id field.
func ByBatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchID, opts...).ToFunc()
}

// ByIngestedAt orders the results by the ingested_at field.
func ByIngestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIngestedAt, opts...).ToFunc()
}
