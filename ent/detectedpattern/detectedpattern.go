// Code generated by ent, DO NOT EDIT.

package detectedpattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the detectedpattern type in the database.
	Label = "detected_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldIntentSequence holds the string denoting the intent_sequence field in the database.
	FieldIntentSequence = "intent_sequence"
	// FieldStructuralHashes holds the string denoting the structural_hashes field in the database.
	FieldStructuralHashes = "structural_hashes"
	// FieldOccurrences holds the string denoting the occurrences field in the database.
	FieldOccurrences = "occurrences"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSuggestedName holds the string denoting the suggested_name field in the database.
	FieldSuggestedName = "suggested_name"
	// FieldSuggestedDescription holds the string denoting the suggested_description field in the database.
	FieldSuggestedDescription = "suggested_description"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the detectedpattern in the database.
	Table = "detected_patterns"
)

// Columns holds all SQL columns for detectedpattern fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldIntentSequence,
	FieldStructuralHashes,
	FieldOccurrences,
	FieldConfidence,
	FieldSuggestedName,
	FieldSuggestedDescription,
	FieldFirstSeen,
	FieldLastSeen,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNeedsReview is the default value of the Status enum.
const DefaultStatus = StatusNeedsReview

// Status values.
const (
	StatusNeedsReview   Status = "needs_review"
	StatusAutoSuggested Status = "auto_suggested"
	StatusApproved      Status = "approved"
	StatusDismissed     Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNeedsReview, StatusAutoSuggested, StatusApproved, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("detectedpattern: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DetectedPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByOccurrences orders the results by the occurrences field.
func ByOccurrences(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrences, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySuggestedName orders the results by the suggested_name field.
func BySuggestedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedName, opts...).ToFunc()
}

// BySuggestedDescription orders the results by the suggested_description field.
func BySuggestedDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedDescription, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
