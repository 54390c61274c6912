// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
)

// DetectedPattern is the model entity for the DetectedPattern schema.
type DetectedPattern struct {
	config `json:"-"`
	// ID of the ent.
	// Deterministic for idempotent re-detection: derived from (org, intent sequence, structural hashes)
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// IntentSequence holds the value of the "intent_sequence" field.
	IntentSequence []string `json:"intent_sequence,omitempty"`
	// StructuralHashes holds the value of the "structural_hashes" field.
	StructuralHashes []string `json:"structural_hashes,omitempty"`
	// Cluster size; never below the minimum cluster size
	Occurrences int `json:"occurrences,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// SuggestedName holds the value of the "suggested_name" field.
	SuggestedName *string `json:"suggested_name,omitempty"`
	// SuggestedDescription holds the value of the "suggested_description" field.
	SuggestedDescription *string `json:"suggested_description,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// Status holds the value of the "status" field.
	Status detectedpattern.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DetectedPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case detectedpattern.FieldIntentSequence, detectedpattern.FieldStructuralHashes:
			values[i] = new([]byte)
		case detectedpattern.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case detectedpattern.FieldOccurrences:
			values[i] = new(sql.NullInt64)
		case detectedpattern.FieldID, detectedpattern.FieldOrgID, detectedpattern.FieldSuggestedName, detectedpattern.FieldSuggestedDescription, detectedpattern.FieldStatus:
			values[i] = new(sql.NullString)
		case detectedpattern.FieldFirstSeen, detectedpattern.FieldLastSeen, detectedpattern.FieldCreatedAt, detectedpattern.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DetectedPattern fields.
func (_m *DetectedPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case detectedpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case detectedpattern.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case detectedpattern.FieldIntentSequence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field intent_sequence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IntentSequence); err != nil {
					return fmt.Errorf("unmarshal field intent_sequence: %w", err)
				}
			}
		case detectedpattern.FieldStructuralHashes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structural_hashes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StructuralHashes); err != nil {
					return fmt.Errorf("unmarshal field structural_hashes: %w", err)
				}
			}
		case detectedpattern.FieldOccurrences:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrences", values[i])
			} else if value.Valid {
				_m.Occurrences = int(value.Int64)
			}
		case detectedpattern.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case detectedpattern.FieldSuggestedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_name", values[i])
			} else if value.Valid {
				_m.SuggestedName = new(string)
				*_m.SuggestedName = value.String
			}
		case detectedpattern.FieldSuggestedDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_description", values[i])
			} else if value.Valid {
				_m.SuggestedDescription = new(string)
				*_m.SuggestedDescription = value.String
			}
		case detectedpattern.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case detectedpattern.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case detectedpattern.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = detectedpattern.Status(value.String)
			}
		case detectedpattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case detectedpattern.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DetectedPattern.
// This includes values selected through modifiers, order, etc.
func (_m *DetectedPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DetectedPattern.
// Note that you need to call DetectedPattern.Unwrap() before calling this method if this DetectedPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DetectedPattern) Update() *DetectedPatternUpdateOne {
	return NewDetectedPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DetectedPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DetectedPattern) Unwrap() *DetectedPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DetectedPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DetectedPattern) String() string {
	var builder strings.Builder
	builder.WriteString("DetectedPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("intent_sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntentSequence))
	builder.WriteString(", ")
	builder.WriteString("structural_hashes=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructuralHashes))
	builder.WriteString(", ")
	builder.WriteString("occurrences=")
	builder.WriteString(fmt.Sprintf("%v", _m.Occurrences))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.SuggestedName; v != nil {
		builder.WriteString("suggested_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SuggestedDescription; v != nil {
		builder.WriteString("suggested_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DetectedPatterns is a parsable slice of DetectedPattern.
type DetectedPatterns []*DetectedPattern
