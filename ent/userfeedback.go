// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/userfeedback"
)

// UserFeedback is the model entity for the UserFeedback schema.
type UserFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// GhostID holds the value of the "ghost_id" field.
	GhostID string `json:"ghost_id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SatisfactionScore holds the value of the "satisfaction_score" field.
	SatisfactionScore *int `json:"satisfaction_score,omitempty"`
	// CorrectedActions holds the value of the "corrected_actions" field.
	CorrectedActions map[string]interface{} `json:"corrected_actions,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userfeedback.FieldCorrectedActions:
			values[i] = new([]byte)
		case userfeedback.FieldSatisfactionScore:
			values[i] = new(sql.NullInt64)
		case userfeedback.FieldID, userfeedback.FieldExecutionID, userfeedback.FieldGhostID, userfeedback.FieldOrgID, userfeedback.FieldUserID, userfeedback.FieldNotes:
			values[i] = new(sql.NullString)
		case userfeedback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserFeedback fields.
func (_m *UserFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userfeedback.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case userfeedback.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case userfeedback.FieldGhostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ghost_id", values[i])
			} else if value.Valid {
				_m.GhostID = value.String
			}
		case userfeedback.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case userfeedback.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userfeedback.FieldSatisfactionScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field satisfaction_score", values[i])
			} else if value.Valid {
				_m.SatisfactionScore = new(int)
				*_m.SatisfactionScore = int(value.Int64)
			}
		case userfeedback.FieldCorrectedActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrectedActions); err != nil {
					return fmt.Errorf("unmarshal field corrected_actions: %w", err)
				}
			}
		case userfeedback.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case userfeedback.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *UserFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserFeedback.
// Note that you need to call UserFeedback.Unwrap() before calling this method if this UserFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserFeedback) Update() *UserFeedbackUpdateOne {
	return NewUserFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserFeedback) Unwrap() *UserFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("UserFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("ghost_id=")
	builder.WriteString(_m.GhostID)
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	if v := _m.SatisfactionScore; v != nil {
		builder.WriteString("satisfaction_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("corrected_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectedActions))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserFeedbacks is a parsable slice of UserFeedback.
type UserFeedbacks []*UserFeedback
