// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/ghostversion"
	"github.com/ghostworks/ghostd/pkg/models"
)

// GhostVersion is the model entity for the GhostVersion schema.
type GhostVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GhostID holds the value of the "ghost_id" field.
	GhostID string `json:"ghost_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// ExecutionPlan holds the value of the "execution_plan" field.
	ExecutionPlan []models.ExecutionNode `json:"execution_plan,omitempty"`
	// Parameters holds the value of the "parameters" field.
	Parameters []models.GhostParameter `json:"parameters,omitempty"`
	// Trigger holds the value of the "trigger" field.
	Trigger models.GhostTrigger `json:"trigger,omitempty"`
	// ChangeDescription holds the value of the "change_description" field.
	ChangeDescription *string `json:"change_description,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy *string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GhostVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ghostversion.FieldExecutionPlan, ghostversion.FieldParameters, ghostversion.FieldTrigger:
			values[i] = new([]byte)
		case ghostversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case ghostversion.FieldID, ghostversion.FieldGhostID, ghostversion.FieldChangeDescription, ghostversion.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case ghostversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GhostVersion fields.
func (_m *GhostVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ghostversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ghostversion.FieldGhostID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ghost_id", values[i])
			} else if value.Valid {
				_m.GhostID = value.String
			}
		case ghostversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case ghostversion.FieldExecutionPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field execution_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutionPlan); err != nil {
					return fmt.Errorf("unmarshal field execution_plan: %w", err)
				}
			}
		case ghostversion.FieldParameters:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parameters", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Parameters); err != nil {
					return fmt.Errorf("unmarshal field parameters: %w", err)
				}
			}
		case ghostversion.FieldTrigger:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Trigger); err != nil {
					return fmt.Errorf("unmarshal field trigger: %w", err)
				}
			}
		case ghostversion.FieldChangeDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_description", values[i])
			} else if value.Valid {
				_m.ChangeDescription = new(string)
				*_m.ChangeDescription = value.String
			}
		case ghostversion.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case ghostversion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GhostVersion.
// This includes values selected through modifiers, order, etc.
func (_m *GhostVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GhostVersion.
// Note that you need to call GhostVersion.Unwrap() before calling this method if this GhostVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GhostVersion) Update() *GhostVersionUpdateOne {
	return NewGhostVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GhostVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GhostVersion) Unwrap() *GhostVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GhostVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GhostVersion) String() string {
	var builder strings.Builder
	builder.WriteString("GhostVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ghost_id=")
	builder.WriteString(_m.GhostID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("execution_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionPlan))
	builder.WriteString(", ")
	builder.WriteString("parameters=")
	builder.WriteString(fmt.Sprintf("%v", _m.Parameters))
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteString(", ")
	if v := _m.ChangeDescription; v != nil {
		builder.WriteString("change_description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GhostVersions is a parsable slice of GhostVersion.
type GhostVersions []*GhostVersion
