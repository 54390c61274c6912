// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/orgsettings"
)

// OrgSettings is the model entity for the OrgSettings schema.
type OrgSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Settings holds the value of the "settings" field.
	Settings map[string]interface{} `json:"settings,omitempty"`
	// AutoApproveThreshold holds the value of the "auto_approve_threshold" field.
	AutoApproveThreshold float64 `json:"auto_approve_threshold,omitempty"`
	// MaxExecutionsPerMinute holds the value of the "max_executions_per_minute" field.
	MaxExecutionsPerMinute int `json:"max_executions_per_minute,omitempty"`
	// LlmProvider holds the value of the "llm_provider" field.
	LlmProvider string `json:"llm_provider,omitempty"`
	// LlmModel holds the value of the "llm_model" field.
	LlmModel string `json:"llm_model,omitempty"`
	// RequireApprovalAboveValue holds the value of the "require_approval_above_value" field.
	RequireApprovalAboveValue *float64 `json:"require_approval_above_value,omitempty"`
	selectValues              sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrgSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orgsettings.FieldSettings:
			values[i] = new([]byte)
		case orgsettings.FieldAutoApproveThreshold, orgsettings.FieldRequireApprovalAboveValue:
			values[i] = new(sql.NullFloat64)
		case orgsettings.FieldMaxExecutionsPerMinute:
			values[i] = new(sql.NullInt64)
		case orgsettings.FieldID, orgsettings.FieldLlmProvider, orgsettings.FieldLlmModel:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrgSettings fields.
func (_m *OrgSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orgsettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orgsettings.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case orgsettings.FieldAutoApproveThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field auto_approve_threshold", values[i])
			} else if value.Valid {
				_m.AutoApproveThreshold = value.Float64
			}
		case orgsettings.FieldMaxExecutionsPerMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_executions_per_minute", values[i])
			} else if value.Valid {
				_m.MaxExecutionsPerMinute = int(value.Int64)
			}
		case orgsettings.FieldLlmProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_provider", values[i])
			} else if value.Valid {
				_m.LlmProvider = value.String
			}
		case orgsettings.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = value.String
			}
		case orgsettings.FieldRequireApprovalAboveValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field require_approval_above_value", values[i])
			} else if value.Valid {
				_m.RequireApprovalAboveValue = new(float64)
				*_m.RequireApprovalAboveValue = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrgSettings.
// This includes values selected through modifiers, order, etc.
func (_m *OrgSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OrgSettings.
// Note that you need to call OrgSettings.Unwrap() before calling this method if this OrgSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrgSettings) Update() *OrgSettingsUpdateOne {
	return NewOrgSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrgSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrgSettings) Unwrap() *OrgSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrgSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrgSettings) String() string {
	var builder strings.Builder
	builder.WriteString("OrgSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("auto_approve_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoApproveThreshold))
	builder.WriteString(", ")
	builder.WriteString("max_executions_per_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxExecutionsPerMinute))
	builder.WriteString(", ")
	builder.WriteString("llm_provider=")
	builder.WriteString(_m.LlmProvider)
	builder.WriteString(", ")
	builder.WriteString("llm_model=")
	builder.WriteString(_m.LlmModel)
	builder.WriteString(", ")
	if v := _m.RequireApprovalAboveValue; v != nil {
		builder.WriteString("require_approval_above_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// OrgSettingsSlice is a parsable slice of OrgSettings.
type OrgSettingsSlice []*OrgSettings
