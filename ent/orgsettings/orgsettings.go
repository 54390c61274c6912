// Code generated by ent, DO NOT EDIT.

package orgsettings

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the orgsettings type in the database.
	Label = "org_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "org_id"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// FieldAutoApproveThreshold holds the string denoting the auto_approve_threshold field in the database.
	FieldAutoApproveThreshold = "auto_approve_threshold"
	// FieldMaxExecutionsPerMinute holds the string denoting the max_executions_per_minute field in the database.
	FieldMaxExecutionsPerMinute = "max_executions_per_minute"
	// FieldLlmProvider holds the string denoting the llm_provider field in the database.
	FieldLlmProvider = "llm_provider"
	// FieldLlmModel holds the string denoting the llm_model field in the database.
	FieldLlmModel = "llm_model"
	// FieldRequireApprovalAboveValue holds the string denoting the require_approval_above_value field in the database.
	FieldRequireApprovalAboveValue = "require_approval_above_value"
	// Table holds the table name of the orgsettings in the database.
	Table = "org_settings"
)

// Columns holds all SQL columns for orgsettings fields.
var Columns = []string{
	FieldID,
	FieldSettings,
	FieldAutoApproveThreshold,
	FieldMaxExecutionsPerMinute,
	FieldLlmProvider,
	FieldLlmModel,
	FieldRequireApprovalAboveValue,
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
	// DefaultAutoApproveThreshold holds the default value on creation for the "auto_approve_threshold" field.
	DefaultAutoApproveThreshold float64
	// DefaultMaxExecutionsPerMinute holds the default value on creation for the "max_executions_per_minute" field.
	DefaultMaxExecutionsPerMinute int
)

// OrderOption defines the ordering options for the OrgSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAutoApproveThreshold orders the results by the auto_approve_threshold field.
func ByAutoApproveThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoApproveThreshold, opts...).ToFunc()
}

// ByMaxExecutionsPerMinute orders the results by the max_executions_per_minute field.
func ByMaxExecutionsPerMinute(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxExecutionsPerMinute, opts...).ToFunc()
}

// ByLlmProvider orders the results by the llm_provider field.
func ByLlmProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmProvider, opts...).ToFunc()
}

// ByLlmModel orders the results by the llm_model field.
func ByLlmModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModel, opts...).ToFunc()
}

// ByRequireApprovalAboveValue orders the results by the require_approval_above_value field.
func ByRequireApprovalAboveValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireApprovalAboveValue, opts...).ToFunc()
}
