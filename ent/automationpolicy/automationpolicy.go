// Code generated by ent, DO NOT EDIT.

package automationpolicy

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the automationpolicy type in the database.
	Label = "automation_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCondition holds the string denoting the condition field in the database.
	FieldCondition = "condition"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the automationpolicy in the database.
	Table = "automation_policies"
)

// Columns holds all SQL columns for automationpolicy fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldName,
	FieldDescription,
	FieldCondition,
	FieldAction,
	FieldIsActive,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
)

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionRequireApproval Action = "require_approval"
	ActionBlock           Action = "block"
	ActionNotify          Action = "notify"
	ActionAllow           Action = "allow"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionRequireApproval, ActionBlock, ActionNotify, ActionAllow:
		return nil
	default:
		return fmt.Errorf("automationpolicy: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the AutomationPolicy queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
