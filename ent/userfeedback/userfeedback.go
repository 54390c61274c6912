// Code generated by ent, DO NOT EDIT.

package userfeedback

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userfeedback type in the database.
	Label = "user_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldGhostID holds the string denoting the ghost_id field in the database.
	FieldGhostID = "ghost_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSatisfactionScore holds the string denoting the satisfaction_score field in the database.
	FieldSatisfactionScore = "satisfaction_score"
	// FieldCorrectedActions holds the string denoting the corrected_actions field in the database.
	FieldCorrectedActions = "corrected_actions"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the userfeedback in the database.
	Table = "user_feedback"
)

// Columns holds all SQL columns for userfeedback fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldGhostID,
	FieldOrgID,
	FieldUserID,
	FieldSatisfactionScore,
	FieldCorrectedActions,
	FieldNotes,
	FieldCreatedAt,
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

// Note that the variables below are initialized by the runtime
// package on the initialization of the application. Therefore,
// it should be imported in the main as follows:
//
//	import _ "github.com/ghostworks/ghostd/ent/runtime"
var (
	Hooks [1]ent.Hook
	// SatisfactionScoreValidator is a validator for the "satisfaction_score" field. It is called by the builders before save.
	SatisfactionScoreValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the UserFeedback queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByGhostID orders the results by the ghost_id field.
func ByGhostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGhostID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySatisfactionScore orders the results by the satisfaction_score field.
func BySatisfactionScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSatisfactionScore, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
