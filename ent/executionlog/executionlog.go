// Code generated by ent, DO NOT EDIT.

package executionlog

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the executionlog type in the database.
	Label = "execution_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldGhostID holds the string denoting the ghost_id field in the database.
	FieldGhostID = "ghost_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldStrategiesUsed holds the string denoting the strategies_used field in the database.
	FieldStrategiesUsed = "strategies_used"
	// FieldLoggedAt holds the string denoting the logged_at field in the database.
	FieldLoggedAt = "logged_at"
	// Table holds the table name of the executionlog in the database.
	Table = "execution_logs"
)

// Columns holds all SQL columns for executionlog fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldGhostID,
	FieldOrgID,
	FieldStatus,
	FieldSteps,
	FieldDurationMs,
	FieldStrategiesUsed,
	FieldLoggedAt,
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
	// DefaultLoggedAt holds the default value on creation for the "logged_at" field.
	DefaultLoggedAt func() time.Time
)

// OrderOption defines the ordering options for the ExecutionLog queries.
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

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySteps orders the results by the steps field.
func BySteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSteps, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByLoggedAt orders the results by the logged_at field.
func ByLoggedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoggedAt, opts...).ToFunc()
}
