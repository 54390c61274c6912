// Code generated by ent, DO NOT EDIT.

package ghostversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ghostversion type in the database.
	Label = "ghost_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGhostID holds the string denoting the ghost_id field in the database.
	FieldGhostID = "ghost_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldExecutionPlan holds the string denoting the execution_plan field in the database.
	FieldExecutionPlan = "execution_plan"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldChangeDescription holds the string denoting the change_description field in the database.
	FieldChangeDescription = "change_description"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the ghostversion in the database.
	Table = "ghost_versions"
)

// Columns holds all SQL columns for ghostversion fields.
var Columns = []string{
	FieldID,
	FieldGhostID,
	FieldVersion,
	FieldExecutionPlan,
	FieldParameters,
	FieldTrigger,
	FieldChangeDescription,
	FieldCreatedBy,
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

var (
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the GhostVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGhostID orders the results by the ghost_id field.
func ByGhostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGhostID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByChangeDescription orders the results by the change_description field.
func ByChangeDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeDescription, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
