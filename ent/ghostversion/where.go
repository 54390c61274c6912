// Code generated by ent, DO NOT EDIT.

package ghostversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldContainsFold(FieldID, id))
}

// GhostID applies equality check predicate on the "ghost_id" field. It's identical to GhostIDEQ.
func GhostID(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldGhostID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldVersion, v))
}

// ChangeDescription applies equality check predicate on the "change_description" field. It's identical to ChangeDescriptionEQ.
func ChangeDescription(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldChangeDescription, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// GhostIDEQ applies the EQ predicate on the "ghost_id" field.
func GhostIDEQ(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldGhostID, v))
}

// GhostIDNEQ applies the NEQ predicate on the "ghost_id" field.
func GhostIDNEQ(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNEQ(FieldGhostID, v))
}

// GhostIDIn applies the In predicate on the "ghost_id" field.
func GhostIDIn(vs ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIn(FieldGhostID, vs...))
}

// GhostIDNotIn applies the NotIn predicate on the "ghost_id" field.
func GhostIDNotIn(vs ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotIn(FieldGhostID, vs...))
}

// GhostIDGT applies the GT predicate on the "ghost_id" field.
func GhostIDGT(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGT(FieldGhostID, v))
}

// GhostIDGTE applies the GTE predicate on the "ghost_id" field.
func GhostIDGTE(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGTE(FieldGhostID, v))
}

// GhostIDLT applies the LT predicate on the "ghost_id" field.
func GhostIDLT(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLT(FieldGhostID, v))
}

// GhostIDLTE applies the LTE predicate on the "ghost_id" field.
func GhostIDLTE(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLTE(FieldGhostID, v))
}

// GhostIDContains applies the Contains predicate on the "ghost_id" field.
func GhostIDContains(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldContains(FieldGhostID, v))
}

// GhostIDHasPrefix applies the HasPrefix predicate on the "ghost_id" field.
func GhostIDHasPrefix(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldHasPrefix(FieldGhostID, v))
}

// GhostIDHasSuffix applies the HasSuffix predicate on the "ghost_id" field.
func GhostIDHasSuffix(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldHasSuffix(FieldGhostID, v))
}

// GhostIDEqualFold applies the EqualFold predicate on the "ghost_id" field.
func GhostIDEqualFold(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEqualFold(FieldGhostID, v))
}

// GhostIDContainsFold applies the ContainsFold predicate on the "ghost_id" field.
func GhostIDContainsFold(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldContainsFold(FieldGhostID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLTE(FieldVersion, v))
}

// ExecutionPlanIsNil applies the IsNil predicate on the "execution_plan" field.
func ExecutionPlanIsNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIsNull(FieldExecutionPlan))
}

// ExecutionPlanNotNil applies the NotNil predicate on the "execution_plan" field.
func ExecutionPlanNotNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotNull(FieldExecutionPlan))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotNull(FieldParameters))
}

// TriggerIsNil applies the IsNil predicate on the "trigger" field.
func TriggerIsNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIsNull(FieldTrigger))
}

// TriggerNotNil applies the NotNil predicate on the "trigger" field.
func TriggerNotNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotNull(FieldTrigger))
}

// ChangeDescriptionEQ applies the EQ predicate on the "change_description" field.
func ChangeDescriptionEQ(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldChangeDescription, v))
}

// ChangeDescriptionNEQ applies the NEQ predicate on the "change_description" field.
func ChangeDescriptionNEQ(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNEQ(FieldChangeDescription, v))
}

// ChangeDescriptionIn applies the In predicate on the "change_description" field.
func ChangeDescriptionIn(vs ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIn(FieldChangeDescription, vs...))
}

// ChangeDescriptionNotIn applies the NotIn predicate on the "change_description" field.
func ChangeDescriptionNotIn(vs ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotIn(FieldChangeDescription, vs...))
}

// ChangeDescriptionGT applies the GT predicate on the "change_description" field.
func ChangeDescriptionGT(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGT(FieldChangeDescription, v))
}

// ChangeDescriptionGTE applies the GTE predicate on the "change_description" field.
func ChangeDescriptionGTE(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGTE(FieldChangeDescription, v))
}

// ChangeDescriptionLT applies the LT predicate on the "change_description" field.
func ChangeDescriptionLT(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLT(FieldChangeDescription, v))
}

// ChangeDescriptionLTE applies the LTE predicate on the "change_description" field.
func ChangeDescriptionLTE(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLTE(FieldChangeDescription, v))
}

// ChangeDescriptionContains applies the Contains predicate on the "change_description" field.
func ChangeDescriptionContains(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldContains(FieldChangeDescription, v))
}

// ChangeDescriptionHasPrefix applies the HasPrefix predicate on the "change_description" field.
func ChangeDescriptionHasPrefix(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldHasPrefix(FieldChangeDescription, v))
}

// ChangeDescriptionHasSuffix applies the HasSuffix predicate on the "change_description" field.
func ChangeDescriptionHasSuffix(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldHasSuffix(FieldChangeDescription, v))
}

// ChangeDescriptionIsNil applies the IsNil predicate on the "change_description" field.
func ChangeDescriptionIsNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIsNull(FieldChangeDescription))
}

// ChangeDescriptionNotNil applies the NotNil predicate on the "change_description" field.
func ChangeDescriptionNotNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotNull(FieldChangeDescription))
}

// ChangeDescriptionEqualFold applies the EqualFold predicate on the "change_description" field.
func ChangeDescriptionEqualFold(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEqualFold(FieldChangeDescription, v))
}

// ChangeDescriptionContainsFold applies the ContainsFold predicate on the "change_description" field.
func ChangeDescriptionContainsFold(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldContainsFold(FieldChangeDescription, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GhostVersion {
	return predicate.GhostVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GhostVersion) predicate.GhostVersion {
	return predicate.GhostVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GhostVersion) predicate.GhostVersion {
	return predicate.GhostVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GhostVersion) predicate.GhostVersion {
	return predicate.GhostVersion(sql.NotPredicates(p))
}
