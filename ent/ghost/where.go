// Code generated by ent, DO NOT EDIT.

package ghost

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldOrgID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldDescription, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldVersion, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldConfidence, v))
}

// SourcePatternID applies equality check predicate on the "source_pattern_id" field. It's identical to SourcePatternIDEQ.
func SourcePatternID(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldSourcePatternID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldCreatedBy, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldApprovedBy, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContainsFold(FieldOrgID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContainsFold(FieldDescription, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggerIsNil applies the IsNil predicate on the "trigger" field.
func TriggerIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldTrigger))
}

// TriggerNotNil applies the NotNil predicate on the "trigger" field.
func TriggerNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldTrigger))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldParameters))
}

// ExecutionPlanIsNil applies the IsNil predicate on the "execution_plan" field.
func ExecutionPlanIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldExecutionPlan))
}

// ExecutionPlanNotNil applies the NotNil predicate on the "execution_plan" field.
func ExecutionPlanNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldExecutionPlan))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldConfidence))
}

// SourcePatternIDEQ applies the EQ predicate on the "source_pattern_id" field.
func SourcePatternIDEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldSourcePatternID, v))
}

// SourcePatternIDNEQ applies the NEQ predicate on the "source_pattern_id" field.
func SourcePatternIDNEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldSourcePatternID, v))
}

// SourcePatternIDIn applies the In predicate on the "source_pattern_id" field.
func SourcePatternIDIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldSourcePatternID, vs...))
}

// SourcePatternIDNotIn applies the NotIn predicate on the "source_pattern_id" field.
func SourcePatternIDNotIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldSourcePatternID, vs...))
}

// SourcePatternIDGT applies the GT predicate on the "source_pattern_id" field.
func SourcePatternIDGT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldSourcePatternID, v))
}

// SourcePatternIDGTE applies the GTE predicate on the "source_pattern_id" field.
func SourcePatternIDGTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldSourcePatternID, v))
}

// SourcePatternIDLT applies the LT predicate on the "source_pattern_id" field.
func SourcePatternIDLT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldSourcePatternID, v))
}

// SourcePatternIDLTE applies the LTE predicate on the "source_pattern_id" field.
func SourcePatternIDLTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldSourcePatternID, v))
}

// SourcePatternIDContains applies the Contains predicate on the "source_pattern_id" field.
func SourcePatternIDContains(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContains(FieldSourcePatternID, v))
}

// SourcePatternIDHasPrefix applies the HasPrefix predicate on the "source_pattern_id" field.
func SourcePatternIDHasPrefix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasPrefix(FieldSourcePatternID, v))
}

// SourcePatternIDHasSuffix applies the HasSuffix predicate on the "source_pattern_id" field.
func SourcePatternIDHasSuffix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasSuffix(FieldSourcePatternID, v))
}

// SourcePatternIDIsNil applies the IsNil predicate on the "source_pattern_id" field.
func SourcePatternIDIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldSourcePatternID))
}

// SourcePatternIDNotNil applies the NotNil predicate on the "source_pattern_id" field.
func SourcePatternIDNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldSourcePatternID))
}

// SourcePatternIDEqualFold applies the EqualFold predicate on the "source_pattern_id" field.
func SourcePatternIDEqualFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEqualFold(FieldSourcePatternID, v))
}

// SourcePatternIDContainsFold applies the ContainsFold predicate on the "source_pattern_id" field.
func SourcePatternIDContainsFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContainsFold(FieldSourcePatternID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.Ghost {
	return predicate.Ghost(sql.FieldContainsFold(FieldApprovedBy, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldIsActive, v))
}

// UsageStatsIsNil applies the IsNil predicate on the "usage_stats" field.
func UsageStatsIsNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldIsNull(FieldUsageStats))
}

// UsageStatsNotNil applies the NotNil predicate on the "usage_stats" field.
func UsageStatsNotNil() predicate.Ghost {
	return predicate.Ghost(sql.FieldNotNull(FieldUsageStats))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Ghost {
	return predicate.Ghost(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ghost) predicate.Ghost {
	return predicate.Ghost(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ghost) predicate.Ghost {
	return predicate.Ghost(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ghost) predicate.Ghost {
	return predicate.Ghost(sql.NotPredicates(p))
}
