// Code generated by ent, DO NOT EDIT.

package detectedpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldOrgID, v))
}

// Occurrences applies equality check predicate on the "occurrences" field. It's identical to OccurrencesEQ.
func Occurrences(v int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldOccurrences, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldConfidence, v))
}

// SuggestedName applies equality check predicate on the "suggested_name" field. It's identical to SuggestedNameEQ.
func SuggestedName(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldSuggestedName, v))
}

// SuggestedDescription applies equality check predicate on the "suggested_description" field. It's identical to SuggestedDescriptionEQ.
func SuggestedDescription(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldSuggestedDescription, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldLastSeen, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldContainsFold(FieldOrgID, v))
}

// OccurrencesEQ applies the EQ predicate on the "occurrences" field.
func OccurrencesEQ(v int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldOccurrences, v))
}

// OccurrencesNEQ applies the NEQ predicate on the "occurrences" field.
func OccurrencesNEQ(v int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldOccurrences, v))
}

// OccurrencesIn applies the In predicate on the "occurrences" field.
func OccurrencesIn(vs ...int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldOccurrences, vs...))
}

// OccurrencesNotIn applies the NotIn predicate on the "occurrences" field.
func OccurrencesNotIn(vs ...int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldOccurrences, vs...))
}

// OccurrencesGT applies the GT predicate on the "occurrences" field.
func OccurrencesGT(v int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldOccurrences, v))
}

// OccurrencesGTE applies the GTE predicate on the "occurrences" field.
func OccurrencesGTE(v int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldOccurrences, v))
}

// OccurrencesLT applies the LT predicate on the "occurrences" field.
func OccurrencesLT(v int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldOccurrences, v))
}

// OccurrencesLTE applies the LTE predicate on the "occurrences" field.
func OccurrencesLTE(v int) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldOccurrences, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldConfidence, v))
}

// SuggestedNameEQ applies the EQ predicate on the "suggested_name" field.
func SuggestedNameEQ(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldSuggestedName, v))
}

// SuggestedNameNEQ applies the NEQ predicate on the "suggested_name" field.
func SuggestedNameNEQ(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldSuggestedName, v))
}

// SuggestedNameIn applies the In predicate on the "suggested_name" field.
func SuggestedNameIn(vs ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldSuggestedName, vs...))
}

// SuggestedNameNotIn applies the NotIn predicate on the "suggested_name" field.
func SuggestedNameNotIn(vs ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldSuggestedName, vs...))
}

// SuggestedNameGT applies the GT predicate on the "suggested_name" field.
func SuggestedNameGT(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldSuggestedName, v))
}

// SuggestedNameGTE applies the GTE predicate on the "suggested_name" field.
func SuggestedNameGTE(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldSuggestedName, v))
}

// SuggestedNameLT applies the LT predicate on the "suggested_name" field.
func SuggestedNameLT(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldSuggestedName, v))
}

// SuggestedNameLTE applies the LTE predicate on the "suggested_name" field.
func SuggestedNameLTE(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldSuggestedName, v))
}

// SuggestedNameContains applies the Contains predicate on the "suggested_name" field.
func SuggestedNameContains(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldContains(FieldSuggestedName, v))
}

// SuggestedNameHasPrefix applies the HasPrefix predicate on the "suggested_name" field.
func SuggestedNameHasPrefix(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldHasPrefix(FieldSuggestedName, v))
}

// SuggestedNameHasSuffix applies the HasSuffix predicate on the "suggested_name" field.
func SuggestedNameHasSuffix(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldHasSuffix(FieldSuggestedName, v))
}

// SuggestedNameIsNil applies the IsNil predicate on the "suggested_name" field.
func SuggestedNameIsNil() predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIsNull(FieldSuggestedName))
}

// SuggestedNameNotNil applies the NotNil predicate on the "suggested_name" field.
func SuggestedNameNotNil() predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotNull(FieldSuggestedName))
}

// SuggestedNameEqualFold applies the EqualFold predicate on the "suggested_name" field.
func SuggestedNameEqualFold(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEqualFold(FieldSuggestedName, v))
}

// SuggestedNameContainsFold applies the ContainsFold predicate on the "suggested_name" field.
func SuggestedNameContainsFold(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldContainsFold(FieldSuggestedName, v))
}

// SuggestedDescriptionEQ applies the EQ predicate on the "suggested_description" field.
func SuggestedDescriptionEQ(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldSuggestedDescription, v))
}

// SuggestedDescriptionNEQ applies the NEQ predicate on the "suggested_description" field.
func SuggestedDescriptionNEQ(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldSuggestedDescription, v))
}

// SuggestedDescriptionIn applies the In predicate on the "suggested_description" field.
func SuggestedDescriptionIn(vs ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldSuggestedDescription, vs...))
}

// SuggestedDescriptionNotIn applies the NotIn predicate on the "suggested_description" field.
func SuggestedDescriptionNotIn(vs ...string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldSuggestedDescription, vs...))
}

// SuggestedDescriptionGT applies the GT predicate on the "suggested_description" field.
func SuggestedDescriptionGT(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldSuggestedDescription, v))
}

// SuggestedDescriptionGTE applies the GTE predicate on the "suggested_description" field.
func SuggestedDescriptionGTE(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldSuggestedDescription, v))
}

// SuggestedDescriptionLT applies the LT predicate on the "suggested_description" field.
func SuggestedDescriptionLT(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldSuggestedDescription, v))
}

// SuggestedDescriptionLTE applies the LTE predicate on the "suggested_description" field.
func SuggestedDescriptionLTE(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldSuggestedDescription, v))
}

// SuggestedDescriptionContains applies the Contains predicate on the "suggested_description" field.
func SuggestedDescriptionContains(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldContains(FieldSuggestedDescription, v))
}

// SuggestedDescriptionHasPrefix applies the HasPrefix predicate on the "suggested_description" field.
func SuggestedDescriptionHasPrefix(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldHasPrefix(FieldSuggestedDescription, v))
}

// SuggestedDescriptionHasSuffix applies the HasSuffix predicate on the "suggested_description" field.
func SuggestedDescriptionHasSuffix(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldHasSuffix(FieldSuggestedDescription, v))
}

// SuggestedDescriptionIsNil applies the IsNil predicate on the "suggested_description" field.
func SuggestedDescriptionIsNil() predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIsNull(FieldSuggestedDescription))
}

// SuggestedDescriptionNotNil applies the NotNil predicate on the "suggested_description" field.
func SuggestedDescriptionNotNil() predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotNull(FieldSuggestedDescription))
}

// SuggestedDescriptionEqualFold applies the EqualFold predicate on the "suggested_description" field.
func SuggestedDescriptionEqualFold(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEqualFold(FieldSuggestedDescription, v))
}

// SuggestedDescriptionContainsFold applies the ContainsFold predicate on the "suggested_description" field.
func SuggestedDescriptionContainsFold(v string) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldContainsFold(FieldSuggestedDescription, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldLastSeen, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DetectedPattern) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DetectedPattern) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DetectedPattern) predicate.DetectedPattern {
	return predicate.DetectedPattern(sql.NotPredicates(p))
}
