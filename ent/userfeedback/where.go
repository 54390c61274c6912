// Code generated by ent, DO NOT EDIT.

package userfeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldExecutionID, v))
}

// GhostID applies equality check predicate on the "ghost_id" field. It's identical to GhostIDEQ.
func GhostID(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldGhostID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldOrgID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldUserID, v))
}

// SatisfactionScore applies equality check predicate on the "satisfaction_score" field. It's identical to SatisfactionScoreEQ.
func SatisfactionScore(v int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldSatisfactionScore, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContainsFold(FieldExecutionID, v))
}

// GhostIDEQ applies the EQ predicate on the "ghost_id" field.
func GhostIDEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldGhostID, v))
}

// GhostIDNEQ applies the NEQ predicate on the "ghost_id" field.
func GhostIDNEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldGhostID, v))
}

// GhostIDIn applies the In predicate on the "ghost_id" field.
func GhostIDIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldGhostID, vs...))
}

// GhostIDNotIn applies the NotIn predicate on the "ghost_id" field.
func GhostIDNotIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldGhostID, vs...))
}

// GhostIDGT applies the GT predicate on the "ghost_id" field.
func GhostIDGT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldGhostID, v))
}

// GhostIDGTE applies the GTE predicate on the "ghost_id" field.
func GhostIDGTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldGhostID, v))
}

// GhostIDLT applies the LT predicate on the "ghost_id" field.
func GhostIDLT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldGhostID, v))
}

// GhostIDLTE applies the LTE predicate on the "ghost_id" field.
func GhostIDLTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldGhostID, v))
}

// GhostIDContains applies the Contains predicate on the "ghost_id" field.
func GhostIDContains(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContains(FieldGhostID, v))
}

// GhostIDHasPrefix applies the HasPrefix predicate on the "ghost_id" field.
func GhostIDHasPrefix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasPrefix(FieldGhostID, v))
}

// GhostIDHasSuffix applies the HasSuffix predicate on the "ghost_id" field.
func GhostIDHasSuffix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasSuffix(FieldGhostID, v))
}

// GhostIDEqualFold applies the EqualFold predicate on the "ghost_id" field.
func GhostIDEqualFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEqualFold(FieldGhostID, v))
}

// GhostIDContainsFold applies the ContainsFold predicate on the "ghost_id" field.
func GhostIDContainsFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContainsFold(FieldGhostID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContainsFold(FieldOrgID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContainsFold(FieldUserID, v))
}

// SatisfactionScoreEQ applies the EQ predicate on the "satisfaction_score" field.
func SatisfactionScoreEQ(v int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldSatisfactionScore, v))
}

// SatisfactionScoreNEQ applies the NEQ predicate on the "satisfaction_score" field.
func SatisfactionScoreNEQ(v int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldSatisfactionScore, v))
}

// SatisfactionScoreIn applies the In predicate on the "satisfaction_score" field.
func SatisfactionScoreIn(vs ...int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldSatisfactionScore, vs...))
}

// SatisfactionScoreNotIn applies the NotIn predicate on the "satisfaction_score" field.
func SatisfactionScoreNotIn(vs ...int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldSatisfactionScore, vs...))
}

// SatisfactionScoreGT applies the GT predicate on the "satisfaction_score" field.
func SatisfactionScoreGT(v int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldSatisfactionScore, v))
}

// SatisfactionScoreGTE applies the GTE predicate on the "satisfaction_score" field.
func SatisfactionScoreGTE(v int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldSatisfactionScore, v))
}

// SatisfactionScoreLT applies the LT predicate on the "satisfaction_score" field.
func SatisfactionScoreLT(v int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldSatisfactionScore, v))
}

// SatisfactionScoreLTE applies the LTE predicate on the "satisfaction_score" field.
func SatisfactionScoreLTE(v int) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldSatisfactionScore, v))
}

// SatisfactionScoreIsNil applies the IsNil predicate on the "satisfaction_score" field.
func SatisfactionScoreIsNil() predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIsNull(FieldSatisfactionScore))
}

// SatisfactionScoreNotNil applies the NotNil predicate on the "satisfaction_score" field.
func SatisfactionScoreNotNil() predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotNull(FieldSatisfactionScore))
}

// CorrectedActionsIsNil applies the IsNil predicate on the "corrected_actions" field.
func CorrectedActionsIsNil() predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIsNull(FieldCorrectedActions))
}

// CorrectedActionsNotNil applies the NotNil predicate on the "corrected_actions" field.
func CorrectedActionsNotNil() predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotNull(FieldCorrectedActions))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserFeedback {
	return predicate.UserFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserFeedback) predicate.UserFeedback {
	return predicate.UserFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserFeedback) predicate.UserFeedback {
	return predicate.UserFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserFeedback) predicate.UserFeedback {
	return predicate.UserFeedback(sql.NotPredicates(p))
}
