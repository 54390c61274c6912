// Code generated by ent, DO NOT EDIT.

package approvalrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldID, id))
}

// GhostID applies equality check predicate on the "ghost_id" field. It's identical to GhostIDEQ.
func GhostID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldGhostID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExecutionID, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldOrgID, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequestedBy, v))
}

// ApprovedBy applies equality check predicate on the "approved_by" field. It's identical to ApprovedByEQ.
func ApprovedBy(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldApprovedBy, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldReason, v))
}

// DecisionNote applies equality check predicate on the "decision_note" field. It's identical to DecisionNoteEQ.
func DecisionNote(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecisionNote, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldResolvedAt, v))
}

// GhostIDEQ applies the EQ predicate on the "ghost_id" field.
func GhostIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldGhostID, v))
}

// GhostIDNEQ applies the NEQ predicate on the "ghost_id" field.
func GhostIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldGhostID, v))
}

// GhostIDIn applies the In predicate on the "ghost_id" field.
func GhostIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldGhostID, vs...))
}

// GhostIDNotIn applies the NotIn predicate on the "ghost_id" field.
func GhostIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldGhostID, vs...))
}

// GhostIDGT applies the GT predicate on the "ghost_id" field.
func GhostIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldGhostID, v))
}

// GhostIDGTE applies the GTE predicate on the "ghost_id" field.
func GhostIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldGhostID, v))
}

// GhostIDLT applies the LT predicate on the "ghost_id" field.
func GhostIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldGhostID, v))
}

// GhostIDLTE applies the LTE predicate on the "ghost_id" field.
func GhostIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldGhostID, v))
}

// GhostIDContains applies the Contains predicate on the "ghost_id" field.
func GhostIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldGhostID, v))
}

// GhostIDHasPrefix applies the HasPrefix predicate on the "ghost_id" field.
func GhostIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldGhostID, v))
}

// GhostIDHasSuffix applies the HasSuffix predicate on the "ghost_id" field.
func GhostIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldGhostID, v))
}

// GhostIDEqualFold applies the EqualFold predicate on the "ghost_id" field.
func GhostIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldGhostID, v))
}

// GhostIDContainsFold applies the ContainsFold predicate on the "ghost_id" field.
func GhostIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldGhostID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDIsNil applies the IsNil predicate on the "execution_id" field.
func ExecutionIDIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldExecutionID))
}

// ExecutionIDNotNil applies the NotNil predicate on the "execution_id" field.
func ExecutionIDNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldExecutionID))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldExecutionID, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldOrgID, v))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldRequestedBy, v))
}

// RequestedByContains applies the Contains predicate on the "requested_by" field.
func RequestedByContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldRequestedBy, v))
}

// RequestedByHasPrefix applies the HasPrefix predicate on the "requested_by" field.
func RequestedByHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldRequestedBy, v))
}

// RequestedByHasSuffix applies the HasSuffix predicate on the "requested_by" field.
func RequestedByHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldRequestedBy, v))
}

// RequestedByEqualFold applies the EqualFold predicate on the "requested_by" field.
func RequestedByEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldRequestedBy, v))
}

// RequestedByContainsFold applies the ContainsFold predicate on the "requested_by" field.
func RequestedByContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldRequestedBy, v))
}

// ApprovedByEQ applies the EQ predicate on the "approved_by" field.
func ApprovedByEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldApprovedBy, v))
}

// ApprovedByNEQ applies the NEQ predicate on the "approved_by" field.
func ApprovedByNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldApprovedBy, v))
}

// ApprovedByIn applies the In predicate on the "approved_by" field.
func ApprovedByIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldApprovedBy, vs...))
}

// ApprovedByNotIn applies the NotIn predicate on the "approved_by" field.
func ApprovedByNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldApprovedBy, vs...))
}

// ApprovedByGT applies the GT predicate on the "approved_by" field.
func ApprovedByGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldApprovedBy, v))
}

// ApprovedByGTE applies the GTE predicate on the "approved_by" field.
func ApprovedByGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldApprovedBy, v))
}

// ApprovedByLT applies the LT predicate on the "approved_by" field.
func ApprovedByLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldApprovedBy, v))
}

// ApprovedByLTE applies the LTE predicate on the "approved_by" field.
func ApprovedByLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldApprovedBy, v))
}

// ApprovedByContains applies the Contains predicate on the "approved_by" field.
func ApprovedByContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldApprovedBy, v))
}

// ApprovedByHasPrefix applies the HasPrefix predicate on the "approved_by" field.
func ApprovedByHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldApprovedBy, v))
}

// ApprovedByHasSuffix applies the HasSuffix predicate on the "approved_by" field.
func ApprovedByHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldApprovedBy, v))
}

// ApprovedByIsNil applies the IsNil predicate on the "approved_by" field.
func ApprovedByIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldApprovedBy))
}

// ApprovedByNotNil applies the NotNil predicate on the "approved_by" field.
func ApprovedByNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldApprovedBy))
}

// ApprovedByEqualFold applies the EqualFold predicate on the "approved_by" field.
func ApprovedByEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldApprovedBy, v))
}

// ApprovedByContainsFold applies the ContainsFold predicate on the "approved_by" field.
func ApprovedByContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldApprovedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldReason, v))
}

// DecisionNoteEQ applies the EQ predicate on the "decision_note" field.
func DecisionNoteEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldDecisionNote, v))
}

// DecisionNoteNEQ applies the NEQ predicate on the "decision_note" field.
func DecisionNoteNEQ(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldDecisionNote, v))
}

// DecisionNoteIn applies the In predicate on the "decision_note" field.
func DecisionNoteIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldDecisionNote, vs...))
}

// DecisionNoteNotIn applies the NotIn predicate on the "decision_note" field.
func DecisionNoteNotIn(vs ...string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldDecisionNote, vs...))
}

// DecisionNoteGT applies the GT predicate on the "decision_note" field.
func DecisionNoteGT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldDecisionNote, v))
}

// DecisionNoteGTE applies the GTE predicate on the "decision_note" field.
func DecisionNoteGTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldDecisionNote, v))
}

// DecisionNoteLT applies the LT predicate on the "decision_note" field.
func DecisionNoteLT(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldDecisionNote, v))
}

// DecisionNoteLTE applies the LTE predicate on the "decision_note" field.
func DecisionNoteLTE(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldDecisionNote, v))
}

// DecisionNoteContains applies the Contains predicate on the "decision_note" field.
func DecisionNoteContains(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContains(FieldDecisionNote, v))
}

// DecisionNoteHasPrefix applies the HasPrefix predicate on the "decision_note" field.
func DecisionNoteHasPrefix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasPrefix(FieldDecisionNote, v))
}

// DecisionNoteHasSuffix applies the HasSuffix predicate on the "decision_note" field.
func DecisionNoteHasSuffix(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldHasSuffix(FieldDecisionNote, v))
}

// DecisionNoteIsNil applies the IsNil predicate on the "decision_note" field.
func DecisionNoteIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldDecisionNote))
}

// DecisionNoteNotNil applies the NotNil predicate on the "decision_note" field.
func DecisionNoteNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldDecisionNote))
}

// DecisionNoteEqualFold applies the EqualFold predicate on the "decision_note" field.
func DecisionNoteEqualFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEqualFold(FieldDecisionNote, v))
}

// DecisionNoteContainsFold applies the ContainsFold predicate on the "decision_note" field.
func DecisionNoteContainsFold(v string) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldContainsFold(FieldDecisionNote, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRequest) predicate.ApprovalRequest {
	return predicate.ApprovalRequest(sql.NotPredicates(p))
}
