// Code generated by ent, DO NOT EDIT.

package orgsettings

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldContainsFold(FieldID, id))
}

// AutoApproveThreshold applies equality check predicate on the "auto_approve_threshold" field. It's identical to AutoApproveThresholdEQ.
func AutoApproveThreshold(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldAutoApproveThreshold, v))
}

// MaxExecutionsPerMinute applies equality check predicate on the "max_executions_per_minute" field. It's identical to MaxExecutionsPerMinuteEQ.
func MaxExecutionsPerMinute(v int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldMaxExecutionsPerMinute, v))
}

// LlmProvider applies equality check predicate on the "llm_provider" field. It's identical to LlmProviderEQ.
func LlmProvider(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldLlmModel, v))
}

// RequireApprovalAboveValue applies equality check predicate on the "require_approval_above_value" field. It's identical to RequireApprovalAboveValueEQ.
func RequireApprovalAboveValue(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldRequireApprovalAboveValue, v))
}

// SettingsIsNil applies the IsNil predicate on the "settings" field.
func SettingsIsNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIsNull(FieldSettings))
}

// SettingsNotNil applies the NotNil predicate on the "settings" field.
func SettingsNotNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotNull(FieldSettings))
}

// AutoApproveThresholdEQ applies the EQ predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdEQ(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdNEQ applies the NEQ predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdNEQ(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNEQ(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdIn applies the In predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdIn(vs ...float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIn(FieldAutoApproveThreshold, vs...))
}

// AutoApproveThresholdNotIn applies the NotIn predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdNotIn(vs ...float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotIn(FieldAutoApproveThreshold, vs...))
}

// AutoApproveThresholdGT applies the GT predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdGT(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGT(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdGTE applies the GTE predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdGTE(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGTE(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdLT applies the LT predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdLT(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLT(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdLTE applies the LTE predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdLTE(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLTE(FieldAutoApproveThreshold, v))
}

// MaxExecutionsPerMinuteEQ applies the EQ predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteEQ(v int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldMaxExecutionsPerMinute, v))
}

// MaxExecutionsPerMinuteNEQ applies the NEQ predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteNEQ(v int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNEQ(FieldMaxExecutionsPerMinute, v))
}

// MaxExecutionsPerMinuteIn applies the In predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteIn(vs ...int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIn(FieldMaxExecutionsPerMinute, vs...))
}

// MaxExecutionsPerMinuteNotIn applies the NotIn predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteNotIn(vs ...int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotIn(FieldMaxExecutionsPerMinute, vs...))
}

// MaxExecutionsPerMinuteGT applies the GT predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteGT(v int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGT(FieldMaxExecutionsPerMinute, v))
}

// MaxExecutionsPerMinuteGTE applies the GTE predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteGTE(v int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGTE(FieldMaxExecutionsPerMinute, v))
}

// MaxExecutionsPerMinuteLT applies the LT predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteLT(v int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLT(FieldMaxExecutionsPerMinute, v))
}

// MaxExecutionsPerMinuteLTE applies the LTE predicate on the "max_executions_per_minute" field.
func MaxExecutionsPerMinuteLTE(v int) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLTE(FieldMaxExecutionsPerMinute, v))
}

// LlmProviderEQ applies the EQ predicate on the "llm_provider" field.
func LlmProviderEQ(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldLlmProvider, v))
}

// LlmProviderNEQ applies the NEQ predicate on the "llm_provider" field.
func LlmProviderNEQ(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNEQ(FieldLlmProvider, v))
}

// LlmProviderIn applies the In predicate on the "llm_provider" field.
func LlmProviderIn(vs ...string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIn(FieldLlmProvider, vs...))
}

// LlmProviderNotIn applies the NotIn predicate on the "llm_provider" field.
func LlmProviderNotIn(vs ...string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotIn(FieldLlmProvider, vs...))
}

// LlmProviderGT applies the GT predicate on the "llm_provider" field.
func LlmProviderGT(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGT(FieldLlmProvider, v))
}

// LlmProviderGTE applies the GTE predicate on the "llm_provider" field.
func LlmProviderGTE(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGTE(FieldLlmProvider, v))
}

// LlmProviderLT applies the LT predicate on the "llm_provider" field.
func LlmProviderLT(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLT(FieldLlmProvider, v))
}

// LlmProviderLTE applies the LTE predicate on the "llm_provider" field.
func LlmProviderLTE(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLTE(FieldLlmProvider, v))
}

// LlmProviderContains applies the Contains predicate on the "llm_provider" field.
func LlmProviderContains(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldContains(FieldLlmProvider, v))
}

// LlmProviderHasPrefix applies the HasPrefix predicate on the "llm_provider" field.
func LlmProviderHasPrefix(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldHasPrefix(FieldLlmProvider, v))
}

// LlmProviderHasSuffix applies the HasSuffix predicate on the "llm_provider" field.
func LlmProviderHasSuffix(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldHasSuffix(FieldLlmProvider, v))
}

// LlmProviderIsNil applies the IsNil predicate on the "llm_provider" field.
func LlmProviderIsNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIsNull(FieldLlmProvider))
}

// LlmProviderNotNil applies the NotNil predicate on the "llm_provider" field.
func LlmProviderNotNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotNull(FieldLlmProvider))
}

// LlmProviderEqualFold applies the EqualFold predicate on the "llm_provider" field.
func LlmProviderEqualFold(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEqualFold(FieldLlmProvider, v))
}

// LlmProviderContainsFold applies the ContainsFold predicate on the "llm_provider" field.
func LlmProviderContainsFold(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldContainsFold(FieldLlmProvider, v))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelIsNil applies the IsNil predicate on the "llm_model" field.
func LlmModelIsNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIsNull(FieldLlmModel))
}

// LlmModelNotNil applies the NotNil predicate on the "llm_model" field.
func LlmModelNotNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotNull(FieldLlmModel))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldContainsFold(FieldLlmModel, v))
}

// RequireApprovalAboveValueEQ applies the EQ predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueEQ(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldEQ(FieldRequireApprovalAboveValue, v))
}

// RequireApprovalAboveValueNEQ applies the NEQ predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueNEQ(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNEQ(FieldRequireApprovalAboveValue, v))
}

// RequireApprovalAboveValueIn applies the In predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueIn(vs ...float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIn(FieldRequireApprovalAboveValue, vs...))
}

// RequireApprovalAboveValueNotIn applies the NotIn predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueNotIn(vs ...float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotIn(FieldRequireApprovalAboveValue, vs...))
}

// RequireApprovalAboveValueGT applies the GT predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueGT(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGT(FieldRequireApprovalAboveValue, v))
}

// RequireApprovalAboveValueGTE applies the GTE predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueGTE(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldGTE(FieldRequireApprovalAboveValue, v))
}

// RequireApprovalAboveValueLT applies the LT predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueLT(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLT(FieldRequireApprovalAboveValue, v))
}

// RequireApprovalAboveValueLTE applies the LTE predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueLTE(v float64) predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldLTE(FieldRequireApprovalAboveValue, v))
}

// RequireApprovalAboveValueIsNil applies the IsNil predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueIsNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldIsNull(FieldRequireApprovalAboveValue))
}

// RequireApprovalAboveValueNotNil applies the NotNil predicate on the "require_approval_above_value" field.
func RequireApprovalAboveValueNotNil() predicate.OrgSettings {
	return predicate.OrgSettings(sql.FieldNotNull(FieldRequireApprovalAboveValue))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrgSettings) predicate.OrgSettings {
	return predicate.OrgSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrgSettings) predicate.OrgSettings {
	return predicate.OrgSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrgSettings) predicate.OrgSettings {
	return predicate.OrgSettings(sql.NotPredicates(p))
}
