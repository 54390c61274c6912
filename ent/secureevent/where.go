// Code generated by ent, DO NOT EDIT.

package secureevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ghostworks/ghostd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldID, id))
}

// SessionFingerprint applies equality check predicate on the "session_fingerprint" field. It's identical to SessionFingerprintEQ.
func SessionFingerprint(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldSessionFingerprint, v))
}

// TimestampBucket applies equality check predicate on the "timestamp_bucket" field. It's identical to TimestampBucketEQ.
func TimestampBucket(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldTimestampBucket, v))
}

// StructuralHash applies equality check predicate on the "structural_hash" field. It's identical to StructuralHashEQ.
func StructuralHash(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldStructuralHash, v))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldOrgID, v))
}

// IntentLabel applies equality check predicate on the "intent_label" field. It's identical to IntentLabelEQ.
func IntentLabel(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldIntentLabel, v))
}

// IntentConfidence applies equality check predicate on the "intent_confidence" field. It's identical to IntentConfidenceEQ.
func IntentConfidence(v float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldIntentConfidence, v))
}

// ElementSignature applies equality check predicate on the "element_signature" field. It's identical to ElementSignatureEQ.
func ElementSignature(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldElementSignature, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// DeviceFingerprint applies equality check predicate on the "device_fingerprint" field. It's identical to DeviceFingerprintEQ.
func DeviceFingerprint(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldDeviceFingerprint, v))
}

// BatchID applies equality check predicate on the "batch_id" field. It's identical to BatchIDEQ.
func BatchID(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldBatchID, v))
}

// IngestedAt applies equality check predicate on the "ingested_at" field. It's identical to IngestedAtEQ.
func IngestedAt(v time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldIngestedAt, v))
}

// SessionFingerprintEQ applies the EQ predicate on the "session_fingerprint" field.
func SessionFingerprintEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldSessionFingerprint, v))
}

// SessionFingerprintNEQ applies the NEQ predicate on the "session_fingerprint" field.
func SessionFingerprintNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldSessionFingerprint, v))
}

// SessionFingerprintIn applies the In predicate on the "session_fingerprint" field.
func SessionFingerprintIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldSessionFingerprint, vs...))
}

// SessionFingerprintNotIn applies the NotIn predicate on the "session_fingerprint" field.
func SessionFingerprintNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldSessionFingerprint, vs...))
}

// SessionFingerprintGT applies the GT predicate on the "session_fingerprint" field.
func SessionFingerprintGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldSessionFingerprint, v))
}

// SessionFingerprintGTE applies the GTE predicate on the "session_fingerprint" field.
func SessionFingerprintGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldSessionFingerprint, v))
}

// SessionFingerprintLT applies the LT predicate on the "session_fingerprint" field.
func SessionFingerprintLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldSessionFingerprint, v))
}

// SessionFingerprintLTE applies the LTE predicate on the "session_fingerprint" field.
func SessionFingerprintLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldSessionFingerprint, v))
}

// SessionFingerprintContains applies the Contains predicate on the "session_fingerprint" field.
func SessionFingerprintContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldSessionFingerprint, v))
}

// SessionFingerprintHasPrefix applies the HasPrefix predicate on the "session_fingerprint" field.
func SessionFingerprintHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldSessionFingerprint, v))
}

// SessionFingerprintHasSuffix applies the HasSuffix predicate on the "session_fingerprint" field.
func SessionFingerprintHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldSessionFingerprint, v))
}

// SessionFingerprintEqualFold applies the EqualFold predicate on the "session_fingerprint" field.
func SessionFingerprintEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldSessionFingerprint, v))
}

// SessionFingerprintContainsFold applies the ContainsFold predicate on the "session_fingerprint" field.
func SessionFingerprintContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldSessionFingerprint, v))
}

// TimestampBucketEQ applies the EQ predicate on the "timestamp_bucket" field.
func TimestampBucketEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldTimestampBucket, v))
}

// TimestampBucketNEQ applies the NEQ predicate on the "timestamp_bucket" field.
func TimestampBucketNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldTimestampBucket, v))
}

// TimestampBucketIn applies the In predicate on the "timestamp_bucket" field.
func TimestampBucketIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldTimestampBucket, vs...))
}

// TimestampBucketNotIn applies the NotIn predicate on the "timestamp_bucket" field.
func TimestampBucketNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldTimestampBucket, vs...))
}

// TimestampBucketGT applies the GT predicate on the "timestamp_bucket" field.
func TimestampBucketGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldTimestampBucket, v))
}

// TimestampBucketGTE applies the GTE predicate on the "timestamp_bucket" field.
func TimestampBucketGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldTimestampBucket, v))
}

// TimestampBucketLT applies the LT predicate on the "timestamp_bucket" field.
func TimestampBucketLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldTimestampBucket, v))
}

// TimestampBucketLTE applies the LTE predicate on the "timestamp_bucket" field.
func TimestampBucketLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldTimestampBucket, v))
}

// TimestampBucketContains applies the Contains predicate on the "timestamp_bucket" field.
func TimestampBucketContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldTimestampBucket, v))
}

// TimestampBucketHasPrefix applies the HasPrefix predicate on the "timestamp_bucket" field.
func TimestampBucketHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldTimestampBucket, v))
}

// TimestampBucketHasSuffix applies the HasSuffix predicate on the "timestamp_bucket" field.
func TimestampBucketHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldTimestampBucket, v))
}

// TimestampBucketEqualFold applies the EqualFold predicate on the "timestamp_bucket" field.
func TimestampBucketEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldTimestampBucket, v))
}

// TimestampBucketContainsFold applies the ContainsFold predicate on the "timestamp_bucket" field.
func TimestampBucketContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldTimestampBucket, v))
}

// StructuralHashEQ applies the EQ predicate on the "structural_hash" field.
func StructuralHashEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldStructuralHash, v))
}

// StructuralHashNEQ applies the NEQ predicate on the "structural_hash" field.
func StructuralHashNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldStructuralHash, v))
}

// StructuralHashIn applies the In predicate on the "structural_hash" field.
func StructuralHashIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldStructuralHash, vs...))
}

// StructuralHashNotIn applies the NotIn predicate on the "structural_hash" field.
func StructuralHashNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldStructuralHash, vs...))
}

// StructuralHashGT applies the GT predicate on the "structural_hash" field.
func StructuralHashGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldStructuralHash, v))
}

// StructuralHashGTE applies the GTE predicate on the "structural_hash" field.
func StructuralHashGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldStructuralHash, v))
}

// StructuralHashLT applies the LT predicate on the "structural_hash" field.
func StructuralHashLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldStructuralHash, v))
}

// StructuralHashLTE applies the LTE predicate on the "structural_hash" field.
func StructuralHashLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldStructuralHash, v))
}

// StructuralHashContains applies the Contains predicate on the "structural_hash" field.
func StructuralHashContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldStructuralHash, v))
}

// StructuralHashHasPrefix applies the HasPrefix predicate on the "structural_hash" field.
func StructuralHashHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldStructuralHash, v))
}

// StructuralHashHasSuffix applies the HasSuffix predicate on the "structural_hash" field.
func StructuralHashHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldStructuralHash, v))
}

// StructuralHashIsNil applies the IsNil predicate on the "structural_hash" field.
func StructuralHashIsNil() predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIsNull(FieldStructuralHash))
}

// StructuralHashNotNil applies the NotNil predicate on the "structural_hash" field.
func StructuralHashNotNil() predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotNull(FieldStructuralHash))
}

// StructuralHashEqualFold applies the EqualFold predicate on the "structural_hash" field.
func StructuralHashEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldStructuralHash, v))
}

// StructuralHashContainsFold applies the ContainsFold predicate on the "structural_hash" field.
func StructuralHashContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldStructuralHash, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldOrgID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// IntentLabelEQ applies the EQ predicate on the "intent_label" field.
func IntentLabelEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldIntentLabel, v))
}

// IntentLabelNEQ applies the NEQ predicate on the "intent_label" field.
func IntentLabelNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldIntentLabel, v))
}

// IntentLabelIn applies the In predicate on the "intent_label" field.
func IntentLabelIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldIntentLabel, vs...))
}

// IntentLabelNotIn applies the NotIn predicate on the "intent_label" field.
func IntentLabelNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldIntentLabel, vs...))
}

// IntentLabelGT applies the GT predicate on the "intent_label" field.
func IntentLabelGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldIntentLabel, v))
}

// IntentLabelGTE applies the GTE predicate on the "intent_label" field.
func IntentLabelGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldIntentLabel, v))
}

// IntentLabelLT applies the LT predicate on the "intent_label" field.
func IntentLabelLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldIntentLabel, v))
}

// IntentLabelLTE applies the LTE predicate on the "intent_label" field.
func IntentLabelLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldIntentLabel, v))
}

// IntentLabelContains applies the Contains predicate on the "intent_label" field.
func IntentLabelContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldIntentLabel, v))
}

// IntentLabelHasPrefix applies the HasPrefix predicate on the "intent_label" field.
func IntentLabelHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldIntentLabel, v))
}

// IntentLabelHasSuffix applies the HasSuffix predicate on the "intent_label" field.
func IntentLabelHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldIntentLabel, v))
}

// IntentLabelEqualFold applies the EqualFold predicate on the "intent_label" field.
func IntentLabelEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldIntentLabel, v))
}

// IntentLabelContainsFold applies the ContainsFold predicate on the "intent_label" field.
func IntentLabelContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldIntentLabel, v))
}

// IntentConfidenceEQ applies the EQ predicate on the "intent_confidence" field.
func IntentConfidenceEQ(v float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldIntentConfidence, v))
}

// IntentConfidenceNEQ applies the NEQ predicate on the "intent_confidence" field.
func IntentConfidenceNEQ(v float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldIntentConfidence, v))
}

// IntentConfidenceIn applies the In predicate on the "intent_confidence" field.
func IntentConfidenceIn(vs ...float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldIntentConfidence, vs...))
}

// IntentConfidenceNotIn applies the NotIn predicate on the "intent_confidence" field.
func IntentConfidenceNotIn(vs ...float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldIntentConfidence, vs...))
}

// IntentConfidenceGT applies the GT predicate on the "intent_confidence" field.
func IntentConfidenceGT(v float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldIntentConfidence, v))
}

// IntentConfidenceGTE applies the GTE predicate on the "intent_confidence" field.
func IntentConfidenceGTE(v float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldIntentConfidence, v))
}

// IntentConfidenceLT applies the LT predicate on the "intent_confidence" field.
func IntentConfidenceLT(v float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldIntentConfidence, v))
}

// IntentConfidenceLTE applies the LTE predicate on the "intent_confidence" field.
func IntentConfidenceLTE(v float64) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldIntentConfidence, v))
}

// ElementSignatureEQ applies the EQ predicate on the "element_signature" field.
func ElementSignatureEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldElementSignature, v))
}

// ElementSignatureNEQ applies the NEQ predicate on the "element_signature" field.
func ElementSignatureNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldElementSignature, v))
}

// ElementSignatureIn applies the In predicate on the "element_signature" field.
func ElementSignatureIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldElementSignature, vs...))
}

// ElementSignatureNotIn applies the NotIn predicate on the "element_signature" field.
func ElementSignatureNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldElementSignature, vs...))
}

// ElementSignatureGT applies the GT predicate on the "element_signature" field.
func ElementSignatureGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldElementSignature, v))
}

// ElementSignatureGTE applies the GTE predicate on the "element_signature" field.
func ElementSignatureGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldElementSignature, v))
}

// ElementSignatureLT applies the LT predicate on the "element_signature" field.
func ElementSignatureLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldElementSignature, v))
}

// ElementSignatureLTE applies the LTE predicate on the "element_signature" field.
func ElementSignatureLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldElementSignature, v))
}

// ElementSignatureContains applies the Contains predicate on the "element_signature" field.
func ElementSignatureContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldElementSignature, v))
}

// ElementSignatureHasPrefix applies the HasPrefix predicate on the "element_signature" field.
func ElementSignatureHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldElementSignature, v))
}

// ElementSignatureHasSuffix applies the HasSuffix predicate on the "element_signature" field.
func ElementSignatureHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldElementSignature, v))
}

// ElementSignatureIsNil applies the IsNil predicate on the "element_signature" field.
func ElementSignatureIsNil() predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIsNull(FieldElementSignature))
}

// ElementSignatureNotNil applies the NotNil predicate on the "element_signature" field.
func ElementSignatureNotNil() predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotNull(FieldElementSignature))
}

// ElementSignatureEqualFold applies the EqualFold predicate on the "element_signature" field.
func ElementSignatureEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldElementSignature, v))
}

// ElementSignatureContainsFold applies the ContainsFold predicate on the "element_signature" field.
func ElementSignatureContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldElementSignature, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldSequenceNumber, v))
}

// DeviceFingerprintEQ applies the EQ predicate on the "device_fingerprint" field.
func DeviceFingerprintEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldDeviceFingerprint, v))
}

// DeviceFingerprintNEQ applies the NEQ predicate on the "device_fingerprint" field.
func DeviceFingerprintNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldDeviceFingerprint, v))
}

// DeviceFingerprintIn applies the In predicate on the "device_fingerprint" field.
func DeviceFingerprintIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldDeviceFingerprint, vs...))
}

// DeviceFingerprintNotIn applies the NotIn predicate on the "device_fingerprint" field.
func DeviceFingerprintNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldDeviceFingerprint, vs...))
}

// DeviceFingerprintGT applies the GT predicate on the "device_fingerprint" field.
func DeviceFingerprintGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldDeviceFingerprint, v))
}

// DeviceFingerprintGTE applies the GTE predicate on the "device_fingerprint" field.
func DeviceFingerprintGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldDeviceFingerprint, v))
}

// DeviceFingerprintLT applies the LT predicate on the "device_fingerprint" field.
func DeviceFingerprintLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldDeviceFingerprint, v))
}

// DeviceFingerprintLTE applies the LTE predicate on the "device_fingerprint" field.
func DeviceFingerprintLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldDeviceFingerprint, v))
}

// DeviceFingerprintContains applies the Contains predicate on the "device_fingerprint" field.
func DeviceFingerprintContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldDeviceFingerprint, v))
}

// DeviceFingerprintHasPrefix applies the HasPrefix predicate on the "device_fingerprint" field.
func DeviceFingerprintHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldDeviceFingerprint, v))
}

// DeviceFingerprintHasSuffix applies the HasSuffix predicate on the "device_fingerprint" field.
func DeviceFingerprintHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldDeviceFingerprint, v))
}

// DeviceFingerprintEqualFold applies the EqualFold predicate on the "device_fingerprint" field.
func DeviceFingerprintEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldDeviceFingerprint, v))
}

// DeviceFingerprintContainsFold applies the ContainsFold predicate on the "device_fingerprint" field.
func DeviceFingerprintContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldDeviceFingerprint, v))
}

// BatchIDEQ applies the EQ predicate on the "batch_id" field.
func BatchIDEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldBatchID, v))
}

// BatchIDNEQ applies the NEQ predicate on the "batch_id" field.
func BatchIDNEQ(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldBatchID, v))
}

// BatchIDIn applies the In predicate on the "batch_id" field.
func BatchIDIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldBatchID, vs...))
}

// BatchIDNotIn applies the NotIn predicate on the "batch_id" field.
func BatchIDNotIn(vs ...string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldBatchID, vs...))
}

// BatchIDGT applies the GT predicate on the "batch_id" field.
func BatchIDGT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldBatchID, v))
}

// BatchIDGTE applies the GTE predicate on the "batch_id" field.
func BatchIDGTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldBatchID, v))
}

// BatchIDLT applies the LT predicate on the "batch_id" field.
func BatchIDLT(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldBatchID, v))
}

// BatchIDLTE applies the LTE predicate on the "batch_id" field.
func BatchIDLTE(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldBatchID, v))
}

// BatchIDContains applies the Contains predicate on the "batch_id" field.
func BatchIDContains(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContains(FieldBatchID, v))
}

// BatchIDHasPrefix applies the HasPrefix predicate on the "batch_id" field.
func BatchIDHasPrefix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasPrefix(FieldBatchID, v))
}

// BatchIDHasSuffix applies the HasSuffix predicate on the "batch_id" field.
func BatchIDHasSuffix(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldHasSuffix(FieldBatchID, v))
}

// BatchIDEqualFold applies the EqualFold predicate on the "batch_id" field.
func BatchIDEqualFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEqualFold(FieldBatchID, v))
}

// BatchIDContainsFold applies the ContainsFold predicate on the "batch_id" field.
func BatchIDContainsFold(v string) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldContainsFold(FieldBatchID, v))
}

// IngestedAtEQ applies the EQ predicate on the "ingested_at" field.
func IngestedAtEQ(v time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldEQ(FieldIngestedAt, v))
}

// IngestedAtNEQ applies the NEQ predicate on the "ingested_at" field.
func IngestedAtNEQ(v time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNEQ(FieldIngestedAt, v))
}

// IngestedAtIn applies the In predicate on the "ingested_at" field.
func IngestedAtIn(vs ...time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldIn(FieldIngestedAt, vs...))
}

// IngestedAtNotIn applies the NotIn predicate on the "ingested_at" field.
func IngestedAtNotIn(vs ...time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldNotIn(FieldIngestedAt, vs...))
}

// IngestedAtGT applies the GT predicate on the "ingested_at" field.
func IngestedAtGT(v time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGT(FieldIngestedAt, v))
}

// IngestedAtGTE applies the GTE predicate on the "ingested_at" field.
func IngestedAtGTE(v time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldGTE(FieldIngestedAt, v))
}

// IngestedAtLT applies the LT predicate on the "ingested_at" field.
func IngestedAtLT(v time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLT(FieldIngestedAt, v))
}

// IngestedAtLTE applies the LTE predicate on the "ingested_at" field.
func IngestedAtLTE(v time.Time) predicate.SecureEvent {
	return predicate.SecureEvent(sql.FieldLTE(FieldIngestedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SecureEvent) predicate.SecureEvent {
	return predicate.SecureEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SecureEvent) predicate.SecureEvent {
	return predicate.SecureEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SecureEvent) predicate.SecureEvent {
	return predicate.SecureEvent(sql.NotPredicates(p))
}
