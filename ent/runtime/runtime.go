// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/ghostworks/ghostd/ent/approvalrequest"
	"github.com/ghostworks/ghostd/ent/automationpolicy"
	"github.com/ghostworks/ghostd/ent/detectedpattern"
	"github.com/ghostworks/ghostd/ent/execution"
	"github.com/ghostworks/ghostd/ent/executionlog"
	"github.com/ghostworks/ghostd/ent/executionstep"
	"github.com/ghostworks/ghostd/ent/ghost"
	"github.com/ghostworks/ghostd/ent/ghostversion"
	"github.com/ghostworks/ghostd/ent/orgsettings"
	"github.com/ghostworks/ghostd/ent/schema"
	"github.com/ghostworks/ghostd/ent/secureevent"
	"github.com/ghostworks/ghostd/ent/userfeedback"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalrequestFields := schema.ApprovalRequest{}.Fields()
	_ = approvalrequestFields
	// approvalrequestDescExpiresAt is the schema descriptor for expires_at field.
	approvalrequestDescExpiresAt := approvalrequestFields[9].Descriptor()
	// approvalrequest.DefaultExpiresAt holds the default value on creation for the expires_at field.
	approvalrequest.DefaultExpiresAt = approvalrequestDescExpiresAt.Default.(func() time.Time)
	// approvalrequestDescCreatedAt is the schema descriptor for created_at field.
	approvalrequestDescCreatedAt := approvalrequestFields[10].Descriptor()
	// approvalrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrequest.DefaultCreatedAt = approvalrequestDescCreatedAt.Default.(func() time.Time)
	automationpolicyFields := schema.AutomationPolicy{}.Fields()
	_ = automationpolicyFields
	// automationpolicyDescIsActive is the schema descriptor for is_active field.
	automationpolicyDescIsActive := automationpolicyFields[6].Descriptor()
	// automationpolicy.DefaultIsActive holds the default value on creation for the is_active field.
	automationpolicy.DefaultIsActive = automationpolicyDescIsActive.Default.(bool)
	detectedpatternFields := schema.DetectedPattern{}.Fields()
	_ = detectedpatternFields
	// detectedpatternDescConfidence is the schema descriptor for confidence field.
	detectedpatternDescConfidence := detectedpatternFields[5].Descriptor()
	// detectedpattern.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	detectedpattern.ConfidenceValidator = func() func(float64) error {
		validators := detectedpatternDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// detectedpatternDescCreatedAt is the schema descriptor for created_at field.
	detectedpatternDescCreatedAt := detectedpatternFields[11].Descriptor()
	// detectedpattern.DefaultCreatedAt holds the default value on creation for the created_at field.
	detectedpattern.DefaultCreatedAt = detectedpatternDescCreatedAt.Default.(func() time.Time)
	// detectedpatternDescUpdatedAt is the schema descriptor for updated_at field.
	detectedpatternDescUpdatedAt := detectedpatternFields[12].Descriptor()
	// detectedpattern.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	detectedpattern.DefaultUpdatedAt = detectedpatternDescUpdatedAt.Default.(func() time.Time)
	// detectedpattern.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	detectedpattern.UpdateDefaultUpdatedAt = detectedpatternDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionFields := schema.Execution{}.Fields()
	_ = executionFields
	// executionDescStepCount is the schema descriptor for step_count field.
	executionDescStepCount := executionFields[5].Descriptor()
	// execution.DefaultStepCount holds the default value on creation for the step_count field.
	execution.DefaultStepCount = executionDescStepCount.Default.(int)
	// executionDescStartedAt is the schema descriptor for started_at field.
	executionDescStartedAt := executionFields[6].Descriptor()
	// execution.DefaultStartedAt holds the default value on creation for the started_at field.
	execution.DefaultStartedAt = executionDescStartedAt.Default.(func() time.Time)
	executionlogHooks := schema.ExecutionLog{}.Hooks()
	executionlog.Hooks[0] = executionlogHooks[0]
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescLoggedAt is the schema descriptor for logged_at field.
	executionlogDescLoggedAt := executionlogFields[8].Descriptor()
	// executionlog.DefaultLoggedAt holds the default value on creation for the logged_at field.
	executionlog.DefaultLoggedAt = executionlogDescLoggedAt.Default.(func() time.Time)
	executionstepFields := schema.ExecutionStep{}.Fields()
	_ = executionstepFields
	// executionstepDescDurationMs is the schema descriptor for duration_ms field.
	executionstepDescDurationMs := executionstepFields[5].Descriptor()
	// executionstep.DefaultDurationMs holds the default value on creation for the duration_ms field.
	executionstep.DefaultDurationMs = executionstepDescDurationMs.Default.(int)
	// executionstepDescCreatedAt is the schema descriptor for created_at field.
	executionstepDescCreatedAt := executionstepFields[8].Descriptor()
	// executionstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionstep.DefaultCreatedAt = executionstepDescCreatedAt.Default.(func() time.Time)
	ghostFields := schema.Ghost{}.Fields()
	_ = ghostFields
	// ghostDescVersion is the schema descriptor for version field.
	ghostDescVersion := ghostFields[4].Descriptor()
	// ghost.DefaultVersion holds the default value on creation for the version field.
	ghost.DefaultVersion = ghostDescVersion.Default.(int)
	// ghost.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	ghost.VersionValidator = ghostDescVersion.Validators[0].(func(int) error)
	// ghostDescIsActive is the schema descriptor for is_active field.
	ghostDescIsActive := ghostFields[13].Descriptor()
	// ghost.DefaultIsActive holds the default value on creation for the is_active field.
	ghost.DefaultIsActive = ghostDescIsActive.Default.(bool)
	// ghostDescCreatedAt is the schema descriptor for created_at field.
	ghostDescCreatedAt := ghostFields[15].Descriptor()
	// ghost.DefaultCreatedAt holds the default value on creation for the created_at field.
	ghost.DefaultCreatedAt = ghostDescCreatedAt.Default.(func() time.Time)
	// ghostDescUpdatedAt is the schema descriptor for updated_at field.
	ghostDescUpdatedAt := ghostFields[16].Descriptor()
	// ghost.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ghost.DefaultUpdatedAt = ghostDescUpdatedAt.Default.(func() time.Time)
	// ghost.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ghost.UpdateDefaultUpdatedAt = ghostDescUpdatedAt.UpdateDefault.(func() time.Time)
	ghostversionFields := schema.GhostVersion{}.Fields()
	_ = ghostversionFields
	// ghostversionDescVersion is the schema descriptor for version field.
	ghostversionDescVersion := ghostversionFields[2].Descriptor()
	// ghostversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	ghostversion.VersionValidator = ghostversionDescVersion.Validators[0].(func(int) error)
	// ghostversionDescCreatedAt is the schema descriptor for created_at field.
	ghostversionDescCreatedAt := ghostversionFields[8].Descriptor()
	// ghostversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	ghostversion.DefaultCreatedAt = ghostversionDescCreatedAt.Default.(func() time.Time)
	orgsettingsFields := schema.OrgSettings{}.Fields()
	_ = orgsettingsFields
	// orgsettingsDescAutoApproveThreshold is the schema descriptor for auto_approve_threshold field.
	orgsettingsDescAutoApproveThreshold := orgsettingsFields[2].Descriptor()
	// orgsettings.DefaultAutoApproveThreshold holds the default value on creation for the auto_approve_threshold field.
	orgsettings.DefaultAutoApproveThreshold = orgsettingsDescAutoApproveThreshold.Default.(float64)
	// orgsettingsDescMaxExecutionsPerMinute is the schema descriptor for max_executions_per_minute field.
	orgsettingsDescMaxExecutionsPerMinute := orgsettingsFields[3].Descriptor()
	// orgsettings.DefaultMaxExecutionsPerMinute holds the default value on creation for the max_executions_per_minute field.
	orgsettings.DefaultMaxExecutionsPerMinute = orgsettingsDescMaxExecutionsPerMinute.Default.(int)
	secureeventFields := schema.SecureEvent{}.Fields()
	_ = secureeventFields
	// secureeventDescIntentConfidence is the schema descriptor for intent_confidence field.
	secureeventDescIntentConfidence := secureeventFields[8].Descriptor()
	// secureevent.IntentConfidenceValidator is a validator for the "intent_confidence" field. It is called by the builders before save.
	secureevent.IntentConfidenceValidator = func() func(float64) error {
		validators := secureeventDescIntentConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(intent_confidence float64) error {
			for _, fn := range fns {
				if err := fn(intent_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// secureeventDescIngestedAt is the schema descriptor for ingested_at field.
	secureeventDescIngestedAt := secureeventFields[13].Descriptor()
	// secureevent.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	secureevent.DefaultIngestedAt = secureeventDescIngestedAt.Default.(func() time.Time)
	userfeedbackHooks := schema.UserFeedback{}.Hooks()
	userfeedback.Hooks[0] = userfeedbackHooks[0]
	userfeedbackFields := schema.UserFeedback{}.Fields()
	_ = userfeedbackFields
	// userfeedbackDescSatisfactionScore is the schema descriptor for satisfaction_score field.
	userfeedbackDescSatisfactionScore := userfeedbackFields[5].Descriptor()
	// userfeedback.SatisfactionScoreValidator is a validator for the "satisfaction_score" field. It is called by the builders before save.
	userfeedback.SatisfactionScoreValidator = func() func(int) error {
		validators := userfeedbackDescSatisfactionScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(satisfaction_score int) error {
			for _, fn := range fns {
				if err := fn(satisfaction_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userfeedbackDescCreatedAt is the schema descriptor for created_at field.
	userfeedbackDescCreatedAt := userfeedbackFields[8].Descriptor()
	// userfeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	userfeedback.DefaultCreatedAt = userfeedbackDescCreatedAt.Default.(func() time.Time)
}

const (
	Version = "v0.14.5"                                         // Version of ent codegen.
	Sum     = "h1:Rj2WOYJtCkWyFo6a+5wB3EfBRP0rnx1fMk6gGA0UUe4=" // Sum of ent codegen.
)
