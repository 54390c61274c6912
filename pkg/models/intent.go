package models

// IntentClass is one of the closed set of intent labels produced by the
// intent encoder.
type IntentClass string

// The twelve intent classes.
const (
	IntentDataEntry          IntentClass = "data_entry"
	IntentNavigation         IntentClass = "navigation"
	IntentCommunication      IntentClass = "communication"
	IntentResearch           IntentClass = "research"
	IntentApproval           IntentClass = "approval"
	IntentFileOperation      IntentClass = "file_operation"
	IntentAuthentication     IntentClass = "authentication"
	IntentConfiguration      IntentClass = "configuration"
	IntentDataExtraction     IntentClass = "data_extraction"
	IntentWorkflowTransition IntentClass = "workflow_transition"
	IntentErrorHandling      IntentClass = "error_handling"
	IntentUnknown            IntentClass = "unknown"
)

// AllIntentClasses lists every intent class in declaration order.
var AllIntentClasses = []IntentClass{
	IntentDataEntry,
	IntentNavigation,
	IntentCommunication,
	IntentResearch,
	IntentApproval,
	IntentFileOperation,
	IntentAuthentication,
	IntentConfiguration,
	IntentDataExtraction,
	IntentWorkflowTransition,
	IntentErrorHandling,
	IntentUnknown,
}
