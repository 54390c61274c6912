// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalRequestsColumns holds the columns for the "approval_requests" table.
	ApprovalRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "ghost_id", Type: field.TypeString},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "requested_by", Type: field.TypeString},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired"}, Default: "pending"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decision_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// ApprovalRequestsTable holds the schema information for the "approval_requests" table.
	ApprovalRequestsTable = &schema.Table{
		Name:       "approval_requests",
		Columns:    ApprovalRequestsColumns,
		PrimaryKey: []*schema.Column{ApprovalRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrequest_ghost_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[1], ApprovalRequestsColumns[6]},
			},
			{
				Name:    "approvalrequest_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[3], ApprovalRequestsColumns[6]},
			},
			{
				Name:    "approvalrequest_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[6], ApprovalRequestsColumns[9]},
			},
		},
	}
	// AutomationPoliciesColumns holds the columns for the "automation_policies" table.
	AutomationPoliciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "condition", Type: field.TypeJSON, Nullable: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"require_approval", "block", "notify", "allow"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AutomationPoliciesTable holds the schema information for the "automation_policies" table.
	AutomationPoliciesTable = &schema.Table{
		Name:       "automation_policies",
		Columns:    AutomationPoliciesColumns,
		PrimaryKey: []*schema.Column{AutomationPoliciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "automationpolicy_org_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{AutomationPoliciesColumns[1], AutomationPoliciesColumns[6]},
			},
		},
	}
	// DetectedPatternsColumns holds the columns for the "detected_patterns" table.
	DetectedPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "intent_sequence", Type: field.TypeJSON},
		{Name: "structural_hashes", Type: field.TypeJSON},
		{Name: "occurrences", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "suggested_name", Type: field.TypeString, Nullable: true},
		{Name: "suggested_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"needs_review", "auto_suggested", "approved", "dismissed"}, Default: "needs_review"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DetectedPatternsTable holds the schema information for the "detected_patterns" table.
	DetectedPatternsTable = &schema.Table{
		Name:       "detected_patterns",
		Columns:    DetectedPatternsColumns,
		PrimaryKey: []*schema.Column{DetectedPatternsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "detectedpattern_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{DetectedPatternsColumns[1], DetectedPatternsColumns[10]},
			},
			{
				Name:    "detectedpattern_org_id_last_seen",
				Unique:  false,
				Columns: []*schema.Column{DetectedPatternsColumns[1], DetectedPatternsColumns[9]},
			},
		},
	}
	// ExecutionsColumns holds the columns for the "executions" table.
	ExecutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "ghost_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed", "cancelled"}, Default: "running"},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "trigger", Type: field.TypeString, Nullable: true},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ExecutionsTable holds the schema information for the "executions" table.
	ExecutionsTable = &schema.Table{
		Name:       "executions",
		Columns:    ExecutionsColumns,
		PrimaryKey: []*schema.Column{ExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "execution_ghost_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[1], ExecutionsColumns[6]},
			},
			{
				Name:    "execution_status",
				Unique:  false,
				Columns: []*schema.Column{ExecutionsColumns[2]},
			},
		},
	}
	// ExecutionLogsColumns holds the columns for the "execution_logs" table.
	ExecutionLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "ghost_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "steps", Type: field.TypeInt},
		{Name: "duration_ms", Type: field.TypeInt},
		{Name: "strategies_used", Type: field.TypeJSON},
		{Name: "logged_at", Type: field.TypeTime},
	}
	// ExecutionLogsTable holds the schema information for the "execution_logs" table.
	ExecutionLogsTable = &schema.Table{
		Name:       "execution_logs",
		Columns:    ExecutionLogsColumns,
		PrimaryKey: []*schema.Column{ExecutionLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executionlog_org_id_logged_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[3], ExecutionLogsColumns[8]},
			},
			{
				Name:    "executionlog_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionLogsColumns[1]},
			},
		},
	}
	// ExecutionStepsColumns holds the columns for the "execution_steps" table.
	ExecutionStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "skipped"}},
		{Name: "strategy", Type: field.TypeString},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExecutionStepsTable holds the schema information for the "execution_steps" table.
	ExecutionStepsTable = &schema.Table{
		Name:       "execution_steps",
		Columns:    ExecutionStepsColumns,
		PrimaryKey: []*schema.Column{ExecutionStepsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "executionstep_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionStepsColumns[1], ExecutionStepsColumns[8]},
			},
		},
	}
	// GhostsColumns holds the columns for the "ghosts" table.
	GhostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_approval", "approved", "active", "paused", "archived"}, Default: "pending_approval"},
		{Name: "trigger", Type: field.TypeJSON, Nullable: true},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "source_pattern_id", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "approved_by", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "usage_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GhostsTable holds the schema information for the "ghosts" table.
	GhostsTable = &schema.Table{
		Name:       "ghosts",
		Columns:    GhostsColumns,
		PrimaryKey: []*schema.Column{GhostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ghost_org_id_status",
				Unique:  false,
				Columns: []*schema.Column{GhostsColumns[1], GhostsColumns[5]},
			},
			{
				Name:    "ghost_org_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{GhostsColumns[1], GhostsColumns[13]},
			},
		},
	}
	// GhostVersionsColumns holds the columns for the "ghost_versions" table.
	GhostVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "ghost_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "execution_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "trigger", Type: field.TypeJSON, Nullable: true},
		{Name: "change_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GhostVersionsTable holds the schema information for the "ghost_versions" table.
	GhostVersionsTable = &schema.Table{
		Name:       "ghost_versions",
		Columns:    GhostVersionsColumns,
		PrimaryKey: []*schema.Column{GhostVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ghostversion_ghost_id_version",
				Unique:  true,
				Columns: []*schema.Column{GhostVersionsColumns[1], GhostVersionsColumns[2]},
			},
		},
	}
	// OrgSettingsColumns holds the columns for the "org_settings" table.
	OrgSettingsColumns = []*schema.Column{
		{Name: "org_id", Type: field.TypeString, Unique: true},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "auto_approve_threshold", Type: field.TypeFloat64, Default: 0.95},
		{Name: "max_executions_per_minute", Type: field.TypeInt, Default: 10},
		{Name: "llm_provider", Type: field.TypeString, Nullable: true},
		{Name: "llm_model", Type: field.TypeString, Nullable: true},
		{Name: "require_approval_above_value", Type: field.TypeFloat64, Nullable: true},
	}
	// OrgSettingsTable holds the schema information for the "org_settings" table.
	OrgSettingsTable = &schema.Table{
		Name:       "org_settings",
		Columns:    OrgSettingsColumns,
		PrimaryKey: []*schema.Column{OrgSettingsColumns[0]},
	}
	// SecureEventsColumns holds the columns for the "secure_events" table.
	SecureEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "session_fingerprint", Type: field.TypeString},
		{Name: "timestamp_bucket", Type: field.TypeString},
		{Name: "intent_vector", Type: field.TypeJSON},
		{Name: "structural_hash", Type: field.TypeString, Nullable: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"dom_mut", "user_int", "network", "error"}},
		{Name: "intent_label", Type: field.TypeString},
		{Name: "intent_confidence", Type: field.TypeFloat64},
		{Name: "element_signature", Type: field.TypeString, Nullable: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "device_fingerprint", Type: field.TypeString},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "ingested_at", Type: field.TypeTime},
	}
	// SecureEventsTable holds the schema information for the "secure_events" table.
	SecureEventsTable = &schema.Table{
		Name:       "secure_events",
		Columns:    SecureEventsColumns,
		PrimaryKey: []*schema.Column{SecureEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "secureevent_org_id_ingested_at",
				Unique:  false,
				Columns: []*schema.Column{SecureEventsColumns[5], SecureEventsColumns[13]},
			},
			{
				Name:    "secureevent_session_fingerprint_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{SecureEventsColumns[1], SecureEventsColumns[10]},
			},
			{
				Name:    "secureevent_batch_id",
				Unique:  false,
				Columns: []*schema.Column{SecureEventsColumns[12]},
			},
		},
	}
	// UserFeedbackColumns holds the columns for the "user_feedback" table.
	UserFeedbackColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "ghost_id", Type: field.TypeString},
		{Name: "org_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "satisfaction_score", Type: field.TypeInt, Nullable: true},
		{Name: "corrected_actions", Type: field.TypeJSON, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UserFeedbackTable holds the schema information for the "user_feedback" table.
	UserFeedbackTable = &schema.Table{
		Name:       "user_feedback",
		Columns:    UserFeedbackColumns,
		PrimaryKey: []*schema.Column{UserFeedbackColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userfeedback_org_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{UserFeedbackColumns[3], UserFeedbackColumns[8]},
			},
			{
				Name:    "userfeedback_execution_id",
				Unique:  false,
				Columns: []*schema.Column{UserFeedbackColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalRequestsTable,
		AutomationPoliciesTable,
		DetectedPatternsTable,
		ExecutionsTable,
		ExecutionLogsTable,
		ExecutionStepsTable,
		GhostsTable,
		GhostVersionsTable,
		OrgSettingsTable,
		SecureEventsTable,
		UserFeedbackTable,
	}
)

func init() {
	OrgSettingsTable.Annotation = &entsql.Annotation{
		Table: "org_settings",
	}
	UserFeedbackTable.Annotation = &entsql.Annotation{
		Table: "user_feedback",
	}
}
