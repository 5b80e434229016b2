// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApplicationColumns holds the columns for the "application" table.
	ApplicationColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"applied", "pending", "shortlisted", "interview", "accepted", "offer_created", "offer_accepted", "onboarded", "rejected", "withdrawn", "did_not_join", "cancelled"}, Default: "applied"},
		{Name: "application_type", Type: field.TypeEnum, Enums: []string{"client_applied", "vendor_applied"}},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "proposed_rate", Type: field.TypeJSON, Nullable: true},
		{Name: "availability", Type: field.TypeJSON, Nullable: true},
		{Name: "workflow_instance_id", Type: field.TypeUUID, Nullable: true},
		{Name: "workflow_status", Type: field.TypeEnum, Enums: []string{"not_started", "in_progress", "completed", "cancelled"}, Default: "not_started"},
		{Name: "current_workflow_step", Type: field.TypeInt, Default: 1},
		{Name: "updated_by", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "requirement_id", Type: field.TypeUUID},
		{Name: "resource_id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeUUID},
	}
	// ApplicationTable holds the schema information for the "application" table.
	ApplicationTable = &schema.Table{
		Name:       "application",
		Columns:    ApplicationColumns,
		PrimaryKey: []*schema.Column{ApplicationColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "application_requirements_applications",
				Columns:    []*schema.Column{ApplicationColumns[13]},
				RefColumns: []*schema.Column{RequirementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "application_resources_applications",
				Columns:    []*schema.Column{ApplicationColumns[14]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "application_users_applicationsCreated",
				Columns:    []*schema.Column{ApplicationColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "application_requirement_id_resource_id",
				Unique:  true,
				Columns: []*schema.Column{ApplicationColumns[13], ApplicationColumns[14]},
			},
			{
				Name:    "application_organization_id_status",
				Unique:  false,
				Columns: []*schema.Column{ApplicationColumns[3], ApplicationColumns[1]},
			},
		},
	}
	// ApplicationHistoryColumns holds the columns for the "application_history" table.
	ApplicationHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "previous_status", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "decision_reason", Type: field.TypeJSON, Nullable: true},
		{Name: "notify_candidate", Type: field.TypeBool, Default: false},
		{Name: "notify_client", Type: field.TypeBool, Default: false},
		{Name: "follow_up", Type: field.TypeJSON, Nullable: true},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ApplicationHistoryTable holds the schema information for the "application_history" table.
	ApplicationHistoryTable = &schema.Table{
		Name:       "application_history",
		Columns:    ApplicationHistoryColumns,
		PrimaryKey: []*schema.Column{ApplicationHistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "applicationhistory_application_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ApplicationHistoryColumns[1], ApplicationHistoryColumns[11]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "related_entity_type", Type: field.TypeString, Nullable: true},
		{Name: "related_entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "action_url", Type: field.TypeString, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "recipient_id", Type: field.TypeUUID},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// RequirementsColumns holds the columns for the "requirements" table.
	RequirementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RequirementsTable holds the schema information for the "requirements" table.
	RequirementsTable = &schema.Table{
		Name:       "requirements",
		Columns:    RequirementsColumns,
		PrimaryKey: []*schema.Column{RequirementsColumns[0]},
	}
	// ResourcesColumns holds the columns for the "resources" table.
	ResourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ResourcesTable holds the schema information for the "resources" table.
	ResourcesTable = &schema.Table{
		Name:       "resources",
		Columns:    ResourcesColumns,
		PrimaryKey: []*schema.Column{ResourcesColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "user_type", Type: field.TypeEnum, Enums: []string{"admin", "client", "vendor"}},
		{Name: "role", Type: field.TypeString, Nullable: true},
		{Name: "organization_id", Type: field.TypeUUID, Nullable: true},
		{Name: "organization_role", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WorkflowInstanceColumns holds the columns for the "workflow_instance" table.
	WorkflowInstanceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeUUID},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "current_step", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "cancelled"}, Default: "active"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "organization_id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "template_id", Type: field.TypeUUID},
	}
	// WorkflowInstanceTable holds the schema information for the "workflow_instance" table.
	WorkflowInstanceTable = &schema.Table{
		Name:       "workflow_instance",
		Columns:    WorkflowInstanceColumns,
		PrimaryKey: []*schema.Column{WorkflowInstanceColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_instance_workflow_template_instances",
				Columns:    []*schema.Column{WorkflowInstanceColumns[9]},
				RefColumns: []*schema.Column{WorkflowTemplateColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// WorkflowTemplateColumns holds the columns for the "workflow_template" table.
	WorkflowTemplateColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "application_types", Type: field.TypeJSON},
		{Name: "steps", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "created_by", Type: field.TypeUUID},
		{Name: "updated_by", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowTemplateTable holds the schema information for the "workflow_template" table.
	WorkflowTemplateTable = &schema.Table{
		Name:       "workflow_template",
		Columns:    WorkflowTemplateColumns,
		PrimaryKey: []*schema.Column{WorkflowTemplateColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApplicationTable,
		ApplicationHistoryTable,
		NotificationsTable,
		RequirementsTable,
		ResourcesTable,
		UsersTable,
		WorkflowInstanceTable,
		WorkflowTemplateTable,
	}
)

func init() {
	ApplicationTable.ForeignKeys[0].RefTable = RequirementsTable
	ApplicationTable.ForeignKeys[1].RefTable = ResourcesTable
	ApplicationTable.ForeignKeys[2].RefTable = UsersTable
	ApplicationTable.Annotation = &entsql.Annotation{
		Table: "application",
	}
	ApplicationHistoryTable.Annotation = &entsql.Annotation{
		Table: "application_history",
	}
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	WorkflowInstanceTable.ForeignKeys[0].RefTable = WorkflowTemplateTable
	WorkflowInstanceTable.Annotation = &entsql.Annotation{
		Table: "workflow_instance",
	}
	WorkflowTemplateTable.Annotation = &entsql.Annotation{
		Table: "workflow_template",
	}
}
