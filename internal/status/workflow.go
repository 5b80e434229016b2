package status

// WorkflowStatus is the denormalized workflow progress field on an application.
type WorkflowStatus string

const (
	WorkflowNotStarted WorkflowStatus = "not_started"
	WorkflowInProgress WorkflowStatus = "in_progress"
	WorkflowCompleted  WorkflowStatus = "completed"
	WorkflowCancelled  WorkflowStatus = "cancelled"
)

func (s WorkflowStatus) String() string { return string(s) }

// WorkflowStatusValues returns the enum values for the ent schema.
func WorkflowStatusValues() []string {
	return []string{
		string(WorkflowNotStarted),
		string(WorkflowInProgress),
		string(WorkflowCompleted),
		string(WorkflowCancelled),
	}
}

// InstanceStatus is the state of a running workflow instance.
type InstanceStatus string

const (
	InstanceActive    InstanceStatus = "active"
	InstanceCompleted InstanceStatus = "completed"
	InstanceCancelled InstanceStatus = "cancelled"
)

func (s InstanceStatus) String() string { return string(s) }

// InstanceStatusValues returns the enum values for the ent schema.
func InstanceStatusValues() []string {
	return []string{
		string(InstanceActive),
		string(InstanceCompleted),
		string(InstanceCancelled),
	}
}

// StepPending and StepCompleted are the per-step states inside an instance.
const (
	StepPending   = "pending"
	StepCompleted = "completed"
)
