package events

import "time"

const ProgressTopic = "training.progress.v1"

const (
	ProgressUpdated = "progress_updated"
	ModuleAssigned  = "module_assigned"
)

type ProgressUpdatedEvent struct {
	EventType          string    `json:"event_type"`
	EmployeeID         string    `json:"employee_id"`
	ModuleID           string    `json:"module_id"`
	CompanyID          string    `json:"company_id"`
	FromStatus         string    `json:"from_status"`
	ToStatus           string    `json:"to_status"`
	ProgressPercentage int       `json:"progress_percentage"`
	UpdatedBy          string    `json:"updated_by"`
	OccurredAt         time.Time `json:"occurred_at"`
}

type ModuleAssignedEvent struct {
	EventType   string    `json:"event_type"`
	ModuleID    string    `json:"module_id"`
	CompanyID   string    `json:"company_id"`
	EmployeeIDs []string  `json:"employee_ids"`
	Created     int       `json:"created"`
	AssignedBy  string    `json:"assigned_by,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
