package events

import "time"

const ModuleLifecycleTopic = "training.module.lifecycle.v1"

const (
	ModuleCreated = "module_created"
	ModuleDeleted = "module_deleted"
)

// ModuleCreatedEvent with AssignToAll asks the consumer to assign the module to
// every employee of the company.
type ModuleCreatedEvent struct {
	EventType   string    `json:"event_type"`
	ModuleID    string    `json:"module_id"`
	CompanyID   string    `json:"company_id"`
	AssignToAll bool      `json:"assign_to_all"`
	CreatedBy   string    `json:"created_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type ModuleDeletedEvent struct {
	EventType  string    `json:"event_type"`
	ModuleID   string    `json:"module_id"`
	CompanyID  string    `json:"company_id"`
	DeletedBy  string    `json:"deleted_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
