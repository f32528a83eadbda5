package progress

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// EmployeeProgress is the assignment of one module to one employee.
// (employee_id, module_id) is unique.
type EmployeeProgress struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_employee_progress_employee_module"`
	ModuleID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_employee_progress_employee_module;index"`
	Status             Status     `gorm:"type:varchar(20);not null"`
	ProgressPercentage int        `gorm:"not null"`
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (EmployeeProgress) TableName() string {
	return "employee_progress"
}

// ProgressRecord is a progress row joined with the employee directory and the
// module catalog. Joined columns are nil when the join misses.
type ProgressRecord struct {
	EmployeeProgress
	EmployeeEmail     *string
	EmployeeFirstName *string
	EmployeeLastName  *string
	ModuleTitle       *string
	ModuleCompanyID   *string
	ModuleIsActive    *bool
}
