package progress

import "time"

// FetchFilter narrows a scope's rows. Zero value means the whole scope.
type FetchFilter struct {
	ModuleID   string
	EmployeeID string
	ActiveOnly bool
}

func (f FetchFilter) IsZero() bool {
	return f.ModuleID == "" && f.EmployeeID == "" && !f.ActiveOnly
}

type ProgressRow struct {
	ID                 string     `json:"id"`
	EmployeeID         string     `json:"employee_id"`
	ModuleID           string     `json:"module_id"`
	EmployeeName       string     `json:"employee_name"`
	ModuleTitle        string     `json:"module_title"`
	ModuleActive       bool       `json:"module_active"`
	Status             Status     `json:"status"`
	ProgressPercentage int        `json:"progress_percentage"`
	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// FetchMeta tells the caller whether rows came from the store or from the
// last-known-good snapshot after a failed read.
type FetchMeta struct {
	Stale     bool      `json:"stale"`
	Warning   string    `json:"warning,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

type FetchResult struct {
	Rows []ProgressRow `json:"rows"`
	FetchMeta
}

type UpdateProgressRequest struct {
	Status             Status `json:"status" binding:"required,oneof=not_started in_progress completed"`
	ProgressPercentage *int   `json:"progress_percentage" binding:"omitempty,min=0,max=100"`
}

type ReopenRequest struct {
	ProgressPercentage *int `json:"progress_percentage" binding:"omitempty,min=0,max=100"`
}

type MutationResponse struct {
	Row  ProgressRow   `json:"row"`
	Rows []ProgressRow `json:"rows"`
	FetchMeta
}

type AssignRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
	All         bool     `json:"all"`
}

type AssignmentResult struct {
	Requested       int `json:"requested"`
	Created         int `json:"created"`
	AlreadyAssigned int `json:"already_assigned"`
}

type AssignmentResponse struct {
	AssignmentResult
	Rows []ProgressRow `json:"rows"`
	FetchMeta
}

type Dashboard struct {
	Rows           []ProgressRow   `json:"rows"`
	Overview       CompanyOverview `json:"overview"`
	Modules        []ModuleStats   `json:"modules"`
	Employees      []EmployeeStats `json:"employees,omitempty"`
	TotalEmployees *int64          `json:"total_employees,omitempty"`
	ActiveModules  *int64          `json:"active_modules,omitempty"`
	FetchMeta
}

type ModuleStatsResponse struct {
	ModuleStats
	FetchMeta
}

type EmployeeStatsResponse struct {
	EmployeeStats
	FetchMeta
}
