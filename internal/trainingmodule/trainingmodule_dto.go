package trainingmodule

import "time"

const dateLayout = "2006-01-02"

type CreateModuleRequest struct {
	Title             string  `json:"title" binding:"required,max=200"`
	Description       *string `json:"description"`
	IsActive          *bool   `json:"is_active"`
	DueDate           *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	EstimatedDuration *int    `json:"estimated_duration" binding:"omitempty,min=0"`
	AssignToAll       bool    `json:"assign_to_all"`
}

// UpdateModuleRequest is partial. An empty due_date clears it.
type UpdateModuleRequest struct {
	Title             *string `json:"title" binding:"omitempty,max=200"`
	Description       *string `json:"description"`
	IsActive          *bool   `json:"is_active"`
	DueDate           *string `json:"due_date"`
	EstimatedDuration *int    `json:"estimated_duration" binding:"omitempty,min=0"`
}

type ListFilter struct {
	Query  string
	Status string
}

const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type OptionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ModuleResponse struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	IsActive          bool      `json:"is_active"`
	DueDate           string    `json:"due_date,omitempty"`
	EstimatedDuration *int      `json:"estimated_duration,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type AddMaterialRequest struct {
	FileName string       `json:"file_name" binding:"required,max=255"`
	FileURL  string       `json:"file_url" binding:"required,url"`
	FileSize *int64       `json:"file_size" binding:"omitempty,min=0"`
	Type     MaterialType `json:"type" binding:"required,oneof=pdf video image document"`
}

type MaterialResponse struct {
	ID         string       `json:"id"`
	ModuleID   string       `json:"module_id"`
	FileName   string       `json:"file_name"`
	FileURL    string       `json:"file_url"`
	FileSize   *int64       `json:"file_size,omitempty"`
	Type       MaterialType `json:"type"`
	UploadedAt time.Time    `json:"uploaded_at"`
}
