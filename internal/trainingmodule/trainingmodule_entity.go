package trainingmodule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TrainingModule struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title             string          `gorm:"type:varchar(200);not null"`
	Description       *string
	IsActive          bool            `gorm:"not null"`
	DueDate           *datatypes.Date
	EstimatedDuration *int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (TrainingModule) TableName() string {
	return "training_modules"
}

type MaterialType string

const (
	MaterialPDF      MaterialType = "pdf"
	MaterialVideo    MaterialType = "video"
	MaterialImage    MaterialType = "image"
	MaterialDocument MaterialType = "document"
)

// TrainingMaterial is metadata only; the file lives in external storage.
type TrainingMaterial struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ModuleID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	FileName   string       `gorm:"type:varchar(255);not null"`
	FileURL    string       `gorm:"column:file_url;not null"`
	FileSize   *int64
	Type       MaterialType `gorm:"type:varchar(20);not null"`
	UploadedAt time.Time    `gorm:"autoCreateTime"`
}

func (TrainingMaterial) TableName() string {
	return "training_materials"
}
