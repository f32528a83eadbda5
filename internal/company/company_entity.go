package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null"`
	Description *string
	Mission     *string
	LogoURL     *string `gorm:"column:logo_url"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Company) TableName() string {
	return "companies"
}
