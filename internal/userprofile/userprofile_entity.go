package userprofile

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserProfile mirrors the identity provider's user. The id is the provider's user id.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null"`
	FirstName *string   `gorm:"type:varchar(100)"`
	LastName  *string   `gorm:"type:varchar(100)"`
	Role      string    `gorm:"type:varchar(20);not null"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// DisplayName is "first last" trimmed, or the email when both names are blank.
func DisplayName(firstName, lastName *string, email string) string {
	name := strings.TrimSpace(strings.TrimSpace(deref(firstName)) + " " + strings.TrimSpace(deref(lastName)))
	if name == "" {
		return strings.TrimSpace(email)
	}
	return name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
