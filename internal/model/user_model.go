package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPreferences is the preferences blob given to a profile created on
// first sign-in.
const DefaultPreferences = `{"emailNotifications":true,"deadlineReminders":true,"categories":[],"sources":[],"theme":"system"}`

// User is the profile row backing an identity-provider account. UserID is the
// provider's subject, ID is ours.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(255);uniqueIndex" json:"user_id"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	DisplayName string    `gorm:"type:varchar(255)" json:"display_name"`
	AvatarURL   string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Preferences string    `gorm:"type:jsonb" json:"preferences"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
