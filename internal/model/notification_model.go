package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationDeadlineReminder  = "deadline_reminder"
	NotificationApplicationUpdate = "application_update"
)

type Notification struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        string     `gorm:"type:varchar(255);index" json:"user_id"`
	Type          string     `gorm:"type:varchar(50)" json:"type"` // deadline_reminder|application_update
	Title         string     `gorm:"type:varchar(255)" json:"title"`
	Message       string     `gorm:"type:text" json:"message"`
	OpportunityID uuid.UUID  `gorm:"type:uuid" json:"opportunity_id"`
	IsRead        bool       `json:"is_read"`
	ScheduledFor  *time.Time `gorm:"index" json:"scheduled_for,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (n *Notification) TableName() string {
	return "notifications"
}
