package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusApplied     = "applied"
	StatusShortlisted = "shortlisted"
	StatusAccepted    = "accepted"
	StatusRejected    = "rejected"
)

// Statuses lists every recognized application status.
var Statuses = []string{StatusApplied, StatusShortlisted, StatusAccepted, StatusRejected}

// ValidStatus reports whether s is one of the four recognized statuses.
func ValidStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Application tracks one user's apply action. Title, source and deadline are
// snapshots taken at apply time and are not re-synced if the opportunity
// changes later.
type Application struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID            string     `gorm:"type:varchar(255);index" json:"user_id"`
	OpportunityID     uuid.UUID  `gorm:"type:uuid;index" json:"opportunity_id"`
	OpportunityTitle  string     `gorm:"type:varchar(255)" json:"opportunity_title"`
	OpportunitySource string     `gorm:"type:varchar(50)" json:"opportunity_source"`
	Status            string     `gorm:"type:varchar(50)" json:"status"` // applied|shortlisted|accepted|rejected
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	AppliedAt         time.Time  `json:"applied_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
