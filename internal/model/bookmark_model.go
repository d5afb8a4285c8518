package model

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a user's saved reference to an opportunity. At most one row per
// (user_id, opportunity_id) pair; the toggle usecase enforces this, the store
// does not.
type Bookmark struct {
	ID                  uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID              string     `gorm:"type:varchar(255);index" json:"user_id"`
	OpportunityID       uuid.UUID  `gorm:"type:uuid;index" json:"opportunity_id"`
	OpportunityTitle    string     `gorm:"type:varchar(255)" json:"opportunity_title"`
	OpportunitySource   string     `gorm:"type:varchar(50)" json:"opportunity_source"`
	OpportunityCategory string     `gorm:"type:varchar(50)" json:"opportunity_category"`
	OpportunityDeadline *time.Time `json:"opportunity_deadline,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func (b *Bookmark) TableName() string {
	return "bookmarks"
}
