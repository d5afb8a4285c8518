package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	CategoryInternship  = "internship"
	CategoryHackathon   = "hackathon"
	CategoryContest     = "contest"
	CategoryScholarship = "scholarship"
)

// Categories lists every known category in display order.
var Categories = []string{CategoryInternship, CategoryHackathon, CategoryContest, CategoryScholarship}

const (
	SourceUnstop      = "unstop"
	SourceDevfolio    = "devfolio"
	SourceHackerearth = "hackerearth"
	SourceOther       = "other"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Opportunity struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255)" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"type:varchar(50);index" json:"category"` // internship|hackathon|contest|scholarship
	Source      string         `gorm:"type:varchar(50)" json:"source"`         // unstop|devfolio|hackerearth|other
	Deadline    time.Time      `json:"deadline"`
	Location    string         `gorm:"type:varchar(255)" json:"location"`
	Eligibility pq.StringArray `gorm:"type:text[]" json:"eligibility"`
	Difficulty  string         `gorm:"type:varchar(50)" json:"difficulty"` // beginner|intermediate|advanced
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	ApplyURL    string         `gorm:"type:text" json:"apply_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (o *Opportunity) TableName() string {
	return "opportunities"
}
