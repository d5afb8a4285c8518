package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/opphub/opphub/internal/catalog"
)

// OpportunityDTO is a catalog entry decorated with request-time deadline
// classification and, for authenticated requests, the caller's own activity
// state.
type OpportunityDTO struct {
	ID                uuid.UUID              `json:"id"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description"`
	Category          string                 `json:"category"`
	Source            string                 `json:"source"`
	Deadline          time.Time              `json:"deadline"`
	DeadlineInfo      catalog.Classification `json:"deadline_info"`
	Urgent            bool                   `json:"urgent"`
	Location          string                 `json:"location"`
	Eligibility       []string               `json:"eligibility"`
	Difficulty        string                 `json:"difficulty"`
	Tags              []string               `json:"tags"`
	ApplyURL          string                 `json:"apply_url"`
	HasApplied        bool                   `json:"has_applied"`
	ApplicationStatus string                 `json:"application_status,omitempty"`
	IsBookmarked      bool                   `json:"is_bookmarked"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}
