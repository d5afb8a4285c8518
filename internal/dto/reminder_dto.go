package dto

import "github.com/opphub/opphub/internal/model"

// DeadlineReminderRequest is the payload of the external reminder trigger.
// All fields are required; presence is validated, format is not (except that
// Deadline must parse as RFC 3339).
type DeadlineReminderRequest struct {
	UserEmail        string `json:"userEmail"`
	UserName         string `json:"userName"`
	OpportunityTitle string `json:"opportunityTitle"`
	Deadline         string `json:"deadline"`
	ApplyURL         string `json:"applyUrl"`
}

// ApplyResultDTO always carries the apply URL so the client can open it even
// when the tracking write failed upstream.
type ApplyResultDTO struct {
	Application    *model.Application `json:"application"`
	ApplyURL       string             `json:"apply_url"`
	AlreadyApplied bool               `json:"already_applied"`
}
