// Package dashboard derives a user's view-ready activity state from their
// raw application and bookmark records.
package dashboard

import (
	"github.com/google/uuid"

	"github.com/opphub/opphub/internal/model"
)

type Stats struct {
	Total         int     `json:"total"`
	Applied       int     `json:"applied"`
	Shortlisted   int     `json:"shortlisted"`
	Accepted      int     `json:"accepted"`
	Rejected      int     `json:"rejected"`
	SuccessRate   float64 `json:"success_rate"`
	BookmarkCount int     `json:"bookmark_count"`
}

// Aggregate computes per-user dashboard statistics. SuccessRate is the share
// of applications that reached shortlisted or accepted, 0 when there are none.
func Aggregate(applications []model.Application, bookmarks []model.Bookmark) Stats {
	stats := Stats{
		Total:         len(applications),
		BookmarkCount: len(bookmarks),
	}
	for _, app := range applications {
		switch app.Status {
		case model.StatusApplied:
			stats.Applied++
		case model.StatusShortlisted:
			stats.Shortlisted++
		case model.StatusAccepted:
			stats.Accepted++
		case model.StatusRejected:
			stats.Rejected++
		}
	}
	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Accepted+stats.Shortlisted) / float64(stats.Total) * 100
	}
	return stats
}

// ApplicationFor returns the first application for the opportunity, or nil.
// Duplicates are not expected but first match wins if they occur.
func ApplicationFor(applications []model.Application, opportunityID uuid.UUID) *model.Application {
	for i := range applications {
		if applications[i].OpportunityID == opportunityID {
			return &applications[i]
		}
	}
	return nil
}

func HasApplied(applications []model.Application, opportunityID uuid.UUID) bool {
	return ApplicationFor(applications, opportunityID) != nil
}

func IsBookmarked(bookmarks []model.Bookmark, opportunityID uuid.UUID) bool {
	for _, b := range bookmarks {
		if b.OpportunityID == opportunityID {
			return true
		}
	}
	return false
}
