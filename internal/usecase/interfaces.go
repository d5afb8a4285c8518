package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/opphub/opphub/internal/model"
)

// Store ports implemented by internal/repository. Usecases depend on these so
// tests can substitute mocks.

type OpportunityStore interface {
	List() ([]model.Opportunity, error)
	FindByID(id uuid.UUID) (*model.Opportunity, error)
	UpsertBatch(opportunities []model.Opportunity) error
}

type ApplicationStore interface {
	ListByUser(userID string) ([]model.Application, error)
	FindByUserAndOpportunity(userID string, opportunityID uuid.UUID) (*model.Application, error)
	FindByID(id uuid.UUID) (*model.Application, error)
	Create(app *model.Application) error
	Update(app *model.Application) error
	Delete(id uuid.UUID, userID string) error
}

type BookmarkStore interface {
	ListByUser(userID string) ([]model.Bookmark, error)
	FindByUserAndOpportunity(userID string, opportunityID uuid.UUID) (*model.Bookmark, error)
	Create(bookmark *model.Bookmark) error
	Delete(id uuid.UUID) error
}

type NotificationStore interface {
	Create(notification *model.Notification) error
	ListDue(now time.Time) ([]model.Notification, error)
	MarkSent(id uuid.UUID, sentAt time.Time) error
}

type UserStore interface {
	FindByUserID(userID string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
}
