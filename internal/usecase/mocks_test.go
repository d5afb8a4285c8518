package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/opphub/opphub/internal/model"
)

type mockOpportunityStore struct{ mock.Mock }

func (m *mockOpportunityStore) List() ([]model.Opportunity, error) {
	args := m.Called()
	return args.Get(0).([]model.Opportunity), args.Error(1)
}

func (m *mockOpportunityStore) FindByID(id uuid.UUID) (*model.Opportunity, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*model.Opportunity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOpportunityStore) UpsertBatch(opportunities []model.Opportunity) error {
	return m.Called(opportunities).Error(0)
}

type mockApplicationStore struct{ mock.Mock }

func (m *mockApplicationStore) ListByUser(userID string) ([]model.Application, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *mockApplicationStore) FindByUserAndOpportunity(userID string, opportunityID uuid.UUID) (*model.Application, error) {
	args := m.Called(userID, opportunityID)
	if v := args.Get(0); v != nil {
		return v.(*model.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockApplicationStore) FindByID(id uuid.UUID) (*model.Application, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*model.Application), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockApplicationStore) Create(app *model.Application) error {
	return m.Called(app).Error(0)
}

func (m *mockApplicationStore) Update(app *model.Application) error {
	return m.Called(app).Error(0)
}

func (m *mockApplicationStore) Delete(id uuid.UUID, userID string) error {
	return m.Called(id, userID).Error(0)
}

type mockBookmarkStore struct{ mock.Mock }

func (m *mockBookmarkStore) ListByUser(userID string) ([]model.Bookmark, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Bookmark), args.Error(1)
}

func (m *mockBookmarkStore) FindByUserAndOpportunity(userID string, opportunityID uuid.UUID) (*model.Bookmark, error) {
	args := m.Called(userID, opportunityID)
	if v := args.Get(0); v != nil {
		return v.(*model.Bookmark), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookmarkStore) Create(bookmark *model.Bookmark) error {
	return m.Called(bookmark).Error(0)
}

func (m *mockBookmarkStore) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) Create(notification *model.Notification) error {
	return m.Called(notification).Error(0)
}

func (m *mockNotificationStore) ListDue(now time.Time) ([]model.Notification, error) {
	args := m.Called(now)
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *mockNotificationStore) MarkSent(id uuid.UUID, sentAt time.Time) error {
	return m.Called(id, sentAt).Error(0)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) FindByUserID(userID string) (*model.User, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserStore) Update(user *model.User) error {
	return m.Called(user).Error(0)
}

type mockMailService struct{ mock.Mock }

func (m *mockMailService) Send(ctx context.Context, to, from, subject, html, text string) error {
	return m.Called(ctx, to, from, subject, html, text).Error(0)
}
