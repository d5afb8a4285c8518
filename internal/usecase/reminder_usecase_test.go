package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/opphub/opphub/internal/dto"
	"github.com/opphub/opphub/internal/model"
	"github.com/opphub/opphub/internal/util"
)

type reminderFixture struct {
	notifications *mockNotificationStore
	opportunities *mockOpportunityStore
	users         *mockUserStore
	mail          *mockMailService
	uc            *ReminderUsecase
}

func newReminderFixture() *reminderFixture {
	f := &reminderFixture{
		notifications: &mockNotificationStore{},
		opportunities: &mockOpportunityStore{},
		users:         &mockUserStore{},
		mail:          &mockMailService{},
	}
	f.uc = NewReminderUsecase(f.notifications, f.opportunities, f.users, f.mail)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func validReminderRequest() dto.DeadlineReminderRequest {
	return dto.DeadlineReminderRequest{
		UserEmail:        "a@example.com",
		UserName:         "Aisha",
		OpportunityTitle: "Smart India Hackathon",
		Deadline:         "2026-03-13T23:59:00Z",
		ApplyURL:         "https://unstop.com/sih",
	}
}

func TestSendDeadlineReminder(t *testing.T) {
	f := newReminderFixture()
	f.mail.On("Send", mock.Anything, "a@example.com", mock.Anything,
		"⏰ Deadline Reminder: Smart India Hackathon", mock.Anything, mock.Anything).Return(nil)

	err := f.uc.SendDeadlineReminder(context.Background(), validReminderRequest())

	require.NoError(t, err)
	f.mail.AssertExpectations(t)
}

func TestSendDeadlineReminderMissingEmail(t *testing.T) {
	f := newReminderFixture()
	req := validReminderRequest()
	req.UserEmail = ""

	err := f.uc.SendDeadlineReminder(context.Background(), req)

	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Errors, "userEmail")
	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendDeadlineReminderUnparsableDeadline(t *testing.T) {
	f := newReminderFixture()
	req := validReminderRequest()
	req.Deadline = "next friday"

	err := f.uc.SendDeadlineReminder(context.Background(), req)

	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Contains(t, formErr.Errors, "deadline")
	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func dueNotification(userID string, oppID uuid.UUID) model.Notification {
	scheduled := fixedNow.Add(-time.Minute)
	return model.Notification{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          model.NotificationDeadlineReminder,
		OpportunityID: oppID,
		ScheduledFor:  &scheduled,
	}
}

func TestDispatchDueSendsAndMarks(t *testing.T) {
	f := newReminderFixture()
	opp := sampleOpportunity(fixedNow.Add(24 * time.Hour))
	notification := dueNotification("user-1", opp.ID)
	user := &model.User{UserID: "user-1", Email: "a@example.com", DisplayName: "Aisha", Preferences: model.DefaultPreferences}

	f.notifications.On("ListDue", fixedNow).Return([]model.Notification{notification}, nil)
	f.users.On("FindByUserID", "user-1").Return(user, nil)
	f.opportunities.On("FindByID", opp.ID).Return(opp, nil)
	f.mail.On("Send", mock.Anything, "a@example.com", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifications.On("MarkSent", notification.ID, fixedNow).Return(nil)

	sent, err := f.uc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	f.notifications.AssertExpectations(t)
}

func TestDispatchDueSkipsOptedOutUsers(t *testing.T) {
	f := newReminderFixture()
	opp := sampleOpportunity(fixedNow.Add(24 * time.Hour))
	notification := dueNotification("user-1", opp.ID)
	user := &model.User{UserID: "user-1", Email: "a@example.com", Preferences: `{"deadlineReminders":false}`}

	f.notifications.On("ListDue", fixedNow).Return([]model.Notification{notification}, nil)
	f.users.On("FindByUserID", "user-1").Return(user, nil)
	f.notifications.On("MarkSent", notification.ID, fixedNow).Return(nil)

	sent, err := f.uc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.notifications.AssertCalled(t, "MarkSent", notification.ID, fixedNow)
}

func TestDispatchDueContinuesPastFailures(t *testing.T) {
	f := newReminderFixture()
	opp := sampleOpportunity(fixedNow.Add(24 * time.Hour))
	first := dueNotification("user-1", opp.ID)
	second := dueNotification("user-2", opp.ID)
	userOne := &model.User{UserID: "user-1", Email: "one@example.com", Preferences: model.DefaultPreferences}
	userTwo := &model.User{UserID: "user-2", Email: "two@example.com", Preferences: model.DefaultPreferences}

	f.notifications.On("ListDue", fixedNow).Return([]model.Notification{first, second}, nil)
	f.users.On("FindByUserID", "user-1").Return(userOne, nil)
	f.users.On("FindByUserID", "user-2").Return(userTwo, nil)
	f.opportunities.On("FindByID", opp.ID).Return(opp, nil)
	f.mail.On("Send", mock.Anything, "one@example.com", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bounce"))
	f.mail.On("Send", mock.Anything, "two@example.com", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	f.notifications.On("MarkSent", second.ID, fixedNow).Return(nil)

	sent, err := f.uc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	f.notifications.AssertNotCalled(t, "MarkSent", first.ID, mock.Anything)
}

func TestDispatchDueNothingDue(t *testing.T) {
	f := newReminderFixture()
	f.notifications.On("ListDue", fixedNow).Return([]model.Notification{}, nil)

	sent, err := f.uc.DispatchDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}
