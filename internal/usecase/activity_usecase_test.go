package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/mailer"
	"github.com/opphub/opphub/internal/model"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type activityFixture struct {
	opportunities *mockOpportunityStore
	applications  *mockApplicationStore
	bookmarks     *mockBookmarkStore
	notifications *mockNotificationStore
	users         *mockUserStore
	mail          *mockMailService
	uc            *ActivityUsecase
}

func newActivityFixture() *activityFixture {
	f := &activityFixture{
		opportunities: &mockOpportunityStore{},
		applications:  &mockApplicationStore{},
		bookmarks:     &mockBookmarkStore{},
		notifications: &mockNotificationStore{},
		users:         &mockUserStore{},
		mail:          &mockMailService{},
	}
	f.uc = NewActivityUsecase(f.opportunities, f.applications, f.bookmarks, f.notifications, f.users, f.mail)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func sampleOpportunity(deadline time.Time) *model.Opportunity {
	return &model.Opportunity{
		ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Title:    "Smart India Hackathon",
		Category: model.CategoryHackathon,
		Source:   model.SourceUnstop,
		Deadline: deadline,
		ApplyURL: "https://unstop.com/sih",
	}
}

func TestApplyCreatesApplicationAndSchedulesReminder(t *testing.T) {
	f := newActivityFixture()
	opp := sampleOpportunity(fixedNow.Add(48 * time.Hour))

	f.opportunities.On("FindByID", opp.ID).Return(opp, nil)
	f.applications.On("FindByUserAndOpportunity", "user-1", opp.ID).Return(nil, nil)
	f.applications.On("Create", mock.AnythingOfType("*model.Application")).Return(nil)
	f.notifications.On("Create", mock.AnythingOfType("*model.Notification")).Return(nil)

	result, err := f.uc.Apply("user-1", opp.ID)

	require.NoError(t, err)
	assert.False(t, result.AlreadyApplied)
	assert.Equal(t, "https://unstop.com/sih", result.ApplyURL)
	assert.Equal(t, model.StatusApplied, result.Application.Status)
	assert.Equal(t, opp.Title, result.Application.OpportunityTitle)
	assert.Equal(t, opp.Source, result.Application.OpportunitySource)

	f.notifications.AssertCalled(t, "Create", mock.MatchedBy(func(n *model.Notification) bool {
		return n.Type == model.NotificationDeadlineReminder &&
			n.ScheduledFor != nil &&
			n.ScheduledFor.Equal(opp.Deadline.Add(-24*time.Hour))
	}))
}

func TestApplyIsIdempotent(t *testing.T) {
	f := newActivityFixture()
	opp := sampleOpportunity(fixedNow.Add(48 * time.Hour))
	existing := &model.Application{ID: uuid.New(), UserID: "user-1", OpportunityID: opp.ID, Status: model.StatusShortlisted}

	f.opportunities.On("FindByID", opp.ID).Return(opp, nil)
	f.applications.On("FindByUserAndOpportunity", "user-1", opp.ID).Return(existing, nil)

	result, err := f.uc.Apply("user-1", opp.ID)

	require.NoError(t, err)
	assert.True(t, result.AlreadyApplied)
	assert.Equal(t, existing.ID, result.Application.ID)
	f.applications.AssertNotCalled(t, "Create", mock.Anything)
	f.notifications.AssertNotCalled(t, "Create", mock.Anything)
}

func TestApplySkipsReminderWithin24h(t *testing.T) {
	f := newActivityFixture()
	opp := sampleOpportunity(fixedNow.Add(12 * time.Hour))

	f.opportunities.On("FindByID", opp.ID).Return(opp, nil)
	f.applications.On("FindByUserAndOpportunity", "user-1", opp.ID).Return(nil, nil)
	f.applications.On("Create", mock.AnythingOfType("*model.Application")).Return(nil)

	result, err := f.uc.Apply("user-1", opp.ID)

	require.NoError(t, err)
	assert.False(t, result.AlreadyApplied)
	f.notifications.AssertNotCalled(t, "Create", mock.Anything)
}

func TestApplyReminderFailureDoesNotFailApply(t *testing.T) {
	f := newActivityFixture()
	opp := sampleOpportunity(fixedNow.Add(48 * time.Hour))

	f.opportunities.On("FindByID", opp.ID).Return(opp, nil)
	f.applications.On("FindByUserAndOpportunity", "user-1", opp.ID).Return(nil, nil)
	f.applications.On("Create", mock.AnythingOfType("*model.Application")).Return(nil)
	f.notifications.On("Create", mock.AnythingOfType("*model.Notification")).Return(errors.New("store down"))

	result, err := f.uc.Apply("user-1", opp.ID)

	require.NoError(t, err)
	assert.NotNil(t, result.Application)
}

func TestToggleBookmarkTwiceRestoresState(t *testing.T) {
	f := newActivityFixture()
	opp := sampleOpportunity(fixedNow.Add(48 * time.Hour))
	created := &model.Bookmark{ID: uuid.New(), UserID: "user-1", OpportunityID: opp.ID}

	f.bookmarks.On("FindByUserAndOpportunity", "user-1", opp.ID).Return(nil, nil).Once()
	f.opportunities.On("FindByID", opp.ID).Return(opp, nil).Once()
	f.bookmarks.On("Create", mock.AnythingOfType("*model.Bookmark")).Return(nil).Once()

	bookmarked, err := f.uc.ToggleBookmark("user-1", opp.ID)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	f.bookmarks.On("FindByUserAndOpportunity", "user-1", opp.ID).Return(created, nil).Once()
	f.bookmarks.On("Delete", created.ID).Return(nil).Once()

	bookmarked, err = f.uc.ToggleBookmark("user-1", opp.ID)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	f.bookmarks.AssertExpectations(t)
}

func TestToggleBookmarkSnapshotsOpportunity(t *testing.T) {
	f := newActivityFixture()
	opp := sampleOpportunity(fixedNow.Add(48 * time.Hour))

	f.bookmarks.On("FindByUserAndOpportunity", "user-1", opp.ID).Return(nil, nil)
	f.opportunities.On("FindByID", opp.ID).Return(opp, nil)
	f.bookmarks.On("Create", mock.MatchedBy(func(b *model.Bookmark) bool {
		return b.OpportunityTitle == opp.Title &&
			b.OpportunityCategory == opp.Category &&
			b.OpportunityDeadline != nil &&
			b.OpportunityDeadline.Equal(opp.Deadline)
	})).Return(nil)

	_, err := f.uc.ToggleBookmark("user-1", opp.ID)
	require.NoError(t, err)
	f.bookmarks.AssertExpectations(t)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newActivityFixture()

	_, err := f.uc.UpdateStatus("user-1", uuid.New(), "archived", "")

	var unknownStatus *mailer.UnknownStatusError
	require.ErrorAs(t, err, &unknownStatus)
	assert.Equal(t, "archived", unknownStatus.Status)
	f.applications.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestUpdateStatusMailFailureIsNonFatal(t *testing.T) {
	f := newActivityFixture()
	appID := uuid.New()
	app := &model.Application{ID: appID, UserID: "user-1", OpportunityTitle: "ML Challenge", Status: model.StatusApplied}
	user := &model.User{UserID: "user-1", Email: "a@example.com", DisplayName: "Aisha", Preferences: model.DefaultPreferences}

	f.applications.On("FindByID", appID).Return(app, nil)
	f.applications.On("Update", mock.AnythingOfType("*model.Application")).Return(nil)
	f.users.On("FindByUserID", "user-1").Return(user, nil)
	f.mail.On("Send", mock.Anything, "a@example.com", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("mail transport down"))

	updated, err := f.uc.UpdateStatus("user-1", appID, model.StatusShortlisted, "good news")

	require.NoError(t, err)
	assert.Equal(t, model.StatusShortlisted, updated.Status)
	assert.Equal(t, "good news", updated.Notes)
	f.mail.AssertExpectations(t)
}

func TestUpdateStatusSkipsMailWhenOptedOut(t *testing.T) {
	f := newActivityFixture()
	appID := uuid.New()
	app := &model.Application{ID: appID, UserID: "user-1", Status: model.StatusApplied}
	user := &model.User{UserID: "user-1", Email: "a@example.com", Preferences: `{"emailNotifications":false}`}

	f.applications.On("FindByID", appID).Return(app, nil)
	f.applications.On("Update", mock.AnythingOfType("*model.Application")).Return(nil)
	f.users.On("FindByUserID", "user-1").Return(user, nil)

	_, err := f.uc.UpdateStatus("user-1", appID, model.StatusAccepted, "")

	require.NoError(t, err)
	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusOtherUsersApplication(t *testing.T) {
	f := newActivityFixture()
	appID := uuid.New()
	app := &model.Application{ID: appID, UserID: "someone-else", Status: model.StatusApplied}

	f.applications.On("FindByID", appID).Return(app, nil)

	_, err := f.uc.UpdateStatus("user-1", appID, model.StatusAccepted, "")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	f.applications.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDashboardAggregates(t *testing.T) {
	f := newActivityFixture()
	apps := []model.Application{
		{Status: model.StatusAccepted},
		{Status: model.StatusRejected},
	}
	bookmarks := []model.Bookmark{{}}

	f.applications.On("ListByUser", "user-1").Return(apps, nil)
	f.bookmarks.On("ListByUser", "user-1").Return(bookmarks, nil)

	data, err := f.uc.Dashboard("user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, data.Stats.Total)
	assert.Equal(t, 50.0, data.Stats.SuccessRate)
	assert.Equal(t, 1, data.Stats.BookmarkCount)
	assert.Equal(t, apps, data.Applications)
	assert.Equal(t, bookmarks, data.Bookmarks)
}
