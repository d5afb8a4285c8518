package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/config"
	"github.com/opphub/opphub/internal/dashboard"
	"github.com/opphub/opphub/internal/dto"
	"github.com/opphub/opphub/internal/mailer"
	"github.com/opphub/opphub/internal/model"
	"github.com/opphub/opphub/internal/service"
)

type ActivityUsecase struct {
	opportunityRepo  OpportunityStore
	applicationRepo  ApplicationStore
	bookmarkRepo     BookmarkStore
	notificationRepo NotificationStore
	userRepo         UserStore
	mail             service.MailServiceInterface
	updatesFrom      string
	now              func() time.Time
}

func NewActivityUsecase(
	opportunityRepo OpportunityStore,
	applicationRepo ApplicationStore,
	bookmarkRepo BookmarkStore,
	notificationRepo NotificationStore,
	userRepo UserStore,
	mail service.MailServiceInterface,
) *ActivityUsecase {
	return &ActivityUsecase{
		opportunityRepo:  opportunityRepo,
		applicationRepo:  applicationRepo,
		bookmarkRepo:     bookmarkRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mail:             mail,
		updatesFrom:      config.LoadMailerConfig().UpdatesFrom,
		now:              time.Now,
	}
}

// Apply records the user's application for an opportunity. A second apply for
// the same pair returns the existing record instead of creating a duplicate.
// The apply URL is always returned so the caller can complete the external
// application even when the tracking write fails.
func (uc *ActivityUsecase) Apply(userID string, opportunityID uuid.UUID) (*dto.ApplyResultDTO, error) {
	opp, err := uc.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.applicationRepo.FindByUserAndOpportunity(userID, opportunityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.ApplyResultDTO{Application: existing, ApplyURL: opp.ApplyURL, AlreadyApplied: true}, nil
	}

	now := uc.now()
	deadline := opp.Deadline
	app := &model.Application{
		UserID:            userID,
		OpportunityID:     opp.ID,
		OpportunityTitle:  opp.Title,
		OpportunitySource: opp.Source,
		Status:            model.StatusApplied,
		Deadline:          &deadline,
		AppliedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.applicationRepo.Create(app); err != nil {
		return nil, err
	}

	uc.scheduleReminder(userID, opp, now)

	return &dto.ApplyResultDTO{Application: app, ApplyURL: opp.ApplyURL}, nil
}

// scheduleReminder queues a deadline reminder 24h before the deadline. A
// reminder moment already in the past is silently skipped, and a failed
// notification write never fails the apply.
func (uc *ActivityUsecase) scheduleReminder(userID string, opp *model.Opportunity, now time.Time) {
	reminderAt := opp.Deadline.Add(-24 * time.Hour)
	if !reminderAt.After(now) {
		return
	}
	notification := &model.Notification{
		UserID:        userID,
		Type:          model.NotificationDeadlineReminder,
		Title:         "Application Deadline Reminder",
		Message:       fmt.Sprintf("Your application for %q is due tomorrow!", opp.Title),
		OpportunityID: opp.ID,
		ScheduledFor:  &reminderAt,
		CreatedAt:     now,
	}
	if err := uc.notificationRepo.Create(notification); err != nil {
		log.Printf("schedule reminder for %s failed: %v", opp.ID, err)
	}
}

// ToggleBookmark creates or removes the user's bookmark for the opportunity
// and reports the resulting state. Read-then-write; at most one bookmark per
// pair assuming one action in flight per session.
func (uc *ActivityUsecase) ToggleBookmark(userID string, opportunityID uuid.UUID) (bool, error) {
	existing, err := uc.bookmarkRepo.FindByUserAndOpportunity(userID, opportunityID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := uc.bookmarkRepo.Delete(existing.ID); err != nil {
			return true, err
		}
		return false, nil
	}

	opp, err := uc.opportunityRepo.FindByID(opportunityID)
	if err != nil {
		return false, err
	}
	deadline := opp.Deadline
	bookmark := &model.Bookmark{
		UserID:              userID,
		OpportunityID:       opp.ID,
		OpportunityTitle:    opp.Title,
		OpportunitySource:   opp.Source,
		OpportunityCategory: opp.Category,
		OpportunityDeadline: &deadline,
		CreatedAt:           uc.now(),
	}
	if err := uc.bookmarkRepo.Create(bookmark); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *ActivityUsecase) Dashboard(userID string) (*dto.DashboardDTO, error) {
	applications, err := uc.applicationRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	bookmarks, err := uc.bookmarkRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardDTO{
		Stats:        dashboard.Aggregate(applications, bookmarks),
		Applications: applications,
		Bookmarks:    bookmarks,
	}, nil
}

func (uc *ActivityUsecase) Applications(userID string) ([]model.Application, error) {
	return uc.applicationRepo.ListByUser(userID)
}

func (uc *ActivityUsecase) Bookmarks(userID string) ([]model.Bookmark, error) {
	return uc.bookmarkRepo.ListByUser(userID)
}

// UpdateStatus moves an application to a new status and best-effort notifies
// the user by email. A mail failure is logged; the status update stands.
func (uc *ActivityUsecase) UpdateStatus(userID string, applicationID uuid.UUID, status, notes string) (*model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, &mailer.UnknownStatusError{Status: status}
	}

	app, err := uc.applicationRepo.FindByID(applicationID)
	if err != nil {
		return nil, err
	}
	if app.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}

	oldStatus := app.Status
	app.Status = status
	if notes != "" {
		app.Notes = notes
	}
	app.UpdatedAt = uc.now()
	if err := uc.applicationRepo.Update(app); err != nil {
		return nil, err
	}

	uc.sendStatusUpdate(app, oldStatus)

	return app, nil
}

func (uc *ActivityUsecase) sendStatusUpdate(app *model.Application, oldStatus string) {
	user, err := uc.userRepo.FindByUserID(app.UserID)
	if err != nil || user == nil {
		log.Printf("status update mail skipped, no profile for %s: %v", app.UserID, err)
		return
	}
	if !gjson.Get(user.Preferences, "emailNotifications").Bool() {
		return
	}

	content, err := mailer.BuildStatusUpdate(user.DisplayName, app.OpportunityTitle, oldStatus, app.Status)
	if err != nil {
		log.Printf("status update mail skipped: %v", err)
		return
	}
	if err := uc.mail.Send(context.Background(), user.Email, uc.updatesFrom, content.Subject, content.HTML, content.Text); err != nil {
		log.Printf("status update mail to %s failed: %v", user.Email, err)
	}
}

func (uc *ActivityUsecase) DeleteApplication(userID string, applicationID uuid.UUID) error {
	return uc.applicationRepo.Delete(applicationID, userID)
}
