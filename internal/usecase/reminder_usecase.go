package usecase

import (
	"context"
	"log"
	"time"

	"github.com/tidwall/gjson"

	"github.com/opphub/opphub/internal/config"
	"github.com/opphub/opphub/internal/dto"
	"github.com/opphub/opphub/internal/mailer"
	"github.com/opphub/opphub/internal/service"
	"github.com/opphub/opphub/internal/util"
)

type ReminderUsecase struct {
	notificationRepo NotificationStore
	opportunityRepo  OpportunityStore
	userRepo         UserStore
	mail             service.MailServiceInterface
	remindersFrom    string
	now              func() time.Time
}

func NewReminderUsecase(
	notificationRepo NotificationStore,
	opportunityRepo OpportunityStore,
	userRepo UserStore,
	mail service.MailServiceInterface,
) *ReminderUsecase {
	return &ReminderUsecase{
		notificationRepo: notificationRepo,
		opportunityRepo:  opportunityRepo,
		userRepo:         userRepo,
		mail:             mail,
		remindersFrom:    config.LoadMailerConfig().RemindersFrom,
		now:              time.Now,
	}
}

// SendDeadlineReminder validates and delivers an externally triggered
// reminder. Nothing is built or sent when validation fails.
func (uc *ReminderUsecase) SendDeadlineReminder(ctx context.Context, req dto.DeadlineReminderRequest) error {
	fields := map[string]string{}
	if req.UserEmail == "" {
		fields["userEmail"] = "required"
	}
	if req.UserName == "" {
		fields["userName"] = "required"
	}
	if req.OpportunityTitle == "" {
		fields["opportunityTitle"] = "required"
	}
	if req.Deadline == "" {
		fields["deadline"] = "required"
	}
	if req.ApplyURL == "" {
		fields["applyUrl"] = "required"
	}
	if len(fields) > 0 {
		return util.NewFormError("missing required fields", fields)
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return util.NewFormError("invalid deadline", map[string]string{"deadline": "must be an RFC 3339 timestamp"})
	}

	content := mailer.BuildDeadlineReminder(req.UserName, req.OpportunityTitle, deadline, req.ApplyURL)
	return uc.mail.Send(ctx, req.UserEmail, uc.remindersFrom, content.Subject, content.HTML, content.Text)
}

// DispatchDue sends every due, unsent deadline reminder and marks it sent.
// Per-notification failures are logged and skipped so one bad record cannot
// stall the queue. Returns the number delivered.
func (uc *ReminderUsecase) DispatchDue(ctx context.Context) (int, error) {
	due, err := uc.notificationRepo.ListDue(uc.now())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, notification := range due {
		user, err := uc.userRepo.FindByUserID(notification.UserID)
		if err != nil {
			log.Printf("reminder %s: load user %s: %v", notification.ID, notification.UserID, err)
			continue
		}
		if user == nil {
			log.Printf("reminder %s: no profile for %s, skipping", notification.ID, notification.UserID)
			continue
		}
		if !gjson.Get(user.Preferences, "deadlineReminders").Bool() {
			// Opted out; retire the notification without sending.
			if err := uc.notificationRepo.MarkSent(notification.ID, uc.now()); err != nil {
				log.Printf("reminder %s: mark sent: %v", notification.ID, err)
			}
			continue
		}

		opp, err := uc.opportunityRepo.FindByID(notification.OpportunityID)
		if err != nil {
			log.Printf("reminder %s: load opportunity %s: %v", notification.ID, notification.OpportunityID, err)
			continue
		}

		content := mailer.BuildDeadlineReminder(user.DisplayName, opp.Title, opp.Deadline, opp.ApplyURL)
		if err := uc.mail.Send(ctx, user.Email, uc.remindersFrom, content.Subject, content.HTML, content.Text); err != nil {
			log.Printf("reminder %s: send to %s: %v", notification.ID, user.Email, err)
			continue
		}
		if err := uc.notificationRepo.MarkSent(notification.ID, uc.now()); err != nil {
			log.Printf("reminder %s: mark sent: %v", notification.ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
