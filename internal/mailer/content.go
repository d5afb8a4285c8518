// Package mailer builds the subject and body content of outbound emails. It
// performs no I/O; delivery belongs to the mail transport service.
package mailer

import (
	"fmt"
	"time"

	"github.com/opphub/opphub/internal/model"
)

// Content is an inert, ready-to-send email payload.
type Content struct {
	Subject string
	HTML    string
	Text    string
}

// UnknownStatusError is returned when status-update content is requested for
// a status outside the four recognized values.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown application status %q", e.Status)
}

var statusEmoji = map[string]string{
	model.StatusApplied:     "📝",
	model.StatusShortlisted: "🎯",
	model.StatusAccepted:    "🎉",
	model.StatusRejected:    "😔",
}

var statusColor = map[string]string{
	model.StatusApplied:     "#3b82f6",
	model.StatusShortlisted: "#f59e0b",
	model.StatusAccepted:    "#10b981",
	model.StatusRejected:    "#ef4444",
}

const deadlineLayout = "Monday, January 2, 2006"

// BuildDeadlineReminder renders the reminder sent the day before an
// application deadline.
func BuildDeadlineReminder(userName, opportunityTitle string, deadline time.Time, applyURL string) Content {
	formatted := deadline.Format(deadlineLayout)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #6366F1 0%%, #F59E0B 100%%); padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0;">⏰ Deadline Reminder</h1>
  </div>
  <div style="background: #ffffff; padding: 30px;">
    <h2 style="color: #1f2937; margin-top: 0;">Hi %s!</h2>
    <p style="color: #4b5563;">This is a friendly reminder that the application deadline for <strong>"%s"</strong> is approaching soon.</p>
    <div style="background: #fef3c7; border-left: 4px solid #f59e0b; padding: 16px; margin: 20px 0;">
      <p style="margin: 0; color: #92400e; font-weight: 600;">📅 Deadline: %s</p>
    </div>
    <p style="color: #4b5563;">Don't miss out on this opportunity! Make sure to submit your application before the deadline.</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="background: #6366F1; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; font-weight: 600;">Apply Now →</a>
    </div>
    <p style="color: #6b7280; font-size: 14px; text-align: center;">This reminder was sent by <strong>OppHub</strong> - Your unified opportunity aggregator</p>
  </div>
</div>`, userName, opportunityTitle, formatted, applyURL)

	text := fmt.Sprintf(`Hi %s!

This is a friendly reminder that the application deadline for "%s" is approaching soon.

Deadline: %s

Don't miss out on this opportunity! Make sure to submit your application before the deadline.

Apply now: %s

---
This reminder was sent by OppHub - Your unified opportunity aggregator
`, userName, opportunityTitle, formatted, applyURL)

	return Content{
		Subject: fmt.Sprintf("⏰ Deadline Reminder: %s", opportunityTitle),
		HTML:    html,
		Text:    text,
	}
}

// BuildStatusUpdate renders the email sent when an application's status
// changes. An unrecognized newStatus fails loudly rather than emitting blank
// content.
func BuildStatusUpdate(userName, opportunityTitle, oldStatus, newStatus string) (Content, error) {
	emoji, ok := statusEmoji[newStatus]
	if !ok {
		return Content{}, &UnknownStatusError{Status: newStatus}
	}
	color := statusColor[newStatus]

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #6366F1 0%%, #F59E0B 100%%); padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0;">📬 Application Update</h1>
  </div>
  <div style="background: #ffffff; padding: 30px;">
    <h2 style="color: #1f2937; margin-top: 0;">Hi %s!</h2>
    <p style="color: #4b5563;">There's an update on your application for <strong>"%s"</strong>.</p>
    <div style="background: #f3f4f6; padding: 20px; margin: 20px 0; text-align: center;">
      <p style="margin: 0 0 10px 0; color: #6b7280; font-size: 14px;">Status Updated</p>
      <span style="color: #9ca3af; text-decoration: line-through; text-transform: capitalize;">%s</span>
      <span style="color: #6b7280;"> → </span>
      <span style="color: %s; font-weight: 600; text-transform: capitalize;">%s %s</span>
    </div>
    <p style="color: #4b5563;">Keep track of all your applications in your personal dashboard.</p>
    <p style="color: #6b7280; font-size: 14px; text-align: center;">This update was sent by <strong>OppHub</strong> - Your unified opportunity aggregator</p>
  </div>
</div>`, userName, opportunityTitle, oldStatus, color, emoji, newStatus)

	text := fmt.Sprintf(`Hi %s!

There's an update on your application for "%s".

Status Updated: %s → %s

Keep track of all your applications in your personal dashboard.

---
This update was sent by OppHub - Your unified opportunity aggregator
`, userName, opportunityTitle, oldStatus, newStatus)

	return Content{
		Subject: fmt.Sprintf("📬 Application Update: %s", opportunityTitle),
		HTML:    html,
		Text:    text,
	}, nil
}
