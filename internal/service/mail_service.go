package service

import (
	"context"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/opphub/opphub/internal/config"
)

// MailServiceInterface is the outbound mail transport. Delivery is
// fire-and-forget from the caller's perspective; callers log failures and
// move on.
type MailServiceInterface interface {
	Send(ctx context.Context, to, from, subject, html, text string) error
}

// ResendService delivers mail through the Resend HTTP API.
type ResendService struct {
	client  *resty.Client
	baseURL string
}

func NewResendService() *ResendService {
	cfg := config.LoadMailerConfig()
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &ResendService{client: client, baseURL: cfg.BaseURL}
}

func (s *ResendService) Send(ctx context.Context, to, from, subject, html, text string) error {
	payload := map[string]any{
		"from":    from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
		"text":    text,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	body := resp.String()
	if resp.IsError() {
		message := gjson.Get(body, "message").String()
		if message == "" {
			message = resp.Status()
		}
		return fmt.Errorf("send email: %s", message)
	}

	log.Printf("email sent id=%s to=%s subject=%q", gjson.Get(body, "id").String(), to, subject)
	return nil
}
