package config

import (
	"os"
	"sync"
)

type MailerConfig struct {
	APIKey        string
	BaseURL       string
	RemindersFrom string
	UpdatesFrom   string
}

var (
	mailerConfig *MailerConfig
	mailerOnce   sync.Once
)

func LoadMailerConfig() *MailerConfig {
	mailerOnce.Do(func() {
		mailerConfig = &MailerConfig{
			APIKey:        os.Getenv("RESEND_API_KEY"),
			BaseURL:       os.Getenv("RESEND_BASE_URL"),
			RemindersFrom: os.Getenv("MAIL_FROM_REMINDERS"),
			UpdatesFrom:   os.Getenv("MAIL_FROM_UPDATES"),
		}
		if mailerConfig.BaseURL == "" {
			mailerConfig.BaseURL = "https://api.resend.com"
		}
		if mailerConfig.RemindersFrom == "" {
			mailerConfig.RemindersFrom = "reminders@opphub.com"
		}
		if mailerConfig.UpdatesFrom == "" {
			mailerConfig.UpdatesFrom = "updates@opphub.com"
		}
	})
	return mailerConfig
}
