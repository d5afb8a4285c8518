package config

import (
	"os"
	"sync"
)

type AuthConfig struct {
	JWTSecret     string
	ReminderToken string // shared secret guarding the external reminder trigger
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		authConfig = &AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			ReminderToken: os.Getenv("REMINDER_TOKEN"),
		}
	})
	return authConfig
}
