package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AppConfig struct {
	Name             string
	Env              string
	Port             string
	BaseURL          string
	ReminderInterval time.Duration
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		interval := time.Minute
		if raw := os.Getenv("REMINDER_INTERVAL"); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				log.Printf("Warning: invalid REMINDER_INTERVAL %q, defaulting to %s", raw, interval)
			} else {
				interval = parsed
			}
		}
		appConfig = &AppConfig{
			Name:             os.Getenv("APP_NAME"),
			Env:              env,
			Port:             os.Getenv("APP_PORT"),
			BaseURL:          os.Getenv("APP_URL"),
			ReminderInterval: interval,
		}
	})
	return appConfig
}
