package impl

import (
	"io"
	"log/slog"
	"time"

	"authcore/config"
)

var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		OTP: &config.OTPConfig{
			TTL:         10 * time.Minute,
			MaxAttempts: 3,
			Cooldown:    60 * time.Second,
		},
		Session: &config.SessionConfig{
			TTL: 7 * 24 * time.Hour,
		},
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
	}
}
