package service

import (
	"context"

	"authcore/internal/domain/entity"
)

// EmailSender delivers one-time codes out of band. Failures are reported to the caller.
type EmailSender interface {
	SendOtpEmail(ctx context.Context, email, code string, purpose entity.OtpPurpose) error
}
