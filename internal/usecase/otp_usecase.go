// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"authcore/internal/domain/entity"
)

// IssueOtpInput defines the data required to open a challenge.
type IssueOtpInput struct {
	Email   string
	Purpose entity.OtpPurpose

	// Pending is staged until the code is verified. Required for OtpPurposeSignup.
	Pending *entity.PendingSignup
}

// OtpTicket acknowledges an issued code without revealing it.
type OtpTicket struct {
	Email     string
	Purpose   entity.OtpPurpose
	ExpiresAt time.Time
}

// OtpChallengeUsecase issues, resends and verifies one-time codes per (email, purpose).
type OtpChallengeUsecase interface {
	// Issue opens a challenge and mails the code. A challenge younger than the cooldown fails
	// with a RateLimitError; an older one is replaced.
	Issue(ctx context.Context, input *IssueOtpInput) (*OtpTicket, error)

	// Resend regenerates the code of a pending challenge and resets its attempts.
	Resend(ctx context.Context, email string, purpose entity.OtpPurpose) (*OtpTicket, error)

	// Verify consumes the challenge on success and returns the staged signup data, if any.
	Verify(ctx context.Context, email, code string, purpose entity.OtpPurpose) (*entity.PendingSignup, error)
}
