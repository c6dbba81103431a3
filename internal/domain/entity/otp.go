package entity

import (
	"time"

	"github.com/google/uuid"
)

// OtpPurpose scopes a challenge; at most one live challenge exists per (email, purpose).
type OtpPurpose string

const (
	OtpPurposeSignup        OtpPurpose = "verification"
	OtpPurposeLogin         OtpPurpose = "login"
	OtpPurposePasswordReset OtpPurpose = "password_reset"
)

// IsValid reports whether p is a known purpose.
func (p OtpPurpose) IsValid() bool {
	switch p {
	case OtpPurposeSignup, OtpPurposeLogin, OtpPurposePasswordReset:
		return true
	default:
		return false
	}
}

// PendingSignup is the identity staged by a signup challenge until the code is verified.
// The password is already hashed when staged and is copied verbatim onto the new user.
type PendingSignup struct {
	Username     string
	FullName     string
	PasswordHash string
}

// OtpChallenge is an ephemeral verification ticket. The plaintext code is never stored.
type OtpChallenge struct {
	ID            uuid.UUID
	Email         string
	Purpose       OtpPurpose
	CodeHash      string
	Attempts      int
	PendingSignup *PendingSignup // Present only for OtpPurposeSignup.
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// IsExpired reports whether the challenge lapsed at or before now.
func (c *OtpChallenge) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// IsExhausted reports whether the attempt budget is used up.
func (c *OtpChallenge) IsExhausted(maxAttempts int) bool {
	return c.Attempts >= maxAttempts
}

// CooldownRemaining returns how long until a new code may be issued, or zero.
func (c *OtpChallenge) CooldownRemaining(now time.Time, cooldown time.Duration) time.Duration {
	elapsed := now.Sub(c.CreatedAt)
	if elapsed >= cooldown {
		return 0
	}

	return cooldown - elapsed
}

// TTL returns the remaining lifetime of the challenge.
func (c *OtpChallenge) TTL(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}
