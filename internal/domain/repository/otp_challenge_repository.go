package repository

import (
	"context"

	"authcore/internal/domain/entity"
	"authcore/internal/errors"
)

// ErrOtpChallengeNotFound is returned when no challenge exists for an (email, purpose) pair.
var ErrOtpChallengeNotFound = errors.New("otp challenge not found")

// OtpChallengeRepository stores at most one challenge per (email, purpose).
// Implementations may expire records natively; callers still check ExpiresAt on every read.
type OtpChallengeRepository interface {
	// Create persists a new challenge. A live challenge for the same key is a Conflict.
	Create(ctx context.Context, challenge *entity.OtpChallenge) error

	// FindByEmailAndPurpose retrieves the challenge for the key, including staged signup data.
	FindByEmailAndPurpose(ctx context.Context, email string, purpose entity.OtpPurpose) (*entity.OtpChallenge, error)

	// Update replaces code hash, attempts, staged data and timestamps of an existing challenge.
	Update(ctx context.Context, challenge *entity.OtpChallenge) error

	// IncrementAttempts bumps the attempt counter and returns the new value.
	IncrementAttempts(ctx context.Context, email string, purpose entity.OtpPurpose) (int, error)

	// Delete removes the challenge for the key. Deleting a missing challenge is not an error.
	Delete(ctx context.Context, email string, purpose entity.OtpPurpose) error
}
