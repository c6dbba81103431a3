package usecase

import (
	"context"
	"time"

	"authcore/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterSessionInput binds a freshly minted refresh token to a device.
// PreviousRefreshToken is only set by Rotate: the stored session must still hold it.
type RegisterSessionInput struct {
	UserID               uuid.UUID
	DeviceID             string
	RefreshToken         string
	PreviousRefreshToken string
	Device               entity.DeviceContext
}

// SessionView is the listable projection of a device session. It never carries the token hash.
type SessionView struct {
	DeviceID    string
	DisplayName string
	DeviceClass entity.DeviceClass
	LastUsedAt  time.Time
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// SessionUsecase keeps at most one refresh-token session per (user, device).
type SessionUsecase interface {
	// DeviceID resolves the session key for the calling device.
	DeviceID(device entity.DeviceContext) string

	// Register replaces any session for the pair with one bound to the new refresh token.
	Register(ctx context.Context, input *RegisterSessionInput) (*entity.DeviceSession, error)

	// Rotate swaps PreviousRefreshToken for the new token. It fails with ErrRefreshTokenRevoked when
	// a concurrent refresh rotated the previous token first.
	Rotate(ctx context.Context, input *RegisterSessionInput) (*entity.DeviceSession, error)

	// Verify confirms the refresh token is the one on file for the pair and not expired.
	Verify(ctx context.Context, userID uuid.UUID, deviceID, refreshToken string) error

	// Revoke removes the session for the pair. Revoking a missing session succeeds.
	Revoke(ctx context.Context, userID uuid.UUID, deviceID string) error

	// RevokeAll removes every session of the user and reports how many were removed.
	RevokeAll(ctx context.Context, userID uuid.UUID) (int64, error)

	// List returns the live sessions of the user, most recently used first.
	List(ctx context.Context, userID uuid.UUID) ([]*SessionView, error)
}
