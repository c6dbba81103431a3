package repository

import (
	"context"

	"authcore/internal/domain/entity"
	"authcore/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceSessionNotFound is returned when no session matches the lookup key.
var ErrDeviceSessionNotFound = errors.New("device session not found")

// DeviceSessionRepository persists one refresh-token session per (user, device).
type DeviceSessionRepository interface {
	// Create persists a new session. A second live row for (user, device) or a reused token hash is a Conflict.
	Create(ctx context.Context, session *entity.DeviceSession) error

	// FindByUserAndDevice retrieves the session for the pair, expired or not.
	FindByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.DeviceSession, error)

	// ListActiveByUser returns the non-expired sessions of a user, most recently used first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceSession, error)

	// DeleteByUserAndDevice removes the session for the pair and reports how many rows were removed.
	DeleteByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) (int64, error)

	// DeleteByToken removes the pair's session only while it still holds tokenHash. Zero rows
	// means another refresh already rotated the token.
	DeleteByToken(ctx context.Context, userID uuid.UUID, deviceID, tokenHash string) (int64, error)

	// DeleteAllByUser removes every session of a user and reports how many rows were removed.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
