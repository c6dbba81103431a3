package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceClass is a coarse classification of the client behind a session.
type DeviceClass string

const (
	DeviceClassMobile    DeviceClass = "mobile"
	DeviceClassDesktop   DeviceClass = "desktop"
	DeviceClassAPIClient DeviceClass = "api-client"
	DeviceClassUnknown   DeviceClass = "unknown"
)

// DeviceContext is what the transport layer knows about the calling device.
type DeviceContext struct {
	DeviceID  string // Explicit client-supplied identifier, may be empty.
	UserAgent string
	IP        string
}

// DeviceInfo is the metadata captured for a session.
type DeviceInfo struct {
	DisplayName string
	Class       DeviceClass
	UserAgent   string
	IP          string
}

// DeviceSession binds one refresh token to one (user, device) pair.
type DeviceSession struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	DeviceID   string
	TokenHash  string // One-way hash of the refresh token.
	Device     DeviceInfo
	LastUsedAt time.Time
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// IsExpired reports whether the session lapsed at or before now.
func (s *DeviceSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
