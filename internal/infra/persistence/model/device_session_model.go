package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names for device sessions.
const (
	IdxDeviceSessionsUserDevice = "idx_device_sessions_user_device"
	IdxDeviceSessionsTokenHash  = "idx_device_sessions_token_hash"
)

// DeviceSessionModel mirrors the 'device_sessions' table.
type DeviceSessionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_device_sessions_user_device"`
	DeviceID    string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_device_sessions_user_device"`
	TokenHash   string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_device_sessions_token_hash"`
	DeviceName  string    `gorm:"type:varchar(100)"`
	DeviceClass string    `gorm:"type:varchar(20)"`
	UserAgent   string    `gorm:"type:text"`
	IPAddress   string    `gorm:"type:varchar(45)"`
	LastUsedAt  time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceSessionModel) TableName() string {
	return "device_sessions"
}
