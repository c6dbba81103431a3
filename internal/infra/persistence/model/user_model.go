// Package model holds the GORM persistence models. They are exported so that the GORM Gen
// tool can generate query code for them from another package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names, used to translate violations into domain conflicts.
const (
	IdxUsersEmail      = "idx_users_email"
	IdxUsersUsername   = "idx_users_username"
	IdxUsersExternalID = "idx_users_external_id"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex:idx_users_email"`
	Username     string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_users_username"`
	FullName     string    `gorm:"type:varchar(100)"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	ExternalID   *string   `gorm:"type:varchar(255);uniqueIndex:idx_users_external_id"`
	AvatarURL    string    `gorm:"type:text"`
	Verified     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
