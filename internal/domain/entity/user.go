// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Username length bounds shared by signup validation and generated usernames.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 30
	EmailMaxLength    = 254
)

// User is the identity of record. It is created on successful OTP verification or on the
// first external-provider login and is never deleted by the auth core.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Lowercased, unique login identifier.
	Username     string    // Lowercased, unique handle (3-30 characters).
	FullName     string    // The user's display name.
	PasswordHash *string   // bcrypt hash; nil for accounts created through an external provider.
	ExternalID   *string   // Linked external-provider subject, unique when present.
	AvatarURL    string    // Profile picture URI.
	Verified     bool      // Whether the email address has been proven.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// HasPassword reports whether the account can sign in with a local password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeUsername trims and lowercases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
