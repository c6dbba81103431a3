package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID `json:"-"`
	Type     TokenType `json:"type"`
	DeviceID string    `json:"did,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair is the result of a successful sign-in or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService mints and verifies access and refresh tokens.
// Key material is process-wide configuration; implementations hold no per-request state.
type TokenService interface {
	// MintAccessToken creates a short-lived access token for the user on the device.
	MintAccessToken(userID uuid.UUID, deviceID string) (string, error)

	// MintRefreshToken creates a long-lived refresh token for the user on the device.
	MintRefreshToken(userID uuid.UUID, deviceID string) (string, error)

	// MintPair creates both tokens.
	MintPair(userID uuid.UUID, deviceID string) (*TokenPair, error)

	// Verify checks signature, expiry and that the token was minted as expected.
	// A refresh token never verifies as an access token and vice versa.
	Verify(token string, expected TokenType) (*Claims, error)

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}

// TokenHasher derives the deterministic one-way digest stored for refresh tokens.
type TokenHasher interface {
	// Hash returns the digest of the token.
	Hash(token string) string

	// Equal compares a token with a stored digest in constant time.
	Equal(token, digest string) bool
}
