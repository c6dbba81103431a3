package service

import (
	"context"
	"time"
)

// ExternalProfile is a profile already verified by an external identity provider.
type ExternalProfile struct {
	Provider    string
	ExternalID  string
	Email       string
	DisplayName string
	AvatarURL   string
}

// IdentityProvider wraps an external sign-in provider behind synchronous calls.
type IdentityProvider interface {
	// Name returns the provider identifier, e.g. "google".
	Name() string

	// AuthorizationURL returns the consent URL and the CSRF state bound to it.
	AuthorizationURL(ctx context.Context) (url string, state string, err error)

	// ValidateState consumes a state previously handed out by AuthorizationURL.
	ValidateState(ctx context.Context, state string) (bool, error)

	// ExchangeAuthCode trades an authorization code for a verified profile.
	ExchangeAuthCode(ctx context.Context, code string) (*ExternalProfile, error)

	// VerifyIDToken verifies an ID token obtained by a native client.
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalProfile, error)
}

// OAuthStateStore remembers CSRF states between the authorization redirect and the callback.
// It must be shared by every API instance when more than one serves the callback.
type OAuthStateStore interface {
	// Save remembers state for ttl.
	Save(ctx context.Context, state string, ttl time.Duration) error

	// Consume reports whether state is known and unexpired, and forgets it either way.
	Consume(ctx context.Context, state string) (bool, error)
}
