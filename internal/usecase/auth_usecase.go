package usecase

import (
	"context"

	"authcore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to start a signup.
type SignupInput struct {
	Email    string
	Username string
	FullName string
	Password string
}

// VerifySignupInput completes a signup with the mailed code.
type VerifySignupInput struct {
	Email  string
	Code   string
	Device entity.DeviceContext
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	Device   entity.DeviceContext
}

// ExternalCallbackInput carries the authorization-code redirect of an external provider.
type ExternalCallbackInput struct {
	Code   string
	State  string
	Device entity.DeviceContext
}

// ExternalTokenInput carries an ID token obtained by a native client.
type ExternalTokenInput struct {
	IDToken string
	Device  entity.DeviceContext
}

// RefreshTokenInput defines the data required to rotate a refresh token.
type RefreshTokenInput struct {
	RefreshToken string
	Device       entity.DeviceContext
}

// --- Output DTOs ---

// AuthOutput is returned by every flow that establishes a session.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// RefreshTokenOutput returns the rotated pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// Identity is the caller resolved from an access token.
type Identity struct {
	User     *entity.User
	DeviceID string
}

// AuthUsecase composes challenges, tokens and sessions into the signup, login, refresh and
// logout flows. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*OtpTicket, error)
	VerifySignup(ctx context.Context, input *VerifySignupInput) (*AuthOutput, error)
	ResendSignupOtp(ctx context.Context, email string) (*OtpTicket, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ExternalAuthorizationURL returns the provider consent URL with a fresh CSRF state.
	ExternalAuthorizationURL(ctx context.Context) (url string, state string, err error)
	ExternalCallback(ctx context.Context, input *ExternalCallbackInput) (*AuthOutput, error)
	ExternalTokenLogin(ctx context.Context, input *ExternalTokenInput) (*AuthOutput, error)

	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Authenticate verifies an access token and loads the user it names.
	Authenticate(ctx context.Context, accessToken string) (*Identity, error)

	Logout(ctx context.Context, userID uuid.UUID, deviceID string) error
	LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*SessionView, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
