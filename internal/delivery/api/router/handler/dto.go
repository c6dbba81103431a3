package handler

import (
	"time"

	"authcore/internal/domain/entity"
	"authcore/internal/usecase"
)

// SignupRequest represents the request body for starting a signup
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Username string `json:"username" validate:"required,min=3,max=30,username"`
	FullName string `json:"fullname" validate:"required,min=2,max=50,fullname"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// VerifyOtpRequest represents the request body for completing a signup
type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
	OTP   string `json:"otp" validate:"required,otp"`
}

// ResendOtpRequest represents the request body for resending a signup code
type ResendOtpRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// LoginRequest represents the request body for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

// GoogleTokenRequest carries an ID token obtained by a native client
type GoogleTokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// RefreshTokenRequest represents the request body for rotating tokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserResponse is the safe projection of a user. Hashes and external ids never leave the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullname"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by every successful sign-in
type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

// TokenResponse is returned by a token refresh
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// OtpTicketResponse tells the client where the code went and until when it is valid
type OtpTicketResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionResponse describes one signed-in device
type SessionResponse struct {
	DeviceID    string    `json:"deviceId"`
	DeviceName  string    `json:"deviceName"`
	DeviceClass string    `json:"deviceClass"`
	Current     bool      `json:"current"`
	LastUsedAt  time.Time `json:"lastUsedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}

func toAuthResponse(output *usecase.AuthOutput) *AuthResponse {
	return &AuthResponse{
		User:         toUserResponse(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

func toSessionResponses(views []*usecase.SessionView, currentDeviceID string) []*SessionResponse {
	sessions := make([]*SessionResponse, 0, len(views))
	for _, view := range views {
		sessions = append(sessions, &SessionResponse{
			DeviceID:    view.DeviceID,
			DeviceName:  view.DisplayName,
			DeviceClass: string(view.DeviceClass),
			Current:     view.DeviceID == currentDeviceID,
			LastUsedAt:  view.LastUsedAt,
			CreatedAt:   view.CreatedAt,
			ExpiresAt:   view.ExpiresAt,
		})
	}

	return sessions
}
