// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"authcore/config"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"
	"authcore/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte           // Secret key for signing access tokens.
	refreshSecret []byte           // Secret key for signing refresh tokens.
	accessTTL     time.Duration    // Time-to-live for access tokens.
	refreshTTL    time.Duration    // Time-to-live for refresh tokens.
	now           func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Token != nil {
		if cfg.Token.AccessTTL > 0 {
			accessTTL = cfg.Token.AccessTTL
		}
		if cfg.Token.RefreshTTL > 0 {
			refreshTTL = cfg.Token.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// MintAccessToken creates a short-lived access token.
func (s *jwtService) MintAccessToken(userID uuid.UUID, deviceID string) (string, error) {
	return s.generateToken(userID, deviceID, service.TokenTypeAccess)
}

// MintRefreshToken creates a long-lived refresh token.
func (s *jwtService) MintRefreshToken(userID uuid.UUID, deviceID string) (string, error) {
	return s.generateToken(userID, deviceID, service.TokenTypeRefresh)
}

// MintPair creates a new access token and refresh token for a given user and device.
func (s *jwtService) MintPair(userID uuid.UUID, deviceID string) (*service.TokenPair, error) {
	accessToken, err := s.MintAccessToken(userID, deviceID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.MintRefreshToken(userID, deviceID)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Verify checks the signature with the key of the claimed type, then requires the claimed
// type to be the expected one.
func (s *jwtService) Verify(tokenString string, expected service.TokenType) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	if claims.Type != expected {
		return nil, domainerrors.ErrTokenTypeMismatch.WrapMessage(
			"expected " + string(expected) + " token, got " + string(claims.Type))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("invalid subject")
	}
	claims.UserID = userID

	return claims, nil
}

// RefreshTokenTTL returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	claims, ok := token.Claims.(*service.Claims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	switch claims.Type {
	case service.TokenTypeAccess:
		return s.accessSecret, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, nil
	default:
		return nil, errors.Errorf("unknown token type %q", claims.Type)
	}
}

// generateToken is a private helper to create a JWT with specific claims.
// Every token carries a unique jti so two tokens minted within the same second never collide.
func (s *jwtService) generateToken(userID uuid.UUID, deviceID string, tokenType service.TokenType) (string, error) {
	ttl, secret := s.accessTTL, s.accessSecret
	if tokenType == service.TokenTypeRefresh {
		ttl, secret = s.refreshTTL, s.refreshSecret
	}

	now := s.now()
	claims := service.Claims{
		Type:     tokenType,
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
