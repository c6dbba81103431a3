package auth

import (
	"testing"
	"time"

	"authcore/config"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"
	"authcore/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Token: &config.TokenConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_MintAndVerifyPair(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()

	pair, err := jwtService.MintPair(userID, "device-a")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := jwtService.Verify(pair.AccessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "device-a", accessClaims.DeviceID)

	refreshClaims, err := jwtService.Verify(pair.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TypeDiscriminator(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, err := jwtService.MintAccessToken(userID, "")
	require.NoError(t, err)
	refreshToken, err := jwtService.MintRefreshToken(userID, "")
	require.NoError(t, err)

	claims, err := jwtService.Verify(accessToken, service.TokenTypeRefresh)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenTypeMismatch))

	claims, err = jwtService.Verify(refreshToken, service.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenTypeMismatch))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	first, err := jwtService.MintRefreshToken(userID, "device-a")
	require.NoError(t, err)
	second, err := jwtService.MintRefreshToken(userID, "device-a")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now().Add(-time.Hour)
	impl.now = func() time.Time { return issuedAt }

	token, err := impl.MintAccessToken(uuid.New(), "")
	require.NoError(t, err)

	impl.now = time.Now
	claims, err := impl.Verify(token, service.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.Verify("clearly-not-a-jwt-token-format", service.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ForeignSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_access_secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.MintAccessToken(uuid.New(), "")
	require.NoError(t, err)

	claims, err := jwtService.Verify(token, service.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_RefreshTokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, jwtService.RefreshTokenTTL())
}
