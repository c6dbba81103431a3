package google

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"authcore/config"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"
	"authcore/internal/errors"
	mockservice "authcore/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func newTestProvider(t *testing.T) *provider {
	t.Helper()

	return newTestProviderWithStates(t, newMemoryStateStore())
}

func newTestProviderWithStates(t *testing.T, states service.OAuthStateStore) *provider {
	t.Helper()

	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURI:  "http://localhost:8080/api/v1/auth/google/callback",
			StateTTL:     time.Minute,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	impl, ok := NewProvider(ProviderParams{Config: cfg, Logger: logger, States: states}).(*provider)
	require.True(t, ok)

	return impl
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "client-id",
		Subject:  "google-sub-1",
		Claims: map[string]any{
			"email":          "jane@example.com",
			"email_verified": true,
			"name":           "Jane Doe",
			"picture":        "https://example.com/jane.png",
		},
	}
}

func TestProvider_AuthorizationURL(t *testing.T) {
	p := newTestProvider(t)

	rawURL, state, err := p.AuthorizationURL(context.Background())

	require.NoError(t, err)
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, state, query.Get("state"))
	assert.Len(t, state, 64)
}

func TestProvider_ValidateStateIsSingleUse(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	_, state, err := p.AuthorizationURL(ctx)
	require.NoError(t, err)

	for _, tc := range []struct {
		state string
		want  bool
	}{
		{state: state, want: true},
		{state: state, want: false},
		{state: "", want: false},
		{state: "unknown", want: false},
	} {
		ok, err := p.ValidateState(ctx, tc.state)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "state %q", tc.state)
	}
}

func TestProvider_ValidateStateExpires(t *testing.T) {
	ctx := context.Background()
	states := newMemoryStateStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	states.now = func() time.Time { return now }
	p := newTestProviderWithStates(t, states)
	_, state, err := p.AuthorizationURL(ctx)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	ok, err := p.ValidateState(ctx, state)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProvider_StatesAreSharedThroughTheStore(t *testing.T) {
	ctx := context.Background()
	states := newMemoryStateStore()
	issuer := newTestProviderWithStates(t, states)
	callback := newTestProviderWithStates(t, states)

	_, state, err := issuer.AuthorizationURL(ctx)
	require.NoError(t, err)

	ok, err := callback.ValidateState(ctx, state)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvider_AuthorizationURLStoreFailure(t *testing.T) {
	states := mockservice.NewMockOAuthStateStore(t)
	states.EXPECT().Save(mock.Anything, mock.AnythingOfType("string"), time.Minute).
		Return(errors.New("connection refused"))
	p := newTestProviderWithStates(t, states)

	rawURL, state, err := p.AuthorizationURL(context.Background())

	require.Error(t, err)
	assert.Empty(t, rawURL)
	assert.Empty(t, state)
}

func TestProvider_ValidateStateStoreFailure(t *testing.T) {
	states := mockservice.NewMockOAuthStateStore(t)
	states.EXPECT().Consume(mock.Anything, "state-1").Return(false, errors.New("connection refused"))
	p := newTestProviderWithStates(t, states)

	ok, err := p.ValidateState(context.Background(), "state-1")

	require.Error(t, err)
	assert.False(t, ok)
}

func TestProvider_VerifyIDToken(t *testing.T) {
	tests := []struct {
		name        string
		payload     func() *idtoken.Payload
		validateErr error
		wantErr     error
	}{
		{
			name:    "valid token",
			payload: validPayload,
		},
		{
			name:        "validator rejects token",
			payload:     validPayload,
			validateErr: errors.New("signature mismatch"),
			wantErr:     domainerrors.ErrOAuthFailed,
		},
		{
			name: "foreign issuer",
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Issuer = "https://evil.example.com"

				return p
			},
			wantErr: domainerrors.ErrOAuthFailed,
		},
		{
			name: "missing email",
			payload: func() *idtoken.Payload {
				p := validPayload()
				delete(p.Claims, "email")

				return p
			},
			wantErr: domainerrors.ErrOAuthEmailMissing,
		},
		{
			name: "unverified email",
			payload: func() *idtoken.Payload {
				p := validPayload()
				p.Claims["email_verified"] = false

				return p
			},
			wantErr: domainerrors.ErrOAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t)
			p.validate = func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "raw-id-token", idToken)
				assert.Equal(t, "client-id", audience)
				if tt.validateErr != nil {
					return nil, tt.validateErr
				}

				return tt.payload(), nil
			}

			profile, err := p.VerifyIDToken(context.Background(), "raw-id-token")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, profile)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "google", profile.Provider)
			assert.Equal(t, "google-sub-1", profile.ExternalID)
			assert.Equal(t, "jane@example.com", profile.Email)
			assert.Equal(t, "Jane Doe", profile.DisplayName)
			assert.Equal(t, "https://example.com/jane.png", profile.AvatarURL)
		})
	}
}

func TestProvider_ExchangeAuthCode(t *testing.T) {
	p := newTestProvider(t)
	p.exchange = func(_ context.Context, code string, _ ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
		assert.Equal(t, "auth-code", code)
		token := &oauth2.Token{AccessToken: "access"}

		return token.WithExtra(map[string]any{"id_token": "raw-id-token"}), nil
	}
	p.validate = func(_ context.Context, idToken, _ string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-id-token", idToken)

		return validPayload(), nil
	}

	profile, err := p.ExchangeAuthCode(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", profile.ExternalID)
}

func TestProvider_ExchangeAuthCodeWithoutIDToken(t *testing.T) {
	p := newTestProvider(t)
	p.exchange = func(context.Context, string, ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
		return &oauth2.Token{AccessToken: "access"}, nil
	}

	_, err := p.ExchangeAuthCode(context.Background(), "auth-code")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
}

func TestProvider_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := NewProvider(ProviderParams{Config: &config.Config{}, Logger: logger, States: NewMemoryStateStore()})

	_, err := p.VerifyIDToken(context.Background(), "token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))

	_, err = p.ExchangeAuthCode(context.Background(), "code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthFailed))
}
