package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"authcore/internal/delivery/api/middleware"
	"authcore/internal/delivery/api/validator"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	mockUsecase "authcore/internal/mocks/usecase"
	"authcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	e      *echo.Echo
	authUC *mockUsecase.MockAuthUsecase
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: logger})
	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	auth := e.Group("/api/v1/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/verify-otp", h.VerifyOtp)
	auth.POST("/resend-otp", h.ResendOtp)
	auth.POST("/login", h.Login)
	auth.POST("/refresh-token", h.RefreshToken)
	auth.GET("/google", h.GoogleLogin)
	auth.GET("/google/callback", h.GoogleCallback)
	auth.POST("/google", h.GoogleTokenLogin)

	secured := auth.Group("", authMiddleware.Authenticate)
	secured.POST("/logout", h.Logout)
	secured.POST("/logout-all", h.LogoutAll)
	secured.GET("/sessions", h.ListSessions)
	secured.GET("/me", h.Me)

	return &handlerFixture{e: e, authUC: authUC}
}

func (f *handlerFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

// signedIn makes the mocked usecase accept "access-token" for user on device-a.
func (f *handlerFixture) signedIn(user *entity.User) map[string]string {
	f.authUC.EXPECT().Authenticate(mock.Anything, "access-token").
		Return(&usecase.Identity{User: user, DeviceID: "device-a"}, nil)

	return map[string]string{echo.HeaderAuthorization: "Bearer access-token"}
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func sampleUser() *entity.User {
	hash := "$2a$04$secret"

	return &entity.User{
		ID:           uuid.MustParse("7d7c5a3e-4f7b-4b0e-9c55-0b8a6f3f4d21"),
		Email:        "alice@example.com",
		Username:     "alice",
		FullName:     "Alice Liddell",
		PasswordHash: &hash,
		Verified:     true,
	}
}

func TestSignup_Success(t *testing.T) {
	f := newHandlerFixture(t)
	expiresAt := time.Date(2026, 3, 14, 9, 40, 0, 0, time.UTC)
	f.authUC.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
		Email:    "alice@example.com",
		Username: "alice",
		FullName: "Alice Liddell",
		Password: "Wonderland1",
	}).Return(&usecase.OtpTicket{Email: "alice@example.com", ExpiresAt: expiresAt}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/signup",
		`{"email":"alice@example.com","username":"alice","fullname":"Alice Liddell","password":"Wonderland1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Signup initiated. Please verify your email with the OTP sent", env.Message)

	var ticket OtpTicketResponse
	require.NoError(t, json.Unmarshal(env.Data, &ticket))
	assert.Equal(t, "alice@example.com", ticket.Email)
	assert.True(t, expiresAt.Equal(ticket.ExpiresAt))
}

func TestSignup_ValidationFailure(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/auth/signup",
		`{"email":"alice@example.com","username":"al","fullname":"Alice","password":"weak"}`, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "min", env.Error.Details["Username"])
	assert.Equal(t, "strongpassword", env.Error.Details["Password"])
}

func TestSignup_MalformedBody(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/auth/signup", `{"email":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
}

func TestSignup_EmailTaken(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().Signup(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmailTaken.WrapMessage("email is registered"))

	rec := f.do(http.MethodPost, "/api/v1/auth/signup",
		`{"email":"alice@example.com","username":"alice","fullname":"Alice Liddell","password":"Wonderland1"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_TAKEN", decode(t, rec).Error.Code)
}

func TestVerifyOtp_CreatesUserAndPassesDevice(t *testing.T) {
	f := newHandlerFixture(t)
	user := sampleUser()
	f.authUC.EXPECT().VerifySignup(mock.Anything, mock.MatchedBy(func(in *usecase.VerifySignupInput) bool {
		return in.Email == "alice@example.com" && in.Code == "123456" &&
			in.Device.DeviceID == "phone-1" && in.Device.UserAgent == "AliceApp/1.0 (iPhone)"
	})).Return(&usecase.AuthOutput{User: user, AccessToken: "at", RefreshToken: "rt"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/verify-otp", `{"email":"alice@example.com","otp":"123456"}`,
		map[string]string{HeaderXDeviceID: "phone-1", "User-Agent": "AliceApp/1.0 (iPhone)"})

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "User registered successfully", env.Message)
	assert.NotContains(t, rec.Body.String(), "$2a$04$secret")

	var auth AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	assert.Equal(t, "at", auth.AccessToken)
	assert.Equal(t, "rt", auth.RefreshToken)
	assert.Equal(t, "alice", auth.User.Username)
}

func TestVerifyOtp_RejectsMalformedCode(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/auth/verify-otp", `{"email":"alice@example.com","otp":"12ab56"}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "otp", decode(t, rec).Error.Details["OTP"])
}

func TestResendOtp_RateLimited(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().ResendSignupOtp(mock.Anything, "alice@example.com").
		Return(nil, errors.WithStack(domainerrors.NewRateLimitError(30*time.Second)))

	rec := f.do(http.MethodPost, "/api/v1/auth/resend-otp", `{"email":"alice@example.com"}`, nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "30", rec.Header().Get(echo.HeaderRetryAfter))
	assert.Equal(t, "RATE_LIMITED", decode(t, rec).Error.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := f.do(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"nope"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestLogin_Success(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().Login(mock.Anything, mock.MatchedBy(func(in *usecase.LoginInput) bool {
		return in.Email == "alice@example.com" && in.Password == "Wonderland1"
	})).Return(&usecase.AuthOutput{User: sampleUser(), AccessToken: "at", RefreshToken: "rt"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/login", `{"email":"alice@example.com","password":"Wonderland1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login successful", decode(t, rec).Message)
}

func TestRefreshToken_Success(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().RefreshToken(mock.Anything, mock.MatchedBy(func(in *usecase.RefreshTokenInput) bool {
		return in.RefreshToken == "rt-1"
	})).Return(&usecase.RefreshTokenOutput{AccessToken: "at-2", RefreshToken: "rt-2"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/refresh-token", `{"refreshToken":"rt-1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Token refreshed successfully", env.Message)

	var tokens TokenResponse
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	assert.Equal(t, TokenResponse{AccessToken: "at-2", RefreshToken: "rt-2"}, tokens)
}

func TestRefreshToken_Replay(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().RefreshToken(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrRefreshTokenRevoked))

	rec := f.do(http.MethodPost, "/api/v1/auth/refresh-token", `{"refreshToken":"rt-1"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "REFRESH_TOKEN_REVOKED", decode(t, rec).Error.Code)
}

func TestGoogleLogin_Redirects(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().ExternalAuthorizationURL(mock.Anything).
		Return("https://accounts.google.com/o/oauth2/auth?state=s1", "s1", nil)

	rec := f.do(http.MethodGet, "/api/v1/auth/google", "", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=s1", rec.Header().Get(echo.HeaderLocation))
}

func TestGoogleLogin_StateStoreUnavailable(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().ExternalAuthorizationURL(mock.Anything).
		Return("", "", errors.New("failed to store oauth state: connection refused"))

	rec := f.do(http.MethodGet, "/api/v1/auth/google", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

func TestGoogleCallback(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/auth/google/callback?state=s1", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "OAUTH_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("success", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.authUC.EXPECT().ExternalCallback(mock.Anything, mock.MatchedBy(func(in *usecase.ExternalCallbackInput) bool {
			return in.Code == "c1" && in.State == "s1"
		})).Return(&usecase.AuthOutput{User: sampleUser(), AccessToken: "at", RefreshToken: "rt"}, nil)

		rec := f.do(http.MethodGet, "/api/v1/auth/google/callback?code=c1&state=s1", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGoogleTokenLogin(t *testing.T) {
	f := newHandlerFixture(t)
	f.authUC.EXPECT().ExternalTokenLogin(mock.Anything, mock.MatchedBy(func(in *usecase.ExternalTokenInput) bool {
		return in.IDToken == "id-token"
	})).Return(&usecase.AuthOutput{User: sampleUser(), AccessToken: "at", RefreshToken: "rt"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/google", `{"idToken":"id-token"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogout_UsesTokenDevice(t *testing.T) {
	f := newHandlerFixture(t)
	user := sampleUser()
	headers := f.signedIn(user)
	f.authUC.EXPECT().Logout(mock.Anything, user.ID, "device-a").Return(nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/logout", "", headers)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decode(t, rec).Message)
}

func TestLogout_RequiresBearer(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/auth/logout", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
}

func TestLogoutAll_ReportsCount(t *testing.T) {
	f := newHandlerFixture(t)
	user := sampleUser()
	headers := f.signedIn(user)
	f.authUC.EXPECT().LogoutAll(mock.Anything, user.ID).Return(int64(3), nil)

	rec := f.do(http.MethodPost, "/api/v1/auth/logout-all", "", headers)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "Logged out from all devices", env.Message)
	assert.JSONEq(t, `{"revoked":3}`, string(env.Data))
}

func TestListSessions_MarksCurrentDevice(t *testing.T) {
	f := newHandlerFixture(t)
	user := sampleUser()
	headers := f.signedIn(user)
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	f.authUC.EXPECT().ListSessions(mock.Anything, user.ID).Return([]*usecase.SessionView{
		{DeviceID: "device-a", DisplayName: "Chrome on macOS", DeviceClass: entity.DeviceClassDesktop, LastUsedAt: now},
		{DeviceID: "device-b", DisplayName: "Safari on iOS", DeviceClass: entity.DeviceClassMobile, LastUsedAt: now.Add(-time.Hour)},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/auth/sessions", "", headers)

	require.Equal(t, http.StatusOK, rec.Code)
	var data struct {
		Sessions []SessionResponse `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	require.Len(t, data.Sessions, 2)
	assert.True(t, data.Sessions[0].Current)
	assert.False(t, data.Sessions[1].Current)
	assert.Equal(t, "Safari on iOS", data.Sessions[1].DeviceName)
}

func TestMe_ReturnsSafeProjection(t *testing.T) {
	f := newHandlerFixture(t)
	headers := f.signedIn(sampleUser())

	rec := f.do(http.MethodGet, "/api/v1/auth/me", "", headers)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestHealthCheck(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}
