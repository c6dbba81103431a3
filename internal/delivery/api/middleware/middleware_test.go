package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"authcore/config"
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

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func newErrorContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(method, target, nil), rec), rec
}

func TestAuthenticate_SetsIdentity(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	user := &entity.User{ID: uuid.New(), Email: "a@x.com"}
	authUC.EXPECT().Authenticate(mock.Anything, "good-token").
		Return(&usecase.Identity{User: user, DeviceID: "device-a"}, nil)

	c, _ := newErrorContext(http.MethodGet, "/api/v1/auth/me")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer good-token")

	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})
	err := m.Authenticate(func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, user.ID, userID)

		got, ok := GetUser(c)
		require.True(t, ok)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, "device-a", GetDeviceID(c))

		return nil
	})(c)

	require.NoError(t, err)
}

func TestAuthenticate_RejectsMissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Basic Zm9vOmJhcg==", "Bearer "} {
		t.Run(header, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			c, _ := newErrorContext(http.MethodGet, "/api/v1/auth/me")
			if header != "" {
				c.Request().Header.Set(echo.HeaderAuthorization, header)
			}

			m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC})
			err := m.Authenticate(func(c echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)

			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestAuthenticate_PropagatesTokenErrors(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().Authenticate(mock.Anything, "refresh-token").
		Return(nil, errors.WithStack(domainerrors.ErrTokenTypeMismatch))

	c, _ := newErrorContext(http.MethodGet, "/api/v1/auth/me")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer refresh-token")

	err := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC}).Authenticate(func(c echo.Context) error {
		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenTypeMismatch)
}

func TestHandleHTTPError_AppError(t *testing.T) {
	c, rec := newErrorContext(http.MethodPost, "/api/v1/auth/verify-otp")

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).
		HandleHTTPError(domainerrors.ErrOtpExpired.WrapMessage("challenge expired"), c)

	assert.Equal(t, http.StatusGone, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "OTP_EXPIRED", body.Error.Code)
	assert.Equal(t, "OTP has expired", body.Error.Message)
}

func TestHandleHTTPError_RateLimitSetsRetryAfter(t *testing.T) {
	c, rec := newErrorContext(http.MethodPost, "/api/v1/auth/resend-otp")

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).
		HandleHTTPError(errors.WithStack(domainerrors.NewRateLimitError(41500*time.Millisecond)), c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get(echo.HeaderRetryAfter))
	body := decodeError(t, rec)
	assert.Equal(t, "RATE_LIMITED", body.Error.Code)
	assert.Equal(t, "Please wait 42 seconds before requesting a new OTP", body.Error.Message)
	assert.EqualValues(t, 42, body.Error.Details["retryAfterSeconds"])
}

func TestHandleHTTPError_ValidationDetails(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Validate(&payload{Email: "nope"})
	require.Error(t, err)

	c, rec := newErrorContext(http.MethodPost, "/api/v1/auth/signup")
	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(err, c)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "email", body.Error.Details["Email"])
}

func TestHandleHTTPError_MasksUnknownErrors(t *testing.T) {
	c, rec := newErrorContext(http.MethodGet, "/api/v1/auth/sessions")

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).
		HandleHTTPError(errors.New("pq: connection reset by peer"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	c, rec := newErrorContext(http.MethodGet, "/missing")

	NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
}

func TestIPRateLimiter_DeniesAfterBurst(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, NewIPRateLimiter(&config.RateLimitRule{Requests: 2, Window: 15 * time.Minute}, "Too many attempts"))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client keeps its own budget
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "198.51.100.9:5555"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
