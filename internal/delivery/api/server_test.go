package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authcore/config"
	"authcore/internal/delivery/api/middleware"
	"authcore/internal/delivery/api/response"
	"authcore/internal/delivery/api/router"
	"authcore/internal/delivery/api/router/handler"
	mockUsecase "authcore/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) *apiServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = "1KB"

	authUC := mockUsecase.NewMockAuthUsecase(t)
	srv, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: authUC}),
			Config:         cfg,
		},
	})
	require.NoError(t, err)

	return srv.(*apiServer)
}

func serve(srv *apiServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), body.Meta.RequestID)

	return *body.Error
}

func TestServer_HealthKeepsClientRequestID(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-req-1")

	rec := serve(srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "HTTP_ERROR", info.Code)
	assert.Equal(t, "Not Found", info.Message)
}

func TestServer_RejectsOversizedBody(t *testing.T) {
	srv := newTestServer(t)
	body := `{"email":"` + strings.Repeat("a", 2048) + `@example.com","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := serve(srv, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}

func TestServer_SecuredRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/auth/sessions", "/api/v1/auth/me"} {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		info := decodeError(t, rec)
		assert.Equal(t, "UNAUTHORIZED", info.Code, path)
		assert.Nil(t, info.Details, path)
	}
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(t)

	t.Run("preflight allows device header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/auth/refresh-token", nil)
		req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)

		rec := serve(srv, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), handler.HeaderXDeviceID)
	})

	t.Run("responses expose retry headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(echo.HeaderOrigin, "https://app.example.com")

		rec := serve(srv, req)

		exposed := rec.Header().Get(echo.HeaderAccessControlExposeHeaders)
		assert.Contains(t, exposed, echo.HeaderRetryAfter)
		assert.Contains(t, exposed, echo.HeaderXRequestID)
	})
}
