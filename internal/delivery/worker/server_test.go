package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authcore/config"
	"authcore/internal/delivery/worker/handler"
	mockSvc "authcore/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T) *workerServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: logger,
		Sender: mockSvc.NewMockEmailSender(t),
	})

	srv, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: pushHandler,
	})
	require.NoError(t, err)

	return srv.(*workerServer)
}

func TestWorkerServer_Health(t *testing.T) {
	srv := newTestWorker(t)
	rec := httptest.NewRecorder()

	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerServer_RejectsOversizedPush(t *testing.T) {
	srv := newTestWorker(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(strings.Repeat("x", 2<<20)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
