package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"authcore/config"
	"authcore/internal/domain/constants"
	"authcore/internal/domain/entity"
	"authcore/internal/domain/service"
	mockSvc "authcore/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var publishedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockEmailSender) {
	t.Helper()

	sender := mockSvc.NewMockEmailSender(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.DiscardHandler),
		Sender: sender,
	})
	h.now = func() time.Time { return publishedAt.Add(time.Minute) }

	return h, sender
}

func pushBody(t *testing.T, event *service.OtpEmailEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = publishedAt.Format(time.RFC3339)
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func validEvent() *service.OtpEmailEvent {
	return &service.OtpEmailEvent{
		EventID:          "evt-1",
		Email:            "alice@example.com",
		Code:             "123456",
		Purpose:          string(entity.OtpPurposeSignup),
		ExpiresInMinutes: 10,
	}
}

func TestHandlePush_DeliversEvent(t *testing.T) {
	h, sender := newPushHandler(t, &config.Config{})
	sender.EXPECT().SendOtpEmail(mock.Anything, "alice@example.com", "123456", entity.OtpPurposeSignup).Return(nil)

	rec := push(h, pushBody(t, validEvent()), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SendFailureIsRetryable(t *testing.T) {
	h, sender := newPushHandler(t, &config.Config{})
	sender.EXPECT().SendOtpEmail(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("421 service not available"))

	rec := push(h, pushBody(t, validEvent()), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "not json", body: "{", want: http.StatusBadRequest},
		{name: "not base64", body: `{"message":{"data":"***"}}`, want: http.StatusBadRequest},
		{
			name: "event not json",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushHandler(t, &config.Config{})

			assert.Equal(t, tt.want, push(h, tt.body, nil).Code)
		})
	}
}

func TestHandlePush_DropsInvalidEvent(t *testing.T) {
	h, _ := newPushHandler(t, &config.Config{})
	event := validEvent()
	event.Purpose = "marketing"

	rec := push(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_DropsExpiredCode(t *testing.T) {
	h, _ := newPushHandler(t, &config.Config{})
	h.now = func() time.Time { return publishedAt.Add(11 * time.Minute) }

	rec := push(h, pushBody(t, validEvent()), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_VerifiesGooglePushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	t.Run("missing token", func(t *testing.T) {
		h, _ := newPushHandler(t, cfg)

		assert.Equal(t, http.StatusUnauthorized, push(h, pushBody(t, validEvent()), nil).Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newPushHandler(t, cfg)
		h.validateToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := push(h, pushBody(t, validEvent()), map[string]string{echo.HeaderAuthorization: "Bearer tok"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, sender := newPushHandler(t, cfg)
		h.validateToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		sender.EXPECT().SendOtpEmail(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		rec := push(h, pushBody(t, validEvent()), map[string]string{echo.HeaderAuthorization: "Bearer tok"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
