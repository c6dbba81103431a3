// Package handler contains the Pub/Sub push handlers of the mail worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"authcore/config"
	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/constants"
	"authcore/internal/domain/entity"
	"authcore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google-signed push token against the expected audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers OTP mail events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	sender         service.EmailSender
	now            func() time.Time
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Sender service.EmailSender
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push requests are signed only when they come from Google Pub/Sub
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validateToken:  idtoken.Validate,
		sender:         params.Sender,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// HandlePush answers 503 when delivery should be retried and 2xx/4xx when it should not.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OtpEmailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse OTP email event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	purpose := entity.OtpPurpose(event.Purpose)
	if event.Email == "" || event.Code == "" || !purpose.IsValid() {
		// Redelivery cannot fix the payload, so it is acknowledged and dropped
		reqLogger.Error("[Worker] Dropping malformed OTP email event",
			slog.String("event_id", event.EventID),
			slog.String("purpose", event.Purpose),
		)

		return c.NoContent(http.StatusOK)
	}

	if h.isStale(&pushMsg, &event) {
		reqLogger.Warn("[Worker] Dropping OTP email for an expired code",
			slog.String("event_id", event.EventID),
			slog.String("email", event.Email),
			slog.String("publish_time", pushMsg.Message.PublishTime),
		)

		return c.NoContent(http.StatusOK)
	}

	if err := h.sender.SendOtpEmail(ctx, event.Email, event.Code, purpose); err != nil {
		reqLogger.Error("[Worker] Failed to deliver OTP email",
			slog.String("event_id", event.EventID),
			slog.String("email", event.Email),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] OTP email delivered",
		slog.String("event_id", event.EventID),
		slog.String("email", event.Email),
		slog.String("purpose", event.Purpose),
	)

	return c.NoContent(http.StatusOK)
}

// isStale reports whether the code in the event expired before the message reached the worker.
func (h *PushHandler) isStale(pushMsg *PubSubMessage, event *service.OtpEmailEvent) bool {
	if event.ExpiresInMinutes <= 0 || pushMsg.Message.PublishTime == "" {
		return false
	}

	publishedAt, err := time.Parse(time.RFC3339Nano, pushMsg.Message.PublishTime)
	if err != nil {
		return false
	}

	return h.now().After(publishedAt.Add(time.Duration(event.ExpiresInMinutes) * time.Minute))
}

// extractRequestID prefers message attributes, then the event, then the X-Request-Id header
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OtpEmailEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
