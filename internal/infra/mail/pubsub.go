package mail

import (
	"context"
	"log/slog"
	"time"

	"authcore/config"
	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	"authcore/internal/domain/service"

	"github.com/google/uuid"
)

// pubsubSender hands the code to the mail worker through the event publisher. A publish
// failure is the dispatch failure; delivery itself is retried by Pub/Sub.
type pubsubSender struct {
	publisher service.EventPublisher
	otpTTL    time.Duration
	logger    *slog.Logger
}

// NewPubSubSender creates an EmailSender that publishes OtpEmailEvents
func NewPubSubSender(cfg *config.Config, publisher service.EventPublisher, logger *slog.Logger) service.EmailSender {
	return &pubsubSender{
		publisher: publisher,
		otpTTL:    cfg.OTP.TTL,
		logger:    logger,
	}
}

func (s *pubsubSender) SendOtpEmail(ctx context.Context, email, code string, purpose entity.OtpPurpose) error {
	event := &service.OtpEmailEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		EventID:          uuid.NewString(),
		Email:            email,
		Code:             code,
		Purpose:          string(purpose),
		ExpiresInMinutes: int(s.otpTTL.Minutes()),
	}

	if err := s.publisher.PublishOtpEmailEvent(ctx, event); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "OTP email queued",
		slog.String("event_id", event.EventID),
		slog.String("email", email),
		slog.String("purpose", string(purpose)),
	)

	return nil
}
