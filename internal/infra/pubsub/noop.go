package pubsub

import (
	"context"
	"log/slog"

	"authcore/internal/domain/service"
)

// noopPublisher drops events. It is used when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOtpEmailEvent(ctx context.Context, event *service.OtpEmailEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event dropped",
		slog.String("event_id", event.EventID),
		slog.String("purpose", event.Purpose),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
