// Package pubsub publishes OTP mail requests to the mail worker.
package pubsub

import (
	"context"
	"log/slog"

	"authcore/config"
	"authcore/internal/domain/constants"
	"authcore/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type publisherBuilder func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var publisherBuilders = map[string]publisherBuilder{
	constants.PubSubProviderLocal:  buildLocalPublisher,
	constants.PubSubProviderGoogle: buildGooglePublisher,
}

func buildLocalPublisher(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.LocalEndpoint == "" {
		return nil, errors.New("pubsub.localEndpoint is required for the local provider")
	}
	logger.Info("Publishing mail events to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
}

func buildGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch {
	case cfg.ProjectID == "":
		return nil, errors.New("pubsub.projectId is required for the google provider")
	case cfg.TopicID == "":
		return nil, errors.New("pubsub.topicId is required for the google provider")
	}
	logger.Info("Publishing mail events to Google Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

// NewEventPublisher builds the publisher named by pubsub.provider and closes it on stop.
// Without a provider events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, mail events are dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	build, ok := publisherBuilders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := build(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing event publisher")

		return publisher.Close()
	}))

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
