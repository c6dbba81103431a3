// Package mail provides EmailSender implementations for one-time code delivery.
package mail

import (
	"log/slog"

	"authcore/config"
	"authcore/internal/domain/constants"
	"authcore/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for EmailSender, injected by Fx
type SenderParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher `optional:"true"`
}

// NewEmailSender picks the sender named by mail.provider
func NewEmailSender(params SenderParams) (service.EmailSender, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Mail.Provider {
	case "", constants.MailProviderNoop:
		logger.Info("Mail not configured, using no-op sender")

		return &noopSender{
			logCodes: cfg.Env.Env == constants.EnvDevelop,
			logger:   logger,
		}, nil

	case constants.MailProviderSMTP:
		logger.Info("Using SMTP mail sender")

		return NewSMTPSender(cfg, logger)

	case constants.MailProviderPubSub:
		if params.Publisher == nil {
			return nil, errors.New("event publisher is required for pubsub mail provider")
		}
		logger.Info("Using Pub/Sub mail sender")

		return NewPubSubSender(cfg, params.Publisher, logger), nil

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Mail.Provider)
	}
}

// NewDeliverySender is the sender of the mail worker. It must talk to a real transport, so the
// pubsub provider, which would publish back to the worker, is not accepted here.
func NewDeliverySender(params SenderParams) (service.EmailSender, error) {
	if params.Config.Mail.Provider == constants.MailProviderPubSub {
		params.Logger.Info("Mail worker delivers over SMTP")

		return NewSMTPSender(params.Config, params.Logger)
	}

	return NewEmailSender(params)
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEmailSender),
)

// WorkerModule provides the mail worker's sender
//
//nolint:gochecknoglobals
var WorkerModule = fx.Options(
	fx.Provide(NewDeliverySender),
)
