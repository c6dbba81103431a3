package mail

import (
	"context"
	"log/slog"
	"time"

	"authcore/config"
	"authcore/internal/domain/entity"
	"authcore/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

const (
	defaultSMTPPort    = 587
	defaultSMTPTimeout = 10 * time.Second
)

// relay is the part of *gomail.Client the sender uses
type relay interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpSender struct {
	relay   relay
	from    string
	appName string
	otpTTL  time.Duration
	timeout time.Duration
	logger  *slog.Logger
}

// NewSMTPSender creates an EmailSender that hands mail to an SMTP relay. STARTTLS is used when
// the relay offers it. Every send is bounded by smtp.timeout, so a stalled relay fails the
// request instead of holding it.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	smtpCfg := cfg.Mail.SMTP
	if smtpCfg == nil || smtpCfg.Host == "" {
		return nil, errors.New("smtp host is required for smtp mail provider")
	}
	if smtpCfg.From == "" {
		return nil, errors.New("smtp from address is required for smtp mail provider")
	}

	port := smtpCfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}
	timeout := smtpCfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTimeout(timeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if smtpCfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtpCfg.Username),
			gomail.WithPassword(smtpCfg.Password),
		)
	}

	client, err := gomail.NewClient(smtpCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid smtp configuration")
	}

	return &smtpSender{
		relay:   client,
		from:    smtpCfg.From,
		appName: cfg.Mail.AppName,
		otpTTL:  cfg.OTP.TTL,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (s *smtpSender) SendOtpEmail(ctx context.Context, email, code string, purpose entity.OtpPurpose) error {
	rendered, err := RenderOtpMessage(s.appName, email, code, purpose, s.otpTTL)
	if err != nil {
		return err
	}

	msg, err := rendered.Msg(s.from)
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.relay.DialAndSendWithContext(sendCtx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail over smtp")
	}

	s.logger.InfoContext(ctx, "OTP email sent",
		slog.String("email", email),
		slog.String("purpose", string(purpose)),
	)

	return nil
}
