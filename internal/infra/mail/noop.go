package mail

import (
	"context"
	"log/slog"

	"authcore/internal/domain/entity"
	"authcore/internal/domain/service"
)

// noopSender drops codes on the floor. In develop it logs them so sign-up can be exercised
// without a mail relay.
type noopSender struct {
	logCodes bool
	logger   *slog.Logger
}

var _ service.EmailSender = (*noopSender)(nil)

func (s *noopSender) SendOtpEmail(ctx context.Context, email, code string, purpose entity.OtpPurpose) error {
	attrs := []any{
		slog.String("email", email),
		slog.String("purpose", string(purpose)),
	}
	if s.logCodes {
		attrs = append(attrs, slog.String("code", code))
	}

	s.logger.InfoContext(ctx, "[NoopMail] OTP email not sent", attrs...)

	return nil
}
