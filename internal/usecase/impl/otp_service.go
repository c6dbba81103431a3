// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"authcore/config"
	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// otpService implements the OtpChallengeUsecase interface.
type otpService struct {
	otpRepo     repository.OtpChallengeRepository
	userRepo    repository.UserRepository
	codes       service.OtpCodeService
	mailer      service.EmailSender
	ttl         time.Duration
	cooldown    time.Duration
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

// OtpServiceParams holds dependencies for OtpService, injected by Fx.
type OtpServiceParams struct {
	fx.In

	OtpRepo  repository.OtpChallengeRepository
	UserRepo repository.UserRepository
	Codes    service.OtpCodeService
	Mailer   service.EmailSender
	Config   *config.Config
	Logger   *slog.Logger
}

// NewOtpService is the constructor for otpService.
func NewOtpService(params OtpServiceParams) usecase.OtpChallengeUsecase {
	return &otpService{
		otpRepo:     params.OtpRepo,
		userRepo:    params.UserRepo,
		codes:       params.Codes,
		mailer:      params.Mailer,
		ttl:         params.Config.OTP.TTL,
		cooldown:    params.Config.OTP.Cooldown,
		maxAttempts: params.Config.OTP.MaxAttempts,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *otpService) Issue(ctx context.Context, input *usecase.IssueOtpInput) (*usecase.OtpTicket, error) {
	email := entity.NormalizeEmail(input.Email)
	purpose := input.Purpose
	if !purpose.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown otp purpose")
	}

	pending := input.Pending
	if purpose == entity.OtpPurposeSignup {
		if pending == nil {
			return nil, errors.WithStack(domainerrors.ErrPendingSignupMissing)
		}
		staged := *pending
		staged.Username = entity.NormalizeUsername(staged.Username)
		pending = &staged
	}

	if err := srv.checkIdentity(ctx, email, purpose, pending); err != nil {
		return nil, err
	}

	now := srv.now()
	if err := srv.clearPrevious(ctx, email, purpose, now); err != nil {
		return nil, err
	}

	code, codeHash, err := srv.newCode()
	if err != nil {
		return nil, err
	}

	challenge := &entity.OtpChallenge{
		Email:         email,
		Purpose:       purpose,
		CodeHash:      codeHash,
		PendingSignup: pending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(srv.ttl),
	}
	if err := srv.otpRepo.Create(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to store otp challenge")
	}

	if err := srv.mailer.SendOtpEmail(ctx, email, code, purpose); err != nil {
		srv.log(ctx).Error("Failed to send OTP email, rolling back challenge",
			slog.String("email", email),
			slog.String("purpose", string(purpose)),
			slog.Any("error", err))

		if delErr := srv.otpRepo.Delete(ctx, email, purpose); delErr != nil {
			srv.log(ctx).Error("Failed to roll back otp challenge", slog.String("email", email), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrEmailDispatchFailed.WrapMessage("failed to send otp email")
	}

	srv.log(ctx).Info("OTP issued", slog.String("email", email), slog.String("purpose", string(purpose)))

	return &usecase.OtpTicket{Email: email, Purpose: purpose, ExpiresAt: challenge.ExpiresAt}, nil
}

// clearPrevious removes an existing challenge for the key unless it is still inside the cooldown.
func (srv *otpService) clearPrevious(ctx context.Context, email string, purpose entity.OtpPurpose, now time.Time) error {
	existing, err := srv.otpRepo.FindByEmailAndPurpose(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, repository.ErrOtpChallengeNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find otp challenge")
	}

	if !existing.IsExpired(now) {
		if wait := existing.CooldownRemaining(now, srv.cooldown); wait > 0 {
			return domainerrors.NewRateLimitError(wait)
		}
	}

	if err := srv.otpRepo.Delete(ctx, email, purpose); err != nil {
		return errors.Wrap(err, "failed to delete previous otp challenge")
	}

	return nil
}

func (srv *otpService) Resend(ctx context.Context, email string, purpose entity.OtpPurpose) (*usecase.OtpTicket, error) {
	email = entity.NormalizeEmail(email)
	now := srv.now()

	existing, err := srv.findLive(ctx, email, purpose, now)
	if err != nil {
		return nil, err
	}
	if purpose == entity.OtpPurposeSignup && existing.PendingSignup == nil {
		return nil, errors.WithStack(domainerrors.ErrPendingSignupMissing)
	}

	if err := srv.checkIdentity(ctx, email, purpose, existing.PendingSignup); err != nil {
		return nil, err
	}

	if wait := existing.CooldownRemaining(now, srv.cooldown); wait > 0 {
		return nil, domainerrors.NewRateLimitError(wait)
	}

	code, codeHash, err := srv.newCode()
	if err != nil {
		return nil, err
	}

	renewed := *existing
	renewed.CodeHash = codeHash
	renewed.Attempts = 0
	renewed.CreatedAt = now
	renewed.ExpiresAt = now.Add(srv.ttl)
	if err := srv.otpRepo.Update(ctx, &renewed); err != nil {
		if errors.Is(err, repository.ErrOtpChallengeNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOtpNotFound)
		}

		return nil, errors.Wrap(err, "failed to update otp challenge")
	}

	if err := srv.mailer.SendOtpEmail(ctx, email, code, purpose); err != nil {
		srv.log(ctx).Error("Failed to resend OTP email, restoring previous challenge",
			slog.String("email", email),
			slog.String("purpose", string(purpose)),
			slog.Any("error", err))

		if restoreErr := srv.otpRepo.Update(ctx, existing); restoreErr != nil {
			srv.log(ctx).Error("Failed to restore otp challenge", slog.String("email", email), slog.Any("error", restoreErr))
		}

		return nil, domainerrors.ErrEmailDispatchFailed.WrapMessage("failed to send otp email")
	}

	srv.log(ctx).Info("OTP resent", slog.String("email", email), slog.String("purpose", string(purpose)))

	return &usecase.OtpTicket{Email: email, Purpose: purpose, ExpiresAt: renewed.ExpiresAt}, nil
}

// findLive loads the challenge for the key. A lapsed record is deleted and reported as missing.
func (srv *otpService) findLive(ctx context.Context, email string, purpose entity.OtpPurpose, now time.Time) (*entity.OtpChallenge, error) {
	challenge, err := srv.otpRepo.FindByEmailAndPurpose(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, repository.ErrOtpChallengeNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOtpNotFound)
		}

		return nil, errors.Wrap(err, "failed to find otp challenge")
	}

	if challenge.IsExpired(now) {
		if err := srv.otpRepo.Delete(ctx, email, purpose); err != nil {
			return nil, errors.Wrap(err, "failed to delete expired otp challenge")
		}

		return nil, errors.WithStack(domainerrors.ErrOtpNotFound)
	}

	return challenge, nil
}

func (srv *otpService) Verify(ctx context.Context, email, code string, purpose entity.OtpPurpose) (*entity.PendingSignup, error) {
	email = entity.NormalizeEmail(email)
	now := srv.now()

	challenge, err := srv.otpRepo.FindByEmailAndPurpose(ctx, email, purpose)
	if err != nil {
		if errors.Is(err, repository.ErrOtpChallengeNotFound) {
			return nil, errors.WithStack(domainerrors.ErrOtpNotFound)
		}

		return nil, errors.Wrap(err, "failed to find otp challenge")
	}

	if challenge.IsExpired(now) {
		return nil, srv.discard(ctx, challenge, domainerrors.ErrOtpExpired)
	}

	if challenge.IsExhausted(srv.maxAttempts) {
		return nil, srv.discard(ctx, challenge, domainerrors.ErrOtpMaxAttempts)
	}

	if !srv.codes.Compare(code, challenge.CodeHash) {
		attempts, err := srv.otpRepo.IncrementAttempts(ctx, email, purpose)
		if err != nil {
			return nil, errors.Wrap(err, "failed to record otp attempt")
		}
		srv.log(ctx).Warn("OTP mismatch",
			slog.String("email", email),
			slog.String("purpose", string(purpose)),
			slog.Int("attempts", attempts))

		return nil, errors.WithStack(domainerrors.ErrOtpInvalid)
	}

	if purpose == entity.OtpPurposeSignup && challenge.PendingSignup == nil {
		return nil, srv.discard(ctx, challenge, domainerrors.ErrPendingSignupMissing)
	}

	// The identity may have been claimed by a concurrent signup since the code was issued.
	if err := srv.checkIdentity(ctx, email, purpose, challenge.PendingSignup); err != nil {
		if domainerrors.IsIdentityUnavailable(err) {
			return nil, srv.discard(ctx, challenge, errors.Cause(err))
		}

		return nil, err
	}

	if err := srv.otpRepo.Delete(ctx, email, purpose); err != nil {
		return nil, errors.Wrap(err, "failed to consume otp challenge")
	}

	srv.log(ctx).Info("OTP verified", slog.String("email", email), slog.String("purpose", string(purpose)))

	return challenge.PendingSignup, nil
}

// discard deletes a challenge that reached a terminal state and returns the reason.
func (srv *otpService) discard(ctx context.Context, challenge *entity.OtpChallenge, reason error) error {
	if err := srv.otpRepo.Delete(ctx, challenge.Email, challenge.Purpose); err != nil {
		return errors.Wrap(err, "failed to delete otp challenge")
	}

	srv.log(ctx).Info("OTP challenge discarded",
		slog.String("email", challenge.Email),
		slog.String("purpose", string(challenge.Purpose)),
		slog.String("reason", reason.Error()))

	return errors.WithStack(reason)
}

// checkIdentity enforces that a signup targets a free email and username, and that other
// purposes target an existing account.
func (srv *otpService) checkIdentity(ctx context.Context, email string, purpose entity.OtpPurpose, pending *entity.PendingSignup) error {
	emailTaken, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email availability")
	}

	if purpose != entity.OtpPurposeSignup {
		if !emailTaken {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil
	}

	if emailTaken {
		return errors.WithStack(domainerrors.ErrEmailTaken)
	}

	usernameTaken, err := srv.userRepo.ExistsByUsername(ctx, pending.Username)
	if err != nil {
		return errors.Wrap(err, "failed to check username availability")
	}
	if usernameTaken {
		return errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	return nil
}

func (srv *otpService) newCode() (code, codeHash string, err error) {
	code, err = srv.codes.Generate()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate otp code")
	}

	codeHash, err = srv.codes.Hash(code)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to hash otp code")
	}

	return code, codeHash, nil
}
