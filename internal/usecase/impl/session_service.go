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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
// It keeps exactly one refresh-token session per (user, device).
type sessionService struct {
	sessionRepo repository.DeviceSessionRepository
	txManager   repository.TransactionManager
	hasher      service.TokenHasher
	resolver    service.DeviceResolver
	ttl         time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.DeviceSessionRepository
	TxManager   repository.TransactionManager
	Hasher      service.TokenHasher
	Resolver    service.DeviceResolver
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		sessionRepo: params.SessionRepo,
		txManager:   params.TxManager,
		hasher:      params.Hasher,
		resolver:    params.Resolver,
		ttl:         params.Config.Session.TTL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) DeviceID(device entity.DeviceContext) string {
	return srv.resolver.Fingerprint(device)
}

func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterSessionInput) (*entity.DeviceSession, error) {
	session, err := srv.replace(ctx, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Device session registered",
		slog.String("userID", input.UserID.String()),
		slog.String("deviceID", session.DeviceID),
		slog.String("device", session.Device.DisplayName))

	return session, nil
}

func (srv *sessionService) Rotate(ctx context.Context, input *usecase.RegisterSessionInput) (*entity.DeviceSession, error) {
	if input.PreviousRefreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenRevoked)
	}

	session, err := srv.replace(ctx, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Refresh token rotated",
		slog.String("userID", input.UserID.String()),
		slog.String("deviceID", session.DeviceID))

	return session, nil
}

// replace drops the pair's session and stores the new token hash in one transaction, so the
// previous refresh token stops verifying as soon as the new one is persisted. On rotation only the
// row still holding the previous hash is dropped: of two concurrent refreshes with the same token
// the second deletes nothing and is rejected.
func (srv *sessionService) replace(ctx context.Context, input *usecase.RegisterSessionInput) (*entity.DeviceSession, error) {
	deviceID := input.DeviceID
	if deviceID == "" {
		deviceID = srv.resolver.Fingerprint(input.Device)
	}

	now := srv.now()
	session := &entity.DeviceSession{
		ID:         uuid.New(),
		UserID:     input.UserID,
		DeviceID:   deviceID,
		TokenHash:  srv.hasher.Hash(input.RefreshToken),
		Device:     srv.resolver.Describe(input.Device),
		LastUsedAt: now,
		ExpiresAt:  now.Add(srv.ttl),
		CreatedAt:  now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.DeviceSessionRepo()

		if input.PreviousRefreshToken != "" {
			removed, err := sessionRepo.DeleteByToken(ctx, input.UserID, deviceID, srv.hasher.Hash(input.PreviousRefreshToken))
			if err != nil {
				return errors.Wrap(err, "failed to drop rotated device session")
			}
			if removed == 0 {
				srv.log(ctx).Warn("Refresh token already rotated by a concurrent request",
					slog.String("userID", input.UserID.String()),
					slog.String("deviceID", deviceID))

				return errors.WithStack(domainerrors.ErrRefreshTokenRevoked)
			}
		} else if _, err := sessionRepo.DeleteByUserAndDevice(ctx, input.UserID, deviceID); err != nil {
			return errors.Wrap(err, "failed to drop previous device session")
		}

		if err := sessionRepo.Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create device session")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrRefreshTokenRevoked) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to store device session")
	}

	return session, nil
}

func (srv *sessionService) Verify(ctx context.Context, userID uuid.UUID, deviceID, refreshToken string) error {
	session, err := srv.sessionRepo.FindByUserAndDevice(ctx, userID, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceSessionNotFound) {
			srv.log(ctx).Warn("Refresh token presented for unknown session",
				slog.String("userID", userID.String()),
				slog.String("deviceID", deviceID))

			return errors.WithStack(domainerrors.ErrRefreshTokenRevoked)
		}

		return errors.Wrap(err, "failed to find device session")
	}

	if session.IsExpired(srv.now()) {
		srv.log(ctx).Info("Refresh token presented for expired session",
			slog.String("userID", userID.String()),
			slog.String("deviceID", deviceID))

		return errors.WithStack(domainerrors.ErrRefreshTokenRevoked)
	}

	if !srv.hasher.Equal(refreshToken, session.TokenHash) {
		// A correctly signed token that no longer matches the stored hash has already been rotated.
		srv.log(ctx).Warn("Stale refresh token replayed",
			slog.String("userID", userID.String()),
			slog.String("deviceID", deviceID))

		return errors.WithStack(domainerrors.ErrRefreshTokenRevoked)
	}

	return nil
}

func (srv *sessionService) Revoke(ctx context.Context, userID uuid.UUID, deviceID string) error {
	removed, err := srv.sessionRepo.DeleteByUserAndDevice(ctx, userID, deviceID)
	if err != nil {
		return errors.Wrap(err, "failed to revoke device session")
	}

	srv.log(ctx).Info("Device session revoked",
		slog.String("userID", userID.String()),
		slog.String("deviceID", deviceID),
		slog.Int64("removed", removed))

	return nil
}

func (srv *sessionService) RevokeAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	removed, err := srv.sessionRepo.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke device sessions")
	}

	srv.log(ctx).Info("All device sessions revoked",
		slog.String("userID", userID.String()),
		slog.Int64("removed", removed))

	return removed, nil
}

func (srv *sessionService) List(ctx context.Context, userID uuid.UUID) ([]*usecase.SessionView, error) {
	sessions, err := srv.sessionRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device sessions")
	}

	views := make([]*usecase.SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, &usecase.SessionView{
			DeviceID:    session.DeviceID,
			DisplayName: session.Device.DisplayName,
			DeviceClass: session.Device.Class,
			LastUsedAt:  session.LastUsedAt,
			CreatedAt:   session.CreatedAt,
			ExpiresAt:   session.ExpiresAt,
		})
	}

	return views, nil
}
