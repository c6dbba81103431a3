package main

import (
	"context"
	"log/slog"
	"os"

	"authcore/config"
	"authcore/internal/delivery"
	"authcore/internal/delivery/api"
	"authcore/internal/delivery/api/middleware"
	"authcore/internal/delivery/api/router/handler"
	"authcore/internal/domain/constants"
	"authcore/internal/domain/repository"
	"authcore/internal/domain/service"
	"authcore/internal/infra/auth"
	"authcore/internal/infra/auth/google"
	"authcore/internal/infra/device"
	logs "authcore/internal/infra/log"
	"authcore/internal/infra/mail"
	"authcore/internal/infra/persistence/postgres"
	"authcore/internal/infra/persistence/redis"
	"authcore/internal/infra/pubsub"
	"authcore/internal/usecase/impl"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newRedisClient,
		),
		pubsub.Module,
		mail.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceSessionRepository,
			postgres.NewTransactionManager,
			newOtpChallengeRepository,
		),
	)
}

// newRedisClient connects when redis.url is set or the OTP store requires Redis. A nil client
// means every volatile store stays local to this process.
func newRedisClient(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*goredis.Client, error) {
	configured := cfg.Redis != nil && cfg.Redis.URL != ""
	if !configured && cfg.OTP.Store != constants.OtpStoreRedis {
		return nil, nil
	}

	client, err := redis.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(client.Close))

	return client, nil
}

// newOtpChallengeRepository keeps challenges in Redis when otp.store says so, otherwise in PostgreSQL.
func newOtpChallengeRepository(
	cfg *config.Config,
	db *gorm.DB,
	client *goredis.Client,
	logger *slog.Logger,
) (repository.OtpChallengeRepository, error) {
	if cfg.OTP.Store != constants.OtpStoreRedis {
		return postgres.NewOtpChallengeRepository(db), nil
	}
	if client == nil {
		return nil, errors.New("otp.store is redis but no redis client is configured")
	}
	logger.Info("Using Redis OTP challenge store")

	return redis.NewOtpChallengeRepository(client), nil
}

// newOAuthStateStore shares OAuth states through Redis whenever a client exists so the callback
// may land on any instance.
func newOAuthStateStore(client *goredis.Client, logger *slog.Logger) service.OAuthStateStore {
	if client == nil {
		logger.Warn("Redis is not configured, OAuth states are kept in process memory")

		return google.NewMemoryStateStore()
	}

	return redis.NewOAuthStateStore(client)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOtpCodeService,
			auth.NewTokenHasher,
			device.NewResolver,
			newOAuthStateStore,
			google.NewProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOtpService,
			impl.NewSessionService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
