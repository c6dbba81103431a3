package postgres

import (
	"context"
	"log/slog"

	"authcore/config"
	"authcore/internal/domain/lifecycle"
	"authcore/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool and registers its lifecycle: the primary is pinged on start and
// the maintenance loop runs until stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	base, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open auth store")
	}

	// Multi-step writes go through txManager.Execute, single statements need no implicit tx.
	db := base.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth store sql.DB")
	}

	m := newMaintenance(db, sqlDB, params.Logger)
	stopCtx, stop := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			pingCtx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping auth store")
			}
			params.Logger.Info("Auth store connected",
				slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections),
			)

			go m.run(stopCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}
