package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"authcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	poolCheckInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	expiredSweepPeriod = 10 * time.Minute
)

// maintenance watches pool contention and removes expired challenges and sessions. Reads
// already ignore expired rows, so sweeping only keeps the tables small.
type maintenance struct {
	db     *gorm.DB
	stats  func() sql.DBStats
	logger *slog.Logger
	now    func() time.Time
}

func newMaintenance(db *gorm.DB, sqlDB *sql.DB, logger *slog.Logger) *maintenance {
	return &maintenance{
		db:     db,
		stats:  sqlDB.Stats,
		logger: logger,
		now:    time.Now,
	}
}

func (m *maintenance) run(ctx context.Context) {
	poolTicker := time.NewTicker(poolCheckInterval)
	defer poolTicker.Stop()
	sweepTicker := time.NewTicker(expiredSweepPeriod)
	defer sweepTicker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-poolTicker.C:
			cur := m.stats()
			if level, attrs, ok := poolWaitReport(prev, cur); ok {
				m.logger.LogAttrs(ctx, level, "Auth store pool wait", attrs...)
			}
			prev = cur
		case <-sweepTicker.C:
			if err := m.sweep(ctx); err != nil {
				m.logger.WarnContext(ctx, "Expired row sweep failed", slog.Any("error", err))
			}
		}
	}
}

// poolWaitReport describes the waits between two pool snapshots. ok is false when no caller
// had to wait for a connection.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	}, true
}

func (m *maintenance) sweep(ctx context.Context) error {
	now := m.now()

	challenges := m.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.OtpChallengeModel{})
	if challenges.Error != nil {
		return errors.Wrap(challenges.Error, "failed to delete expired otp challenges")
	}

	sessions := m.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.DeviceSessionModel{})
	if sessions.Error != nil {
		return errors.Wrap(sessions.Error, "failed to delete expired device sessions")
	}

	if challenges.RowsAffected > 0 || sessions.RowsAffected > 0 {
		m.logger.InfoContext(ctx, "Expired rows swept",
			slog.Int64("otpChallenges", challenges.RowsAffected),
			slog.Int64("deviceSessions", sessions.RowsAffected),
		)
	}

	return nil
}
