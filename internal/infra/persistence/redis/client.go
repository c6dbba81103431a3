// Package redis stores volatile auth state in Redis, where expiry is native to the key.
package redis

import (
	"context"
	"log/slog"
	"time"

	"authcore/config"
	"authcore/internal/domain/lifecycle"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	dialTimeout     = 3 * time.Second
	readTimeout     = 2 * time.Second
	writeTimeout    = 2 * time.Second
	defaultPoolSize = 10
)

// NewClient parses the configured URL and verifies connectivity before returning.
func NewClient(ctx context.Context, cfg *config.RedisConfig, logger *slog.Logger) (*goredis.Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("redis url is required")
	}

	options, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}

	options.PoolSize = cfg.PoolSize
	if options.PoolSize <= 0 {
		options.PoolSize = defaultPoolSize
	}
	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := goredis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "failed to ping redis")
	}

	logger.Info("Redis client connected",
		slog.String("addr", options.Addr),
		slog.Int("poolSize", options.PoolSize),
	)

	return client, nil
}
