package redis

import (
	"context"
	"time"

	"authcore/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const oauthStateKeyPrefix = "oauth_state:"

// oauthStateStore keeps each CSRF state as a key whose TTL is the state lifetime, so any API
// instance can complete a flow another instance started.
type oauthStateStore struct {
	client goredis.UniversalClient
}

// NewOAuthStateStore creates the Redis-backed OAuth state store.
func NewOAuthStateStore(client goredis.UniversalClient) service.OAuthStateStore {
	return &oauthStateStore{client: client}
}

func (s *oauthStateStore) Save(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, oauthStateKeyPrefix+state, 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store oauth state")
	}

	return nil
}

// Consume uses GETDEL so two callbacks racing on one state cannot both succeed.
func (s *oauthStateStore) Consume(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, oauthStateKeyPrefix+state).Err()
	switch {
	case errors.Is(err, goredis.Nil):
		return false, nil
	case err != nil:
		return false, errors.Wrap(err, "failed to consume oauth state")
	}

	return true, nil
}
