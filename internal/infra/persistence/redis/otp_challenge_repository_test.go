package redis

import (
	"context"
	"sync"
	"testing"
	"time"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*otpChallengeRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := NewOtpChallengeRepository(client).(*otpChallengeRepository)
	repo.now = func() time.Time { return now }

	return repo, server
}

func signupChallenge(now time.Time) *entity.OtpChallenge {
	return &entity.OtpChallenge{
		Email:    "jane@example.com",
		Purpose:  entity.OtpPurposeSignup,
		CodeHash: "hash-1",
		PendingSignup: &entity.PendingSignup{
			Username:     "jane",
			FullName:     "Jane Doe",
			PasswordHash: "pw-hash",
		},
		CreatedAt: now,
		ExpiresAt: now.Add(10 * time.Minute),
	}
}

func TestOtpChallengeRepository_CreateAndFind(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()
	challenge := signupChallenge(repo.now())

	require.NoError(t, repo.Create(ctx, challenge))

	found, err := repo.FindByEmailAndPurpose(ctx, "jane@example.com", entity.OtpPurposeSignup)
	require.NoError(t, err)
	assert.Equal(t, challenge.ID, found.ID)
	assert.Equal(t, "hash-1", found.CodeHash)
	assert.Equal(t, 0, found.Attempts)
	require.NotNil(t, found.PendingSignup)
	assert.Equal(t, "jane", found.PendingSignup.Username)
	assert.True(t, challenge.ExpiresAt.Equal(found.ExpiresAt))

	assert.Equal(t, 10*time.Minute, server.TTL("otp:verification:jane@example.com"))
}

func TestOtpChallengeRepository_CreateConflict(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, signupChallenge(repo.now())))
	err := repo.Create(ctx, signupChallenge(repo.now()))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestOtpChallengeRepository_ExpiresNatively(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, signupChallenge(repo.now())))

	server.FastForward(10*time.Minute + time.Second)

	_, err := repo.FindByEmailAndPurpose(ctx, "jane@example.com", entity.OtpPurposeSignup)
	assert.True(t, errors.Is(err, repository.ErrOtpChallengeNotFound))
}

func TestOtpChallengeRepository_PurposesAreIndependent(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, signupChallenge(repo.now())))

	_, err := repo.FindByEmailAndPurpose(ctx, "jane@example.com", entity.OtpPurposeLogin)

	assert.True(t, errors.Is(err, repository.ErrOtpChallengeNotFound))
}

func TestOtpChallengeRepository_IncrementAttemptsKeepsTTL(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, signupChallenge(repo.now())))
	server.FastForward(time.Minute)

	attempts, err := repo.IncrementAttempts(ctx, "jane@example.com", entity.OtpPurposeSignup)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)

	attempts, err = repo.IncrementAttempts(ctx, "jane@example.com", entity.OtpPurposeSignup)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	assert.Equal(t, 9*time.Minute, server.TTL("otp:verification:jane@example.com"))
}

func TestOtpChallengeRepository_IncrementAttemptsConcurrent(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, signupChallenge(repo.now())))

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.IncrementAttempts(ctx, "jane@example.com", entity.OtpPurposeSignup)
		}()
	}
	wg.Wait()

	found, err := repo.FindByEmailAndPurpose(ctx, "jane@example.com", entity.OtpPurposeSignup)
	require.NoError(t, err)
	assert.Equal(t, 3, found.Attempts)
}

func TestOtpChallengeRepository_IncrementAttemptsMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.IncrementAttempts(context.Background(), "nobody@example.com", entity.OtpPurposeSignup)

	assert.True(t, errors.Is(err, repository.ErrOtpChallengeNotFound))
}

func TestOtpChallengeRepository_UpdateResetsTTL(t *testing.T) {
	repo, server := newTestRepository(t)
	ctx := context.Background()
	challenge := signupChallenge(repo.now())
	require.NoError(t, repo.Create(ctx, challenge))

	challenge.CodeHash = "hash-2"
	challenge.Attempts = 0
	challenge.ExpiresAt = repo.now().Add(5 * time.Minute)
	require.NoError(t, repo.Update(ctx, challenge))

	found, err := repo.FindByEmailAndPurpose(ctx, "jane@example.com", entity.OtpPurposeSignup)
	require.NoError(t, err)
	assert.Equal(t, "hash-2", found.CodeHash)
	assert.Equal(t, 5*time.Minute, server.TTL("otp:verification:jane@example.com"))
}

func TestOtpChallengeRepository_UpdateMissing(t *testing.T) {
	repo, _ := newTestRepository(t)

	err := repo.Update(context.Background(), signupChallenge(repo.now()))

	assert.True(t, errors.Is(err, repository.ErrOtpChallengeNotFound))
}

func TestOtpChallengeRepository_DeleteIsIdempotent(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, signupChallenge(repo.now())))

	require.NoError(t, repo.Delete(ctx, "jane@example.com", entity.OtpPurposeSignup))
	require.NoError(t, repo.Delete(ctx, "jane@example.com", entity.OtpPurposeSignup))

	_, err := repo.FindByEmailAndPurpose(ctx, "jane@example.com", entity.OtpPurposeSignup)
	assert.True(t, errors.Is(err, repository.ErrOtpChallengeNotFound))
}
