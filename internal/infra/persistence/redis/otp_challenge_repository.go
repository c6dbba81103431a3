package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const (
	otpKeyPrefix = "otp"

	// Optimistic transactions retry this many times when the key changes underneath them.
	maxWatchRetries = 5
)

type pendingRecord struct {
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	PasswordHash string `json:"passwordHash"`
}

type otpRecord struct {
	ID        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	Purpose   string         `json:"purpose"`
	CodeHash  string         `json:"codeHash"`
	Attempts  int            `json:"attempts"`
	Pending   *pendingRecord `json:"pending,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// otpChallengeRepository keeps one JSON record per (email, purpose) whose key TTL matches the
// challenge expiry.
type otpChallengeRepository struct {
	client goredis.UniversalClient
	now    func() time.Time
}

// NewOtpChallengeRepository creates the Redis-backed challenge store.
func NewOtpChallengeRepository(client goredis.UniversalClient) repository.OtpChallengeRepository {
	return &otpChallengeRepository{client: client, now: time.Now}
}

func otpKey(email string, purpose entity.OtpPurpose) string {
	return fmt.Sprintf("%s:%s:%s", otpKeyPrefix, purpose, email)
}

func (repo *otpChallengeRepository) ttl(expiresAt time.Time) time.Duration {
	ttl := expiresAt.Sub(repo.now())
	if ttl < time.Millisecond {
		return time.Millisecond
	}

	return ttl
}

func (repo *otpChallengeRepository) Create(ctx context.Context, challenge *entity.OtpChallenge) error {
	if challenge.ID == uuid.Nil {
		challenge.ID = uuid.New()
	}

	data, err := json.Marshal(toRecord(challenge))
	if err != nil {
		return errors.WithStack(err)
	}

	key := otpKey(challenge.Email, challenge.Purpose)
	created, err := repo.client.SetNX(ctx, key, data, repo.ttl(challenge.ExpiresAt)).Result()
	if err != nil {
		return errors.Wrap(err, "failed to store otp challenge")
	}
	if !created {
		return domainerrors.ErrConflict.WrapMessage("otp challenge already exists")
	}

	return nil
}

func (repo *otpChallengeRepository) FindByEmailAndPurpose(ctx context.Context, email string, purpose entity.OtpPurpose) (*entity.OtpChallenge, error) {
	data, err := repo.client.Get(ctx, otpKey(email, purpose)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrOtpChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to load otp challenge")
	}

	var record otpRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode otp challenge")
	}

	return toDomain(&record), nil
}

// Update overwrites an existing record and resets its TTL to the new expiry.
func (repo *otpChallengeRepository) Update(ctx context.Context, challenge *entity.OtpChallenge) error {
	data, err := json.Marshal(toRecord(challenge))
	if err != nil {
		return errors.WithStack(err)
	}

	key := otpKey(challenge.Email, challenge.Purpose)
	updated, err := repo.client.SetXX(ctx, key, data, repo.ttl(challenge.ExpiresAt)).Result()
	if err != nil {
		return errors.Wrap(err, "failed to update otp challenge")
	}
	if !updated {
		return repository.ErrOtpChallengeNotFound
	}

	return nil
}

// IncrementAttempts does a read-modify-write under WATCH so concurrent guesses are all counted.
// The key keeps its TTL.
func (repo *otpChallengeRepository) IncrementAttempts(ctx context.Context, email string, purpose entity.OtpPurpose) (int, error) {
	key := otpKey(email, purpose)
	attempts := 0

	txf := func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return err
		}

		var record otpRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return errors.Wrap(err, "failed to decode otp challenge")
		}
		record.Attempts++

		updated, err := json.Marshal(&record)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.SetArgs(ctx, key, updated, goredis.SetArgs{KeepTTL: true})

			return nil
		})
		if err != nil {
			return err
		}

		attempts = record.Attempts

		return nil
	}

	for range maxWatchRetries {
		err := repo.client.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return attempts, nil
		case errors.Is(err, goredis.TxFailedErr):
			continue
		case errors.Is(err, goredis.Nil):
			return 0, repository.ErrOtpChallengeNotFound
		default:
			return 0, errors.Wrap(err, "failed to increment otp attempts")
		}
	}

	return 0, errors.New("failed to increment otp attempts: too much contention")
}

func (repo *otpChallengeRepository) Delete(ctx context.Context, email string, purpose entity.OtpPurpose) error {
	if err := repo.client.Del(ctx, otpKey(email, purpose)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete otp challenge")
	}

	return nil
}

func toRecord(challenge *entity.OtpChallenge) *otpRecord {
	record := &otpRecord{
		ID:        challenge.ID,
		Email:     challenge.Email,
		Purpose:   string(challenge.Purpose),
		CodeHash:  challenge.CodeHash,
		Attempts:  challenge.Attempts,
		CreatedAt: challenge.CreatedAt,
		ExpiresAt: challenge.ExpiresAt,
	}
	if pending := challenge.PendingSignup; pending != nil {
		record.Pending = &pendingRecord{
			Username:     pending.Username,
			FullName:     pending.FullName,
			PasswordHash: pending.PasswordHash,
		}
	}

	return record
}

func toDomain(record *otpRecord) *entity.OtpChallenge {
	challenge := &entity.OtpChallenge{
		ID:        record.ID,
		Email:     record.Email,
		Purpose:   entity.OtpPurpose(record.Purpose),
		CodeHash:  record.CodeHash,
		Attempts:  record.Attempts,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}
	if pending := record.Pending; pending != nil {
		challenge.PendingSignup = &entity.PendingSignup{
			Username:     pending.Username,
			FullName:     pending.FullName,
			PasswordHash: pending.PasswordHash,
		}
	}

	return challenge
}
