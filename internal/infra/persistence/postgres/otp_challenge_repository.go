package postgres

import (
	"context"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// otpChallengeRepository stores challenges in PostgreSQL. Rows outlive their expiry until the
// next issue or verify for the same key removes them.
type otpChallengeRepository struct {
	db *gorm.DB
}

// NewOtpChallengeRepository creates the PostgreSQL-backed challenge store.
func NewOtpChallengeRepository(db *gorm.DB) repository.OtpChallengeRepository {
	return &otpChallengeRepository{db: db}
}

func (repo *otpChallengeRepository) Create(ctx context.Context, challenge *entity.OtpChallenge) error {
	challengeM := fromOtpChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		if _, ok := uniqueViolation(err); ok {
			return domainerrors.ErrConflict.WrapMessage("otp challenge already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp challenge")
	}

	challenge.ID = challengeM.ID

	return nil
}

func (repo *otpChallengeRepository) FindByEmailAndPurpose(ctx context.Context, email string, purpose entity.OtpPurpose) (*entity.OtpChallenge, error) {
	var challengeM model.OtpChallengeModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, string(purpose)).
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find otp challenge")
	}

	return toOtpChallengeDomain(&challengeM), nil
}

// Update rewrites the mutable columns of the challenge identified by (email, purpose).
func (repo *otpChallengeRepository) Update(ctx context.Context, challenge *entity.OtpChallenge) error {
	challengeM := fromOtpChallengeDomain(challenge)

	result := repo.db.WithContext(ctx).
		Model(&model.OtpChallengeModel{}).
		Where("email = ? AND purpose = ?", challengeM.Email, challengeM.Purpose).
		Select("code_hash", "attempts", "pending_username", "pending_full_name", "pending_password_hash", "created_at", "expires_at").
		Updates(challengeM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update otp challenge")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOtpChallengeNotFound
	}

	return nil
}

// IncrementAttempts bumps the counter in a single statement so concurrent wrong guesses are all
// counted.
func (repo *otpChallengeRepository) IncrementAttempts(ctx context.Context, email string, purpose entity.OtpPurpose) (int, error) {
	var challengeM model.OtpChallengeModel

	result := repo.db.WithContext(ctx).
		Model(&challengeM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "attempts"}}}).
		Where("email = ? AND purpose = ?", email, string(purpose)).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment otp attempts")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrOtpChallengeNotFound
	}

	return challengeM.Attempts, nil
}

func (repo *otpChallengeRepository) Delete(ctx context.Context, email string, purpose entity.OtpPurpose) error {
	err := repo.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, string(purpose)).
		Delete(&model.OtpChallengeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete otp challenge")
	}

	return nil
}

func toOtpChallengeDomain(data *model.OtpChallengeModel) *entity.OtpChallenge {
	challenge := &entity.OtpChallenge{
		ID:        data.ID,
		Email:     data.Email,
		Purpose:   entity.OtpPurpose(data.Purpose),
		CodeHash:  data.CodeHash,
		Attempts:  data.Attempts,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}

	if data.PendingUsername != nil && data.PendingPasswordHash != nil {
		pending := &entity.PendingSignup{
			Username:     *data.PendingUsername,
			PasswordHash: *data.PendingPasswordHash,
		}
		if data.PendingFullName != nil {
			pending.FullName = *data.PendingFullName
		}
		challenge.PendingSignup = pending
	}

	return challenge
}

func fromOtpChallengeDomain(data *entity.OtpChallenge) *model.OtpChallengeModel {
	challengeM := &model.OtpChallengeModel{
		ID:        data.ID,
		Email:     data.Email,
		Purpose:   string(data.Purpose),
		CodeHash:  data.CodeHash,
		Attempts:  data.Attempts,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}

	if pending := data.PendingSignup; pending != nil {
		challengeM.PendingUsername = &pending.Username
		challengeM.PendingFullName = &pending.FullName
		challengeM.PendingPasswordHash = &pending.PasswordHash
	}

	return challengeM
}
