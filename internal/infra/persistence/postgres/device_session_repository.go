package postgres

import (
	"context"
	"time"

	"authcore/internal/domain/entity"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/repository"
	"authcore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceSessionRepository implements the domain.DeviceSessionRepository interface.
type deviceSessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDeviceSessionRepository is the constructor for deviceSessionRepository.
func NewDeviceSessionRepository(db *gorm.DB) repository.DeviceSessionRepository {
	return &deviceSessionRepository{db: db, now: time.Now}
}

func (repo *deviceSessionRepository) Create(ctx context.Context, session *entity.DeviceSession) error {
	sessionM := fromDeviceSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == model.IdxDeviceSessionsTokenHash {
				return domainerrors.ErrConflict.WrapMessage("refresh token already bound to a session")
			}

			return domainerrors.ErrConflict.WrapMessage("device session already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

func (repo *deviceSessionRepository) FindByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.DeviceSession, error) {
	var sessionM model.DeviceSessionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find device session")
	}

	return toDeviceSessionDomain(&sessionM), nil
}

func (repo *deviceSessionRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceSession, error) {
	var sessionModels []*model.DeviceSessionModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, repo.now()).
		Order("last_used_at DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device sessions")
	}

	sessions := make([]*entity.DeviceSession, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toDeviceSessionDomain(sessionM))
	}

	return sessions, nil
}

func (repo *deviceSessionRepository) DeleteByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Delete(&model.DeviceSessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device session")
	}

	return result.RowsAffected, nil
}

func (repo *deviceSessionRepository) DeleteByToken(ctx context.Context, userID uuid.UUID, deviceID, tokenHash string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ? AND token_hash = ?", userID, deviceID, tokenHash).
		Delete(&model.DeviceSessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rotated device session")
	}

	return result.RowsAffected, nil
}

func (repo *deviceSessionRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.DeviceSessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device sessions")
	}

	return result.RowsAffected, nil
}

func toDeviceSessionDomain(data *model.DeviceSessionModel) *entity.DeviceSession {
	return &entity.DeviceSession{
		ID:        data.ID,
		UserID:    data.UserID,
		DeviceID:  data.DeviceID,
		TokenHash: data.TokenHash,
		Device: entity.DeviceInfo{
			DisplayName: data.DeviceName,
			Class:       entity.DeviceClass(data.DeviceClass),
			UserAgent:   data.UserAgent,
			IP:          data.IPAddress,
		},
		LastUsedAt: data.LastUsedAt,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromDeviceSessionDomain(data *entity.DeviceSession) *model.DeviceSessionModel {
	return &model.DeviceSessionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		DeviceID:    data.DeviceID,
		TokenHash:   data.TokenHash,
		DeviceName:  data.Device.DisplayName,
		DeviceClass: string(data.Device.Class),
		UserAgent:   data.Device.UserAgent,
		IPAddress:   data.Device.IP,
		LastUsedAt:  data.LastUsedAt,
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
	}
}
