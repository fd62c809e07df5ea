package postgres

import (
	"context"
	"time"

	"fitfamily/internal/domain/entity"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/errors"
	"fitfamily/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// foodLogRepository implements the repository.FoodLogRepository interface using GORM.
type foodLogRepository struct {
	db *gorm.DB
}

// NewFoodLogRepository is the constructor for foodLogRepository.
func NewFoodLogRepository(db *gorm.DB) repository.FoodLogRepository {
	return &foodLogRepository{db: db}
}

// Create persists a new food log entry.
func (r *foodLogRepository) Create(ctx context.Context, log *entity.FoodLog) error {
	logModel := model.FoodLogModelFromEntity(log)
	if err := r.db.WithContext(ctx).Create(logModel).Error; err != nil {
		// The food or portion was validated before the insert, so a foreign
		// key violation means it vanished in between.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFoodNotFound
		}

		return errors.Wrap(err, "failed to create food log")
	}

	log.ID = logModel.ID
	log.CreatedAt = logModel.CreatedAt

	return nil
}

// FindByIDAndUser retrieves a log matching both id and owner in a single
// query. A log owned by someone else is reported as not found.
func (r *foodLogRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.FoodLog, error) {
	var logModel model.FoodLogModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&logModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find food log")
	}

	return logModel.ToEntity(), nil
}

// Delete permanently removes a food log entry.
func (r *foodLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FoodLogModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete food log")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodLogNotFound
	}

	return nil
}

// FindByUserAndDate retrieves all logs for a user on a calendar date.
func (r *foodLogRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodLog, error) {
	var logModels []*model.FoodLogModel
	err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Portion").
		Where("user_id = ? AND date = ?", userID, date.Format(time.DateOnly)).
		Order("created_at ASC").
		Find(&logModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find food logs by user and date")
	}

	return toFoodLogEntities(logModels), nil
}

// FindByFamilyAndDate retrieves all logs snapshotted to a family on a calendar date.
func (r *foodLogRepository) FindByFamilyAndDate(ctx context.Context, familyID uuid.UUID, date time.Time) ([]*entity.FoodLog, error) {
	var logModels []*model.FoodLogModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Food").
		Preload("Portion").
		Where("family_id = ? AND date = ?", familyID, date.Format(time.DateOnly)).
		Order("created_at ASC").
		Find(&logModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find food logs by family and date")
	}

	return toFoodLogEntities(logModels), nil
}

func toFoodLogEntities(logModels []*model.FoodLogModel) []*entity.FoodLog {
	logs := make([]*entity.FoodLog, 0, len(logModels))
	for _, logModel := range logModels {
		logs = append(logs, logModel.ToEntity())
	}

	return logs
}
