package postgres

import (
	"context"

	"fitfamily/internal/domain/entity"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/errors"
	"fitfamily/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// foodRepository implements the repository.FoodRepository interface using GORM.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{db: db}
}

// FindByID retrieves a single food with its portions.
func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodModel model.FoodModel
	err := r.db.WithContext(ctx).
		Preload("Portions").
		Where("id = ?", id).
		First(&foodModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by id")
	}

	return foodModel.ToEntity(), nil
}

// FindPortionByID retrieves a single portion by its unique ID.
func (r *foodRepository) FindPortionByID(ctx context.Context, id uuid.UUID) (*entity.FoodPortion, error) {
	var portionModel model.FoodPortionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&portionModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPortionNotFound
		}

		return nil, errors.Wrap(err, "failed to find food portion by id")
	}

	return portionModel.ToEntity(), nil
}

// SearchByName retrieves all foods whose name contains the query, case-insensitively.
func (r *foodRepository) SearchByName(ctx context.Context, query string) ([]*entity.Food, error) {
	var foodModels []*model.FoodModel
	err := r.db.WithContext(ctx).
		Preload("Portions").
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&foodModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search foods by name")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodModel := range foodModels {
		foods = append(foods, foodModel.ToEntity())
	}

	return foods, nil
}

// Count returns the number of foods in the catalog.
func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.FoodModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count foods")
	}

	return count, nil
}

// Create persists a food together with its portions.
func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodModel := model.FoodModelFromEntity(food)
	if err := r.db.WithContext(ctx).Create(foodModel).Error; err != nil {
		return errors.Wrap(err, "failed to create food")
	}

	food.ID = foodModel.ID
	food.CreatedAt = foodModel.CreatedAt
	for i, portionModel := range foodModel.Portions {
		food.Portions[i].ID = portionModel.ID
		food.Portions[i].FoodID = portionModel.FoodID
	}

	return nil
}
