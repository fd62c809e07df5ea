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

// familyRepository implements the repository.FamilyRepository interface using GORM.
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository is the constructor for familyRepository.
func NewFamilyRepository(db *gorm.DB) repository.FamilyRepository {
	return &familyRepository{db: db}
}

// FindByID retrieves a single family by its unique ID.
func (r *familyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Family, error) {
	var familyModel model.FamilyModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&familyModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFamilyNotFound
		}

		return nil, errors.Wrap(err, "failed to find family by id")
	}

	return familyModel.ToEntity(), nil
}

// FindByJoinCode retrieves a single family by its join code.
func (r *familyRepository) FindByJoinCode(ctx context.Context, joinCode string) (*entity.Family, error) {
	var familyModel model.FamilyModel
	err := r.db.WithContext(ctx).
		Where("join_code = ?", joinCode).
		First(&familyModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFamilyNotFound
		}

		return nil, errors.Wrap(err, "failed to find family by join code")
	}

	return familyModel.ToEntity(), nil
}

// Create persists a new family. A join code collision surfaces as
// repository.ErrJoinCodeTaken so the caller can redraw and retry.
func (r *familyRepository) Create(ctx context.Context, family *entity.Family) error {
	familyModel := model.FamilyModelFromEntity(family)
	if err := r.db.WithContext(ctx).Create(familyModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrJoinCodeTaken
		}

		return errors.Wrap(err, "failed to create family")
	}

	family.ID = familyModel.ID
	family.CreatedAt = familyModel.CreatedAt
	family.UpdatedAt = familyModel.UpdatedAt

	return nil
}
