// Package seed migrates the schema and populates the food catalog on startup.
package seed

import (
	"context"
	"log/slog"

	"fitfamily/internal/domain/entity"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/errors"
	"fitfamily/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Seeder prepares the database schema and the built-in food catalog.
type Seeder struct {
	db       *gorm.DB
	foodRepo repository.FoodRepository
	logger   *slog.Logger
}

// NewSeeder is the constructor for Seeder.
func NewSeeder(db *gorm.DB, foodRepo repository.FoodRepository, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:       db,
		foodRepo: foodRepo,
		logger:   logger,
	}
}

// Run migrates the schema and seeds the catalog when it is empty.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.migrate(ctx); err != nil {
		return err
	}

	return s.seedFoods(ctx)
}

func (s *Seeder) migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&model.FamilyModel{},
		&model.UserModel{},
		&model.FoodModel{},
		&model.FoodPortionModel{},
		&model.FoodLogModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// seedFoods inserts the built-in catalog. Presence of any food marks the
// catalog as seeded, so partial edits by operators are left alone.
func (s *Seeder) seedFoods(ctx context.Context) error {
	count, err := s.foodRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check food catalog")
	}
	if count > 0 {
		s.logger.InfoContext(ctx, "food catalog already seeded", slog.Int64("count", count))

		return nil
	}

	for _, food := range catalogFoods() {
		if err := s.foodRepo.Create(ctx, food); err != nil {
			return errors.Wrapf(err, "failed to seed food %q", food.Name)
		}
	}

	s.logger.InfoContext(ctx, "food catalog seeded", slog.Int("count", len(catalogFoods())))

	return nil
}

func catalogFoods() []*entity.Food {
	return []*entity.Food{
		{
			Name:            "Rice",
			CaloriesPer100g: 130,
			ProteinPer100g:  2.7,
			CarbsPer100g:    28.2,
			FatPer100g:      0.3,
			Portions: []*entity.FoodPortion{
				{Label: "100g", Grams: 100},
				{Label: "1 cup (cooked)", Grams: 158},
				{Label: "1 bowl", Grams: 200},
				{Label: "1 serving", Grams: 150},
			},
		},
		{
			Name:            "Chapati",
			CaloriesPer100g: 297,
			ProteinPer100g:  9.6,
			CarbsPer100g:    50.8,
			FatPer100g:      6.1,
			Portions: []*entity.FoodPortion{
				{Label: "1 small (40g)", Grams: 40},
				{Label: "1 medium (50g)", Grams: 50},
				{Label: "1 large (60g)", Grams: 60},
			},
		},
		{
			Name:            "Chicken Breast",
			CaloriesPer100g: 165,
			ProteinPer100g:  31,
			CarbsPer100g:    0,
			FatPer100g:      3.6,
			Portions: []*entity.FoodPortion{
				{Label: "100g", Grams: 100},
				{Label: "1 piece (150g)", Grams: 150},
				{Label: "1 serving (200g)", Grams: 200},
			},
		},
	}
}
