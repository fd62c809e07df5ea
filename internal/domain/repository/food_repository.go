package repository

import (
	"context"
	"errors"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFoodNotFound is returned when no food matches the lookup.
var ErrFoodNotFound = errors.New("food not found")

// ErrPortionNotFound is returned when no food portion matches the lookup.
var ErrPortionNotFound = errors.New("food portion not found")

// FoodRepository defines read access to the seeded food catalog, plus the
// create operations used by the one-time seeding step.
type FoodRepository interface {
	// FindByID retrieves a single food by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// FindPortionByID retrieves a single portion by its unique ID.
	FindPortionByID(ctx context.Context, id uuid.UUID) (*entity.FoodPortion, error)

	// SearchByName retrieves all foods whose name contains the query,
	// case-insensitively, with their portions attached.
	SearchByName(ctx context.Context, query string) ([]*entity.Food, error)

	// Count returns the number of foods in the catalog.
	Count(ctx context.Context) (int64, error)

	// Create persists a food together with its portions. Seeding only.
	Create(ctx context.Context, food *entity.Food) error
}
