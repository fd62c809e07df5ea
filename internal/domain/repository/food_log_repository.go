package repository

import (
	"context"
	"errors"
	"time"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFoodLogNotFound is returned when no food log matches the lookup. Lookups
// scoped by owner return this same error for logs owned by someone else.
var ErrFoodLogNotFound = errors.New("food log not found")

// FoodLogRepository defines the standard operations for food log persistence.
type FoodLogRepository interface {
	// Create persists a new food log entry.
	Create(ctx context.Context, log *entity.FoodLog) error

	// FindByIDAndUser retrieves a log matching both the given id and owner in
	// a single query, so a foreign log is indistinguishable from a missing one.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.FoodLog, error)

	// Delete permanently removes a food log entry.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByUserAndDate retrieves all logs for a user on a calendar date,
	// with food and portion attached, in insertion order.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodLog, error)

	// FindByFamilyAndDate retrieves all logs snapshotted to a family on a
	// calendar date, with owner, food and portion attached.
	FindByFamilyAndDate(ctx context.Context, familyID uuid.UUID, date time.Time) ([]*entity.FoodLog, error)
}
