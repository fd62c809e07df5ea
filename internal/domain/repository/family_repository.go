package repository

import (
	"context"
	"errors"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFamilyNotFound is returned when no family matches the lookup.
var ErrFamilyNotFound = errors.New("family not found")

// ErrJoinCodeTaken is returned by Create when the generated join code collides
// with an existing family. The unique constraint on join_code is the source of
// truth, so callers retry with a fresh code instead of pre-checking.
var ErrJoinCodeTaken = errors.New("join code already taken")

// FamilyRepository defines the standard operations for family persistence.
type FamilyRepository interface {
	// FindByID retrieves a single family by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Family, error)

	// FindByJoinCode retrieves a single family by its join code.
	FindByJoinCode(ctx context.Context, joinCode string) (*entity.Family, error)

	// Create persists a new family. Returns ErrJoinCodeTaken when the join
	// code collides with an existing family.
	Create(ctx context.Context, family *entity.Family) error
}
