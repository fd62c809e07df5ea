package usecase

import (
	"context"

	"github.com/google/uuid"
)

// FoodPortionOutput is a portion option offered for a food.
type FoodPortionOutput struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// FoodOutput is a catalog food with its portion options.
type FoodOutput struct {
	ID       uuid.UUID            `json:"id"`
	Name     string               `json:"name"`
	Portions []*FoodPortionOutput `json:"portions"`
}

// FoodUsecase defines the interface for browsing the food catalog.
type FoodUsecase interface {
	SearchFoods(ctx context.Context, query string) ([]*FoodOutput, error)
}
