package usecase

import (
	"context"

	"fitfamily/internal/domain/entity"

	"github.com/google/uuid"
)

// AddFoodLogInput defines the data required to log a consumption event.
type AddFoodLogInput struct {
	FoodID    uuid.UUID
	PortionID uuid.UUID
	MealType  entity.MealType
}

// FoodLogOutput returns the created log entry with its computed macros.
type FoodLogOutput struct {
	ID       string  `json:"id"`
	FoodName string  `json:"foodName"`
	Portion  string  `json:"portion"`
	MealType string  `json:"mealType"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodLogUsecase defines the interface for recording and removing consumption events.
type FoodLogUsecase interface {
	AddFoodLog(ctx context.Context, input *AddFoodLogInput, requester *entity.User) (*FoodLogOutput, error)
	DeleteFoodLog(ctx context.Context, id uuid.UUID, requester *entity.User) error
}
