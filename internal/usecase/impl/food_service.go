package impl

import (
	"context"
	"log/slog"

	"fitfamily/internal/domain/entity"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// foodService implements the FoodUsecase interface.
type foodService struct {
	foodRepo repository.FoodRepository
	logger   *slog.Logger
}

// FoodServiceParams holds dependencies for foodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	FoodRepo repository.FoodRepository
	Logger   *slog.Logger
}

// NewFoodService is the constructor for foodService.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		foodRepo: params.FoodRepo,
		logger:   params.Logger,
	}
}

// SearchFoods returns catalog foods whose name contains the query.
// An empty result is a valid outcome, not an error.
func (srv *foodService) SearchFoods(ctx context.Context, query string) ([]*usecase.FoodOutput, error) {
	foods, err := srv.foodRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search foods")
	}

	results := make([]*usecase.FoodOutput, 0, len(foods))
	for _, food := range foods {
		results = append(results, toFoodOutput(food))
	}

	return results, nil
}

func toFoodOutput(food *entity.Food) *usecase.FoodOutput {
	out := &usecase.FoodOutput{
		ID:       food.ID,
		Name:     food.Name,
		Portions: make([]*usecase.FoodPortionOutput, 0, len(food.Portions)),
	}
	for _, portion := range food.Portions {
		out.Portions = append(out.Portions, &usecase.FoodPortionOutput{
			ID:    portion.ID,
			Label: portion.Label,
		})
	}

	return out
}
