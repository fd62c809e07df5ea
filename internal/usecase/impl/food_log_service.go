package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitfamily/internal/delivery/context"
	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// foodLogService implements the FoodLogUsecase interface.
type foodLogService struct {
	foodRepo    repository.FoodRepository
	foodLogRepo repository.FoodLogRepository
	logger      *slog.Logger
	now         func() time.Time
}

// FoodLogServiceParams holds dependencies for foodLogService, injected by Fx.
type FoodLogServiceParams struct {
	fx.In

	FoodRepo    repository.FoodRepository
	FoodLogRepo repository.FoodLogRepository
	Logger      *slog.Logger
}

// NewFoodLogService is the constructor for foodLogService.
func NewFoodLogService(params FoodLogServiceParams) usecase.FoodLogUsecase {
	return &foodLogService{
		foodRepo:    params.FoodRepo,
		foodLogRepo: params.FoodLogRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *foodLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFoodLog records a consumption event. Macros are computed from the
// catalog's per-100g values scaled by the portion weight, and the entry is
// dated with the server clock, never caller input.
func (srv *foodLogService) AddFoodLog(ctx context.Context, input *usecase.AddFoodLogInput, requester *entity.User) (*usecase.FoodLogOutput, error) {
	if !input.MealType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("unknown meal type: %s", input.MealType)
	}

	food, err := srv.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food")
	}

	portion, err := srv.foodRepo.FindPortionByID(ctx, input.PortionID)
	if err != nil {
		if errors.Is(err, repository.ErrPortionNotFound) {
			return nil, domainerrors.ErrPortionNotFound
		}

		return nil, errors.Wrap(err, "failed to find food portion")
	}

	if portion.FoodID != food.ID {
		return nil, domainerrors.ErrInvalidPortion
	}

	multiplier := portion.Grams / 100.0
	foodLog := &entity.FoodLog{
		UserID:    requester.ID,
		FamilyID:  requester.FamilyID,
		FoodID:    food.ID,
		PortionID: portion.ID,
		Calories:  food.CaloriesPer100g * multiplier,
		Protein:   food.ProteinPer100g * multiplier,
		Carbs:     food.CarbsPer100g * multiplier,
		Fat:       food.FatPer100g * multiplier,
		MealType:  input.MealType,
		Date:      calendarDate(srv.now()),
	}

	if err := srv.foodLogRepo.Create(ctx, foodLog); err != nil {
		// The catalog rows were validated above; a missing reference at
		// insert time means the food was deleted in between.
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to create food log")
	}

	srv.log(ctx).Info("Food logged",
		slog.String("userID", requester.ID.String()),
		slog.String("food", food.Name),
		slog.String("mealType", input.MealType.String()),
	)

	return &usecase.FoodLogOutput{
		ID:       foodLog.ID.String(),
		FoodName: food.Name,
		Portion:  portion.Label,
		MealType: foodLog.MealType.String(),
		Calories: foodLog.Calories,
		Protein:  foodLog.Protein,
		Carbs:    foodLog.Carbs,
		Fat:      foodLog.Fat,
	}, nil
}

// DeleteFoodLog removes a log entry owned by the requester. A log owned by
// another user produces the same not-found error as a missing one.
func (srv *foodLogService) DeleteFoodLog(ctx context.Context, id uuid.UUID, requester *entity.User) error {
	foodLog, err := srv.foodLogRepo.FindByIDAndUser(ctx, id, requester.ID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodLogNotFound) {
			return domainerrors.ErrLogNotFound
		}

		return errors.Wrap(err, "failed to find food log")
	}

	if err := srv.foodLogRepo.Delete(ctx, foodLog.ID); err != nil {
		if errors.Is(err, repository.ErrFoodLogNotFound) {
			return domainerrors.ErrLogNotFound
		}

		return errors.Wrap(err, "failed to delete food log")
	}

	srv.log(ctx).Info("Food log deleted",
		slog.String("userID", requester.ID.String()),
		slog.String("logID", id.String()),
	)

	return nil
}

// calendarDate truncates a timestamp to its calendar date.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
