package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/domain/repository"
	mockRepo "fitfamily/internal/mocks/repository"
	"fitfamily/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// foodLogServiceFixtures holds all test dependencies for food log service tests.
type foodLogServiceFixtures struct {
	service     usecase.FoodLogUsecase
	foodRepo    *mockRepo.MockFoodRepository
	foodLogRepo *mockRepo.MockFoodLogRepository
}

var fixedClock = time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC)

func createTestFoodLogService(t *testing.T) foodLogServiceFixtures {
	foodRepo := mockRepo.NewMockFoodRepository(t)
	foodLogRepo := mockRepo.NewMockFoodLogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFoodLogService(FoodLogServiceParams{
		FoodRepo:    foodRepo,
		FoodLogRepo: foodLogRepo,
		Logger:      logger,
	})
	service.(*foodLogService).now = func() time.Time { return fixedClock }

	return foodLogServiceFixtures{
		service:     service,
		foodRepo:    foodRepo,
		foodLogRepo: foodLogRepo,
	}
}

func chickenBreast() *entity.Food {
	return &entity.Food{
		ID:              uuid.New(),
		Name:            "Chicken Breast",
		CaloriesPer100g: 165,
		ProteinPer100g:  31,
		CarbsPer100g:    0,
		FatPer100g:      3.6,
	}
}

func TestFoodLogService_AddFoodLog_ComputesMacros(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	food := chickenBreast()
	portion := &entity.FoodPortion{
		ID:     uuid.New(),
		FoodID: food.ID,
		Label:  "1 piece (150g)",
		Grams:  150,
	}
	familyID := uuid.New()
	requester := &entity.User{ID: uuid.New(), FamilyID: &familyID}

	fx.foodRepo.EXPECT().FindByID(ctx, food.ID).Return(food, nil)
	fx.foodRepo.EXPECT().FindPortionByID(ctx, portion.ID).Return(portion, nil)

	var persisted *entity.FoodLog
	fx.foodLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodLog")).
		Run(func(_ context.Context, foodLog *entity.FoodLog) {
			foodLog.ID = uuid.New()
			persisted = foodLog
		}).
		Return(nil)

	output, err := fx.service.AddFoodLog(ctx, &usecase.AddFoodLogInput{
		FoodID:    food.ID,
		PortionID: portion.ID,
		MealType:  entity.MealTypeDinner,
	}, requester)
	require.NoError(t, err)

	// 150g of a per-100g food scales everything by 1.5.
	assert.InDelta(t, 247.5, output.Calories, 0.01)
	assert.InDelta(t, 46.5, output.Protein, 0.01)
	assert.InDelta(t, 0, output.Carbs, 0.01)
	assert.InDelta(t, 5.4, output.Fat, 0.01)
	assert.Equal(t, "Chicken Breast", output.FoodName)
	assert.Equal(t, "1 piece (150g)", output.Portion)
	assert.Equal(t, "DINNER", output.MealType)

	require.NotNil(t, persisted)
	assert.Equal(t, requester.ID, persisted.UserID)
	require.NotNil(t, persisted.FamilyID)
	assert.Equal(t, familyID, *persisted.FamilyID)
	// Dated by the server clock, truncated to the calendar date.
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), persisted.Date)
}

func TestFoodLogService_AddFoodLog_FoodVanishesBeforeInsert(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	food := chickenBreast()
	portion := &entity.FoodPortion{
		ID:     uuid.New(),
		FoodID: food.ID,
		Label:  "1 piece (150g)",
		Grams:  150,
	}
	requester := &entity.User{ID: uuid.New()}

	fx.foodRepo.EXPECT().FindByID(ctx, food.ID).Return(food, nil)
	fx.foodRepo.EXPECT().FindPortionByID(ctx, portion.ID).Return(portion, nil)

	// The food is deleted between validation and insert; the foreign key
	// surfaces it as a missing reference.
	fx.foodLogRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodLog")).
		Return(repository.ErrFoodNotFound)

	output, err := fx.service.AddFoodLog(ctx, &usecase.AddFoodLogInput{
		FoodID:    food.ID,
		PortionID: portion.ID,
		MealType:  entity.MealTypeDinner,
	}, requester)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodLogService_AddFoodLog_HundredGramPortionIsExact(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	food := chickenBreast()
	portion := &entity.FoodPortion{
		ID:     uuid.New(),
		FoodID: food.ID,
		Label:  "100g",
		Grams:  100,
	}

	fx.foodRepo.EXPECT().FindByID(ctx, food.ID).Return(food, nil)
	fx.foodRepo.EXPECT().FindPortionByID(ctx, portion.ID).Return(portion, nil)
	fx.foodLogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.FoodLog")).Return(nil)

	output, err := fx.service.AddFoodLog(ctx, &usecase.AddFoodLogInput{
		FoodID:    food.ID,
		PortionID: portion.ID,
		MealType:  entity.MealTypeLunch,
	}, &entity.User{ID: uuid.New()})
	require.NoError(t, err)
	assert.InDelta(t, 165.0, output.Calories, 0.01)
}

func TestFoodLogService_AddFoodLog_FoodNotFound(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	foodID := uuid.New()
	fx.foodRepo.EXPECT().FindByID(ctx, foodID).Return(nil, repository.ErrFoodNotFound)

	output, err := fx.service.AddFoodLog(ctx, &usecase.AddFoodLogInput{
		FoodID:    foodID,
		PortionID: uuid.New(),
		MealType:  entity.MealTypeBreakfast,
	}, &entity.User{ID: uuid.New()})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodLogService_AddFoodLog_PortionNotFound(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	food := chickenBreast()
	portionID := uuid.New()
	fx.foodRepo.EXPECT().FindByID(ctx, food.ID).Return(food, nil)
	fx.foodRepo.EXPECT().FindPortionByID(ctx, portionID).Return(nil, repository.ErrPortionNotFound)

	output, err := fx.service.AddFoodLog(ctx, &usecase.AddFoodLogInput{
		FoodID:    food.ID,
		PortionID: portionID,
		MealType:  entity.MealTypeBreakfast,
	}, &entity.User{ID: uuid.New()})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPortionNotFound)
}

func TestFoodLogService_AddFoodLog_PortionOfDifferentFood(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	food := chickenBreast()
	portion := &entity.FoodPortion{
		ID:     uuid.New(),
		FoodID: uuid.New(), // belongs to some other food
		Label:  "1 bowl",
		Grams:  200,
	}

	fx.foodRepo.EXPECT().FindByID(ctx, food.ID).Return(food, nil)
	fx.foodRepo.EXPECT().FindPortionByID(ctx, portion.ID).Return(portion, nil)

	output, err := fx.service.AddFoodLog(ctx, &usecase.AddFoodLogInput{
		FoodID:    food.ID,
		PortionID: portion.ID,
		MealType:  entity.MealTypeSnack,
	}, &entity.User{ID: uuid.New()})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPortion)
}

func TestFoodLogService_AddFoodLog_UnknownMealType(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	output, err := fx.service.AddFoodLog(ctx, &usecase.AddFoodLogInput{
		FoodID:    uuid.New(),
		PortionID: uuid.New(),
		MealType:  entity.MealType("BRUNCH"),
	}, &entity.User{ID: uuid.New()})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFoodLogService_DeleteFoodLog_Success(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	requester := &entity.User{ID: uuid.New()}
	logID := uuid.New()

	fx.foodLogRepo.EXPECT().
		FindByIDAndUser(ctx, logID, requester.ID).
		Return(&entity.FoodLog{ID: logID, UserID: requester.ID}, nil)
	fx.foodLogRepo.EXPECT().Delete(ctx, logID).Return(nil)

	err := fx.service.DeleteFoodLog(ctx, logID, requester)
	assert.NoError(t, err)
}

func TestFoodLogService_DeleteFoodLog_NotFoundOrForeign(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	requester := &entity.User{ID: uuid.New()}
	logID := uuid.New()

	// A log owned by someone else surfaces exactly like a missing one.
	fx.foodLogRepo.EXPECT().
		FindByIDAndUser(ctx, logID, requester.ID).
		Return(nil, repository.ErrFoodLogNotFound)

	err := fx.service.DeleteFoodLog(ctx, logID, requester)
	assert.ErrorIs(t, err, domainerrors.ErrLogNotFound)
}

func TestFoodLogService_DeleteFoodLog_SecondDeleteFails(t *testing.T) {
	fx := createTestFoodLogService(t)
	ctx := context.Background()

	requester := &entity.User{ID: uuid.New()}
	logID := uuid.New()

	fx.foodLogRepo.EXPECT().
		FindByIDAndUser(ctx, logID, requester.ID).
		Return(&entity.FoodLog{ID: logID, UserID: requester.ID}, nil).
		Once()
	fx.foodLogRepo.EXPECT().Delete(ctx, logID).Return(nil).Once()

	require.NoError(t, fx.service.DeleteFoodLog(ctx, logID, requester))

	fx.foodLogRepo.EXPECT().
		FindByIDAndUser(ctx, logID, requester.ID).
		Return(nil, repository.ErrFoodLogNotFound).
		Once()

	assert.ErrorIs(t, fx.service.DeleteFoodLog(ctx, logID, requester), domainerrors.ErrLogNotFound)
}
