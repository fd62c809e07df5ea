package handler

import (
	"net/http"

	"fitfamily/internal/delivery/http/middleware"
	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/errors"
	"fitfamily/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodLogHandler serves consumption logging.
type FoodLogHandler struct {
	foodLogUsecase usecase.FoodLogUsecase
}

// FoodLogHandlerParams contains the dependencies for FoodLogHandler.
type FoodLogHandlerParams struct {
	fx.In

	FoodLogUsecase usecase.FoodLogUsecase
}

// NewFoodLogHandler is the constructor for FoodLogHandler.
func NewFoodLogHandler(params FoodLogHandlerParams) *FoodLogHandler {
	return &FoodLogHandler{foodLogUsecase: params.FoodLogUsecase}
}

// AddFoodLogRequest is the payload for POST /food-logs.
type AddFoodLogRequest struct {
	FoodID    uuid.UUID `json:"foodId" validate:"required"`
	PortionID uuid.UUID `json:"portionId" validate:"required"`
	MealType  string    `json:"mealType" validate:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
}

// AddFoodLogResponse is the created log entry with its computed macros.
type AddFoodLogResponse struct {
	ID       string  `json:"id"`
	FoodName string  `json:"foodName"`
	Portion  string  `json:"portion"`
	MealType string  `json:"mealType"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Message  string  `json:"message"`
}

// Add handles POST /food-logs.
func (h *FoodLogHandler) Add(c echo.Context) error {
	var req AddFoodLogRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.foodLogUsecase.AddFoodLog(c.Request().Context(), &usecase.AddFoodLogInput{
		FoodID:    req.FoodID,
		PortionID: req.PortionID,
		MealType:  entity.MealType(req.MealType),
	}, middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, AddFoodLogResponse{
		ID:       out.ID,
		FoodName: out.FoodName,
		Portion:  out.Portion,
		MealType: out.MealType,
		Calories: out.Calories,
		Protein:  out.Protein,
		Carbs:    out.Carbs,
		Fat:      out.Fat,
		Message:  "Food logged successfully!",
	})
}

// Delete handles DELETE /food-logs/:id.
func (h *FoodLogHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessagef("Invalid food log id: %s", c.Param("id"))
	}

	if err := h.foodLogUsecase.DeleteFoodLog(c.Request().Context(), id, middleware.CurrentUser(c)); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
