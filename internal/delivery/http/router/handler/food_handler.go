package handler

import (
	"net/http"

	"fitfamily/internal/errors"
	"fitfamily/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandler serves catalog lookups.
type FoodHandler struct {
	foodUsecase usecase.FoodUsecase
}

// FoodHandlerParams contains the dependencies for FoodHandler.
type FoodHandlerParams struct {
	fx.In

	FoodUsecase usecase.FoodUsecase
}

// NewFoodHandler is the constructor for FoodHandler.
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{foodUsecase: params.FoodUsecase}
}

// Search handles GET /foods/search. An empty query lists the whole catalog.
func (h *FoodHandler) Search(c echo.Context) error {
	foods, err := h.foodUsecase.SearchFoods(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, foods)
}
