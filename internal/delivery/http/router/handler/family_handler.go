package handler

import (
	"net/http"

	"fitfamily/internal/delivery/http/middleware"
	"fitfamily/internal/errors"
	"fitfamily/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FamilyHandler serves family creation, joining, and lookup.
type FamilyHandler struct {
	familyUsecase usecase.FamilyUsecase
}

// FamilyHandlerParams contains the dependencies for FamilyHandler.
type FamilyHandlerParams struct {
	fx.In

	FamilyUsecase usecase.FamilyUsecase
}

// NewFamilyHandler is the constructor for FamilyHandler.
func NewFamilyHandler(params FamilyHandlerParams) *FamilyHandler {
	return &FamilyHandler{familyUsecase: params.FamilyUsecase}
}

// CreateFamilyRequest is the payload for POST /families.
type CreateFamilyRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateFamilyResponse is the body returned on successful creation.
type CreateFamilyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"joinCode"`
	Message  string `json:"message"`
}

// Create handles POST /families.
func (h *FamilyHandler) Create(c echo.Context) error {
	var req CreateFamilyRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.familyUsecase.CreateFamily(c.Request().Context(), req.Name, middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, CreateFamilyResponse{
		ID:       out.ID,
		Name:     out.Name,
		JoinCode: out.JoinCode,
		Message:  "Family created successfully! Share the join code with your family members.",
	})
}

// JoinFamilyRequest is the payload for POST /families/join.
type JoinFamilyRequest struct {
	JoinCode string `json:"joinCode" validate:"required,joincode"`
}

// JoinFamilyResponse is the body returned on successful join.
type JoinFamilyResponse struct {
	FamilyID   string `json:"familyId"`
	FamilyName string `json:"familyName"`
	Role       string `json:"role"`
	Message    string `json:"message"`
}

// Join handles POST /families/join.
func (h *FamilyHandler) Join(c echo.Context) error {
	var req JoinFamilyRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.familyUsecase.JoinFamily(c.Request().Context(), req.JoinCode, middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, JoinFamilyResponse{
		FamilyID:   out.FamilyID,
		FamilyName: out.FamilyName,
		Role:       out.Role,
		Message:    "Successfully joined the family!",
	})
}

// MyFamily handles GET /families/me.
func (h *FamilyHandler) MyFamily(c echo.Context) error {
	out, err := h.familyUsecase.GetMyFamily(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, out)
}

// JoinCodeQR handles GET /families/me/qrcode.
func (h *FamilyHandler) JoinCodeQR(c echo.Context) error {
	png, err := h.familyUsecase.JoinCodeQR(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
