package handler

import (
	"net/http"
	"time"

	"fitfamily/internal/delivery/http/middleware"
	domainerrors "fitfamily/internal/domain/errors"
	"fitfamily/internal/errors"
	"fitfamily/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandler serves daily and family nutrition summaries.
type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	now              func() time.Time
}

// DashboardHandlerParams contains the dependencies for DashboardHandler.
type DashboardHandlerParams struct {
	fx.In

	DashboardUsecase usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: params.DashboardUsecase,
		now:              time.Now,
	}
}

// Daily handles GET /dashboard/daily. The optional date query parameter is
// YYYY-MM-DD and defaults to today.
func (h *DashboardHandler) Daily(c echo.Context) error {
	date, err := h.parseDateParam(c)
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardUsecase.UserDailyDashboard(c.Request().Context(), middleware.CurrentUser(c), date)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// Family handles GET /dashboard/family.
func (h *DashboardHandler) Family(c echo.Context) error {
	date, err := h.parseDateParam(c)
	if err != nil {
		return err
	}

	dashboards, err := h.dashboardUsecase.FamilyDailyDashboard(c.Request().Context(), middleware.CurrentUser(c), date)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dashboards)
}

// parseDateParam reads the date query parameter. The default is the UTC
// calendar date, the same convention used when logs are stamped, so entries
// logged "now" always show up on the default dashboard regardless of the
// server's local zone.
func (h *DashboardHandler) parseDateParam(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return h.now().UTC(), nil
	}

	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithMessagef("Invalid date format: %s, expected YYYY-MM-DD", raw)
	}

	return date, nil
}
