package handler

import (
	"net/http"

	"fitfamily/config"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	serviceName string
}

// HealthHandlerParams contains the dependencies for HealthHandler.
type HealthHandlerParams struct {
	fx.In

	Config *config.Config
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{serviceName: params.Config.Env.ServiceName}
}

// HealthResponse is the body of the liveness probe.
type HealthResponse struct {
	Status      string `json:"status"`
	Application string `json:"application"`
	Message     string `json:"message"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "UP",
		Application: h.serviceName,
		Message:     "Application is running",
	})
}
