package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"fitfamily/config"
	"fitfamily/internal/delivery/http/response"
	"fitfamily/internal/delivery/http/validator"
	domainerrors "fitfamily/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping the handlers onto structured bodies.
type ErrorMiddleware struct {
	logger       *slog.Logger
	isProduction bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:       logger,
		isProduction: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Validation failures surface the field-to-message map directly.
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		_ = c.JSON(http.StatusBadRequest, validationErrors)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.ErrorResponse{
			Status:  appErr.HTTPCode(),
			Error:   appErr.Label(),
			Message: appErr.Message(),
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, response.ErrorResponse{
			Status:  httpErr.Code,
			Error:   http.StatusText(httpErr.Code),
			Message: fmt.Sprintf("%v", httpErr.Message),
		})

		return
	}

	// Uncaught error: log with a tracking id so the log line can be found
	// from the client-visible response.
	trackingID := uuid.NewString()
	m.logger.Error("Unhandled error",
		slog.String("trackingId", trackingID),
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	message := "An unexpected error occurred"
	if !m.isProduction {
		message = err.Error()
	}

	_ = c.JSON(http.StatusInternalServerError, response.ErrorResponse{
		Status:     http.StatusInternalServerError,
		Error:      "Internal Server Error",
		Message:    message,
		TrackingID: trackingID,
	})
}
