package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitfamily/config"
	"fitfamily/internal/delivery/http/response"
	"fitfamily/internal/delivery/http/validator"
	domainerrors "fitfamily/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/food-logs", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware(env string) *ErrorMiddleware {
	cfg := &config.Config{}
	cfg.Env.Env = env

	return NewErrorMiddleware(slog.Default(), cfg)
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := newTestErrorMiddleware("local")
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrFoodNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, domainerrors.ErrFoodNotFound.Label(), body.Error)
	assert.Equal(t, domainerrors.ErrFoodNotFound.Message(), body.Message)
	assert.Empty(t, body.TrackingID)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	m := newTestErrorMiddleware("local")
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrInvalidToken), c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, domainerrors.ErrInvalidToken.Label(), body.Error)
}

func TestHandleHTTPError_ValidationErrors(t *testing.T) {
	m := newTestErrorMiddleware("local")
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(validator.ValidationErrors{
		"email":    "Please provide a valid email address",
		"password": "Must be at least 6 characters",
	}, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Equal(t, "Please provide a valid email address", fields["email"])
	assert.Equal(t, "Must be at least 6 characters", fields["password"])
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware("local")
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, http.StatusMethodNotAllowed, body.Status)
}

func TestHandleHTTPError_UncaughtErrorExposesDetailOutsideProduction(t *testing.T) {
	m := newTestErrorMiddleware("local")
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "connection refused", body.Message)
	assert.NotEmpty(t, body.TrackingID)
}

func TestHandleHTTPError_UncaughtErrorHidesDetailInProduction(t *testing.T) {
	m := newTestErrorMiddleware("prod")
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "An unexpected error occurred", body.Message)
	assert.NotContains(t, body.Message, "connection refused")
	assert.NotEmpty(t, body.TrackingID)
}
