package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "fitfamily/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_InvalidIDRejectedBeforeUsecase(t *testing.T) {
	handler := &FoodLogHandler{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/food-logs/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Delete(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
