package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitfamily/internal/domain/entity"
	domainerrors "fitfamily/internal/domain/errors"
	mockusecase "fitfamily/internal/mocks/usecase"
	"fitfamily/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDashboardContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestDaily_DefaultDateIsUTCCalendarDate(t *testing.T) {
	dashboardUsecase := mockusecase.NewMockDashboardUsecase(t)

	// 01:30 on March 15 in a UTC+13 zone is still March 14 in UTC, the date
	// entries logged at that instant are stamped with.
	clock := time.Date(2026, 3, 15, 1, 30, 0, 0, time.FixedZone("UTC+13", 13*60*60))
	handler := &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		now:              func() time.Time { return clock },
	}

	var queried time.Time
	dashboardUsecase.EXPECT().
		UserDailyDashboard(mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ *entity.User, date time.Time) {
			queried = date
		}).
		Return(&usecase.DailyDashboard{Date: "2026-03-14"}, nil)

	c, rec := newDashboardContext(t, "/dashboard/daily")

	require.NoError(t, handler.Daily(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-03-14", queried.Format(time.DateOnly))
	assert.Equal(t, time.UTC, queried.Location())
}

func TestDaily_ExplicitDateParam(t *testing.T) {
	dashboardUsecase := mockusecase.NewMockDashboardUsecase(t)
	handler := &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		now:              time.Now,
	}

	expected := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	dashboardUsecase.EXPECT().
		UserDailyDashboard(mock.Anything, mock.Anything, expected).
		Return(&usecase.DailyDashboard{Date: "2026-03-10"}, nil)

	c, rec := newDashboardContext(t, "/dashboard/daily?date=2026-03-10")

	require.NoError(t, handler.Daily(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDaily_MalformedDateParam(t *testing.T) {
	handler := &DashboardHandler{now: time.Now}

	c, _ := newDashboardContext(t, "/dashboard/daily?date=03-10-2026")

	err := handler.Daily(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFamily_DefaultDateIsUTCCalendarDate(t *testing.T) {
	dashboardUsecase := mockusecase.NewMockDashboardUsecase(t)

	clock := time.Date(2026, 3, 15, 1, 30, 0, 0, time.FixedZone("UTC+13", 13*60*60))
	handler := &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		now:              func() time.Time { return clock },
	}

	var queried time.Time
	dashboardUsecase.EXPECT().
		FamilyDailyDashboard(mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, _ *entity.User, date time.Time) {
			queried = date
		}).
		Return([]*usecase.FamilyMemberDashboard{}, nil)

	c, rec := newDashboardContext(t, "/dashboard/family")

	require.NoError(t, handler.Family(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-03-14", queried.Format(time.DateOnly))
}
