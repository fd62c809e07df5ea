package impl

import (
	"context"
	"log/slog"
	"time"

	"fitfamily/internal/domain/entity"
	"fitfamily/internal/domain/repository"
	"fitfamily/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
// It is read-only and purely computational over the food log store.
type dashboardService struct {
	foodLogRepo repository.FoodLogRepository
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	FoodLogRepo repository.FoodLogRepository
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		foodLogRepo: params.FoodLogRepo,
		logger:      params.Logger,
	}
}

// UserDailyDashboard sums the requester's logged macros for a calendar date.
// A date with no logs yields an all-zero summary and an empty list.
func (srv *dashboardService) UserDailyDashboard(ctx context.Context, requester *entity.User, date time.Time) (*usecase.DailyDashboard, error) {
	logs, err := srv.foodLogRepo.FindByUserAndDate(ctx, requester.ID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user food logs")
	}

	return buildDailyDashboard(date, logs), nil
}

// FamilyDailyDashboard builds one dashboard per family member who logged food
// on the date. A requester without a family gets an empty list, not an error.
func (srv *dashboardService) FamilyDailyDashboard(ctx context.Context, requester *entity.User, date time.Time) ([]*usecase.FamilyMemberDashboard, error) {
	if !requester.HasFamily() {
		return []*usecase.FamilyMemberDashboard{}, nil
	}

	logs, err := srv.foodLogRepo.FindByFamilyAndDate(ctx, *requester.FamilyID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load family food logs")
	}

	// Group by owner, preserving first-appearance order.
	var order []uuid.UUID
	grouped := make(map[uuid.UUID][]*entity.FoodLog)
	names := make(map[uuid.UUID]string)
	for _, foodLog := range logs {
		if _, seen := grouped[foodLog.UserID]; !seen {
			order = append(order, foodLog.UserID)
		}
		grouped[foodLog.UserID] = append(grouped[foodLog.UserID], foodLog)
		if foodLog.User != nil {
			names[foodLog.UserID] = foodLog.User.Name
		}
	}

	dashboards := make([]*usecase.FamilyMemberDashboard, 0, len(order))
	for _, userID := range order {
		dashboards = append(dashboards, &usecase.FamilyMemberDashboard{
			UserName:  names[userID],
			Dashboard: buildDailyDashboard(date, grouped[userID]),
		})
	}

	return dashboards, nil
}

func buildDailyDashboard(date time.Time, logs []*entity.FoodLog) *usecase.DailyDashboard {
	dashboard := &usecase.DailyDashboard{
		Date:     date.Format(time.DateOnly),
		FoodLogs: make([]*usecase.DashboardLogEntry, 0, len(logs)),
	}

	for _, foodLog := range logs {
		dashboard.Summary.Calories += foodLog.Calories
		dashboard.Summary.Protein += foodLog.Protein
		dashboard.Summary.Carbs += foodLog.Carbs
		dashboard.Summary.Fat += foodLog.Fat

		entry := &usecase.DashboardLogEntry{
			Calories: foodLog.Calories,
			MealType: foodLog.MealType.String(),
		}
		if foodLog.Food != nil {
			entry.FoodName = foodLog.Food.Name
		}
		if foodLog.Portion != nil {
			entry.PortionLabel = foodLog.Portion.Label
		}
		dashboard.FoodLogs = append(dashboard.FoodLogs, entry)
	}

	return dashboard
}
