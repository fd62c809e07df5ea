package usecase

import (
	"context"
	"time"

	"fitfamily/internal/domain/entity"
)

// MacroSummary is the elementwise sum of macros over a set of log entries.
type MacroSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DashboardLogEntry is a single log entry as shown on the dashboard.
type DashboardLogEntry struct {
	FoodName     string  `json:"foodName"`
	PortionLabel string  `json:"portionLabel"`
	Calories     float64 `json:"calories"`
	MealType     string  `json:"mealType"`
}

// DailyDashboard is one user's consumption summary for a calendar date.
type DailyDashboard struct {
	Date     string               `json:"date"`
	Summary  MacroSummary         `json:"summary"`
	FoodLogs []*DashboardLogEntry `json:"foodLogs"`
}

// FamilyMemberDashboard pairs a family member's name with their daily dashboard.
type FamilyMemberDashboard struct {
	UserName  string          `json:"userName"`
	Dashboard *DailyDashboard `json:"dashboard"`
}

// DashboardUsecase defines the interface for daily nutrition summaries.
type DashboardUsecase interface {
	UserDailyDashboard(ctx context.Context, requester *entity.User, date time.Time) (*DailyDashboard, error)

	// FamilyDailyDashboard returns one dashboard per family member who logged
	// food on the date. A requester without a family gets an empty list.
	FamilyDailyDashboard(ctx context.Context, requester *entity.User, date time.Time) ([]*FamilyMemberDashboard, error)
}
