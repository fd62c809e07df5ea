// Package router contains routing setup for the HTTP delivery.
package router

import (
	"fitfamily/internal/delivery/http/middleware"
	"fitfamily/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams contains every handler and middleware the router registers.
type RouterParams struct {
	fx.In

	AuthMiddleware   *middleware.AuthMiddleware
	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	FamilyHandler    *handler.FamilyHandler
	FoodHandler      *handler.FoodHandler
	FoodLogHandler   *handler.FoodLogHandler
	DashboardHandler *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Only the health probe and the auth endpoints are public.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.params.HealthHandler.Check)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	familyGroup := e.Group("/families")
	familyGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		familyGroup.POST("", r.params.FamilyHandler.Create)
		familyGroup.POST("/join", r.params.FamilyHandler.Join)
		familyGroup.GET("/me", r.params.FamilyHandler.MyFamily)
		familyGroup.GET("/me/qrcode", r.params.FamilyHandler.JoinCodeQR)
	}

	foodGroup := e.Group("/foods")
	foodGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		foodGroup.GET("/search", r.params.FoodHandler.Search)
	}

	foodLogGroup := e.Group("/food-logs")
	foodLogGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		foodLogGroup.POST("", r.params.FoodLogHandler.Add)
		foodLogGroup.DELETE("/:id", r.params.FoodLogHandler.Delete)
	}

	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		dashboardGroup.GET("/daily", r.params.DashboardHandler.Daily)
		dashboardGroup.GET("/family", r.params.DashboardHandler.Family)
	}
}
