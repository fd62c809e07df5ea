package main

import (
	"context"
	"log/slog"
	"os"

	"fitfamily/config"
	"fitfamily/internal/delivery"
	"fitfamily/internal/delivery/http"
	"fitfamily/internal/delivery/http/middleware"
	"fitfamily/internal/delivery/http/router/handler"
	"fitfamily/internal/infra/auth"
	logs "fitfamily/internal/infra/log"
	"fitfamily/internal/infra/persistence/postgres"
	"fitfamily/internal/infra/qrcode"
	"fitfamily/internal/infra/seed"
	"fitfamily/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			runSeeder,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		seed.NewSeeder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFamilyRepository,
			postgres.NewFoodRepository,
			postgres.NewFoodLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewFamilyService,
			impl.NewFoodService,
			impl.NewFoodLogService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewFamilyHandler,
			handler.NewFoodHandler,
			handler.NewFoodLogHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// runSeeder migrates the schema and seeds the food catalog before the HTTP
// server starts accepting traffic.
func runSeeder(ctx context.Context, seeder *seed.Seeder) error {
	return seeder.Run(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
