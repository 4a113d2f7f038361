package main

import (
	"context"
	"log/slog"
	"os"

	"reliefmap/config"
	"reliefmap/internal/delivery"
	"reliefmap/internal/delivery/http"
	"reliefmap/internal/delivery/http/middleware"
	"reliefmap/internal/delivery/http/router/handler"
	"reliefmap/internal/infra/audit"
	"reliefmap/internal/infra/auth"
	logs "reliefmap/internal/infra/log"
	"reliefmap/internal/infra/persistence/postgres"
	"reliefmap/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
			runMigrations,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		audit.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewReliefPointRepository,
			postgres.NewAdminUserRepository,
			postgres.NewAuditLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPointService,
			impl.NewModerationService,
			impl.NewAdminService,
			impl.NewProvinceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPointHandler,
			handler.NewAdminHandler,
			handler.NewAuthHandler,
			handler.NewProvinceHandler,
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

func runMigrations(db *gorm.DB, logger *slog.Logger) error {
	return postgres.Migrate(db, logger)
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
