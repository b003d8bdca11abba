package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tanvirul/shopledger-api/internal/application/auth"
	"github.com/tanvirul/shopledger-api/internal/application/reconcile"
	"github.com/tanvirul/shopledger-api/internal/application/scheduler"
	"github.com/tanvirul/shopledger-api/internal/application/usecase"
	"github.com/tanvirul/shopledger-api/internal/infrastructure/postgres"
	httpRouter "github.com/tanvirul/shopledger-api/internal/interfaces/http"
	"github.com/tanvirul/shopledger-api/pkg/config"
	"github.com/tanvirul/shopledger-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	loc := time.Local
	if cfg.Shop.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Shop.Timezone)
		if err != nil {
			log.Fatal().Err(err).Str("timezone", cfg.Shop.Timezone).Msg("load shop timezone")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	salaryRepo := postgres.NewSalaryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reconciler := reconcile.NewUseCase(txRunner, loc)
	reports := usecase.NewReportUseCase(productionRepo, orderRepo, loc)
	salaryUC := usecase.NewSalaryUseCase(salaryRepo, loc)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

	dailyCheck := scheduler.NewDailyCheck(
		productionRepo, orderRepo, notificationRepo,
		log, cfg.Shop.DailyCheckHour, loc,
	)
	go dailyCheck.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ShopLedger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		Reconciler:     reconciler,
		Reports:        reports,
		SalaryUC:       salaryUC,
		SupplierUC:     supplierUC,
		SettingsUC:     settingsUC,
		NotificationUC: notificationUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
