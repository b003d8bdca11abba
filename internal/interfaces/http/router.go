package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanvirul/shopledger-api/internal/application/auth"
	"github.com/tanvirul/shopledger-api/internal/application/reconcile"
	"github.com/tanvirul/shopledger-api/internal/application/usecase"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	Reconciler     *reconcile.UseCase
	Reports        *usecase.ReportUseCase
	SalaryUC       *usecase.SalaryUseCase
	SupplierUC     *usecase.SupplierUseCase
	SettingsUC     *usecase.SettingsUseCase
	NotificationUC *usecase.NotificationUseCase
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Get("/users", RequireRole(entity.RoleOwner), authHandler.ListUsers)

	// Productions
	productions := protected.Group("/productions")
	productionHandler := NewProductionHandler(deps.Reconciler, deps.Reports)
	productions.Post("/", productionHandler.Create)
	productions.Post("/sync", productionHandler.Sync)
	productions.Get("/", productionHandler.List)
	productions.Get("/date/:date", productionHandler.GetByDate)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.Reconciler, deps.Reports)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)

	// Salaries
	salaries := protected.Group("/salaries")
	salaryHandler := NewSalaryHandler(deps.SalaryUC)
	salaries.Post("/", salaryHandler.Create)
	salaries.Get("/", salaryHandler.List)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Settings (writes are owner-only)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Post("/verify-secret", settingsHandler.VerifySecret)
	settings.Put("/", RequireRole(entity.RoleOwner), settingsHandler.Update)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/:id", notificationHandler.MarkCompleted)
}
