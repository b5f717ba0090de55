package routes

import (
	"mnp-portal/internal/adapters/http/handlers"
	"mnp-portal/internal/adapters/http/middleware"
	"mnp-portal/internal/adapters/persistence/repositories"
	"mnp-portal/internal/config"
	"mnp-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application. It returns the
// dashboard service so the caller can feed the daily stats cron.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.DashboardService {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)
	portInRepo := repositories.NewPortInRepository(db)
	portOutRepo := repositories.NewPortOutRepository(db)
	snapbackRepo := repositories.NewSnapbackRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	complaintService := services.NewComplaintService(complaintRepo)
	portService := services.NewPortService(portInRepo, portOutRepo, snapbackRepo)
	subscriberService := services.NewSubscriberService(subscriberRepo)
	dashboardService := services.NewDashboardService(subscriberRepo, complaintRepo, portInRepo, portOutRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	portHandler := handlers.NewPortHandler(portService)
	subscriberHandler := handlers.NewSubscriberHandler(subscriberService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	exportHandler := handlers.NewExportHandler(portService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public, rate limited)
	authRoutes := app.Group("/auth", middleware.AuthRateLimiter())
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)

	// Everything below requires a valid bearer token
	auth := middleware.AuthMiddleware(cfg, userRepo)

	complaintRoutes := app.Group("/complaints", auth)
	complaintRoutes.Post("/", complaintHandler.Submit)
	complaintRoutes.Get("/", complaintHandler.List)
	complaintRoutes.Put("/:id", complaintHandler.UpdateStatus)

	portInRoutes := app.Group("/port-in", auth)
	portInRoutes.Get("/", portHandler.ListPortIn)
	portInRoutes.Post("/", portHandler.CreatePortIn)

	app.Group("/port-out", auth).Get("/", portHandler.ListPortOut)
	app.Group("/snapback", auth).Get("/", portHandler.ListSnapback)

	// List is exposed via POST; the shipped frontend calls it that way
	subscriberRoutes := app.Group("/subscribers", auth)
	subscriberRoutes.Post("/", subscriberHandler.List)
	subscriberRoutes.Post("/create", subscriberHandler.Create)
	subscriberRoutes.Get("/search", subscriberHandler.Search)

	dashboardRoutes := app.Group("/dashboard", auth)
	dashboardRoutes.Get("/stats", dashboardHandler.GetStats)
	dashboardRoutes.Get("/reasons/analysis", dashboardHandler.GetReasonAnalysis)

	exportRoutes := app.Group("/export", auth)
	exportRoutes.Get("/port-in", exportHandler.ExportPortIn)
	exportRoutes.Get("/port-out", exportHandler.ExportPortOut)
	exportRoutes.Get("/snapback", exportHandler.ExportSnapback)

	return dashboardService
}
