package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"mnp-portal/internal/adapters/http/middleware"
	"mnp-portal/internal/adapters/http/routes"
	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/config"
	"mnp-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "mnp-portal/docs" // Swagger docs
)

// @title MNP Portal API
// @version 1.0
// @description Mobile number portability tracking API: subscribers, port events, complaints and dashboard statistics.

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	log.Println("Database migration completed")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MNP Portal API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	dashboardService := routes.Setup(app, db, cfg)

	// Daily stats summary in the log
	statsCron := services.NewStatsCronService(dashboardService)
	statsCron.Start()
	defer statsCron.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
