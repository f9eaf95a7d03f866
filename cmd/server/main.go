package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"cabmed-api/internal/adapters/http/middleware"
	"cabmed-api/internal/adapters/http/routes"
	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/config"
	"cabmed-api/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "cabmed-api/docs" // Swagger docs
)

// @title Cabmed API
// @version 1.0
// @description API de gestion de cabinet médical : patients, rendez-vous, consultations, ordonnances et facturation.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@cabmed.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed default admin account and base specialties
	if err := config.SeedMasterData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed master data: %v", err)
	}

	// Background jobs: appointment reminders and token cleanup
	utilisateurRepo := repositories.NewUtilisateurRepository(db)
	rdvRepo := repositories.NewRendezVousRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	notificationService := services.NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		utilisateurRepo,
	)
	cronService := services.NewCronService(utilisateurRepo, rdvRepo, refreshTokenRepo, notificationService, cfg.Timezone)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Cabmed API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
