package routes

import (
	"cabmed-api/internal/adapters/http/handlers"
	"cabmed-api/internal/adapters/http/middleware"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/config"
	"cabmed-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	utilisateurRepo := repositories.NewUtilisateurRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	patientRepo := repositories.NewPatientRepository(db)
	dossierRepo := repositories.NewDossierMedicalRepository(db)
	rdvRepo := repositories.NewRendezVousRepository(db)
	consultationRepo := repositories.NewConsultationRepository(db)
	ordonnanceRepo := repositories.NewOrdonnanceRepository(db)
	factureRepo := repositories.NewFactureRepository(db)
	medicamentRepo := repositories.NewMedicamentRepository(db)
	cabinetRepo := repositories.NewCabinetRepository(db)
	specialiteRepo := repositories.NewSpecialiteRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	activiteRepo := repositories.NewActiviteAdminRepository(db)

	// Initialize services
	authService := services.NewAuthService(utilisateurRepo, refreshTokenRepo, cfg)
	activiteService := services.NewActiviteService(activiteRepo)
	utilisateurService := services.NewUtilisateurService(utilisateurRepo, cabinetRepo, specialiteRepo, activiteService)
	patientService := services.NewPatientService(patientRepo, dossierRepo, consultationRepo, ordonnanceRepo)
	dossierService := services.NewDossierService(dossierRepo, patientRepo)
	rdvService := services.NewRendezVousService(rdvRepo, patientRepo, utilisateurRepo, cfg.Timezone)
	consultationService := services.NewConsultationService(consultationRepo, patientRepo, utilisateurRepo, rdvRepo, cfg.Timezone)
	ordonnanceService := services.NewOrdonnanceService(ordonnanceRepo, patientRepo, utilisateurRepo, medicamentRepo)
	factureService := services.NewFactureService(factureRepo, patientRepo, cfg.Timezone)
	medicamentService := services.NewMedicamentService(medicamentRepo, activiteService)
	cabinetService := services.NewCabinetService(cabinetRepo, activiteService)
	specialiteService := services.NewSpecialiteService(specialiteRepo)
	notificationService := services.NewNotificationService(notificationRepo, patientRepo, utilisateurRepo)
	statsService := services.NewStatistiquesService(db, cfg.Timezone, cfg.Stats.ServicesActifs)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	utilisateurHandler := handlers.NewUtilisateurHandler(utilisateurService)
	patientHandler := handlers.NewPatientHandler(patientService)
	dossierHandler := handlers.NewDossierHandler(dossierService)
	rdvHandler := handlers.NewRendezVousHandler(rdvService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	ordonnanceHandler := handlers.NewOrdonnanceHandler(ordonnanceService)
	factureHandler := handlers.NewFactureHandler(factureService)
	medicamentHandler := handlers.NewMedicamentHandler(medicamentService)
	cabinetHandler := handlers.NewCabinetHandler(cabinetService, specialiteService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	statsHandler := handlers.NewStatistiquesHandler(statsService, rdvService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Referential data (any authenticated staff, cacheable)
	specialiteRoutes := apiV1.Group("/specialites")
	specialiteRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff(), middleware.ReferentialCache())
	specialiteRoutes.Get("/", cabinetHandler.ListSpecialites)

	medicamentRoutes := apiV1.Group("/medicaments")
	medicamentRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	medicamentRoutes.Get("/", middleware.ReferentialCache(), medicamentHandler.List)
	medicamentRoutes.Get("/:id", middleware.ReferentialCache(), medicamentHandler.Get)

	// Patient routes (secretary, doctor or admin)
	patientRoutes := apiV1.Group("/patients")
	patientRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	setupPatientRoutes(patientRoutes, patientHandler, dossierHandler, rdvHandler,
		consultationHandler, ordonnanceHandler, factureHandler)

	// Appointment routes
	rdvRoutes := apiV1.Group("/rendez-vous")
	rdvRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	setupRendezVousRoutes(rdvRoutes, rdvHandler)

	// Consultation routes
	consultationRoutes := apiV1.Group("/consultations")
	consultationRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	consultationRoutes.Get("/", consultationHandler.List)
	consultationRoutes.Get("/:id", consultationHandler.Get)
	consultationRoutes.Post("/", middleware.MedecinOnly(), consultationHandler.Create)

	// Prescription routes
	ordonnanceRoutes := apiV1.Group("/ordonnances")
	ordonnanceRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	ordonnanceRoutes.Get("/", ordonnanceHandler.List)
	ordonnanceRoutes.Get("/:id", ordonnanceHandler.Get)
	ordonnanceRoutes.Get("/:id/pdf", ordonnanceHandler.DownloadPDF)
	ordonnanceRoutes.Post("/", middleware.MedecinOnly(), ordonnanceHandler.Create)

	// Medical record routes
	dossierRoutes := apiV1.Group("/dossiers")
	dossierRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	dossierRoutes.Get("/", dossierHandler.List)
	dossierRoutes.Post("/", dossierHandler.Create)
	dossierRoutes.Put("/:id", dossierHandler.Update)

	// Invoice routes
	factureRoutes := apiV1.Group("/factures")
	factureRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	setupFactureRoutes(factureRoutes, factureHandler)

	// Notification routes
	notificationRoutes := apiV1.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware(cfg), middleware.Staff())
	setupNotificationRoutes(notificationRoutes, notificationHandler)

	// Doctor dashboard routes (Medecin only)
	medecinRoutes := apiV1.Group("/medecin")
	medecinRoutes.Use(middleware.AuthMiddleware(cfg), middleware.MedecinOnly(), middleware.NoCacheHeaders())
	medecinRoutes.Get("/stats", statsHandler.MedecinStats)
	medecinRoutes.Get("/rendez-vous", rdvHandler.MesRendezVous)
	medecinRoutes.Get("/rendez-vous-aujourdhui", rdvHandler.MesRendezVousAujourdhui)
	medecinRoutes.Get("/consultations-aujourdhui", consultationHandler.MesConsultationsAujourdhui)

	// Secretary dashboard routes (Secretaire or Admin)
	secretaireRoutes := apiV1.Group("/secretaire")
	secretaireRoutes.Use(middleware.AuthMiddleware(cfg), middleware.SecretaireOrAdmin(), middleware.NoCacheHeaders())
	secretaireRoutes.Get("/stats", statsHandler.SecretaireStats)
	secretaireRoutes.Get("/rendez-vous-aujourdhui", statsHandler.RdvAujourdhui)

	// Admin routes (Admin only)
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, statsHandler, utilisateurHandler, cabinetHandler, medicamentHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (login is rate-limited against brute force)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupPatientRoutes configures patient routes and the per-patient sub-resources
func setupPatientRoutes(
	router fiber.Router,
	patientHandler *handlers.PatientHandler,
	dossierHandler *handlers.DossierHandler,
	rdvHandler *handlers.RendezVousHandler,
	consultationHandler *handlers.ConsultationHandler,
	ordonnanceHandler *handlers.OrdonnanceHandler,
	factureHandler *handlers.FactureHandler,
) {
	router.Get("/", patientHandler.List)
	router.Get("/search", patientHandler.Search)
	router.Post("/", patientHandler.Create)
	router.Get("/:id", patientHandler.Get)
	router.Put("/:id", patientHandler.Update)
	router.Delete("/:id", patientHandler.Delete)

	// Per-patient sub-resources
	router.Get("/:id/profil-complet", patientHandler.ProfilComplet)
	router.Get("/:id/dossier", dossierHandler.GetByPatient)
	router.Get("/:id/rendez-vous", rdvHandler.ListByPatient)
	router.Get("/:id/consultations", consultationHandler.ListByPatient)
	router.Get("/:id/ordonnances", ordonnanceHandler.ListByPatient)
	router.Get("/:id/factures", factureHandler.ListByPatient)
}

// setupRendezVousRoutes configures appointment routes
func setupRendezVousRoutes(router fiber.Router, handler *handlers.RendezVousHandler) {
	router.Get("/", handler.List)
	router.Get("/aujourdhui", handler.Aujourdhui)
	router.Post("/", handler.Create)
	router.Get("/:id", handler.Get)
	router.Put("/:id", handler.Update)
	router.Patch("/:id/statut", handler.ChangeStatut)
	router.Delete("/:id", handler.Delete)
}

// setupFactureRoutes configures invoice routes
func setupFactureRoutes(router fiber.Router, handler *handlers.FactureHandler) {
	router.Get("/", handler.List)
	router.Get("/stats", handler.Stats)
	router.Post("/", handler.Create)
	router.Get("/:id", handler.Get)
	router.Patch("/:id/payer", handler.Payer)
}

// setupNotificationRoutes configures the notification and patient hand-off routes
func setupNotificationRoutes(router fiber.Router, handler *handlers.NotificationHandler) {
	// Secretary sends a waiting patient to a doctor
	router.Post("/envoyer-patient", middleware.SecretaireOrAdmin(), handler.EnvoyerPatient)

	// Doctor reads and clears their waiting slot
	router.Get("/patient-en-cours", middleware.MedecinOnly(), handler.PatientEnCours)
	router.Delete("/patient-en-cours", middleware.MedecinOnly(), handler.ClearPatientEnCours)

	// Generic notification feed
	router.Get("/non-lues", handler.Unread)
	router.Get("/", handler.All)
	router.Patch("/:id/lue", handler.MarkAsRead)
}

// setupAdminRoutes configures administrator routes
func setupAdminRoutes(
	router fiber.Router,
	statsHandler *handlers.StatistiquesHandler,
	utilisateurHandler *handlers.UtilisateurHandler,
	cabinetHandler *handlers.CabinetHandler,
	medicamentHandler *handlers.MedicamentHandler,
) {
	// Dashboard
	router.Get("/stats", statsHandler.AdminStats)
	router.Get("/cabinets-recents", statsHandler.CabinetsRecents)
	router.Get("/activite-recente", statsHandler.ActiviteRecente)

	// Account management
	router.Get("/utilisateurs", utilisateurHandler.List)
	router.Get("/utilisateurs/medecins", utilisateurHandler.ListMedecins)
	router.Post("/utilisateurs", utilisateurHandler.Create)
	router.Get("/utilisateurs/:id", utilisateurHandler.Get)
	router.Put("/utilisateurs/:id", utilisateurHandler.Update)
	router.Patch("/utilisateurs/:id/actif", utilisateurHandler.ToggleActif)
	router.Delete("/utilisateurs/:id", utilisateurHandler.Delete)

	// Cabinet management
	router.Get("/cabinets", cabinetHandler.List)
	router.Post("/cabinets", cabinetHandler.Create)
	router.Get("/cabinets/:id", cabinetHandler.Get)
	router.Put("/cabinets/:id", cabinetHandler.Update)
	router.Patch("/cabinets/:id/actif", cabinetHandler.ToggleActif)
	router.Delete("/cabinets/:id", cabinetHandler.Delete)

	// Specialites
	router.Post("/specialites", cabinetHandler.CreateSpecialite)

	// Medicament catalog
	router.Post("/medicaments", medicamentHandler.Create)
	router.Put("/medicaments/:id", medicamentHandler.Update)
	router.Delete("/medicaments/:id", medicamentHandler.Delete)
}
