package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs
type CronService struct {
	cron                *cron.Cron
	utilisateurRepo     repositories.UtilisateurRepository
	rdvRepo             repositories.RendezVousRepository
	refreshTokenRepo    repositories.RefreshTokenRepository
	notificationService *NotificationService
	loc                 *time.Location
}

// NewCronService creates a new cron service. Jobs fire in the clinic
// timezone.
func NewCronService(
	utilisateurRepo repositories.UtilisateurRepository,
	rdvRepo repositories.RendezVousRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	notificationService *NotificationService,
	loc *time.Location,
) *CronService {
	if loc == nil {
		loc = time.Local
	}
	return &CronService{
		cron:                cron.New(cron.WithLocation(loc)),
		utilisateurRepo:     utilisateurRepo,
		rdvRepo:             rdvRepo,
		refreshTokenRepo:    refreshTokenRepo,
		notificationService: notificationService,
		loc:                 loc,
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// Daily appointment reminders at 08:00
	s.cron.AddFunc("0 8 * * *", s.sendRendezVousReminders)

	// Purge expired refresh tokens nightly
	s.cron.AddFunc("30 2 * * *", s.purgeExpiredTokens)

	s.cron.Start()
	log.Println("🚀 CronService started (reminders 08:00, token purge 02:30)")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

// sendRendezVousReminders notifies each doctor of today's confirmed
// appointments. The notification carries no patient reference so it never
// touches a waiting-patient slot.
func (s *CronService) sendRendezVousReminders() {
	ctx := context.Background()
	today := time.Now().In(s.loc)

	medecins, err := s.utilisateurRepo.ListByRole(ctx, models.RoleMedecin)
	if err != nil {
		log.Printf("❌ Reminder job: listing medecins failed: %v", err)
		return
	}

	sent := 0
	for _, medecin := range medecins {
		if !medecin.Actif {
			continue
		}

		rdvs, err := s.rdvRepo.ListByMedecinAndDateAndStatut(ctx, medecin.ID, today, models.RdvConfirme)
		if err != nil {
			log.Printf("❌ Reminder job: listing rendez-vous for medecin %d failed: %v", medecin.ID, err)
			continue
		}
		if len(rdvs) == 0 {
			continue
		}

		message := fmt.Sprintf("Vous avez %d rendez-vous confirmé(s) aujourd'hui (%s).",
			len(rdvs), today.Format("02/01/2006"))
		if err := s.notificationService.NotifierMedecin(ctx, medecin.ID,
			"Rappel des rendez-vous", message, models.NotifInfo); err != nil {
			log.Printf("❌ Reminder job: notifying medecin %d failed: %v", medecin.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		log.Printf("📅 Sent appointment reminders to %d medecin(s)", sent)
	}
}

// purgeExpiredTokens removes refresh tokens past their expiry
func (s *CronService) purgeExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("❌ Token purge failed: %v", err)
		return
	}
	log.Println("🗑️ Expired refresh tokens purged")
}
