package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

// NotificationService handles notifications and the secretary → doctor
// patient hand-off workflow
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	patientRepo      repositories.PatientRepository
	utilisateurRepo  repositories.UtilisateurRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	patientRepo repositories.PatientRepository,
	utilisateurRepo repositories.UtilisateurRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		patientRepo:      patientRepo,
		utilisateurRepo:  utilisateurRepo,
	}
}

// PatientEnCoursOutput represents the patient currently waiting for a doctor
type PatientEnCoursOutput struct {
	Patient      *models.Patient `json:"patient"`
	Message      string          `json:"message"`
	DateCreation time.Time       `json:"date_creation"`
}

// SendPatientToMedecin hands a patient off to a doctor. A doctor holds at
// most one waiting patient: a second send replaces the first.
func (s *NotificationService) SendPatientToMedecin(ctx context.Context, patientID, medecinID uint) error {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPatientNotFound
		}
		return err
	}

	medecin, err := s.utilisateurRepo.GetByID(ctx, medecinID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUtilisateurNotFound
		}
		return err
	}

	pid := patient.ID
	notification := &models.Notification{
		Titre: "Patient en attente",
		Message: fmt.Sprintf("%s %s (CIN: %s) est en attente de consultation.",
			patient.Nom, patient.Prenom, patient.CIN),
		Type:           models.NotifInfo,
		DestinataireID: medecin.ID,
		PatientID:      &pid,
		Lu:             false,
	}

	return s.notificationRepo.ReplaceWaitingSlot(ctx, notification)
}

// GetPatientEnCours returns the patient currently waiting for a doctor.
// Returns (nil, nil) when nobody is waiting or the referenced patient no
// longer exists; the empty slot is never an error.
func (s *NotificationService) GetPatientEnCours(ctx context.Context, medecinID uint) (*PatientEnCoursOutput, error) {
	notification, err := s.notificationRepo.GetLatestWaitingSlot(ctx, medecinID)
	if err != nil {
		return nil, err
	}
	if notification == nil || notification.PatientID == nil {
		return nil, nil
	}

	patient, err := s.patientRepo.GetByID(ctx, *notification.PatientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &PatientEnCoursOutput{
		Patient:      patient,
		Message:      notification.Message,
		DateCreation: notification.DateCreation,
	}, nil
}

// ClearPatientEnCours frees the doctor's waiting slot. Idempotent.
func (s *NotificationService) ClearPatientEnCours(ctx context.Context, medecinID uint) error {
	return s.notificationRepo.ClearWaitingSlot(ctx, medecinID)
}

// GetUnreadNotifications lists unread notifications of a user, newest first
func (s *NotificationService) GetUnreadNotifications(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListUnreadByDestinataire(ctx, userID)
}

// GetAllNotifications lists all notifications of a user, newest first
func (s *NotificationService) GetAllNotifications(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.notificationRepo.ListByDestinataire(ctx, userID)
}

// MarkAsRead marks a notification as read
func (s *NotificationService) MarkAsRead(ctx context.Context, id uint) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if !notification.Lu {
		now := time.Now()
		notification.Lu = true
		notification.DateLecture = &now
		if err := s.notificationRepo.Update(ctx, notification); err != nil {
			return nil, err
		}
	}

	return notification, nil
}

// NotifierMedecin creates a plain notification for a doctor (used by the
// appointment reminder job). PatientID stays nil so the entry never counts
// as a waiting-patient slot.
func (s *NotificationService) NotifierMedecin(ctx context.Context, medecinID uint, titre, message, typ string) error {
	return s.notificationRepo.Create(ctx, &models.Notification{
		Titre:          titre,
		Message:        message,
		Type:           typ,
		DestinataireID: medecinID,
		Lu:             false,
	})
}
