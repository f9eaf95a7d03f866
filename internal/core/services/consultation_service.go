package services

import (
	"context"
	"errors"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

// ConsultationService handles consultation records
type ConsultationService struct {
	consultationRepo repositories.ConsultationRepository
	patientRepo      repositories.PatientRepository
	utilisateurRepo  repositories.UtilisateurRepository
	rdvRepo          repositories.RendezVousRepository
	loc              *time.Location
}

// NewConsultationService creates a new consultation service
func NewConsultationService(
	consultationRepo repositories.ConsultationRepository,
	patientRepo repositories.PatientRepository,
	utilisateurRepo repositories.UtilisateurRepository,
	rdvRepo repositories.RendezVousRepository,
	loc *time.Location,
) *ConsultationService {
	if loc == nil {
		loc = time.Local
	}
	return &ConsultationService{
		consultationRepo: consultationRepo,
		patientRepo:      patientRepo,
		utilisateurRepo:  utilisateurRepo,
		rdvRepo:          rdvRepo,
		loc:              loc,
	}
}

// ConsultationInput represents consultation creation input
type ConsultationInput struct {
	RendezVousID *uint  `json:"rendez_vous_id"`
	PatientID    uint   `json:"patient_id" validate:"required"`
	MedecinID    uint   `json:"medecin_id" validate:"required"`
	Diagnostic   string `json:"diagnostic"`
	Traitement   string `json:"traitement"`
	Observations string `json:"observations"`
	Duree        int    `json:"duree"`
}

// CreateConsultation records a consultation. When it closes an appointment
// the appointment is moved to TERMINE.
func (s *ConsultationService) CreateConsultation(ctx context.Context, input *ConsultationInput) (*models.Consultation, error) {
	if _, err := s.patientRepo.GetByID(ctx, input.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}

	if _, err := s.utilisateurRepo.GetByID(ctx, input.MedecinID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUtilisateurNotFound
		}
		return nil, err
	}

	if input.RendezVousID != nil {
		rdv, err := s.rdvRepo.GetByID(ctx, *input.RendezVousID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrRendezVousNotFound
			}
			return nil, err
		}
		rdv.Statut = models.RdvTermine
		if err := s.rdvRepo.Update(ctx, rdv); err != nil {
			return nil, err
		}
	}

	consultation := &models.Consultation{
		RendezVousID: input.RendezVousID,
		PatientID:    input.PatientID,
		MedecinID:    input.MedecinID,
		Diagnostic:   input.Diagnostic,
		Traitement:   input.Traitement,
		Observations: input.Observations,
		Duree:        input.Duree,
	}

	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

// GetConsultation gets a consultation by ID
func (s *ConsultationService) GetConsultation(ctx context.Context, id uint) (*models.Consultation, error) {
	consultation, err := s.consultationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConsultationNotFound
		}
		return nil, err
	}
	return consultation, nil
}

// ListConsultations lists all consultations
func (s *ConsultationService) ListConsultations(ctx context.Context) ([]*models.Consultation, error) {
	return s.consultationRepo.List(ctx)
}

// ListByPatient lists a patient's consultations
func (s *ConsultationService) ListByPatient(ctx context.Context, patientID uint) ([]*models.Consultation, error) {
	return s.consultationRepo.ListByPatient(ctx, patientID)
}

// ListMedecinAujourdhui lists a doctor's consultations of today
func (s *ConsultationService) ListMedecinAujourdhui(ctx context.Context, medecinID uint) ([]*models.Consultation, error) {
	now := time.Now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return s.consultationRepo.ListByMedecinBetween(ctx, medecinID, start, start.AddDate(0, 0, 1))
}
