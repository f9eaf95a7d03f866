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

// RendezVousService handles appointment scheduling
type RendezVousService struct {
	rdvRepo         repositories.RendezVousRepository
	patientRepo     repositories.PatientRepository
	utilisateurRepo repositories.UtilisateurRepository
	loc             *time.Location
}

// NewRendezVousService creates a new rendez-vous service
func NewRendezVousService(
	rdvRepo repositories.RendezVousRepository,
	patientRepo repositories.PatientRepository,
	utilisateurRepo repositories.UtilisateurRepository,
	loc *time.Location,
) *RendezVousService {
	if loc == nil {
		loc = time.Local
	}
	return &RendezVousService{
		rdvRepo:         rdvRepo,
		patientRepo:     patientRepo,
		utilisateurRepo: utilisateurRepo,
		loc:             loc,
	}
}

// RendezVousInput represents appointment create/update input
type RendezVousInput struct {
	PatientID uint   `json:"patient_id" validate:"required"`
	MedecinID uint   `json:"medecin_id" validate:"required"`
	DateRdv   string `json:"date_rdv" validate:"required"` // YYYY-MM-DD
	HeureRdv  string `json:"heure_rdv" validate:"required"` // HH:MM
	Motif     string `json:"motif"`
	Notes     string `json:"notes"`
}

func validStatut(statut string) bool {
	switch statut {
	case models.RdvEnAttente, models.RdvConfirme, models.RdvAnnule, models.RdvTermine:
		return true
	}
	return false
}

func (s *RendezVousService) resolveParties(ctx context.Context, patientID, medecinID uint) error {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPatientNotFound
		}
		return err
	}
	if _, err := s.utilisateurRepo.GetByID(ctx, medecinID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUtilisateurNotFound
		}
		return err
	}
	return nil
}

// CreateRendezVous books an appointment, initially EN_ATTENTE
func (s *RendezVousService) CreateRendezVous(ctx context.Context, input *RendezVousInput) (*models.RendezVous, error) {
	if err := s.resolveParties(ctx, input.PatientID, input.MedecinID); err != nil {
		return nil, err
	}

	dateRdv, err := time.ParseInLocation("2006-01-02", input.DateRdv, s.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("15:04", input.HeureRdv); err != nil {
		return nil, domain.ErrInvalidInput
	}

	rdv := &models.RendezVous{
		PatientID: input.PatientID,
		MedecinID: input.MedecinID,
		DateRdv:   dateRdv,
		HeureRdv:  input.HeureRdv,
		Motif:     input.Motif,
		Notes:     input.Notes,
		Statut:    models.RdvEnAttente,
	}

	if err := s.rdvRepo.Create(ctx, rdv); err != nil {
		return nil, err
	}
	return rdv, nil
}

// GetRendezVous gets an appointment by ID
func (s *RendezVousService) GetRendezVous(ctx context.Context, id uint) (*models.RendezVous, error) {
	rdv, err := s.rdvRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRendezVousNotFound
		}
		return nil, err
	}
	return rdv, nil
}

// UpdateRendezVous reschedules an appointment
func (s *RendezVousService) UpdateRendezVous(ctx context.Context, id uint, input *RendezVousInput) (*models.RendezVous, error) {
	rdv, err := s.GetRendezVous(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.resolveParties(ctx, input.PatientID, input.MedecinID); err != nil {
		return nil, err
	}

	dateRdv, err := time.ParseInLocation("2006-01-02", input.DateRdv, s.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("15:04", input.HeureRdv); err != nil {
		return nil, domain.ErrInvalidInput
	}

	rdv.PatientID = input.PatientID
	rdv.MedecinID = input.MedecinID
	rdv.DateRdv = dateRdv
	rdv.HeureRdv = input.HeureRdv
	rdv.Motif = input.Motif
	rdv.Notes = input.Notes

	if err := s.rdvRepo.Update(ctx, rdv); err != nil {
		return nil, err
	}
	return rdv, nil
}

// ChangeStatut moves an appointment to a new status
func (s *RendezVousService) ChangeStatut(ctx context.Context, id uint, statut string) (*models.RendezVous, error) {
	if !validStatut(statut) {
		return nil, domain.ErrInvalidInput
	}

	rdv, err := s.GetRendezVous(ctx, id)
	if err != nil {
		return nil, err
	}

	rdv.Statut = statut
	if err := s.rdvRepo.Update(ctx, rdv); err != nil {
		return nil, err
	}
	return rdv, nil
}

// DeleteRendezVous removes an appointment
func (s *RendezVousService) DeleteRendezVous(ctx context.Context, id uint) error {
	if _, err := s.GetRendezVous(ctx, id); err != nil {
		return err
	}
	return s.rdvRepo.Delete(ctx, id)
}

// ListRendezVous lists all appointments
func (s *RendezVousService) ListRendezVous(ctx context.Context) ([]*models.RendezVous, error) {
	return s.rdvRepo.List(ctx)
}

// ListByPatient lists a patient's appointments
func (s *RendezVousService) ListByPatient(ctx context.Context, patientID uint) ([]*models.RendezVous, error) {
	return s.rdvRepo.ListByPatient(ctx, patientID)
}

// ListByMedecin lists a doctor's appointments
func (s *RendezVousService) ListByMedecin(ctx context.Context, medecinID uint) ([]*models.RendezVous, error) {
	return s.rdvRepo.ListByMedecin(ctx, medecinID)
}

// ListAujourdhui lists today's appointments (clinic timezone)
func (s *RendezVousService) ListAujourdhui(ctx context.Context) ([]*models.RendezVous, error) {
	return s.rdvRepo.ListByDate(ctx, time.Now().In(s.loc))
}

// ListMedecinAujourdhui lists a doctor's confirmed appointments for today
func (s *RendezVousService) ListMedecinAujourdhui(ctx context.Context, medecinID uint) ([]*models.RendezVous, error) {
	return s.rdvRepo.ListByMedecinAndDateAndStatut(ctx, medecinID, time.Now().In(s.loc), models.RdvConfirme)
}
