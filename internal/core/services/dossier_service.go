package services

import (
	"context"
	"errors"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

// DossierService handles medical records. Each patient holds at most one
// dossier.
type DossierService struct {
	dossierRepo repositories.DossierMedicalRepository
	patientRepo repositories.PatientRepository
}

// NewDossierService creates a new dossier service
func NewDossierService(
	dossierRepo repositories.DossierMedicalRepository,
	patientRepo repositories.PatientRepository,
) *DossierService {
	return &DossierService{
		dossierRepo: dossierRepo,
		patientRepo: patientRepo,
	}
}

// DossierInput represents medical record create/update input
type DossierInput struct {
	PatientID       uint   `json:"patient_id" validate:"required"`
	MedecinID       uint   `json:"medecin_id" validate:"required"`
	Diagnostic      string `json:"diagnostic"`
	Traitement      string `json:"traitement"`
	Observations    string `json:"observations"`
	AntMedicaux     string `json:"ant_medicaux"`
	AntChirurgicaux string `json:"ant_chirurgicaux"`
	Allergies       string `json:"allergies"`
	Habitudes       string `json:"habitudes"`
}

// CreateDossier opens a medical record for a patient. A second create on
// the same patient is a duplicate.
func (s *DossierService) CreateDossier(ctx context.Context, input *DossierInput) (*models.DossierMedical, error) {
	if _, err := s.patientRepo.GetByID(ctx, input.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}

	if _, err := s.dossierRepo.GetByPatientID(ctx, input.PatientID); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dossier := &models.DossierMedical{
		PatientID:       input.PatientID,
		MedecinID:       input.MedecinID,
		Diagnostic:      input.Diagnostic,
		Traitement:      input.Traitement,
		Observations:    input.Observations,
		AntMedicaux:     input.AntMedicaux,
		AntChirurgicaux: input.AntChirurgicaux,
		Allergies:       input.Allergies,
		Habitudes:       input.Habitudes,
	}

	if err := s.dossierRepo.Create(ctx, dossier); err != nil {
		return nil, err
	}
	return dossier, nil
}

// GetDossierByPatient returns a patient's medical record
func (s *DossierService) GetDossierByPatient(ctx context.Context, patientID uint) (*models.DossierMedical, error) {
	dossier, err := s.dossierRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDossierNotFound
		}
		return nil, err
	}
	return dossier, nil
}

// UpdateDossier updates a medical record
func (s *DossierService) UpdateDossier(ctx context.Context, id uint, input *DossierInput) (*models.DossierMedical, error) {
	dossier, err := s.dossierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDossierNotFound
		}
		return nil, err
	}

	dossier.MedecinID = input.MedecinID
	dossier.Diagnostic = input.Diagnostic
	dossier.Traitement = input.Traitement
	dossier.Observations = input.Observations
	dossier.AntMedicaux = input.AntMedicaux
	dossier.AntChirurgicaux = input.AntChirurgicaux
	dossier.Allergies = input.Allergies
	dossier.Habitudes = input.Habitudes

	if err := s.dossierRepo.Update(ctx, dossier); err != nil {
		return nil, err
	}
	return dossier, nil
}

// ListDossiers lists all medical records
func (s *DossierService) ListDossiers(ctx context.Context) ([]*models.DossierMedical, error) {
	return s.dossierRepo.List(ctx)
}
