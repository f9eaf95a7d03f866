package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

// PatientService handles patient management business logic
type PatientService struct {
	patientRepo      repositories.PatientRepository
	dossierRepo      repositories.DossierMedicalRepository
	consultationRepo repositories.ConsultationRepository
	ordonnanceRepo   repositories.OrdonnanceRepository
}

// NewPatientService creates a new patient service
func NewPatientService(
	patientRepo repositories.PatientRepository,
	dossierRepo repositories.DossierMedicalRepository,
	consultationRepo repositories.ConsultationRepository,
	ordonnanceRepo repositories.OrdonnanceRepository,
) *PatientService {
	return &PatientService{
		patientRepo:      patientRepo,
		dossierRepo:      dossierRepo,
		consultationRepo: consultationRepo,
		ordonnanceRepo:   ordonnanceRepo,
	}
}

// PatientInput represents patient create/update input
type PatientInput struct {
	CIN           string `json:"cin" validate:"required"`
	Nom           string `json:"nom" validate:"required"`
	Prenom        string `json:"prenom" validate:"required"`
	DateNaissance string `json:"date_naissance"`
	Sexe          string `json:"sexe"`
	NumTel        string `json:"num_tel"`
	Email         string `json:"email"`
	Adresse       string `json:"adresse"`
	TypeMutuelle  string `json:"type_mutuelle"`
}

// ListPatientsOutput represents a paginated patient listing
type ListPatientsOutput struct {
	Patients   []*models.Patient `json:"patients"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ProfilCompletOutput represents a patient with their full medical history
type ProfilCompletOutput struct {
	Patient       *models.Patient        `json:"patient"`
	Dossier       *models.DossierMedical `json:"dossier"`
	Consultations []*models.Consultation `json:"consultations"`
	Ordonnances   []*models.Ordonnance   `json:"ordonnances"`
}

func (s *PatientService) applyInput(patient *models.Patient, input *PatientInput) error {
	patient.CIN = strings.TrimSpace(input.CIN)
	patient.Nom = strings.TrimSpace(input.Nom)
	patient.Prenom = strings.TrimSpace(input.Prenom)
	patient.Sexe = input.Sexe
	patient.NumTel = input.NumTel
	patient.Email = input.Email
	patient.Adresse = input.Adresse
	patient.TypeMutuelle = input.TypeMutuelle

	if input.DateNaissance != "" {
		d, err := time.Parse("2006-01-02", input.DateNaissance)
		if err != nil {
			return domain.ErrInvalidInput
		}
		patient.DateNaissance = d
	}
	return nil
}

// CreatePatient creates a new patient. The CIN must be unique.
func (s *PatientService) CreatePatient(ctx context.Context, input *PatientInput) (*models.Patient, error) {
	exists, err := s.patientRepo.ExistsByCIN(ctx, strings.TrimSpace(input.CIN))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCINAlreadyExists
	}

	patient := &models.Patient{}
	if err := s.applyInput(patient, input); err != nil {
		return nil, err
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetPatient gets a patient by ID
func (s *PatientService) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// UpdatePatient updates a patient. Changing the CIN to one held by another
// patient is a duplicate.
func (s *PatientService) UpdatePatient(ctx context.Context, id uint, input *PatientInput) (*models.Patient, error) {
	patient, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	newCIN := strings.TrimSpace(input.CIN)
	if newCIN != patient.CIN {
		exists, err := s.patientRepo.ExistsByCIN(ctx, newCIN)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrCINAlreadyExists
		}
	}

	if err := s.applyInput(patient, input); err != nil {
		return nil, err
	}

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// DeletePatient deletes a patient
func (s *PatientService) DeletePatient(ctx context.Context, id uint) error {
	if _, err := s.GetPatient(ctx, id); err != nil {
		return err
	}
	return s.patientRepo.Delete(ctx, id)
}

// ListPatients lists patients with pagination
func (s *PatientService) ListPatients(ctx context.Context, page, limit int) (*ListPatientsOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit
	patients, total, err := s.patientRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &ListPatientsOutput{
		Patients:   patients,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// SearchPatients searches patients by name fragment or exact CIN
func (s *PatientService) SearchPatients(ctx context.Context, query string) ([]*models.Patient, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*models.Patient{}, nil
	}

	// Exact CIN hit wins over name matching
	patient, err := s.patientRepo.GetByCIN(ctx, query)
	if err == nil {
		return []*models.Patient{patient}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.patientRepo.SearchByName(ctx, query)
}

// GetProfilComplet returns a patient with dossier, consultations and
// ordonnances. A missing dossier is not an error; the field stays nil.
func (s *PatientService) GetProfilComplet(ctx context.Context, id uint) (*ProfilCompletOutput, error) {
	patient, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}

	profil := &ProfilCompletOutput{Patient: patient}

	dossier, err := s.dossierRepo.GetByPatientID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	profil.Dossier = dossier

	if profil.Consultations, err = s.consultationRepo.ListByPatient(ctx, id); err != nil {
		return nil, err
	}
	if profil.Ordonnances, err = s.ordonnanceRepo.ListByPatient(ctx, id); err != nil {
		return nil, err
	}

	return profil, nil
}
