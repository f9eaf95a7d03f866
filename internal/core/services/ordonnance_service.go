package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/pkg/pdf"

	"gorm.io/gorm"
)

// OrdonnanceService handles prescriptions and their PDF rendering
type OrdonnanceService struct {
	ordonnanceRepo  repositories.OrdonnanceRepository
	patientRepo     repositories.PatientRepository
	utilisateurRepo repositories.UtilisateurRepository
	medicamentRepo  repositories.MedicamentRepository
}

// NewOrdonnanceService creates a new ordonnance service
func NewOrdonnanceService(
	ordonnanceRepo repositories.OrdonnanceRepository,
	patientRepo repositories.PatientRepository,
	utilisateurRepo repositories.UtilisateurRepository,
	medicamentRepo repositories.MedicamentRepository,
) *OrdonnanceService {
	return &OrdonnanceService{
		ordonnanceRepo:  ordonnanceRepo,
		patientRepo:     patientRepo,
		utilisateurRepo: utilisateurRepo,
		medicamentRepo:  medicamentRepo,
	}
}

// OrdonnanceLigneInput represents one prescribed medication line
type OrdonnanceLigneInput struct {
	MedicamentID uint   `json:"medicament_id" validate:"required"`
	Posologie    string `json:"posologie"`
	Duree        string `json:"duree"`
	Quantite     int    `json:"quantite"`
}

// OrdonnanceInput represents prescription creation input
type OrdonnanceInput struct {
	ConsultationID *uint                  `json:"consultation_id"`
	PatientID      uint                   `json:"patient_id" validate:"required"`
	MedecinID      uint                   `json:"medecin_id" validate:"required"`
	Instructions   string                 `json:"instructions"`
	ValideJours    int                    `json:"valide_jours"`
	Lignes         []OrdonnanceLigneInput `json:"lignes" validate:"required,min=1"`
}

// CreateOrdonnance creates a prescription with its medication lines. Every
// referenced medicament must exist in the catalog.
func (s *OrdonnanceService) CreateOrdonnance(ctx context.Context, input *OrdonnanceInput) (*models.Ordonnance, error) {
	if len(input.Lignes) == 0 {
		return nil, domain.ErrInvalidInput
	}

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

	lignes := make([]models.OrdonnanceMedicament, len(input.Lignes))
	for i, l := range input.Lignes {
		if _, err := s.medicamentRepo.GetByID(ctx, l.MedicamentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMedicamentNotFound
			}
			return nil, err
		}
		lignes[i] = models.OrdonnanceMedicament{
			MedicamentID: l.MedicamentID,
			Posologie:    l.Posologie,
			Duree:        l.Duree,
			Quantite:     l.Quantite,
		}
	}

	ordonnance := &models.Ordonnance{
		ConsultationID: input.ConsultationID,
		PatientID:      input.PatientID,
		MedecinID:      input.MedecinID,
		Instructions:   input.Instructions,
		Medicaments:    lignes,
	}

	if input.ValideJours > 0 {
		valide := time.Now().AddDate(0, 0, input.ValideJours)
		ordonnance.ValideJusquA = &valide
	}

	if err := s.ordonnanceRepo.Create(ctx, ordonnance); err != nil {
		return nil, err
	}
	return ordonnance, nil
}

// GetOrdonnance gets a prescription with patient, doctor and lines
func (s *OrdonnanceService) GetOrdonnance(ctx context.Context, id uint) (*models.Ordonnance, error) {
	ordonnance, err := s.ordonnanceRepo.GetByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrdonnanceNotFound
		}
		return nil, err
	}
	return ordonnance, nil
}

// ListOrdonnances lists all prescriptions
func (s *OrdonnanceService) ListOrdonnances(ctx context.Context) ([]*models.Ordonnance, error) {
	return s.ordonnanceRepo.List(ctx)
}

// ListByPatient lists a patient's prescriptions
func (s *OrdonnanceService) ListByPatient(ctx context.Context, patientID uint) ([]*models.Ordonnance, error) {
	return s.ordonnanceRepo.ListByPatient(ctx, patientID)
}

// RenderPDF renders a prescription as a printable PDF
func (s *OrdonnanceService) RenderPDF(ctx context.Context, id uint) ([]byte, error) {
	ordonnance, err := s.GetOrdonnance(ctx, id)
	if err != nil {
		return nil, err
	}

	data := pdf.OrdonnanceData{
		Numero:       ordonnance.ID,
		DateCreation: ordonnance.DateCreation,
		ValideJusquA: ordonnance.ValideJusquA,
		Instructions: ordonnance.Instructions,
	}

	if ordonnance.Patient != nil {
		data.Patient = pdf.PersonneData{Nom: ordonnance.Patient.Nom, Prenom: ordonnance.Patient.Prenom}
		data.PatientCIN = ordonnance.Patient.CIN
	}
	if ordonnance.Medecin != nil {
		data.Medecin = pdf.PersonneData{Nom: ordonnance.Medecin.Nom, Prenom: ordonnance.Medecin.Prenom}
		if ordonnance.Medecin.Specialite != nil {
			data.Specialite = ordonnance.Medecin.Specialite.Nom
		}
		if ordonnance.Medecin.Cabinet != nil {
			data.Cabinet = pdf.CabinetData{
				Nom:     ordonnance.Medecin.Cabinet.Nom,
				Adresse: ordonnance.Medecin.Cabinet.Adresse,
				NumTel:  ordonnance.Medecin.Cabinet.NumTel,
				Email:   ordonnance.Medecin.Cabinet.Email,
			}
		}
	}

	data.Lignes = make([]pdf.LigneData, len(ordonnance.Medicaments))
	for i, l := range ordonnance.Medicaments {
		ligne := pdf.LigneData{
			Posologie: l.Posologie,
			Duree:     l.Duree,
			Quantite:  l.Quantite,
		}
		if l.Medicament != nil {
			ligne.Medicament = l.Medicament.Nom
		}
		data.Lignes[i] = ligne
	}

	out, err := pdf.OrdonnancePDF(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRendering, err)
	}
	return out, nil
}
