package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FactureService handles invoicing
type FactureService struct {
	factureRepo repositories.FactureRepository
	patientRepo repositories.PatientRepository
	loc         *time.Location
}

// NewFactureService creates a new facture service
func NewFactureService(
	factureRepo repositories.FactureRepository,
	patientRepo repositories.PatientRepository,
	loc *time.Location,
) *FactureService {
	if loc == nil {
		loc = time.Local
	}
	return &FactureService{
		factureRepo: factureRepo,
		patientRepo: patientRepo,
		loc:         loc,
	}
}

// FactureInput represents invoice creation input
type FactureInput struct {
	PatientID      uint    `json:"patient_id" validate:"required"`
	ConsultationID *uint   `json:"consultation_id"`
	Montant        float64 `json:"montant" validate:"required,gt=0"`
	DateEcheance   string  `json:"date_echeance"`
	Notes          string  `json:"notes"`
}

// FactureStatsData represents the invoicing summary
type FactureStatsData struct {
	EnAttente        int64   `json:"en_attente"`
	MontantEnAttente float64 `json:"montant_en_attente"`
	PayeesCeMois     int64   `json:"payees_ce_mois"`
	RevenuCeMois     float64 `json:"revenu_ce_mois"`
}

// generateNumero builds a unique invoice number from the emission instant
// and a random discriminator
func generateNumero() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("FACT-%d-%s", time.Now().UnixMilli(), suffix)
}

// CreateFacture issues an invoice, initially EN_ATTENTE
func (s *FactureService) CreateFacture(ctx context.Context, input *FactureInput) (*models.Facture, error) {
	if input.Montant <= 0 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.patientRepo.GetByID(ctx, input.PatientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, err
	}

	facture := &models.Facture{
		Numero:         generateNumero(),
		PatientID:      input.PatientID,
		ConsultationID: input.ConsultationID,
		Montant:        input.Montant,
		StatutPaiement: models.FactureEnAttente,
		Notes:          input.Notes,
	}

	if input.DateEcheance != "" {
		echeance, err := time.ParseInLocation("2006-01-02", input.DateEcheance, s.loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		facture.DateEcheance = &echeance
	}

	if err := s.factureRepo.Create(ctx, facture); err != nil {
		return nil, err
	}
	return facture, nil
}

// GetFacture gets an invoice by ID
func (s *FactureService) GetFacture(ctx context.Context, id uint) (*models.Facture, error) {
	facture, err := s.factureRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFactureNotFound
		}
		return nil, err
	}
	return facture, nil
}

// Payer settles an invoice: sets PAYE and stamps the payment date. Paying
// an already paid invoice is a no-op.
func (s *FactureService) Payer(ctx context.Context, id uint) (*models.Facture, error) {
	facture, err := s.GetFacture(ctx, id)
	if err != nil {
		return nil, err
	}

	if facture.StatutPaiement != models.FacturePaye {
		now := time.Now()
		facture.StatutPaiement = models.FacturePaye
		facture.DatePaiement = &now
		if err := s.factureRepo.Update(ctx, facture); err != nil {
			return nil, err
		}
	}

	return facture, nil
}

// ListFactures lists invoices, optionally filtered by payment status
func (s *FactureService) ListFactures(ctx context.Context, statut string) ([]*models.Facture, error) {
	switch statut {
	case "":
		return s.factureRepo.List(ctx)
	case models.FactureEnAttente, models.FacturePaye, models.FactureRembourse:
		return s.factureRepo.ListByStatut(ctx, statut)
	default:
		return nil, domain.ErrInvalidInput
	}
}

// ListByPatient lists a patient's invoices
func (s *FactureService) ListByPatient(ctx context.Context, patientID uint) ([]*models.Facture, error) {
	return s.factureRepo.ListByPatient(ctx, patientID)
}

// GetStats returns the invoicing summary. Month amounts cover the current
// month in the clinic timezone.
func (s *FactureService) GetStats(ctx context.Context) (*FactureStatsData, error) {
	data := &FactureStatsData{}

	now := time.Now().In(s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var err error
	if data.EnAttente, err = s.factureRepo.CountByStatut(ctx, models.FactureEnAttente); err != nil {
		return nil, err
	}
	if data.MontantEnAttente, err = s.factureRepo.SumEnAttente(ctx); err != nil {
		return nil, err
	}
	if data.PayeesCeMois, err = s.factureRepo.CountPaidBetween(ctx, monthStart, monthEnd); err != nil {
		return nil, err
	}
	if data.RevenuCeMois, err = s.factureRepo.SumPaidBetween(ctx, monthStart, monthEnd); err != nil {
		return nil, err
	}

	return data, nil
}
