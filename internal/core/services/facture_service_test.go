package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

func newFactureService(db *gorm.DB) *FactureService {
	return NewFactureService(
		repositories.NewFactureRepository(db),
		repositories.NewPatientRepository(db),
		time.UTC,
	)
}

func TestCreateFacture(t *testing.T) {
	db := setupTestDB(t)
	svc := newFactureService(db)
	ctx := context.Background()

	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	first, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 250})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.StatutPaiement != models.FactureEnAttente {
		t.Fatalf("expected EN_ATTENTE got %q", first.StatutPaiement)
	}
	if !strings.HasPrefix(first.Numero, "FACT-") {
		t.Fatalf("expected FACT- numero got %q", first.Numero)
	}
	if first.DatePaiement != nil {
		t.Fatal("expected no payment date on a fresh invoice")
	}

	second, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 100})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if first.Numero == second.Numero {
		t.Fatalf("expected distinct numeros, both %q", first.Numero)
	}
}

func TestCreateFactureValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newFactureService(db)
	ctx := context.Background()

	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	if _, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 0}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("zero montant: expected ErrInvalidInput got %v", err)
	}
	if _, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: -10}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("negative montant: expected ErrInvalidInput got %v", err)
	}
	if _, err := svc.CreateFacture(ctx, &FactureInput{PatientID: 9999, Montant: 100}); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("unknown patient: expected ErrPatientNotFound got %v", err)
	}
	if _, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 100, DateEcheance: "31/12/2026"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad echeance: expected ErrInvalidInput got %v", err)
	}
}

func TestPayerIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newFactureService(db)
	ctx := context.Background()

	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")
	facture, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 200})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	paid, err := svc.Payer(ctx, facture.ID)
	if err != nil {
		t.Fatalf("payer: %v", err)
	}
	if paid.StatutPaiement != models.FacturePaye || paid.DatePaiement == nil {
		t.Fatalf("expected PAYE with payment date got %q %v", paid.StatutPaiement, paid.DatePaiement)
	}
	firstStamp := *paid.DatePaiement

	again, err := svc.Payer(ctx, facture.ID)
	if err != nil {
		t.Fatalf("payer twice: %v", err)
	}
	if !again.DatePaiement.Equal(firstStamp) {
		t.Fatalf("payment date moved on re-payment: %v vs %v", again.DatePaiement, firstStamp)
	}

	if _, err := svc.Payer(ctx, 9999); !errors.Is(err, domain.ErrFactureNotFound) {
		t.Fatalf("expected ErrFactureNotFound got %v", err)
	}
}

func TestListFacturesFiltering(t *testing.T) {
	db := setupTestDB(t)
	svc := newFactureService(db)
	ctx := context.Background()

	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")
	if _, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 100}); err != nil {
		t.Fatalf("create: %v", err)
	}
	toPay, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 200})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Payer(ctx, toPay.ID); err != nil {
		t.Fatalf("payer: %v", err)
	}

	all, err := svc.ListFactures(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 invoices got %d", len(all))
	}

	payees, err := svc.ListFactures(ctx, models.FacturePaye)
	if err != nil {
		t.Fatalf("list paid: %v", err)
	}
	if len(payees) != 1 || payees[0].ID != toPay.ID {
		t.Fatalf("expected the paid invoice only, got %d", len(payees))
	}

	if _, err := svc.ListFactures(ctx, "ANNULE"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown statut got %v", err)
	}
}

func TestFactureStatsMonthWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := newFactureService(db)
	ctx := context.Background()

	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	if _, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 150}); err != nil {
		t.Fatalf("create pending: %v", err)
	}

	thisMonth, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 200})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Payer(ctx, thisMonth.ID); err != nil {
		t.Fatalf("payer: %v", err)
	}

	lastMonth, err := svc.CreateFacture(ctx, &FactureInput{PatientID: patient.ID, Montant: 500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Payer(ctx, lastMonth.ID); err != nil {
		t.Fatalf("payer: %v", err)
	}
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if err := db.Model(&models.Facture{}).Where("id = ?", lastMonth.ID).
		Update("date_paiement", monthStart.Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate payment: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.EnAttente != 1 || stats.MontantEnAttente != 150 {
		t.Fatalf("pending: got %d/%.0f want 1/150", stats.EnAttente, stats.MontantEnAttente)
	}
	if stats.PayeesCeMois != 1 || stats.RevenuCeMois != 200 {
		t.Fatalf("month: got %d/%.0f want 1/200", stats.PayeesCeMois, stats.RevenuCeMois)
	}
}
