package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

func newOrdonnanceService(db *gorm.DB) *OrdonnanceService {
	return NewOrdonnanceService(
		repositories.NewOrdonnanceRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
		repositories.NewMedicamentRepository(db),
	)
}

func TestCreateOrdonnance(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrdonnanceService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")
	doliprane := seedMedicament(t, db, "Doliprane 1000mg")
	amoxicilline := seedMedicament(t, db, "Amoxicilline 500mg")

	ordonnance, err := svc.CreateOrdonnance(ctx, &OrdonnanceInput{
		PatientID:   patient.ID,
		MedecinID:   medecin.ID,
		ValideJours: 30,
		Lignes: []OrdonnanceLigneInput{
			{MedicamentID: doliprane.ID, Posologie: "1 comprime matin et soir", Duree: "7 jours", Quantite: 14},
			{MedicamentID: amoxicilline.ID, Posologie: "1 gelule 3x/jour", Duree: "5 jours", Quantite: 15},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(ordonnance.Medicaments) != 2 {
		t.Fatalf("expected 2 lines got %d", len(ordonnance.Medicaments))
	}
	if ordonnance.ValideJusquA == nil {
		t.Fatal("expected validity date")
	}
	expiry := time.Until(*ordonnance.ValideJusquA)
	if expiry < 29*24*time.Hour || expiry > 31*24*time.Hour {
		t.Fatalf("validity not ~30 days out: %v", expiry)
	}

	reloaded, err := svc.GetOrdonnance(ctx, ordonnance.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Medicaments) != 2 {
		t.Fatalf("expected lines persisted, got %d", len(reloaded.Medicaments))
	}
	if reloaded.Medicaments[0].Medicament == nil || reloaded.Medicaments[0].Medicament.Nom == "" {
		t.Fatal("expected medicament preloaded on each line")
	}
}

func TestCreateOrdonnanceValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrdonnanceService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")
	medicament := seedMedicament(t, db, "Doliprane 1000mg")

	if _, err := svc.CreateOrdonnance(ctx, &OrdonnanceInput{PatientID: patient.ID, MedecinID: medecin.ID}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("no lines: expected ErrInvalidInput got %v", err)
	}

	lignes := []OrdonnanceLigneInput{{MedicamentID: medicament.ID, Quantite: 1}}
	if _, err := svc.CreateOrdonnance(ctx, &OrdonnanceInput{PatientID: 9999, MedecinID: medecin.ID, Lignes: lignes}); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("unknown patient: expected ErrPatientNotFound got %v", err)
	}

	if _, err := svc.CreateOrdonnance(ctx, &OrdonnanceInput{PatientID: patient.ID, MedecinID: 9999, Lignes: lignes}); !errors.Is(err, domain.ErrUtilisateurNotFound) {
		t.Fatalf("unknown medecin: expected ErrUtilisateurNotFound got %v", err)
	}

	ghost := []OrdonnanceLigneInput{{MedicamentID: 9999, Quantite: 1}}
	if _, err := svc.CreateOrdonnance(ctx, &OrdonnanceInput{PatientID: patient.ID, MedecinID: medecin.ID, Lignes: ghost}); !errors.Is(err, domain.ErrMedicamentNotFound) {
		t.Fatalf("unknown medicament: expected ErrMedicamentNotFound got %v", err)
	}
}

func TestRenderPDF(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrdonnanceService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")
	medicament := seedMedicament(t, db, "Doliprane 1000mg")

	ordonnance, err := svc.CreateOrdonnance(ctx, &OrdonnanceInput{
		PatientID: patient.ID,
		MedecinID: medecin.ID,
		Lignes:    []OrdonnanceLigneInput{{MedicamentID: medicament.ID, Posologie: "1/jour", Quantite: 7}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := svc.RenderPDF(ctx, ordonnance.ID)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("expected a PDF document")
	}

	if _, err := svc.RenderPDF(ctx, 9999); !errors.Is(err, domain.ErrOrdonnanceNotFound) {
		t.Fatalf("expected ErrOrdonnanceNotFound got %v", err)
	}
}
