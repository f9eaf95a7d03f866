package services

import (
	"context"
	"errors"
	"testing"

	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

func newDossierService(db *gorm.DB) *DossierService {
	return NewDossierService(
		repositories.NewDossierMedicalRepository(db),
		repositories.NewPatientRepository(db),
	)
}

func TestCreateDossierOnePerPatient(t *testing.T) {
	db := setupTestDB(t)
	svc := newDossierService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	input := &DossierInput{
		PatientID:   patient.ID,
		MedecinID:   medecin.ID,
		Allergies:   "Penicilline",
		AntMedicaux: "Asthme",
	}
	dossier, err := svc.CreateDossier(ctx, input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dossier.Allergies != "Penicilline" {
		t.Fatalf("expected allergies kept got %q", dossier.Allergies)
	}

	if _, err := svc.CreateDossier(ctx, input); !errors.Is(err, domain.ErrDuplicateEntry) {
		t.Fatalf("second dossier: expected ErrDuplicateEntry got %v", err)
	}

	input.PatientID = 9999
	if _, err := svc.CreateDossier(ctx, input); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("unknown patient: expected ErrPatientNotFound got %v", err)
	}
}

func TestGetDossierByPatient(t *testing.T) {
	db := setupTestDB(t)
	svc := newDossierService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	if _, err := svc.GetDossierByPatient(ctx, patient.ID); !errors.Is(err, domain.ErrDossierNotFound) {
		t.Fatalf("expected ErrDossierNotFound got %v", err)
	}

	created, err := svc.CreateDossier(ctx, &DossierInput{PatientID: patient.ID, MedecinID: medecin.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := svc.GetDossierByPatient(ctx, patient.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected dossier %d got %d", created.ID, found.ID)
	}
}

func TestUpdateDossier(t *testing.T) {
	db := setupTestDB(t)
	svc := newDossierService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	dossier, err := svc.CreateDossier(ctx, &DossierInput{PatientID: patient.ID, MedecinID: medecin.ID, Traitement: "Ventoline"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateDossier(ctx, dossier.ID, &DossierInput{
		PatientID:  patient.ID,
		MedecinID:  medecin.ID,
		Traitement: "Ventoline + Seretide",
		Habitudes:  "Non fumeur",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Traitement != "Ventoline + Seretide" || updated.Habitudes != "Non fumeur" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.UpdateDossier(ctx, 9999, &DossierInput{PatientID: patient.ID, MedecinID: medecin.ID}); !errors.Is(err, domain.ErrDossierNotFound) {
		t.Fatalf("expected ErrDossierNotFound got %v", err)
	}
}
