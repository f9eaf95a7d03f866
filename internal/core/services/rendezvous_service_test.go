package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

func newRendezVousService(db *gorm.DB) *RendezVousService {
	return NewRendezVousService(
		repositories.NewRendezVousRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
		time.UTC,
	)
}

func TestCreateRendezVous(t *testing.T) {
	db := setupTestDB(t)
	svc := newRendezVousService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	rdv, err := svc.CreateRendezVous(ctx, &RendezVousInput{
		PatientID: patient.ID,
		MedecinID: medecin.ID,
		DateRdv:   "2026-09-15",
		HeureRdv:  "10:30",
		Motif:     "Controle annuel",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rdv.Statut != models.RdvEnAttente {
		t.Fatalf("expected EN_ATTENTE got %q", rdv.Statut)
	}
	if rdv.HeureRdv != "10:30" {
		t.Fatalf("expected heure 10:30 got %q", rdv.HeureRdv)
	}
}

func TestCreateRendezVousValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newRendezVousService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	cases := []struct {
		name  string
		input RendezVousInput
		want  error
	}{
		{"unknown patient", RendezVousInput{PatientID: 9999, MedecinID: medecin.ID, DateRdv: "2026-09-15", HeureRdv: "10:30"}, domain.ErrPatientNotFound},
		{"unknown medecin", RendezVousInput{PatientID: patient.ID, MedecinID: 9999, DateRdv: "2026-09-15", HeureRdv: "10:30"}, domain.ErrUtilisateurNotFound},
		{"bad date", RendezVousInput{PatientID: patient.ID, MedecinID: medecin.ID, DateRdv: "15/09/2026", HeureRdv: "10:30"}, domain.ErrInvalidInput},
		{"bad heure", RendezVousInput{PatientID: patient.ID, MedecinID: medecin.ID, DateRdv: "2026-09-15", HeureRdv: "10h30"}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateRendezVous(ctx, &tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, err)
			}
		})
	}
}

func TestChangeStatut(t *testing.T) {
	db := setupTestDB(t)
	svc := newRendezVousService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	rdv, err := svc.CreateRendezVous(ctx, &RendezVousInput{
		PatientID: patient.ID, MedecinID: medecin.ID, DateRdv: "2026-09-15", HeureRdv: "10:30",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	confirmed, err := svc.ChangeStatut(ctx, rdv.ID, models.RdvConfirme)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Statut != models.RdvConfirme {
		t.Fatalf("expected CONFIRME got %q", confirmed.Statut)
	}

	if _, err := svc.ChangeStatut(ctx, rdv.ID, "REPORTE"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput got %v", err)
	}
	if _, err := svc.ChangeStatut(ctx, 9999, models.RdvAnnule); !errors.Is(err, domain.ErrRendezVousNotFound) {
		t.Fatalf("expected ErrRendezVousNotFound got %v", err)
	}
}

func TestListMedecinAujourdhuiOnlyConfirmedToday(t *testing.T) {
	db := setupTestDB(t)
	svc := newRendezVousService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	autre := seedMedecin(t, db, "dr.tazi@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	today := time.Now().UTC().Format("2006-01-02")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	book := func(medecinID uint, date, heure string) *models.RendezVous {
		t.Helper()
		rdv, err := svc.CreateRendezVous(ctx, &RendezVousInput{
			PatientID: patient.ID, MedecinID: medecinID, DateRdv: date, HeureRdv: heure,
		})
		if err != nil {
			t.Fatalf("book: %v", err)
		}
		return rdv
	}

	wanted := book(medecin.ID, today, "09:00")
	if _, err := svc.ChangeStatut(ctx, wanted.ID, models.RdvConfirme); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	book(medecin.ID, today, "10:00") // stays EN_ATTENTE
	other := book(medecin.ID, tomorrow, "09:00")
	if _, err := svc.ChangeStatut(ctx, other.ID, models.RdvConfirme); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	elsewhere := book(autre.ID, today, "09:00")
	if _, err := svc.ChangeStatut(ctx, elsewhere.ID, models.RdvConfirme); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	list, err := svc.ListMedecinAujourdhui(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != wanted.ID {
		t.Fatalf("expected only the doctor's confirmed appointment of today, got %d", len(list))
	}
}

func TestDeleteRendezVous(t *testing.T) {
	db := setupTestDB(t)
	svc := newRendezVousService(db)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	rdv, err := svc.CreateRendezVous(ctx, &RendezVousInput{
		PatientID: patient.ID, MedecinID: medecin.ID, DateRdv: "2026-09-15", HeureRdv: "10:30",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteRendezVous(ctx, rdv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetRendezVous(ctx, rdv.ID); !errors.Is(err, domain.ErrRendezVousNotFound) {
		t.Fatalf("expected ErrRendezVousNotFound got %v", err)
	}
	if err := svc.DeleteRendezVous(ctx, rdv.ID); !errors.Is(err, domain.ErrRendezVousNotFound) {
		t.Fatalf("expected ErrRendezVousNotFound on double delete got %v", err)
	}
}
