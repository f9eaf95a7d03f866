package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"
)

func TestSendPatientToMedecinRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
	)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	if err := svc.SendPatientToMedecin(ctx, patient.ID, medecin.ID); err != nil {
		t.Fatalf("send: %v", err)
	}

	out, err := svc.GetPatientEnCours(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil {
		t.Fatal("expected a waiting patient")
	}
	if out.Patient.ID != patient.ID {
		t.Fatalf("expected patient %d got %d", patient.ID, out.Patient.ID)
	}
	if !strings.Contains(out.Message, "AB123456") {
		t.Fatalf("expected message to carry the CIN, got %q", out.Message)
	}
}

func TestSendPatientToMedecinReplacesPrevious(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
	)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	first := seedPatient(t, db, "AB111111", "Premier", "Patient")
	second := seedPatient(t, db, "AB222222", "Second", "Patient")

	if err := svc.SendPatientToMedecin(ctx, first.ID, medecin.ID); err != nil {
		t.Fatalf("first send: %v", err)
	}
	if err := svc.SendPatientToMedecin(ctx, second.ID, medecin.ID); err != nil {
		t.Fatalf("second send: %v", err)
	}

	out, err := svc.GetPatientEnCours(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil || out.Patient.ID != second.ID {
		t.Fatalf("expected patient %d to hold the slot, got %+v", second.ID, out)
	}

	// The replaced hand-off must be gone, not merely superseded
	var count int64
	if err := db.Model(&models.Notification{}).
		Where("destinataire_id = ? AND patient_id IS NOT NULL", medecin.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 waiting-slot notification, got %d", count)
	}
}

func TestSendPatientToMedecinUnknownParties(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
	)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	if err := svc.SendPatientToMedecin(ctx, 9999, medecin.ID); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound got %v", err)
	}
	if err := svc.SendPatientToMedecin(ctx, patient.ID, 9999); !errors.Is(err, domain.ErrUtilisateurNotFound) {
		t.Fatalf("expected ErrUtilisateurNotFound got %v", err)
	}
}

func TestClearPatientEnCoursIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
	)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	if err := svc.SendPatientToMedecin(ctx, patient.ID, medecin.ID); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := svc.ClearPatientEnCours(ctx, medecin.ID); err != nil {
		t.Fatalf("first clear: %v", err)
	}
	if err := svc.ClearPatientEnCours(ctx, medecin.ID); err != nil {
		t.Fatalf("second clear should be a no-op: %v", err)
	}

	out, err := svc.GetPatientEnCours(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != nil {
		t.Fatalf("expected empty slot, got %+v", out)
	}
}

func TestGetPatientEnCoursEmptySlot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
	)

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")

	out, err := svc.GetPatientEnCours(context.Background(), medecin.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil for an empty slot, got %+v", out)
	}
}

func TestReminderDoesNotOccupyWaitingSlot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
	)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")

	err := svc.NotifierMedecin(ctx, medecin.ID, "Rappel", "Vous avez 3 rendez-vous confirmé(s) aujourd'hui.", models.NotifInfo)
	if err != nil {
		t.Fatalf("notifier: %v", err)
	}

	out, err := svc.GetPatientEnCours(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != nil {
		t.Fatalf("a plain notification must not fill the waiting slot, got %+v", out)
	}

	unread, err := svc.GetUnreadNotifications(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("expected 1 unread notification got %d", len(unread))
	}
}

func TestMarkAsReadStampsOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewPatientRepository(db),
		repositories.NewUtilisateurRepository(db),
	)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	if err := svc.NotifierMedecin(ctx, medecin.ID, "Rappel", "message", models.NotifInfo); err != nil {
		t.Fatalf("notifier: %v", err)
	}

	var created models.Notification
	if err := db.First(&created).Error; err != nil {
		t.Fatalf("load: %v", err)
	}

	read, err := svc.MarkAsRead(ctx, created.ID)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !read.Lu || read.DateLecture == nil {
		t.Fatalf("expected lu=true with a read date, got %+v", read)
	}

	firstStamp := *read.DateLecture
	again, err := svc.MarkAsRead(ctx, created.ID)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if !again.DateLecture.Equal(firstStamp) {
		t.Fatal("expected the read date to be stamped once")
	}

	if _, err := svc.MarkAsRead(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
