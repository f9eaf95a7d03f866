package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
)

func TestGetAdminStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatistiquesService(db, time.UTC, 8)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := db.Create(&models.Cabinet{Nom: fmt.Sprintf("Cabinet actif %d", i), Actif: true}).Error; err != nil {
			t.Fatalf("seed cabinet: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := db.Create(&models.Cabinet{Nom: fmt.Sprintf("Cabinet fermé %d", i), Actif: false}).Error; err != nil {
			t.Fatalf("seed cabinet: %v", err)
		}
	}
	for i := 0; i < 5; i++ {
		seedMedecin(t, db, fmt.Sprintf("medecin%d@cabmed.local", i))
	}
	for i := 0; i < 2; i++ {
		seedUtilisateur(t, db, models.RoleSecretaire, fmt.Sprintf("secretaire%d@cabmed.local", i), true)
	}
	// The admin account never counts as staff
	seedUtilisateur(t, db, models.RoleAdministrateur, "admin@cabmed.local", true)
	for i := 0; i < 10; i++ {
		seedMedicament(t, db, fmt.Sprintf("Medicament %d", i))
	}

	stats, err := svc.GetAdminStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.CabinetsActifs != 3 {
		t.Errorf("cabinets actifs: expected 3 got %d", stats.CabinetsActifs)
	}
	if stats.CabinetsTotal != 5 {
		t.Errorf("cabinets total: expected 5 got %d", stats.CabinetsTotal)
	}
	if stats.ComptesUtilisateurs != 7 {
		t.Errorf("comptes utilisateurs: expected 7 got %d", stats.ComptesUtilisateurs)
	}
	if stats.Medicaments != 10 {
		t.Errorf("medicaments: expected 10 got %d", stats.Medicaments)
	}
	if stats.ServicesActifs != 8 {
		t.Errorf("services actifs: expected 8 got %d", stats.ServicesActifs)
	}
}

func TestGetCabinetsRecents(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatistiquesService(db, time.UTC, 0)

	var cabinets []models.Cabinet
	for i := 0; i < 6; i++ {
		c := models.Cabinet{Nom: fmt.Sprintf("Cabinet %d", i), Actif: true}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("seed cabinet: %v", err)
		}
		// Spread creation dates so the ordering is deterministic
		created := time.Now().Add(time.Duration(i-6) * time.Hour)
		if err := db.Model(&models.Cabinet{}).Where("id = ?", c.ID).
			Update("date_creation", created).Error; err != nil {
			t.Fatalf("backdate cabinet: %v", err)
		}
		cabinets = append(cabinets, c)
	}

	// Two doctors in the newest cabinet, one belongs nowhere
	newest := cabinets[5]
	for i := 0; i < 2; i++ {
		m := seedMedecin(t, db, fmt.Sprintf("dr%d@cabmed.local", i))
		if err := db.Model(&models.Utilisateur{}).Where("id = ?", m.ID).
			Update("cabinet_id", newest.ID).Error; err != nil {
			t.Fatalf("attach medecin: %v", err)
		}
	}
	seedMedecin(t, db, "dr.libre@cabmed.local")
	// A secretary in the newest cabinet must not count as a doctor
	sec := seedUtilisateur(t, db, models.RoleSecretaire, "sec@cabmed.local", true)
	if err := db.Model(&models.Utilisateur{}).Where("id = ?", sec.ID).
		Update("cabinet_id", newest.ID).Error; err != nil {
		t.Fatalf("attach secretaire: %v", err)
	}

	rows, err := svc.GetCabinetsRecents(context.Background())
	if err != nil {
		t.Fatalf("recents: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected top 5 got %d", len(rows))
	}
	if rows[0].ID != newest.ID {
		t.Fatalf("expected newest cabinet first, got %d", rows[0].ID)
	}
	if rows[0].NbMedecins != 2 {
		t.Errorf("expected 2 medecins in newest cabinet got %d", rows[0].NbMedecins)
	}
	if rows[1].NbMedecins != 0 {
		t.Errorf("expected 0 medecins got %d", rows[1].NbMedecins)
	}
	for _, r := range rows {
		if r.ID == cabinets[0].ID {
			t.Error("oldest cabinet should have been cut from the top 5")
		}
	}
}

func TestGetMedecinStatsZeroDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatistiquesService(db, time.UTC, 0)

	medecin := seedMedecin(t, db, "dr.neuf@cabmed.local")

	stats, err := svc.GetMedecinStats(context.Background(), medecin.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PatientsTotal != 0 || stats.ConsultationsAujourdhui != 0 || stats.ConsultationsEnCours != 0 {
		t.Errorf("expected zero counters got %+v", stats)
	}
	if stats.RevenuAujourdhui != 0 {
		t.Errorf("expected 0 revenue got %f", stats.RevenuAujourdhui)
	}
}

func TestGetMedecinStatsDayCountersAgree(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatistiquesService(db, time.UTC, 0)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	patient := seedPatient(t, db, "AB123456", "Benali", "Sara")

	// One consultation today, no appointment booked at all
	if err := db.Create(&models.Consultation{PatientID: patient.ID, MedecinID: medecin.ID}).Error; err != nil {
		t.Fatalf("seed consultation: %v", err)
	}

	stats, err := svc.GetMedecinStats(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ConsultationsAujourdhui != 1 || stats.ConsultationsEnCours != 1 {
		t.Fatalf("expected both day counters at 1, got aujourdhui=%d en_cours=%d",
			stats.ConsultationsAujourdhui, stats.ConsultationsEnCours)
	}

	// Booking an appointment moves neither counter
	if err := db.Create(&models.RendezVous{
		PatientID: patient.ID, MedecinID: medecin.ID,
		DateRdv: time.Now().UTC(), HeureRdv: "10:00", Statut: models.RdvConfirme,
	}).Error; err != nil {
		t.Fatalf("seed rdv: %v", err)
	}

	stats, err = svc.GetMedecinStats(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ConsultationsAujourdhui != 1 || stats.ConsultationsEnCours != 1 {
		t.Fatalf("appointments must not count, got aujourdhui=%d en_cours=%d",
			stats.ConsultationsAujourdhui, stats.ConsultationsEnCours)
	}
}

func TestGetMedecinStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatistiquesService(db, time.UTC, 0)
	ctx := context.Background()

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	autre := seedMedecin(t, db, "dr.autre@cabmed.local")
	p1 := seedPatient(t, db, "AB111111", "Un", "Patient")
	p2 := seedPatient(t, db, "AB222222", "Deux", "Patient")

	// Two consultations today for p1 and p2, one yesterday for p1
	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)
	consults := []struct {
		patientID uint
		medecinID uint
		at        time.Time
	}{
		{p1.ID, medecin.ID, today},
		{p2.ID, medecin.ID, today},
		{p1.ID, medecin.ID, yesterday},
		{p1.ID, autre.ID, today},
	}
	var ids []uint
	for _, c := range consults {
		cons := models.Consultation{PatientID: c.patientID, MedecinID: c.medecinID}
		if err := db.Create(&cons).Error; err != nil {
			t.Fatalf("seed consultation: %v", err)
		}
		if err := db.Model(&models.Consultation{}).Where("id = ?", cons.ID).
			Update("date_consultation", c.at).Error; err != nil {
			t.Fatalf("backdate consultation: %v", err)
		}
		ids = append(ids, cons.ID)
	}

	// Confirmed appointment today, plus one EN_ATTENTE that must not count
	if err := db.Create(&models.RendezVous{
		PatientID: p1.ID, MedecinID: medecin.ID,
		DateRdv: today, HeureRdv: "10:00", Statut: models.RdvConfirme,
	}).Error; err != nil {
		t.Fatalf("seed rdv: %v", err)
	}
	if err := db.Create(&models.RendezVous{
		PatientID: p2.ID, MedecinID: medecin.ID,
		DateRdv: today, HeureRdv: "11:00", Statut: models.RdvEnAttente,
	}).Error; err != nil {
		t.Fatalf("seed rdv: %v", err)
	}

	// Invoice on today's consultation; another doctor's invoice is excluded
	if err := db.Create(&models.Facture{
		Numero: "FACT-1", PatientID: p1.ID, ConsultationID: &ids[0],
		Montant: 300, StatutPaiement: models.FactureEnAttente,
	}).Error; err != nil {
		t.Fatalf("seed facture: %v", err)
	}
	if err := db.Create(&models.Facture{
		Numero: "FACT-2", PatientID: p1.ID, ConsultationID: &ids[3],
		Montant: 999, StatutPaiement: models.FactureEnAttente,
	}).Error; err != nil {
		t.Fatalf("seed facture: %v", err)
	}

	stats, err := svc.GetMedecinStats(ctx, medecin.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PatientsTotal != 2 {
		t.Errorf("patients total: expected 2 distinct got %d", stats.PatientsTotal)
	}
	if stats.ConsultationsAujourdhui != 2 {
		t.Errorf("consultations today: expected 2 got %d", stats.ConsultationsAujourdhui)
	}
	if stats.ConsultationsEnCours != 2 {
		t.Errorf("consultations en cours: expected 2 got %d", stats.ConsultationsEnCours)
	}
	if stats.ConsultationsEnCours != stats.ConsultationsAujourdhui {
		t.Errorf("day counters disagree: aujourdhui=%d en_cours=%d",
			stats.ConsultationsAujourdhui, stats.ConsultationsEnCours)
	}
	if stats.RevenuAujourdhui != 300 {
		t.Errorf("revenue today: expected 300 got %f", stats.RevenuAujourdhui)
	}
}

func TestGetSecretaireStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatistiquesService(db, time.UTC, 0)

	medecin := seedMedecin(t, db, "dr.alami@cabmed.local")
	p1 := seedPatient(t, db, "AB111111", "Un", "Patient")
	p2 := seedPatient(t, db, "AB222222", "Deux", "Patient")

	today := time.Now().UTC()
	if err := db.Create(&models.RendezVous{
		PatientID: p1.ID, MedecinID: medecin.ID,
		DateRdv: today, HeureRdv: "09:00", Statut: models.RdvEnAttente,
	}).Error; err != nil {
		t.Fatalf("seed rdv: %v", err)
	}
	if err := db.Create(&models.RendezVous{
		PatientID: p2.ID, MedecinID: medecin.ID,
		DateRdv: today.AddDate(0, 0, 2), HeureRdv: "09:00", Statut: models.RdvEnAttente,
	}).Error; err != nil {
		t.Fatalf("seed rdv: %v", err)
	}

	// One pending, one paid this month, one paid last month (excluded)
	factures := []struct {
		numero  string
		montant float64
		statut  string
		emitted time.Time
	}{
		{"FACT-A", 150, models.FactureEnAttente, today},
		{"FACT-B", 200, models.FacturePaye, today},
		{"FACT-C", 500, models.FacturePaye, today.AddDate(0, -1, 0)},
	}
	for _, f := range factures {
		fac := models.Facture{Numero: f.numero, PatientID: p1.ID, Montant: f.montant, StatutPaiement: f.statut}
		if err := db.Create(&fac).Error; err != nil {
			t.Fatalf("seed facture: %v", err)
		}
		if err := db.Model(&models.Facture{}).Where("id = ?", fac.ID).
			Update("date_emission", f.emitted).Error; err != nil {
			t.Fatalf("backdate facture: %v", err)
		}
	}

	stats, err := svc.GetSecretaireStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PatientsTotal != 2 {
		t.Errorf("patients: expected 2 got %d", stats.PatientsTotal)
	}
	if stats.RdvAujourdhui != 1 {
		t.Errorf("rdv today: expected 1 got %d", stats.RdvAujourdhui)
	}
	if stats.FacturesEnAttente != 1 {
		t.Errorf("pending invoices: expected 1 got %d", stats.FacturesEnAttente)
	}
	if stats.RevenuTotal != 200 {
		t.Errorf("month revenue: expected 200 got %f", stats.RevenuTotal)
	}
}

func TestGetActiviteRecenteLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatistiquesService(db, time.UTC, 0)

	for i := 0; i < 12; i++ {
		entry := models.ActiviteAdmin{Type: ActiviteCabinet, Titre: fmt.Sprintf("Entrée %d", i)}
		if err := db.Create(&entry).Error; err != nil {
			t.Fatalf("seed activite: %v", err)
		}
		created := time.Now().Add(time.Duration(i-12) * time.Minute)
		if err := db.Model(&models.ActiviteAdmin{}).Where("id = ?", entry.ID).
			Update("date_creation", created).Error; err != nil {
			t.Fatalf("backdate activite: %v", err)
		}
	}

	entries, err := svc.GetActiviteRecente(context.Background())
	if err != nil {
		t.Fatalf("recente: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries got %d", len(entries))
	}
	if entries[0].Titre != "Entrée 11" {
		t.Errorf("expected newest entry first, got %q", entries[0].Titre)
	}
}
