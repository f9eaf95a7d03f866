package services

import (
	"context"
	"fmt"
	"time"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// StatistiquesService computes role dashboards with direct DB aggregation
type StatistiquesService struct {
	db             *gorm.DB
	loc            *time.Location
	servicesActifs int
}

// NewStatistiquesService creates a new statistiques service. loc is the
// clinic timezone used to evaluate "today" and "this month" windows.
func NewStatistiquesService(db *gorm.DB, loc *time.Location, servicesActifs int) *StatistiquesService {
	if loc == nil {
		loc = time.Local
	}
	return &StatistiquesService{
		db:             db,
		loc:            loc,
		servicesActifs: servicesActifs,
	}
}

// metric is one named aggregation step of a dashboard. Steps run in order;
// the first failure aborts the dashboard with the metric name attached.
type metric struct {
	name string
	run  func(ctx context.Context) error
}

func (s *StatistiquesService) runMetrics(ctx context.Context, metrics []metric) error {
	for _, m := range metrics {
		if err := m.run(ctx); err != nil {
			return fmt.Errorf("metric %s: %w", m.name, err)
		}
	}
	return nil
}

// dayWindow returns the [00:00, next day 00:00) bounds of today in the
// clinic timezone
func (s *StatistiquesService) dayWindow() (time.Time, time.Time) {
	now := time.Now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// monthWindow returns the [1st 00:00, next month 1st 00:00) bounds of the
// current month in the clinic timezone
func (s *StatistiquesService) monthWindow() (time.Time, time.Time) {
	now := time.Now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 1, 0)
}

// ============================================================
// Admin dashboard
// ============================================================

// AdminStatsData represents admin dashboard statistics
type AdminStatsData struct {
	CabinetsActifs      int64 `json:"cabinets_actifs"`
	CabinetsTotal       int64 `json:"cabinets_total"`
	ComptesUtilisateurs int64 `json:"comptes_utilisateurs"`
	Medicaments         int64 `json:"medicaments"`
	ServicesActifs      int   `json:"services_actifs"`
}

// GetAdminStats returns global platform statistics for the administrator
func (s *StatistiquesService) GetAdminStats(ctx context.Context) (*AdminStatsData, error) {
	data := &AdminStatsData{ServicesActifs: s.servicesActifs}

	err := s.runMetrics(ctx, []metric{
		{"cabinets_actifs", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("cabinet").
				Where("actif = ?", true).
				Count(&data.CabinetsActifs).Error
		}},
		{"cabinets_total", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("cabinet").
				Count(&data.CabinetsTotal).Error
		}},
		// Admin accounts are excluded from the headcount on purpose
		{"comptes_utilisateurs", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("utilisateurs").
				Where("role IN ?", []string{models.RoleMedecin, models.RoleSecretaire}).
				Count(&data.ComptesUtilisateurs).Error
		}},
		{"medicaments", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("medicament").
				Count(&data.Medicaments).Error
		}},
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// CabinetRecentData represents a recently created cabinet with its live
// count of attached doctors
type CabinetRecentData struct {
	ID           uint      `json:"id"`
	Nom          string    `json:"nom"`
	Adresse      string    `json:"adresse"`
	Actif        bool      `json:"actif"`
	DateCreation time.Time `json:"date_creation"`
	NbMedecins   int64     `json:"nb_medecins"`
}

// GetCabinetsRecents returns the 5 most recently created cabinets
func (s *StatistiquesService) GetCabinetsRecents(ctx context.Context) ([]CabinetRecentData, error) {
	var rows []CabinetRecentData
	err := s.db.WithContext(ctx).Table("cabinet").
		Select(`
			cabinet.id,
			cabinet.nom,
			cabinet.adresse,
			cabinet.actif,
			cabinet.date_creation,
			COUNT(utilisateurs.id) as nb_medecins
		`).
		Joins("LEFT JOIN utilisateurs ON utilisateurs.cabinet_id = cabinet.id AND utilisateurs.role = ?", models.RoleMedecin).
		Group("cabinet.id, cabinet.nom, cabinet.adresse, cabinet.actif, cabinet.date_creation").
		Order("cabinet.date_creation DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetActiviteRecente returns the 10 most recent audit log entries
func (s *StatistiquesService) GetActiviteRecente(ctx context.Context) ([]*models.ActiviteAdmin, error) {
	var activites []*models.ActiviteAdmin
	err := s.db.WithContext(ctx).
		Order("date_creation DESC").
		Limit(10).
		Find(&activites).Error
	return activites, err
}

// ============================================================
// Medecin dashboard
// ============================================================

// MedecinStatsData represents a doctor's daily dashboard
type MedecinStatsData struct {
	PatientsTotal           int64   `json:"patients_total"`
	ConsultationsAujourdhui int64   `json:"consultations_aujourdhui"`
	ConsultationsEnCours    int64   `json:"consultations_en_cours"`
	RevenuAujourdhui        float64 `json:"revenu_aujourdhui"`
}

// GetMedecinStats returns today's statistics for one doctor
func (s *StatistiquesService) GetMedecinStats(ctx context.Context, medecinID uint) (*MedecinStatsData, error) {
	data := &MedecinStatsData{}
	dayStart, dayEnd := s.dayWindow()

	err := s.runMetrics(ctx, []metric{
		{"patients_total", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("consultation").
				Where("medecin_id = ?", medecinID).
				Distinct("patient_id").
				Count(&data.PatientsTotal).Error
		}},
		{"consultations_aujourdhui", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("consultation").
				Where("medecin_id = ? AND date_consultation >= ? AND date_consultation < ?",
					medecinID, dayStart, dayEnd).
				Count(&data.ConsultationsAujourdhui).Error
		}},
		// Counted independently of consultations_aujourdhui; both run over
		// the same day window and must agree
		{"consultations_en_cours", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("consultation").
				Where("medecin_id = ? AND date_consultation >= ? AND date_consultation < ?",
					medecinID, dayStart, dayEnd).
				Count(&data.ConsultationsEnCours).Error
		}},
		{"revenu_aujourdhui", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("facture").
				Joins("JOIN consultation ON facture.consultation_id = consultation.id").
				Where("consultation.medecin_id = ? AND facture.date_emission >= ? AND facture.date_emission < ?",
					medecinID, dayStart, dayEnd).
				Select("COALESCE(SUM(facture.montant), 0)").
				Scan(&data.RevenuAujourdhui).Error
		}},
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// ============================================================
// Secretaire dashboard
// ============================================================

// SecretaireStatsData represents the secretary's front-desk dashboard
type SecretaireStatsData struct {
	PatientsTotal     int64   `json:"patients_total"`
	RdvAujourdhui     int64   `json:"rdv_aujourdhui"`
	FacturesEnAttente int64   `json:"factures_en_attente"`
	RevenuTotal       float64 `json:"revenu_total"`
}

// GetSecretaireStats returns the secretary's dashboard. RevenuTotal covers
// invoices paid and issued within the current month only.
func (s *StatistiquesService) GetSecretaireStats(ctx context.Context) (*SecretaireStatsData, error) {
	data := &SecretaireStatsData{}
	dayStart, dayEnd := s.dayWindow()
	monthStart, monthEnd := s.monthWindow()

	err := s.runMetrics(ctx, []metric{
		{"patients_total", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("patients").
				Count(&data.PatientsTotal).Error
		}},
		{"rdv_aujourdhui", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("rendez_vous").
				Where("date_rdv >= ? AND date_rdv < ?", dayStart, dayEnd).
				Count(&data.RdvAujourdhui).Error
		}},
		{"factures_en_attente", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("facture").
				Where("statut_paiement = ?", models.FactureEnAttente).
				Count(&data.FacturesEnAttente).Error
		}},
		{"revenu_total", func(ctx context.Context) error {
			return s.db.WithContext(ctx).Table("facture").
				Where("statut_paiement = ? AND date_emission >= ? AND date_emission < ?",
					models.FacturePaye, monthStart, monthEnd).
				Select("COALESCE(SUM(montant), 0)").
				Scan(&data.RevenuTotal).Error
		}},
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
