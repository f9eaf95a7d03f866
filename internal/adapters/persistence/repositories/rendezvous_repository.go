package repositories

import (
	"context"
	"time"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// rendezVousRepository implements RendezVousRepository interface
type rendezVousRepository struct {
	db *gorm.DB
}

// NewRendezVousRepository creates a new rendez-vous repository
func NewRendezVousRepository(db *gorm.DB) RendezVousRepository {
	return &rendezVousRepository{db: db}
}

// Create creates a new rendez-vous
func (r *rendezVousRepository) Create(ctx context.Context, rdv *models.RendezVous) error {
	return r.db.WithContext(ctx).Create(rdv).Error
}

// GetByID gets a rendez-vous by ID with patient and medecin preloaded
func (r *rendezVousRepository) GetByID(ctx context.Context, id uint) (*models.RendezVous, error) {
	var rdv models.RendezVous
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Where("id = ?", id).
		First(&rdv).Error
	if err != nil {
		return nil, err
	}
	return &rdv, nil
}

// Update updates a rendez-vous
func (r *rendezVousRepository) Update(ctx context.Context, rdv *models.RendezVous) error {
	return r.db.WithContext(ctx).Save(rdv).Error
}

// Delete deletes a rendez-vous
func (r *rendezVousRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.RendezVous{}, id).Error
}

// List lists all rendez-vous, soonest first
func (r *rendezVousRepository) List(ctx context.Context) ([]*models.RendezVous, error) {
	var rdvs []*models.RendezVous
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Order("date_rdv DESC, heure_rdv ASC").
		Find(&rdvs).Error
	return rdvs, err
}

// ListByPatient lists rendez-vous of a patient
func (r *rendezVousRepository) ListByPatient(ctx context.Context, patientID uint) ([]*models.RendezVous, error) {
	var rdvs []*models.RendezVous
	err := r.db.WithContext(ctx).
		Preload("Medecin").
		Where("patient_id = ?", patientID).
		Order("date_rdv DESC").
		Find(&rdvs).Error
	return rdvs, err
}

// ListByMedecin lists rendez-vous of a medecin
func (r *rendezVousRepository) ListByMedecin(ctx context.Context, medecinID uint) ([]*models.RendezVous, error) {
	var rdvs []*models.RendezVous
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("medecin_id = ?", medecinID).
		Order("date_rdv DESC").
		Find(&rdvs).Error
	return rdvs, err
}

// ListByDate lists rendez-vous taking place on a given day, ordered by time
func (r *rendezVousRepository) ListByDate(ctx context.Context, day time.Time) ([]*models.RendezVous, error) {
	start, end := dayBounds(day)
	var rdvs []*models.RendezVous
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Where("date_rdv >= ? AND date_rdv < ?", start, end).
		Order("heure_rdv ASC").
		Find(&rdvs).Error
	return rdvs, err
}

// ListByMedecinAndDateAndStatut lists a medecin's rendez-vous of a given
// status on a given day, ordered by time
func (r *rendezVousRepository) ListByMedecinAndDateAndStatut(ctx context.Context, medecinID uint, day time.Time, statut string) ([]*models.RendezVous, error) {
	start, end := dayBounds(day)
	var rdvs []*models.RendezVous
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("medecin_id = ? AND date_rdv >= ? AND date_rdv < ? AND statut = ?", medecinID, start, end, statut).
		Order("heure_rdv ASC").
		Find(&rdvs).Error
	return rdvs, err
}

// dayBounds returns the [00:00, next-day 00:00) window around a day,
// in the day's own location
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
