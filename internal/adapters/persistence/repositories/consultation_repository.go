package repositories

import (
	"context"
	"time"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// consultationRepository implements ConsultationRepository interface
type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository creates a new consultation repository
func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

// Create creates a new consultation
func (r *consultationRepository) Create(ctx context.Context, consultation *models.Consultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

// GetByID gets a consultation by ID with patient and medecin preloaded
func (r *consultationRepository) GetByID(ctx context.Context, id uint) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Where("id = ?", id).
		First(&consultation).Error
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

// List lists all consultations, newest first
func (r *consultationRepository) List(ctx context.Context) ([]*models.Consultation, error) {
	var consultations []*models.Consultation
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Order("date_consultation DESC").
		Find(&consultations).Error
	return consultations, err
}

// ListByPatient lists consultations of a patient, newest first
func (r *consultationRepository) ListByPatient(ctx context.Context, patientID uint) ([]*models.Consultation, error) {
	var consultations []*models.Consultation
	err := r.db.WithContext(ctx).
		Preload("Medecin").
		Where("patient_id = ?", patientID).
		Order("date_consultation DESC").
		Find(&consultations).Error
	return consultations, err
}

// ListByMedecinBetween lists consultations of a medecin within a time window
func (r *consultationRepository) ListByMedecinBetween(ctx context.Context, medecinID uint, start, end time.Time) ([]*models.Consultation, error) {
	var consultations []*models.Consultation
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("medecin_id = ? AND date_consultation BETWEEN ? AND ?", medecinID, start, end).
		Order("date_consultation DESC").
		Find(&consultations).Error
	return consultations, err
}
