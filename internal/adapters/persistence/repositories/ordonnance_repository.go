package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ordonnanceRepository implements OrdonnanceRepository interface
type ordonnanceRepository struct {
	db *gorm.DB
}

// NewOrdonnanceRepository creates a new ordonnance repository
func NewOrdonnanceRepository(db *gorm.DB) OrdonnanceRepository {
	return &ordonnanceRepository{db: db}
}

// Create creates an ordonnance together with its line items in one transaction
func (r *ordonnanceRepository) Create(ctx context.Context, ordonnance *models.Ordonnance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(ordonnance).Error
	})
}

// GetByID gets an ordonnance by ID
func (r *ordonnanceRepository) GetByID(ctx context.Context, id uint) (*models.Ordonnance, error) {
	var ordonnance models.Ordonnance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ordonnance).Error
	if err != nil {
		return nil, err
	}
	return &ordonnance, nil
}

// GetByIDWithDetails gets an ordonnance by ID with patient, medecin and
// medication lines fully resolved
func (r *ordonnanceRepository) GetByIDWithDetails(ctx context.Context, id uint) (*models.Ordonnance, error) {
	var ordonnance models.Ordonnance
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Preload("Medecin.Cabinet").
		Preload("Medecin.Specialite").
		Preload("Medicaments").
		Preload("Medicaments.Medicament").
		Where("id = ?", id).
		First(&ordonnance).Error
	if err != nil {
		return nil, err
	}
	return &ordonnance, nil
}

// List lists all ordonnances, newest first
func (r *ordonnanceRepository) List(ctx context.Context) ([]*models.Ordonnance, error) {
	var ordonnances []*models.Ordonnance
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Order("date_creation DESC").
		Find(&ordonnances).Error
	return ordonnances, err
}

// ListByPatient lists ordonnances of a patient, newest first
func (r *ordonnanceRepository) ListByPatient(ctx context.Context, patientID uint) ([]*models.Ordonnance, error) {
	var ordonnances []*models.Ordonnance
	err := r.db.WithContext(ctx).
		Preload("Medecin").
		Preload("Medicaments").
		Preload("Medicaments.Medicament").
		Where("patient_id = ?", patientID).
		Order("date_creation DESC").
		Find(&ordonnances).Error
	return ordonnances, err
}
