package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// patientRepository implements PatientRepository interface
type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// Create creates a new patient
func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

// GetByID gets a patient by ID
func (r *patientRepository) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetByCIN gets a patient by CIN
func (r *patientRepository) GetByCIN(ctx context.Context, cin string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).Where("cin = ?", cin).First(&patient).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Update updates a patient
func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return r.db.WithContext(ctx).Save(patient).Error
}

// Delete deletes a patient
func (r *patientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Patient{}, id).Error
}

// List lists patients with pagination
func (r *patientRepository) List(ctx context.Context, offset, limit int) ([]*models.Patient, int64, error) {
	var patients []*models.Patient
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("date_creation DESC").
		Offset(offset).Limit(limit).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

// SearchByName searches patients by nom or prenom
func (r *patientRepository) SearchByName(ctx context.Context, query string) ([]*models.Patient, error) {
	var patients []*models.Patient
	like := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("nom LIKE ? OR prenom LIKE ?", like, like).
		Find(&patients).Error
	return patients, err
}

// ExistsByCIN checks if a patient with this CIN exists
func (r *patientRepository) ExistsByCIN(ctx context.Context, cin string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Patient{}).Where("cin = ?", cin).Count(&count).Error
	return count > 0, err
}
