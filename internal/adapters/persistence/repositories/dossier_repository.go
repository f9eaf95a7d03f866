package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// dossierMedicalRepository implements DossierMedicalRepository interface
type dossierMedicalRepository struct {
	db *gorm.DB
}

// NewDossierMedicalRepository creates a new dossier medical repository
func NewDossierMedicalRepository(db *gorm.DB) DossierMedicalRepository {
	return &dossierMedicalRepository{db: db}
}

func (r *dossierMedicalRepository) Create(ctx context.Context, dossier *models.DossierMedical) error {
	return r.db.WithContext(ctx).Create(dossier).Error
}

func (r *dossierMedicalRepository) GetByID(ctx context.Context, id uint) (*models.DossierMedical, error) {
	var dossier models.DossierMedical
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Medecin").
		Where("id = ?", id).
		First(&dossier).Error
	if err != nil {
		return nil, err
	}
	return &dossier, nil
}

func (r *dossierMedicalRepository) GetByPatientID(ctx context.Context, patientID uint) (*models.DossierMedical, error) {
	var dossier models.DossierMedical
	err := r.db.WithContext(ctx).
		Preload("Medecin").
		Where("patient_id = ?", patientID).
		First(&dossier).Error
	if err != nil {
		return nil, err
	}
	return &dossier, nil
}

func (r *dossierMedicalRepository) Update(ctx context.Context, dossier *models.DossierMedical) error {
	return r.db.WithContext(ctx).Save(dossier).Error
}

func (r *dossierMedicalRepository) List(ctx context.Context) ([]*models.DossierMedical, error) {
	var dossiers []*models.DossierMedical
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Order("date_modification DESC").
		Find(&dossiers).Error
	return dossiers, err
}
