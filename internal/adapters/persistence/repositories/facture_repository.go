package repositories

import (
	"context"
	"time"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// factureRepository implements FactureRepository interface
type factureRepository struct {
	db *gorm.DB
}

// NewFactureRepository creates a new facture repository
func NewFactureRepository(db *gorm.DB) FactureRepository {
	return &factureRepository{db: db}
}

// Create creates a new facture
func (r *factureRepository) Create(ctx context.Context, facture *models.Facture) error {
	return r.db.WithContext(ctx).Create(facture).Error
}

// GetByID gets a facture by ID with patient preloaded
func (r *factureRepository) GetByID(ctx context.Context, id uint) (*models.Facture, error) {
	var facture models.Facture
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("id = ?", id).
		First(&facture).Error
	if err != nil {
		return nil, err
	}
	return &facture, nil
}

// Update updates a facture
func (r *factureRepository) Update(ctx context.Context, facture *models.Facture) error {
	return r.db.WithContext(ctx).Save(facture).Error
}

// List lists all factures, newest first
func (r *factureRepository) List(ctx context.Context) ([]*models.Facture, error) {
	var factures []*models.Facture
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Order("date_emission DESC").
		Find(&factures).Error
	return factures, err
}

// ListByPatient lists factures of a patient, newest first
func (r *factureRepository) ListByPatient(ctx context.Context, patientID uint) ([]*models.Facture, error) {
	var factures []*models.Facture
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date_emission DESC").
		Find(&factures).Error
	return factures, err
}

// ListByStatut lists factures with a given payment status
func (r *factureRepository) ListByStatut(ctx context.Context, statut string) ([]*models.Facture, error) {
	var factures []*models.Facture
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("statut_paiement = ?", statut).
		Order("date_emission DESC").
		Find(&factures).Error
	return factures, err
}

// CountByStatut counts factures with a given payment status
func (r *factureRepository) CountByStatut(ctx context.Context, statut string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Facture{}).
		Where("statut_paiement = ?", statut).
		Count(&count).Error
	return count, err
}

// SumPaidBetween sums the montant of paid factures issued within [start, end].
// The sum is computed by the database over the DECIMAL column; an empty
// result set yields 0.
func (r *factureRepository) SumPaidBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Facture{}).
		Where("statut_paiement = ? AND date_emission BETWEEN ? AND ?", models.FacturePaye, start, end).
		Select("COALESCE(SUM(montant), 0)").
		Scan(&total).Error
	return total, err
}

// SumEnAttente sums the montant of unpaid factures
func (r *factureRepository) SumEnAttente(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Facture{}).
		Where("statut_paiement = ?", models.FactureEnAttente).
		Select("COALESCE(SUM(montant), 0)").
		Scan(&total).Error
	return total, err
}

// CountPaidBetween counts paid factures whose payment date falls within [start, end]
func (r *factureRepository) CountPaidBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Facture{}).
		Where("statut_paiement = ? AND date_paiement BETWEEN ? AND ?", models.FacturePaye, start, end).
		Count(&count).Error
	return count, err
}
