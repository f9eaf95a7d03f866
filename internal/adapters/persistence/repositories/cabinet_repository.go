package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// cabinetRepository implements CabinetRepository interface
type cabinetRepository struct {
	db *gorm.DB
}

// NewCabinetRepository creates a new cabinet repository
func NewCabinetRepository(db *gorm.DB) CabinetRepository {
	return &cabinetRepository{db: db}
}

// Create creates a new cabinet
func (r *cabinetRepository) Create(ctx context.Context, cabinet *models.Cabinet) error {
	return r.db.WithContext(ctx).Create(cabinet).Error
}

// GetByID gets a cabinet by ID
func (r *cabinetRepository) GetByID(ctx context.Context, id uint) (*models.Cabinet, error) {
	var cabinet models.Cabinet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cabinet).Error
	if err != nil {
		return nil, err
	}
	return &cabinet, nil
}

// Update updates a cabinet
func (r *cabinetRepository) Update(ctx context.Context, cabinet *models.Cabinet) error {
	return r.db.WithContext(ctx).Save(cabinet).Error
}

// Delete deletes a cabinet
func (r *cabinetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Cabinet{}, id).Error
}

// ListOrderedByCreation lists all cabinets, newest first
func (r *cabinetRepository) ListOrderedByCreation(ctx context.Context) ([]*models.Cabinet, error) {
	var cabinets []*models.Cabinet
	err := r.db.WithContext(ctx).Order("date_creation DESC").Find(&cabinets).Error
	return cabinets, err
}

// SearchByNom searches cabinets by nom
func (r *cabinetRepository) SearchByNom(ctx context.Context, nom string) ([]*models.Cabinet, error) {
	var cabinets []*models.Cabinet
	err := r.db.WithContext(ctx).
		Where("nom LIKE ?", "%"+nom+"%").
		Find(&cabinets).Error
	return cabinets, err
}

// ListRecent lists the most recently created cabinets
func (r *cabinetRepository) ListRecent(ctx context.Context, limit int) ([]*models.Cabinet, error) {
	var cabinets []*models.Cabinet
	err := r.db.WithContext(ctx).
		Order("date_creation DESC").
		Limit(limit).
		Find(&cabinets).Error
	return cabinets, err
}
