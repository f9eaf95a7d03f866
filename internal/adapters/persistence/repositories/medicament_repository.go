package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// medicamentRepository implements MedicamentRepository interface
type medicamentRepository struct {
	db *gorm.DB
}

// NewMedicamentRepository creates a new medicament repository
func NewMedicamentRepository(db *gorm.DB) MedicamentRepository {
	return &medicamentRepository{db: db}
}

// Create creates a new medicament
func (r *medicamentRepository) Create(ctx context.Context, medicament *models.Medicament) error {
	return r.db.WithContext(ctx).Create(medicament).Error
}

// GetByID gets a medicament by ID
func (r *medicamentRepository) GetByID(ctx context.Context, id uint) (*models.Medicament, error) {
	var medicament models.Medicament
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&medicament).Error
	if err != nil {
		return nil, err
	}
	return &medicament, nil
}

// Update updates a medicament
func (r *medicamentRepository) Update(ctx context.Context, medicament *models.Medicament) error {
	return r.db.WithContext(ctx).Save(medicament).Error
}

// Delete deletes a medicament
func (r *medicamentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Medicament{}, id).Error
}

// List lists medicaments, optionally filtered by a search keyword on nom/categorie
func (r *medicamentRepository) List(ctx context.Context, search string) ([]*models.Medicament, error) {
	var medicaments []*models.Medicament
	q := r.db.WithContext(ctx)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("nom LIKE ? OR categorie LIKE ?", like, like)
	}
	err := q.Order("nom ASC").Find(&medicaments).Error
	return medicaments, err
}
