package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// specialiteRepository implements SpecialiteRepository interface
type specialiteRepository struct {
	db *gorm.DB
}

// NewSpecialiteRepository creates a new specialite repository
func NewSpecialiteRepository(db *gorm.DB) SpecialiteRepository {
	return &specialiteRepository{db: db}
}

func (r *specialiteRepository) Create(ctx context.Context, specialite *models.Specialite) error {
	return r.db.WithContext(ctx).Create(specialite).Error
}

func (r *specialiteRepository) GetByID(ctx context.Context, id uint) (*models.Specialite, error) {
	var specialite models.Specialite
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&specialite).Error
	if err != nil {
		return nil, err
	}
	return &specialite, nil
}

func (r *specialiteRepository) List(ctx context.Context) ([]*models.Specialite, error) {
	var specialites []*models.Specialite
	err := r.db.WithContext(ctx).Order("nom ASC").Find(&specialites).Error
	return specialites, err
}
