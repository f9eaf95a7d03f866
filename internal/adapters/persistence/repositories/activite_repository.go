package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// activiteAdminRepository implements ActiviteAdminRepository interface
type activiteAdminRepository struct {
	db *gorm.DB
}

// NewActiviteAdminRepository creates a new activite admin repository
func NewActiviteAdminRepository(db *gorm.DB) ActiviteAdminRepository {
	return &activiteAdminRepository{db: db}
}

func (r *activiteAdminRepository) Create(ctx context.Context, activite *models.ActiviteAdmin) error {
	return r.db.WithContext(ctx).Create(activite).Error
}

func (r *activiteAdminRepository) ListRecent(ctx context.Context, limit int) ([]*models.ActiviteAdmin, error) {
	var activites []*models.ActiviteAdmin
	err := r.db.WithContext(ctx).
		Preload("Admin").
		Order("date_creation DESC").
		Limit(limit).
		Find(&activites).Error
	return activites, err
}
