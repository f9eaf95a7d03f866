package repositories

import (
	"context"

	"cabmed-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// utilisateurRepository implements UtilisateurRepository interface
type utilisateurRepository struct {
	db *gorm.DB
}

// NewUtilisateurRepository creates a new utilisateur repository
func NewUtilisateurRepository(db *gorm.DB) UtilisateurRepository {
	return &utilisateurRepository{db: db}
}

// Create creates a new utilisateur
func (r *utilisateurRepository) Create(ctx context.Context, utilisateur *models.Utilisateur) error {
	return r.db.WithContext(ctx).Create(utilisateur).Error
}

// GetByID gets an utilisateur by ID with cabinet and specialite preloaded
func (r *utilisateurRepository) GetByID(ctx context.Context, id uint) (*models.Utilisateur, error) {
	var utilisateur models.Utilisateur
	err := r.db.WithContext(ctx).
		Preload("Cabinet").
		Preload("Specialite").
		Where("id = ?", id).
		First(&utilisateur).Error
	if err != nil {
		return nil, err
	}
	return &utilisateur, nil
}

// GetByEmail gets an utilisateur by email
func (r *utilisateurRepository) GetByEmail(ctx context.Context, email string) (*models.Utilisateur, error) {
	var utilisateur models.Utilisateur
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&utilisateur).Error
	if err != nil {
		return nil, err
	}
	return &utilisateur, nil
}

// Update updates an utilisateur
func (r *utilisateurRepository) Update(ctx context.Context, utilisateur *models.Utilisateur) error {
	return r.db.WithContext(ctx).Save(utilisateur).Error
}

// Delete deletes an utilisateur
func (r *utilisateurRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Utilisateur{}, id).Error
}

// ListByRoles lists utilisateurs having one of the given roles, newest first,
// optionally filtered by a search keyword on nom/prenom/email
func (r *utilisateurRepository) ListByRoles(ctx context.Context, roles []string, search string) ([]*models.Utilisateur, error) {
	var utilisateurs []*models.Utilisateur
	q := r.db.WithContext(ctx).
		Preload("Cabinet").
		Preload("Specialite").
		Where("role IN ?", roles)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("nom LIKE ? OR prenom LIKE ? OR email LIKE ?", like, like, like)
	}
	err := q.Order("date_creation DESC").Find(&utilisateurs).Error
	return utilisateurs, err
}

// ExistsByEmail checks if email exists
func (r *utilisateurRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Utilisateur{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CountByRoles counts utilisateurs having one of the given roles
func (r *utilisateurRepository) CountByRoles(ctx context.Context, roles []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Utilisateur{}).Where("role IN ?", roles).Count(&count).Error
	return count, err
}

// CountByCabinetAndRole counts utilisateurs of a role attached to a cabinet
func (r *utilisateurRepository) CountByCabinetAndRole(ctx context.Context, cabinetID uint, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Utilisateur{}).
		Where("cabinet_id = ? AND role = ?", cabinetID, role).
		Count(&count).Error
	return count, err
}

// ListByRole lists all utilisateurs of a role
func (r *utilisateurRepository) ListByRole(ctx context.Context, role string) ([]*models.Utilisateur, error) {
	var utilisateurs []*models.Utilisateur
	err := r.db.WithContext(ctx).Where("role = ?", role).Find(&utilisateurs).Error
	return utilisateurs, err
}
