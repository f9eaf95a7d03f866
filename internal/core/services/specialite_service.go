package services

import (
	"context"
	"strings"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
)

// SpecialiteService handles the specialty referential
type SpecialiteService struct {
	specialiteRepo repositories.SpecialiteRepository
}

// NewSpecialiteService creates a new specialite service
func NewSpecialiteService(specialiteRepo repositories.SpecialiteRepository) *SpecialiteService {
	return &SpecialiteService{specialiteRepo: specialiteRepo}
}

// SpecialiteInput represents specialite creation input
type SpecialiteInput struct {
	Nom         string `json:"nom" validate:"required"`
	Description string `json:"description"`
}

// CreateSpecialite adds a specialty
func (s *SpecialiteService) CreateSpecialite(ctx context.Context, input *SpecialiteInput) (*models.Specialite, error) {
	specialite := &models.Specialite{
		Nom:         strings.TrimSpace(input.Nom),
		Description: input.Description,
	}
	if err := s.specialiteRepo.Create(ctx, specialite); err != nil {
		return nil, err
	}
	return specialite, nil
}

// ListSpecialites lists all specialties
func (s *SpecialiteService) ListSpecialites(ctx context.Context) ([]*models.Specialite, error) {
	return s.specialiteRepo.List(ctx)
}
