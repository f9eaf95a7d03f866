package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

// MedicamentService handles the drug catalog
type MedicamentService struct {
	medicamentRepo  repositories.MedicamentRepository
	activiteService *ActiviteService
}

// NewMedicamentService creates a new medicament service
func NewMedicamentService(medicamentRepo repositories.MedicamentRepository, activiteService *ActiviteService) *MedicamentService {
	return &MedicamentService{
		medicamentRepo:  medicamentRepo,
		activiteService: activiteService,
	}
}

// MedicamentInput represents medicament create/update input
type MedicamentInput struct {
	Nom         string `json:"nom" validate:"required"`
	Description string `json:"description"`
	Posologie   string `json:"posologie"`
	Categorie   string `json:"categorie"`
	Fabricant   string `json:"fabricant"`
}

// CreateMedicament adds a drug to the catalog
func (s *MedicamentService) CreateMedicament(ctx context.Context, adminID uint, input *MedicamentInput) (*models.Medicament, error) {
	medicament := &models.Medicament{
		Nom:         strings.TrimSpace(input.Nom),
		Description: input.Description,
		Posologie:   input.Posologie,
		Categorie:   input.Categorie,
		Fabricant:   input.Fabricant,
	}

	if err := s.medicamentRepo.Create(ctx, medicament); err != nil {
		return nil, err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteMedicament, "Médicament ajouté",
		fmt.Sprintf("Médicament %s ajouté au catalogue", medicament.Nom))

	return medicament, nil
}

// GetMedicament gets a medicament by ID
func (s *MedicamentService) GetMedicament(ctx context.Context, id uint) (*models.Medicament, error) {
	medicament, err := s.medicamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMedicamentNotFound
		}
		return nil, err
	}
	return medicament, nil
}

// UpdateMedicament updates a catalog entry
func (s *MedicamentService) UpdateMedicament(ctx context.Context, adminID, id uint, input *MedicamentInput) (*models.Medicament, error) {
	medicament, err := s.GetMedicament(ctx, id)
	if err != nil {
		return nil, err
	}

	medicament.Nom = strings.TrimSpace(input.Nom)
	medicament.Description = input.Description
	medicament.Posologie = input.Posologie
	medicament.Categorie = input.Categorie
	medicament.Fabricant = input.Fabricant

	if err := s.medicamentRepo.Update(ctx, medicament); err != nil {
		return nil, err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteMedicament, "Médicament modifié",
		fmt.Sprintf("Médicament %s modifié", medicament.Nom))

	return medicament, nil
}

// DeleteMedicament removes a catalog entry
func (s *MedicamentService) DeleteMedicament(ctx context.Context, adminID, id uint) error {
	medicament, err := s.GetMedicament(ctx, id)
	if err != nil {
		return err
	}

	if err := s.medicamentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteMedicament, "Médicament supprimé",
		fmt.Sprintf("Médicament %s supprimé du catalogue", medicament.Nom))

	return nil
}

// ListMedicaments lists the catalog, optionally filtered by name or category
func (s *MedicamentService) ListMedicaments(ctx context.Context, search string) ([]*models.Medicament, error) {
	return s.medicamentRepo.List(ctx, strings.TrimSpace(search))
}
