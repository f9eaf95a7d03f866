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

// CabinetService handles cabinet management business logic
type CabinetService struct {
	cabinetRepo     repositories.CabinetRepository
	activiteService *ActiviteService
}

// NewCabinetService creates a new cabinet service
func NewCabinetService(cabinetRepo repositories.CabinetRepository, activiteService *ActiviteService) *CabinetService {
	return &CabinetService{
		cabinetRepo:     cabinetRepo,
		activiteService: activiteService,
	}
}

// CabinetInput represents cabinet create/update input
type CabinetInput struct {
	Nom     string `json:"nom" validate:"required"`
	Adresse string `json:"adresse"`
	NumTel  string `json:"num_tel"`
	Email   string `json:"email"`
}

// CreateCabinet creates a new cabinet, active by default
func (s *CabinetService) CreateCabinet(ctx context.Context, adminID uint, input *CabinetInput) (*models.Cabinet, error) {
	cabinet := &models.Cabinet{
		Nom:     strings.TrimSpace(input.Nom),
		Adresse: input.Adresse,
		NumTel:  input.NumTel,
		Email:   input.Email,
		Actif:   true,
	}

	if err := s.cabinetRepo.Create(ctx, cabinet); err != nil {
		return nil, err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteCabinet, "Cabinet créé",
		fmt.Sprintf("Cabinet %s créé", cabinet.Nom))

	return cabinet, nil
}

// GetCabinet gets a cabinet by ID
func (s *CabinetService) GetCabinet(ctx context.Context, id uint) (*models.Cabinet, error) {
	cabinet, err := s.cabinetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCabinetNotFound
		}
		return nil, err
	}
	return cabinet, nil
}

// UpdateCabinet updates a cabinet
func (s *CabinetService) UpdateCabinet(ctx context.Context, adminID, id uint, input *CabinetInput) (*models.Cabinet, error) {
	cabinet, err := s.GetCabinet(ctx, id)
	if err != nil {
		return nil, err
	}

	cabinet.Nom = strings.TrimSpace(input.Nom)
	cabinet.Adresse = input.Adresse
	cabinet.NumTel = input.NumTel
	cabinet.Email = input.Email

	if err := s.cabinetRepo.Update(ctx, cabinet); err != nil {
		return nil, err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteCabinet, "Cabinet modifié",
		fmt.Sprintf("Cabinet %s modifié", cabinet.Nom))

	return cabinet, nil
}

// ToggleActif flips a cabinet's active flag
func (s *CabinetService) ToggleActif(ctx context.Context, adminID, id uint) (*models.Cabinet, error) {
	cabinet, err := s.GetCabinet(ctx, id)
	if err != nil {
		return nil, err
	}

	cabinet.Actif = !cabinet.Actif
	if err := s.cabinetRepo.Update(ctx, cabinet); err != nil {
		return nil, err
	}

	etat := "désactivé"
	if cabinet.Actif {
		etat = "activé"
	}
	s.activiteService.Log(ctx, &adminID, ActiviteCabinet, "Cabinet "+etat,
		fmt.Sprintf("Cabinet %s %s", cabinet.Nom, etat))

	return cabinet, nil
}

// DeleteCabinet deletes a cabinet
func (s *CabinetService) DeleteCabinet(ctx context.Context, adminID, id uint) error {
	cabinet, err := s.GetCabinet(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cabinetRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteCabinet, "Cabinet supprimé",
		fmt.Sprintf("Cabinet %s supprimé", cabinet.Nom))

	return nil
}

// ListCabinets lists cabinets, newest first, optionally filtered by name
func (s *CabinetService) ListCabinets(ctx context.Context, search string) ([]*models.Cabinet, error) {
	search = strings.TrimSpace(search)
	if search != "" {
		return s.cabinetRepo.SearchByNom(ctx, search)
	}
	return s.cabinetRepo.ListOrderedByCreation(ctx)
}
