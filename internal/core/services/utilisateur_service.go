package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/pkg/password"

	"gorm.io/gorm"
)

// UtilisateurService handles staff account management (admin only)
type UtilisateurService struct {
	utilisateurRepo repositories.UtilisateurRepository
	cabinetRepo     repositories.CabinetRepository
	specialiteRepo  repositories.SpecialiteRepository
	activiteService *ActiviteService
}

// NewUtilisateurService creates a new utilisateur service
func NewUtilisateurService(
	utilisateurRepo repositories.UtilisateurRepository,
	cabinetRepo repositories.CabinetRepository,
	specialiteRepo repositories.SpecialiteRepository,
	activiteService *ActiviteService,
) *UtilisateurService {
	return &UtilisateurService{
		utilisateurRepo: utilisateurRepo,
		cabinetRepo:     cabinetRepo,
		specialiteRepo:  specialiteRepo,
		activiteService: activiteService,
	}
}

// CreateUtilisateurInput represents staff account creation input
type CreateUtilisateurInput struct {
	Nom          string `json:"nom" validate:"required"`
	Prenom       string `json:"prenom" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	MotDePasse   string `json:"mot_de_passe" validate:"required,min=8"`
	Role         string `json:"role" validate:"required"`
	NumTel       string `json:"num_tel"`
	CabinetID    *uint  `json:"cabinet_id"`
	SpecialiteID *uint  `json:"specialite_id"`
}

// UpdateUtilisateurInput represents staff account update input. A nil
// MotDePasse leaves the stored hash untouched.
type UpdateUtilisateurInput struct {
	Nom          *string `json:"nom"`
	Prenom       *string `json:"prenom"`
	Email        *string `json:"email"`
	MotDePasse   *string `json:"mot_de_passe"`
	Role         *string `json:"role"`
	NumTel       *string `json:"num_tel"`
	CabinetID    *uint   `json:"cabinet_id"`
	SpecialiteID *uint   `json:"specialite_id"`
}

func validRole(role string) bool {
	switch role {
	case models.RoleAdministrateur, models.RoleMedecin, models.RoleSecretaire:
		return true
	}
	return false
}

func (s *UtilisateurService) checkRelations(ctx context.Context, cabinetID, specialiteID *uint) error {
	if cabinetID != nil {
		if _, err := s.cabinetRepo.GetByID(ctx, *cabinetID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCabinetNotFound
			}
			return err
		}
	}
	if specialiteID != nil {
		if _, err := s.specialiteRepo.GetByID(ctx, *specialiteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrSpecialiteNotFound
			}
			return err
		}
	}
	return nil
}

// ListUtilisateurs lists staff accounts (medecins and secretaires), with an
// optional name/email search
func (s *UtilisateurService) ListUtilisateurs(ctx context.Context, search string) ([]*models.UtilisateurResponse, error) {
	utilisateurs, err := s.utilisateurRepo.ListByRoles(ctx,
		[]string{models.RoleMedecin, models.RoleSecretaire}, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UtilisateurResponse, len(utilisateurs))
	for i, u := range utilisateurs {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

// ListMedecins lists all doctor accounts
func (s *UtilisateurService) ListMedecins(ctx context.Context) ([]*models.UtilisateurResponse, error) {
	medecins, err := s.utilisateurRepo.ListByRole(ctx, models.RoleMedecin)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UtilisateurResponse, len(medecins))
	for i, m := range medecins {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}

// GetUtilisateur gets a staff account by ID
func (s *UtilisateurService) GetUtilisateur(ctx context.Context, id uint) (*models.UtilisateurResponse, error) {
	utilisateur, err := s.utilisateurRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUtilisateurNotFound
		}
		return nil, err
	}
	return utilisateur.ToResponse(), nil
}

// CreateUtilisateur creates a staff account
func (s *UtilisateurService) CreateUtilisateur(ctx context.Context, adminID uint, input *CreateUtilisateurInput) (*models.UtilisateurResponse, error) {
	if !validRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}
	if !password.ValidatePassword(input.MotDePasse) {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.utilisateurRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	if err := s.checkRelations(ctx, input.CabinetID, input.SpecialiteID); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(input.MotDePasse)
	if err != nil {
		return nil, err
	}

	utilisateur := &models.Utilisateur{
		Nom:          input.Nom,
		Prenom:       input.Prenom,
		Email:        input.Email,
		MotDePasse:   hashed,
		Role:         input.Role,
		NumTel:       input.NumTel,
		Actif:        true,
		CabinetID:    input.CabinetID,
		SpecialiteID: input.SpecialiteID,
	}

	if err := s.utilisateurRepo.Create(ctx, utilisateur); err != nil {
		return nil, err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteUtilisateur, "Compte créé",
		fmt.Sprintf("Compte %s créé pour %s %s (%s)", utilisateur.Role, utilisateur.Nom, utilisateur.Prenom, utilisateur.Email))

	return utilisateur.ToResponse(), nil
}

// UpdateUtilisateur updates a staff account
func (s *UtilisateurService) UpdateUtilisateur(ctx context.Context, adminID, id uint, input *UpdateUtilisateurInput) (*models.UtilisateurResponse, error) {
	utilisateur, err := s.utilisateurRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUtilisateurNotFound
		}
		return nil, err
	}

	if input.Email != nil && *input.Email != utilisateur.Email {
		exists, err := s.utilisateurRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrEmailAlreadyExists
		}
		utilisateur.Email = *input.Email
	}

	if input.Role != nil {
		if !validRole(*input.Role) {
			return nil, domain.ErrInvalidInput
		}
		utilisateur.Role = *input.Role
	}

	if input.MotDePasse != nil && *input.MotDePasse != "" {
		if !password.ValidatePassword(*input.MotDePasse) {
			return nil, domain.ErrInvalidInput
		}
		hashed, err := password.Hash(*input.MotDePasse)
		if err != nil {
			return nil, err
		}
		utilisateur.MotDePasse = hashed
	}

	if err := s.checkRelations(ctx, input.CabinetID, input.SpecialiteID); err != nil {
		return nil, err
	}
	if input.CabinetID != nil {
		utilisateur.CabinetID = input.CabinetID
	}
	if input.SpecialiteID != nil {
		utilisateur.SpecialiteID = input.SpecialiteID
	}

	if input.Nom != nil {
		utilisateur.Nom = *input.Nom
	}
	if input.Prenom != nil {
		utilisateur.Prenom = *input.Prenom
	}
	if input.NumTel != nil {
		utilisateur.NumTel = *input.NumTel
	}

	if err := s.utilisateurRepo.Update(ctx, utilisateur); err != nil {
		return nil, err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteUtilisateur, "Compte modifié",
		fmt.Sprintf("Compte de %s %s (%s) modifié", utilisateur.Nom, utilisateur.Prenom, utilisateur.Email))

	return utilisateur.ToResponse(), nil
}

// ToggleActif flips a staff account's active flag
func (s *UtilisateurService) ToggleActif(ctx context.Context, adminID, id uint) (*models.UtilisateurResponse, error) {
	utilisateur, err := s.utilisateurRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUtilisateurNotFound
		}
		return nil, err
	}

	utilisateur.Actif = !utilisateur.Actif
	if err := s.utilisateurRepo.Update(ctx, utilisateur); err != nil {
		return nil, err
	}

	etat := "désactivé"
	if utilisateur.Actif {
		etat = "activé"
	}
	s.activiteService.Log(ctx, &adminID, ActiviteUtilisateur, "Compte "+etat,
		fmt.Sprintf("Compte de %s %s (%s) %s", utilisateur.Nom, utilisateur.Prenom, utilisateur.Email, etat))

	return utilisateur.ToResponse(), nil
}

// DeleteUtilisateur deletes a staff account. An admin cannot delete their
// own account.
func (s *UtilisateurService) DeleteUtilisateur(ctx context.Context, adminID, id uint) error {
	if adminID == id {
		return domain.ErrForbidden
	}

	utilisateur, err := s.utilisateurRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUtilisateurNotFound
		}
		return err
	}

	if err := s.utilisateurRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activiteService.Log(ctx, &adminID, ActiviteUtilisateur, "Compte supprimé",
		fmt.Sprintf("Compte de %s %s (%s) supprimé", utilisateur.Nom, utilisateur.Prenom, utilisateur.Email))

	return nil
}
