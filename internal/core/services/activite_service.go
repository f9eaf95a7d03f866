package services

import (
	"context"
	"log"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
)

// Audit activity types
const (
	ActiviteUtilisateur = "UTILISATEUR"
	ActiviteCabinet     = "CABINET"
	ActiviteMedicament  = "MEDICAMENT"
)

// ActiviteService records administrative actions in the append-only audit
// log. Recording is best-effort: a failed write is logged and swallowed so
// it never rolls back the action it describes.
type ActiviteService struct {
	activiteRepo repositories.ActiviteAdminRepository
}

// NewActiviteService creates a new activite service
func NewActiviteService(activiteRepo repositories.ActiviteAdminRepository) *ActiviteService {
	return &ActiviteService{activiteRepo: activiteRepo}
}

// Log records one administrative action
func (s *ActiviteService) Log(ctx context.Context, adminID *uint, typ, titre, description string) {
	err := s.activiteRepo.Create(ctx, &models.ActiviteAdmin{
		AdminID:     adminID,
		Type:        typ,
		Titre:       titre,
		Description: description,
	})
	if err != nil {
		log.Printf("❌ Failed to record admin activity '%s': %v", titre, err)
	}
}

// ListRecent returns the most recent audit entries, newest first
func (s *ActiviteService) ListRecent(ctx context.Context, limit int) ([]*models.ActiviteAdmin, error) {
	if limit < 1 {
		limit = 10
	}
	return s.activiteRepo.ListRecent(ctx, limit)
}
