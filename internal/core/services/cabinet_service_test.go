package services

import (
	"context"
	"errors"
	"testing"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/adapters/persistence/repositories"
	"cabmed-api/internal/core/domain"

	"gorm.io/gorm"
)

func newCabinetService(db *gorm.DB) *CabinetService {
	return NewCabinetService(
		repositories.NewCabinetRepository(db),
		NewActiviteService(repositories.NewActiviteAdminRepository(db)),
	)
}

func TestCreateCabinetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := newCabinetService(db)
	ctx := context.Background()

	admin := seedUtilisateur(t, db, models.RoleAdministrateur, "admin@cabmed.local", true)

	created, err := svc.CreateCabinet(ctx, admin.ID, &CabinetInput{
		Nom:     "  Cabinet Avicenne  ",
		Adresse: "12 rue Ibn Sina, Rabat",
		NumTel:  "0537000000",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Nom != "Cabinet Avicenne" {
		t.Fatalf("expected trimmed nom got %q", created.Nom)
	}
	if !created.Actif {
		t.Fatal("expected cabinet active on creation")
	}

	fetched, err := svc.GetCabinet(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Nom != created.Nom || fetched.Adresse != created.Adresse {
		t.Fatalf("round-trip mismatch: %+v", fetched)
	}

	if _, err := svc.GetCabinet(ctx, 9999); !errors.Is(err, domain.ErrCabinetNotFound) {
		t.Fatalf("expected ErrCabinetNotFound got %v", err)
	}

	// Creation is audited
	var audits int64
	if err := db.Model(&models.ActiviteAdmin{}).Where("admin_id = ?", admin.ID).Count(&audits).Error; err != nil {
		t.Fatalf("count audits: %v", err)
	}
	if audits != 1 {
		t.Fatalf("expected 1 audit entry got %d", audits)
	}
}

func TestToggleCabinetActif(t *testing.T) {
	db := setupTestDB(t)
	svc := newCabinetService(db)
	ctx := context.Background()

	admin := seedUtilisateur(t, db, models.RoleAdministrateur, "admin@cabmed.local", true)
	cabinet, err := svc.CreateCabinet(ctx, admin.ID, &CabinetInput{Nom: "Cabinet Avicenne"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.ToggleActif(ctx, admin.ID, cabinet.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if toggled.Actif {
		t.Fatal("expected cabinet deactivated")
	}

	back, err := svc.ToggleActif(ctx, admin.ID, cabinet.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if !back.Actif {
		t.Fatal("expected cabinet reactivated")
	}
}

func TestListCabinetsSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := newCabinetService(db)
	ctx := context.Background()

	admin := seedUtilisateur(t, db, models.RoleAdministrateur, "admin@cabmed.local", true)
	for _, nom := range []string{"Cabinet Avicenne", "Cabinet Averroes", "Clinique Atlas"} {
		if _, err := svc.CreateCabinet(ctx, admin.ID, &CabinetInput{Nom: nom}); err != nil {
			t.Fatalf("create %s: %v", nom, err)
		}
	}

	all, err := svc.ListCabinets(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 cabinets got %d", len(all))
	}

	matches, err := svc.ListCabinets(ctx, "Cabinet Av")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches got %d", len(matches))
	}
}
