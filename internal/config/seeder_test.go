package config

import (
	"fmt"
	"testing"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/pkg/password"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeederDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedMasterDataIsIdempotent(t *testing.T) {
	db := setupSeederDB(t)

	if err := SeedMasterData(db); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	var specialites int64
	if err := db.Model(&models.Specialite{}).Count(&specialites).Error; err != nil {
		t.Fatalf("count specialites: %v", err)
	}
	if specialites != 8 {
		t.Fatalf("expected 8 specialites, got %d", specialites)
	}

	var admin models.Utilisateur
	if err := db.Where("email = ?", "admin@cabmed.local").First(&admin).Error; err != nil {
		t.Fatalf("admin lookup: %v", err)
	}
	if admin.Role != models.RoleAdministrateur || !admin.Actif {
		t.Fatalf("unexpected admin account: role=%s actif=%v", admin.Role, admin.Actif)
	}
	if !password.Verify("ChangeMe123!", admin.MotDePasse) {
		t.Fatal("admin password must be the hashed default")
	}

	// A second run must not duplicate anything
	if err := SeedMasterData(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if err := db.Model(&models.Specialite{}).Count(&specialites).Error; err != nil {
		t.Fatalf("count specialites: %v", err)
	}
	if specialites != 8 {
		t.Fatalf("expected 8 specialites after reseed, got %d", specialites)
	}
	var admins int64
	if err := db.Model(&models.Utilisateur{}).Count(&admins).Error; err != nil {
		t.Fatalf("count utilisateurs: %v", err)
	}
	if admins != 1 {
		t.Fatalf("expected 1 admin after reseed, got %d", admins)
	}
}

func TestSeedMasterDataSurfacesLookupErrors(t *testing.T) {
	db := setupSeederDB(t)

	// Dropping the table makes every lookup fail with a real error, not
	// ErrRecordNotFound; the seeder must return it instead of skipping
	if err := db.Migrator().DropTable(&models.Specialite{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	if err := seedSpecialites(db); err == nil {
		t.Fatal("expected an error when the specialite lookup fails")
	}
}
