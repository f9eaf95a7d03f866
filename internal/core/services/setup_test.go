package services

import (
	"fmt"
	"testing"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/pkg/password"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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

func seedUtilisateur(t *testing.T, db *gorm.DB, role, email string, actif bool) *models.Utilisateur {
	t.Helper()
	hash, err := password.Hash("Secret123!")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &models.Utilisateur{
		Nom:        "Test",
		Prenom:     role,
		Email:      email,
		MotDePasse: hash,
		Role:       role,
		Actif:      actif,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed utilisateur: %v", err)
	}
	return u
}

func seedMedecin(t *testing.T, db *gorm.DB, email string) *models.Utilisateur {
	return seedUtilisateur(t, db, models.RoleMedecin, email, true)
}

func seedPatient(t *testing.T, db *gorm.DB, cin, nom, prenom string) *models.Patient {
	t.Helper()
	p := &models.Patient{CIN: cin, Nom: nom, Prenom: prenom}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return p
}

func seedMedicament(t *testing.T, db *gorm.DB, nom string) *models.Medicament {
	t.Helper()
	m := &models.Medicament{Nom: nom, Posologie: "1 comprimé matin et soir"}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed medicament: %v", err)
	}
	return m
}
