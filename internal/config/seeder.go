package config

import (
	"log"
	"os"

	"cabmed-api/internal/adapters/persistence/models"
	"cabmed-api/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedMasterData seeds the default administrator account and the base
// medical specialties. Existing rows are never touched.
func SeedMasterData(db *gorm.DB) error {
	if err := seedSpecialites(db); err != nil {
		return err
	}

	if err := seedAdminAccount(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedSpecialites(db *gorm.DB) error {
	specialites := []models.Specialite{
		{Nom: "Médecine générale", Description: "Prise en charge globale et suivi des patients"},
		{Nom: "Cardiologie", Description: "Maladies du cœur et des vaisseaux"},
		{Nom: "Dermatologie", Description: "Maladies de la peau, des cheveux et des ongles"},
		{Nom: "Pédiatrie", Description: "Médecine des nourrissons, enfants et adolescents"},
		{Nom: "Gynécologie", Description: "Santé de la femme et suivi gynécologique"},
		{Nom: "Ophtalmologie", Description: "Maladies de l'œil et troubles de la vision"},
		{Nom: "ORL", Description: "Oto-rhino-laryngologie"},
		{Nom: "Radiologie", Description: "Imagerie médicale et diagnostic"},
	}

	for _, sp := range specialites {
		var existing models.Specialite
		err := db.Where("nom = ?", sp.Nom).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&sp).Error; err != nil {
			return err
		}
		log.Printf("   Created specialite: %s", sp.Nom)
	}
	return nil
}

func seedAdminAccount(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "admin@cabmed.local")

	var existing models.Utilisateur
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	plaintext := os.Getenv("ADMIN_PASSWORD")
	if plaintext == "" {
		plaintext = "ChangeMe123!"
		log.Println("⚠️  ADMIN_PASSWORD not set, using the default password. Change it.")
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}

	admin := models.Utilisateur{
		Nom:        "Admin",
		Prenom:     "Cabinet",
		Email:      email,
		MotDePasse: hash,
		Role:       models.RoleAdministrateur,
		Actif:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("   Created admin account: %s", email)
	return nil
}
