package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Comptes & structure du cabinet
// ============================================================

// User roles
const (
	RoleAdministrateur = "ADMINISTRATEUR"
	RoleMedecin        = "MEDECIN"
	RoleSecretaire     = "SECRETAIRE"
)

// Utilisateur represents utilisateurs table (admin, medecin, secretaire)
type Utilisateur struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Nom          string      `gorm:"size:100;not null" json:"nom"`
	Prenom       string      `gorm:"size:100;not null" json:"prenom"`
	Email        string      `gorm:"uniqueIndex;size:100;not null" json:"email"`
	MotDePasse   string      `gorm:"column:mot_de_passe;size:255;not null" json:"-"`
	Role         string      `gorm:"size:20;not null" json:"role"`
	NumTel       string      `gorm:"size:20" json:"num_tel"`
	Actif        bool        `gorm:"default:true" json:"actif"`
	CabinetID    *uint       `json:"cabinet_id"`
	SpecialiteID *uint       `json:"specialite_id"`
	CreatedAt    time.Time   `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	UpdatedAt    time.Time   `gorm:"column:date_modification;autoUpdateTime" json:"date_modification"`
	Cabinet      *Cabinet    `gorm:"foreignKey:CabinetID" json:"cabinet,omitempty"`
	Specialite   *Specialite `gorm:"foreignKey:SpecialiteID" json:"specialite,omitempty"`
}

func (Utilisateur) TableName() string {
	return "utilisateurs"
}

// UtilisateurResponse DTO
type UtilisateurResponse struct {
	ID            uint      `json:"id"`
	Nom           string    `json:"nom"`
	Prenom        string    `json:"prenom"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	NumTel        string    `json:"num_tel"`
	Actif         bool      `json:"actif"`
	CabinetID     *uint     `json:"cabinet_id,omitempty"`
	CabinetNom    string    `json:"cabinet_nom,omitempty"`
	SpecialiteID  *uint     `json:"specialite_id,omitempty"`
	SpecialiteNom string    `json:"specialite_nom,omitempty"`
	DateCreation  time.Time `json:"date_creation"`
}

func (u *Utilisateur) ToResponse() *UtilisateurResponse {
	resp := &UtilisateurResponse{
		ID:           u.ID,
		Nom:          u.Nom,
		Prenom:       u.Prenom,
		Email:        u.Email,
		Role:         u.Role,
		NumTel:       u.NumTel,
		Actif:        u.Actif,
		CabinetID:    u.CabinetID,
		SpecialiteID: u.SpecialiteID,
		DateCreation: u.CreatedAt,
	}
	if u.Cabinet != nil {
		resp.CabinetNom = u.Cabinet.Nom
	}
	if u.Specialite != nil {
		resp.SpecialiteNom = u.Specialite.Nom
	}
	return resp
}

// Cabinet represents cabinet table (a medical office)
type Cabinet struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nom          string    `gorm:"size:255;not null" json:"nom"`
	Adresse      string    `gorm:"size:500" json:"adresse"`
	NumTel       string    `gorm:"size:20" json:"num_tel"`
	Email        string    `gorm:"size:100" json:"email"`
	Actif        bool      `gorm:"default:true" json:"actif"`
	DateCreation time.Time `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
}

func (Cabinet) TableName() string {
	return "cabinet"
}

// Specialite represents specialite table (medical specialty for medecins)
type Specialite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nom          string    `gorm:"uniqueIndex;size:100;not null" json:"nom"`
	Description  string    `gorm:"type:text" json:"description"`
	DateCreation time.Time `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
}

func (Specialite) TableName() string {
	return "specialite"
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"index;not null" json:"user_id"`
	TokenHash string      `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time   `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time  `gorm:"index" json:"revoked_at"`
	User      Utilisateur `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Patients
// ============================================================

// Patient represents patients table. CIN is the natural unique key.
type Patient struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CIN           string    `gorm:"column:cin;uniqueIndex;size:20;not null" json:"cin"`
	Nom           string    `gorm:"size:100;not null" json:"nom"`
	Prenom        string    `gorm:"size:100;not null" json:"prenom"`
	DateNaissance time.Time `gorm:"column:date_naissance" json:"date_naissance"`
	Sexe          string    `gorm:"size:1" json:"sexe"`
	NumTel        string    `gorm:"size:20" json:"num_tel"`
	Email         string    `gorm:"size:100" json:"email"`
	Adresse       string    `gorm:"size:500" json:"adresse"`
	TypeMutuelle  string    `gorm:"size:50" json:"type_mutuelle"`
	CreatedAt     time.Time `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	UpdatedAt     time.Time `gorm:"column:date_modification;autoUpdateTime" json:"date_modification"`
}

func (Patient) TableName() string {
	return "patients"
}

// AutoMigrate creates all tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Comptes & structure
		&Cabinet{},
		&Specialite{},
		&Utilisateur{},
		&RefreshToken{},
		// Dossier patient
		&Patient{},
		&DossierMedical{},
		// Activité médicale
		&RendezVous{},
		&Consultation{},
		&Ordonnance{},
		&OrdonnanceMedicament{},
		&Medicament{},
		// Facturation & signalisation
		&Facture{},
		&Notification{},
		&ActiviteAdmin{},
	)
}
