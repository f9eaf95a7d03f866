package models

import (
	"time"
)

// ============================================================
// Activité médicale
// ============================================================

// RendezVous statuses
const (
	RdvEnAttente = "EN_ATTENTE"
	RdvConfirme  = "CONFIRME"
	RdvAnnule    = "ANNULE"
	RdvTermine   = "TERMINE"
)

// RendezVous represents rendez_vous table (appointment)
type RendezVous struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	PatientID uint         `gorm:"index;not null" json:"patient_id"`
	MedecinID uint         `gorm:"index;not null" json:"medecin_id"`
	DateRdv   time.Time    `gorm:"column:date_rdv;not null" json:"date_rdv"`
	HeureRdv  string       `gorm:"column:heure_rdv;size:5;not null" json:"heure_rdv"`
	Motif     string       `gorm:"type:text" json:"motif"`
	Statut    string       `gorm:"size:20;default:'EN_ATTENTE'" json:"statut"`
	Notes     string       `gorm:"type:text" json:"notes"`
	CreatedAt time.Time    `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	UpdatedAt time.Time    `gorm:"column:date_modification;autoUpdateTime" json:"date_modification"`
	Patient   *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Medecin   *Utilisateur `gorm:"foreignKey:MedecinID" json:"medecin,omitempty"`
}

func (RendezVous) TableName() string {
	return "rendez_vous"
}

// Consultation represents consultation table
type Consultation struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	RendezVousID     *uint        `gorm:"column:rendez_vous_id" json:"rendez_vous_id"`
	PatientID        uint         `gorm:"index;not null" json:"patient_id"`
	MedecinID        uint         `gorm:"index;not null" json:"medecin_id"`
	Diagnostic       string       `gorm:"type:text" json:"diagnostic"`
	Traitement       string       `gorm:"type:text" json:"traitement"`
	Observations     string       `gorm:"type:text" json:"observations"`
	DateConsultation time.Time    `gorm:"column:date_consultation;autoCreateTime" json:"date_consultation"`
	Duree            int          `json:"duree"`
	RendezVous       *RendezVous  `gorm:"foreignKey:RendezVousID" json:"rendez_vous,omitempty"`
	Patient          *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Medecin          *Utilisateur `gorm:"foreignKey:MedecinID" json:"medecin,omitempty"`
}

func (Consultation) TableName() string {
	return "consultation"
}

// Medicament represents medicament table (drug catalog)
type Medicament struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nom          string    `gorm:"size:255;not null" json:"nom"`
	Description  string    `gorm:"type:text" json:"description"`
	Posologie    string    `gorm:"size:500" json:"posologie"`
	Categorie    string    `gorm:"size:100" json:"categorie"`
	Fabricant    string    `gorm:"size:255" json:"fabricant"`
	DateCreation time.Time `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
}

func (Medicament) TableName() string {
	return "medicament"
}

// Ordonnance represents ordonnance table (prescription)
type Ordonnance struct {
	ID             uint                   `gorm:"primaryKey" json:"id"`
	ConsultationID *uint                  `json:"consultation_id"`
	PatientID      uint                   `gorm:"index;not null" json:"patient_id"`
	MedecinID      uint                   `gorm:"index;not null" json:"medecin_id"`
	Instructions   string                 `gorm:"type:text" json:"instructions"`
	DateCreation   time.Time              `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	ValideJusquA   *time.Time             `gorm:"column:valide_jusqu_a" json:"valide_jusqu_a"`
	Consultation   *Consultation          `gorm:"foreignKey:ConsultationID" json:"consultation,omitempty"`
	Patient        *Patient               `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Medecin        *Utilisateur           `gorm:"foreignKey:MedecinID" json:"medecin,omitempty"`
	Medicaments    []OrdonnanceMedicament `gorm:"foreignKey:OrdonnanceID" json:"medicaments,omitempty"`
}

func (Ordonnance) TableName() string {
	return "ordonnance"
}

// OrdonnanceMedicament represents ordonnance_medicament table (prescription line item)
type OrdonnanceMedicament struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrdonnanceID uint        `gorm:"index;not null" json:"ordonnance_id"`
	MedicamentID uint        `gorm:"not null" json:"medicament_id"`
	Posologie    string      `gorm:"size:500" json:"posologie"`
	Duree        string      `gorm:"size:100" json:"duree"`
	Quantite     int         `json:"quantite"`
	Medicament   *Medicament `gorm:"foreignKey:MedicamentID" json:"medicament,omitempty"`
}

func (OrdonnanceMedicament) TableName() string {
	return "ordonnance_medicament"
}

// DossierMedical represents dossier_medical table (medical record)
type DossierMedical struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	PatientID       uint         `gorm:"uniqueIndex;not null" json:"patient_id"`
	MedecinID       uint         `gorm:"index;not null" json:"medecin_id"`
	Diagnostic      string       `gorm:"type:text" json:"diagnostic"`
	Traitement      string       `gorm:"type:text" json:"traitement"`
	Observations    string       `gorm:"type:text" json:"observations"`
	AntMedicaux     string       `gorm:"column:ant_medicaux;type:text" json:"ant_medicaux"`
	AntChirurgicaux string       `gorm:"column:ant_chirurgicaux;type:text" json:"ant_chirurgicaux"`
	Allergies       string       `gorm:"type:text" json:"allergies"`
	Habitudes       string       `gorm:"type:text" json:"habitudes"`
	CreatedAt       time.Time    `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	UpdatedAt       time.Time    `gorm:"column:date_modification;autoUpdateTime" json:"date_modification"`
	Patient         *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Medecin         *Utilisateur `gorm:"foreignKey:MedecinID" json:"medecin,omitempty"`
}

func (DossierMedical) TableName() string {
	return "dossier_medical"
}

// ============================================================
// Facturation & signalisation
// ============================================================

// Facture payment statuses
const (
	FactureEnAttente = "EN_ATTENTE"
	FacturePaye      = "PAYE"
	FactureRembourse = "REMBOURSE"
)

// Facture represents facture table (invoice).
// Montant is DECIMAL(10,2); monetary sums are always computed by the
// database over this column, never in float arithmetic in Go.
type Facture struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Numero         string        `gorm:"uniqueIndex;size:50;not null" json:"numero"`
	PatientID      uint          `gorm:"index;not null" json:"patient_id"`
	ConsultationID *uint         `json:"consultation_id"`
	Montant        float64       `gorm:"type:decimal(10,2);not null" json:"montant"`
	StatutPaiement string        `gorm:"column:statut_paiement;size:20;default:'EN_ATTENTE'" json:"statut_paiement"`
	DateEmission   time.Time     `gorm:"column:date_emission;autoCreateTime" json:"date_emission"`
	DatePaiement   *time.Time    `gorm:"column:date_paiement" json:"date_paiement"`
	DateEcheance   *time.Time    `gorm:"column:date_echeance" json:"date_echeance"`
	Notes          string        `gorm:"type:text" json:"notes"`
	Patient        *Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Consultation   *Consultation `gorm:"foreignKey:ConsultationID" json:"consultation,omitempty"`
}

func (Facture) TableName() string {
	return "facture"
}

// Notification types
const (
	NotifInfo    = "INFO"
	NotifWarning = "WARNING"
	NotifError   = "ERROR"
	NotifSuccess = "SUCCESS"
)

// Notification represents notification table.
// PatientID carries the waiting-patient reference explicitly; the Message
// text is display-only and is never parsed back.
type Notification struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Titre          string       `gorm:"size:255;not null" json:"titre"`
	Message        string       `gorm:"type:text;not null" json:"message"`
	Type           string       `gorm:"size:20;default:'INFO'" json:"type"`
	DestinataireID uint         `gorm:"index;not null" json:"destinataire_id"`
	PatientID      *uint        `gorm:"index" json:"patient_id"`
	Lu             bool         `gorm:"default:false" json:"lu"`
	DateCreation   time.Time    `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	DateLecture    *time.Time   `gorm:"column:date_lecture" json:"date_lecture"`
	Destinataire   *Utilisateur `gorm:"foreignKey:DestinataireID" json:"destinataire,omitempty"`
	Patient        *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Notification) TableName() string {
	return "notification"
}

// ActiviteAdmin represents activite_admin table (append-only audit log)
type ActiviteAdmin struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	AdminID      *uint        `gorm:"index" json:"admin_id"`
	Type         string       `gorm:"size:50;not null" json:"type"`
	Titre        string       `gorm:"size:255;not null" json:"titre"`
	Description  string       `gorm:"type:text" json:"description"`
	DateCreation time.Time    `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	Admin        *Utilisateur `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

func (ActiviteAdmin) TableName() string {
	return "activite_admin"
}
