package repositories

import (
	"context"
	"time"

	"cabmed-api/internal/adapters/persistence/models"
)

// UtilisateurRepository defines utilisateur repository interface
type UtilisateurRepository interface {
	Create(ctx context.Context, utilisateur *models.Utilisateur) error
	GetByID(ctx context.Context, id uint) (*models.Utilisateur, error)
	GetByEmail(ctx context.Context, email string) (*models.Utilisateur, error)
	Update(ctx context.Context, utilisateur *models.Utilisateur) error
	Delete(ctx context.Context, id uint) error
	ListByRoles(ctx context.Context, roles []string, search string) ([]*models.Utilisateur, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRoles(ctx context.Context, roles []string) (int64, error)
	CountByCabinetAndRole(ctx context.Context, cabinetID uint, role string) (int64, error)
	ListByRole(ctx context.Context, role string) ([]*models.Utilisateur, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// PatientRepository defines patient repository interface
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id uint) (*models.Patient, error)
	GetByCIN(ctx context.Context, cin string) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Patient, int64, error)
	SearchByName(ctx context.Context, query string) ([]*models.Patient, error)
	ExistsByCIN(ctx context.Context, cin string) (bool, error)
}

// CabinetRepository defines cabinet repository interface
type CabinetRepository interface {
	Create(ctx context.Context, cabinet *models.Cabinet) error
	GetByID(ctx context.Context, id uint) (*models.Cabinet, error)
	Update(ctx context.Context, cabinet *models.Cabinet) error
	Delete(ctx context.Context, id uint) error
	ListOrderedByCreation(ctx context.Context) ([]*models.Cabinet, error)
	SearchByNom(ctx context.Context, nom string) ([]*models.Cabinet, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Cabinet, error)
}

// SpecialiteRepository defines specialite repository interface
type SpecialiteRepository interface {
	Create(ctx context.Context, specialite *models.Specialite) error
	GetByID(ctx context.Context, id uint) (*models.Specialite, error)
	List(ctx context.Context) ([]*models.Specialite, error)
}

// NotificationRepository defines notification repository interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	Update(ctx context.Context, notification *models.Notification) error
	ListByDestinataire(ctx context.Context, destinataireID uint) ([]*models.Notification, error)
	ListUnreadByDestinataire(ctx context.Context, destinataireID uint) ([]*models.Notification, error)
	// ReplaceWaitingSlot atomically clears the recipient's waiting-patient
	// slot and installs the given notification in its place.
	ReplaceWaitingSlot(ctx context.Context, notification *models.Notification) error
	GetLatestWaitingSlot(ctx context.Context, destinataireID uint) (*models.Notification, error)
	ClearWaitingSlot(ctx context.Context, destinataireID uint) error
}

// RendezVousRepository defines rendez-vous repository interface
type RendezVousRepository interface {
	Create(ctx context.Context, rdv *models.RendezVous) error
	GetByID(ctx context.Context, id uint) (*models.RendezVous, error)
	Update(ctx context.Context, rdv *models.RendezVous) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.RendezVous, error)
	ListByPatient(ctx context.Context, patientID uint) ([]*models.RendezVous, error)
	ListByMedecin(ctx context.Context, medecinID uint) ([]*models.RendezVous, error)
	ListByDate(ctx context.Context, day time.Time) ([]*models.RendezVous, error)
	ListByMedecinAndDateAndStatut(ctx context.Context, medecinID uint, day time.Time, statut string) ([]*models.RendezVous, error)
}

// ConsultationRepository defines consultation repository interface
type ConsultationRepository interface {
	Create(ctx context.Context, consultation *models.Consultation) error
	GetByID(ctx context.Context, id uint) (*models.Consultation, error)
	List(ctx context.Context) ([]*models.Consultation, error)
	ListByPatient(ctx context.Context, patientID uint) ([]*models.Consultation, error)
	ListByMedecinBetween(ctx context.Context, medecinID uint, start, end time.Time) ([]*models.Consultation, error)
}

// OrdonnanceRepository defines ordonnance repository interface
type OrdonnanceRepository interface {
	Create(ctx context.Context, ordonnance *models.Ordonnance) error
	GetByID(ctx context.Context, id uint) (*models.Ordonnance, error)
	GetByIDWithDetails(ctx context.Context, id uint) (*models.Ordonnance, error)
	List(ctx context.Context) ([]*models.Ordonnance, error)
	ListByPatient(ctx context.Context, patientID uint) ([]*models.Ordonnance, error)
}

// FactureRepository defines facture repository interface
type FactureRepository interface {
	Create(ctx context.Context, facture *models.Facture) error
	GetByID(ctx context.Context, id uint) (*models.Facture, error)
	Update(ctx context.Context, facture *models.Facture) error
	List(ctx context.Context) ([]*models.Facture, error)
	ListByPatient(ctx context.Context, patientID uint) ([]*models.Facture, error)
	ListByStatut(ctx context.Context, statut string) ([]*models.Facture, error)
	CountByStatut(ctx context.Context, statut string) (int64, error)
	SumPaidBetween(ctx context.Context, start, end time.Time) (float64, error)
	SumEnAttente(ctx context.Context) (float64, error)
	CountPaidBetween(ctx context.Context, start, end time.Time) (int64, error)
}

// MedicamentRepository defines medicament repository interface
type MedicamentRepository interface {
	Create(ctx context.Context, medicament *models.Medicament) error
	GetByID(ctx context.Context, id uint) (*models.Medicament, error)
	Update(ctx context.Context, medicament *models.Medicament) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, search string) ([]*models.Medicament, error)
}

// DossierMedicalRepository defines dossier medical repository interface
type DossierMedicalRepository interface {
	Create(ctx context.Context, dossier *models.DossierMedical) error
	GetByID(ctx context.Context, id uint) (*models.DossierMedical, error)
	GetByPatientID(ctx context.Context, patientID uint) (*models.DossierMedical, error)
	Update(ctx context.Context, dossier *models.DossierMedical) error
	List(ctx context.Context) ([]*models.DossierMedical, error)
}

// ActiviteAdminRepository defines audit log repository interface.
// Entries are append-only; there is no update or delete.
type ActiviteAdminRepository interface {
	Create(ctx context.Context, activite *models.ActiviteAdmin) error
	ListRecent(ctx context.Context, limit int) ([]*models.ActiviteAdmin, error)
}
