package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Entity resolution errors
var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrUtilisateurNotFound  = errors.New("utilisateur not found")
	ErrCabinetNotFound      = errors.New("cabinet not found")
	ErrSpecialiteNotFound   = errors.New("specialite not found")
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrRendezVousNotFound   = errors.New("rendez-vous not found")
	ErrOrdonnanceNotFound   = errors.New("ordonnance not found")
	ErrFactureNotFound      = errors.New("facture not found")
	ErrMedicamentNotFound   = errors.New("medicament not found")
	ErrDossierNotFound      = errors.New("dossier medical not found")
)

// Uniqueness violations detected at the service layer
var (
	ErrCINAlreadyExists   = errors.New("a patient with this CIN already exists")
	ErrEmailAlreadyExists = errors.New("an utilisateur with this email already exists")
)

// Document rendering
var (
	ErrRendering = errors.New("document rendering failed")
)
