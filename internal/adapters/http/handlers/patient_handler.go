package handlers

import (
	"errors"
	"strconv"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/pagination"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PatientHandler handles patient endpoints
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// Create handles patient creation
// @Summary Create patient
// @Description Register a new patient. The CIN must be unique.
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PatientInput true "Patient data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var input services.PatientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.CIN == "" || input.Nom == "" || input.Prenom == "" {
		return response.BadRequest(c, "CIN, nom and prenom are required")
	}

	patient, err := h.patientService.CreatePatient(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCINAlreadyExists):
			return response.Conflict(c, "A patient with this CIN already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid patient data")
		default:
			return response.InternalServerError(c, "Failed to create patient")
		}
	}

	return response.Created(c, "Patient created successfully", patient)
}

// Get handles fetching one patient
// @Summary Get patient
// @Description Get a patient by ID
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	patient, err := h.patientService.GetPatient(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return response.NotFound(c, "Patient not found")
		}
		return response.InternalServerError(c, "Failed to retrieve patient")
	}

	return response.Success(c, "Patient retrieved successfully", patient)
}

// Update handles patient update
// @Summary Update patient
// @Description Update a patient's record
// @Tags Patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Param body body services.PatientInput true "Patient data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	var input services.PatientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	patient, err := h.patientService.UpdatePatient(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, domain.ErrCINAlreadyExists):
			return response.Conflict(c, "A patient with this CIN already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid patient data")
		default:
			return response.InternalServerError(c, "Failed to update patient")
		}
	}

	return response.Success(c, "Patient updated successfully", patient)
}

// Delete handles patient deletion
// @Summary Delete patient
// @Description Delete a patient
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	if err := h.patientService.DeletePatient(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return response.NotFound(c, "Patient not found")
		}
		return response.InternalServerError(c, "Failed to delete patient")
	}

	return response.Success(c, "Patient deleted successfully", nil)
}

// List handles paginated patient listing
// @Summary List patients
// @Description List patients with pagination
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.patientService.ListPatients(c.Context(), params.Page, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list patients")
	}

	return response.Success(c, "Patients retrieved successfully", result)
}

// Search handles patient search
// @Summary Search patients
// @Description Search patients by name fragment or exact CIN
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {object} response.Response
// @Router /patients/search [get]
func (h *PatientHandler) Search(c *fiber.Ctx) error {
	patients, err := h.patientService.SearchPatients(c.Context(), c.Query("q"))
	if err != nil {
		return response.InternalServerError(c, "Failed to search patients")
	}

	return response.Success(c, "Patients retrieved successfully", patients)
}

// ProfilComplet handles the full patient profile
// @Summary Get full patient profile
// @Description Get a patient with dossier, consultations and ordonnances
// @Tags Patients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/profil-complet [get]
func (h *PatientHandler) ProfilComplet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	profil, err := h.patientService.GetProfilComplet(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return response.NotFound(c, "Patient not found")
		}
		return response.InternalServerError(c, "Failed to retrieve patient profile")
	}

	return response.Success(c, "Patient profile retrieved successfully", profil)
}
