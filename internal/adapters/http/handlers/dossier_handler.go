package handlers

import (
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DossierHandler handles medical-record endpoints
type DossierHandler struct {
	dossierService *services.DossierService
}

// NewDossierHandler creates a new dossier handler
func NewDossierHandler(dossierService *services.DossierService) *DossierHandler {
	return &DossierHandler{dossierService: dossierService}
}

// Create handles medical record creation
// @Summary Create dossier medical
// @Tags Dossiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DossierInput true "Dossier data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /dossiers [post]
func (h *DossierHandler) Create(c *fiber.Ctx) error {
	var input services.DossierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.PatientID == 0 {
		return response.BadRequest(c, "patient_id is required")
	}

	dossier, err := h.dossierService.CreateDossier(c.Context(), &input)
	if err != nil {
		return response.FromError(c, err, "Failed to create dossier")
	}

	return response.Created(c, "Dossier created successfully", dossier)
}

// GetByPatient fetches a patient's medical record
// @Summary Get dossier by patient
// @Tags Dossiers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/dossier [get]
func (h *DossierHandler) GetByPatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	dossier, err := h.dossierService.GetDossierByPatient(c.Context(), id)
	if err != nil {
		return response.FromError(c, err, "Failed to retrieve dossier")
	}
	return response.Success(c, "Dossier retrieved successfully", dossier)
}

// Update handles medical record updates
// @Summary Update dossier medical
// @Tags Dossiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dossier ID"
// @Param body body services.DossierInput true "Dossier data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dossiers/{id} [put]
func (h *DossierHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid dossier ID")
	}

	var input services.DossierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	dossier, err := h.dossierService.UpdateDossier(c.Context(), id, &input)
	if err != nil {
		return response.FromError(c, err, "Failed to update dossier")
	}
	return response.Success(c, "Dossier updated successfully", dossier)
}

// List handles medical record listing
// @Summary List dossiers
// @Tags Dossiers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dossiers [get]
func (h *DossierHandler) List(c *fiber.Ctx) error {
	dossiers, err := h.dossierService.ListDossiers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list dossiers")
	}
	return response.Success(c, "Dossiers retrieved successfully", dossiers)
}
