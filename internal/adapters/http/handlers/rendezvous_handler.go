package handlers

import (
	"errors"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RendezVousHandler handles appointment endpoints
type RendezVousHandler struct {
	rdvService *services.RendezVousService
}

// NewRendezVousHandler creates a new rendez-vous handler
func NewRendezVousHandler(rdvService *services.RendezVousService) *RendezVousHandler {
	return &RendezVousHandler{rdvService: rdvService}
}

// StatutRequest represents a status transition request body
type StatutRequest struct {
	Statut string `json:"statut"`
}

// Create handles appointment booking
// @Summary Create rendez-vous
// @Tags RendezVous
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RendezVousInput true "Rendez-vous data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rendez-vous [post]
func (h *RendezVousHandler) Create(c *fiber.Ctx) error {
	var input services.RendezVousInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.PatientID == 0 || input.MedecinID == 0 || input.DateRdv == "" || input.HeureRdv == "" {
		return response.BadRequest(c, "patient_id, medecin_id, date_rdv and heure_rdv are required")
	}

	rdv, err := h.rdvService.CreateRendezVous(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, domain.ErrUtilisateurNotFound):
			return response.NotFound(c, "Medecin not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date or time format")
		default:
			return response.InternalServerError(c, "Failed to create rendez-vous")
		}
	}

	return response.Created(c, "Rendez-vous created successfully", rdv)
}

// Get handles fetching one appointment
// @Summary Get rendez-vous
// @Tags RendezVous
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rendez-vous ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rendez-vous/{id} [get]
func (h *RendezVousHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid rendez-vous ID")
	}

	rdv, err := h.rdvService.GetRendezVous(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRendezVousNotFound) {
			return response.NotFound(c, "Rendez-vous not found")
		}
		return response.InternalServerError(c, "Failed to retrieve rendez-vous")
	}
	return response.Success(c, "Rendez-vous retrieved successfully", rdv)
}

// Update handles rescheduling
// @Summary Update rendez-vous
// @Tags RendezVous
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rendez-vous ID"
// @Param body body services.RendezVousInput true "Rendez-vous data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rendez-vous/{id} [put]
func (h *RendezVousHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid rendez-vous ID")
	}

	var input services.RendezVousInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rdv, err := h.rdvService.UpdateRendezVous(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRendezVousNotFound):
			return response.NotFound(c, "Rendez-vous not found")
		case errors.Is(err, domain.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, domain.ErrUtilisateurNotFound):
			return response.NotFound(c, "Medecin not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date or time format")
		default:
			return response.InternalServerError(c, "Failed to update rendez-vous")
		}
	}

	return response.Success(c, "Rendez-vous updated successfully", rdv)
}

// ChangeStatut handles status transitions
// @Summary Change rendez-vous status
// @Description Move an appointment to EN_ATTENTE, CONFIRME, ANNULE or TERMINE
// @Tags RendezVous
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rendez-vous ID"
// @Param body body StatutRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rendez-vous/{id}/statut [patch]
func (h *RendezVousHandler) ChangeStatut(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid rendez-vous ID")
	}

	var req StatutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rdv, err := h.rdvService.ChangeStatut(c.Context(), id, req.Statut)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRendezVousNotFound):
			return response.NotFound(c, "Rendez-vous not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid status")
		default:
			return response.InternalServerError(c, "Failed to change status")
		}
	}

	return response.Success(c, "Status changed successfully", rdv)
}

// Delete handles appointment removal
// @Summary Delete rendez-vous
// @Tags RendezVous
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rendez-vous ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rendez-vous/{id} [delete]
func (h *RendezVousHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid rendez-vous ID")
	}

	if err := h.rdvService.DeleteRendezVous(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRendezVousNotFound) {
			return response.NotFound(c, "Rendez-vous not found")
		}
		return response.InternalServerError(c, "Failed to delete rendez-vous")
	}

	return response.Success(c, "Rendez-vous deleted successfully", nil)
}

// List handles appointment listing
// @Summary List rendez-vous
// @Tags RendezVous
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rendez-vous [get]
func (h *RendezVousHandler) List(c *fiber.Ctx) error {
	rdvs, err := h.rdvService.ListRendezVous(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list rendez-vous")
	}
	return response.Success(c, "Rendez-vous retrieved successfully", rdvs)
}

// Aujourdhui lists today's appointments across all doctors
// @Summary List today's rendez-vous
// @Tags RendezVous
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /rendez-vous/aujourdhui [get]
func (h *RendezVousHandler) Aujourdhui(c *fiber.Ctx) error {
	rdvs, err := h.rdvService.ListAujourdhui(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list rendez-vous")
	}
	return response.Success(c, "Rendez-vous retrieved successfully", rdvs)
}

// ListByPatient lists a patient's appointments
// @Summary List rendez-vous by patient
// @Tags RendezVous
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/rendez-vous [get]
func (h *RendezVousHandler) ListByPatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	rdvs, err := h.rdvService.ListByPatient(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to list rendez-vous")
	}
	return response.Success(c, "Rendez-vous retrieved successfully", rdvs)
}

// MesRendezVous lists the authenticated doctor's appointments
// @Summary List my rendez-vous
// @Tags RendezVous
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /medecin/rendez-vous [get]
func (h *RendezVousHandler) MesRendezVous(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	rdvs, err := h.rdvService.ListByMedecin(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list rendez-vous")
	}
	return response.Success(c, "Rendez-vous retrieved successfully", rdvs)
}

// MesRendezVousAujourdhui lists the doctor's confirmed appointments for today
// @Summary List my confirmed rendez-vous of today
// @Tags RendezVous
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /medecin/rendez-vous-aujourdhui [get]
func (h *RendezVousHandler) MesRendezVousAujourdhui(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	rdvs, err := h.rdvService.ListMedecinAujourdhui(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list rendez-vous")
	}
	return response.Success(c, "Rendez-vous retrieved successfully", rdvs)
}
