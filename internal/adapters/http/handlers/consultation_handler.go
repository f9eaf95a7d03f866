package handlers

import (
	"errors"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ConsultationHandler handles consultation endpoints
type ConsultationHandler struct {
	consultationService *services.ConsultationService
}

// NewConsultationHandler creates a new consultation handler
func NewConsultationHandler(consultationService *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

// Create handles consultation recording
// @Summary Create consultation
// @Description Record a consultation; the linked rendez-vous, if any, is marked TERMINE
// @Tags Consultations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ConsultationInput true "Consultation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /consultations [post]
func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	var input services.ConsultationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.PatientID == 0 {
		return response.BadRequest(c, "patient_id is required")
	}

	if input.MedecinID == 0 {
		// a doctor recording a consultation is its author by default
		if userID, ok := c.Locals("userID").(uint); ok {
			input.MedecinID = userID
		}
	}

	consultation, err := h.consultationService.CreateConsultation(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, domain.ErrUtilisateurNotFound):
			return response.NotFound(c, "Medecin not found")
		case errors.Is(err, domain.ErrRendezVousNotFound):
			return response.NotFound(c, "Rendez-vous not found")
		default:
			return response.InternalServerError(c, "Failed to create consultation")
		}
	}

	return response.Created(c, "Consultation created successfully", consultation)
}

// Get handles fetching one consultation
// @Summary Get consultation
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Consultation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /consultations/{id} [get]
func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid consultation ID")
	}

	consultation, err := h.consultationService.GetConsultation(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrConsultationNotFound) {
			return response.NotFound(c, "Consultation not found")
		}
		return response.InternalServerError(c, "Failed to retrieve consultation")
	}
	return response.Success(c, "Consultation retrieved successfully", consultation)
}

// List handles consultation listing
// @Summary List consultations
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /consultations [get]
func (h *ConsultationHandler) List(c *fiber.Ctx) error {
	consultations, err := h.consultationService.ListConsultations(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list consultations")
	}
	return response.Success(c, "Consultations retrieved successfully", consultations)
}

// ListByPatient lists a patient's consultation history
// @Summary List consultations by patient
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/consultations [get]
func (h *ConsultationHandler) ListByPatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	consultations, err := h.consultationService.ListByPatient(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to list consultations")
	}
	return response.Success(c, "Consultations retrieved successfully", consultations)
}

// MesConsultationsAujourdhui lists the doctor's consultations of the day
// @Summary List my consultations of today
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /medecin/consultations-aujourdhui [get]
func (h *ConsultationHandler) MesConsultationsAujourdhui(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	consultations, err := h.consultationService.ListMedecinAujourdhui(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list consultations")
	}
	return response.Success(c, "Consultations retrieved successfully", consultations)
}
