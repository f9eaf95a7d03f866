package handlers

import (
	"errors"
	"fmt"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrdonnanceHandler handles prescription endpoints
type OrdonnanceHandler struct {
	ordonnanceService *services.OrdonnanceService
}

// NewOrdonnanceHandler creates a new ordonnance handler
func NewOrdonnanceHandler(ordonnanceService *services.OrdonnanceService) *OrdonnanceHandler {
	return &OrdonnanceHandler{ordonnanceService: ordonnanceService}
}

// Create handles prescription creation
// @Summary Create ordonnance
// @Description Create a prescription with its medication lines
// @Tags Ordonnances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.OrdonnanceInput true "Ordonnance data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /ordonnances [post]
func (h *OrdonnanceHandler) Create(c *fiber.Ctx) error {
	var input services.OrdonnanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.PatientID == 0 || input.MedecinID == 0 || len(input.Lignes) == 0 {
		return response.BadRequest(c, "patient_id, medecin_id and at least one ligne are required")
	}

	ordonnance, err := h.ordonnanceService.CreateOrdonnance(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, domain.ErrUtilisateurNotFound):
			return response.NotFound(c, "Medecin not found")
		case errors.Is(err, domain.ErrMedicamentNotFound):
			return response.NotFound(c, "Medicament not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid ordonnance data")
		default:
			return response.InternalServerError(c, "Failed to create ordonnance")
		}
	}

	return response.Created(c, "Ordonnance created successfully", ordonnance)
}

// Get handles fetching one prescription with its lines
// @Summary Get ordonnance
// @Tags Ordonnances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ordonnance ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /ordonnances/{id} [get]
func (h *OrdonnanceHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ordonnance ID")
	}

	ordonnance, err := h.ordonnanceService.GetOrdonnance(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOrdonnanceNotFound) {
			return response.NotFound(c, "Ordonnance not found")
		}
		return response.InternalServerError(c, "Failed to retrieve ordonnance")
	}
	return response.Success(c, "Ordonnance retrieved successfully", ordonnance)
}

// List handles prescription listing
// @Summary List ordonnances
// @Tags Ordonnances
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /ordonnances [get]
func (h *OrdonnanceHandler) List(c *fiber.Ctx) error {
	ordonnances, err := h.ordonnanceService.ListOrdonnances(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list ordonnances")
	}
	return response.Success(c, "Ordonnances retrieved successfully", ordonnances)
}

// ListByPatient lists a patient's prescriptions
// @Summary List ordonnances by patient
// @Tags Ordonnances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/ordonnances [get]
func (h *OrdonnanceHandler) ListByPatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	ordonnances, err := h.ordonnanceService.ListByPatient(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to list ordonnances")
	}
	return response.Success(c, "Ordonnances retrieved successfully", ordonnances)
}

// DownloadPDF renders a prescription as a PDF document
// @Summary Download ordonnance PDF
// @Tags Ordonnances
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Ordonnance ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /ordonnances/{id}/pdf [get]
func (h *OrdonnanceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ordonnance ID")
	}

	pdfBytes, err := h.ordonnanceService.RenderPDF(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrdonnanceNotFound):
			return response.NotFound(c, "Ordonnance not found")
		case errors.Is(err, domain.ErrRendering):
			return response.InternalServerError(c, "Failed to render PDF")
		default:
			return response.InternalServerError(c, "Failed to render PDF")
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=ordonnance-%d.pdf", id))
	return c.Send(pdfBytes)
}
