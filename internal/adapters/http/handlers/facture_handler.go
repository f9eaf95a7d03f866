package handlers

import (
	"errors"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FactureHandler handles invoice endpoints
type FactureHandler struct {
	factureService *services.FactureService
}

// NewFactureHandler creates a new facture handler
func NewFactureHandler(factureService *services.FactureService) *FactureHandler {
	return &FactureHandler{factureService: factureService}
}

// Create handles invoice creation
// @Summary Create facture
// @Tags Factures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.FactureInput true "Facture data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /factures [post]
func (h *FactureHandler) Create(c *fiber.Ctx) error {
	var input services.FactureInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.PatientID == 0 {
		return response.BadRequest(c, "patient_id is required")
	}

	facture, err := h.factureService.CreateFacture(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Montant must be greater than zero")
		default:
			return response.InternalServerError(c, "Failed to create facture")
		}
	}

	return response.Created(c, "Facture created successfully", facture)
}

// Get handles fetching one invoice
// @Summary Get facture
// @Tags Factures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Facture ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /factures/{id} [get]
func (h *FactureHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid facture ID")
	}

	facture, err := h.factureService.GetFacture(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFactureNotFound) {
			return response.NotFound(c, "Facture not found")
		}
		return response.InternalServerError(c, "Failed to retrieve facture")
	}
	return response.Success(c, "Facture retrieved successfully", facture)
}

// Payer marks an invoice as paid
// @Summary Pay facture
// @Description Mark an invoice as PAYE, recording the payment date
// @Tags Factures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Facture ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /factures/{id}/payer [patch]
func (h *FactureHandler) Payer(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid facture ID")
	}

	facture, err := h.factureService.Payer(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFactureNotFound) {
			return response.NotFound(c, "Facture not found")
		}
		return response.InternalServerError(c, "Failed to pay facture")
	}
	return response.Success(c, "Facture paid successfully", facture)
}

// List handles invoice listing with an optional status filter
// @Summary List factures
// @Tags Factures
// @Produce json
// @Security BearerAuth
// @Param statut query string false "Filter by status (EN_ATTENTE, PAYE, REMBOURSE)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /factures [get]
func (h *FactureHandler) List(c *fiber.Ctx) error {
	statut := c.Query("statut")

	factures, err := h.factureService.ListFactures(c.Context(), statut)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Invalid status filter")
		}
		return response.InternalServerError(c, "Failed to list factures")
	}
	return response.Success(c, "Factures retrieved successfully", factures)
}

// ListByPatient lists a patient's invoices
// @Summary List factures by patient
// @Tags Factures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Router /patients/{id}/factures [get]
func (h *FactureHandler) ListByPatient(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid patient ID")
	}

	factures, err := h.factureService.ListByPatient(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to list factures")
	}
	return response.Success(c, "Factures retrieved successfully", factures)
}

// Stats returns billing aggregates
// @Summary Facture statistics
// @Description Pending count and amount, plus current-month paid count and revenue
// @Tags Factures
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /factures/stats [get]
func (h *FactureHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.factureService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute facture statistics")
	}
	return response.Success(c, "Facture statistics retrieved successfully", stats)
}
