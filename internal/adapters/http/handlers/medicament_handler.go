package handlers

import (
	"errors"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MedicamentHandler handles drug catalog endpoints
type MedicamentHandler struct {
	medicamentService *services.MedicamentService
}

// NewMedicamentHandler creates a new medicament handler
func NewMedicamentHandler(medicamentService *services.MedicamentService) *MedicamentHandler {
	return &MedicamentHandler{medicamentService: medicamentService}
}

// List handles catalog listing
// @Summary List medicaments
// @Description List the drug catalog, optionally filtered by name or category
// @Tags Medicaments
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or category fragment"
// @Success 200 {object} response.Response
// @Router /medicaments [get]
func (h *MedicamentHandler) List(c *fiber.Ctx) error {
	medicaments, err := h.medicamentService.ListMedicaments(c.Context(), c.Query("search"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list medicaments")
	}
	return response.Success(c, "Medicaments retrieved successfully", medicaments)
}

// Get handles fetching one catalog entry
// @Summary Get medicament
// @Tags Medicaments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicament ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicaments/{id} [get]
func (h *MedicamentHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid medicament ID")
	}

	medicament, err := h.medicamentService.GetMedicament(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMedicamentNotFound) {
			return response.NotFound(c, "Medicament not found")
		}
		return response.InternalServerError(c, "Failed to retrieve medicament")
	}
	return response.Success(c, "Medicament retrieved successfully", medicament)
}

// Create handles catalog entry creation
// @Summary Create medicament
// @Tags Medicaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MedicamentInput true "Medicament data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/medicaments [post]
func (h *MedicamentHandler) Create(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.MedicamentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Nom == "" {
		return response.BadRequest(c, "Nom is required")
	}

	medicament, err := h.medicamentService.CreateMedicament(c.Context(), aid, &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create medicament")
	}

	return response.Created(c, "Medicament created successfully", medicament)
}

// Update handles catalog entry update
// @Summary Update medicament
// @Tags Medicaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicament ID"
// @Param body body services.MedicamentInput true "Medicament data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/medicaments/{id} [put]
func (h *MedicamentHandler) Update(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid medicament ID")
	}

	var input services.MedicamentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	medicament, err := h.medicamentService.UpdateMedicament(c.Context(), aid, id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrMedicamentNotFound) {
			return response.NotFound(c, "Medicament not found")
		}
		return response.InternalServerError(c, "Failed to update medicament")
	}

	return response.Success(c, "Medicament updated successfully", medicament)
}

// Delete handles catalog entry deletion
// @Summary Delete medicament
// @Tags Medicaments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Medicament ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/medicaments/{id} [delete]
func (h *MedicamentHandler) Delete(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid medicament ID")
	}

	if err := h.medicamentService.DeleteMedicament(c.Context(), aid, id); err != nil {
		if errors.Is(err, domain.ErrMedicamentNotFound) {
			return response.NotFound(c, "Medicament not found")
		}
		return response.InternalServerError(c, "Failed to delete medicament")
	}

	return response.Success(c, "Medicament deleted successfully", nil)
}
