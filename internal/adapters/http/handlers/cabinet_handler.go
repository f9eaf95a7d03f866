package handlers

import (
	"errors"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CabinetHandler handles cabinet endpoints
type CabinetHandler struct {
	cabinetService    *services.CabinetService
	specialiteService *services.SpecialiteService
}

// NewCabinetHandler creates a new cabinet handler
func NewCabinetHandler(
	cabinetService *services.CabinetService,
	specialiteService *services.SpecialiteService,
) *CabinetHandler {
	return &CabinetHandler{
		cabinetService:    cabinetService,
		specialiteService: specialiteService,
	}
}

// List handles cabinet listing
// @Summary List cabinets
// @Description List cabinets, newest first, optionally filtered by name
// @Tags Cabinets
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name fragment"
// @Success 200 {object} response.Response
// @Router /cabinets [get]
func (h *CabinetHandler) List(c *fiber.Ctx) error {
	cabinets, err := h.cabinetService.ListCabinets(c.Context(), c.Query("search"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list cabinets")
	}
	return response.Success(c, "Cabinets retrieved successfully", cabinets)
}

// Get handles fetching one cabinet
// @Summary Get cabinet
// @Tags Cabinets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cabinet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cabinets/{id} [get]
func (h *CabinetHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid cabinet ID")
	}

	cabinet, err := h.cabinetService.GetCabinet(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCabinetNotFound) {
			return response.NotFound(c, "Cabinet not found")
		}
		return response.InternalServerError(c, "Failed to retrieve cabinet")
	}
	return response.Success(c, "Cabinet retrieved successfully", cabinet)
}

// Create handles cabinet creation
// @Summary Create cabinet
// @Tags Cabinets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CabinetInput true "Cabinet data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/cabinets [post]
func (h *CabinetHandler) Create(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CabinetInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Nom == "" {
		return response.BadRequest(c, "Nom is required")
	}

	cabinet, err := h.cabinetService.CreateCabinet(c.Context(), aid, &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create cabinet")
	}

	return response.Created(c, "Cabinet created successfully", cabinet)
}

// Update handles cabinet update
// @Summary Update cabinet
// @Tags Cabinets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cabinet ID"
// @Param body body services.CabinetInput true "Cabinet data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/cabinets/{id} [put]
func (h *CabinetHandler) Update(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid cabinet ID")
	}

	var input services.CabinetInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cabinet, err := h.cabinetService.UpdateCabinet(c.Context(), aid, id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrCabinetNotFound) {
			return response.NotFound(c, "Cabinet not found")
		}
		return response.InternalServerError(c, "Failed to update cabinet")
	}

	return response.Success(c, "Cabinet updated successfully", cabinet)
}

// ToggleActif handles enabling/disabling a cabinet
// @Summary Toggle cabinet active flag
// @Tags Cabinets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cabinet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/cabinets/{id}/toggle-actif [patch]
func (h *CabinetHandler) ToggleActif(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid cabinet ID")
	}

	cabinet, err := h.cabinetService.ToggleActif(c.Context(), aid, id)
	if err != nil {
		if errors.Is(err, domain.ErrCabinetNotFound) {
			return response.NotFound(c, "Cabinet not found")
		}
		return response.InternalServerError(c, "Failed to toggle cabinet")
	}

	return response.Success(c, "Cabinet toggled successfully", cabinet)
}

// Delete handles cabinet deletion
// @Summary Delete cabinet
// @Tags Cabinets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cabinet ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/cabinets/{id} [delete]
func (h *CabinetHandler) Delete(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid cabinet ID")
	}

	if err := h.cabinetService.DeleteCabinet(c.Context(), aid, id); err != nil {
		if errors.Is(err, domain.ErrCabinetNotFound) {
			return response.NotFound(c, "Cabinet not found")
		}
		return response.InternalServerError(c, "Failed to delete cabinet")
	}

	return response.Success(c, "Cabinet deleted successfully", nil)
}

// ListSpecialites handles specialty listing
// @Summary List specialites
// @Tags Cabinets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /specialites [get]
func (h *CabinetHandler) ListSpecialites(c *fiber.Ctx) error {
	specialites, err := h.specialiteService.ListSpecialites(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list specialites")
	}
	return response.Success(c, "Specialites retrieved successfully", specialites)
}

// CreateSpecialite handles specialty creation
// @Summary Create specialite
// @Tags Cabinets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SpecialiteInput true "Specialite data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/specialites [post]
func (h *CabinetHandler) CreateSpecialite(c *fiber.Ctx) error {
	var input services.SpecialiteInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Nom == "" {
		return response.BadRequest(c, "Nom is required")
	}

	specialite, err := h.specialiteService.CreateSpecialite(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create specialite")
	}

	return response.Created(c, "Specialite created successfully", specialite)
}
