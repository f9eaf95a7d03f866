package handlers

import (
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatistiquesHandler handles dashboard statistics endpoints
type StatistiquesHandler struct {
	statsService *services.StatistiquesService
	rdvService   *services.RendezVousService
}

// NewStatistiquesHandler creates a new statistiques handler
func NewStatistiquesHandler(
	statsService *services.StatistiquesService,
	rdvService *services.RendezVousService,
) *StatistiquesHandler {
	return &StatistiquesHandler{
		statsService: statsService,
		rdvService:   rdvService,
	}
}

// AdminStats returns global platform statistics
// @Summary Admin statistics
// @Description Global counters for the administrator dashboard
// @Tags Statistiques
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/stats [get]
func (h *StatistiquesHandler) AdminStats(c *fiber.Ctx) error {
	data, err := h.statsService.GetAdminStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute statistics")
	}
	return response.Success(c, "Statistics retrieved successfully", data)
}

// CabinetsRecents returns the most recently created cabinets
// @Summary Recent cabinets
// @Description The 5 most recently created cabinets with their doctor counts
// @Tags Statistiques
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/cabinets-recents [get]
func (h *StatistiquesHandler) CabinetsRecents(c *fiber.Ctx) error {
	data, err := h.statsService.GetCabinetsRecents(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list recent cabinets")
	}
	return response.Success(c, "Recent cabinets retrieved successfully", data)
}

// ActiviteRecente returns the most recent audit entries
// @Summary Recent admin activity
// @Description The 10 most recent audit log entries
// @Tags Statistiques
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/activite-recente [get]
func (h *StatistiquesHandler) ActiviteRecente(c *fiber.Ctx) error {
	data, err := h.statsService.GetActiviteRecente(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list recent activity")
	}
	return response.Success(c, "Recent activity retrieved successfully", data)
}

// MedecinStats returns the authenticated doctor's daily dashboard
// @Summary Medecin statistics
// @Description Today's counters for the authenticated doctor
// @Tags Statistiques
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /medecin/stats [get]
func (h *StatistiquesHandler) MedecinStats(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.statsService.GetMedecinStats(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to compute statistics")
	}
	return response.Success(c, "Statistics retrieved successfully", data)
}

// SecretaireStats returns the front-desk dashboard
// @Summary Secretaire statistics
// @Description Front-desk counters and current-month revenue
// @Tags Statistiques
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /secretaire/stats [get]
func (h *StatistiquesHandler) SecretaireStats(c *fiber.Ctx) error {
	data, err := h.statsService.GetSecretaireStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute statistics")
	}
	return response.Success(c, "Statistics retrieved successfully", data)
}

// RdvAujourdhui returns today's appointments for the front desk
// @Summary Today's rendez-vous
// @Description All appointments booked for today
// @Tags Statistiques
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /secretaire/rendez-vous-aujourdhui [get]
func (h *StatistiquesHandler) RdvAujourdhui(c *fiber.Ctx) error {
	rdvs, err := h.rdvService.ListAujourdhui(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list today's rendez-vous")
	}
	return response.Success(c, "Rendez-vous retrieved successfully", rdvs)
}
