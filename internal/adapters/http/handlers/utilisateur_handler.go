package handlers

import (
	"errors"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UtilisateurHandler handles staff account management endpoints
type UtilisateurHandler struct {
	utilisateurService *services.UtilisateurService
}

// NewUtilisateurHandler creates a new utilisateur handler
func NewUtilisateurHandler(utilisateurService *services.UtilisateurService) *UtilisateurHandler {
	return &UtilisateurHandler{utilisateurService: utilisateurService}
}

func adminID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}

// List handles staff account listing
// @Summary List utilisateurs
// @Description List medecin and secretaire accounts, with an optional search
// @Tags Utilisateurs
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email fragment"
// @Success 200 {object} response.Response
// @Router /admin/utilisateurs [get]
func (h *UtilisateurHandler) List(c *fiber.Ctx) error {
	utilisateurs, err := h.utilisateurService.ListUtilisateurs(c.Context(), c.Query("search"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list utilisateurs")
	}
	return response.Success(c, "Utilisateurs retrieved successfully", utilisateurs)
}

// ListMedecins handles doctor listing (used by the hand-off picker)
// @Summary List medecins
// @Tags Utilisateurs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /utilisateurs/medecins [get]
func (h *UtilisateurHandler) ListMedecins(c *fiber.Ctx) error {
	medecins, err := h.utilisateurService.ListMedecins(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list medecins")
	}
	return response.Success(c, "Medecins retrieved successfully", medecins)
}

// Get handles fetching one staff account
// @Summary Get utilisateur
// @Tags Utilisateurs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Utilisateur ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/utilisateurs/{id} [get]
func (h *UtilisateurHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid utilisateur ID")
	}

	utilisateur, err := h.utilisateurService.GetUtilisateur(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUtilisateurNotFound) {
			return response.NotFound(c, "Utilisateur not found")
		}
		return response.InternalServerError(c, "Failed to retrieve utilisateur")
	}
	return response.Success(c, "Utilisateur retrieved successfully", utilisateur)
}

// Create handles staff account creation
// @Summary Create utilisateur
// @Description Create a staff account (medecin, secretaire or administrateur)
// @Tags Utilisateurs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUtilisateurInput true "Account data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/utilisateurs [post]
func (h *UtilisateurHandler) Create(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateUtilisateurInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Nom == "" || input.Prenom == "" || input.Email == "" || input.MotDePasse == "" || input.Role == "" {
		return response.BadRequest(c, "Nom, prenom, email, mot de passe and role are required")
	}

	utilisateur, err := h.utilisateurService.CreateUtilisateur(c.Context(), aid, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return response.Conflict(c, "An utilisateur with this email already exists")
		case errors.Is(err, domain.ErrCabinetNotFound):
			return response.NotFound(c, "Cabinet not found")
		case errors.Is(err, domain.ErrSpecialiteNotFound):
			return response.NotFound(c, "Specialite not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid account data")
		default:
			return response.InternalServerError(c, "Failed to create utilisateur")
		}
	}

	return response.Created(c, "Utilisateur created successfully", utilisateur)
}

// Update handles staff account update
// @Summary Update utilisateur
// @Description Update a staff account; the password changes only when provided
// @Tags Utilisateurs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Utilisateur ID"
// @Param body body services.UpdateUtilisateurInput true "Account data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/utilisateurs/{id} [put]
func (h *UtilisateurHandler) Update(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid utilisateur ID")
	}

	var input services.UpdateUtilisateurInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	utilisateur, err := h.utilisateurService.UpdateUtilisateur(c.Context(), aid, id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUtilisateurNotFound):
			return response.NotFound(c, "Utilisateur not found")
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return response.Conflict(c, "An utilisateur with this email already exists")
		case errors.Is(err, domain.ErrCabinetNotFound):
			return response.NotFound(c, "Cabinet not found")
		case errors.Is(err, domain.ErrSpecialiteNotFound):
			return response.NotFound(c, "Specialite not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid account data")
		default:
			return response.InternalServerError(c, "Failed to update utilisateur")
		}
	}

	return response.Success(c, "Utilisateur updated successfully", utilisateur)
}

// ToggleActif handles enabling/disabling a staff account
// @Summary Toggle utilisateur active flag
// @Tags Utilisateurs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Utilisateur ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/utilisateurs/{id}/toggle-actif [patch]
func (h *UtilisateurHandler) ToggleActif(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid utilisateur ID")
	}

	utilisateur, err := h.utilisateurService.ToggleActif(c.Context(), aid, id)
	if err != nil {
		if errors.Is(err, domain.ErrUtilisateurNotFound) {
			return response.NotFound(c, "Utilisateur not found")
		}
		return response.InternalServerError(c, "Failed to toggle utilisateur")
	}

	return response.Success(c, "Utilisateur toggled successfully", utilisateur)
}

// Delete handles staff account deletion
// @Summary Delete utilisateur
// @Tags Utilisateurs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Utilisateur ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/utilisateurs/{id} [delete]
func (h *UtilisateurHandler) Delete(c *fiber.Ctx) error {
	aid, ok := adminID(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid utilisateur ID")
	}

	if err := h.utilisateurService.DeleteUtilisateur(c.Context(), aid, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrUtilisateurNotFound):
			return response.NotFound(c, "Utilisateur not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You cannot delete your own account")
		default:
			return response.InternalServerError(c, "Failed to delete utilisateur")
		}
	}

	return response.Success(c, "Utilisateur deleted successfully", nil)
}
